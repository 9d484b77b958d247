package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/farmstead/parameter"
)

// Settings is the process configuration, read from FARMSTEAD_* variables
type Settings struct {
	PuzzleFile   string        `env:"PUZZLES"`
	Start        string        `env:"START"`
	TickInterval time.Duration `env:"TICK" envDefault:"16ms"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE" envDefault:"farmstead.log"`

	AudioEnabled bool    `env:"AUDIO" envDefault:"true"`
	MasterVolume float64 `env:"VOLUME" envDefault:"0.5"`
	SampleRate   int     `env:"SAMPLE_RATE" envDefault:"44100"`

	OTLPEndpoint string `env:"OTLP_ENDPOINT"`
}

// EnvPrefix is prepended to every settings variable
const EnvPrefix = "FARMSTEAD_"

// LoadSettings loads optional .env files, then parses the environment
// Missing .env files are ignored; malformed ones are reported
func LoadSettings(envFiles ...string) (Settings, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var s Settings
	if err := env.ParseWithOptions(&s, env.Options{Prefix: EnvPrefix}); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s.normalized(), nil
}

func (s Settings) normalized() Settings {
	if s.TickInterval <= 0 {
		s.TickInterval = parameter.GameUpdateInterval
	}
	s.MasterVolume = min(max(s.MasterVolume, 0), 1)
	if s.SampleRate <= 0 {
		s.SampleRate = 44100
	}
	return s
}

// Level parses LogLevel, falling back to info
func (s Settings) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(s.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
