package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/farmstead/audio"
	"github.com/lixenwraith/farmstead/config"
	"github.com/lixenwraith/farmstead/core"
	"github.com/lixenwraith/farmstead/engine"
	"github.com/lixenwraith/farmstead/event"
	"github.com/lixenwraith/farmstead/input"
	"github.com/lixenwraith/farmstead/render"
	"github.com/lixenwraith/farmstead/service"
	"github.com/lixenwraith/farmstead/status"
	"github.com/lixenwraith/farmstead/telemetry"
)

const (
	maxLogSize = 10 * 1024 * 1024

	fieldOriginX = 4
	fieldOriginY = 3
)

var (
	puzzlesFlag = flag.String("puzzles", "", "Puzzle config file or directory (default: ./puzzles, then built-in)")
	startFlag   = flag.String("start", "", "Puzzle to start with (overrides the config start)")
	logFlag     = flag.String("log-level", "", "Log level: debug, info, warn, error")
	muteFlag    = flag.Bool("mute", false, "Disable audio")
	envFlag     = flag.String("env", ".env", "Optional .env file")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	settings, err := config.LoadSettings(*envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load settings: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&settings)

	logFile, err := setupLogging(settings.LogFile, settings.Level())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	log := logrus.WithField("service", telemetry.ServiceName)

	shutdown, err := telemetry.Setup(context.Background(), telemetry.ServiceName, settings.OTLPEndpoint)
	if err != nil {
		log.WithError(err).Warn("tracing disabled")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			log.WithError(err).Warn("trace shutdown")
		}
	}()

	catalog, err := config.LoadAuto(settings.PuzzleFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load puzzles: %v\n", err)
		os.Exit(1)
	}
	if err := catalog.Check(); err != nil {
		log.WithError(err).Warn("puzzle catalog has problems")
	}
	log.WithFields(logrus.Fields{
		"source":  catalog.Source,
		"puzzles": catalog.Len(),
	}).Info("puzzles loaded")

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.OnCrash(screen.Fini)
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	sounds := audio.NewSoundManager(audio.Config{
		Enabled:      settings.AudioEnabled,
		MasterVolume: settings.MasterVolume,
		SampleRate:   settings.SampleRate,
	}, log)

	metrics := status.NewRegistry()
	renderer := render.NewRenderer(screen, fieldOriginX, fieldOriginY)
	g := &game{
		catalog:  catalog,
		renderer: renderer,
		pointer:  input.NewPointer(renderer),
		clock:    engine.NewPausableClock(),
		metrics:  metrics,
		log:      log,
		handlers: []event.Handler{sounds},
	}
	g.scheduler = engine.NewClockScheduler(g.clock, settings.TickInterval, metrics, g.tick)
	g.scheduler.SetResetHandler(g.reset)

	start := catalog.Start
	if settings.Start != "" {
		start = settings.Start
	}
	g.load(start)

	hub := service.NewHub(log)
	_ = hub.Register(sounds)
	_ = hub.Register(service.New("scheduler",
		func() error { g.scheduler.Start(); return nil },
		g.scheduler.Stop,
		sounds.Name(),
	))
	if err := hub.StartAll(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start services: %v\n", err)
		os.Exit(1)
	}
	defer hub.StopAll()

	events := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})

	for ev := range events {
		switch ev := ev.(type) {
		case *tcell.EventMouse:
			g.scheduler.Submit(func() { g.mouseInput(ev) })
		case *tcell.EventKey:
			switch input.KeyCommand(ev) {
			case input.CommandQuit:
				log.WithFields(metrics.Fields()).Info("shutting down")
				return
			case input.CommandReset:
				g.scheduler.RequestReset()
			case input.CommandPause:
				g.scheduler.Submit(g.togglePause)
			case input.CommandSkip:
				g.scheduler.Submit(g.skip)
			}
		case *tcell.EventResize:
			screen.Sync()
			g.scheduler.Submit(g.draw)
		}
	}
}

// applyFlags overrides settings with explicitly set command-line flags
func applyFlags(s *config.Settings) {
	if *puzzlesFlag != "" {
		s.PuzzleFile = *puzzlesFlag
	}
	if *startFlag != "" {
		s.Start = *startFlag
	}
	if *logFlag != "" {
		s.LogLevel = *logFlag
	}
	if *muteFlag {
		s.AudioEnabled = false
	}
}

// setupLogging routes logrus to path, rotating an oversized previous log
// An empty path discards log output; the terminal is owned by the game screen
func setupLogging(path string, level logrus.Level) (*os.File, error) {
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableColors:   true,
	})

	if path == "" {
		logrus.SetOutput(io.Discard)
		return nil, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		ext := filepath.Ext(path)
		rotated := fmt.Sprintf("%s.%s%s", path[:len(path)-len(ext)], time.Now().Format("20060102-150405"), ext)
		if err := os.Rename(path, rotated); err != nil {
			return nil, err
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	logrus.SetOutput(f)
	return f, nil
}
