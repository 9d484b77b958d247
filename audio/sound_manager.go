package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/farmstead/event"
	"github.com/lixenwraith/farmstead/parameter"
)

// Config controls the sound manager
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0 to 1.0
	SampleRate   int     // Device rate; sounds are resampled when it differs
}

// DefaultConfig returns the standard audio configuration
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   parameter.AudioSampleRate,
	}
}

// SoundManager plays puzzle feedback sounds through the beep speaker
// It is an event.Handler: register it with a puzzle session's router
type SoundManager struct {
	mu          sync.Mutex
	config      Config
	cache       *soundCache
	mixer       *beep.Mixer
	initialized bool

	played [soundTypeCount]atomic.Int64
	log    *logrus.Entry
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg Config, log *logrus.Entry) *SoundManager {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = parameter.AudioSampleRate
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &SoundManager{
		config: cfg,
		cache:  newSoundCache(),
		mixer:  &beep.Mixer{},
		log:    log.WithField("component", "audio"),
	}
}

// Initialize sets up the audio device
// A disabled config is a no-op; device failures are returned and the manager stays silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.config.Enabled {
		return nil
	}

	sr := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(sr, sr.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.WithField("sample_rate", sm.config.SampleRate).Info("audio initialized")
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()

	// beep has no speaker Close; clearing the mixer leaves the device silent
	sm.initialized = false
}

// Play mixes one sound effect; silent when not initialized
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	buf := sm.cache.get(st)
	if buf == nil {
		return
	}

	var s beep.Streamer = newBufferStreamer(buf, sm.config.MasterVolume)
	if sm.config.SampleRate != parameter.AudioSampleRate {
		s = beep.Resample(4, parameter.AudioSampleRate, beep.SampleRate(sm.config.SampleRate), s)
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played[st].Add(1)
}

// Played returns how many times the sound reached the mixer
func (sm *SoundManager) Played(st SoundType) int64 {
	if st < 0 || st >= soundTypeCount {
		return 0
	}
	return sm.played[st].Load()
}

// HandleEvent implements event.Handler
func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	if st, ok := soundFor(ev.Type); ok {
		sm.Play(st)
	}
}

// EventTypes implements event.Handler
func (sm *SoundManager) EventTypes() []event.EventType {
	types := make([]event.EventType, 0, len(eventSounds))
	for t := range eventSounds {
		types = append(types, t)
	}
	return types
}

var eventSounds = map[event.EventType]SoundType{
	event.EventDragStarted:       SoundPickup,
	event.EventSnapCommitted:     SoundSnap,
	event.EventEntityLocked:      SoundLock,
	event.EventEntitySpawned:     SoundSpawn,
	event.EventPuzzleCompleted:   SoundComplete,
	event.EventSequenceCancelled: SoundReject,
}

func soundFor(t event.EventType) (SoundType, bool) {
	st, ok := eventSounds[t]
	return st, ok
}
