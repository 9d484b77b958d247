package audio

// Name implements service.Service
func (sm *SoundManager) Name() string {
	return "audio"
}

// Dependencies implements service.Service
func (sm *SoundManager) Dependencies() []string {
	return nil
}

// Start implements service.Service
// A missing audio device degrades to silence instead of failing startup
func (sm *SoundManager) Start() error {
	if err := sm.Initialize(); err != nil {
		sm.log.WithError(err).Warn("audio start failed, continuing without audio")
	}
	return nil
}

// Stop implements service.Service
func (sm *SoundManager) Stop() error {
	sm.Cleanup()
	return nil
}
