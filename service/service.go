package service

// Service defines the lifecycle interface for long-lived subsystems
// Services manage background resources: the audio mixer, the tick scheduler
//
// Lifecycle:
//  1. Construction
//  2. Start() - launch background goroutines
//  3. [runtime operation]
//  4. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Start before this one
	Dependencies() []string

	// Start begins service operation
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent
	Stop() error
}

// funcService adapts plain start/stop functions
type funcService struct {
	name  string
	deps  []string
	start func() error
	stop  func()
}

// New wraps start and stop functions as a Service; either may be nil
func New(name string, start func() error, stop func(), deps ...string) Service {
	return &funcService{name: name, deps: deps, start: start, stop: stop}
}

func (s *funcService) Name() string           { return s.name }
func (s *funcService) Dependencies() []string { return s.deps }

func (s *funcService) Start() error {
	if s.start == nil {
		return nil
	}
	return s.start()
}

func (s *funcService) Stop() error {
	if s.stop != nil {
		s.stop()
	}
	return nil
}
