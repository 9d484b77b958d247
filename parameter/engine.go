package parameter

import "time"

// Game Loop & Engine Timing
const (
	// GameUpdateInterval is the game logic update interval (clock tick, ~60 FPS)
	GameUpdateInterval = 16 * time.Millisecond

	// MaxTickDelta caps a single tick's delta after stalls or resume from pause
	MaxTickDelta = 100 * time.Millisecond

	// CommandQueueSize is the buffered capacity of the scheduler's input command channel
	CommandQueueSize = 256
)

// Event Queue
const (
	// EventQueueCapacity is the initial capacity of the per-session event queue
	EventQueueCapacity = 64
)
