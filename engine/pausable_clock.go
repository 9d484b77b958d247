package engine

import (
	"sync"
	"time"
)

// PausableClock provides pausable game time with pause duration tracking
// Game time stops advancing while paused (menus, scene transition fades)
type PausableClock struct {
	mu sync.RWMutex

	source        TimeProvider
	realStartTime time.Time

	paused          bool
	pauseStartTime  time.Time
	totalPausedTime time.Duration
}

// NewPausableClock creates a clock driven by the real monotonic time
func NewPausableClock() *PausableClock {
	return NewPausableClockWith(NewMonotonicTimeProvider())
}

// NewPausableClockWith creates a clock driven by the given time source
func NewPausableClockWith(source TimeProvider) *PausableClock {
	return &PausableClock{
		source:        source,
		realStartTime: source.Now(),
	}
}

// Now returns current game time (frozen while paused)
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		return pc.realStartTime.Add(pc.pauseStartTime.Sub(pc.realStartTime) - pc.totalPausedTime)
	}
	realElapsed := pc.source.Now().Sub(pc.realStartTime)
	return pc.realStartTime.Add(realElapsed - pc.totalPausedTime)
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStartTime = pc.source.Now()
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
	pc.paused = false
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including an ongoing pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.paused {
		total += pc.source.Now().Sub(pc.pauseStartTime)
	}
	return total
}
