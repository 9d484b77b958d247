package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/farmstead/core"
	"github.com/lixenwraith/farmstead/parameter"
	"github.com/lixenwraith/farmstead/status"
)

// TickFunc advances the simulation by dt of game time
type TickFunc func(dt time.Duration)

// ClockScheduler owns the single simulation goroutine
// Ticks run on a fixed interval; submitted commands (pointer input, scene loads)
// run on the same goroutine between ticks, so simulation state needs no locks
type ClockScheduler struct {
	clock        *PausableClock
	tickInterval time.Duration
	onTick       TickFunc
	onReset      func()

	lastGameTime time.Time
	tickCount    atomic.Uint64

	commands  chan func()
	resetChan chan struct{}
	stopChan  chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
	running   atomic.Bool

	statTicks    *atomic.Int64
	statDropped  *atomic.Int64
	statLastTick *status.AtomicFloat
}

// NewClockScheduler creates a scheduler that calls onTick every tickInterval of game time
func NewClockScheduler(clock *PausableClock, tickInterval time.Duration, reg *status.Registry, onTick TickFunc) *ClockScheduler {
	if tickInterval <= 0 {
		tickInterval = parameter.GameUpdateInterval
	}
	return &ClockScheduler{
		clock:        clock,
		tickInterval: tickInterval,
		onTick:       onTick,
		commands:     make(chan func(), parameter.CommandQueueSize),
		resetChan:    make(chan struct{}, 1),
		stopChan:     make(chan struct{}),
		statTicks:    reg.Ints.Get("engine.ticks"),
		statDropped:  reg.Ints.Get("engine.commands.dropped"),
		statLastTick: reg.Floats.Get("engine.tick.seconds"),
	}
}

// SetResetHandler installs the callback run on RequestReset, must be called before Start()
func (cs *ClockScheduler) SetResetHandler(fn func()) {
	cs.onReset = fn
}

// Submit queues fn to run on the scheduler goroutine
// Non-blocking; returns false if the queue is full or the scheduler stopped
func (cs *ClockScheduler) Submit(fn func()) bool {
	if !cs.running.Load() {
		return false
	}
	select {
	case cs.commands <- fn:
		return true
	default:
		cs.statDropped.Add(1)
		return false
	}
}

// RequestReset schedules the reset handler; coalesces repeated requests
func (cs *ClockScheduler) RequestReset() {
	select {
	case cs.resetChan <- struct{}{}:
	default:
	}
}

// TickCount returns the number of ticks executed
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.lastGameTime = cs.clock.Now()
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for it to exit
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	ticker := time.NewTicker(cs.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-cs.stopChan:
			return

		case <-cs.resetChan:
			if cs.onReset != nil {
				cs.onReset()
			}
			cs.lastGameTime = cs.clock.Now()

		case fn := <-cs.commands:
			fn()

		case <-ticker.C:
			cs.processTick()
		}
	}
}

// processTick measures game time since the previous tick and runs onTick
// Paused clocks produce no tick; long stalls are clamped to MaxTickDelta
func (cs *ClockScheduler) processTick() {
	if cs.clock.IsPaused() {
		return
	}

	now := cs.clock.Now()
	dt := now.Sub(cs.lastGameTime)
	cs.lastGameTime = now
	if dt <= 0 {
		return
	}
	if dt > parameter.MaxTickDelta {
		dt = parameter.MaxTickDelta
	}

	cs.onTick(dt)
	cs.tickCount.Add(1)
	cs.statTicks.Add(1)
	cs.statLastTick.Set(dt.Seconds())
}
