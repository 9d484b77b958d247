package puzzle

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/farmstead/core"
	"github.com/lixenwraith/farmstead/event"
	"github.com/lixenwraith/farmstead/vmath"
)

// millDefinition: two sacks, a mill and a cart that needs the mill filled first
func millDefinition() Definition {
	return Definition{
		Name:      "grain_milling",
		NextScene: "beer_brewing",
		Counters:  []CounterSpec{{Name: "sacks", Threshold: 2}},
		Zones: []ZoneSpec{
			{ID: "mill", Position: vmath.V2(10, 0), Range: 2},
			{ID: "cart", Position: vmath.V2(20, 0), Range: 2, Requires: "mill"},
		},
		Templates: []Template{{
			ID:        "sack",
			Positions: []vmath.Vec2{vmath.V2(0, 0), vmath.V2(0, 5)},
			HitRadius: 1,
			Counter:   "sacks",
			Visual:    "sack_full",
			Visuals: map[core.EntityState]string{
				core.StateDragging: "sack_held",
				core.StateLocked:   "sack_empty",
			},
			Phases: []Phase{
				{Kind: PhaseMove, Duration: 100 * time.Millisecond, To: vmath.V2(0, 1)},
			},
		}},
	}
}

type sceneRecorder struct {
	loads []string
}

func (r *sceneRecorder) LoadScene(id string) {
	r.loads = append(r.loads, id)
}

type eventRecorder struct {
	events []event.GameEvent
}

func (r *eventRecorder) HandleEvent(ev event.GameEvent) {
	r.events = append(r.events, ev)
}

func (r *eventRecorder) EventTypes() []event.EventType {
	types := make([]event.EventType, 0, int(event.EventPuzzleReset))
	for t := event.EventDragStarted; t <= event.EventPuzzleReset; t++ {
		types = append(types, t)
	}
	return types
}

func (r *eventRecorder) count(t event.EventType) int {
	n := 0
	for _, ev := range r.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

type fixture struct {
	s      *Session
	scenes *sceneRecorder
	events *eventRecorder
	hook   *test.Hook
}

func newFixture(t *testing.T, def Definition) *fixture {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	f := &fixture{
		scenes: &sceneRecorder{},
		events: &eventRecorder{},
		hook:   hook,
	}
	s, err := New(def, Options{
		Logger:   logrus.NewEntry(logger),
		Scenes:   f.scenes,
		Handlers: []event.Handler{f.events},
	})
	require.NoError(t, err)
	f.s = s
	return f
}

// drop drags e from its current position to target and releases it
func (f *fixture) drop(t *testing.T, e core.Entity, target vmath.Vec2) {
	t.Helper()
	v, ok := f.s.Entity(e)
	require.True(t, ok)
	require.NoError(t, f.s.BeginDrag(e, v.Position))
	require.NoError(t, f.s.UpdateDrag(e, target))
	require.NoError(t, f.s.EndDrag(e))
}

func (f *fixture) state(t *testing.T, e core.Entity) core.EntityState {
	t.Helper()
	v, ok := f.s.Entity(e)
	require.True(t, ok)
	return v.State
}
