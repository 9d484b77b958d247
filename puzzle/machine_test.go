package puzzle

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/farmstead/core"
	"github.com/lixenwraith/farmstead/event"
	"github.com/lixenwraith/farmstead/parameter"
	"github.com/lixenwraith/farmstead/vmath"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to core.EntityState
		want     bool
	}{
		{core.StateIdle, core.StateDragging, true},
		{core.StateIdle, core.StateSettling, false},
		{core.StateDragging, core.StateIdle, true},
		{core.StateDragging, core.StateSettling, true},
		{core.StateDragging, core.StateLocked, false},
		{core.StateSettling, core.StateSequencing, true},
		{core.StateSequencing, core.StateLocked, true},
		{core.StateSequencing, core.StateIdle, true},
		{core.StateLocked, core.StateDragging, true},
		{core.StateLocked, core.StateIdle, false},
	}
	for _, tc := range tests {
		t.Run(tc.from.String()+"->"+tc.to.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransition(tc.from, tc.to))
		})
	}
}

func TestDragLock(t *testing.T) {
	var l DragLock
	assert.True(t, l.TryAcquire(1))
	assert.True(t, l.TryAcquire(1))
	assert.False(t, l.TryAcquire(2))
	assert.False(t, l.Release(2))
	assert.True(t, l.Release(1))
	assert.False(t, l.Held())
	assert.True(t, l.TryAcquire(2))
}

func TestSingleDraggingEntity(t *testing.T) {
	f := newFixture(t, millDefinition())

	require.NoError(t, f.s.BeginDrag(1, vmath.V2(0, 0)))
	err := f.s.BeginDrag(2, vmath.V2(0, 5))
	require.ErrorIs(t, err, ErrInvalidTransition)

	assert.Equal(t, core.StateDragging, f.state(t, 1))
	assert.Equal(t, core.StateIdle, f.state(t, 2), "rejected call leaves state untouched")
	assert.EqualValues(t, 1, f.s.Snapshot().DragHolder)

	last := f.hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, logrus.WarnLevel, last.Level)

	dragging := 0
	for _, v := range f.s.Snapshot().Entities {
		if v.State == core.StateDragging {
			dragging++
		}
	}
	assert.Equal(t, 1, dragging)
}

func TestDragVisualsAndLayer(t *testing.T) {
	f := newFixture(t, millDefinition())

	require.NoError(t, f.s.BeginDrag(1, vmath.V2(0.5, 0)))
	v, _ := f.s.Entity(1)
	assert.Equal(t, "sack_held", v.Visual)
	assert.Equal(t, parameter.DragLayer, v.Layer)

	// Offset keeps the grab point under the pointer
	require.NoError(t, f.s.UpdateDrag(1, vmath.V2(5.5, 3)))
	v, _ = f.s.Entity(1)
	assert.Equal(t, vmath.V2(5, 3), v.Position)

	require.NoError(t, f.s.EndDrag(1))
	v, _ = f.s.Entity(1)
	assert.Equal(t, core.StateIdle, v.State)
	assert.Equal(t, vmath.V2(5, 3), v.Position, "missed drop stays where released")
	assert.Zero(t, v.Layer)
}

func TestInvalidCallsRejected(t *testing.T) {
	f := newFixture(t, millDefinition())

	require.ErrorIs(t, f.s.UpdateDrag(1, vmath.V2(1, 1)), ErrInvalidTransition)
	require.ErrorIs(t, f.s.EndDrag(1), ErrInvalidTransition)
	require.ErrorIs(t, f.s.SequenceComplete(1), ErrInvalidTransition)
	require.ErrorIs(t, f.s.CancelSequence(1), ErrInvalidTransition)
	require.ErrorIs(t, f.s.BeginDrag(99, vmath.V2(0, 0)), ErrInvalidTransition)
	assert.Equal(t, core.StateIdle, f.state(t, 1))
}

func TestSnapPreviewEvents(t *testing.T) {
	f := newFixture(t, millDefinition())

	require.NoError(t, f.s.BeginDrag(1, vmath.V2(0, 0)))
	require.NoError(t, f.s.UpdateDrag(1, vmath.V2(9, 0)))
	require.NoError(t, f.s.UpdateDrag(1, vmath.V2(9.5, 0)))
	assert.Equal(t, "mill", f.s.Snapshot().Preview)

	// Cart prerequisite is unmet, so no preview there
	require.NoError(t, f.s.UpdateDrag(1, vmath.V2(20, 0)))
	assert.Empty(t, f.s.Snapshot().Preview)

	f.s.Tick(0)
	assert.Equal(t, 2, f.events.count(event.EventSnapPreview), "preview changes only")
}
