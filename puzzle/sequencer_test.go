package puzzle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/farmstead/component"
	"github.com/lixenwraith/farmstead/vmath"
)

const quarter = 250 * time.Millisecond

func TestSequencerTickTiming(t *testing.T) {
	anchor := vmath.V2(10, 10)
	seq := NewSequencer(1, anchor, []Phase{
		{Kind: PhaseMove, Duration: time.Second, To: vmath.V2(4, 0)},
		{Kind: PhaseRotate, Duration: 500 * time.Millisecond, Value: 90},
	})
	tr := component.TransformComponent{Position: anchor, Alpha: 1}

	var completed []int
	onPhase := func(i int, _ Phase) { completed = append(completed, i) }

	for tick := 1; tick <= 3; tick++ {
		require.False(t, seq.Advance(quarter, &tr, onPhase), "tick %d", tick)
		assert.Empty(t, completed, "tick %d", tick)
	}
	assert.InDelta(t, 13.0, tr.Position.X, 1e-9)

	require.False(t, seq.Advance(quarter, &tr, onPhase))
	assert.Equal(t, []int{0}, completed, "move completes on the fourth tick")
	assert.Equal(t, vmath.V2(14, 10), tr.Position, "exact target, not accumulated")
	assert.Equal(t, 1, seq.Index())

	require.False(t, seq.Advance(quarter, &tr, onPhase))
	assert.InDelta(t, 45.0, tr.Rotation, 1e-9)

	require.True(t, seq.Advance(quarter, &tr, onPhase))
	assert.Equal(t, []int{0, 1}, completed, "sequence completes on the sixth tick")
	assert.Equal(t, 90.0, tr.Rotation)
	assert.True(t, seq.Done())
}

func TestSequencerNoCarryOver(t *testing.T) {
	seq := NewSequencer(1, vmath.Vec2{}, []Phase{
		{Kind: PhaseHold, Duration: 100 * time.Millisecond},
		{Kind: PhaseHold, Duration: 100 * time.Millisecond},
	})
	var tr component.TransformComponent

	// One oversized tick finishes only the current phase
	require.False(t, seq.Advance(time.Second, &tr, nil))
	assert.Equal(t, 1, seq.Index())
	assert.Zero(t, seq.Elapsed())

	require.True(t, seq.Advance(time.Second, &tr, nil))
}

func TestSequencerZeroDurationChain(t *testing.T) {
	anchor := vmath.V2(1, 1)
	seq := NewSequencer(1, anchor, []Phase{
		{Kind: PhaseMove, Duration: 0, To: vmath.V2(0, 2)},
		{Kind: PhaseFade, Duration: 0, Value: 0.5},
		{Kind: PhaseHold, Duration: 100 * time.Millisecond},
		{Kind: PhaseRotate, Duration: 0, Value: 180},
	})
	tr := component.TransformComponent{Position: anchor, Alpha: 1}

	var completed []int
	onPhase := func(i int, _ Phase) { completed = append(completed, i) }

	require.False(t, seq.Advance(50*time.Millisecond, &tr, onPhase))
	assert.Equal(t, []int{0, 1}, completed)
	assert.Equal(t, vmath.V2(1, 3), tr.Position)
	assert.Equal(t, 0.5, tr.Alpha)

	require.True(t, seq.Advance(50*time.Millisecond, &tr, onPhase))
	assert.Equal(t, []int{0, 1, 2, 3}, completed)
	assert.Equal(t, 180.0, tr.Rotation)
}

func TestSequencerEmpty(t *testing.T) {
	seq := NewSequencer(1, vmath.Vec2{}, nil)
	var tr component.TransformComponent
	assert.True(t, seq.Done())
	assert.True(t, seq.Advance(quarter, &tr, nil))
}

func TestSequencerCancelSnapsToBoundary(t *testing.T) {
	phases := []Phase{{Kind: PhaseMove, Duration: time.Second, To: vmath.V2(4, 0)}}

	tests := []struct {
		name    string
		ticks   int
		want    vmath.Vec2
		forward bool
	}{
		{"not started", 0, vmath.V2(0, 0), false},
		{"quarter restores start", 1, vmath.V2(0, 0), false},
		{"half applies target", 2, vmath.V2(4, 0), true},
		{"three quarters applies target", 3, vmath.V2(4, 0), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seq := NewSequencer(1, vmath.Vec2{}, phases)
			tr := component.TransformComponent{Alpha: 1}
			for range tc.ticks {
				seq.Advance(quarter, &tr, nil)
			}

			called := false
			idx, forward := seq.Cancel(&tr, func(int, Phase) { called = true })
			assert.Equal(t, 0, idx)
			assert.Equal(t, tc.forward, forward)
			assert.Equal(t, tc.forward, called)
			assert.Equal(t, tc.want, tr.Position)
			assert.True(t, seq.Done())
		})
	}
}

func TestSequencerCopiesPhases(t *testing.T) {
	phases := []Phase{{Kind: PhaseFade, Duration: 0, Value: 0.2}}
	seq := NewSequencer(1, vmath.Vec2{}, phases)
	phases[0].Value = 0.9

	var tr component.TransformComponent
	seq.Advance(quarter, &tr, nil)
	assert.Equal(t, 0.2, tr.Alpha)
}
