package puzzle

import (
	"time"

	"github.com/lixenwraith/farmstead/component"
	"github.com/lixenwraith/farmstead/core"
	"github.com/lixenwraith/farmstead/parameter"
	"github.com/lixenwraith/farmstead/vmath"
)

// PhaseFunc is invoked when a phase reaches its target
type PhaseFunc func(index int, p Phase)

// Sequencer runs an entity's ordered phase list on elapsed time
// Each non-zero phase consumes whole ticks: leftover delta is not carried into
// the next phase, so a phase never completes earlier than its own tick count
type Sequencer struct {
	entity core.Entity
	anchor vmath.Vec2
	phases []Phase

	index   int
	elapsed time.Duration
	begun   bool

	// Transform captured when the current phase began
	startPos   vmath.Vec2
	startRot   float64
	startAlpha float64
}

// NewSequencer creates a sequencer; anchor is the snapped zone position that move
// targets are relative to. The phase slice is copied and never modified
func NewSequencer(e core.Entity, anchor vmath.Vec2, phases []Phase) *Sequencer {
	cp := make([]Phase, len(phases))
	copy(cp, phases)
	return &Sequencer{
		entity: e,
		anchor: anchor,
		phases: cp,
	}
}

func (s *Sequencer) Entity() core.Entity { return s.entity }

// Index returns the current phase index, len(phases) when done
func (s *Sequencer) Index() int { return s.index }

// Done reports whether every phase completed
func (s *Sequencer) Done() bool { return s.index >= len(s.phases) }

// Elapsed returns time accumulated in the current phase
func (s *Sequencer) Elapsed() time.Duration { return s.elapsed }

// Advance moves the sequence forward by dt, writing interpolated values into tr
// Completed phases apply their exact target and call onPhase in order
// Returns true once the last phase has completed
func (s *Sequencer) Advance(dt time.Duration, tr *component.TransformComponent, onPhase PhaseFunc) bool {
	consumed := false

	for !s.Done() {
		p := s.phases[s.index]
		if !s.begun {
			s.begin(tr)
		}

		if p.Duration > 0 {
			if consumed {
				break
			}
			s.elapsed += dt
			consumed = true
			if s.elapsed < p.Duration {
				s.interpolate(p, tr, float64(s.elapsed)/float64(p.Duration))
				break
			}
		}

		s.applyTarget(p, tr)
		s.complete(p, onPhase)
	}
	return s.Done()
}

// Cancel discards the sequence, snapping tr to the nearest phase boundary
// Progress below CancelBoundaryThreshold restores the phase start values,
// otherwise the phase target is applied and onPhase is called for it
// Returns the phase index that was interrupted and whether it was completed
func (s *Sequencer) Cancel(tr *component.TransformComponent, onPhase PhaseFunc) (int, bool) {
	if s.Done() {
		return s.index, false
	}
	idx := s.index
	p := s.phases[idx]

	forward := false
	if s.begun {
		progress := 1.0
		if p.Duration > 0 {
			progress = float64(s.elapsed) / float64(p.Duration)
		}
		forward = progress >= parameter.CancelBoundaryThreshold
		if forward {
			s.applyTarget(p, tr)
			s.complete(p, onPhase)
		} else {
			s.restoreStart(p, tr)
		}
	}

	s.index = len(s.phases)
	return idx, forward
}

func (s *Sequencer) begin(tr *component.TransformComponent) {
	s.begun = true
	s.elapsed = 0
	s.startPos = tr.Position
	s.startRot = tr.Rotation
	s.startAlpha = tr.Alpha
}

func (s *Sequencer) complete(p Phase, onPhase PhaseFunc) {
	idx := s.index
	s.index++
	s.begun = false
	s.elapsed = 0
	if onPhase != nil {
		onPhase(idx, p)
	}
}

func (s *Sequencer) moveTarget(p Phase) vmath.Vec2 {
	return vmath.V2Add(s.anchor, p.To)
}

func (s *Sequencer) interpolate(p Phase, tr *component.TransformComponent, t float64) {
	switch p.Kind {
	case PhaseMove:
		tr.Position = vmath.V2Lerp(s.startPos, s.moveTarget(p), t)
	case PhaseRotate:
		tr.Rotation = vmath.LerpAngle(s.startRot, p.Value, t)
	case PhaseFade:
		tr.Alpha = vmath.Lerp(s.startAlpha, p.Value, t)
	}
}

// applyTarget writes the exact target, never an accumulated interpolation
func (s *Sequencer) applyTarget(p Phase, tr *component.TransformComponent) {
	switch p.Kind {
	case PhaseMove:
		tr.Position = s.moveTarget(p)
	case PhaseRotate:
		tr.Rotation = p.Value
	case PhaseFade:
		tr.Alpha = p.Value
	}
}

func (s *Sequencer) restoreStart(p Phase, tr *component.TransformComponent) {
	switch p.Kind {
	case PhaseMove:
		tr.Position = s.startPos
	case PhaseRotate:
		tr.Rotation = s.startRot
	case PhaseFade:
		tr.Alpha = s.startAlpha
	}
}
