package puzzle

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/farmstead/component"
	"github.com/lixenwraith/farmstead/core"
	"github.com/lixenwraith/farmstead/event"
	"github.com/lixenwraith/farmstead/parameter"
	"github.com/lixenwraith/farmstead/vmath"
)

// DragLock is the puzzle-global single-owner drag token
// Invariant: holder is EntityNone or the holder is in StateDragging
type DragLock struct {
	holder core.Entity
}

// Holder returns the dragging entity, EntityNone when free
func (l *DragLock) Holder() core.Entity {
	return l.holder
}

// Held reports whether any entity holds the lock
func (l *DragLock) Held() bool {
	return l.holder != core.EntityNone
}

// TryAcquire takes the lock for e; fails if another entity holds it
func (l *DragLock) TryAcquire(e core.Entity) bool {
	if l.holder != core.EntityNone && l.holder != e {
		return false
	}
	l.holder = e
	return true
}

// Release frees the lock if e holds it
func (l *DragLock) Release(e core.Entity) bool {
	if l.holder != e {
		return false
	}
	l.holder = core.EntityNone
	return true
}

func (l *DragLock) reset() {
	l.holder = core.EntityNone
}

var validTransitions = map[core.EntityState][]core.EntityState{
	core.StateIdle:       {core.StateDragging},
	core.StateDragging:   {core.StateIdle, core.StateSettling},
	core.StateSettling:   {core.StateSequencing},
	core.StateSequencing: {core.StateLocked, core.StateIdle},
	core.StateLocked:     {core.StateDragging},
}

// CanTransition checks if an entity state transition is valid
func CanTransition(from, to core.EntityState) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// BeginDrag picks up e at the given pointer position
// Rejected while another entity holds the drag lock or when e is not draggable
func (s *Session) BeginDrag(e core.Entity, pointer vmath.Vec2) error {
	if err := s.usable(); err != nil {
		return err
	}
	ic, ok := s.world.Interactives.Get(e)
	if !ok {
		return s.invalid(e, "begin_drag", "unknown entity")
	}
	if s.lock.Held() && s.lock.Holder() != e {
		return s.invalid(e, "begin_drag", fmt.Sprintf("drag lock held by %d", s.lock.Holder()))
	}
	if !ic.Draggable() {
		return s.invalid(e, "begin_drag", "state "+ic.State.String())
	}

	tr, _ := s.world.Transforms.Get(e)
	s.lock.TryAcquire(e)

	if ic.State == core.StateLocked && ic.Zone != "" {
		s.zones.Release(ic.Zone)
		ic.Zone = ""
	}
	s.world.Drags.Set(e, component.DragComponent{
		Offset:    vmath.V2Sub(tr.Position, pointer),
		BaseLayer: ic.Layer,
	})
	ic.Layer = parameter.DragLayer
	s.enter(e, &ic, core.StateDragging)
	s.world.Interactives.Set(e, ic)

	s.statDrags.Add(1)
	s.emit(event.EventDragStarted, &event.DragPayload{Entity: e})
	return nil
}

// UpdateDrag moves the dragged entity to pointer+offset and refreshes the snap preview
func (s *Session) UpdateDrag(e core.Entity, pointer vmath.Vec2) error {
	if err := s.usable(); err != nil {
		return err
	}
	ic, ok := s.world.Interactives.Get(e)
	if !ok || ic.State != core.StateDragging {
		return s.invalid(e, "update_drag", "not dragging")
	}
	drag, _ := s.world.Drags.Get(e)
	s.world.Transforms.Update(e, func(tr *component.TransformComponent) {
		tr.Position = vmath.V2Add(pointer, drag.Offset)
	})
	s.refreshPreview(e)
	return nil
}

// EndDrag releases e: commits into the best zone or drops it back to Idle
func (s *Session) EndDrag(e core.Entity) error {
	if err := s.usable(); err != nil {
		return err
	}
	ic, ok := s.world.Interactives.Get(e)
	if !ok || ic.State != core.StateDragging {
		return s.invalid(e, "end_drag", "not dragging")
	}

	drag, _ := s.world.Drags.Get(e)
	s.world.Drags.Remove(e)
	s.lock.Release(e)
	ic.Layer = drag.BaseLayer

	zone, committed := s.resolver.Commit(s.candidate(e, ic))
	if !committed {
		s.enter(e, &ic, core.StateIdle)
		s.world.Interactives.Set(e, ic)
		s.emit(event.EventDragEnded, &event.DragPayload{Entity: e})
		return nil
	}

	// Settling: exact placement at the zone anchor, no interpolation
	s.enter(e, &ic, core.StateSettling)
	ic.Zone = zone.ID
	s.world.Transforms.Update(e, func(tr *component.TransformComponent) {
		tr.Position = zone.Position
	})
	firstSettle := !ic.Settled
	ic.Settled = true
	s.statSnaps.Add(1)
	s.emit(event.EventSnapCommitted, &event.SnapPayload{Entity: e, Zone: zone.ID})

	phases := zone.Phases
	tpl := s.templates[ic.Template]
	if len(phases) == 0 && tpl != nil {
		phases = tpl.Phases
	}
	s.enter(e, &ic, core.StateSequencing)
	s.world.Interactives.Set(e, ic)
	s.sequences.Set(e, NewSequencer(e, zone.Position, phases))

	s.log.WithFields(logrus.Fields{
		"entity": e,
		"zone":   zone.ID,
		"phases": len(phases),
	}).Debug("entity settled")

	if firstSettle {
		if clone, spawned := s.spawner.OnFirstSettle(tpl); spawned {
			s.statSpawns.Add(1)
			s.emit(event.EventEntitySpawned, &event.SpawnPayload{Entity: clone, Source: e, Template: tpl.ID})
		}
	}
	return nil
}

// SequenceComplete moves e from Sequencing to Locked and records progress
// Called by the tick loop when the entity's sequencer finishes
func (s *Session) SequenceComplete(e core.Entity) error {
	if err := s.usable(); err != nil {
		return err
	}
	ic, ok := s.world.Interactives.Get(e)
	if !ok || ic.State != core.StateSequencing {
		return s.invalid(e, "sequence_complete", "not sequencing")
	}
	s.sequences.Remove(e)

	tpl := s.templates[ic.Template]
	counter := ""
	if z, ok := s.zones.Get(ic.Zone); ok && z.Counter != "" {
		counter = z.Counter
	} else if tpl != nil {
		counter = tpl.Counter
	}

	var progressed *event.ProgressPayload
	if counter != "" && tpl != nil && ic.Stage >= tpl.CountAtStage {
		value, err := s.progress.Increment(counter, e)
		switch {
		case err == nil:
			c, _ := s.progress.Counter(counter)
			progressed = &event.ProgressPayload{Counter: counter, Value: value, Threshold: c.Threshold, Entity: e}
		case errors.Is(err, ErrAlreadyCounted):
			s.log.WithField("entity", e).Debug(err.Error())
		default:
			s.log.WithError(err).Warn("progress increment failed")
		}
	}

	ic.Redraggable = tpl != nil && tpl.Redraggable && ic.Stage < ic.MaxStage && !s.progress.CountedAny(e)
	s.enter(e, &ic, core.StateLocked)
	s.world.Interactives.Set(e, ic)

	s.span.AddEvent("entity.locked", entityAttrs(e, ic))
	s.emit(event.EventEntityLocked, &event.LockPayload{
		Entity:      e,
		Zone:        ic.Zone,
		Stage:       ic.Stage,
		Redraggable: ic.Redraggable,
	})

	if progressed != nil {
		s.statProgress.Set(s.progress.Fraction())
		s.emit(event.EventProgressIncremented, progressed)
		if s.progress.Evaluate() {
			s.onPuzzleComplete()
		}
	}
	return nil
}

// CancelSequence interrupts e's sequence, snapping its transform to the nearest
// phase boundary, frees its zone and returns it to Idle
func (s *Session) CancelSequence(e core.Entity) error {
	if err := s.usable(); err != nil {
		return err
	}
	ic, ok := s.world.Interactives.Get(e)
	if !ok || ic.State != core.StateSequencing {
		return s.invalid(e, "cancel_sequence", "not sequencing")
	}
	seq, _ := s.sequences.Get(e)
	s.sequences.Remove(e)

	var payload *event.PhasePayload
	if seq != nil {
		tr, _ := s.world.Transforms.Get(e)
		idx, forward := seq.Cancel(&tr, func(i int, p Phase) {
			s.applyPhaseEffects(e, &ic, i, p)
		})
		s.world.Transforms.Set(e, tr)
		payload = &event.PhasePayload{Entity: e, Index: idx}
		s.log.WithFields(logrus.Fields{"entity": e, "phase": idx, "forward": forward}).Info("sequence cancelled")
	}

	s.zones.Release(ic.Zone)
	ic.Zone = ""
	s.enter(e, &ic, core.StateIdle)
	s.world.Interactives.Set(e, ic)
	if payload != nil {
		s.emit(event.EventSequenceCancelled, payload)
	}
	return nil
}

// enter performs a validated state change and applies the template's per-state visual
func (s *Session) enter(e core.Entity, ic *component.InteractiveComponent, to core.EntityState) {
	if !CanTransition(ic.State, to) {
		// Callers check preconditions; reaching here is a programming error
		s.log.WithFields(logrus.Fields{"entity": e, "from": ic.State, "to": to}).Error("unchecked transition")
	}
	ic.State = to
	if tpl := s.templates[ic.Template]; tpl != nil {
		if v, ok := tpl.Visuals[to]; ok {
			ic.Visual = v
		}
	}
}

func (s *Session) applyPhaseEffects(e core.Entity, ic *component.InteractiveComponent, idx int, p Phase) {
	if p.Stage != 0 {
		ic.Stage = min(max(ic.Stage+p.Stage, 0), ic.MaxStage)
	}
	if p.Visual != "" {
		ic.Visual = p.Visual
	}
	s.log.WithFields(logrus.Fields{"entity": e, "phase": idx, "kind": p.Kind}).Debug("phase completed")
	s.emit(event.EventPhaseCompleted, &event.PhasePayload{
		Entity: e,
		Index:  idx,
		Kind:   p.Kind.String(),
		Visual: ic.Visual,
	})
}

func (s *Session) candidate(e core.Entity, ic component.InteractiveComponent) Candidate {
	tr, _ := s.world.Transforms.Get(e)
	return Candidate{Entity: e, Template: ic.Template, Stage: ic.Stage, Position: tr.Position}
}

func (s *Session) refreshPreview(e core.Entity) {
	ic, ok := s.world.Interactives.Get(e)
	if !ok || ic.State != core.StateDragging {
		return
	}
	preview := ""
	if z, ok := s.resolver.Preview(s.candidate(e, ic)); ok {
		preview = z.ID
	}
	drag, _ := s.world.Drags.Get(e)
	if drag.Preview == preview {
		return
	}
	drag.Preview = preview
	s.world.Drags.Set(e, drag)
	s.emit(event.EventSnapPreview, &event.SnapPayload{Entity: e, Zone: preview})
}

// invalid logs and returns an ErrInvalidTransition; state is left untouched
func (s *Session) invalid(e core.Entity, op, reason string) error {
	err := fmt.Errorf("%w: %s on entity %d: %s", ErrInvalidTransition, op, e, reason)
	s.log.WithFields(logrus.Fields{"entity": e, "op": op}).Warn(reason)
	return err
}
