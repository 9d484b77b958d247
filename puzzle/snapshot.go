package puzzle

import (
	"cmp"
	"slices"

	"github.com/lixenwraith/farmstead/core"
	"github.com/lixenwraith/farmstead/vmath"
)

// EntityView is a read-only copy of one entity for presentation
type EntityView struct {
	Entity      core.Entity
	Template    string
	State       core.EntityState
	Position    vmath.Vec2
	Rotation    float64
	Alpha       float64
	Stage       int
	MaxStage    int
	Visual      string
	Zone        string
	Layer       int
	Redraggable bool
}

// ZoneView is a read-only copy of one snap zone
type ZoneView struct {
	ID        string
	Position  vmath.Vec2
	Range     float64
	Occupant  core.Entity
	Available bool // Prerequisite met and unoccupied
}

// Snapshot is the session read model consumed by renderers and tests
type Snapshot struct {
	Puzzle   string
	Session  string
	Disabled bool

	Entities []EntityView // Draw order: layer ascending, then entity id
	Zones    []ZoneView   // Definition order
	Counters []Counter
	Progress float64
	Complete bool

	DragHolder core.Entity
	Preview    string // Zone the dragged entity would snap into
}

// Snapshot copies the current session state
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Puzzle:     s.def.Name,
		Session:    s.id,
		Disabled:   s.disabled,
		Counters:   s.progress.Counters(),
		Progress:   s.progress.Fraction(),
		Complete:   s.progress.Complete(),
		DragHolder: s.lock.Holder(),
	}

	for _, e := range s.world.Interactives.All() {
		ic, _ := s.world.Interactives.Get(e)
		tr, _ := s.world.Transforms.Get(e)
		snap.Entities = append(snap.Entities, EntityView{
			Entity:      e,
			Template:    ic.Template,
			State:       ic.State,
			Position:    tr.Position,
			Rotation:    tr.Rotation,
			Alpha:       tr.Alpha,
			Stage:       ic.Stage,
			MaxStage:    ic.MaxStage,
			Visual:      ic.Visual,
			Zone:        ic.Zone,
			Layer:       ic.Layer,
			Redraggable: ic.Redraggable,
		})
	}
	slices.SortFunc(snap.Entities, func(a, b EntityView) int {
		if c := cmp.Compare(a.Layer, b.Layer); c != 0 {
			return c
		}
		return cmp.Compare(a.Entity, b.Entity)
	})

	for _, z := range s.zones.All() {
		snap.Zones = append(snap.Zones, ZoneView{
			ID:        z.ID,
			Position:  z.Position,
			Range:     z.Range,
			Occupant:  z.Occupant,
			Available: !z.Occupied() && s.zones.PrerequisiteMet(z),
		})
	}

	if h := snap.DragHolder; h != core.EntityNone {
		if drag, ok := s.world.Drags.Get(h); ok {
			snap.Preview = drag.Preview
		}
	}
	return snap
}

// Entity returns the view of a single entity
func (s *Session) Entity(e core.Entity) (EntityView, bool) {
	for _, v := range s.Snapshot().Entities {
		if v.Entity == e {
			return v, true
		}
	}
	return EntityView{}, false
}
