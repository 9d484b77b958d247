package component

import "github.com/lixenwraith/farmstead/core"

// InteractiveComponent carries the state-machine data of a draggable entity
type InteractiveComponent struct {
	Template string           // Originating template id (clone lineage)
	State    core.EntityState // Current lifecycle state

	// Redraggable marks Locked-but-draggable-stage (e.g. a vessel returning for refill)
	Redraggable bool

	Stage    int    // Entity-local progress (fill level, cook step), 0..MaxStage
	MaxStage int    // Upper bound for Stage
	Visual   string // Opaque visual-state tag for the rendering collaborator

	Zone    string // Occupied snap zone id, empty when free-floating
	Settled bool   // True after the first successful settle

	HitRadius float64 // Pointer pick radius around Position
	Layer     int     // Higher layers are picked first
}

// Draggable reports whether BeginDrag may be accepted from the current state
func (c InteractiveComponent) Draggable() bool {
	return c.State == core.StateIdle || (c.State == core.StateLocked && c.Redraggable)
}
