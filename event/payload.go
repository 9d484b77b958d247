package event

import "github.com/lixenwraith/farmstead/core"

// DragPayload identifies the entity whose drag started or ended
type DragPayload struct {
	Entity core.Entity
}

// SnapPayload carries a preview or committed zone for an entity
type SnapPayload struct {
	Entity core.Entity
	Zone   string
}

// PhasePayload describes a completed or cancelled phase
type PhasePayload struct {
	Entity core.Entity
	Index  int
	Kind   string
	Visual string
}

// LockPayload describes an entity entering Locked
type LockPayload struct {
	Entity      core.Entity
	Zone        string
	Stage       int
	Redraggable bool
}

// ProgressPayload describes a counter after an increment
type ProgressPayload struct {
	Counter   string
	Value     int
	Threshold int
	Entity    core.Entity
}

// SpawnPayload describes a clone created by the spawner
type SpawnPayload struct {
	Entity   core.Entity
	Source   core.Entity
	Template string
}

// PuzzlePayload identifies a puzzle-level lifecycle event
type PuzzlePayload struct {
	Puzzle string
	Scene  string // Next scene id, empty when the chain ends
}
