package core

import "strings"

// EntityState is the lifecycle state of an interactive entity
type EntityState uint8

const (
	// StateIdle is free-floating and available for pickup
	StateIdle EntityState = iota
	// StateDragging follows the pointer and holds the drag lock
	StateDragging
	// StateSettling is the transient instant between commit and sequence start
	StateSettling
	// StateSequencing runs the post-snap phase sequence
	StateSequencing
	// StateLocked is terminal for dragging unless the redraggable flag is set
	StateLocked
)

var stateNames = [...]string{
	StateIdle:       "Idle",
	StateDragging:   "Dragging",
	StateSettling:   "Settling",
	StateSequencing: "Sequencing",
	StateLocked:     "Locked",
}

func (s EntityState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Unknown"
}

// ParseState resolves a state name, case-insensitive
func ParseState(name string) (EntityState, bool) {
	for i, n := range stateNames {
		if strings.EqualFold(n, name) {
			return EntityState(i), true
		}
	}
	return StateIdle, false
}
