package parameter

import "time"

// Interaction
const (
	// DragLayer is the render/hit layer assigned to the entity being dragged
	// Keeps the dragged entity topmost for SpatialQuery
	DragLayer = 1000

	// DefaultHitRadius applies when a template omits hit_radius
	DefaultHitRadius = 1.0

	// DefaultZoneRange applies when a zone omits range
	DefaultZoneRange = 2.0
)

// Progression
const (
	// DefaultTransitionDelay is the wait between puzzle completion and scene load
	DefaultTransitionDelay = 2 * time.Second

	// CancelBoundaryThreshold is the phase progress at which cancellation snaps forward
	CancelBoundaryThreshold = 0.5
)
