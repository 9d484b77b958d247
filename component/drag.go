package component

import "github.com/lixenwraith/farmstead/vmath"

// DragComponent exists only while the entity is in Dragging
type DragComponent struct {
	Offset    vmath.Vec2 // Entity position minus pointer position at pickup
	Preview   string     // Zone id the resolver would commit to, empty if none
	BaseLayer int        // Layer to restore on release
}
