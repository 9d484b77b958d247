package component

import "github.com/lixenwraith/farmstead/vmath"

// TransformComponent is the world placement of an interactive entity
// Owned by drag code while unsnapped and by the phase sequencer while sequencing
type TransformComponent struct {
	Position vmath.Vec2
	Rotation float64 // Degrees
	Alpha    float64 // 0 transparent, 1 opaque
}
