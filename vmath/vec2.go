package vmath

import "math"

// Vec2 is a float64 2D world-space vector
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// V2DistSq returns squared euclidean distance, avoids sqrt for comparisons
func V2DistSq(a, b Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

func V2Dist(a, b Vec2) float64 {
	return math.Sqrt(V2DistSq(a, b))
}

// V2Lerp interpolates from a to b, t is clamped to [0, 1]
func V2Lerp(a, b Vec2, t float64) Vec2 {
	t = Clamp01(t)
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// Lerp interpolates scalars, t is clamped to [0, 1]
func Lerp(a, b, t float64) float64 {
	t = Clamp01(t)
	return a + (b-a)*t
}

// LerpAngle interpolates degrees along the shortest arc
// Result is not normalized so that t=1 yields exactly a+delta
func LerpAngle(a, b, t float64) float64 {
	delta := math.Mod(b-a, 360)
	if delta > 180 {
		delta -= 360
	} else if delta < -180 {
		delta += 360
	}
	if t >= 1 {
		return b
	}
	return a + delta*Clamp01(t)
}

func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
