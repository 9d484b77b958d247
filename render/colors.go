package render

import "github.com/gdamore/tcell/v2"

// Palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbHint       = tcell.NewRGBColor(120, 120, 140) // Muted gray for key hints

	// Entity state colors
	RgbIdle       = tcell.NewRGBColor(230, 220, 200) // Warm white
	RgbDragging   = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbSequencing = tcell.NewRGBColor(255, 255, 0)   // Yellow
	RgbLocked     = tcell.NewRGBColor(0, 200, 0)     // Green
	RgbLockedOpen = tcell.NewRGBColor(100, 150, 255) // Blue, locked but redraggable

	// Zone colors
	RgbZoneBlocked   = tcell.NewRGBColor(70, 70, 80)    // Prerequisite unmet
	RgbZoneAvailable = tcell.NewRGBColor(0, 200, 200)   // Cyan
	RgbZoneOccupied  = tcell.NewRGBColor(40, 90, 40)    // Dark green
	RgbZonePreview   = tcell.NewRGBColor(140, 255, 255) // Bright cyan under a drag

	RgbProgress = tcell.NewRGBColor(0, 200, 0)    // Counter at threshold
	RgbPending  = tcell.NewRGBColor(180, 180, 180) // Counter below threshold
	RgbDisabled = tcell.NewRGBColor(255, 80, 80)   // Config error banner
)

// fade blends c toward the background by alpha (1 keeps c, 0 is background)
func fade(c tcell.Color, alpha float64) tcell.Color {
	if alpha >= 1 {
		return c
	}
	alpha = max(alpha, 0)
	r, g, b := c.RGB()
	br, bg, bb := RgbBackground.RGB()
	mix := func(fg, bg int32) int32 {
		return bg + int32(float64(fg-bg)*alpha)
	}
	return tcell.NewRGBColor(mix(r, br), mix(g, bg), mix(b, bb))
}
