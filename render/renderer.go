package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/farmstead/core"
	"github.com/lixenwraith/farmstead/puzzle"
	"github.com/lixenwraith/farmstead/vmath"
)

// Renderer draws a puzzle snapshot onto a tcell screen
// World units map one-to-one onto cells, offset by the play-field origin
type Renderer struct {
	screen  tcell.Screen
	originX int
	originY int
	paused  bool
}

// NewRenderer creates a renderer; the HUD occupies the row above originY
func NewRenderer(screen tcell.Screen, originX, originY int) *Renderer {
	return &Renderer{
		screen:  screen,
		originX: originX,
		originY: originY,
	}
}

// SetPaused toggles the pause banner
func (r *Renderer) SetPaused(paused bool) {
	r.paused = paused
}

// ToCell converts a world position to screen cell coordinates
func (r *Renderer) ToCell(p vmath.Vec2) (int, int) {
	return r.originX + int(math.Round(p.X)), r.originY + int(math.Round(p.Y))
}

// ToWorld converts a screen cell to the world position at its center
func (r *Renderer) ToWorld(x, y int) vmath.Vec2 {
	return vmath.V2(float64(x-r.originX), float64(y-r.originY))
}

// Draw renders the whole frame and shows it
func (r *Renderer) Draw(snap puzzle.Snapshot) {
	base := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', base)

	r.drawZones(snap, base)
	r.drawEntities(snap, base)
	r.drawStatusBar(snap, base)

	r.screen.Show()
}

func (r *Renderer) drawZones(snap puzzle.Snapshot, base tcell.Style) {
	for _, z := range snap.Zones {
		x, y := r.ToCell(z.Position)
		ch := zoneRune
		color := RgbZoneBlocked
		switch {
		case z.Occupant != core.EntityNone:
			ch = zoneFullRune
			color = RgbZoneOccupied
		case z.ID == snap.Preview:
			color = RgbZonePreview
		case z.Available:
			color = RgbZoneAvailable
		}
		r.screen.SetContent(x, y, ch, nil, base.Foreground(color))
	}
}

// drawEntities relies on the snapshot's layer order so the dragged entity lands on top
func (r *Renderer) drawEntities(snap puzzle.Snapshot, base tcell.Style) {
	for _, v := range snap.Entities {
		x, y := r.ToCell(v.Position)
		style := base.Foreground(fade(stateColor(v), v.Alpha))
		if v.State == core.StateDragging {
			style = style.Bold(true)
		}
		r.screen.SetContent(x, y, Glyph(v.Visual, v.Template), nil, style)
	}
}

func stateColor(v puzzle.EntityView) tcell.Color {
	switch v.State {
	case core.StateDragging:
		return RgbDragging
	case core.StateSettling, core.StateSequencing:
		return RgbSequencing
	case core.StateLocked:
		if v.Redraggable {
			return RgbLockedOpen
		}
		return RgbLocked
	default:
		return RgbIdle
	}
}

func (r *Renderer) drawStatusBar(snap puzzle.Snapshot, base tcell.Style) {
	width, height := r.screen.Size()
	row := max(r.originY-1, 0)

	x := r.drawText(0, row, snap.Puzzle, base.Foreground(RgbStatusBar).Bold(true))
	if snap.Disabled {
		r.drawText(x+2, row, "configuration error, puzzle disabled", base.Foreground(RgbDisabled))
		return
	}

	for _, c := range snap.Counters {
		color := RgbPending
		if c.Reached() {
			color = RgbProgress
		}
		x = r.drawText(x+2, row, fmt.Sprintf("%s %d/%d", c.Name, min(c.Value, c.Threshold), c.Threshold), base.Foreground(color))
	}
	x = r.drawText(x+2, row, ProgressBar(snap.Progress, 10), base.Foreground(RgbPending))
	if snap.Complete {
		x = r.drawText(x+2, row, "complete", base.Foreground(RgbProgress).Bold(true))
	}
	if r.paused {
		r.drawText(x+2, row, "paused", base.Foreground(RgbDragging))
	}

	hint := "drag with the mouse   r reset   p pause   q quit"
	r.drawText(max(width-len(hint), 0), height-1, hint, base.Foreground(RgbHint))
}

// drawText writes s from (x, y) and returns the column after the last rune
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

// ProgressBar renders fraction as a fixed-width bar, used by the status line
func ProgressBar(fraction float64, width int) string {
	fraction = vmath.Clamp01(fraction)
	filled := int(math.Round(fraction * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
