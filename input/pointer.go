package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/farmstead/vmath"
)

// PointerAction is the semantic pointer gesture extracted from mouse events
type PointerAction uint8

const (
	PointerNone PointerAction = iota
	PointerPress
	PointerMove
	PointerRelease
)

func (a PointerAction) String() string {
	switch a {
	case PointerPress:
		return "press"
	case PointerMove:
		return "move"
	case PointerRelease:
		return "release"
	default:
		return "none"
	}
}

// PointerEvent is one gesture in world coordinates
type PointerEvent struct {
	Action   PointerAction
	Position vmath.Vec2
}

// CellMapper converts screen cells to world positions
type CellMapper interface {
	ToWorld(x, y int) vmath.Vec2
}

// Pointer is the mouse state machine
// tcell reports button state per event; Pointer turns it into press/move/release edges
type Pointer struct {
	mapper  CellMapper
	pressed bool
	lastX   int
	lastY   int
}

// NewPointer creates a pointer adapter
func NewPointer(mapper CellMapper) *Pointer {
	return &Pointer{mapper: mapper}
}

// Pressed reports whether the primary button is held
func (p *Pointer) Pressed() bool {
	return p.pressed
}

// Handle converts a mouse event; hover without a held button yields PointerNone
func (p *Pointer) Handle(ev *tcell.EventMouse) PointerEvent {
	x, y := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0
	pos := p.mapper.ToWorld(x, y)

	switch {
	case down && !p.pressed:
		p.pressed = true
		p.lastX, p.lastY = x, y
		return PointerEvent{Action: PointerPress, Position: pos}

	case down && p.pressed:
		if x == p.lastX && y == p.lastY {
			return PointerEvent{Action: PointerNone, Position: pos}
		}
		p.lastX, p.lastY = x, y
		return PointerEvent{Action: PointerMove, Position: pos}

	case !down && p.pressed:
		p.pressed = false
		return PointerEvent{Action: PointerRelease, Position: pos}
	}
	return PointerEvent{Action: PointerNone, Position: pos}
}

// Reset forgets a held button, used when the puzzle is swapped mid-drag
func (p *Pointer) Reset() {
	p.pressed = false
}
