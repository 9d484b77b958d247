package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/farmstead/vmath"
)

type offsetMapper struct{ dx, dy int }

func (m offsetMapper) ToWorld(x, y int) vmath.Vec2 {
	return vmath.V2(float64(x-m.dx), float64(y-m.dy))
}

func mouse(x, y int, buttons tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, buttons, tcell.ModNone)
}

func TestPointerGestures(t *testing.T) {
	p := NewPointer(offsetMapper{dx: 2, dy: 1})

	tests := []struct {
		name string
		ev   *tcell.EventMouse
		want PointerEvent
	}{
		{"hover", mouse(5, 5, tcell.ButtonNone), PointerEvent{PointerNone, vmath.V2(3, 4)}},
		{"press", mouse(5, 5, tcell.Button1), PointerEvent{PointerPress, vmath.V2(3, 4)}},
		{"hold in place", mouse(5, 5, tcell.Button1), PointerEvent{PointerNone, vmath.V2(3, 4)}},
		{"drag", mouse(8, 6, tcell.Button1), PointerEvent{PointerMove, vmath.V2(6, 5)}},
		{"release", mouse(8, 6, tcell.ButtonNone), PointerEvent{PointerRelease, vmath.V2(6, 5)}},
		{"hover after", mouse(9, 6, tcell.ButtonNone), PointerEvent{PointerNone, vmath.V2(7, 5)}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, p.Handle(tc.ev), tc.name)
	}
	assert.False(t, p.Pressed())
}

func TestPointerIgnoresSecondaryButton(t *testing.T) {
	p := NewPointer(offsetMapper{})
	assert.Equal(t, PointerNone, p.Handle(mouse(1, 1, tcell.Button2)).Action)
}

func TestPointerReset(t *testing.T) {
	p := NewPointer(offsetMapper{})
	p.Handle(mouse(1, 1, tcell.Button1))
	p.Reset()
	assert.Equal(t, PointerPress, p.Handle(mouse(1, 1, tcell.Button1)).Action)
}

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want Command
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), CommandQuit},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), CommandQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), CommandReset},
		{tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), CommandPause},
		{tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), CommandSkip},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), CommandNone},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, KeyCommand(tc.ev))
	}
}
