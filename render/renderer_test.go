package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/farmstead/core"
	"github.com/lixenwraith/farmstead/puzzle"
	"github.com/lixenwraith/farmstead/vmath"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.SetSize(80, 24)
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	return screen
}

func TestRendererDrawsZonesAndEntities(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen, 2, 2)

	snap := puzzle.Snapshot{
		Puzzle: "grain_milling",
		Zones: []puzzle.ZoneView{
			{ID: "mill", Position: vmath.V2(10, 3), Available: true},
			{ID: "cart", Position: vmath.V2(20, 3)},
		},
		Entities: []puzzle.EntityView{
			{Entity: 1, Template: "sack", Visual: "sack_grain", State: core.StateIdle, Position: vmath.V2(4.4, 5.6), Alpha: 1},
			{Entity: 2, Template: "sack", Visual: "sack_lifted", State: core.StateDragging, Position: vmath.V2(10, 3), Alpha: 1},
		},
		Counters: []puzzle.Counter{{Name: "flour", Threshold: 3, Value: 1}},
		Preview:  "mill",
	}
	r.Draw(snap)

	mainc, _, style, _ := screen.GetContent(6, 8)
	assert.Equal(t, '§', mainc, "positions round to the nearest cell")
	fg, _, _ := style.Decompose()
	assert.Equal(t, RgbIdle, fg)

	// The dragged entity covers the zone it previews
	mainc, _, style, _ = screen.GetContent(12, 5)
	assert.Equal(t, '§', mainc)
	fg, _, attrs := style.Decompose()
	assert.Equal(t, RgbDragging, fg)
	assert.NotZero(t, attrs&tcell.AttrBold)

	mainc, _, style, _ = screen.GetContent(22, 5)
	assert.Equal(t, zoneRune, mainc)
	fg, _, _ = style.Decompose()
	assert.Equal(t, RgbZoneBlocked, fg)

	assert.Equal(t, "grain_milling  flour 1/3", rowText(screen, 1, 24))
}

func TestRendererDisabledBanner(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen, 0, 1)
	r.Draw(puzzle.Snapshot{Puzzle: "broken", Disabled: true})
	assert.Contains(t, rowText(screen, 0, 80), "configuration error")
}

func TestToWorldInvertsToCell(t *testing.T) {
	r := NewRenderer(nil, 3, 2)
	x, y := r.ToCell(vmath.V2(7, 9))
	assert.Equal(t, vmath.V2(7, 9), r.ToWorld(x, y))
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, '§', Glyph("sack", "x"))
	assert.Equal(t, 'U', Glyph("bucket_full", "bucket"))
	assert.Equal(t, 'W', Glyph("mystery", "widget"))
	assert.Equal(t, '?', Glyph("", ""))
}

func TestFade(t *testing.T) {
	assert.Equal(t, RgbLocked, fade(RgbLocked, 1))
	assert.Equal(t, RgbBackground, fade(RgbLocked, 0))

	r, g, b := fade(tcell.NewRGBColor(226, 227, 238), 0.5).RGB()
	assert.Equal(t, [3]int32{126, 127, 138}, [3]int32{r, g, b})
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░", ProgressBar(0.5, 10))
	assert.Equal(t, "░░░░", ProgressBar(-1, 4))
	assert.Equal(t, "████", ProgressBar(2, 4))
}

func rowText(screen tcell.Screen, y, width int) string {
	out := make([]rune, 0, width)
	for x := 0; x < width; x++ {
		mainc, _, _, _ := screen.GetContent(x, y)
		out = append(out, mainc)
	}
	return string(out)
}
