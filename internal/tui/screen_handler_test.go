package tui_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/propedit/internal/styling"
	"github.com/ja-he/propedit/internal/tui"
	"github.com/ja-he/propedit/internal/ui"
)

func newSimulation(t *testing.T, w, h int) (tcell.SimulationScreen, *tui.ScreenHandler) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	handler, err := tui.NewScreenHandler(screen)
	require.NoError(t, err)
	screen.SetSize(w, h)
	t.Cleanup(handler.Fini)
	return screen, handler
}

func row(screen tcell.SimulationScreen, y int) string {
	cells, w, _ := screen.GetContents()
	result := make([]rune, 0, w)
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			result = append(result, ' ')
			continue
		}
		result = append(result, c.Runes[0])
	}
	return string(result)
}

func TestDrawText(t *testing.T) {
	screen, handler := newSimulation(t, 6, 3)
	style := styling.StyleFromHex("#ffffff", "#000000")

	handler.DrawText(1, 0, 4, 2, style, "abcdefghij")
	handler.Show()

	assert.Equal(t, " abcd ", row(screen, 0))
	assert.Equal(t, " efgh ", row(screen, 1))
	assert.Equal(t, "      ", row(screen, 2), "text beyond the height is dropped")
}

func TestDimensionsAndCursor(t *testing.T) {
	screen, handler := newSimulation(t, 20, 10)

	x, y, w, h := handler.Dimensions()
	assert.Equal(t, []int{0, 0, 20, 10}, []int{x, y, w, h})

	handler.ShowCursor(ui.CursorLocation{X: 3, Y: 4})
	handler.Show()
	cx, cy, visible := screen.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 3, cx)
	assert.Equal(t, 4, cy)

	handler.HideCursor()
	handler.NeedsSync()
	handler.Show()
	_, _, visible = screen.GetCursor()
	assert.False(t, visible)
}
