package panes_test

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/propedit/internal/config"
	"github.com/ja-he/propedit/internal/control/action"
	"github.com/ja-he/propedit/internal/control/edit"
	"github.com/ja-he/propedit/internal/input"
	"github.com/ja-he/propedit/internal/input/processors"
	"github.com/ja-he/propedit/internal/model"
	"github.com/ja-he/propedit/internal/potatolog"
	"github.com/ja-he/propedit/internal/schema"
	"github.com/ja-he/propedit/internal/styling"
	"github.com/ja-he/propedit/internal/tui"
	"github.com/ja-he/propedit/internal/ui"
	"github.com/ja-he/propedit/internal/ui/panes"
)

type testUI struct {
	screen   tcell.SimulationScreen
	handler  *tui.ScreenHandler
	wrangler *ui.CursorWrangler
	root     *panes.RootPane
	help     *panes.HelpPane
	editor   *edit.Editor
	history  *action.History
	sink     *potatolog.MemoryLogReaderWriter

	label       *model.Label
	table       model.SettingsTable
	helpVisible bool
	logVisible  bool
	extraCalls  []input.Actionspec
}

func newTestUI(t *testing.T, w, h int, options edit.Options) *testUI {
	t.Helper()

	u := &testUI{
		screen:  tcell.NewSimulationScreen("UTF-8"),
		history: action.NewHistory(0),
		sink:    potatolog.NewMemoryLogReaderWriter(0),
	}
	handler, err := tui.NewScreenHandler(u.screen)
	require.NoError(t, err)
	u.screen.SetSize(w, h)
	t.Cleanup(handler.Fini)
	u.handler = handler
	u.wrangler = ui.NewCursorWrangler(handler)

	cfg := config.Default(config.Dark)
	stylesheet := styling.NewStylesheetFromConfig(cfg.Stylesheet)

	screenDims := handler.Dimensions
	statusDims := func() (x, y, w, h int) {
		_, _, sw, sh := screenDims()
		return 0, sh - 1, sw, 1
	}
	overlayDims := func() (x, y, w, h int) {
		_, _, sw, sh := screenDims()
		return 2, 1, sw - 4, sh - 2
	}
	var root *panes.RootPane
	previewDims := func() (x, y, w, h int) {
		cx, cy, cw, ch := root.CanvasDimensions()
		_, _, sw, _ := screenDims()
		return cx + cw, cy, sw - cx - cw, ch
	}

	preview := panes.NewPreviewPane(ui.NewConstrainedRenderer(handler, previewDims), previewDims, stylesheet, nil, func() *model.Label { return u.label })
	status := panes.NewStatusPane(ui.NewConstrainedRenderer(handler, statusDims), statusDims, stylesheet,
		func() string { return "label" },
		func() string { return "all good" },
		func() string { return "-- NAVIGATE --" },
	)
	logPane := panes.NewLogPane(ui.NewConstrainedRenderer(handler, overlayDims), overlayDims, stylesheet,
		func() bool { return u.logVisible }, func() string { return "LOG" }, u.sink)
	u.help = panes.NewHelpPane(ui.NewConstrainedRenderer(handler, overlayDims), overlayDims, stylesheet,
		func() bool { return u.helpVisible }, nil)

	root = panes.NewRootPane(handler, handler, u.wrangler, stylesheet,
		func() string { return "Label Options" }, 1,
		preview, status, logPane, u.help,
		processors.NewModalInputProcessor(input.EmptyTree()),
	)
	u.root = root

	extra := map[input.Actionspec]func(){}
	for _, a := range []input.Actionspec{"undo", "reload", "scroll-down", "scroll-up", "toggle-help", "toggle-log", "quit"} {
		a := a
		extra[a] = func() { u.extraCalls = append(u.extraCalls, a) }
	}
	extra["undo"] = func() { u.history.Undo() }

	u.editor = edit.New(root, "test-editor", options)
	u.editor.SetRenderer(panes.NewMenuRenderer(cfg.Keys, extra, u.history, u.wrangler))
	u.editor.SetTemplates(stylesheet.Templates)
	return u
}

func (u *testUI) beginEdit(t *testing.T, table model.SettingsTable) {
	t.Helper()
	u.table = table
	u.label = model.NewLabel("test")
	keyMap := schema.Default.DefaultKeyMap(model.LabelObjectType)
	u.label.Load(table, keyMap)
	err := u.editor.BeginEdit(u.label, table, keyMap, func(obj model.Object, attribute string, value any, _ model.SettingsTable, _ string) {
		obj.(*model.Label).Apply(attribute, value)
	})
	require.NoError(t, err)
}

func (u *testUI) key(keys ...input.Key) {
	for _, k := range keys {
		u.root.ProcessInput(k)
	}
}

func (u *testUI) typeRunes(s string) {
	for _, r := range s {
		u.key(input.Key{Key: tcell.KeyRune, Ch: r})
	}
}

func (u *testUI) canvas(t *testing.T) *panes.PropertyPane {
	t.Helper()
	canvas := u.root.PropertyPane()
	require.NotNil(t, canvas)
	return canvas
}

func (u *testUI) screenText() string {
	u.root.Draw()
	cells, w, h := u.screen.GetContents()
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := cells[y*w+x]
			if len(c.Runes) == 0 {
				b.WriteRune(' ')
			} else {
				b.WriteRune(c.Runes[0])
			}
		}
		b.WriteRune('\n')
	}
	return b.String()
}

var (
	enter = input.Key{Key: tcell.KeyEnter}
	esc   = input.Key{Key: tcell.KeyEscape}
)

func runeKey(r rune) input.Key { return input.Key{Key: tcell.KeyRune, Ch: r} }

func TestNewCanvas(t *testing.T) {
	u := newTestUI(t, 100, 30, edit.Options{Width: 320, Height: 160})

	canvas := u.canvas(t)
	assert.Same(t, canvas, u.editor.Canvas())
	assert.Same(t, canvas.Frame(), u.editor.OptionsFrame())
	assert.Equal(t, "test-editor-canvas", canvas.GetFrameName())

	x, y, w, h := canvas.Dimensions()
	assert.Equal(t, []int{0, 0, 40, 10}, []int{x, y, w, h}, "pixels are converted to cells")

	t.Run("limited by screen", func(t *testing.T) {
		u := newTestUI(t, 30, 12, edit.Options{})
		_, _, w, h := u.canvas(t).Dimensions()
		assert.Equal(t, 30, w)
		assert.Equal(t, 11, h, "the status bar keeps its row")
	})
}

func TestRenderMenu(t *testing.T) {
	u := newTestUI(t, 100, 40, edit.Options{})
	u.beginEdit(t, model.SettingsTable{"text": "Hello", "size": 12, "color": "#ff0000"})

	frame := u.canvas(t).Frame()
	require.NotNil(t, frame.Panel())
	description, err := u.editor.RebuildMenu()
	require.NoError(t, err)
	require.Len(t, frame.Fields(), len(description.Fields))
	assert.Equal(t, "text", frame.Fields()[0].GetView().GetID())

	text := u.screenText()
	assert.Contains(t, text, "Label Options")
	assert.Contains(t, text, "Text")
	assert.Contains(t, text, "Hello")
	assert.Contains(t, text, "Shadow Color")
	assert.Contains(t, text, "[ ] off", "toggles show their state")
	assert.Contains(t, text, "< None", "dropdowns show the selected option")
	assert.Contains(t, text, "all good", "status is drawn")
	assert.Contains(t, text, "Preview")

	t.Run("rebuild replaces the fields", func(t *testing.T) {
		old := frame.Fields()[0]
		_, err := u.editor.RebuildMenu()
		require.NoError(t, err)
		assert.NotSame(t, old, frame.Fields()[0])
	})
}

func TestNothingToEdit(t *testing.T) {
	u := newTestUI(t, 80, 20, edit.Options{})

	assert.Nil(t, u.canvas(t).Frame().Panel())
	text := u.screenText()
	assert.Contains(t, text, "(nothing to edit)")
	assert.Contains(t, text, "(nothing to preview)")
}

func TestPanelInput(t *testing.T) {
	u := newTestUI(t, 100, 40, edit.Options{})
	u.beginEdit(t, model.SettingsTable{"text": "Hello", "size": 12})
	panel := u.canvas(t).Frame().Panel()

	t.Run("adjust", func(t *testing.T) {
		u.key(runeKey('j'))
		require.Equal(t, "size", panel.ActiveField().GetID())
		u.key(runeKey('l'), runeKey('l'))
		assert.EqualValues(t, 14, u.table["size"])
		assert.EqualValues(t, 14, u.label.Size, "the change callback reached the object")

		u.key(runeKey('u'))
		assert.EqualValues(t, 13, u.table["size"])
	})

	t.Run("text entry", func(t *testing.T) {
		u.key(runeKey('k'), enter)
		require.True(t, panel.IsInField())
		assert.True(t, u.root.CapturesInput())

		u.typeRunes("!?q")
		assert.Empty(t, u.extraCalls, "typed keys are not interpreted as panel mappings")

		u.screenText()
		_, _, visible := u.screen.GetCursor()
		assert.True(t, visible, "the cursor is shown while typing")

		u.key(enter)
		assert.False(t, panel.IsInField())
		assert.Equal(t, "Hello!?q", u.table["text"])
		assert.Equal(t, "Hello!?q", u.label.Text)

		u.screenText()
		_, _, visible = u.screen.GetCursor()
		assert.False(t, visible)
	})

	t.Run("abort", func(t *testing.T) {
		u.key(enter)
		u.typeRunes("zzz")
		u.key(esc)
		assert.False(t, panel.IsInField())
		assert.Equal(t, "Hello!?q", u.table["text"])
	})

	t.Run("extra actions", func(t *testing.T) {
		u.key(runeKey('?'), runeKey('q'))
		assert.Equal(t, []input.Actionspec{"toggle-help", "quit"}, u.extraCalls)
	})
}

func TestScrolling(t *testing.T) {
	u := newTestUI(t, 80, 8, edit.Options{})
	u.beginEdit(t, model.SettingsTable{"text": "Hello", "size": 12})
	canvas := u.canvas(t)
	panel := canvas.Frame().Panel()
	require.Greater(t, len(panel.GetFields()), 6)

	u.screenText()
	assert.Equal(t, 0, canvas.ScrollOffset())

	u.key(runeKey('G'))
	u.screenText()
	assert.Greater(t, canvas.ScrollOffset(), 0, "scrolled to the selected field")

	_, y, _, _ := canvas.Dimensions()
	info, ok := canvas.GetPositionInfo(3, y+1).(ui.PropertyPanePositionInfo)
	require.True(t, ok)
	assert.True(t, info.OnField)
	assert.Equal(t, canvas.ScrollOffset(), info.FieldIndex)

	canvas.ScrollUp(100)
	assert.Equal(t, 0, canvas.ScrollOffset())
	u.screenText()
	assert.Equal(t, 0, canvas.ScrollOffset(), "scrolling by hand is kept while the selection does not change")

	canvas.ScrollDown(100)
	offset := canvas.ScrollOffset()
	assert.Greater(t, offset, 0)
	canvas.ScrollDown(1)
	assert.Equal(t, offset, canvas.ScrollOffset(), "scrolling stops at the last field")

	info, ok = u.root.GetPositionInfo(3, 0).(ui.PropertyPanePositionInfo)
	require.True(t, ok)
	assert.False(t, info.OnField, "the title row is no field")
}

func TestRebuildKeepsSelection(t *testing.T) {
	u := newTestUI(t, 80, 8, edit.Options{})
	u.beginEdit(t, model.SettingsTable{"text": "Hello", "size": 12})
	canvas := u.canvas(t)

	u.key(runeKey('G'))
	u.screenText()
	selected := canvas.Frame().Panel().ActiveField().GetID()
	index := canvas.Frame().Panel().GetActiveFieldIndex()
	offset := canvas.ScrollOffset()
	require.Greater(t, offset, 0)

	_, err := u.editor.RebuildMenu()
	require.NoError(t, err)
	u.screenText()
	assert.Equal(t, selected, canvas.Frame().Panel().ActiveField().GetID())
	assert.Equal(t, index, canvas.Frame().Panel().GetActiveFieldIndex())
	assert.Equal(t, offset, canvas.ScrollOffset())

	t.Run("selection is reset when its field is gone", func(t *testing.T) {
		u.key(runeKey('g'), runeKey('g'))
		require.Equal(t, "text", canvas.Frame().Panel().ActiveField().GetID())
		canvas.ScrollDown(100)
		require.Greater(t, canvas.ScrollOffset(), 0)

		delete(u.table, "text")
		_, err := u.editor.RebuildMenu()
		require.NoError(t, err)
		u.screenText()
		assert.Equal(t, 0, canvas.Frame().Panel().GetActiveFieldIndex())
		assert.Equal(t, "size", canvas.Frame().Panel().ActiveField().GetID())
		assert.Equal(t, 0, canvas.ScrollOffset())
	})
}

func TestColorField(t *testing.T) {
	u := newTestUI(t, 100, 40, edit.Options{})
	u.beginEdit(t, model.SettingsTable{"color": "#123456", "shadowcolor": "nope"})
	text := u.screenText()
	assert.Contains(t, text, "#123456")
	assert.Contains(t, text, "nope")
	assert.Contains(t, text, "??", "invalid colors get no swatch")
}

func TestPreview(t *testing.T) {
	u := newTestUI(t, 100, 30, edit.Options{Width: 320})
	u.beginEdit(t, model.SettingsTable{"text": "Hi there", "anchor": map[string]any{"side": int(model.AnchorCenter), "x": 0, "y": 0}})

	text := u.screenText()
	assert.Contains(t, text, "Hi there")
	assert.Contains(t, text, "center")
}

func TestHelpAndLog(t *testing.T) {
	u := newTestUI(t, 80, 20, edit.Options{})
	u.beginEdit(t, model.SettingsTable{"text": "Hello"})

	u.help.Content = input.Help{"q": "quit", "?": "toggle-help"}
	u.helpVisible = true
	text := u.screenText()
	assert.Contains(t, text, "toggle-help")
	assert.Contains(t, text, "quit")
	assert.Equal(t, u.help.Identify(), u.root.Focusses())

	u.helpVisible = false
	u.logVisible = true
	logger := zerolog.New(u.sink)
	logger.Warn().Str("source", "test").Msg("something happened")
	text = u.screenText()
	assert.Contains(t, text, "LOG")
	assert.Contains(t, text, "something happened")
	assert.Contains(t, text, "warn")
}
