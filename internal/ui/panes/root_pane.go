package panes

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/propedit/internal/control/edit"
	"github.com/ja-he/propedit/internal/input"
	"github.com/ja-he/propedit/internal/styling"
	"github.com/ja-he/propedit/internal/ui"
	"github.com/ja-he/propedit/internal/util"
)

// RootPane acts as the root UI pane, wrapping all subpanes, managing the
// render cycle, invoking the subpanes' rendering, etc.
//
// It is the container editors are placed in: it creates their canvas, which
// it places at the top left of the screen (implements edit.Container).
type RootPane struct {
	ID ui.PaneID

	renderer       ui.RenderOrchestratorControl
	screen         ui.ConstrainedRenderer
	cursorWrangler *ui.CursorWrangler
	stylesheet     *styling.Stylesheet

	canvasTitle  func() string
	statusHeight int

	propertyPane *PropertyPane
	previewPane  ui.Pane
	statusPane   ui.Pane
	logPane      ui.Pane
	helpPane     ui.Pane

	inputProcessor input.ModalInputProcessor

	preDrawStackMtx sync.Mutex
	preDrawStack    []func()

	log zerolog.Logger
}

// NewRootPane constructs and returns a new RootPane.
// The canvas is only created once an editor asks for it (see NewCanvas).
func NewRootPane(
	renderer ui.RenderOrchestratorControl,
	screen ui.ConstrainedRenderer,
	cursorWrangler *ui.CursorWrangler,
	stylesheet *styling.Stylesheet,
	canvasTitle func() string,
	statusHeight int,
	previewPane ui.Pane,
	statusPane ui.Pane,
	logPane ui.Pane,
	helpPane ui.Pane,
	inputProcessor input.ModalInputProcessor,
) *RootPane {
	rootPane := &RootPane{
		ID:             ui.GeneratePaneID(),
		renderer:       renderer,
		screen:         screen,
		cursorWrangler: cursorWrangler,
		stylesheet:     stylesheet,
		canvasTitle:    canvasTitle,
		statusHeight:   statusHeight,
		previewPane:    previewPane,
		statusPane:     statusPane,
		logPane:        logPane,
		helpPane:       helpPane,
		inputProcessor: inputProcessor,
		log:            log.With().Str("source", "root-pane").Logger(),
	}
	defer rootPane.log.Trace().Msgf("created root pane with id '%d'", rootPane.Identify())

	for _, pane := range []ui.Pane{previewPane, statusPane, logPane, helpPane} {
		pane.SetParent(rootPane)
	}

	return rootPane
}

// NewCanvas creates the canvas of an editor, sized to the given pixel
// dimensions (but no larger than the screen allows).
// A root pane hosts a single canvas; a second one replaces the first.
func (p *RootPane) NewCanvas(name string, width, height int) edit.Canvas {
	if p.propertyPane != nil {
		p.log.Warn().Msgf("replacing canvas '%s' with '%s'", p.propertyPane.GetFrameName(), name)
		p.DeferPreDraw(p.propertyPane.Undraw)
	}

	columns, rows := ui.PixelsToColumns(width), ui.PixelsToRows(height)
	dimensions := func() (x, y, w, h int) {
		sx, sy, sw, sh := p.screen.Dimensions()
		return sx, sy, min(columns, sw), max(min(rows, sh-p.statusHeight), 0)
	}

	p.propertyPane = NewPropertyPane(
		ui.NewConstrainedRenderer(p.screen, dimensions),
		dimensions,
		p.stylesheet,
		name,
		p.canvasTitle,
	)
	p.propertyPane.SetParent(p)
	p.log.Debug().Msgf("created canvas '%s' (%dx%d cells)", name, columns, rows)
	return p.propertyPane
}

// PropertyPane returns the canvas, or nil if none was created yet.
func (p *RootPane) PropertyPane() *PropertyPane { return p.propertyPane }

// CanvasDimensions returns the dimensions of the canvas (all zero if there is
// none).
func (p *RootPane) CanvasDimensions() (x, y, w, h int) {
	if p.propertyPane == nil {
		return 0, 0, 0, 0
	}
	return p.propertyPane.Dimensions()
}

// Dimensions gives the dimensions (x-axis offset, y-axis offset, width,
// height) for this pane.
func (p *RootPane) Dimensions() (x, y, w, h int) {
	return p.screen.Dimensions()
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *RootPane) GetPositionInfo(x, y int) ui.PositionInfo {
	activePanes := p.getCurrentlyActivePanesInOrder()
	for i := len(activePanes) - 1; i >= 0; i-- {
		if util.NewRect(activePanes[i].Dimensions()).Contains(x, y) {
			return activePanes[i].GetPositionInfo(x, y)
		}
	}
	return ui.NoPanePositionInfo{}
}

func (p *RootPane) getCurrentlyActivePanesInOrder() []ui.Pane {
	candidates := []ui.Pane{p.previewPane, p.statusPane, p.logPane, p.helpPane}
	if p.propertyPane != nil {
		candidates = append([]ui.Pane{p.propertyPane}, candidates...)
	}

	active := make([]ui.Pane, 0, len(candidates))
	for _, pane := range candidates {
		if pane.IsVisible() {
			active = append(active, pane)
		}
	}
	return active
}

// IsVisible returns true; the root is always visible.
func (p *RootPane) IsVisible() bool { return true }

// Draw draws this pane.
func (p *RootPane) Draw() {
	p.preDrawStackMtx.Lock()
	for _, f := range p.preDrawStack {
		f()
	}
	p.preDrawStack = nil
	p.preDrawStackMtx.Unlock()

	p.renderer.Clear()

	for _, pane := range p.getCurrentlyActivePanesInOrder() {
		pane.Draw()
	}

	// After all drawing draw or hide the cursor, depending on what is requested
	// during the draw of subpanes.
	p.cursorWrangler.Enact()

	p.renderer.Show()
}

// Undraw clears the screen.
func (p *RootPane) Undraw() {
	p.renderer.Clear()
	p.renderer.Show()
}

// CapturesInput returns whether this processor "captures" input, i.E. whether
// it ought to take priority in processing over other processors.
func (p *RootPane) CapturesInput() bool {
	return p.focussedPane().CapturesInput() || p.inputProcessor.CapturesInput()
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. the processor performed
// an action based on the input.
// Defers to the panes' input processor or its focussed subpanes.
func (p *RootPane) ProcessInput(key input.Key) bool {
	switch {
	case p.inputProcessor.CapturesInput():
		return p.inputProcessor.ProcessInput(key)
	case p.focussedPane().CapturesInput():
		return p.focussedPane().ProcessInput(key)
	default:
		if p.focussedPane().ProcessInput(key) {
			return true
		}
		return p.inputProcessor.ProcessInput(key)
	}
}

// Identify returns the root pane's ID.
func (p *RootPane) Identify() ui.PaneID { return p.ID }

// HasFocus returns true; the root always has focus.
func (p *RootPane) HasFocus() bool { return true }

// Focusses returns the ID of the focussed subpane.
func (p *RootPane) Focusses() ui.PaneID {
	return p.focussedPane().Identify()
}

// FocusPrev does nothing.
func (p *RootPane) FocusPrev() {}

// FocusNext does nothing.
func (p *RootPane) FocusNext() {}

func (p *RootPane) focussedPane() ui.Pane {
	switch {
	case p.helpPane.IsVisible():
		return p.helpPane
	case p.logPane.IsVisible():
		return p.logPane
	case p.propertyPane != nil:
		return p.propertyPane
	default:
		return p.statusPane
	}
}

// SetParent panics; the root has no parent.
func (p *RootPane) SetParent(ui.PaneQuerier) { panic("root set parent") }

// DeferPreDraw attaches a function to the pre-draw stack, which is executed
// (and emptied) at the beginning of the next draw.
func (p *RootPane) DeferPreDraw(f func()) {
	p.preDrawStackMtx.Lock()
	p.preDrawStack = append(p.preDrawStack, f)
	p.preDrawStackMtx.Unlock()
}

// ApplyModalOverlay applies an overlay to this processor.
// It returns the processors index, by which in the future, all overlays down
// to and including this overlay can be removed
func (p *RootPane) ApplyModalOverlay(overlay input.SimpleInputProcessor) (index uint) {
	return p.inputProcessor.ApplyModalOverlay(overlay)
}

// PopModalOverlay removes the topmost overlay from this processor.
func (p *RootPane) PopModalOverlay() error {
	return p.inputProcessor.PopModalOverlay()
}

// PopModalOverlays pops all overlays down to and including the one at the
// specified index.
func (p *RootPane) PopModalOverlays(index uint) {
	p.inputProcessor.PopModalOverlays(index)
}

// GetHelp returns the input help map for this processor.
func (p *RootPane) GetHelp() input.Help {
	result := input.Help{}

	for k, v := range p.inputProcessor.GetHelp() {
		result[k] = v
	}
	for k, v := range p.focussedPane().GetHelp() {
		result[k] = v
	}

	return result
}
