package ui

import (
	"github.com/rs/zerolog/log"

	"github.com/ja-he/propedit/internal/input"
	"github.com/ja-he/propedit/internal/styling"
)

// LeafPane is a simple set of data and implementation of a "leaf pane", i.E. a
// pane that does not have subpanes but instead makes actual draw calls.
//
// Input is deferred to the pane's input processor; a leaf without one
// processes nothing.
type LeafPane struct {
	BasePane
	Renderer   ConstrainedRenderer
	Dims       func() (x, y, w, h int)
	Stylesheet *styling.Stylesheet
}

// NewLeafPane returns a leaf pane drawing via the given renderer within the
// given dimensions.
func NewLeafPane(
	renderer ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet *styling.Stylesheet,
	visible func() bool,
) LeafPane {
	return LeafPane{
		BasePane:   NewBasePane(visible),
		Renderer:   renderer,
		Dims:       dimensions,
		Stylesheet: stylesheet,
	}
}

// Dimensions gives the dimensions (x-axis offset, y-axis offset, width,
// height) for this pane.
func (p *LeafPane) Dimensions() (x, y, w, h int) {
	return p.Dims()
}

// Draw draws nothing; panes embedding LeafPane override it.
func (p *LeafPane) Draw() {}

// Undraw does nothing. Override this, if necessary.
func (p *LeafPane) Undraw() {}

// GetPositionInfo returns no information; override this, if the pane has any.
func (p *LeafPane) GetPositionInfo(x, y int) PositionInfo { return NoPanePositionInfo{} }

// HasFocus returns whether the pane has focus.
func (p *LeafPane) HasFocus() bool {
	return p.Parent != nil && p.Parent.HasFocus() && p.Parent.Focusses() == p.Identify()
}

// Focusses returns the "none pane", as a leaf does not focus another pane.
func (p *LeafPane) Focusses() PaneID { return NonePaneID }

// CapturesInput returns whether this processor "captures" input, i.E. whether
// it ought to take priority in processing over other processors.
func (p *LeafPane) CapturesInput() bool {
	return p.InputProcessor != nil && p.InputProcessor.CapturesInput()
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. the processor performed
// an action based on the input.
func (p *LeafPane) ProcessInput(key input.Key) bool {
	return p.InputProcessor != nil && p.InputProcessor.ProcessInput(key)
}

// ApplyModalOverlay applies an overlay to this processor.
// It returns the processors index, by which in the future, all overlays down
// to and including this overlay can be removed.
func (p *LeafPane) ApplyModalOverlay(overlay input.SimpleInputProcessor) (index uint) {
	if p.InputProcessor == nil {
		log.Warn().Msgf("pane %d has no input processor to apply an overlay to; likely logic error", p.ID)
		return 0
	}
	return p.InputProcessor.ApplyModalOverlay(overlay)
}

// PopModalOverlay removes the topmost overlay from this processor.
func (p *LeafPane) PopModalOverlay() error {
	if p.InputProcessor == nil {
		return nil
	}
	return p.InputProcessor.PopModalOverlay()
}

// PopModalOverlays pops all overlays down to and including the one at the
// specified index.
func (p *LeafPane) PopModalOverlays(index uint) {
	if p.InputProcessor != nil {
		p.InputProcessor.PopModalOverlays(index)
	}
}

// GetHelp returns the input help map for this processor.
func (p *LeafPane) GetHelp() input.Help {
	if p.InputProcessor == nil {
		return input.Help{}
	}
	return p.InputProcessor.GetHelp()
}

// FocusPrev does nothing, as this implements a leaf, which does not focus
// anything.
func (p *LeafPane) FocusPrev() {}

// FocusNext does nothing, as this implements a leaf, which does not focus
// anything.
func (p *LeafPane) FocusNext() {}
