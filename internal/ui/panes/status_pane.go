package panes

import (
	"github.com/mattn/go-runewidth"

	"github.com/ja-he/propedit/internal/styling"
	"github.com/ja-he/propedit/internal/ui"
	"github.com/ja-he/propedit/internal/util"
)

// StatusPane is a status bar that displays what is being edited, the most
// recent status message, and the input mode.
type StatusPane struct {
	ui.LeafPane

	subject func() string
	message func() string
	mode    func() string
}

// Draw draws this pane.
func (p *StatusPane) Draw() {
	x, y, w, h := p.Dimensions()

	bgStyle := p.Stylesheet.Status
	bgStyleEmph := bgStyle.DefaultEmphasized()

	p.Renderer.DrawBox(x, y, w, h, bgStyle)

	modeStr := p.mode()
	modeWidth := runewidth.StringWidth(modeStr)
	p.Renderer.DrawText(x+w-modeWidth-1, y+h-1, modeWidth, 1, bgStyleEmph.Italicized(), modeStr)

	subject := util.TruncateAt(p.subject(), w/2)
	subjectWidth := runewidth.StringWidth(subject) + 2
	p.Renderer.DrawBox(x, y, subjectWidth, h, bgStyleEmph)
	p.Renderer.DrawText(x+1, y, subjectWidth-2, 1, bgStyleEmph.Bolded(), subject)

	messageWidth := w - subjectWidth - modeWidth - 3
	p.Renderer.DrawText(x+subjectWidth+1, y, messageWidth, 1, bgStyle, util.TruncateAt(p.message(), messageWidth))
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *StatusPane) GetPositionInfo(x, y int) ui.PositionInfo {
	return ui.StatusPanePositionInfo{}
}

// NewStatusPane constructs and returns a new StatusPane.
func NewStatusPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet *styling.Stylesheet,
	subject func() string,
	message func() string,
	mode func() string,
) *StatusPane {
	return &StatusPane{
		LeafPane: ui.NewLeafPane(renderer, dimensions, stylesheet, nil),
		subject:  subject,
		message:  message,
		mode:     mode,
	}
}
