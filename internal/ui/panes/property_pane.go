package panes

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/propedit/internal/control/edit"
	"github.com/ja-he/propedit/internal/control/edit/editors"
	"github.com/ja-he/propedit/internal/control/edit/views"
	"github.com/ja-he/propedit/internal/input"
	"github.com/ja-he/propedit/internal/menu"
	"github.com/ja-he/propedit/internal/styling"
	"github.com/ja-he/propedit/internal/ui"
	"github.com/ja-he/propedit/internal/util"
)

// OptionsFrame is the content frame of a PropertyPane.
// It holds whatever was last rendered into it: the panel of field editors
// and the panes drawing them.
type OptionsFrame struct {
	name   string
	canvas *PropertyPane

	panel     *editors.Panel
	fields    []*FieldPane
	templates styling.WidgetTemplates
}

// GetFrameName returns the name of the frame.
func (f *OptionsFrame) GetFrameName() string { return f.name }

// Panel returns the panel last rendered into the frame (nil if none).
func (f *OptionsFrame) Panel() *editors.Panel { return f.panel }

// Fields returns the panes of the fields last rendered into the frame.
func (f *OptionsFrame) Fields() []*FieldPane { return f.fields }

// Canvas returns the canvas hosting this frame.
func (f *OptionsFrame) Canvas() *PropertyPane { return f.canvas }

// replace swaps in a newly rendered panel. If the previous panel's selected
// field is part of the new one, it stays selected and the scroll position is
// kept.
func (f *OptionsFrame) replace(panel *editors.Panel, fields []*FieldPane, templates styling.WidgetTemplates, processor input.ModalInputProcessor) {
	previous := f.panel
	f.panel = panel
	f.fields = fields
	f.templates = templates
	f.canvas.SetInputProcessor(processor)
	f.canvas.lastActive = -1

	index := -1
	if previous != nil {
		index = carriedOverSelection(previous, panel)
	}
	if index < 0 {
		f.canvas.scrollOffset = 0
		return
	}
	panel.SelectField(index)
	f.canvas.scrollOffset = min(f.canvas.scrollOffset, f.canvas.maxScrollOffset())
}

// carriedOverSelection returns the index in next of the field selected in
// previous, or -1 if next has no such field.
func carriedOverSelection(previous, next views.PanelView) int {
	previousFields := previous.GetFieldViews()
	active := previous.GetActiveFieldIndex()
	if active < 0 || active >= len(previousFields) {
		return -1
	}
	id := previousFields[active].GetID()
	for i, f := range next.GetFieldViews() {
		if f.GetID() == id {
			return i
		}
	}
	return -1
}

func (f *OptionsFrame) layout() menu.Layout {
	if f.panel == nil {
		return menu.DefaultLayout(0)
	}
	return f.panel.GetLayout()
}

// PropertyPane is the scrollable canvas of an editor.
// Its single content frame is an OptionsFrame; the pane draws the frame's
// fields, scrolled so that the selected field is visible.
//
// It implements edit.Canvas.
type PropertyPane struct {
	ui.LeafPane

	name  string
	title func() string
	frame *OptionsFrame

	scrollOffset int
	lastActive   int

	log zerolog.Logger
}

// NewPropertyPane constructs a canvas with an empty content frame.
func NewPropertyPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet *styling.Stylesheet,
	name string,
	title func() string,
) *PropertyPane {
	p := &PropertyPane{
		LeafPane:   ui.NewLeafPane(renderer, dimensions, stylesheet, nil),
		name:       name,
		title:      title,
		lastActive: -1,
		log:        log.With().Str("source", "property-pane").Str("canvas", name).Logger(),
	}
	p.frame = &OptionsFrame{
		name:   name + "-options",
		canvas: p,
	}
	return p
}

// GetFrameName returns the name of the canvas.
func (p *PropertyPane) GetFrameName() string { return p.name }

// Content returns the content frame.
func (p *PropertyPane) Content() edit.Frame { return p.frame }

// Frame returns the content frame.
func (p *PropertyPane) Frame() *OptionsFrame { return p.frame }

func (p *PropertyPane) rowsPerField() int {
	if p.frame.layout().AlignAsPairs {
		return 1
	}
	return 2
}

// contentArea returns the dimensions fields are drawn in: below the title,
// left of the scrollbar, and no higher than the menu's maximum height.
func (p *PropertyPane) contentArea() (x, y, w, h int) {
	x, y, w, h = p.Dimensions()
	y, h = y+1, h-1
	if maxRows := ui.PixelsToRows(p.frame.layout().MaxHeight); maxRows > 0 {
		h = min(h, maxRows)
	}
	if p.contentRows() > h {
		w--
	}
	return x, y, w, max(h, 0)
}

func (p *PropertyPane) contentRows() int {
	return len(p.frame.fields) * p.rowsPerField()
}

func (p *PropertyPane) maxScrollOffset() int {
	_, _, _, h := p.contentArea()
	return max(p.contentRows()-h, 0)
}

// ScrollUp scrolls the canvas up by the given number of rows.
func (p *PropertyPane) ScrollUp(by int) {
	p.scrollOffset = max(p.scrollOffset-by, 0)
}

// ScrollDown scrolls the canvas down by the given number of rows.
func (p *PropertyPane) ScrollDown(by int) {
	p.scrollOffset = min(p.scrollOffset+by, p.maxScrollOffset())
}

// ScrollOffset returns the number of rows scrolled past.
func (p *PropertyPane) ScrollOffset() int { return p.scrollOffset }

// ensureActiveVisible scrolls to the selected field when the selection
// changed since the last draw. Scrolling by hand is left alone otherwise.
func (p *PropertyPane) ensureActiveVisible() {
	if p.frame.panel == nil {
		return
	}
	active := p.frame.panel.GetActiveFieldIndex()
	if active == p.lastActive {
		return
	}
	p.lastActive = active

	_, _, _, h := p.contentArea()
	top := active * p.rowsPerField()
	bottom := top + p.rowsPerField()
	switch {
	case top < p.scrollOffset:
		p.scrollOffset = top
	case bottom > p.scrollOffset+h:
		p.scrollOffset = bottom - h
	}
	p.scrollOffset = min(max(p.scrollOffset, 0), p.maxScrollOffset())
}

// fieldDimensions returns the dimensions of the field at the given index,
// which may lie (partly) outside of the visible content area.
func (p *PropertyPane) fieldDimensions(index int) (x, y, w, h int) {
	cx, cy, cw, _ := p.contentArea()
	return cx, cy + index*p.rowsPerField() - p.scrollOffset, cw, p.rowsPerField()
}

// Draw draws the canvas and the visible fields.
func (p *PropertyPane) Draw() {
	if !p.IsVisible() {
		return
	}
	x, y, w, h := p.Dimensions()

	background := p.Stylesheet.Editor
	if p.frame.templates.Background != nil {
		background = p.frame.templates.Background
	}
	p.Renderer.DrawBox(x, y, w, h, background)

	title := p.name
	if p.title != nil {
		title = p.title()
	}
	p.Renderer.DrawBox(x, y, w, 1, background.DefaultEmphasized())
	p.Renderer.DrawText(x+1, y, w-2, 1, background.DefaultEmphasized().Bolded(), util.TruncateAt(title, w-2))

	if len(p.frame.fields) == 0 {
		p.Renderer.DrawText(x+1, y+2, w-2, 1, background.Italicized(), util.TruncateAt("(nothing to edit)", w-2))
		return
	}

	p.ensureActiveVisible()
	_, cy, _, ch := p.contentArea()
	for i, field := range p.frame.fields {
		_, fy, _, fh := p.fieldDimensions(i)
		if fy+fh <= cy || fy >= cy+ch {
			continue
		}
		field.Draw()
	}

	p.drawScrollbar(background)
}

func (p *PropertyPane) drawScrollbar(style styling.DrawStyling) {
	cx, cy, cw, ch := p.contentArea()
	total := p.contentRows()
	if total <= ch || ch <= 0 {
		return
	}
	barX := cx + cw
	thumbHeight := max(ch*ch/total, 1)
	thumbTop := cy + (ch-thumbHeight)*p.scrollOffset/max(p.maxScrollOffset(), 1)

	p.Renderer.DrawBox(barX, cy, 1, ch, style.DarkenedBG(20))
	p.Renderer.DrawBox(barX, thumbTop, 1, thumbHeight, style.Inverted())
}

// GetPositionInfo returns the field at the given position, if any.
func (p *PropertyPane) GetPositionInfo(x, y int) ui.PositionInfo {
	cx, cy, cw, ch := p.contentArea()
	if !util.NewRect(cx, cy, cw, ch).Contains(x, y) {
		return ui.PropertyPanePositionInfo{FieldIndex: -1}
	}
	index := (y - cy + p.scrollOffset) / p.rowsPerField()
	if index >= len(p.frame.fields) {
		return ui.PropertyPanePositionInfo{FieldIndex: -1}
	}
	return ui.PropertyPanePositionInfo{FieldIndex: index, OnField: true}
}
