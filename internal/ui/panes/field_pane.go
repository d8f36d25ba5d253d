package panes

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"

	"github.com/ja-he/propedit/internal/control/edit"
	"github.com/ja-he/propedit/internal/control/edit/views"
	"github.com/ja-he/propedit/internal/menu"
	"github.com/ja-he/propedit/internal/schema"
	"github.com/ja-he/propedit/internal/styling"
	"github.com/ja-he/propedit/internal/ui"
	"github.com/ja-he/propedit/internal/util"
)

// FieldPane draws a single field of a menu: its label and the widget for the
// field's kind, styled by the widget templates.
type FieldPane struct {
	ui.LeafPane

	view      views.FieldView
	layout    menu.Layout
	templates styling.WidgetTemplates

	cursorController ui.CursorLocationRequestHandler
	idStr            string
}

// NewFieldPane constructs a pane for the given field.
func NewFieldPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	view views.FieldView,
	layout menu.Layout,
	templates styling.WidgetTemplates,
	cursorController ui.CursorLocationRequestHandler,
) *FieldPane {
	return &FieldPane{
		LeafPane:         ui.NewLeafPane(renderer, dimensions, nil, nil),
		view:             view,
		layout:           layout,
		templates:        templates,
		cursorController: cursorController,
		idStr:            "field-pane-" + uuid.Must(uuid.NewRandom()).String(),
	}
}

// GetView returns the field this pane draws.
func (p *FieldPane) GetView() views.FieldView { return p.view }

// Draw draws the field.
func (p *FieldPane) Draw() {
	x, y, w, h := p.Dimensions()
	status := p.view.GetStatus()

	background := p.style(p.templates.Background)
	label := p.style(p.templates.Label)
	widget := p.style(p.templates.For(p.view.GetKind()))
	if status != edit.EditorInactive {
		background = background.DefaultEmphasized()
		label = label.DefaultEmphasized().Bolded()
	}
	if status == edit.EditorFocussed {
		widget = widget.Bolded()
	}

	p.Renderer.DrawBox(x, y, w, h, background)

	var vx, vy, vw int
	if p.layout.AlignAsPairs {
		labelWidth := min(ui.PixelsToColumns(p.layout.LabelWidth), w/2)
		p.Renderer.DrawText(x+1, y, labelWidth-1, 1, label, util.TruncateAt(p.view.GetName(), labelWidth-1))
		vx, vy, vw = x+labelWidth+1, y, w-labelWidth-2
	} else {
		p.Renderer.DrawText(x+1, y, w-2, 1, label, util.TruncateAt(p.view.GetName(), w-2))
		vx, vy, vw = x+3, y+1, w-4
	}
	if vw <= 0 {
		p.cursorController.Delete(p.idStr)
		return
	}

	p.drawWidget(vx, vy, vw, widget, status)
}

func (p *FieldPane) style(s styling.DrawStyling) styling.DrawStyling {
	if s == nil {
		if p.templates.Background != nil {
			return p.templates.Background
		}
		return styling.StyleFromHex("#ffffff", "#000000")
	}
	return s
}

func (p *FieldPane) drawWidget(x, y, w int, style styling.DrawStyling, status edit.EditorStatus) {
	switch v := p.view.(type) {
	case views.TextFieldView:
		if p.view.GetKind() == schema.Color && w > 4 {
			w -= 3
			p.drawSwatch(x+w+1, y, v)
		}
		p.drawTextEntry(x, y, w, style, v, status == edit.EditorFocussed)
		return
	case views.RangeFieldView:
		p.drawSlider(x, y, w, style, v)
	case views.ToggleFieldView:
		p.drawToggle(x, y, w, style, v)
	case views.ChoiceFieldView:
		p.drawDropdown(x, y, w, style, v)
	default:
		p.Renderer.DrawBox(x, y, w, 1, style)
		p.Renderer.DrawText(x, y, w, 1, style, util.TruncateAt(p.view.Display(), w))
	}
	p.cursorController.Delete(p.idStr)
}

func (p *FieldPane) drawTextEntry(x, y, w int, style styling.DrawStyling, v views.TextFieldView, focussed bool) {
	p.Renderer.DrawBox(x, y, w, 1, style)

	if !focussed {
		p.cursorController.Delete(p.idStr)
		text := v.Display()
		if v.GetInvalid() {
			style = style.Underlined()
		}
		p.Renderer.DrawText(x, y, w, 1, style, util.TruncateAt(text, w))
		return
	}

	// scroll the contents horizontally to keep the cursor in view
	runes := []rune(v.GetContent())
	cursorPos := min(max(v.GetCursorPos(), 0), len(runes))
	cursorCol := runewidth.StringWidth(string(runes[:cursorPos]))
	offset := 0
	for cursorCol-runewidth.StringWidth(string(runes[:offset])) > w-1 {
		offset++
	}
	visible := string(runes[offset:])
	p.Renderer.DrawText(x, y, w, 1, style, runewidth.Truncate(visible, w, ""))

	p.cursorController.Put(ui.CursorLocation{
		X: x + cursorCol - runewidth.StringWidth(string(runes[:offset])),
		Y: y,
	}, p.idStr)
}

func (p *FieldPane) drawSwatch(x, y int, v views.TextFieldView) {
	text := v.Display()
	if v.GetStatus() == edit.EditorFocussed {
		text = v.GetContent()
	}
	c, err := styling.ParseColor(text)
	if err != nil {
		p.Renderer.DrawText(x, y, 2, 1, p.style(p.templates.Background).Inverted(), "??")
		return
	}
	p.Renderer.DrawBox(x, y, 2, 1, styling.StyleFromColors(styling.ContrastingColor(c), c))
}

func (p *FieldPane) drawSlider(x, y, w int, style styling.DrawStyling, v views.RangeFieldView) {
	number := v.Display()
	numberWidth := runewidth.StringWidth(number)
	barWidth := w - numberWidth - 1

	fraction := v.Fraction()
	if fraction < 0 || barWidth < 3 {
		p.Renderer.DrawBox(x, y, w, 1, style)
		p.Renderer.DrawText(x, y, w, 1, style, util.TruncateAt(number, w))
		return
	}

	filled := int(math.Round(fraction * float64(barWidth)))
	p.Renderer.DrawBox(x, y, barWidth, 1, style)
	p.Renderer.DrawBox(x, y, filled, 1, style.Inverted())
	p.Renderer.DrawText(x+barWidth+1, y, numberWidth, 1, style, number)
}

func (p *FieldPane) drawToggle(x, y, w int, style styling.DrawStyling, v views.ToggleFieldView) {
	box := "[ ]"
	if v.GetValue() {
		box = "[x]"
	}
	text := fmt.Sprintf("%s %s", box, v.Display())
	p.Renderer.DrawBox(x, y, min(w, runewidth.StringWidth(text)), 1, style)
	p.Renderer.DrawText(x, y, w, 1, style, util.TruncateAt(text, w))
}

func (p *FieldPane) drawDropdown(x, y, w int, style styling.DrawStyling, v views.ChoiceFieldView) {
	labels := v.GetOptionLabels()
	selected := v.GetSelected()
	current := v.Display()

	position := ""
	if selected >= 0 {
		position = fmt.Sprintf(" %d/%d", selected+1, len(labels))
	}

	inner := w - 4 - runewidth.StringWidth(position)
	text := "< " + util.PadRight(util.TruncateAt(current, inner), max(inner, 0)) + " >" + position
	p.Renderer.DrawBox(x, y, w, 1, style)
	p.Renderer.DrawText(x, y, w, 1, style, strings.TrimRight(runewidth.Truncate(text, w, ""), " "))
}
