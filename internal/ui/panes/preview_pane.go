package panes

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/ja-he/propedit/internal/model"
	"github.com/ja-he/propedit/internal/styling"
	"github.com/ja-he/propedit/internal/ui"
	"github.com/ja-he/propedit/internal/util"
)

// PreviewPane shows a live preview of the edited label: its text, placed
// according to the label's anchor, in the label's colors.
type PreviewPane struct {
	ui.LeafPane

	label func() *model.Label
}

// NewPreviewPane constructs a preview of the label returned by the given
// function (which may return nil, e.g. when not editing a label).
func NewPreviewPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet *styling.Stylesheet,
	visible func() bool,
	label func() *model.Label,
) *PreviewPane {
	return &PreviewPane{
		LeafPane: ui.NewLeafPane(renderer, dimensions, stylesheet, visible),
		label:    label,
	}
}

// Draw draws the preview.
func (p *PreviewPane) Draw() {
	if !p.IsVisible() {
		return
	}
	x, y, w, h := p.Dimensions()
	if w <= 2 || h <= 3 {
		return
	}
	background := p.Stylesheet.Preview
	p.Renderer.DrawBox(x, y, w, h, background)
	p.Renderer.DrawText(x+1, y, w-2, 1, background.DefaultEmphasized().Bolded(), "Preview")

	l := p.label()
	if l == nil {
		p.Renderer.DrawText(x+1, y+2, w-2, 1, background.Italicized(), util.TruncateAt("(nothing to preview)", w-2))
		return
	}

	// the area the label can be placed in, leaving a row for the details
	ax, ay, aw, ah := x+1, y+1, w-2, h-3
	text := l.Text
	if text == "" {
		text = "(empty)"
	}
	text = util.TruncateAt(text, aw)
	tx, ty := anchoredPosition(l.Anchor, runewidth.StringWidth(text), ax, ay, aw, ah)

	bg := previewBackground(p.Stylesheet)
	if l.Shadow {
		dx, dy := sign(l.ShadowX), -sign(l.ShadowY)
		shadow := labelColor(l.ShadowColor, l.Alpha, l.Monochrome, bg)
		p.Renderer.DrawText(tx+dx, ty+dy, aw, 1, styling.StyleFromColors(shadow, bg), text)
	}
	fg := labelColor(l.Color, l.Alpha, l.Monochrome || strings.Contains(l.Outline, model.OutlineMonochrome), bg)
	var style styling.DrawStyling = styling.StyleFromColors(fg, bg)
	switch {
	case strings.HasPrefix(l.Outline, model.OutlineThick):
		style = style.Bolded().Underlined()
	case strings.HasPrefix(l.Outline, model.OutlineThin):
		style = style.Bolded()
	}
	p.Renderer.DrawText(tx, ty, runewidth.StringWidth(text), 1, style, text)

	details := fmt.Sprintf("%s %gpt, %s %+g/%+g, rot %.2f", l.Font, l.Size, l.Anchor.Side, l.Anchor.X, l.Anchor.Y, l.Rotation)
	p.Renderer.DrawText(x+1, y+h-1, w-2, 1, background.Italicized(), util.TruncateAt(details, w-2))
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *PreviewPane) GetPositionInfo(x, y int) ui.PositionInfo {
	return ui.PreviewPanePositionInfo{}
}

// anchoredPosition returns where text of the given width is placed within the
// given area for the given anchor. Offsets are in pixels, positive Y being
// upwards.
func anchoredPosition(anchor model.Anchor, width int, x, y, w, h int) (int, int) {
	left, right := x, x+w-width
	center := x + (w-width)/2
	top, bottom, middle := y, y+h-1, y+(h-1)/2

	var tx, ty int
	switch anchor.Side {
	case model.AnchorTopLeft:
		tx, ty = left, top
	case model.AnchorLeft:
		tx, ty = left, middle
	case model.AnchorBottomLeft:
		tx, ty = left, bottom
	case model.AnchorBottom:
		tx, ty = center, bottom
	case model.AnchorBottomRight:
		tx, ty = right, bottom
	case model.AnchorRight:
		tx, ty = right, middle
	case model.AnchorTopRight:
		tx, ty = right, top
	case model.AnchorTop:
		tx, ty = center, top
	default:
		tx, ty = center, middle
	}

	tx += int(math.Round(anchor.X / ui.CellWidthPx))
	ty -= int(math.Round(anchor.Y / ui.CellHeightPx))

	tx = min(max(tx, x), max(x+w-width, x))
	ty = min(max(ty, y), y+h-1)
	return tx, ty
}

// labelColor returns the color a label's text appears in over the given
// background.
func labelColor(hex string, alpha float64, monochrome bool, bg colorful.Color) colorful.Color {
	c, err := styling.ParseColor(hex)
	if err != nil {
		c = colorful.Color{R: 1, G: 1, B: 1}
	}
	if monochrome {
		_, _, l := c.Hcl()
		c = colorful.Hcl(0, 0, l).Clamped()
	}
	alpha = min(max(alpha, 0), 1)
	return bg.BlendRgb(c, alpha)
}

func previewBackground(stylesheet *styling.Stylesheet) colorful.Color {
	_, bg, _ := stylesheet.Preview.AsTcell().Decompose()
	r, g, b := bg.RGB()
	if r < 0 {
		return colorful.Color{}
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func sign(f float64) int {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	}
	return 0
}
