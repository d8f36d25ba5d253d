package ui

import "github.com/ja-he/propedit/internal/styling"

// CR is a constrained renderer for a TUI.
// It only allows rendering using the underlying renderer within the set
// dimension constraint.
//
// Non-conforming rendering requests are corrected to be within the bounds;
// requests entirely outside of them are dropped.
type CR struct {
	renderer Renderer

	constraint func() (x, y, w, h int)
}

// NewConstrainedRenderer returns a renderer drawing via the given renderer,
// but only within the given constraint.
func NewConstrainedRenderer(
	renderer Renderer,
	constraint func() (x, y, w, h int),
) *CR {
	return &CR{
		renderer:   renderer,
		constraint: constraint,
	}
}

// Dimensions returns the constraint.
func (r *CR) Dimensions() (x, y, w, h int) {
	return r.constraint()
}

// DrawText draws the given text, within the given dimensions, constrained by
// the set constraint, in the given style.
//
// Text starting left of the constraint is not shifted; it is cut off by the
// amount it was outside.
func (r *CR) DrawText(x, y, w, h int, style styling.DrawStyling, text string) {
	cx, cy, cw, ch := r.constrain(x, y, w, h)
	if cw <= 0 || ch <= 0 {
		return
	}
	if cx > x {
		runes := []rune(text)
		cut := min(cx-x, len(runes))
		text = string(runes[cut:])
	}
	r.renderer.DrawText(cx, cy, cw, ch, style, text)
}

// DrawBox draws a box of the given dimensions, constrained by the set
// constraint, in the given style.
func (r *CR) DrawBox(x, y, w, h int, style styling.DrawStyling) {
	cx, cy, cw, ch := r.constrain(x, y, w, h)
	if cw <= 0 || ch <= 0 {
		return
	}
	r.renderer.DrawBox(cx, cy, cw, ch, style)
}

func (r *CR) constrain(rawX, rawY, rawW, rawH int) (x, y, w, h int) {
	xConstraint, yConstraint, wConstraint, hConstraint := r.constraint()

	x = max(rawX, xConstraint)
	y = max(rawY, yConstraint)
	right := min(rawX+rawW, xConstraint+wConstraint)
	bottom := min(rawY+rawH, yConstraint+hConstraint)

	return x, y, right - x, bottom - y
}
