// Package util holds small helpers shared by the UI and CLI.
package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Rect is a rectangle on the (terminal cell) plane.
type Rect struct {
	X, Y, W, H int
}

// NewRect returns the rectangle of the given dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Contains reports whether the given position lies within the rectangle.
func (r Rect) Contains(x, y int) bool {
	return (x >= r.X) && (x < r.X+r.W) &&
		(y >= r.Y) && (y < r.Y+r.H)
}

// TruncateAt truncates the given string to the given display width, marking
// the truncation with an ellipsis.
func TruncateAt(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

// PadCenter pads the given string with spaces on both sides to the given
// display width. Strings wider than that are returned unchanged.
func PadCenter(s string, width int) string {
	missing := width - runewidth.StringWidth(s)
	if missing <= 0 {
		return s
	}
	left := missing / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", missing-left)
}

// PadRight pads the given string with spaces on the right to the given
// display width.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
