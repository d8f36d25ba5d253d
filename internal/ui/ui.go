// Package ui provides the abstractions the editor's terminal user interface
// is built from: panes arranged in a tree, renderers constrained to a pane's
// dimensions, and the handling of the text cursor.
package ui

import (
	"fmt"

	"github.com/ja-he/propedit/internal/input"
	"github.com/ja-he/propedit/internal/styling"
)

// Pane is a UI pane.
//
// Panes are structured as a tree: any pane can be asked whether it HasFocus,
// and what it Focusses; generally, to answer whether a pane HasFocus, it
// consults its parent. A pane's parent is set with SetParent; the exception
// is the root pane of the tree.
type Pane interface {
	Draw()
	Undraw()
	IsVisible() bool
	Dimensions() (x, y, w, h int)
	GetPositionInfo(x, y int) PositionInfo

	input.ModalInputProcessor

	PaneQuerier

	SetParent(PaneQuerier)

	FocusNext()
	FocusPrev()
}

// PaneQuerier are the querying member functions of a pane.
//
// E.g. letting a child access its parent, this allows limiting the childs
// access.
type PaneQuerier interface {
	HasFocus() bool
	Focusses() PaneID
	IsVisible() bool
	Identify() PaneID
}

// PaneType is the type of the bottommost meaningful UI pane.
type PaneType int

const (
	_ PaneType = iota
	// NoPane describes anything that is not on a meaningful UI pane, perhaps
	// in padding space.
	NoPane
	// PropertyPaneType represents the scrollable canvas of an editor.
	PropertyPaneType
	// FieldPaneType represents the row of a single field within a canvas.
	FieldPaneType
	// PreviewPaneType represents the live preview of the edited object.
	PreviewPaneType
	// StatusPaneType represents a status pane (or status bar).
	StatusPaneType
	// HelpPaneType represents the help popup.
	HelpPaneType
	// LogPaneType represents a log pane.
	LogPaneType
)

// ToString returns the name of this pane type as a string, primarily for
// debugging and logging purposes.
func (t PaneType) ToString() string {
	switch t {
	case NoPane:
		return "NoPane"
	case PropertyPaneType:
		return "PropertyPaneType"
	case FieldPaneType:
		return "FieldPaneType"
	case PreviewPaneType:
		return "PreviewPaneType"
	case StatusPaneType:
		return "StatusPaneType"
	case HelpPaneType:
		return "HelpPaneType"
	case LogPaneType:
		return "LogPaneType"
	}
	return "[UNKNOWN]"
}

// PaneID uniquely identifies a pane. No two panes must ever share a PaneID.
type PaneID uint

// NonePaneID represents "no pane" or "invalid pane". Panes are guaranteed to
// be assigned different IDs by GeneratePaneID.
const NonePaneID PaneID = 0

var id = NonePaneID

// GeneratePaneID generates a new unique pane ID.
var GeneratePaneID = func() PaneID {
	id++
	return id
}

// Editor dimensions are given in pixels; on a terminal, a cell stands in for
// a fixed number of them.
const (
	CellWidthPx  = 8
	CellHeightPx = 16
)

// PixelsToColumns converts a width in pixels to terminal columns, rounding
// up.
func PixelsToColumns(px int) int {
	if px <= 0 {
		return 0
	}
	return (px + CellWidthPx - 1) / CellWidthPx
}

// PixelsToRows converts a height in pixels to terminal rows, rounding up.
func PixelsToRows(px int) int {
	if px <= 0 {
		return 0
	}
	return (px + CellHeightPx - 1) / CellHeightPx
}

// Renderer draws boxes and text.
type Renderer interface {
	// Draw a box of the indicated dimensions at the indicated location but
	// limited to the constraint (bounding box) of the renderer.
	// In the case that the box is not fully contained by the bounding box,
	// it is truncated to fit and drawn at the corrected coordinates with the
	// corrected dimensions.
	DrawBox(x, y, w, h int, style styling.DrawStyling)
	// Draw text within the box described by the given coordinates and
	// dimensions, but limited to the constraint (bounding box) of the
	// renderer.
	DrawText(x, y, w, h int, style styling.DrawStyling, text string)
}

// ConstrainedRenderer is a renderer that is assumed to be constrained to
// certain dimensions, i.E. it does not draw outside of them.
type ConstrainedRenderer interface {
	Renderer

	// Dimensions returns the dimensions of the renderer.
	Dimensions() (x, y, w, h int)
}

// RenderOrchestratorControl is the set of functions of a renderer (e.g.,
// tcell.Screen) that the root pane needs to use to have full control over a
// render cycle. Other panes should not need this access to the renderer.
type RenderOrchestratorControl interface {
	Clear()
	Show()
}

// TextCursorController offers control of a text cursor, such as for a terminal.
type TextCursorController interface {
	HideCursor()
	ShowCursor(CursorLocation)
}

// CursorLocation is the location of a text cursor.
type CursorLocation struct {
	X int
	Y int
}

func (l CursorLocation) String() string {
	return fmt.Sprintf("%d:%d", l.X, l.Y)
}
