// Package views contains the inspect-only interfaces of the editors, as used
// by the panes that draw them.
package views

import (
	"github.com/ja-he/propedit/internal/control/edit"
	"github.com/ja-he/propedit/internal/schema"
)

// FieldView allows inspection of any field editor.
type FieldView interface {
	GetStatus() edit.EditorStatus
	GetID() string
	GetName() string
	GetKind() schema.WidgetKind

	// Display returns the current value formatted for display.
	Display() string
}

// TextFieldView allows inspection of a text field.
type TextFieldView interface {
	FieldView

	// GetContent returns the current (edited, uncommitted) contents.
	GetContent() string

	// GetCursorPos returns the cursor position in runes, 0 being before the
	// first rune.
	GetCursorPos() int

	// GetInvalid returns whether the last commit was rejected.
	GetInvalid() bool
}

// RangeFieldView allows inspection of a range field.
type RangeFieldView interface {
	FieldView

	// Fraction returns the position of the value within the bounds, between
	// 0 and 1. Unbounded ranges return a negative value.
	Fraction() float64
}

// ToggleFieldView allows inspection of a toggle.
type ToggleFieldView interface {
	FieldView

	GetValue() bool
}

// ChoiceFieldView allows inspection of a dropdown.
type ChoiceFieldView interface {
	FieldView

	// GetOptionLabels returns the labels of all options in order.
	GetOptionLabels() []string

	// GetSelected returns the index of the selected option, or -1 if the value
	// matches none of them.
	GetSelected() int
}

// PanelView allows inspection of a panel of fields.
type PanelView interface {
	GetName() string
	GetStatus() edit.EditorStatus
	GetFieldViews() []FieldView
	GetActiveFieldIndex() int
	IsInField() bool
}
