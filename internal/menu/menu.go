// Package menu packages bound fields into a layout-ready menu description.
package menu

import (
	"github.com/ja-he/propedit/internal/binding"
)

// DefaultLabelWidth is the default width of the label column, in pixels.
const DefaultLabelWidth = 120

// Layout holds the layout hints a menu is annotated with.
type Layout struct {
	// AlignAsPairs lines label/control pairs up in two columns.
	AlignAsPairs bool
	// LabelWidth is the width of the label column, in pixels.
	LabelWidth int
	// MaxHeight is the height available to the menu, in pixels.
	MaxHeight int
}

// DefaultLayout returns the layout hints used for editor panels of the given
// height.
func DefaultLayout(maxHeight int) Layout {
	return Layout{
		AlignAsPairs: true,
		LabelWidth:   DefaultLabelWidth,
		MaxHeight:    maxHeight,
	}
}

// Description is an ordered list of fields plus the hints needed to lay them
// out.
type Description struct {
	Fields []*binding.Field
	Layout
}

// Empty reports whether the description has no fields.
func (d Description) Empty() bool { return len(d.Fields) == 0 }

// Assemble packages the given fields, in the given order, into a description
// with the given layout hints.
func Assemble(fields []*binding.Field, layout Layout) Description {
	ordered := make([]*binding.Field, len(fields))
	copy(ordered, fields)
	if layout.LabelWidth <= 0 {
		layout.LabelWidth = DefaultLabelWidth
	}
	return Description{
		Fields: ordered,
		Layout: layout,
	}
}
