package styling

import (
	"github.com/ja-he/propedit/internal/schema"
)

// WidgetTemplates are the stylings widgets are drawn with: one per widget
// template, plus the editor background and field labels.
type WidgetTemplates struct {
	Background DrawStyling
	Label      DrawStyling

	TextEntry DrawStyling
	Dropdown  DrawStyling
	Toggle    DrawStyling
	Slider    DrawStyling
	Button    DrawStyling
}

// For returns the styling for widgets of the given kind.
// It returns nil if the templates do not define it.
func (t WidgetTemplates) For(kind schema.WidgetKind) DrawStyling {
	switch kind.Template() {
	case schema.TemplateTextEntry:
		return t.TextEntry
	case schema.TemplateDropdown:
		return t.Dropdown
	case schema.TemplateToggle:
		return t.Toggle
	case schema.TemplateSlider:
		return t.Slider
	case schema.TemplateButton:
		return t.Button
	}
	return nil
}

// Complete returns whether every styling is set.
func (t WidgetTemplates) Complete() bool {
	for _, s := range []DrawStyling{t.Background, t.Label, t.TextEntry, t.Dropdown, t.Toggle, t.Slider, t.Button} {
		if s == nil {
			return false
		}
	}
	return true
}
