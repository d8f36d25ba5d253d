package schema

// WidgetKind is the kind of widget an attribute is edited with.
type WidgetKind int

const (
	_ WidgetKind = iota
	// TextEntry is a free text input.
	TextEntry
	// Range is a numeric slider, bounded by the descriptor's Min and Max.
	Range
	// Toggle is an on/off switch.
	Toggle
	// Color is a color input (hex notation, e.g. '#ffcc00').
	Color
	// FontDropdown selects a font family.
	FontDropdown
	// OutlineDropdown selects a text outline style.
	OutlineDropdown
	// AnchorDropdown selects the side an object is anchored to.
	AnchorDropdown
	// Button triggers an action instead of editing a value.
	Button
)

// Template enumerates the style templates widgets are drawn with.
// Several widget kinds share a template (e.g. all dropdowns).
type Template int

const (
	_ Template = iota
	TemplateTextEntry
	TemplateDropdown
	TemplateToggle
	TemplateSlider
	TemplateButton
)

// String returns the name of the widget kind as used in schema dumps.
func (k WidgetKind) String() string {
	switch k {
	case TextEntry:
		return "textentry"
	case Range:
		return "range"
	case Toggle:
		return "toggle"
	case Color:
		return "color"
	case FontDropdown:
		return "selectfont"
	case OutlineDropdown:
		return "outlinedropdown"
	case AnchorDropdown:
		return "anchordropdown"
	case Button:
		return "button"
	}
	return "[UNKNOWN]"
}

// IsDropdown reports whether the kind is one of the dropdown variants.
func (k WidgetKind) IsDropdown() bool {
	return k == FontDropdown || k == OutlineDropdown || k == AnchorDropdown
}

// Template returns the style template widgets of this kind are drawn with.
func (k WidgetKind) Template() Template {
	switch {
	case k.IsDropdown():
		return TemplateDropdown
	case k == Range:
		return TemplateSlider
	case k == Toggle:
		return TemplateToggle
	case k == Button:
		return TemplateButton
	default:
		return TemplateTextEntry
	}
}
