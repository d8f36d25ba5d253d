package styling

import (
	"github.com/ja-he/propedit/internal/config"
)

// Stylesheet represents all styles used by the application for rendering.
type Stylesheet struct {
	Normal      DrawStyling
	Editor      DrawStyling
	EditorLabel DrawStyling
	Status      DrawStyling
	Help        DrawStyling
	Preview     DrawStyling

	Templates WidgetTemplates

	LogEntryTypeError DrawStyling
	LogEntryTypeWarn  DrawStyling
	LogEntryTypeInfo  DrawStyling
	LogEntryTypeDebug DrawStyling
	LogEntryTypeTrace DrawStyling
}

// NewStylesheetFromConfig constructs a stylesheet from a config stylesheet.
// Every entry falls back to the 'normal' styling for colors that do not
// parse; 'normal' itself falls back to white on black.
func NewStylesheetFromConfig(c config.Stylesheet) *Stylesheet {
	normal := StyleFromConfig(c.Normal, StyleFromHex("#ffffff", "#000000"))
	from := func(s config.Styling) DrawStyling { return StyleFromConfig(s, normal) }

	editor := from(c.Editor)
	label := from(c.EditorLabel)

	return &Stylesheet{
		Normal:      normal,
		Editor:      editor,
		EditorLabel: label,
		Status:      from(c.Status),
		Help:        from(c.Help),
		Preview:     from(c.Preview),

		Templates: WidgetTemplates{
			Background: editor,
			Label:      label,
			TextEntry:  from(c.TextEntry),
			Dropdown:   from(c.Dropdown),
			Toggle:     from(c.Toggle),
			Slider:     from(c.Slider),
			Button:     from(c.Button),
		},

		LogEntryTypeError: from(c.LogEntryTypeError),
		LogEntryTypeWarn:  from(c.LogEntryTypeWarn),
		LogEntryTypeInfo:  from(c.LogEntryTypeInfo),
		LogEntryTypeDebug: from(c.LogEntryTypeDebug),
		LogEntryTypeTrace: from(c.LogEntryTypeTrace),
	}
}
