package config

import (
	"github.com/ja-he/propedit/internal/input"
)

// Default editor dimensions, in pixels.
const (
	DefaultEditorWidth      = 400
	DefaultEditorHeight     = 600
	DefaultEditorLabelWidth = 120
)

// Default returns the default configuration for the given theme (light or
// dark). Any other value is treated as dark.
func Default(theme ColorschemeType) Config {
	return Config{
		Stylesheet: defaultStylesheet(theme),
		Editor: Editor{
			Width:      DefaultEditorWidth,
			Height:     DefaultEditorHeight,
			LabelWidth: DefaultEditorLabelWidth,
		},
		Keys: input.InputConfig{
			Panel: map[input.Keyspec]input.Actionspec{
				"j":       "next-field",
				"<down>":  "next-field",
				"<tab>":   "next-field",
				"k":       "prev-field",
				"<up>":    "prev-field",
				"<s-tab>": "prev-field",
				"gg":      "first-field",
				"G":       "last-field",
				"<cr>":    "edit-field",
				"i":       "edit-field",
				"<space>": "activate-field",
				"l":       "increment",
				"<right>": "increment",
				"h":       "decrement",
				"<left>":  "decrement",
				"L":       "increment-large",
				"H":       "decrement-large",
				"u":       "undo",
				"<c-r>":   "reload",
				"<c-d>":   "scroll-down",
				"<c-u>":   "scroll-up",
				"?":       "toggle-help",
				"W":       "toggle-log",
				"q":       "quit",
			},
			TextField: map[input.Keyspec]input.Actionspec{
				"<cr>":  "commit",
				"<esc>": "abort",
				"<bs>":  "backspace",
				"<c-u>": "clear",
			},
		},
	}
}

func defaultStylesheet(theme ColorschemeType) Stylesheet {
	if theme == Light {
		return Stylesheet{
			Normal:            Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			Editor:            Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			EditorLabel:       Styling{Fg: "#404040", Bg: "#f0f0f0", Style: &FontStyle{}},
			TextEntry:         Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			Dropdown:          Styling{Fg: "#0065a3", Bg: "#ccebff", Style: &FontStyle{}},
			Toggle:            Styling{Fg: "#3a751a", Bg: "#c2edab", Style: &FontStyle{}},
			Slider:            Styling{Fg: "#cc8f00", Bg: "#fff0cc", Style: &FontStyle{}},
			Button:            Styling{Fg: "#ffffff", Bg: "#606060", Style: &FontStyle{Bold: true}},
			Status:            Styling{Fg: "#000000", Bg: "#cccccc", Style: &FontStyle{}},
			Help:              Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			Preview:           Styling{Fg: "#000000", Bg: "#e0e0e0", Style: &FontStyle{}},
			LogEntryTypeError: Styling{Fg: "#882222", Bg: "#ffaaaa", Style: &FontStyle{Bold: true}},
			LogEntryTypeWarn:  Styling{Fg: "#cc8f00", Bg: "#fff0cc", Style: &FontStyle{Bold: true}},
			LogEntryTypeInfo:  Styling{Fg: "#3a751a", Bg: "#c2edab", Style: &FontStyle{Bold: true}},
			LogEntryTypeDebug: Styling{Fg: "#0065a3", Bg: "#ccebff", Style: &FontStyle{Bold: true}},
			LogEntryTypeTrace: Styling{Fg: "#a3008b", Bg: "#ffccf7", Style: &FontStyle{Bold: true}},
		}
	}
	return Stylesheet{
		Normal:            Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
		Editor:            Styling{Fg: "#ffffff", Bg: "#202020", Style: &FontStyle{}},
		EditorLabel:       Styling{Fg: "#c0c0c0", Bg: "#202020", Style: &FontStyle{}},
		TextEntry:         Styling{Fg: "#ffffff", Bg: "#404040", Style: &FontStyle{}},
		Dropdown:          Styling{Fg: "#ccebff", Bg: "#0065a3", Style: &FontStyle{}},
		Toggle:            Styling{Fg: "#c2edab", Bg: "#3a751a", Style: &FontStyle{}},
		Slider:            Styling{Fg: "#fff0cc", Bg: "#734700", Style: &FontStyle{}},
		Button:            Styling{Fg: "#000000", Bg: "#c0c0c0", Style: &FontStyle{Bold: true}},
		Status:            Styling{Fg: "#f0f0f0", Bg: "#404040", Style: &FontStyle{}},
		Help:              Styling{Fg: "#ffffff", Bg: "#404040", Style: &FontStyle{}},
		Preview:           Styling{Fg: "#ffffff", Bg: "#101010", Style: &FontStyle{}},
		LogEntryTypeError: Styling{Fg: "#ffaaaa", Bg: "#882222", Style: &FontStyle{Bold: true}},
		LogEntryTypeWarn:  Styling{Fg: "#fff0cc", Bg: "#cc8f00", Style: &FontStyle{Bold: true}},
		LogEntryTypeInfo:  Styling{Fg: "#c2edab", Bg: "#3a751a", Style: &FontStyle{Bold: true}},
		LogEntryTypeDebug: Styling{Fg: "#ccebff", Bg: "#0065a3", Style: &FontStyle{Bold: true}},
		LogEntryTypeTrace: Styling{Fg: "#ffccf7", Bg: "#a3008b", Style: &FontStyle{Bold: true}},
	}
}
