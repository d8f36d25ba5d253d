package editors

import (
	"github.com/ja-he/propedit/internal/model"
)

// ToggleField edits a boolean field.
type ToggleField struct {
	fieldBase
}

// GetType asserts that this is a toggle.
func (e *ToggleField) GetType() string { return "toggle" }

// GetValue returns whether the toggle is on.
func (e *ToggleField) GetValue() bool {
	b, _ := model.AsBool(e.value)
	return b
}

// Activate flips the toggle.
func (e *ToggleField) Activate() { e.commit(!e.GetValue()) }

// Adjust switches the toggle on for positive and off for negative steps.
func (e *ToggleField) Adjust(steps int) {
	switch {
	case steps > 0 && !e.GetValue():
		e.commit(true)
	case steps < 0 && e.GetValue():
		e.commit(false)
	}
}

// Display returns "on" or "off".
func (e *ToggleField) Display() string {
	if e.GetValue() {
		return "on"
	}
	return "off"
}

// Write does nothing; toggling is written immediately.
func (e *ToggleField) Write() {}
