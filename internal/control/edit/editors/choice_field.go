package editors

import (
	"github.com/ja-he/propedit/internal/model"
)

// ChoiceField edits a field by cycling through its options (a dropdown).
type ChoiceField struct {
	fieldBase
}

// GetType asserts that this is a dropdown.
func (e *ChoiceField) GetType() string { return "choice" }

// GetOptionLabels returns the labels of all options in order.
func (e *ChoiceField) GetOptionLabels() []string {
	labels := make([]string, len(e.field.Options))
	for i, o := range e.field.Options {
		labels[i] = o.Label
	}
	return labels
}

// GetSelected returns the index of the option matching the value, or -1.
func (e *ChoiceField) GetSelected() int {
	for i, o := range e.field.Options {
		if model.SameValue(o.Value, e.value) {
			return i
		}
	}
	return -1
}

// Adjust selects the option the given number of steps away, wrapping around.
// A value matching no option counts as being before the first option.
func (e *ChoiceField) Adjust(steps int) {
	n := len(e.field.Options)
	if n == 0 || steps == 0 {
		return
	}
	current := e.GetSelected()
	var next int
	if current < 0 {
		if steps > 0 {
			next = (steps - 1) % n
		} else {
			next = ((steps % n) + n) % n
		}
	} else {
		next = (((current + steps) % n) + n) % n
	}
	if next == current {
		return
	}
	e.commit(e.field.Options[next].Value)
}

// Activate selects the next option.
func (e *ChoiceField) Activate() { e.Adjust(1) }

// Display returns the selected option's label, or the raw value if it matches
// no option.
func (e *ChoiceField) Display() string {
	if i := e.GetSelected(); i >= 0 {
		return e.field.Options[i].Label
	}
	return display(e.value)
}

// Write does nothing; selections are written immediately.
func (e *ChoiceField) Write() {}
