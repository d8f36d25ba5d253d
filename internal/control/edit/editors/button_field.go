package editors

// ButtonField is a field that triggers instead of editing: activating it
// writes its value again, so the change callback fires with it.
type ButtonField struct {
	fieldBase
}

// GetType asserts that this is a button.
func (e *ButtonField) GetType() string { return "button" }

// Activate writes the field's value.
func (e *ButtonField) Activate() {
	e.field.Set(e.value)
	e.log.Debug().Msgf("triggered '%s'", e.field.Path)
}

// Display returns the label, as buttons show no value.
func (e *ButtonField) Display() string { return "[ " + e.field.Label + " ]" }

// Write does nothing.
func (e *ButtonField) Write() {}
