// Package edit implements the editing of objects' properties (by the user):
// the editor controller, which derives a menu of bound fields for an object,
// and the generic interfaces of the field editors that menu is edited with.
package edit

// EditorStatus is the status of a (field) editor within the editor tree.
type EditorStatus string

const (
	// EditorInactive means the editor is neither selected nor focussed.
	EditorInactive EditorStatus = "inactive"
	// EditorSelected means the editor is the selected one among its siblings,
	// but input is not (yet) deferred to it.
	EditorSelected EditorStatus = "selected"
	// EditorDescendantActive means one of the editor's descendants is
	// focussed.
	EditorDescendantActive EditorStatus = "descendant-active"
	// EditorFocussed means the editor receives input.
	EditorFocussed EditorStatus = "focussed"
)

// FieldEditor is an editor for a single field of a menu.
type FieldEditor interface {
	GetStatus() EditorStatus

	// GetID returns the ID of the editor, unique among its siblings.
	GetID() string

	// GetName returns the display label of the edited field.
	GetName() string

	// GetType returns the type of editor, e.g. "text" or "range".
	GetType() string

	// Display returns the current value formatted for display.
	Display() string

	// Write commits the state of the editor to the bound field.
	Write()

	// Quit the editor.
	Quit()

	// AddQuitCallback adds a callback that is called when the editor is quit.
	AddQuitCallback(func())
}

// Activator is a FieldEditor that does something when activated, e.g. a
// toggle flipping its value.
type Activator interface {
	Activate()
}

// Adjuster is a FieldEditor whose value can be stepped up or down.
type Adjuster interface {
	Adjust(steps int)
}
