// Package action provides the actions that key inputs are bound to.
package action

// Action is something that can be done (and possibly undone), e.g., in
// response to a key press.
type Action interface {
	// Do performs the action.
	Do()

	// Undo reverts the action, if it is undoable.
	Undo()
	// Undoable returns whether Undo actually reverts the action.
	Undoable() bool

	// Explain returns a short human-readable description of the action, as
	// shown in the help pane.
	Explain() string
}
