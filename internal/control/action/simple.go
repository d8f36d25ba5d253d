package action

// Simple is an Action wrapping a func() that is called on Do.
// It cannot be undone.
type Simple struct {
	do      func()
	explain func() string
}

// NewSimple returns a new simple action explained by explainer and performing
// do.
func NewSimple(explainer func() string, do func()) *Simple {
	return &Simple{do: do, explain: explainer}
}

// Do calls the wrapped function.
func (a *Simple) Do() { a.do() }

// Undo is a no-op.
func (a *Simple) Undo() {}

// Undoable is always false.
func (a *Simple) Undoable() bool { return false }

// Explain returns the current explanation.
func (a *Simple) Explain() string { return a.explain() }
