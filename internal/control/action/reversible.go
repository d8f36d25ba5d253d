package action

// Reversible is an Action made of a pair of functions, one doing and one
// undoing it, e.g. a field write and the write of the field's previous value.
type Reversible struct {
	do      func()
	undo    func()
	explain string
}

// NewReversible returns a new reversible action.
func NewReversible(explanation string, do, undo func()) *Reversible {
	return &Reversible{do: do, undo: undo, explain: explanation}
}

// Do performs the action.
func (a *Reversible) Do() { a.do() }

// Undo reverts the action.
func (a *Reversible) Undo() { a.undo() }

// Undoable is always true.
func (a *Reversible) Undoable() bool { return true }

// Explain returns the explanation the action was created with.
func (a *Reversible) Explain() string { return a.explain }

// History is a bounded stack of actions that were done and can be undone.
// Actions that are not undoable are not recorded.
type History struct {
	done  []Action
	limit int
}

// NewHistory returns an empty history keeping at most limit actions
// (unbounded, if limit <= 0).
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Do performs the given action and records it.
func (h *History) Do(a Action) {
	a.Do()
	if !a.Undoable() {
		return
	}
	h.done = append(h.done, a)
	if h.limit > 0 && len(h.done) > h.limit {
		h.done = h.done[len(h.done)-h.limit:]
	}
}

// Undo reverts the most recent recorded action.
// It returns false, if there was nothing to undo.
func (h *History) Undo() bool {
	if len(h.done) == 0 {
		return false
	}
	last := h.done[len(h.done)-1]
	h.done = h.done[:len(h.done)-1]
	last.Undo()
	return true
}

// Len returns the number of actions that can be undone.
func (h *History) Len() int { return len(h.done) }

// Clear forgets all recorded actions.
func (h *History) Clear() { h.done = nil }
