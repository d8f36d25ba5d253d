package edit

import (
	"github.com/ja-he/propedit/internal/model"
)

// State is the state of an editor controller.
type State int

const (
	_ State = iota
	// StateIdle means there is no editing session.
	StateIdle
	// StateEditing means an editing session is bound to an object.
	StateEditing
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEditing:
		return "editing"
	}
	return "[UNKNOWN]"
}

// ChangeCallback is called after every write made through an editor's fields.
//
// It receives the edited object, the attribute's name, the new value, the
// settings table that was written to, and the settings key the attribute
// resolved to.
type ChangeCallback func(obj model.Object, attribute string, value any, table model.SettingsTable, key string)

// session is the live state of one editing session.
// Fields bound during a session notify it; once a newer session replaces it,
// it is detached and stops forwarding to its callback.
type session struct {
	object   model.Object
	table    model.SettingsTable
	keyMap   model.KeyMap
	onChange ChangeCallback
	detached bool
}

// Notify forwards a write to the session's change callback, unless the
// session has been detached.
func (s *session) Notify(attribute string, value any, table model.SettingsTable, key string) {
	if s.detached || s.onChange == nil {
		return
	}
	s.onChange(s.object, attribute, value, table, key)
}
