package model

// Object is anything that can be edited in a property editor.
//
// The editor only needs to know what kind of object it is looking at, so it
// can pick the matching attribute schema; the object is otherwise opaque.
type Object interface {
	GetObjectType() string
}

// SettingsTable is a (persisted) mapping of settings keys to their stored
// values.
//
// Values are scalars or, where an attribute uses a sub-key, a small nested
// mapping (map[string]any). The table is owned by whoever hands it to the
// editor; the editor reads and mutates it in place but never copies it.
type SettingsTable map[string]any

// KeyMap maps attribute names (as declared in a schema) to the keys they are
// stored under in a SettingsTable.
//
// A key map may be partial, attributes it does not mention are not edited.
type KeyMap map[string]string

// Clone returns a shallow copy of the key map.
func (m KeyMap) Clone() KeyMap {
	result := make(KeyMap, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}
