// Package binding resolves attribute values from settings tables and binds
// them to fields that can read and write those tables.
package binding

import (
	"github.com/ja-he/propedit/internal/model"
	"github.com/ja-he/propedit/internal/schema"
)

// State is the outcome of resolving an attribute.
type State int

const (
	_ State = iota
	// Unmapped means the key map has no settings key for the attribute.
	Unmapped
	// Excluded means there is no value to bind to: no stored value and no
	// default, or the container lacks the sub-key.
	Excluded
	// Present means a value was resolved.
	Present
)

// String returns a name for the state, e.g. for logging.
func (s State) String() string {
	switch s {
	case Unmapped:
		return "unmapped"
	case Excluded:
		return "excluded"
	case Present:
		return "present"
	}
	return "[UNKNOWN]"
}

// Path locates an attribute's value in a settings table: table[Key], or
// table[Key][SubKey] when SubKey is set.
type Path struct {
	Key    string
	SubKey string
}

// String returns the path in dotted notation.
func (p Path) String() string {
	if p.SubKey == "" {
		return p.Key
	}
	return p.Key + "." + p.SubKey
}

// Resolution is the result of resolving one attribute.
// Path is set unless the attribute is Unmapped; Value only when Present.
type Resolution struct {
	State State
	Path  Path
	Value any
}

// Resolve computes the current value of the described attribute.
//
// The stored value table[keyMap[name]] is used if non-nil, otherwise the
// descriptor's default. With a sub-key, the value is looked up within that
// (stored or default) container. Only nil counts as absent; zero values such
// as 0, false or "" are present.
func Resolve(d schema.AttributeDescriptor, table model.SettingsTable, keyMap model.KeyMap) Resolution {
	key, mapped := keyMap[d.Name]
	if !mapped {
		return Resolution{State: Unmapped}
	}
	path := Path{Key: key, SubKey: d.SubKey}

	value := table[key]
	if value == nil {
		value = d.Default
	}
	if value == nil {
		return Resolution{State: Excluded, Path: path}
	}

	if d.SubKey != "" {
		sub, ok := model.LookupSub(value, d.SubKey)
		if !ok || sub == nil {
			return Resolution{State: Excluded, Path: path}
		}
		value = sub
	}

	return Resolution{State: Present, Path: path, Value: value}
}
