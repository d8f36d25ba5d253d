package model

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/jinzhu/copier"
)

// Settings values come from different decoders (YAML gives int and float64,
// TOML gives int64, SQLite-stored JSON gives float64, ...), the helpers in
// this file normalize them for consumers that need a concrete type.

// AsFloat returns the given value as a float64, if it is numeric.
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// AsBool returns the given value as a bool.
// Numbers are true when non-zero.
func AsBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		parsed, err := strconv.ParseBool(b)
		return parsed, err == nil
	default:
		if f, ok := AsFloat(v); ok {
			return f != 0, true
		}
		return false, false
	}
}

// AsString formats the given value for display or text editing.
func AsString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}

// AsContainer returns the given value as a writable sub-key container, if it
// is one.
// The returned map is the same map (not a copy), so writes through it are
// visible in the settings table.
func AsContainer(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case SettingsTable:
		return m, true
	default:
		return nil, false
	}
}

// LookupSub looks up a sub-key in a container value.
// Unlike AsContainer it also reads map[any]any (as produced by some YAML
// decoders) and map[string]string.
func LookupSub(container any, subKey string) (any, bool) {
	switch m := container.(type) {
	case map[string]any:
		v, ok := m[subKey]
		return v, ok
	case SettingsTable:
		v, ok := m[subKey]
		return v, ok
	case map[any]any:
		v, ok := m[subKey]
		return v, ok
	case map[string]string:
		v, ok := m[subKey]
		return v, ok
	default:
		return nil, false
	}
}

// SameValue reports whether two settings values are equal, treating numbers
// of different types as equal when their values are.
func SameValue(a, b any) bool {
	fa, aNum := AsFloat(a)
	fb, bNum := AsFloat(b)
	_, aStr := a.(string)
	_, bStr := b.(string)
	if aNum && bNum && !aStr && !bStr {
		return math.Abs(fa-fb) < 1e-9
	}
	return reflect.DeepEqual(a, b)
}

// CloneContainer returns a copy of a sub-key container which can be written to
// without affecting the original (e.g. a static schema default).
func CloneContainer(container any) (map[string]any, error) {
	var source any
	switch m := container.(type) {
	case map[string]any, map[string]string:
		source = m
	case SettingsTable:
		source = map[string]any(m)
	case map[any]any:
		converted := make(map[string]any, len(m))
		for k, v := range m {
			converted[AsString(k)] = v
		}
		source = converted
	default:
		return nil, fmt.Errorf("value of type %T is not a container", container)
	}

	result := map[string]any{}
	if err := copier.CopyWithOption(&result, source, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("could not copy container (%w)", err)
	}
	return result, nil
}
