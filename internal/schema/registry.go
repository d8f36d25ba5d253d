// Package schema declares which attributes an object type has, how they are
// edited, and within which bounds.
package schema

import (
	"fmt"
	"sort"

	"github.com/ja-he/propedit/internal/model"
)

// Option is a single choice of a dropdown attribute.
type Option struct {
	Label string
	Value any
}

// AttributeDescriptor is the static definition of one editable attribute of
// an object type.
type AttributeDescriptor struct {
	// Name identifies the attribute, unique within its schema. Key maps map
	// this name to a settings key.
	Name  string
	Label string
	Kind  WidgetKind

	// Default is used when the settings table has no stored value. May be nil.
	Default any

	Min, Max, Step float64
	UseDecimals    bool

	// SubKey, if set, means the stored value is a mapping and the attribute's
	// value lives at storedValue[SubKey].
	SubKey string

	Options []Option
}

// Bounded reports whether the descriptor declares a numeric range.
func (d AttributeDescriptor) Bounded() bool { return d.Max > d.Min }

// Registry maps object types to their ordered attribute schemas.
type Registry struct {
	schemas map[string][]AttributeDescriptor
	keyMaps map[string]model.KeyMap
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		schemas: make(map[string][]AttributeDescriptor),
		keyMaps: make(map[string]model.KeyMap),
	}
}

// Register registers the schema for the given object type.
// Descriptor order is the display order.
func (r *Registry) Register(objectType string, descriptors []AttributeDescriptor) error {
	if objectType == "" {
		return fmt.Errorf("cannot register schema for empty object type")
	}
	if _, exists := r.schemas[objectType]; exists {
		return fmt.Errorf("schema for object type '%s' already registered", objectType)
	}
	seen := make(map[string]bool, len(descriptors))
	for i, d := range descriptors {
		if d.Name == "" {
			return fmt.Errorf("descriptor %d of '%s' has no name", i, objectType)
		}
		if seen[d.Name] {
			return fmt.Errorf("duplicate attribute '%s' in schema for '%s'", d.Name, objectType)
		}
		seen[d.Name] = true
	}

	owned, err := copyDescriptors(descriptors)
	if err != nil {
		return fmt.Errorf("could not copy schema for '%s' (%w)", objectType, err)
	}
	r.schemas[objectType] = owned
	return nil
}

// MustRegister is Register, panicking on error; intended for package-level
// initialization of static schemas.
func (r *Registry) MustRegister(objectType string, descriptors []AttributeDescriptor) {
	if err := r.Register(objectType, descriptors); err != nil {
		panic(err.Error())
	}
}

// SchemaFor returns the declared attributes of the given object type, in
// declaration order.
// Unknown object types yield an empty schema, not an error.
//
// The returned descriptors are copies; modifying them (including their
// options and container defaults) does not affect the registry.
func (r *Registry) SchemaFor(objectType string) []AttributeDescriptor {
	descriptors, ok := r.schemas[objectType]
	if !ok {
		return nil
	}
	result, err := copyDescriptors(descriptors)
	if err != nil {
		// registered descriptors were copied the same way, so this is a logic error
		panic(fmt.Sprintf("could not copy schema for '%s' (%s)", objectType, err.Error()))
	}
	return result
}

// Types returns the registered object types, sorted.
func (r *Registry) Types() []string {
	result := make([]string, 0, len(r.schemas))
	for t := range r.schemas {
		result = append(result, t)
	}
	sort.Strings(result)
	return result
}

// Clone returns an independent copy of the registry, which can be modified
// (e.g. in tests) without affecting the original.
func (r *Registry) Clone() (*Registry, error) {
	clone := NewRegistry()
	for objectType, descriptors := range r.schemas {
		copied, err := copyDescriptors(descriptors)
		if err != nil {
			return nil, fmt.Errorf("could not clone schema for '%s' (%w)", objectType, err)
		}
		clone.schemas[objectType] = copied
	}
	for objectType, keyMap := range r.keyMaps {
		clone.keyMaps[objectType] = keyMap.Clone()
	}
	return clone, nil
}

// copyDescriptors deep-copies descriptors, so that neither their options nor
// their container defaults share memory with the originals.
func copyDescriptors(descriptors []AttributeDescriptor) ([]AttributeDescriptor, error) {
	copied := make([]AttributeDescriptor, len(descriptors))
	copy(copied, descriptors)
	for i, d := range descriptors {
		if d.Options != nil {
			copied[i].Options = make([]Option, len(d.Options))
			copy(copied[i].Options, d.Options)
		}
		if _, isContainer := model.AsContainer(d.Default); isContainer {
			cloned, err := model.CloneContainer(d.Default)
			if err != nil {
				return nil, fmt.Errorf("could not copy default of '%s' (%w)", d.Name, err)
			}
			copied[i].Default = cloned
		}
	}
	return copied, nil
}

// SetDefaultKeyMap sets the key map DefaultKeyMap returns for the given
// (registered) object type.
func (r *Registry) SetDefaultKeyMap(objectType string, keyMap model.KeyMap) error {
	if _, ok := r.schemas[objectType]; !ok {
		return fmt.Errorf("no schema registered for object type '%s'", objectType)
	}
	r.keyMaps[objectType] = keyMap.Clone()
	return nil
}

// DefaultKeyMap returns the key map objects of the given type are edited with
// when no other is given: the one set via SetDefaultKeyMap, or else one
// mapping every attribute to the settings key of the same name.
// Unknown object types yield an empty key map.
func (r *Registry) DefaultKeyMap(objectType string) model.KeyMap {
	if keyMap, ok := r.keyMaps[objectType]; ok {
		return keyMap.Clone()
	}
	result := model.KeyMap{}
	for _, d := range r.schemas[objectType] {
		result[d.Name] = d.Name
	}
	return result
}
