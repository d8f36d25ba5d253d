package binding

import (
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/propedit/internal/model"
	"github.com/ja-he/propedit/internal/schema"
)

// Notifier is notified after every write a Field makes.
type Notifier interface {
	Notify(attribute string, value any, table model.SettingsTable, key string)
}

// Field is an editable field, bound to the location of its value in a
// settings table.
//
// A Field does not own the settings table; it holds a reference to it and the
// Path needed to read and write the value.
type Field struct {
	Name        string
	Label       string
	Kind        schema.WidgetKind
	Min         float64
	Max         float64
	Step        float64
	UseDecimals bool
	Options     []schema.Option
	Path        Path

	value    any
	fallback any
	table    model.SettingsTable
	notifier Notifier
}

// Bind binds the described attribute, resolved to the given key and current
// value, to the given settings table.
// The notifier (may be nil) is notified after each Set.
func Bind(
	d schema.AttributeDescriptor,
	key string,
	current any,
	table model.SettingsTable,
	notifier Notifier,
) *Field {
	return &Field{
		Name:        d.Name,
		Label:       d.Label,
		Kind:        d.Kind,
		Min:         d.Min,
		Max:         d.Max,
		Step:        d.Step,
		UseDecimals: d.UseDecimals,
		Options:     d.Options,
		Path:        Path{Key: key, SubKey: d.SubKey},
		value:       current,
		fallback:    d.Default,
		table:       table,
		notifier:    notifier,
	}
}

// Get returns the value the field was bound with.
//
// This is a snapshot taken at bind time, not a live read of the table.
func (f *Field) Get() any { return f.value }

// Set writes the given value to the field's location in the settings table
// and then notifies the field's notifier.
//
// For a sub-key field whose container does not (yet) exist in the table, the
// container is first created as a copy of the stored or default container, so
// sibling sub-keys keep their values.
//
// Set does not validate the value against the field's bounds; see Clamp.
func (f *Field) Set(v any) {
	if f.Path.SubKey == "" {
		f.table[f.Path.Key] = v
	} else {
		container, ok := model.AsContainer(f.table[f.Path.Key])
		if !ok {
			container = f.materializeContainer()
			f.table[f.Path.Key] = container
		}
		container[f.Path.SubKey] = v
	}

	if f.notifier != nil {
		f.notifier.Notify(f.Name, v, f.table, f.Path.Key)
	}
}

func (f *Field) materializeContainer() map[string]any {
	source := f.table[f.Path.Key]
	if source == nil {
		source = f.fallback
	}
	if source == nil {
		return map[string]any{}
	}
	container, err := model.CloneContainer(source)
	if err != nil {
		log.Warn().Err(err).Str("path", f.Path.String()).Msg("could not copy container, starting from an empty one")
		return map[string]any{}
	}
	return container
}

// Bounded reports whether the field has a numeric range.
func (f *Field) Bounded() bool { return f.Max > f.Min }

// Clamp constrains a numeric value to the field's range and snaps it to the
// field's step (relative to Min), if it has those.
func (f *Field) Clamp(v float64) float64 {
	if !f.Bounded() {
		return v
	}
	if f.Step > 0 {
		v = f.Min + math.Round((v-f.Min)/f.Step)*f.Step
		v = roundTo(v, max(decimals(f.Step), decimals(f.Min)))
	}
	return math.Max(f.Min, math.Min(f.Max, v))
}

// decimals returns the number of decimal places of the shortest
// representation of v.
func decimals(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
