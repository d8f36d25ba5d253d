package editors

import (
	"math"
	"strconv"

	"github.com/ja-he/propedit/internal/model"
)

// RangeField edits a numeric field by stepping it up and down.
// Values are clamped to the field's bounds and snapped to its step; fields
// without decimals are written as ints.
type RangeField struct {
	fieldBase
}

// GetType asserts that this is a range field.
func (e *RangeField) GetType() string { return "range" }

// Number returns the current value as a float.
// Non-numeric values (which can only come from a hand-edited settings file)
// count as the lower bound.
func (e *RangeField) Number() float64 {
	if f, ok := model.AsFloat(e.value); ok {
		return f
	}
	return e.field.Min
}

// Step returns the increment of a single step.
func (e *RangeField) Step() float64 {
	switch {
	case e.field.Step > 0:
		return e.field.Step
	case e.field.Bounded() && e.field.UseDecimals:
		return (e.field.Max - e.field.Min) / 100
	default:
		return 1
	}
}

// Adjust moves the value by the given number of steps and writes it.
func (e *RangeField) Adjust(steps int) {
	if steps == 0 {
		return
	}
	current := e.Number()
	next := e.field.Clamp(current + float64(steps)*e.Step())
	if next == current {
		return
	}
	e.commit(e.typed(next))
}

// Fraction returns the position of the value within the bounds (0 to 1), or
// -1 if the field is unbounded.
func (e *RangeField) Fraction() float64 {
	if !e.field.Bounded() {
		return -1
	}
	f := (e.Number() - e.field.Min) / (e.field.Max - e.field.Min)
	return math.Max(0, math.Min(1, f))
}

// Display formats the value, with two decimals for decimal fields.
func (e *RangeField) Display() string {
	if e.field.UseDecimals {
		return strconv.FormatFloat(e.Number(), 'f', 2, 64)
	}
	return strconv.FormatFloat(math.Round(e.Number()), 'f', 0, 64)
}

// Write does nothing; adjustments are written immediately.
func (e *RangeField) Write() {}

func (e *RangeField) typed(v float64) any {
	if e.field.UseDecimals {
		return v
	}
	return int(math.Round(v))
}
