// Package editors contains the editors for the fields of a menu, one per
// widget kind, and the panel they are arranged in.
package editors

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/propedit/internal/binding"
	"github.com/ja-he/propedit/internal/control/action"
	"github.com/ja-he/propedit/internal/control/edit"
	"github.com/ja-he/propedit/internal/schema"
)

// fieldBase is what all field editors share: the bound field, the value last
// written through it, and the relation to their panel.
type fieldBase struct {
	id    string
	field *binding.Field
	value any

	parent  *Panel
	history *action.History

	quitCallback func()

	log zerolog.Logger
}

func newFieldBase(f *binding.Field, parent *Panel, history *action.History) fieldBase {
	return fieldBase{
		id:      f.Name,
		field:   f,
		value:   f.Get(),
		parent:  parent,
		history: history,
		log:     log.With().Str("source", "field-editor").Str("field", f.Name).Logger(),
	}
}

// GetID returns the attribute name, which is unique within a panel.
func (e *fieldBase) GetID() string { return e.id }

// GetName returns the display label.
func (e *fieldBase) GetName() string { return e.field.Label }

// GetKind returns the widget kind.
func (e *fieldBase) GetKind() schema.WidgetKind { return e.field.Kind }

// GetField returns the bound field.
func (e *fieldBase) GetField() *binding.Field { return e.field }

// GetStatus derives the status from the panel's selection.
func (e *fieldBase) GetStatus() edit.EditorStatus {
	if e.parent == nil {
		return edit.EditorFocussed
	}
	if e.parent.activeID() != e.id {
		return edit.EditorInactive
	}
	if e.parent.inField {
		return edit.EditorFocussed
	}
	return edit.EditorSelected
}

// Quit the editor.
func (e *fieldBase) Quit() {
	if e.quitCallback != nil {
		e.quitCallback()
	}
}

// AddQuitCallback adds a callback that is called when the editor is quit.
func (e *fieldBase) AddQuitCallback(f func()) {
	if e.quitCallback == nil {
		e.quitCallback = f
		return
	}
	existing := e.quitCallback
	e.quitCallback = func() {
		existing()
		f()
	}
}

// commit writes v through the field, recording the write in the history (if
// any) so it can be undone by writing the previous value.
func (e *fieldBase) commit(v any) {
	previous := e.value
	write := func(to any) func() {
		return func() {
			e.value = to
			e.field.Set(to)
		}
	}
	a := action.NewReversible(fmt.Sprintf("set %s", e.field.Label), write(v), write(previous))
	if e.history == nil {
		a.Do()
	} else {
		e.history.Do(a)
	}
	e.log.Debug().Msgf("wrote %v (was %v) to '%s'", v, previous, e.field.Path)
}

func display(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
