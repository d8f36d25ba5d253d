package editors

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/propedit/internal/binding"
	"github.com/ja-he/propedit/internal/control/action"
	"github.com/ja-he/propedit/internal/control/edit"
	"github.com/ja-he/propedit/internal/control/edit/views"
	"github.com/ja-he/propedit/internal/input"
	"github.com/ja-he/propedit/internal/input/processors"
	"github.com/ja-he/propedit/internal/menu"
	"github.com/ja-he/propedit/internal/schema"
)

// Field is a field editor as arranged in a panel.
type Field interface {
	edit.FieldEditor
	views.FieldView
	GetField() *binding.Field
}

var _ views.PanelView = &Panel{}

// Panel is the editor for a whole menu: a list of field editors, one of
// which is selected and can be entered (for text fields) or activated and
// adjusted directly.
type Panel struct {
	name   string
	layout menu.Layout

	fields      []Field
	activeIndex int
	inField     bool
	leaveField  func()

	quitCallback func()

	log zerolog.Logger
}

// ConstructPanel constructs the editors for all fields of the given menu.
// Writes made through them are recorded in the given history, which may be
// nil.
func ConstructPanel(name string, description menu.Description, history *action.History) (*Panel, error) {
	p := &Panel{
		name:   name,
		layout: description.Layout,
		log:    log.With().Str("source", "panel").Str("panel", name).Logger(),
	}

	for _, f := range description.Fields {
		if f == nil {
			return nil, fmt.Errorf("menu of panel '%s' contains a nil field", name)
		}
		base := newFieldBase(f, p, history)
		var editor Field
		switch {
		case f.Kind == schema.TextEntry || f.Kind == schema.Color:
			t := &TextField{fieldBase: base}
			t.Reset()
			editor = t
		case f.Kind == schema.Range:
			editor = &RangeField{fieldBase: base}
		case f.Kind == schema.Toggle:
			editor = &ToggleField{fieldBase: base}
		case f.Kind.IsDropdown():
			editor = &ChoiceField{fieldBase: base}
		case f.Kind == schema.Button:
			editor = &ButtonField{fieldBase: base}
		default:
			return nil, fmt.Errorf("no editor for field '%s' of kind %s", f.Name, f.Kind)
		}
		editor.AddQuitCallback(p.left)
		p.fields = append(p.fields, editor)
	}

	p.log.Debug().Msgf("constructed panel with %d fields", len(p.fields))
	return p, nil
}

// GetName returns the name of the panel.
func (p *Panel) GetName() string { return p.name }

// GetType asserts that this is a panel.
func (p *Panel) GetType() string { return "panel" }

// GetLayout returns the layout hints of the panel's menu.
func (p *Panel) GetLayout() menu.Layout { return p.layout }

// GetStatus returns focussed, or descendant-active while a field is entered.
func (p *Panel) GetStatus() edit.EditorStatus {
	if p.inField {
		return edit.EditorDescendantActive
	}
	return edit.EditorFocussed
}

// GetFields returns the field editors.
func (p *Panel) GetFields() []Field { return p.fields }

// GetFieldViews returns the field editors for inspection.
func (p *Panel) GetFieldViews() []views.FieldView {
	result := make([]views.FieldView, len(p.fields))
	for i, f := range p.fields {
		result[i] = f
	}
	return result
}

// GetActiveFieldIndex returns the index of the selected field.
func (p *Panel) GetActiveFieldIndex() int { return p.activeIndex }

// IsInField returns whether the selected field is entered.
func (p *Panel) IsInField() bool { return p.inField }

// ActiveField returns the selected field editor, or nil for an empty panel.
func (p *Panel) ActiveField() Field {
	if len(p.fields) == 0 {
		return nil
	}
	return p.fields[p.activeIndex]
}

// left is called by a field when it is quit.
func (p *Panel) left() {
	p.inField = false
	if p.leaveField != nil {
		p.leaveField()
		p.leaveField = nil
	}
}

func (p *Panel) activeID() string {
	if f := p.ActiveField(); f != nil {
		return f.GetID()
	}
	return ""
}

// SelectField selects the field at the given index, if valid and no field is
// entered.
func (p *Panel) SelectField(index int) {
	if p.inField || index < 0 || index >= len(p.fields) {
		return
	}
	if index != p.activeIndex {
		p.log.Trace().Msgf("switching fields '%s' -> '%s'", p.fields[p.activeIndex].GetID(), p.fields[index].GetID())
	}
	p.activeIndex = index
}

// SwitchToNextField selects the next field, wrapping around.
func (p *Panel) SwitchToNextField() {
	if len(p.fields) > 0 {
		p.SelectField((p.activeIndex + 1) % len(p.fields))
	}
}

// SwitchToPrevField selects the previous field, wrapping around.
func (p *Panel) SwitchToPrevField() {
	if len(p.fields) > 0 {
		p.SelectField((p.activeIndex - 1 + len(p.fields)) % len(p.fields))
	}
}

// SwitchToFirstField selects the first field.
func (p *Panel) SwitchToFirstField() { p.SelectField(0) }

// SwitchToLastField selects the last field.
func (p *Panel) SwitchToLastField() { p.SelectField(len(p.fields) - 1) }

// EnterField enters the selected field, if it is a text field, and returns
// it; fields of other kinds are activated instead.
func (p *Panel) EnterField() *TextField {
	if p.inField {
		p.log.Warn().Msg("prompted to enter a field while already in one; likely logic error")
		return nil
	}
	switch f := p.ActiveField().(type) {
	case *TextField:
		f.Reset()
		p.inField = true
		return f
	case edit.Activator:
		f.Activate()
	}
	return nil
}

// ActivateField activates the selected field (toggling, cycling, pressing).
func (p *Panel) ActivateField() {
	if a, ok := p.ActiveField().(edit.Activator); ok {
		a.Activate()
	}
}

// AdjustField steps the selected field, if it can be stepped.
func (p *Panel) AdjustField(steps int) {
	if a, ok := p.ActiveField().(edit.Adjuster); ok {
		a.Adjust(steps)
	}
}

// Write commits the pending edits of all fields.
func (p *Panel) Write() {
	for _, f := range p.fields {
		f.Write()
	}
}

// AddQuitCallback adds a callback that is called when the panel is quit.
func (p *Panel) AddQuitCallback(f func()) {
	if p.quitCallback == nil {
		p.quitCallback = f
		return
	}
	existing := p.quitCallback
	p.quitCallback = func() {
		existing()
		f()
	}
}

// Quit quits the panel.
func (p *Panel) Quit() {
	if p.quitCallback != nil {
		p.quitCallback()
	}
}

// CreateInputProcessor creates the input processor navigating the panel.
// Entering a text field overlays the processor with the field's own.
//
// The panel's own actions are merged with the given extra actions (such as
// undo or quit, which concern more than the panel); keyspecs mapped to
// actions neither provides are an error.
func (p *Panel) CreateInputProcessor(cfg input.InputConfig, extra map[input.Actionspec]func()) (input.ModalInputProcessor, error) {
	var processor *processors.ModalInputProcessor

	actionspecToFunc := map[input.Actionspec]func(){
		"next-field":      p.SwitchToNextField,
		"prev-field":      p.SwitchToPrevField,
		"first-field":     p.SwitchToFirstField,
		"last-field":      p.SwitchToLastField,
		"activate-field":  p.ActivateField,
		"increment":       func() { p.AdjustField(1) },
		"decrement":       func() { p.AdjustField(-1) },
		"increment-large": func() { p.AdjustField(10) },
		"decrement-large": func() { p.AdjustField(-10) },
		"edit-field": func() {
			text := p.EnterField()
			if text == nil {
				return
			}
			overlay, err := text.CreateInputProcessor(cfg)
			if err != nil {
				p.log.Error().Err(err).Msgf("could not create input processor for '%s'", text.GetID())
				p.inField = false
				return
			}
			index := processor.ApplyModalOverlay(overlay)
			p.leaveField = func() { processor.PopModalOverlays(index) }
		},
	}
	for a, f := range extra {
		actionspecToFunc[a] = f
	}

	mappings := map[input.Keyspec]action.Action{}
	for keyspec, actionspec := range cfg.Panel {
		f, ok := actionspecToFunc[actionspec]
		if !ok {
			return nil, fmt.Errorf("unknown panel action '%s' for '%s'", actionspec, keyspec)
		}
		explanation := string(actionspec)
		mappings[keyspec] = action.NewSimple(func() string { return explanation }, f)
	}
	tree, err := input.ConstructInputTree(mappings)
	if err != nil {
		return nil, fmt.Errorf("could not construct panel input tree: %w", err)
	}

	processor = processors.NewModalInputProcessor(tree)
	return processor, nil
}
