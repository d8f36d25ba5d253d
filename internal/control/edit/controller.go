package edit

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/propedit/internal/binding"
	"github.com/ja-he/propedit/internal/menu"
	"github.com/ja-he/propedit/internal/model"
	"github.com/ja-he/propedit/internal/schema"
	"github.com/ja-he/propedit/internal/styling"
)

// Precondition violations of BeginEdit. These are integration errors on the
// caller's side; the editor stays in its previous state.
var (
	ErrNilObject        = errors.New("object to edit must not be nil")
	ErrNoObjectType     = errors.New("object to edit has no object type")
	ErrNilSettingsTable = errors.New("settings table must not be nil")
)

// ErrNotEditing is returned when an operation requires an editing session but
// the editor is idle.
var ErrNotEditing = errors.New("editor has no editing session")

// Default editor dimensions, in pixels.
const (
	DefaultWidth  = 400
	DefaultHeight = 600
)

// Options are the options an editor is created with.
// Zero values are replaced by defaults.
type Options struct {
	Width  int
	Height int

	// LabelWidth is the width of the menu's label column, in pixels.
	LabelWidth int
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.LabelWidth <= 0 {
		o.LabelWidth = menu.DefaultLabelWidth
	}
	return o
}

// Frame is a handle to a region of the UI that widgets can be placed in.
type Frame interface {
	GetFrameName() string
}

// Canvas is a scrollable viewport hosting a content frame.
type Canvas interface {
	Frame
	Content() Frame
}

// Container is the part of the UI an editor is placed in; it creates the
// editor's canvas.
type Container interface {
	NewCanvas(name string, width, height int) Canvas
}

// Renderer lays out a menu description as interactive widgets in a frame.
// Rendering replaces whatever the frame held before.
type Renderer interface {
	Render(into Frame, description menu.Description, templates styling.WidgetTemplates)
}

// Editor is the editor controller.
//
// It owns at most one editing session at a time. From the session's object,
// settings table and key map it derives the menu of bound fields and hands it
// to its renderer.
type Editor struct {
	name    string
	options Options

	canvas Canvas
	frame  Frame

	registry  *schema.Registry
	renderer  Renderer
	templates styling.WidgetTemplates

	session *session
	menu    menu.Description

	log zerolog.Logger
}

// New creates an editor in the given container.
// If no name is given, one is generated.
//
// The container may be nil for an editor that only derives menus without
// rendering them.
func New(container Container, name string, options Options) *Editor {
	if name == "" {
		name = "propedit-editor-" + uuid.NewString()
	}
	options = options.withDefaults()

	e := &Editor{
		name:     name,
		options:  options,
		registry: schema.Default,
		log:      log.With().Str("source", "editor").Str("editor", name).Logger(),
	}
	if container != nil {
		e.canvas = container.NewCanvas(name+"-canvas", options.Width, options.Height)
		if e.canvas != nil {
			e.frame = e.canvas.Content()
		}
	}

	e.log.Debug().Msgf("created editor (%dx%d)", options.Width, options.Height)
	return e
}

// SetRegistry sets the schema registry the editor looks up object types in
// (schema.Default, unless set).
func (e *Editor) SetRegistry(r *schema.Registry) { e.registry = r }

// SetRenderer sets the renderer menus are handed to.
func (e *Editor) SetRenderer(r Renderer) { e.renderer = r }

// SetTemplates sets the style templates handed to the renderer.
func (e *Editor) SetTemplates(t styling.WidgetTemplates) { e.templates = t }

// BeginEdit starts a new editing session on the given object, replacing any
// previous session, and builds its menu.
//
// Fields built during a previous session are detached: writes through them
// still reach their settings table, but no longer invoke that session's
// change callback.
func (e *Editor) BeginEdit(
	obj model.Object,
	table model.SettingsTable,
	keyMap model.KeyMap,
	onChange ChangeCallback,
) error {
	if isNil(obj) {
		e.log.Error().Err(ErrNilObject).Msg("refusing to begin edit")
		return fmt.Errorf("cannot begin edit: %w", ErrNilObject)
	}
	if obj.GetObjectType() == "" {
		e.log.Error().Err(ErrNoObjectType).Msg("refusing to begin edit")
		return fmt.Errorf("cannot begin edit on %T: %w", obj, ErrNoObjectType)
	}
	if table == nil {
		e.log.Error().Err(ErrNilSettingsTable).Msg("refusing to begin edit")
		return fmt.Errorf("cannot begin edit on '%s': %w", obj.GetObjectType(), ErrNilSettingsTable)
	}

	if e.session != nil {
		e.session.detached = true
		e.log.Debug().Msgf("replacing session on '%s'", e.session.object.GetObjectType())
	}
	e.session = &session{
		object:   obj,
		table:    table,
		keyMap:   keyMap,
		onChange: onChange,
	}
	e.log.Info().Str("type", obj.GetObjectType()).Msg("began editing")

	_, err := e.RebuildMenu()
	return err
}

// RebuildMenu re-derives the menu for the current session and renders it.
// It can be called any number of times, e.g. after the settings table was
// reloaded.
//
// If no schema is registered for the object's type, the returned menu is
// empty and nothing is rendered.
func (e *Editor) RebuildMenu() (menu.Description, error) {
	if e.session == nil {
		return menu.Description{}, ErrNotEditing
	}

	objectType := e.session.object.GetObjectType()
	descriptors := e.registry.SchemaFor(objectType)
	if len(descriptors) == 0 {
		e.log.Debug().Msgf("no schema for object type '%s', rendering nothing", objectType)
		e.menu = menu.Description{}
		return e.menu, nil
	}

	fields := make([]*binding.Field, 0, len(descriptors))
	for _, d := range descriptors {
		r := binding.Resolve(d, e.session.table, e.session.keyMap)
		if r.State != binding.Present {
			e.log.Trace().Msgf("skipping attribute '%s' (%s)", d.Name, r.State)
			continue
		}
		fields = append(fields, binding.Bind(d, r.Path.Key, r.Value, e.session.table, e.session))
	}

	layout := menu.DefaultLayout(e.options.Height)
	layout.LabelWidth = e.options.LabelWidth
	description := menu.Assemble(fields, layout)
	e.menu = description
	e.log.Debug().Msgf("built menu for '%s' with %d/%d fields", objectType, len(fields), len(descriptors))

	if e.renderer != nil && e.frame != nil {
		e.renderer.Render(e.frame, description, e.templates)
	}
	return description, nil
}

// Menu returns the menu last built for the current session (empty if idle).
func (e *Editor) Menu() menu.Description {
	if e.session == nil {
		return menu.Description{}
	}
	return e.menu
}

// State returns whether the editor is idle or editing.
func (e *Editor) State() State {
	if e.session == nil {
		return StateIdle
	}
	return StateEditing
}

// Name returns the editor's name.
func (e *Editor) Name() string { return e.name }

// Options returns the (defaulted) options the editor was created with.
func (e *Editor) Options() Options { return e.options }

// EditingObject returns the object of the current session (nil if idle).
func (e *Editor) EditingObject() model.Object {
	if e.session == nil {
		return nil
	}
	return e.session.object
}

// EditingTable returns the settings table and key map of the current session
// (nil if idle).
func (e *Editor) EditingTable() (model.SettingsTable, model.KeyMap) {
	if e.session == nil {
		return nil, nil
	}
	return e.session.table, e.session.keyMap
}

// OnChange returns the change callback of the current session (nil if idle or
// none registered).
func (e *Editor) OnChange() ChangeCallback {
	if e.session == nil {
		return nil
	}
	return e.session.onChange
}

// OptionsFrame returns the frame the editor's menu is rendered into.
func (e *Editor) OptionsFrame() Frame { return e.frame }

// Canvas returns the editor's scrollable canvas.
func (e *Editor) Canvas() Canvas { return e.canvas }

func isNil(obj model.Object) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
