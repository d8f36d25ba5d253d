package panes

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/propedit/internal/control/action"
	"github.com/ja-he/propedit/internal/control/edit"
	"github.com/ja-he/propedit/internal/control/edit/editors"
	"github.com/ja-he/propedit/internal/input"
	"github.com/ja-he/propedit/internal/menu"
	"github.com/ja-he/propedit/internal/styling"
	"github.com/ja-he/propedit/internal/ui"
)

// MenuRenderer renders menus into the OptionsFrame of a PropertyPane:
// it constructs a panel of field editors, a pane per field, and the input
// processor navigating the panel.
//
// It implements edit.Renderer.
type MenuRenderer struct {
	keys    input.InputConfig
	extra   map[input.Actionspec]func()
	history *action.History

	cursorController ui.CursorLocationRequestHandler

	log zerolog.Logger
}

// NewMenuRenderer returns a renderer creating input processors from the given
// key configuration. The extra actions are available to the panel's input
// processor in addition to the panel's own.
// Edits are recorded in the given history, which may be nil.
func NewMenuRenderer(
	keys input.InputConfig,
	extra map[input.Actionspec]func(),
	history *action.History,
	cursorController ui.CursorLocationRequestHandler,
) *MenuRenderer {
	return &MenuRenderer{
		keys:             keys,
		extra:            extra,
		history:          history,
		cursorController: cursorController,
		log:              log.With().Str("source", "menu-renderer").Logger(),
	}
}

// Render lays the menu out in the given frame, replacing what it held before.
// The frame must be an OptionsFrame.
func (r *MenuRenderer) Render(into edit.Frame, description menu.Description, templates styling.WidgetTemplates) {
	if err := r.render(into, description, templates); err != nil {
		r.log.Error().Err(err).Msg("could not render menu")
	}
}

func (r *MenuRenderer) render(into edit.Frame, description menu.Description, templates styling.WidgetTemplates) error {
	frame, ok := into.(*OptionsFrame)
	if !ok || frame == nil {
		return fmt.Errorf("cannot render into frame of type %T", into)
	}

	panel, err := editors.ConstructPanel(frame.GetFrameName(), description, r.history)
	if err != nil {
		return fmt.Errorf("could not construct panel (%w)", err)
	}
	processor, err := panel.CreateInputProcessor(r.keys, r.extra)
	if err != nil {
		return fmt.Errorf("could not create input processor for panel (%w)", err)
	}

	canvas := frame.canvas
	fieldRenderer := ui.NewConstrainedRenderer(canvas.Renderer, canvas.contentArea)
	fields := make([]*FieldPane, len(panel.GetFields()))
	for i, f := range panel.GetFields() {
		index := i
		fields[i] = NewFieldPane(
			fieldRenderer,
			func() (x, y, w, h int) { return canvas.fieldDimensions(index) },
			f,
			description.Layout,
			templates,
			r.cursorController,
		)
		fields[i].SetParent(canvas)
	}

	// withdraw cursor requests of the fields being replaced
	for _, old := range frame.fields {
		r.cursorController.Delete(old.idStr)
	}
	frame.replace(panel, fields, templates, processor)
	r.log.Debug().Msgf("rendered %d fields into '%s'", len(fields), frame.GetFrameName())
	return nil
}
