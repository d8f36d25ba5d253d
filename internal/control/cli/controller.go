package cli

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/propedit/internal/config"
	"github.com/ja-he/propedit/internal/control/action"
	"github.com/ja-he/propedit/internal/control/edit"
	"github.com/ja-he/propedit/internal/input"
	"github.com/ja-he/propedit/internal/input/processors"
	"github.com/ja-he/propedit/internal/model"
	"github.com/ja-he/propedit/internal/potatolog"
	"github.com/ja-he/propedit/internal/schema"
	"github.com/ja-he/propedit/internal/styling"
	"github.com/ja-he/propedit/internal/tui"
	"github.com/ja-he/propedit/internal/ui"
	"github.com/ja-he/propedit/internal/ui/panes"
)

// Controller is the struct for the TUI controller.
//
// All editing happens on the goroutine running Run: screen events and reload
// requests are funneled to it through the controller events channel.
type Controller struct {
	session *settingsSession

	rootPane *panes.RootPane
	helpPane *panes.HelpPane
	editor   *edit.Editor
	history  *action.History

	status   string
	showHelp bool
	showLog  bool
	exiting  bool

	controllerEvents chan controllerEvent
	done             chan struct{}

	screenEvents      tui.EventPollable
	initializedScreen tui.InitializedScreen
	syncer            tui.ScreenSynchronizer

	log zerolog.Logger
}

// NewController creates a new Controller on the given screen handler and
// begins editing the session's object.
func NewController(
	session *settingsSession,
	configData config.Config,
	stylesheet *styling.Stylesheet,
	registry *schema.Registry,
	renderer *tui.ScreenHandler,
) (*Controller, error) {
	controller := &Controller{
		session:          session,
		history:          action.NewHistory(0),
		controllerEvents: make(chan controllerEvent, 32),
		done:             make(chan struct{}),
		log:              log.With().Str("source", "controller").Logger(),
	}

	cursorWrangler := ui.NewCursorWrangler(renderer)
	screenDimensions := renderer.Dimensions
	statusDimensions := func() (x, y, w, h int) {
		_, _, sw, sh := screenDimensions()
		return 0, sh - 1, sw, 1
	}
	overlayDimensions := func() (x, y, w, h int) {
		_, _, sw, sh := screenDimensions()
		return 2, 1, max(sw-4, 0), max(sh-3, 0)
	}
	var rootPane *panes.RootPane
	previewDimensions := func() (x, y, w, h int) {
		cx, cy, cw, ch := rootPane.CanvasDimensions()
		_, _, sw, _ := screenDimensions()
		return cx + cw, cy, max(sw-cx-cw, 0), ch
	}

	previewPane := panes.NewPreviewPane(
		ui.NewConstrainedRenderer(renderer, previewDimensions),
		previewDimensions,
		stylesheet,
		nil,
		func() *model.Label {
			l, _ := session.object.(*model.Label)
			return l
		},
	)
	statusPane := panes.NewStatusPane(
		ui.NewConstrainedRenderer(renderer, statusDimensions),
		statusDimensions,
		stylesheet,
		func() string { return session.object.GetObjectType() },
		func() string { return controller.status },
		controller.mode,
	)

	closeOverlay := func(close func()) *processors.ModalInputProcessor {
		tree, err := input.ConstructInputTree(map[input.Keyspec]action.Action{
			"?":     action.NewSimple(func() string { return "close" }, close),
			"q":     action.NewSimple(func() string { return "close" }, close),
			"<esc>": action.NewSimple(func() string { return "close" }, close),
		})
		if err != nil {
			panic(err.Error())
		}
		return processors.NewModalInputProcessor(tree)
	}
	logPane := panes.NewLogPane(
		ui.NewConstrainedRenderer(renderer, overlayDimensions),
		overlayDimensions,
		stylesheet,
		func() bool { return controller.showLog },
		func() string { return "LOG" },
		potatolog.GlobalMemoryLogReaderWriter,
	)
	logPane.SetInputProcessor(closeOverlay(func() { controller.showLog = false }))
	helpPane := panes.NewHelpPane(
		ui.NewConstrainedRenderer(renderer, overlayDimensions),
		overlayDimensions,
		stylesheet,
		func() bool { return controller.showHelp },
		closeOverlay(func() { controller.showHelp = false }),
	)

	rootPaneInputTree, err := input.ConstructInputTree(
		map[input.Keyspec]action.Action{
			"<c-c>": action.NewSimple(func() string { return "exit program" }, controller.quit),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to construct input tree for root pane (%w)", err)
	}

	rootPane = panes.NewRootPane(
		renderer,
		renderer,
		cursorWrangler,
		stylesheet,
		func() string {
			if l, ok := session.object.(*model.Label); ok && l.Name != "" {
				return fmt.Sprintf("%s Options (%s)", session.object.GetObjectType(), l.Name)
			}
			return session.object.GetObjectType() + " Options"
		},
		1,
		previewPane,
		statusPane,
		logPane,
		helpPane,
		processors.NewModalInputProcessor(rootPaneInputTree),
	)
	controller.rootPane = rootPane
	controller.helpPane = helpPane

	extra := map[input.Actionspec]func(){
		"undo":   controller.undo,
		"reload": func() { controller.reload(true) },
		"scroll-down": func() {
			if canvas := rootPane.PropertyPane(); canvas != nil {
				canvas.ScrollDown(5)
			}
		},
		"scroll-up": func() {
			if canvas := rootPane.PropertyPane(); canvas != nil {
				canvas.ScrollUp(5)
			}
		},
		"toggle-help": func() {
			helpPane.Content = rootPane.GetHelp()
			controller.showHelp = !controller.showHelp
		},
		"toggle-log": func() { controller.showLog = !controller.showLog },
		"quit":       controller.quit,
	}

	controller.editor = edit.New(rootPane, "", edit.Options{
		Width:      configData.Editor.Width,
		Height:     configData.Editor.Height,
		LabelWidth: configData.Editor.LabelWidth,
	})
	controller.editor.SetRegistry(registry)
	controller.editor.SetRenderer(panes.NewMenuRenderer(configData.Keys, extra, controller.history, cursorWrangler))
	controller.editor.SetTemplates(stylesheet.Templates)

	if err := controller.editor.BeginEdit(session.object, session.table, session.keyMap, controller.onChange); err != nil {
		return nil, fmt.Errorf("could not begin editing (%w)", err)
	}
	controller.status = fmt.Sprintf("editing '%s'", session.provider.Location())

	controller.screenEvents = renderer.GetEventPollable()
	controller.initializedScreen = renderer
	controller.syncer = renderer

	return controller, nil
}

// onChange applies a change made in the editor to the object and persists
// the settings.
// A failed persist leaves the change in place; it is retried with the next.
func (c *Controller) onChange(obj model.Object, attribute string, value any, table model.SettingsTable, key string) {
	if !applyToObject(obj, attribute, value) {
		c.log.Debug().Msgf("'%s' does not apply to %T", attribute, obj)
	}

	if err := c.session.provider.Save(table); err != nil {
		c.log.Error().Err(err).Str("key", key).Msg("could not persist settings")
		c.status = fmt.Sprintf("could not save '%s': %s", key, err.Error())
		return
	}
	c.status = fmt.Sprintf("%s = %v", attribute, value)
}

func (c *Controller) undo() {
	if !c.history.Undo() {
		c.status = "nothing to undo"
		return
	}
	c.status = "undone"
}

// reload re-reads the settings, unless unchanged and not forced, and rebuilds
// the menu from them.
// The reloaded settings are written into the session's table, which the
// editor keeps referencing; edits made before can no longer be undone.
func (c *Controller) reload(force bool) {
	if !force {
		changed, err := c.session.provider.Changed()
		if err != nil {
			c.log.Warn().Err(err).Msg("could not check settings for changes")
			return
		}
		if !changed {
			c.log.Trace().Msg("settings unchanged, not reloading")
			return
		}
	}

	loaded, err := c.session.provider.Load()
	if err != nil {
		c.log.Error().Err(err).Msg("could not reload settings")
		c.status = "could not reload: " + err.Error()
		return
	}
	for k := range c.session.table {
		delete(c.session.table, k)
	}
	for k, v := range loaded {
		c.session.table[k] = v
	}
	loadObject(c.session.object, c.session.table, c.session.keyMap)
	c.history.Clear()

	if _, err := c.editor.RebuildMenu(); err != nil {
		c.log.Error().Err(err).Msg("could not rebuild menu")
		return
	}
	c.status = "reloaded " + c.session.provider.Location()
	c.log.Info().Msgf("reloaded settings from '%s'", c.session.provider.Location())
}

func (c *Controller) quit() { c.exiting = true }

func (c *Controller) mode() string {
	switch {
	case c.showHelp:
		return "-- HELP --"
	case c.showLog:
		return "-- LOG --"
	}
	if canvas := c.rootPane.PropertyPane(); canvas != nil {
		if panel := canvas.Frame().Panel(); panel != nil && panel.IsInField() {
			return "-- INSERT --"
		}
	}
	return "-- NAVIGATE --"
}

// RequestReload asks the controller to reload the settings, if they changed.
// Safe to call from any goroutine.
func (c *Controller) RequestReload() {
	select {
	case c.controllerEvents <- controllerEvent{kind: controllerEventReload}:
	case <-c.done:
	}
}

// Stop asks the controller to exit.
// Safe to call from any goroutine.
func (c *Controller) Stop() {
	select {
	case c.controllerEvents <- controllerEvent{kind: controllerEventExit}:
	case <-c.done:
	}
}

func (c *Controller) handleMouseEvent(e *tcell.EventMouse) {
	canvas := c.rootPane.PropertyPane()
	if canvas == nil {
		return
	}
	panel := canvas.Frame().Panel()
	if panel == nil || panel.IsInField() {
		return
	}

	x, y := e.Position()
	info, ok := c.rootPane.GetPositionInfo(x, y).(ui.PropertyPanePositionInfo)
	if !ok {
		return
	}
	switch e.Buttons() {
	case tcell.Button1:
		if info.OnField {
			panel.SelectField(info.FieldIndex)
		}
	case tcell.WheelUp:
		canvas.ScrollUp(1)
	case tcell.WheelDown:
		canvas.ScrollDown(1)
	}
}

type controllerEventKind int

const (
	controllerEventExit controllerEventKind = iota
	controllerEventScreen
	controllerEventReload
)

type controllerEvent struct {
	kind   controllerEventKind
	screen tcell.Event
}

// Run runs the controller until the user exits.
func (c *Controller) Run() {
	log.Info().Msg("propedit TUI started")

	var wg sync.WaitGroup

	// Run the event polling loop, which forwards screen events and stops once
	// the screen is finalized.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			ev := c.screenEvents.PollEvent()
			if ev == nil {
				return
			}
			select {
			case c.controllerEvents <- controllerEvent{kind: controllerEventScreen, screen: ev}:
			case <-c.done:
				return
			}
		}
	}()

	c.rootPane.Draw()
	for ev := range c.controllerEvents {
		start := time.Now()

		switch ev.kind {
		case controllerEventScreen:
			switch e := ev.screen.(type) {
			case *tcell.EventKey:
				key := input.KeyFromTcellEvent(e)
				if !c.rootPane.ProcessInput(key) {
					c.log.Debug().Str("key", key.ToDebugString()).Msg("could not apply key input")
				}
			case *tcell.EventMouse:
				c.handleMouseEvent(e)
			case *tcell.EventResize:
				c.syncer.NeedsSync()
			}
		case controllerEventReload:
			c.reload(false)
		case controllerEventExit:
			c.exiting = true
		default:
			c.log.Error().Interface("event", ev.kind).Msgf("unhandled controller event")
		}

		if c.exiting {
			break
		}
		// render only once the queued events are processed
		if len(c.controllerEvents) == 0 {
			c.rootPane.Draw()
		}
		c.log.Trace().Dur("took", time.Since(start)).Msg("processed controller event")
	}

	close(c.done)
	c.initializedScreen.Fini()
	wg.Wait()
	log.Info().Msg("propedit TUI exited")
}
