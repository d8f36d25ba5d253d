package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/propedit/internal/config"
	"github.com/ja-he/propedit/internal/potatolog"
	"github.com/ja-he/propedit/internal/schema"
	"github.com/ja-he/propedit/internal/storage"
	"github.com/ja-he/propedit/internal/styling"
	"github.com/ja-he/propedit/internal/tui"
)

// EditCommand holds the flags for the `edit` command.
type EditCommand struct {
	SettingsFlags

	Watch         bool   `short:"w" long:"watch" description:"Reload when the settings file is changed by another program"`
	Theme         string `long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in config.yaml)"`
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs dropped)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`
}

// Execute opens the TUI editing the selected object's settings.
// (This gets called by `go-flags` when `edit` is provided on the command
// line)
func (command *EditCommand) Execute(args []string) error {
	// set up stderr logger until TUI set up
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// create TUI logger
	var logWriter io.Writer
	if command.LogOutputFile != "" {
		var fileLogger io.Writer
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			stderrLogger.Fatal().Err(err).Str("file", command.LogOutputFile).Msg("could not open file for logging")
		}
		defer file.Close()
		if command.LogPretty {
			fileLogger = zerolog.ConsoleWriter{Out: file}
		} else {
			fileLogger = file
		}
		logWriter = zerolog.MultiLevelWriter(fileLogger, potatolog.GlobalMemoryLogReaderWriter)
	} else {
		logWriter = potatolog.GlobalMemoryLogReaderWriter
	}
	tuiLogger := zerolog.New(logWriter).With().Timestamp().Caller().Logger()

	// temporarily log to both (in case the TUI doesn't get set we want the info
	// on the stderr logger, otherwise the TUI logger is relevant)
	log.Logger = log.Output(zerolog.MultiLevelWriter(stderrLogger, tuiLogger))

	var theme config.ColorschemeType
	switch command.Theme {
	case "light":
		theme = config.Light
	default:
		theme = config.Dark
	}

	// read config from file
	configPath := filepath.Join(homeDir(), "config.yaml")
	yamlData, err := os.ReadFile(configPath)
	if err != nil {
		log.Warn().Err(err).Msgf("can't read config file '%s', using defaults", configPath)
		yamlData = make([]byte, 0)
	}
	configData, err := config.ParseConfigAugmentDefaults(theme, yamlData)
	if err != nil {
		return fmt.Errorf("can't parse config data (%w)", err)
	}
	stylesheet := styling.NewStylesheetFromConfig(configData.Stylesheet)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	session, err := command.open(ctx, schema.Default)
	if err != nil {
		return err
	}
	defer session.provider.Close()

	renderer, err := tui.NewTUIScreenHandler()
	if err != nil {
		return fmt.Errorf("could not initialize screen (%w)", err)
	}
	controller, err := NewController(session, configData, stylesheet, schema.Default, renderer)
	if err != nil {
		renderer.Fini()
		return err
	}

	if command.Watch {
		watcher, err := storage.NewWatcher(watchedFiles(session.provider.Location(), session.format), 0, controller.RequestReload)
		if err != nil {
			renderer.Fini()
			return fmt.Errorf("could not watch settings (%w)", err)
		}
		defer watcher.Close()
	}

	go func() {
		<-ctx.Done()
		controller.Stop()
	}()

	// now that the screen is initialized, we'll always want the TUI logger, so
	// we're making it the global logger
	log.Logger = tuiLogger

	controller.Run()
	return nil
}

// homeDir returns the directory the config file is read from,
// '${PROPEDIT_HOME}' or '${HOME}/.config/propedit'.
func homeDir() string {
	if home := os.Getenv("PROPEDIT_HOME"); home != "" {
		return strings.TrimRight(home, "/")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "propedit")
}

// watchedFiles returns the files to watch for changes to the given settings
// file; for SQLite databases these include the write-ahead log and journal.
func watchedFiles(settingsFile string, format storage.Format) []string {
	if format == storage.FormatSQLite {
		return []string{settingsFile, settingsFile + "-wal", settingsFile + "-journal"}
	}
	return []string{settingsFile}
}
