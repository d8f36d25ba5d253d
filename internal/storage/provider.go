// Package storage persists the settings tables edited in a property editor
// and watches them for changes made by other programs.
package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ja-he/propedit/internal/model"
)

// SettingsProvider is the abstracted settings storage, which can be
// implemented over various storage systems.
//
// A provider stores a single settings table (optionally as one namespace
// among others in the same file or database, see the concrete providers).
type SettingsProvider interface {
	// Load reads the stored settings table.
	// Nothing stored yet is not an error; the table is empty then.
	Load() (model.SettingsTable, error)

	// Save replaces the stored settings table with the given one.
	Save(model.SettingsTable) error

	// Changed reports whether the stored settings were modified (by someone
	// else) since they were last loaded or saved by this provider.
	Changed() (bool, error)

	// Location returns the path of the backing file.
	Location() string

	Close() error
}

// Format is a storage format for settings.
type Format string

// The supported formats.
const (
	FormatYAML   Format = "yaml"
	FormatTOML   Format = "toml"
	FormatSQLite Format = "sqlite"
)

// ErrUnknownFormat is returned for format identifiers that name no supported
// format.
var ErrUnknownFormat = errors.New("unknown settings format")

// ParseFormat parses a format identifier (as given on the command line).
// An empty identifier is deduced from the path's extension.
func ParseFormat(identifier string, path string) (Format, error) {
	if identifier == "" {
		return FormatFromPath(path), nil
	}
	switch Format(strings.ToLower(identifier)) {
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatTOML:
		return FormatTOML, nil
	case FormatSQLite, "db":
		return FormatSQLite, nil
	}
	return "", fmt.Errorf("'%s': %w", identifier, ErrUnknownFormat)
}

// FormatFromPath deduces the format of a settings file from its extension,
// defaulting to YAML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatYAML
	}
}
