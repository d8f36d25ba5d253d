// Package providers implements settings storage over YAML and TOML files and
// SQLite databases.
package providers

import (
	"context"
	"fmt"

	"github.com/ja-he/propedit/internal/storage"
)

// New returns the provider for the given format.
func New(ctx context.Context, path string, format storage.Format, namespace string) (storage.SettingsProvider, error) {
	switch format {
	case storage.FormatTOML:
		return NewTOMLProvider(path, namespace), nil
	case storage.FormatSQLite:
		if namespace == "" {
			namespace = "default"
		}
		return NewSQLiteProvider(ctx, path, namespace)
	case storage.FormatYAML, "":
		return NewYAMLProvider(path, namespace), nil
	}
	return nil, fmt.Errorf("cannot create provider for '%s': %w", format, storage.ErrUnknownFormat)
}
