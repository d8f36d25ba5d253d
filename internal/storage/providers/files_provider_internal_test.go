package providers

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/propedit/internal/model"
)

func TestSaveWithFailingChmod(t *testing.T) {
	original := chmod
	t.Cleanup(func() { chmod = original })
	chmod = func(string, fs.FileMode) error { return errors.New("operation not permitted") }

	path := filepath.Join(t.TempDir(), "settings.yaml")
	p := NewYAMLProvider(path, "")
	logged := &bytes.Buffer{}
	p.log = zerolog.New(logged)

	require.NoError(t, p.Save(model.SettingsTable{"text": "Hello"}), "the settings are still written")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Hello")

	assert.Contains(t, logged.String(), `"level":"warn"`)
	assert.Contains(t, logged.String(), "operation not permitted")
	assert.Contains(t, logged.String(), "could not set permissions")
}
