package providers

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/propedit/internal/model"
	"github.com/ja-he/propedit/internal/storage"
)

// codec (un)marshals a settings document.
type codec struct {
	name      string
	marshal   func(any) ([]byte, error)
	unmarshal func([]byte, any) error
}

// FileProvider stores settings in a single file.
//
// Without a namespace, the whole document is the settings table. With one,
// the table is the document's entry of that name and saving leaves all other
// entries untouched.
type FileProvider struct {
	mtx sync.Mutex

	path      string
	namespace string
	codec     codec

	digest [sha256.Size]byte

	log zerolog.Logger
}

func newFileProvider(path, namespace string, c codec) *FileProvider {
	return &FileProvider{
		path:      path,
		namespace: namespace,
		codec:     c,
		log:       log.With().Str("source", "file-provider").Str("format", c.name).Str("file", path).Logger(),
	}
}

// Location returns the settings file's path.
func (p *FileProvider) Location() string { return p.path }

// Load reads the settings table from the file.
func (p *FileProvider) Load() (model.SettingsTable, error) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	content, err := p.read()
	if err != nil {
		return nil, err
	}
	document, err := p.decode(content)
	if err != nil {
		return nil, err
	}
	p.digest = sha256.Sum256(content)

	if p.namespace == "" {
		return model.SettingsTable(document), nil
	}
	entry, present := document[p.namespace]
	if !present || entry == nil {
		return model.SettingsTable{}, nil
	}
	table, ok := model.AsContainer(entry)
	if !ok {
		if cloned, err := model.CloneContainer(entry); err == nil {
			table = cloned
			ok = true
		}
	}
	if !ok {
		return nil, fmt.Errorf("entry '%s' in '%s' is no table but %T", p.namespace, p.path, entry)
	}
	p.log.Debug().Msgf("loaded %d settings from '%s'", len(table), p.namespace)
	return model.SettingsTable(table), nil
}

// Save writes the settings table to the file, replacing the file atomically.
func (p *FileProvider) Save(table model.SettingsTable) error {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	var document map[string]any
	if p.namespace == "" {
		document = map[string]any(table)
	} else {
		content, err := p.read()
		if err != nil {
			return err
		}
		document, err = p.decode(content)
		if err != nil {
			return err
		}
		document[p.namespace] = map[string]any(table)
	}

	content, err := p.codec.marshal(document)
	if err != nil {
		return fmt.Errorf("could not encode settings as %s (%w)", p.codec.name, err)
	}
	if err := p.writeAtomically(content); err != nil {
		return err
	}
	p.digest = sha256.Sum256(content)
	p.log.Debug().Msgf("saved %d settings", len(table))
	return nil
}

// Changed reports whether the file's content differs from what was last
// loaded or saved.
func (p *FileProvider) Changed() (bool, error) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	content, err := p.read()
	if err != nil {
		return false, err
	}
	return sha256.Sum256(content) != p.digest, nil
}

// Close does nothing; the file is only open while being read or written.
func (p *FileProvider) Close() error { return nil }

// read returns the file's content, which is empty for a missing file.
func (p *FileProvider) read() ([]byte, error) {
	content, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read settings file '%s' (%w)", p.path, err)
	}
	return content, nil
}

func (p *FileProvider) decode(content []byte) (map[string]any, error) {
	document := map[string]any{}
	if len(bytes.TrimSpace(content)) == 0 {
		return document, nil
	}
	if err := p.codec.unmarshal(content, &document); err != nil {
		return nil, fmt.Errorf("could not decode %s settings file '%s' (%w)", p.codec.name, p.path, err)
	}
	if document == nil {
		document = map[string]any{}
	}
	return document, nil
}

// chmod is os.Chmod, replaceable in tests.
var chmod = os.Chmod

// writeAtomically writes the content to a temporary file next to the settings
// file and renames it over the settings file, keeping its permissions.
func (p *FileProvider) writeAtomically(content []byte) error {
	dir := filepath.Dir(p.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(p.path)+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary file in '%s' (%w)", dir, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write '%s' (%w)", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close '%s' (%w)", tmp.Name(), err)
	}

	perm := fs.FileMode(0o644)
	if info, err := os.Stat(p.path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := chmod(tmp.Name(), perm); err != nil {
		p.log.Warn().Err(err).Msgf("could not set permissions %v on settings file, writing it anyway", perm)
	}

	if err := os.Rename(tmp.Name(), p.path); err != nil {
		return fmt.Errorf("could not replace '%s' (%w)", p.path, err)
	}
	return nil
}

var _ storage.SettingsProvider = &FileProvider{}
