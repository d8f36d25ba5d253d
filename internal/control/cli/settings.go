package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ja-he/propedit/internal/model"
	"github.com/ja-he/propedit/internal/schema"
	"github.com/ja-he/propedit/internal/storage"
	"github.com/ja-he/propedit/internal/storage/providers"
)

// SettingsFlags select the settings an object is edited from, shared by the
// commands working on a settings table.
type SettingsFlags struct {
	SettingsFile string   `short:"s" long:"settings" description:"Settings file (or database) to edit" value-name:"<file>" required:"true"`
	ObjectType   string   `short:"t" long:"type" description:"Type of the edited object" default:"label" value-name:"<type>"`
	Name         string   `short:"n" long:"name" description:"Name of the edited object; its settings are the file's entry of that name (default: the whole file)" value-name:"<name>"`
	KeyMappings  []string `short:"m" long:"map" description:"Store an attribute under a different key (an empty key excludes the attribute)" value-name:"<attribute>:<key>"`
	Format       string   `short:"f" long:"format" choice:"yaml" choice:"toml" choice:"sqlite" description:"Settings format (default: by file extension)"`
}

// settingsSession is what an object is edited from: where its settings are
// stored, the loaded settings, and how attributes map onto them.
type settingsSession struct {
	provider storage.SettingsProvider
	format   storage.Format
	object   model.Object
	table    model.SettingsTable
	keyMap   model.KeyMap
}

// open loads the settings the flags select, and the object edited with them.
func (f *SettingsFlags) open(ctx context.Context, registry *schema.Registry) (*settingsSession, error) {
	format, err := storage.ParseFormat(f.Format, f.SettingsFile)
	if err != nil {
		return nil, err
	}

	keyMap, err := applyKeyMappings(registry.DefaultKeyMap(f.ObjectType), f.KeyMappings)
	if err != nil {
		return nil, err
	}

	namespace := f.Name
	if format == storage.FormatSQLite && namespace == "" {
		namespace = f.ObjectType
	}
	provider, err := providers.New(ctx, f.SettingsFile, format, namespace)
	if err != nil {
		return nil, fmt.Errorf("could not open settings '%s' (%w)", f.SettingsFile, err)
	}
	table, err := provider.Load()
	if err != nil {
		provider.Close()
		return nil, fmt.Errorf("could not load settings '%s' (%w)", f.SettingsFile, err)
	}

	name := f.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(f.SettingsFile), filepath.Ext(f.SettingsFile))
	}
	object := newObject(f.ObjectType, name)
	loadObject(object, table, keyMap)

	return &settingsSession{
		provider: provider,
		format:   format,
		object:   object,
		table:    table,
		keyMap:   keyMap,
	}, nil
}

// applyKeyMappings overrides entries of the key map by 'attribute:key'
// mappings; an empty key removes the attribute's entry.
func applyKeyMappings(keyMap model.KeyMap, mappings []string) (model.KeyMap, error) {
	result := keyMap.Clone()
	for _, m := range mappings {
		attribute, key, found := strings.Cut(m, ":")
		attribute, key = strings.TrimSpace(attribute), strings.TrimSpace(key)
		if !found || attribute == "" {
			return nil, fmt.Errorf("malformed key mapping '%s' (expected '<attribute>:<key>')", m)
		}
		if key == "" {
			delete(result, attribute)
			continue
		}
		result[attribute] = key
	}
	return result, nil
}

// opaqueObject stands in for objects of types that have no live model; their
// settings can be edited all the same.
type opaqueObject struct {
	objectType string
}

func (o *opaqueObject) GetObjectType() string { return o.objectType }

func newObject(objectType, name string) model.Object {
	if objectType == model.LabelObjectType {
		return model.NewLabel(name)
	}
	return &opaqueObject{objectType: objectType}
}

// loadObject (re-)initializes the object from the settings.
func loadObject(object model.Object, table model.SettingsTable, keyMap model.KeyMap) {
	if l, ok := object.(*model.Label); ok {
		*l = *model.NewLabel(l.Name)
		l.Load(table, keyMap)
	}
}

// applyToObject applies a changed setting to the object.
func applyToObject(object model.Object, attribute string, value any) bool {
	if l, ok := object.(*model.Label); ok {
		return l.Apply(attribute, value)
	}
	return false
}
