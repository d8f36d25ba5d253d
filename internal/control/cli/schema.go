package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/ja-he/propedit/internal/schema"
)

// SchemaCommand holds the flags for the `schema` command.
type SchemaCommand struct {
	ObjectType string `short:"t" long:"type" description:"Only print the schema of this object type" value-name:"<type>"`
	Format     string `short:"f" long:"format" choice:"yaml" choice:"toml" default:"yaml" description:"Output format"`

	out      io.Writer
	registry *schema.Registry
}

type attributeDump struct {
	Name        string       `yaml:"name" toml:"name"`
	Label       string       `yaml:"label" toml:"label"`
	Kind        string       `yaml:"kind" toml:"kind"`
	Key         string       `yaml:"key,omitempty" toml:"key,omitempty"`
	SubKey      string       `yaml:"sub-key,omitempty" toml:"sub-key,omitempty"`
	Default     any          `yaml:"default,omitempty" toml:"default,omitempty"`
	Min         float64      `yaml:"min,omitempty" toml:"min,omitempty"`
	Max         float64      `yaml:"max,omitempty" toml:"max,omitempty"`
	Step        float64      `yaml:"step,omitempty" toml:"step,omitempty"`
	UseDecimals bool         `yaml:"use-decimals,omitempty" toml:"use-decimals,omitempty"`
	Options     []optionDump `yaml:"options,omitempty" toml:"options,omitempty"`
}

type optionDump struct {
	Label string `yaml:"label" toml:"label"`
	Value any    `yaml:"value" toml:"value"`
}

// Execute prints the registered schemas.
func (command *SchemaCommand) Execute(args []string) error {
	out := command.out
	if out == nil {
		out = os.Stdout
	}
	registry := command.registry
	if registry == nil {
		registry = schema.Default
	}

	types := registry.Types()
	if command.ObjectType != "" {
		if len(registry.SchemaFor(command.ObjectType)) == 0 {
			return fmt.Errorf("no schema registered for object type '%s'", command.ObjectType)
		}
		types = []string{command.ObjectType}
	}

	dump := map[string][]attributeDump{}
	for _, objectType := range types {
		keyMap := registry.DefaultKeyMap(objectType)
		for _, d := range registry.SchemaFor(objectType) {
			entry := attributeDump{
				Name:        d.Name,
				Label:       d.Label,
				Kind:        d.Kind.String(),
				Key:         keyMap[d.Name],
				SubKey:      d.SubKey,
				Default:     d.Default,
				Min:         d.Min,
				Max:         d.Max,
				Step:        d.Step,
				UseDecimals: d.UseDecimals,
			}
			for _, o := range d.Options {
				entry.Options = append(entry.Options, optionDump{Label: o.Label, Value: o.Value})
			}
			dump[objectType] = append(dump[objectType], entry)
		}
	}

	var encoded []byte
	var err error
	switch command.Format {
	case "toml":
		encoded, err = toml.Marshal(dump)
	default:
		encoded, err = yaml.Marshal(dump)
	}
	if err != nil {
		return fmt.Errorf("could not encode schemas (%w)", err)
	}
	_, err = out.Write(encoded)
	return err
}
