// Package config provides the configuration as read from a config file.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ja-he/propedit/internal/input"
)

// Config is the configuration data as present in a config file at
// '${PROPEDIT_HOME}/config.yaml'.
type Config struct {
	Stylesheet Stylesheet        `yaml:"stylesheet"`
	Editor     Editor            `yaml:"editor"`
	Keys       input.InputConfig `yaml:"keys"`
}

// Editor holds the editor dimensions, in pixels.
// Zero values mean "keep the default".
type Editor struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	LabelWidth int `yaml:"label-width"`
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Normal      Styling `yaml:"normal"`
	Editor      Styling `yaml:"editor"`
	EditorLabel Styling `yaml:"editor-label"`
	TextEntry   Styling `yaml:"text-entry"`
	Dropdown    Styling `yaml:"dropdown"`
	Toggle      Styling `yaml:"toggle"`
	Slider      Styling `yaml:"slider"`
	Button      Styling `yaml:"button"`
	Status      Styling `yaml:"status"`
	Help        Styling `yaml:"help"`
	Preview     Styling `yaml:"preview"`

	LogEntryTypeError Styling `yaml:"log-entry-type-error"`
	LogEntryTypeWarn  Styling `yaml:"log-entry-type-warn"`
	LogEntryTypeInfo  Styling `yaml:"log-entry-type-info"`
	LogEntryTypeDebug Styling `yaml:"log-entry-type-debug"`
	LogEntryTypeTrace Styling `yaml:"log-entry-type-trace"`
}

// A Styling is a styling as defined in a config file.
// It must contain fore- and background colors and can optionally specify font
// style (bold, italic, underlined).
type Styling struct {
	Fg    string     `yaml:"fg"`
	Bg    string     `yaml:"bg"`
	Style *FontStyle `yaml:"style"`
}

// A FontStyle can be any combination of bold, italic, and underlined.
type FontStyle struct {
	Bold       bool `yaml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty"`
	Underlined bool `yaml:"underlined,omitempty"`
}

// ParseConfigAugmentDefaults parses the YAML-formatted configuration and uses
// it to augment the default configuration for the given theme.
func ParseConfigAugmentDefaults(theme ColorschemeType, yamlData []byte) (Config, error) {
	defaultConfig := Default(theme)

	parsed := Config{}
	if err := yaml.Unmarshal(yamlData, &parsed); err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%w)", err)
	}

	return defaultConfig.augmentWith(parsed), nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)

	if augment.Editor.Width > 0 {
		result.Editor.Width = augment.Editor.Width
	}
	if augment.Editor.Height > 0 {
		result.Editor.Height = augment.Editor.Height
	}
	if augment.Editor.LabelWidth > 0 {
		result.Editor.LabelWidth = augment.Editor.LabelWidth
	}

	result.Keys.Panel = augmentKeys(base.Keys.Panel, augment.Keys.Panel)
	result.Keys.TextField = augmentKeys(base.Keys.TextField, augment.Keys.TextField)

	return result
}

// augmentKeys overrides the base's mappings for every action the augment maps.
// An action mapped in the augment loses all its default keyspecs.
func augmentKeys(base, augment map[input.Keyspec]input.Actionspec) map[input.Keyspec]input.Actionspec {
	if len(augment) == 0 {
		return base
	}
	remapped := make(map[input.Actionspec]bool)
	for _, a := range augment {
		remapped[a] = true
	}
	result := make(map[input.Keyspec]input.Actionspec, len(base)+len(augment))
	for k, a := range base {
		if !remapped[a] {
			result[k] = a
		}
	}
	for k, a := range augment {
		result[k] = a
	}
	return result
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	result.Normal.overwriteIfDefined(augment.Normal)
	result.Editor.overwriteIfDefined(augment.Editor)
	result.EditorLabel.overwriteIfDefined(augment.EditorLabel)
	result.TextEntry.overwriteIfDefined(augment.TextEntry)
	result.Dropdown.overwriteIfDefined(augment.Dropdown)
	result.Toggle.overwriteIfDefined(augment.Toggle)
	result.Slider.overwriteIfDefined(augment.Slider)
	result.Button.overwriteIfDefined(augment.Button)
	result.Status.overwriteIfDefined(augment.Status)
	result.Help.overwriteIfDefined(augment.Help)
	result.Preview.overwriteIfDefined(augment.Preview)
	result.LogEntryTypeError.overwriteIfDefined(augment.LogEntryTypeError)
	result.LogEntryTypeWarn.overwriteIfDefined(augment.LogEntryTypeWarn)
	result.LogEntryTypeInfo.overwriteIfDefined(augment.LogEntryTypeInfo)
	result.LogEntryTypeDebug.overwriteIfDefined(augment.LogEntryTypeDebug)
	result.LogEntryTypeTrace.overwriteIfDefined(augment.LogEntryTypeTrace)

	return result
}

func (s *Styling) overwriteIfDefined(augment Styling) {
	if augment.Fg != "" && augment.Bg != "" {
		s.Fg = augment.Fg
		s.Bg = augment.Bg
	}
	if augment.Style != nil {
		style := *augment.Style
		s.Style = &style
	}
}

// A ColorschemeType can either be light or dark.
type ColorschemeType = int

const (
	_ ColorschemeType = iota
	Dark
	Light
)
