package schema

import (
	"math"

	"github.com/ja-he/propedit/internal/model"
)

// Default is the process-wide schema registry.
// It is populated at package initialization and must be treated as read-only
// afterwards; use Clone for a modifiable copy.
var Default = NewRegistry()

func init() {
	Default.MustRegister(model.LabelObjectType, labelSchema())
	if err := Default.SetDefaultKeyMap(model.LabelObjectType, labelKeyMap()); err != nil {
		panic(err.Error())
	}
}

// LabelFonts are the font families offered for labels.
var LabelFonts = []string{
	"Sans",
	"Serif",
	"Mono",
	"Friz Quadrata",
	"Arial Narrow",
	"Skurri",
	"Morpheus",
}

func labelSchema() []AttributeDescriptor {
	fonts := make([]Option, len(LabelFonts))
	for i, f := range LabelFonts {
		fonts[i] = Option{Label: f, Value: f}
	}
	outlines := []Option{
		{Label: "None", Value: model.OutlineNone},
		{Label: "Outline", Value: model.OutlineThin},
		{Label: "Thick Outline", Value: model.OutlineThick},
		{Label: "Monochrome", Value: model.OutlineMonochrome},
		{Label: "Outline + Mono", Value: model.OutlineThinMono},
		{Label: "Thick + Mono", Value: model.OutlineThickMono},
	}
	anchors := make([]Option, len(model.AnchorSides))
	for i, side := range model.AnchorSides {
		anchors[i] = Option{Label: side.String(), Value: int(side)}
	}

	return []AttributeDescriptor{
		{Name: "text", Label: "Text", Kind: TextEntry},
		{Name: "size", Label: "Size", Kind: Range, Min: 5, Max: 120, Step: 1},
		{Name: "font", Label: "Font", Kind: FontDropdown, Options: fonts},
		{Name: "color", Label: "Color", Kind: Color},
		{Name: "alpha", Label: "Alpha", Kind: Range, Default: 1.0, Min: 0, Max: 1, Step: 0.05, UseDecimals: true},
		{Name: "shadow", Label: "Shadow", Kind: Toggle, Default: false},
		{Name: "shadowcolor", Label: "Shadow Color", Kind: Color, Default: model.DefaultShadowColor},
		{Name: "shadowx", Label: "Shadow X Offset", Kind: Range, Default: 1, Min: -10, Max: 10, Step: 1},
		{Name: "shadowy", Label: "Shadow Y Offset", Kind: Range, Default: -1, Min: -10, Max: 10, Step: 1},
		{Name: "outline", Label: "Outline", Kind: OutlineDropdown, Default: model.OutlineNone, Options: outlines},
		{Name: "monochrome", Label: "Monochrome", Kind: Toggle, Default: false},
		{Name: "anchor", Label: "Anchor", Kind: AnchorDropdown, SubKey: "side", Default: anchorDefault(), Options: anchors},
		{Name: "anchorx", Label: "Anchor X Offset", Kind: Range, SubKey: "x", Default: anchorDefault(), Min: -20, Max: 20, Step: 1},
		{Name: "anchory", Label: "Anchor Y Offset", Kind: Range, SubKey: "y", Default: anchorDefault(), Min: -20, Max: 20, Step: 1},
		{Name: "rotation", Label: "Rotation", Kind: Range, Default: 0.0, Min: 0, Max: 2 * math.Pi, Step: 0.01, UseDecimals: true},
	}
}

// labelKeyMap maps every label attribute to the key of the same name, except
// for the anchor offsets, which live in the anchor's container.
func labelKeyMap() model.KeyMap {
	result := model.KeyMap{}
	for _, d := range labelSchema() {
		result[d.Name] = d.Name
	}
	result["anchorx"] = "anchor"
	result["anchory"] = "anchor"
	return result
}

func anchorDefault() map[string]any {
	return map[string]any{"side": int(model.AnchorTopLeft), "x": 0, "y": 0}
}
