package model

import (
	"math"
)

// LabelObjectType is the type discriminator of a Label.
const LabelObjectType = "label"

// AnchorSide is the side (or corner) of its parent a label is anchored to.
type AnchorSide int

const (
	_ AnchorSide = iota
	AnchorTopLeft
	AnchorLeft
	AnchorBottomLeft
	AnchorBottom
	AnchorBottomRight
	AnchorRight
	AnchorTopRight
	AnchorTop
	AnchorCenter
)

// AnchorSides lists all anchor sides in their canonical order.
var AnchorSides = []AnchorSide{
	AnchorTopLeft, AnchorLeft, AnchorBottomLeft, AnchorBottom, AnchorBottomRight,
	AnchorRight, AnchorTopRight, AnchorTop, AnchorCenter,
}

// String returns the name of the anchor side.
func (s AnchorSide) String() string {
	switch s {
	case AnchorTopLeft:
		return "top-left"
	case AnchorLeft:
		return "left"
	case AnchorBottomLeft:
		return "bottom-left"
	case AnchorBottom:
		return "bottom"
	case AnchorBottomRight:
		return "bottom-right"
	case AnchorRight:
		return "right"
	case AnchorTopRight:
		return "top-right"
	case AnchorTop:
		return "top"
	case AnchorCenter:
		return "center"
	}
	return "[UNKNOWN]"
}

// Anchor positions a label relative to its parent.
type Anchor struct {
	Side AnchorSide
	X, Y float64
}

// Outline styles a label's text can be drawn with.
const (
	OutlineNone       = "NONE"
	OutlineThin       = "OUTLINE"
	OutlineThick      = "THICKOUTLINE"
	OutlineMonochrome = "MONOCHROME"
	OutlineThinMono   = "OUTLINE, MONOCHROME"
	OutlineThickMono  = "THICKOUTLINE, MONOCHROME"
)

// Defaults for a fresh label.
const (
	DefaultLabelFont   = "Sans"
	DefaultLabelColor  = "#ffffff"
	DefaultLabelSize   = 12
	DefaultShadowColor = "#000000"
)

// Label is a styled text label, the live object behind a "label" settings
// table.
type Label struct {
	Name string

	Text        string
	Size        float64
	Font        string
	Color       string
	Alpha       float64
	Shadow      bool
	ShadowColor string
	ShadowX     float64
	ShadowY     float64
	Outline     string
	Monochrome  bool
	Anchor      Anchor
	Rotation    float64
}

// NewLabel returns a label with neutral defaults.
func NewLabel(name string) *Label {
	return &Label{
		Name:        name,
		Size:        DefaultLabelSize,
		Font:        DefaultLabelFont,
		Color:       DefaultLabelColor,
		Alpha:       1,
		ShadowColor: DefaultShadowColor,
		ShadowX:     1,
		ShadowY:     -1,
		Outline:     OutlineNone,
		Anchor:      Anchor{Side: AnchorTopLeft},
	}
}

// GetObjectType returns LabelObjectType.
func (l *Label) GetObjectType() string { return LabelObjectType }

// Apply applies the new value of an attribute (by its schema name) to the
// label, so that it can be re-rendered.
// Returns whether the attribute is known to labels and the value could be
// interpreted.
func (l *Label) Apply(attribute string, value any) bool {
	switch attribute {
	case "text":
		l.Text = AsString(value)
		return true
	case "font":
		l.Font = AsString(value)
		return true
	case "color":
		l.Color = AsString(value)
		return true
	case "shadowcolor":
		l.ShadowColor = AsString(value)
		return true
	case "outline":
		l.Outline = AsString(value)
		return true
	case "shadow":
		b, ok := AsBool(value)
		if ok {
			l.Shadow = b
		}
		return ok
	case "monochrome":
		b, ok := AsBool(value)
		if ok {
			l.Monochrome = b
		}
		return ok
	case "anchor":
		if f, ok := AsFloat(value); ok {
			l.Anchor.Side = AnchorSide(int(f))
			return true
		}
		if c, ok := AsContainer(value); ok {
			l.applyAnchorContainer(c)
			return true
		}
		return false
	}

	f, ok := AsFloat(value)
	if !ok {
		return false
	}
	switch attribute {
	case "size":
		l.Size = f
	case "alpha":
		l.Alpha = f
	case "shadowx":
		l.ShadowX = f
	case "shadowy":
		l.ShadowY = f
	case "anchorx":
		l.Anchor.X = f
	case "anchory":
		l.Anchor.Y = f
	case "rotation":
		l.Rotation = math.Mod(f, 2*math.Pi)
	default:
		return false
	}
	return true
}

func (l *Label) applyAnchorContainer(c map[string]any) {
	if side, ok := AsFloat(c["side"]); ok {
		l.Anchor.Side = AnchorSide(int(side))
	}
	if x, ok := AsFloat(c["x"]); ok {
		l.Anchor.X = x
	}
	if y, ok := AsFloat(c["y"]); ok {
		l.Anchor.Y = y
	}
}

// Load applies every attribute that has a stored value in the given table
// (located via the given key map) to the label.
// The anchor attributes share one container value ({side, x, y}).
func (l *Label) Load(table SettingsTable, keyMap KeyMap) {
	for attribute, key := range keyMap {
		v, ok := table[key]
		if !ok || v == nil {
			continue
		}
		switch attribute {
		case "anchorx":
			if x, ok := LookupSub(v, "x"); ok {
				l.Apply(attribute, x)
			}
		case "anchory":
			if y, ok := LookupSub(v, "y"); ok {
				l.Apply(attribute, y)
			}
		case "anchor":
			if c, ok := AsContainer(v); ok {
				l.applyAnchorContainer(c)
			}
		default:
			l.Apply(attribute, v)
		}
	}
}
