package styling

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses a color in hexadecimal HTML notation ('#rrggbb' or
// '#rgb').
func ParseColor(hex string) (colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid color '%s' (%w)", hex, err)
	}
	return c, nil
}

// IsValidColor returns whether the given string is a color ParseColor accepts.
func IsValidColor(hex string) bool {
	_, err := ParseColor(hex)
	return err == nil
}

// ToTcellColor converts a color for drawing to a tcell screen.
func ToTcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// ContrastingColor returns black or white, whichever is better readable on
// the given background.
func ContrastingColor(bg colorful.Color) colorful.Color {
	_, _, l := bg.Hsl()
	if l > 0.5 {
		return colorful.Color{R: 0, G: 0, B: 0}
	}
	return colorful.Color{R: 1, G: 1, B: 1}
}

// lighten moves the lightness of the color towards white by the given
// percentage of the remaining distance.
func lighten(c colorful.Color, percentage int) colorful.Color {
	h, s, l := c.Hsl()
	scalar := float64(percentage) / 100.0
	return colorful.Hsl(h, s, l+(1.0-l)*scalar)
}

// darken moves the lightness of the color towards black by the given
// percentage of the remaining distance.
func darken(c colorful.Color, percentage int) colorful.Color {
	h, s, l := c.Hsl()
	scalar := float64(percentage) / 100.0
	return colorful.Hsl(h, s, l-l*scalar)
}

func mustParseColor(hex string) colorful.Color {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err.Error())
	}
	return c
}
