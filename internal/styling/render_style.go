package styling

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/propedit/internal/config"
)

// DrawStyling is style information used for rendering text: foreground and
// background color as well as modifiers such as bold.
// It can be converted to whatever styling a renderer needs, e.g. a
// tcell.Style via AsTcell.
type DrawStyling interface {
	AsTcell() tcell.Style

	DefaultDimmed() DrawStyling
	DefaultEmphasized() DrawStyling
	LightenedFG(percentage int) DrawStyling
	LightenedBG(percentage int) DrawStyling
	DarkenedFG(percentage int) DrawStyling
	DarkenedBG(percentage int) DrawStyling
	Inverted() DrawStyling

	Italicized() DrawStyling
	Bolded() DrawStyling
	Underlined() DrawStyling

	ToString() string
}

// FallbackStyling is a DrawStyling holding renderer-independent colors.
type FallbackStyling struct {
	fg colorful.Color
	bg colorful.Color

	bold, italic, underlined bool
}

// AsTcell returns this styling as a tcell.Style.
func (s *FallbackStyling) AsTcell() tcell.Style {
	return tcell.StyleDefault.
		Foreground(ToTcellColor(s.fg)).
		Background(ToTcellColor(s.bg)).
		Bold(s.bold).
		Italic(s.italic).
		Underline(s.underlined)
}

// DefaultDimmed returns a copy with both colors lightened by 50%.
func (s *FallbackStyling) DefaultDimmed() DrawStyling {
	return s.with(func(r *FallbackStyling) {
		r.fg = lighten(r.fg, 50)
		r.bg = lighten(r.bg, 50)
	})
}

// DefaultEmphasized returns a copy with both colors darkened by 20%.
func (s *FallbackStyling) DefaultEmphasized() DrawStyling {
	return s.with(func(r *FallbackStyling) {
		r.fg = darken(r.fg, 20)
		r.bg = darken(r.bg, 20)
	})
}

// LightenedFG returns a copy with the foreground lightened by percentage.
func (s *FallbackStyling) LightenedFG(percentage int) DrawStyling {
	return s.with(func(r *FallbackStyling) { r.fg = lighten(r.fg, percentage) })
}

// LightenedBG returns a copy with the background lightened by percentage.
func (s *FallbackStyling) LightenedBG(percentage int) DrawStyling {
	return s.with(func(r *FallbackStyling) { r.bg = lighten(r.bg, percentage) })
}

// DarkenedFG returns a copy with the foreground darkened by percentage.
func (s *FallbackStyling) DarkenedFG(percentage int) DrawStyling {
	return s.with(func(r *FallbackStyling) { r.fg = darken(r.fg, percentage) })
}

// DarkenedBG returns a copy with the background darkened by percentage.
func (s *FallbackStyling) DarkenedBG(percentage int) DrawStyling {
	return s.with(func(r *FallbackStyling) { r.bg = darken(r.bg, percentage) })
}

// Inverted returns a copy with fore- and background swapped.
func (s *FallbackStyling) Inverted() DrawStyling {
	return s.with(func(r *FallbackStyling) { r.fg, r.bg = r.bg, r.fg })
}

// Italicized returns an italic copy.
func (s *FallbackStyling) Italicized() DrawStyling {
	return s.with(func(r *FallbackStyling) { r.italic = true })
}

// Bolded returns a bold copy.
func (s *FallbackStyling) Bolded() DrawStyling {
	return s.with(func(r *FallbackStyling) { r.bold = true })
}

// Underlined returns an underlined copy.
func (s *FallbackStyling) Underlined() DrawStyling {
	return s.with(func(r *FallbackStyling) { r.underlined = true })
}

// ToString returns a representation of this styling for log messages.
func (s *FallbackStyling) ToString() string {
	return fmt.Sprintf("[fg:'%s' bg:'%s' (b:%t i:%t u:%t)]", s.fg.Hex(), s.bg.Hex(), s.bold, s.italic, s.underlined)
}

func (s *FallbackStyling) with(modify func(*FallbackStyling)) *FallbackStyling {
	result := *s
	modify(&result)
	return &result
}

// StyleFromHex constructs a styling from two colors in hexadecimal HTML
// notation, e.g. '#ff0000' or '#fff'.
// It panics for invalid colors; use it for colors known at compile time.
func StyleFromHex(fg, bg string) *FallbackStyling {
	return StyleFromColors(mustParseColor(fg), mustParseColor(bg))
}

// StyleFromColors constructs a styling from the given colors.
func StyleFromColors(fg, bg colorful.Color) *FallbackStyling {
	return &FallbackStyling{fg: fg, bg: bg}
}

// StyleFromConfig constructs a styling from a config styling.
// Invalid colors are logged and replaced by the corresponding color of the
// fallback.
func StyleFromConfig(c config.Styling, fallback *FallbackStyling) *FallbackStyling {
	result := *fallback
	if fg, err := ParseColor(c.Fg); err == nil {
		result.fg = fg
	} else {
		log.Warn().Str("source", "styling").Err(err).Msg("keeping fallback foreground")
	}
	if bg, err := ParseColor(c.Bg); err == nil {
		result.bg = bg
	} else {
		log.Warn().Str("source", "styling").Err(err).Msg("keeping fallback background")
	}
	if c.Style != nil {
		result.bold = c.Style.Bold
		result.italic = c.Style.Italic
		result.underlined = c.Style.Underlined
	}
	return &result
}
