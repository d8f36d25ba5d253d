package panes

import (
	"sort"

	"github.com/mattn/go-runewidth"

	"github.com/ja-he/propedit/internal/potatolog"
	"github.com/ja-he/propedit/internal/styling"
	"github.com/ja-he/propedit/internal/ui"
	"github.com/ja-he/propedit/internal/util"
)

// LogPane shows the log, with the most recent log entries at the top.
type LogPane struct {
	ui.LeafPane

	logReader potatolog.LogReader

	titleString func() string
}

// Draw draws the log over top of all previously drawn contents, if it is
// currently visible.
func (p *LogPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dimensions()
	base := p.Stylesheet.Normal
	titleStyle := base.DefaultEmphasized().Bolded()
	detailStyle := base.DefaultDimmed()

	p.Renderer.DrawBox(x, y, w, h, base)
	title := p.titleString()
	p.Renderer.DrawBox(x, y, w, 1, titleStyle)
	p.Renderer.DrawText(x+(w/2-runewidth.StringWidth(title)/2), y, w, 1, titleStyle, title)

	const levelLen = len(" error ")
	const indent = levelLen + 1

	row := 2
	entries := p.logReader.Get()
	for i := len(entries) - 1; i >= 0 && row < h; i-- {
		entry := entries[i]
		level := potatolog.String(entry, "level")
		p.Renderer.DrawText(x, y+row, levelLen, 1, p.levelStyle(level), util.PadCenter(level, levelLen))

		col := x + indent
		for _, field := range []string{"message", "source", "caller", "time"} {
			value := potatolog.String(entry, field)
			if value == "" {
				continue
			}
			style := detailStyle
			if field == "message" {
				style = base
			}
			p.Renderer.DrawText(col, y+row, x+w-col, 1, style, value)
			col += runewidth.StringWidth(value) + 1
		}
		row++

		keys := make([]string, 0, len(entry))
		for k := range entry {
			switch k {
			case "level", "message", "source", "caller", "time":
			default:
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			if row >= h {
				break
			}
			p.Renderer.DrawText(x+indent, y+row, w-indent, 1, detailStyle, k)
			p.Renderer.DrawText(x+indent+runewidth.StringWidth(k)+2, y+row, w-indent-runewidth.StringWidth(k)-2, 1, base, potatolog.String(entry, k))
			row++
		}
	}
}

func (p *LogPane) levelStyle(level string) styling.DrawStyling {
	switch level {
	case "error", "fatal", "panic":
		return p.Stylesheet.LogEntryTypeError
	case "warn":
		return p.Stylesheet.LogEntryTypeWarn
	case "info":
		return p.Stylesheet.LogEntryTypeInfo
	case "debug":
		return p.Stylesheet.LogEntryTypeDebug
	case "trace":
		return p.Stylesheet.LogEntryTypeTrace
	}
	return p.Stylesheet.Normal
}

// NewLogPane constructs and returns a new LogPane.
func NewLogPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet *styling.Stylesheet,
	condition func() bool,
	titleString func() string,
	logReader potatolog.LogReader,
) *LogPane {
	return &LogPane{
		LeafPane:    ui.NewLeafPane(renderer, dimensions, stylesheet, condition),
		titleString: titleString,
		logReader:   logReader,
	}
}
