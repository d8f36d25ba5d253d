package panes

import (
	"sort"

	"github.com/mattn/go-runewidth"

	"github.com/ja-he/propedit/internal/input"
	"github.com/ja-he/propedit/internal/styling"
	"github.com/ja-he/propedit/internal/ui"
	"github.com/ja-he/propedit/internal/util"
)

// A HelpPane is a pane that displays a help popup: a list of key mappings and
// their actions.
type HelpPane struct {
	ui.LeafPane

	Content input.Help
}

// Draw draws the help popup.
func (p *HelpPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Help)

	const border = 1
	const pad = 1
	keyWidth := 0
	for mapping := range p.Content {
		keyWidth = max(keyWidth, runewidth.StringWidth(mapping))
	}
	keyWidth = min(keyWidth, w/3)
	keyOffset := x + border
	descriptionOffset := keyOffset + keyWidth + pad

	for i, m := range sortedMappings(p.Content) {
		if border+i >= h-border {
			break
		}
		keys := util.TruncateAt(m.mapping, keyWidth)
		keysWidth := runewidth.StringWidth(keys)
		p.Renderer.DrawText(keyOffset+keyWidth-keysWidth, y+border+i, keysWidth, 1, p.Stylesheet.Help.DefaultEmphasized().Bolded(), keys)
		p.Renderer.DrawText(descriptionOffset, y+border+i, w-descriptionOffset+x-border, 1, p.Stylesheet.Help.Italicized(), m.action)
	}
}

type mappingAndAction struct {
	mapping string
	action  string
}

// sortedMappings returns the mappings sorted by action, then by mapping, so
// that keys for the same action are listed together.
func sortedMappings(help input.Help) []mappingAndAction {
	result := make([]mappingAndAction, 0, len(help))
	for mapping, action := range help {
		result = append(result, mappingAndAction{mapping: mapping, action: action})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].action != result[j].action {
			return result[i].action < result[j].action
		}
		return result[i].mapping < result[j].mapping
	})
	return result
}

// NewHelpPane constructs and returns a new HelpPane.
func NewHelpPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet *styling.Stylesheet,
	condition func() bool,
	inputProcessor input.ModalInputProcessor,
) *HelpPane {
	p := &HelpPane{
		LeafPane: ui.NewLeafPane(renderer, dimensions, stylesheet, condition),
	}
	p.InputProcessor = inputProcessor
	return p
}
