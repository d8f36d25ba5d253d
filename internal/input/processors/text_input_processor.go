package processors

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/propedit/internal/control/action"
	"github.com/ja-he/propedit/internal/input"
)

// TextInputProcessor is a SimpleInputProcessor for typing text.
// Runes are handed to its rune callback (which would, e.g., insert them into
// a buffer); other keys can be mapped to actions, such as committing the
// text on <cr>.
type TextInputProcessor struct {
	mappings     map[input.Key]action.Action
	runeCallback func(r rune)
}

// NewTextInputProcessor returns a new TextInputProcessor.
// Every keyspec must describe exactly one key.
func NewTextInputProcessor(
	mappings map[input.Keyspec]action.Action,
	runeCallback func(r rune),
) (*TextInputProcessor, error) {
	keyMappings := make(map[input.Key]action.Action, len(mappings))
	for keyspec, a := range mappings {
		keys, err := input.ConfigKeyspecToKeys(keyspec)
		if err != nil {
			return nil, fmt.Errorf("could not convert '%s' to keys (%s)", keyspec, err.Error())
		}
		if len(keys) != 1 {
			return nil, fmt.Errorf("keyspec '%s' for text processor has not exactly one key (but %d)", keyspec, len(keys))
		}
		keyMappings[keys[0]] = a
	}
	return &TextInputProcessor{
		mappings:     keyMappings,
		runeCallback: runeCallback,
	}, nil
}

// ProcessInput hands runes to the rune callback and performs the mapped
// action for other keys.
func (p *TextInputProcessor) ProcessInput(key input.Key) bool {
	if key.Key == tcell.KeyRune {
		p.runeCallback(key.Ch)
		return true
	}
	a, ok := p.mappings[key]
	if !ok {
		return false
	}
	a.Do()
	return true
}

// CapturesInput is always true; while typing, no other processor gets input.
func (p *TextInputProcessor) CapturesInput() bool { return true }

// GetHelp returns the help for the non-rune mappings.
func (p *TextInputProcessor) GetHelp() input.Help {
	result := input.Help{}
	for k, a := range p.mappings {
		result[input.ToConfigIdentifierString(k)] = a.Explain()
	}
	return result
}
