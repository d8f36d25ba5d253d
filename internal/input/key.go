// Package input turns terminal key events into actions: keys are parsed from
// configured keyspecs, arranged in input trees, and consumed by (possibly
// modal) input processors.
package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Key is a single key press.
// For runes, Key is tcell.KeyRune and Ch holds the rune.
type Key struct {
	Mod tcell.ModMask
	Key tcell.Key
	Ch  rune
}

// ToDebugString returns a representation of the key for log messages.
func (k Key) ToDebugString() string {
	return fmt.Sprintf("(%s (%d),'%s'(%d))", tcell.KeyNames[k.Key], int(k.Key), string(k.Ch), int(k.Ch))
}

// KeyFromTcellEvent converts a tcell key event to a Key.
// Modifiers are dropped, as keyspecs cannot express them apart from the
// dedicated control keys.
func KeyFromTcellEvent(e *tcell.EventKey) Key {
	if e.Key() == tcell.KeyRune {
		return Key{Key: tcell.KeyRune, Ch: e.Rune()}
	}
	return Key{Key: e.Key()}
}

// Help maps keyspecs to the explanations of the actions they trigger.
type Help = map[string]string
