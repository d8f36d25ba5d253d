package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Keyspec is a key sequence as written in configuration, e.g. "<c-w>j" for
// CTRL+W followed by J. Special keys are named in angle brackets.
type Keyspec string

// Actionspec is the name of an action as written in configuration.
type Actionspec string

// specialKeys names the keys that are written in angle brackets.
var specialKeys = map[string]Key{
	"space":   {Key: tcell.KeyRune, Ch: ' '},
	"cr":      {Key: tcell.KeyEnter},
	"esc":     {Key: tcell.KeyESC},
	"del":     {Key: tcell.KeyDelete},
	"bs":      {Key: tcell.KeyBackspace2},
	"tab":     {Key: tcell.KeyTab},
	"s-tab":   {Key: tcell.KeyBacktab},
	"left":    {Key: tcell.KeyLeft},
	"right":   {Key: tcell.KeyRight},
	"up":      {Key: tcell.KeyUp},
	"down":    {Key: tcell.KeyDown},
	"home":    {Key: tcell.KeyHome},
	"end":     {Key: tcell.KeyEnd},
	"pgup":    {Key: tcell.KeyPgUp},
	"pgdn":    {Key: tcell.KeyPgDn},
	"c-space": {Key: tcell.KeyCtrlSpace},
	"c-bs":    {Key: tcell.KeyBackspace},
}

var specialKeyNames = map[Key]string{}

func init() {
	for name, key := range specialKeys {
		specialKeyNames[key] = name
	}
	// some control keys are indistinguishable from named keys in a terminal
	// (e.g. <c-i> and <tab>); the named key wins when converting back.
	for c := 'a'; c <= 'z'; c++ {
		name := fmt.Sprintf("c-%c", c)
		key := Key{Key: tcell.KeyCtrlA + tcell.Key(c-'a')}
		specialKeys[name] = key
		if _, ok := specialKeyNames[key]; !ok {
			specialKeyNames[key] = name
		}
	}
}

// ConfigKeyspecToKeys converts a keyspec (e.g. "<space>qw" meaning SPACE, then
// Q, then W) to the sequence of keys it describes.
func ConfigKeyspecToKeys(spec Keyspec) ([]Key, error) {
	result := make([]Key, 0, len(spec))

	var special []rune
	inSpecial := false
	for pos, r := range string(spec) {
		switch {
		case r == '<':
			if inSpecial {
				return nil, fmt.Errorf("illegal second opening '<' before previous is closed (pos %d)", pos)
			}
			inSpecial = true
			special = special[:0]

		case r == '>':
			if !inSpecial {
				return nil, fmt.Errorf("illegal closing '>' while none open (pos %d)", pos)
			}
			inSpecial = false
			key, err := KeyIdentifierToKey(string(special))
			if err != nil {
				return nil, fmt.Errorf("error mapping identifier '<%s>' to key (%s)", string(special), err.Error())
			}
			result = append(result, key)

		case inSpecial:
			if !unicode.IsLetter(r) && r != '-' {
				return nil, fmt.Errorf("illegal character '%c' in special key name (pos %d)", r, pos)
			}
			special = append(special, r)

		default:
			result = append(result, Key{Key: tcell.KeyRune, Ch: r})
		}
	}
	if inSpecial {
		return nil, fmt.Errorf("unclosed special key name '<%s'", string(special))
	}

	return result, nil
}

// KeyIdentifierToKey converts the name of a special key (without the angle
// brackets) to the key.
func KeyIdentifierToKey(identifier string) (Key, error) {
	key, ok := specialKeys[strings.ToLower(identifier)]
	if !ok {
		return Key{}, fmt.Errorf("no mapping present for identifier '%s'", identifier)
	}
	return key, nil
}

// ToConfigIdentifierString converts the given key to its keyspec.
// Keys that cannot be written as keyspecs are given as their debug string.
func ToConfigIdentifierString(k Key) string {
	if name, ok := specialKeyNames[Key{Key: k.Key, Ch: k.Ch}]; ok {
		return "<" + name + ">"
	}
	if k.Key == tcell.KeyRune {
		return string(k.Ch)
	}
	return k.ToDebugString()
}
