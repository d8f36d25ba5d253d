package input

// InputConfig is the key configuration as present in the 'keys' section of a
// config file.
type InputConfig struct {
	// Panel are the mappings active while navigating the field list.
	Panel map[Keyspec]Actionspec `yaml:"panel"`
	// TextField are the non-rune mappings active while typing into a text
	// field; all runes are inserted.
	TextField map[Keyspec]Actionspec `yaml:"text-field"`
}
