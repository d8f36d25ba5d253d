package editors

import (
	"fmt"
	"strconv"

	"github.com/ja-he/propedit/internal/control/action"
	"github.com/ja-he/propedit/internal/control/edit"
	"github.com/ja-he/propedit/internal/input"
	"github.com/ja-he/propedit/internal/input/processors"
	"github.com/ja-he/propedit/internal/schema"
	"github.com/ja-he/propedit/internal/styling"
)

// TextField edits a field as free text.
// Color fields are text fields that only accept valid colors.
type TextField struct {
	fieldBase

	content   string
	cursorPos int
	invalid   bool
}

// GetType asserts that this is a text field.
func (e *TextField) GetType() string { return "text" }

// GetContent returns the current (edited, uncommitted) contents.
func (e *TextField) GetContent() string { return e.content }

// GetCursorPos returns the cursor position in runes.
func (e *TextField) GetCursorPos() int { return e.cursorPos }

// GetInvalid returns whether the last commit was rejected.
func (e *TextField) GetInvalid() bool { return e.invalid }

// Display returns the last written value.
func (e *TextField) Display() string { return display(e.value) }

// AddRune inserts a printable rune at the cursor.
func (e *TextField) AddRune(r rune) {
	if !strconv.IsPrint(r) {
		return
	}
	runes := []rune(e.content)
	runes = append(runes[:e.cursorPos], append([]rune{r}, runes[e.cursorPos:]...)...)
	e.content = string(runes)
	e.cursorPos++
}

// BackspaceRune deletes the rune before the cursor.
func (e *TextField) BackspaceRune() {
	if e.cursorPos == 0 {
		return
	}
	runes := []rune(e.content)
	e.content = string(append(runes[:e.cursorPos-1], runes[e.cursorPos:]...))
	e.cursorPos--
}

// DeleteRune deletes the rune at the cursor.
func (e *TextField) DeleteRune() {
	runes := []rune(e.content)
	if e.cursorPos < len(runes) {
		e.content = string(append(runes[:e.cursorPos], runes[e.cursorPos+1:]...))
	}
}

// Clear deletes all contents.
func (e *TextField) Clear() {
	e.content = ""
	e.cursorPos = 0
}

// MoveCursorLeft moves the cursor one rune to the left.
func (e *TextField) MoveCursorLeft() {
	if e.cursorPos > 0 {
		e.cursorPos--
	}
}

// MoveCursorRight moves the cursor one rune to the right, at most past the
// last rune.
func (e *TextField) MoveCursorRight() {
	if e.cursorPos < len([]rune(e.content)) {
		e.cursorPos++
	}
}

// MoveCursorToBeginning moves the cursor before the first rune.
func (e *TextField) MoveCursorToBeginning() { e.cursorPos = 0 }

// MoveCursorPastEnd moves the cursor past the last rune.
func (e *TextField) MoveCursorPastEnd() { e.cursorPos = len([]rune(e.content)) }

// Write commits the contents, unless they are unchanged or (for color
// fields) not a valid color.
func (e *TextField) Write() {
	e.write()
}

// write is Write, returning whether the contents were acceptable.
func (e *TextField) write() bool {
	if e.field.Kind == schema.Color && !styling.IsValidColor(e.content) {
		e.log.Warn().Msgf("not writing invalid color '%s'", e.content)
		e.invalid = true
		return false
	}
	e.invalid = false
	if e.content == display(e.value) {
		return true
	}
	e.commit(e.content)
	return true
}

// Reset discards uncommitted edits.
func (e *TextField) Reset() {
	e.content = display(e.value)
	e.invalid = false
	e.MoveCursorPastEnd()
}

// CreateInputProcessor creates the processor used while typing into this
// field: runes are inserted, other keys are mapped by the config.
// 'commit' writes and leaves the field, unless the contents are rejected;
// 'abort' discards edits and leaves the field.
func (e *TextField) CreateInputProcessor(cfg input.InputConfig) (input.SimpleInputProcessor, error) {
	actionspecToFunc := map[input.Actionspec]func(){
		"commit": func() {
			if e.write() {
				e.Quit()
			}
		},
		"abort":     func() { e.Reset(); e.Quit() },
		"backspace": e.BackspaceRune,
		"delete":    e.DeleteRune,
		"clear":     e.Clear,
		"left":      e.MoveCursorLeft,
		"right":     e.MoveCursorRight,
		"home":      e.MoveCursorToBeginning,
		"end":       e.MoveCursorPastEnd,
	}

	mappings := map[input.Keyspec]action.Action{}
	for keyspec, actionspec := range cfg.TextField {
		f, ok := actionspecToFunc[actionspec]
		if !ok {
			return nil, fmt.Errorf("unknown text field action '%s' for '%s'", actionspec, keyspec)
		}
		explanation := string(actionspec)
		mappings[keyspec] = action.NewSimple(func() string { return explanation }, f)
	}
	return processors.NewTextInputProcessor(mappings, e.AddRune)
}

var _ edit.FieldEditor = &TextField{}
