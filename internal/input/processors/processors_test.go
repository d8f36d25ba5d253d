package processors_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/propedit/internal/control/action"
	"github.com/ja-he/propedit/internal/input"
	"github.com/ja-he/propedit/internal/input/processors"
)

var (
	x = input.Key{Key: tcell.KeyRune, Ch: 'x'}
	y = input.Key{Key: tcell.KeyRune, Ch: 'y'}
	z = input.Key{Key: tcell.KeyRune, Ch: 'z'}
)

func TestModalInputProcessor(t *testing.T) {

	t.Run("CapturesInput", func(t *testing.T) {
		base := dummySIP{}
		m := processors.NewModalInputProcessor(&base)
		assert.False(t, m.CapturesInput())
		base.captures = true
		assert.True(t, m.CapturesInput())

		m.ApplyModalOverlay(&dummySIP{captures: false})
		assert.False(t, m.CapturesInput(), "overlay decides")
	})

	t.Run("overlays", func(t *testing.T) {
		a := dummySIP{inputs: map[input.Key]bool{x: true}}
		b := dummySIP{inputs: map[input.Key]bool{y: true}}
		c := dummySIP{inputs: map[input.Key]bool{z: true}}
		m := processors.NewModalInputProcessor(&a)

		processes := func() [3]bool {
			return [3]bool{m.ProcessInput(x), m.ProcessInput(y), m.ProcessInput(z)}
		}

		assert.Equal(t, [3]bool{true, false, false}, processes())
		assert.Equal(t, uint(0), m.ApplyModalOverlay(&b))
		assert.Equal(t, [3]bool{false, true, false}, processes())
		assert.Equal(t, uint(1), m.ApplyModalOverlay(&c))
		assert.Equal(t, [3]bool{false, false, true}, processes())
		assert.Equal(t, 2, m.Depth())

		require.NoError(t, m.PopModalOverlay())
		assert.Equal(t, [3]bool{false, true, false}, processes())
		require.NoError(t, m.PopModalOverlay())
		assert.Equal(t, [3]bool{true, false, false}, processes())
		assert.Error(t, m.PopModalOverlay())

		m.ApplyModalOverlay(&b)
		m.ApplyModalOverlay(&c)
		m.ApplyModalOverlay(&b)
		m.PopModalOverlays(1000)
		assert.Equal(t, 3, m.Depth(), "out of range index is a no-op")
		m.PopModalOverlays(2)
		assert.Equal(t, [3]bool{false, false, true}, processes())
		m.PopModalOverlays(0)
		assert.Equal(t, [3]bool{true, false, false}, processes())
		assert.Equal(t, 0, m.Depth())
	})

	t.Run("GetHelp", func(t *testing.T) {
		a := dummySIP{help: input.Help{"j": "next field"}}
		m := processors.NewModalInputProcessor(&a)
		assert.Equal(t, input.Help{"j": "next field"}, m.GetHelp())

		m.ApplyModalOverlay(&dummySIP{help: input.Help{"<cr>": "commit"}})
		assert.Equal(t, input.Help{"<cr>": "commit"}, m.GetHelp())
	})

}

func TestTextInputProcessor(t *testing.T) {

	t.Run("runes", func(t *testing.T) {
		var typed []rune
		p, err := processors.NewTextInputProcessor(
			map[input.Keyspec]action.Action{"<c-y>": &dummyAction{action: func() { t.Error("<c-y> must not be triggered") }}},
			func(r rune) { typed = append(typed, r) },
		)
		require.NoError(t, err)
		for _, k := range []input.Key{x, y, z} {
			assert.True(t, p.ProcessInput(k))
		}
		assert.Equal(t, []rune("xyz"), typed)
	})

	t.Run("specials", func(t *testing.T) {
		committed := false
		p, err := processors.NewTextInputProcessor(
			map[input.Keyspec]action.Action{"<cr>": &dummyAction{action: func() { committed = true }}},
			func(rune) {},
		)
		require.NoError(t, err)
		assert.True(t, p.ProcessInput(input.Key{Key: tcell.KeyEnter}))
		assert.True(t, committed)
		assert.False(t, p.ProcessInput(input.Key{Key: tcell.KeyCtrlY}))
		assert.True(t, p.CapturesInput())
	})

	t.Run("invalid keyspecs", func(t *testing.T) {
		_, err := processors.NewTextInputProcessor(map[input.Keyspec]action.Action{"ab": &dummyAction{}}, func(rune) {})
		assert.Error(t, err)
		_, err = processors.NewTextInputProcessor(map[input.Keyspec]action.Action{"<c-": &dummyAction{}}, func(rune) {})
		assert.Error(t, err)
	})

	t.Run("GetHelp", func(t *testing.T) {
		p, err := processors.NewTextInputProcessor(
			map[input.Keyspec]action.Action{
				"<esc>": &dummyAction{explanation: "abort"},
				"<cr>":  &dummyAction{explanation: "commit"},
			},
			func(rune) {},
		)
		require.NoError(t, err)
		assert.Equal(t, input.Help{"<esc>": "abort", "<cr>": "commit"}, p.GetHelp())
	})

}

type dummySIP struct {
	captures bool
	inputs   map[input.Key]bool
	help     input.Help
}

func (d *dummySIP) CapturesInput() bool           { return d.captures }
func (d *dummySIP) ProcessInput(k input.Key) bool { return d.inputs[k] }
func (d *dummySIP) GetHelp() input.Help           { return d.help }

type dummyAction struct {
	action      func()
	explanation string
}

func (d *dummyAction) Do()             { d.action() }
func (d *dummyAction) Undo()           {}
func (d *dummyAction) Undoable() bool  { return false }
func (d *dummyAction) Explain() string { return d.explanation }
