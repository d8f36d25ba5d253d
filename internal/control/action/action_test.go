package action_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ja-he/propedit/internal/control/action"
)

func TestSimple(t *testing.T) {

	t.Run("Do/Undo", func(t *testing.T) {
		calls := 0
		s := action.NewSimple(func() string { return "counts" }, func() { calls++ })
		s.Do()
		assert.Equal(t, 1, calls)
		s.Undo()
		assert.Equal(t, 1, calls, "undo must not do anything")
		assert.False(t, s.Undoable())
	})

	t.Run("Explain", func(t *testing.T) {
		e := "does nothing"
		s := action.NewSimple(func() string { return e }, func() {})
		assert.Equal(t, "does nothing", s.Explain())
		e = "does nothing, very well"
		assert.Equal(t, "does nothing, very well", s.Explain(), "explanation is evaluated lazily")
	})

}

func TestHistory(t *testing.T) {
	value := 0
	set := func(to int) action.Action {
		from := value
		return action.NewReversible("set value", func() { value = to }, func() { value = from })
	}

	t.Run("undo in reverse order", func(t *testing.T) {
		value = 0
		h := action.NewHistory(0)
		h.Do(set(1))
		h.Do(set(2))
		assert.Equal(t, 2, value)
		assert.Equal(t, 2, h.Len())

		assert.True(t, h.Undo())
		assert.Equal(t, 1, value)
		assert.True(t, h.Undo())
		assert.Equal(t, 0, value)
		assert.False(t, h.Undo())
	})

	t.Run("simple actions are not recorded", func(t *testing.T) {
		h := action.NewHistory(0)
		done := false
		h.Do(action.NewSimple(func() string { return "" }, func() { done = true }))
		assert.True(t, done)
		assert.Equal(t, 0, h.Len())
	})

	t.Run("limit", func(t *testing.T) {
		value = 0
		h := action.NewHistory(2)
		h.Do(set(1))
		h.Do(set(2))
		h.Do(set(3))
		assert.Equal(t, 2, h.Len())
		h.Undo()
		h.Undo()
		assert.Equal(t, 1, value, "oldest action dropped")
		h.Clear()
		assert.Equal(t, 0, h.Len())
	})
}
