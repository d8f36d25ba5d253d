package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ja-he/propedit/internal/util"
)

func TestRectContains(t *testing.T) {
	r := util.NewRect(2, 3, 4, 5)

	assert.True(t, r.Contains(2, 3))
	assert.True(t, r.Contains(5, 7))
	assert.False(t, r.Contains(6, 7), "right edge is exclusive")
	assert.False(t, r.Contains(5, 8), "bottom edge is exclusive")
	assert.False(t, r.Contains(1, 3))
}

func TestTruncateAt(t *testing.T) {
	t.Run("fits", func(t *testing.T) {
		assert.Equal(t, "Size", util.TruncateAt("Size", 4))
	})
	t.Run("ellipsis", func(t *testing.T) {
		assert.Equal(t, "Shadow ...", util.TruncateAt("Shadow X Offset", 10))
	})
	t.Run("narrow", func(t *testing.T) {
		assert.Equal(t, "Sh", util.TruncateAt("Shadow", 2))
	})
	t.Run("nothing", func(t *testing.T) {
		assert.Equal(t, "", util.TruncateAt("Shadow", 0))
	})
	t.Run("wide runes", func(t *testing.T) {
		assert.Equal(t, "日...", util.TruncateAt("日本語テキスト", 5))
	})
}

func TestPadCenter(t *testing.T) {
	assert.Equal(t, " info  ", util.PadCenter("info", 7))
	assert.Equal(t, "error", util.PadCenter("error", 3))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab  ", util.PadRight("ab", 4))
}
