package binding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/propedit/internal/binding"
	"github.com/ja-he/propedit/internal/model"
	"github.com/ja-he/propedit/internal/schema"
)

type notification struct {
	attribute string
	value     any
	table     model.SettingsTable
	key       string
}

type recordingNotifier struct {
	calls []notification
}

func (n *recordingNotifier) Notify(attribute string, value any, table model.SettingsTable, key string) {
	n.calls = append(n.calls, notification{attribute, value, table, key})
}

func TestResolveFlat(t *testing.T) {
	size := schema.AttributeDescriptor{Name: "size", Kind: schema.Range, Min: 5, Max: 120}
	keyMap := model.KeyMap{"size": "text_size"}

	t.Run("unmapped", func(t *testing.T) {
		r := binding.Resolve(size, model.SettingsTable{"text_size": 24}, model.KeyMap{})
		assert.Equal(t, binding.Unmapped, r.State)
		assert.Nil(t, r.Value)
	})

	t.Run("no value no default is excluded", func(t *testing.T) {
		r := binding.Resolve(size, model.SettingsTable{}, keyMap)
		assert.Equal(t, binding.Excluded, r.State)
		assert.Equal(t, binding.Path{Key: "text_size"}, r.Path)
	})

	t.Run("stored value", func(t *testing.T) {
		r := binding.Resolve(size, model.SettingsTable{"text_size": 24}, keyMap)
		assert.Equal(t, binding.Present, r.State)
		assert.Equal(t, 24, r.Value)
	})

	t.Run("default", func(t *testing.T) {
		withDefault := size
		withDefault.Default = 12
		r := binding.Resolve(withDefault, model.SettingsTable{}, keyMap)
		assert.Equal(t, binding.Present, r.State)
		assert.Equal(t, 12, r.Value)
	})

	t.Run("stored value wins over default", func(t *testing.T) {
		withDefault := size
		withDefault.Default = 12
		r := binding.Resolve(withDefault, model.SettingsTable{"text_size": 30}, keyMap)
		assert.Equal(t, 30, r.Value)
	})

	t.Run("explicit nil falls back to default", func(t *testing.T) {
		withDefault := size
		withDefault.Default = 12
		r := binding.Resolve(withDefault, model.SettingsTable{"text_size": nil}, keyMap)
		assert.Equal(t, 12, r.Value)
	})

	t.Run("zero values are present", func(t *testing.T) {
		toggle := schema.AttributeDescriptor{Name: "shadow", Kind: schema.Toggle}
		r := binding.Resolve(toggle, model.SettingsTable{"shadow": false}, model.KeyMap{"shadow": "shadow"})
		assert.Equal(t, binding.Present, r.State)
		assert.Equal(t, false, r.Value)

		r = binding.Resolve(size, model.SettingsTable{"text_size": 0}, keyMap)
		assert.Equal(t, binding.Present, r.State)
		assert.Equal(t, 0, r.Value)

		text := schema.AttributeDescriptor{Name: "text", Kind: schema.TextEntry}
		r = binding.Resolve(text, model.SettingsTable{"text": ""}, model.KeyMap{"text": "text"})
		assert.Equal(t, binding.Present, r.State)
	})
}

func TestResolveSubKey(t *testing.T) {
	anchor := schema.AttributeDescriptor{
		Name:    "anchor",
		Kind:    schema.AnchorDropdown,
		SubKey:  "side",
		Default: map[string]any{"side": 1, "x": 0, "y": 0},
	}
	keyMap := model.KeyMap{"anchor": "anchor"}

	t.Run("default container", func(t *testing.T) {
		r := binding.Resolve(anchor, model.SettingsTable{}, keyMap)
		require.Equal(t, binding.Present, r.State)
		assert.Equal(t, 1, r.Value)
		assert.Equal(t, binding.Path{Key: "anchor", SubKey: "side"}, r.Path)
		assert.Equal(t, "anchor.side", r.Path.String())
	})

	t.Run("stored container", func(t *testing.T) {
		r := binding.Resolve(anchor, model.SettingsTable{"anchor": map[string]any{"side": 4}}, keyMap)
		assert.Equal(t, 4, r.Value)
	})

	t.Run("yaml v2 style container", func(t *testing.T) {
		r := binding.Resolve(anchor, model.SettingsTable{"anchor": map[any]any{"side": 7}}, keyMap)
		assert.Equal(t, 7, r.Value)
	})

	t.Run("stored container lacks sub-key", func(t *testing.T) {
		r := binding.Resolve(anchor, model.SettingsTable{"anchor": map[string]any{"x": 3}}, keyMap)
		assert.Equal(t, binding.Excluded, r.State)
	})

	t.Run("stored value is not a container", func(t *testing.T) {
		r := binding.Resolve(anchor, model.SettingsTable{"anchor": 3}, keyMap)
		assert.Equal(t, binding.Excluded, r.State)
	})

	t.Run("no container and no default", func(t *testing.T) {
		noDefault := anchor
		noDefault.Default = nil
		r := binding.Resolve(noDefault, model.SettingsTable{}, keyMap)
		assert.Equal(t, binding.Excluded, r.State)
	})
}

func TestFieldSetFlat(t *testing.T) {
	d := schema.AttributeDescriptor{Name: "size", Label: "Size", Kind: schema.Range, Min: 5, Max: 120, Step: 1}
	table := model.SettingsTable{"text_size": 24}
	n := &recordingNotifier{}

	f := binding.Bind(d, "text_size", 24, table, n)
	assert.Equal(t, 24, f.Get())
	assert.Equal(t, "Size", f.Label)
	assert.Equal(t, binding.Path{Key: "text_size"}, f.Path)

	f.Set(30)
	assert.Equal(t, 30, table["text_size"])
	assert.Equal(t, 24, f.Get(), "Get returns the bind-time snapshot")

	require.Len(t, n.calls, 1)
	assert.Equal(t, "size", n.calls[0].attribute)
	assert.Equal(t, 30, n.calls[0].value)
	assert.Equal(t, "text_size", n.calls[0].key)
	n.calls[0].table["probe"] = true
	assert.Equal(t, true, table["probe"], "callback receives the table itself, not a copy")
}

func TestFieldSetNoBoundsValidation(t *testing.T) {
	d := schema.AttributeDescriptor{Name: "size", Kind: schema.Range, Min: 5, Max: 120}
	table := model.SettingsTable{}
	f := binding.Bind(d, "size", 10, table, nil)
	f.Set(500)
	assert.Equal(t, 500, table["size"])
}

func TestFieldSetSubKey(t *testing.T) {
	defaultAnchor := map[string]any{"side": 1, "x": 0, "y": 0}
	d := schema.AttributeDescriptor{Name: "anchorx", Kind: schema.Range, SubKey: "x", Default: defaultAnchor}

	t.Run("existing container", func(t *testing.T) {
		container := map[string]any{"side": 2, "x": 1, "y": 1}
		table := model.SettingsTable{"anchor": container}
		n := &recordingNotifier{}
		f := binding.Bind(d, "anchor", 1, table, n)

		f.Set(5)
		assert.Equal(t, 5, container["x"])
		assert.Equal(t, 2, container["side"])
		require.Len(t, n.calls, 1)
		assert.Equal(t, "anchor", n.calls[0].key)
		assert.Equal(t, "anchorx", n.calls[0].attribute)
	})

	t.Run("container from default", func(t *testing.T) {
		table := model.SettingsTable{}
		f := binding.Bind(d, "anchor", 0, table, nil)

		f.Set(-3)
		container, ok := table["anchor"].(map[string]any)
		require.True(t, ok)
		assert.EqualValues(t, -3, container["x"])
		assert.EqualValues(t, 1, container["side"])
		assert.EqualValues(t, 0, container["y"])
		assert.EqualValues(t, 0, defaultAnchor["x"], "static default must not be modified")
	})

	t.Run("yaml v2 style container is converted", func(t *testing.T) {
		table := model.SettingsTable{"anchor": map[any]any{"side": 6, "x": 2, "y": 2}}
		f := binding.Bind(d, "anchor", 2, table, nil)

		f.Set(4)
		container, ok := table["anchor"].(map[string]any)
		require.True(t, ok)
		assert.EqualValues(t, 4, container["x"])
		assert.EqualValues(t, 6, container["side"])
	})
}

func TestClamp(t *testing.T) {
	f := binding.Bind(schema.AttributeDescriptor{Name: "alpha", Min: 0, Max: 1, Step: 0.25}, "alpha", 1.0, model.SettingsTable{}, nil)
	assert.InDelta(t, 0.5, f.Clamp(0.6), 1e-9)
	assert.InDelta(t, 1.0, f.Clamp(3), 1e-9)
	assert.InDelta(t, 0.0, f.Clamp(-1), 1e-9)

	unbounded := binding.Bind(schema.AttributeDescriptor{Name: "n"}, "n", 1, model.SettingsTable{}, nil)
	assert.Equal(t, 42.0, unbounded.Clamp(42))

	t.Run("snapped values carry no float error", func(t *testing.T) {
		fine := binding.Bind(schema.AttributeDescriptor{Name: "alpha", Min: 0, Max: 1, Step: 0.05}, "alpha", 1.0, model.SettingsTable{}, nil)
		assert.Equal(t, 0.95, fine.Clamp(0.95))
		assert.Equal(t, 0.35, fine.Clamp(0.35))
		assert.Equal(t, 0.35, fine.Clamp(0.3+0.05))

		offset := binding.Bind(schema.AttributeDescriptor{Name: "o", Min: -0.5, Max: 0.5, Step: 0.1}, "o", 0.0, model.SettingsTable{}, nil)
		assert.Equal(t, 0.3, offset.Clamp(0.31))
		assert.Equal(t, -0.2, offset.Clamp(-0.2))
	})
}
