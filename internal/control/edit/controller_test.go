package edit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ja-he/propedit/internal/binding"
	"github.com/ja-he/propedit/internal/control/edit"
	"github.com/ja-he/propedit/internal/menu"
	"github.com/ja-he/propedit/internal/model"
	"github.com/ja-he/propedit/internal/schema"
	"github.com/ja-he/propedit/internal/styling"
)

type dummyObject struct{ objectType string }

func (o *dummyObject) GetObjectType() string { return o.objectType }

type dummyFrame struct{ name string }

func (f *dummyFrame) GetFrameName() string { return f.name }

type dummyCanvas struct {
	dummyFrame
	content *dummyFrame
}

func (c *dummyCanvas) Content() edit.Frame { return c.content }

type dummyContainer struct {
	canvases []*dummyCanvas
	widths   []int
	heights  []int
}

func (c *dummyContainer) NewCanvas(name string, width, height int) edit.Canvas {
	canvas := &dummyCanvas{dummyFrame: dummyFrame{name: name}, content: &dummyFrame{name: name + "-options"}}
	c.canvases = append(c.canvases, canvas)
	c.widths = append(c.widths, width)
	c.heights = append(c.heights, height)
	return canvas
}

type dummyRenderer struct {
	renders []menu.Description
	frames  []edit.Frame
}

func (r *dummyRenderer) Render(into edit.Frame, d menu.Description, _ styling.WidgetTemplates) {
	r.frames = append(r.frames, into)
	r.renders = append(r.renders, d)
}

type change struct {
	obj       model.Object
	attribute string
	value     any
	table     model.SettingsTable
	key       string
}

func recordChanges(into *[]change) edit.ChangeCallback {
	return func(obj model.Object, attribute string, value any, table model.SettingsTable, key string) {
		*into = append(*into, change{obj, attribute, value, table, key})
	}
}

// sizeOnlyRegistry is a registry with a single 'text' type with a single
// bounded 'size' attribute without default.
func sizeOnlyRegistry(t *testing.T) *schema.Registry {
	r := schema.NewRegistry()
	require.NoError(t, r.Register("text", []schema.AttributeDescriptor{
		{Name: "size", Label: "Size", Kind: schema.Range, Min: 5, Max: 120},
	}))
	return r
}

func newEditor(t *testing.T) (*edit.Editor, *dummyContainer, *dummyRenderer) {
	container := &dummyContainer{}
	renderer := &dummyRenderer{}
	e := edit.New(container, "test", edit.Options{})
	e.SetRenderer(renderer)
	return e, container, renderer
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		e, container, _ := newEditor(t)
		require.Len(t, container.canvases, 1)
		assert.Equal(t, 400, container.widths[0])
		assert.Equal(t, 600, container.heights[0])
		assert.Equal(t, "test", e.Name())
		assert.Same(t, container.canvases[0], e.Canvas())
		assert.Same(t, container.canvases[0].content, e.OptionsFrame())
		assert.Equal(t, edit.StateIdle, e.State())
	})

	t.Run("options", func(t *testing.T) {
		container := &dummyContainer{}
		e := edit.New(container, "sized", edit.Options{Width: 300, Height: 200})
		assert.Equal(t, 300, container.widths[0])
		assert.Equal(t, 200, container.heights[0])
		assert.Equal(t, edit.Options{Width: 300, Height: 200, LabelWidth: menu.DefaultLabelWidth}, e.Options())
	})

	t.Run("generated name", func(t *testing.T) {
		a := edit.New(nil, "", edit.Options{})
		b := edit.New(nil, "", edit.Options{})
		assert.NotEmpty(t, a.Name())
		assert.NotEqual(t, a.Name(), b.Name())
	})

	t.Run("headless", func(t *testing.T) {
		e := edit.New(nil, "headless", edit.Options{})
		assert.Nil(t, e.Canvas())
		assert.Nil(t, e.OptionsFrame())
		require.NoError(t, e.BeginEdit(model.NewLabel("l"), model.SettingsTable{"text": "hi"}, model.KeyMap{"text": "text"}, nil))
		d, err := e.RebuildMenu()
		require.NoError(t, err)
		assert.NotEmpty(t, d.Fields)
	})
}

func TestBeginEditPreconditions(t *testing.T) {
	e, _, renderer := newEditor(t)

	var nilLabel *model.Label
	cases := map[string]struct {
		obj   model.Object
		table model.SettingsTable
		err   error
	}{
		"nil object":       {obj: nil, table: model.SettingsTable{}, err: edit.ErrNilObject},
		"typed nil object": {obj: nilLabel, table: model.SettingsTable{}, err: edit.ErrNilObject},
		"no object type":   {obj: &dummyObject{}, table: model.SettingsTable{}, err: edit.ErrNoObjectType},
		"nil table":        {obj: model.NewLabel("l"), table: nil, err: edit.ErrNilSettingsTable},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			err := e.BeginEdit(c.obj, c.table, model.KeyMap{}, nil)
			assert.ErrorIs(t, err, c.err)
			assert.Equal(t, edit.StateIdle, e.State())
		})
	}
	assert.Empty(t, renderer.renders)

	t.Run("failed begin keeps previous session", func(t *testing.T) {
		obj := model.NewLabel("kept")
		require.NoError(t, e.BeginEdit(obj, model.SettingsTable{}, model.KeyMap{}, nil))
		assert.Error(t, e.BeginEdit(nil, model.SettingsTable{}, nil, nil))
		assert.Same(t, obj, e.EditingObject())
	})
}

func TestRebuildMenuIdle(t *testing.T) {
	e, _, renderer := newEditor(t)
	_, err := e.RebuildMenu()
	assert.ErrorIs(t, err, edit.ErrNotEditing)
	assert.Empty(t, renderer.renders)
}

func TestRebuildMenuUnknownType(t *testing.T) {
	e, _, renderer := newEditor(t)
	require.NoError(t, e.BeginEdit(&dummyObject{objectType: "nothing-registered"}, model.SettingsTable{"a": 1}, model.KeyMap{"a": "a"}, nil))

	d, err := e.RebuildMenu()
	require.NoError(t, err)
	assert.True(t, d.Empty())
	assert.Empty(t, renderer.renders, "no container mutation for unknown types")
}

func TestExclusionThenAppearance(t *testing.T) {
	e, _, renderer := newEditor(t)
	e.SetRegistry(sizeOnlyRegistry(t))

	table := model.SettingsTable{}
	require.NoError(t, e.BeginEdit(&dummyObject{objectType: "text"}, table, model.KeyMap{"size": "text_size"}, nil))
	require.Len(t, renderer.renders, 1)
	assert.Empty(t, renderer.renders[0].Fields)

	table["text_size"] = 24
	d, err := e.RebuildMenu()
	require.NoError(t, err)
	require.Len(t, d.Fields, 1)
	assert.Equal(t, 24, d.Fields[0].Get())
	assert.Len(t, renderer.renders, 2)
	assert.Same(t, e.OptionsFrame(), renderer.frames[1])
}

func TestAnchorFallsBackToDefault(t *testing.T) {
	r := schema.NewRegistry()
	require.NoError(t, r.Register("anchored", []schema.AttributeDescriptor{
		{Name: "anchor", Kind: schema.AnchorDropdown, SubKey: "side", Default: map[string]any{"side": 1, "x": 0, "y": 0}},
	}))
	e := edit.New(nil, "anchor", edit.Options{})
	e.SetRegistry(r)
	require.NoError(t, e.BeginEdit(&dummyObject{objectType: "anchored"}, model.SettingsTable{}, model.KeyMap{"anchor": "anchor"}, nil))

	d, err := e.RebuildMenu()
	require.NoError(t, err)
	require.Len(t, d.Fields, 1)
	assert.Equal(t, 1, d.Fields[0].Get())
	assert.Equal(t, binding.Path{Key: "anchor", SubKey: "side"}, d.Fields[0].Path)
}

func TestRebuildMenuIdempotent(t *testing.T) {
	e, _, _ := newEditor(t)
	table := model.SettingsTable{"text": "hello", "size": 14, "shadow": false}
	keyMap := model.KeyMap{"text": "text", "size": "size", "shadow": "shadow", "anchor": "anchor", "anchorx": "anchor"}
	require.NoError(t, e.BeginEdit(model.NewLabel("l"), table, keyMap, nil))

	first, err := e.RebuildMenu()
	require.NoError(t, err)
	second, err := e.RebuildMenu()
	require.NoError(t, err)

	require.Equal(t, len(first.Fields), len(second.Fields))
	for i := range first.Fields {
		assert.Equal(t, first.Fields[i].Label, second.Fields[i].Label)
		assert.Equal(t, first.Fields[i].Get(), second.Fields[i].Get())
		assert.Equal(t, first.Fields[i].Path, second.Fields[i].Path)
	}
	assert.Equal(t, first.Layout, second.Layout)

	labels := make([]string, len(first.Fields))
	for i, f := range first.Fields {
		labels[i] = f.Name
	}
	assert.Equal(t, []string{"text", "size", "shadow", "anchor", "anchorx"}, labels, "schema order, unmapped attributes skipped")
}

func TestCallbackContract(t *testing.T) {
	e, _, _ := newEditor(t)
	obj := model.NewLabel("l")
	table := model.SettingsTable{"text_size": 10}
	var changes []change
	require.NoError(t, e.BeginEdit(obj, table, model.KeyMap{"size": "text_size", "anchorx": "anchor"}, recordChanges(&changes)))

	d, err := e.RebuildMenu()
	require.NoError(t, err)
	require.Len(t, d.Fields, 2)

	d.Fields[0].Set(42)
	assert.Equal(t, 42, table["text_size"])
	require.Len(t, changes, 1)
	assert.Same(t, obj, changes[0].obj)
	assert.Equal(t, "size", changes[0].attribute)
	assert.Equal(t, 42, changes[0].value)
	assert.Equal(t, "text_size", changes[0].key)
	changes[0].table["probe"] = 1
	assert.Equal(t, 1, table["probe"])

	d.Fields[1].Set(7)
	require.Len(t, changes, 2)
	assert.Equal(t, "anchorx", changes[1].attribute)
	assert.Equal(t, "anchor", changes[1].key)
	container, ok := table["anchor"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 7, container["x"])
}

func TestSessionReplacement(t *testing.T) {
	e, _, _ := newEditor(t)

	var oldChanges, newChanges []change
	oldTable := model.SettingsTable{"text": "old"}
	require.NoError(t, e.BeginEdit(model.NewLabel("old"), oldTable, model.KeyMap{"text": "text"}, recordChanges(&oldChanges)))
	oldMenu, err := e.RebuildMenu()
	require.NoError(t, err)
	require.Len(t, oldMenu.Fields, 1)

	newObj := model.NewLabel("new")
	newTable := model.SettingsTable{"text": "new"}
	newKeyMap := model.KeyMap{"text": "text"}
	require.NoError(t, e.BeginEdit(newObj, newTable, newKeyMap, recordChanges(&newChanges)))

	oldMenu.Fields[0].Set("written after replacement")
	assert.Empty(t, oldChanges, "old callback must not be invoked")
	assert.Empty(t, newChanges, "old fields do not notify the new session either")
	assert.Equal(t, "written after replacement", oldTable["text"])
	assert.Equal(t, "new", newTable["text"])

	assert.Same(t, newObj, e.EditingObject())
	table, keyMap := e.EditingTable()
	table["probe"] = true
	assert.Equal(t, true, newTable["probe"])
	assert.Equal(t, newKeyMap, keyMap)
	assert.NotNil(t, e.OnChange())

	newMenu, err := e.RebuildMenu()
	require.NoError(t, err)
	newMenu.Fields[0].Set("fresh")
	assert.Len(t, newChanges, 1)
}

func TestAccessorsIdle(t *testing.T) {
	e, _, _ := newEditor(t)
	assert.Nil(t, e.EditingObject())
	table, keyMap := e.EditingTable()
	assert.Nil(t, table)
	assert.Nil(t, keyMap)
	assert.Nil(t, e.OnChange())
	assert.True(t, e.Menu().Empty())
}

func TestMenuIsBuiltOnBeginEdit(t *testing.T) {
	e, _, renderer := newEditor(t)
	e.SetRegistry(sizeOnlyRegistry(t))

	table := model.SettingsTable{"size": 12}
	require.NoError(t, e.BeginEdit(&dummyObject{objectType: "text"}, table, model.KeyMap{"size": "size"}, nil))
	require.Len(t, renderer.renders, 1, "rendered once")
	require.Len(t, e.Menu().Fields, 1)
	assert.Same(t, renderer.renders[0].Fields[0], e.Menu().Fields[0])

	delete(table, "size")
	d, err := e.RebuildMenu()
	require.NoError(t, err)
	assert.Equal(t, d, e.Menu())
	assert.True(t, e.Menu().Empty())
}

func TestNoCallbackRegistered(t *testing.T) {
	e, _, _ := newEditor(t)
	table := model.SettingsTable{"text": "a"}
	require.NoError(t, e.BeginEdit(model.NewLabel("l"), table, model.KeyMap{"text": "text"}, nil))
	d, err := e.RebuildMenu()
	require.NoError(t, err)
	assert.NotPanics(t, func() { d.Fields[0].Set("b") })
	assert.Equal(t, "b", table["text"])
}
