package adapt_test

import (
	"reflect"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treekit/treekit"
	"github.com/treekit/treekit/adapt"
)

func TestAnyBuiltins(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  any
	}{
		{name: "map", value: map[string]any{"a": 1}, want: (*adapt.MapNode)(nil)},
		{name: "slice", value: []any{1, 2}, want: (*adapt.MapNode)(nil)},
		{name: "json bytes", value: []byte(`{"a": 1}`), want: (*adapt.JSONNode)(nil)},
		{name: "filesystem", value: fstest.MapFS{}, want: (*adapt.FSNode)(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := adapt.Any(tt.value)
			require.NoError(t, err)
			assert.IsType(t, tt.want, node)
		})
	}
}

func TestAnyPassthrough(t *testing.T) {
	data := []int{1, 2, 3}
	original := adapt.NewHeap(&data).Root()

	node, err := adapt.Any(original)
	require.NoError(t, err)
	assert.Same(t, any(original), any(node))
}

func TestAnyUnsupported(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{name: "nil", value: nil},
		{name: "int", value: 42},
		{name: "struct", value: struct{ X int }{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := adapt.Any(tt.value)
			assert.ErrorIs(t, err, adapt.ErrUnsupported)
		})
	}
}

func TestAnyInvalidJSON(t *testing.T) {
	_, err := adapt.Any([]byte("{broken"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, adapt.ErrUnsupported)
}

func TestRegistryCustomType(t *testing.T) {
	type dept struct {
		name string
		subs []any
	}

	r := adapt.NewRegistry()
	tree := adapt.NewFunc(func(d *dept) []*dept {
		var kids []*dept
		for _, s := range d.subs {
			kids = append(kids, s.(*dept))
		}
		return kids
	})
	adapt.RegisterFor(r, func(d *dept) (treekit.Node, error) {
		return tree.Node(d), nil
	})

	node, err := r.Convert(&dept{name: "eng"})
	require.NoError(t, err)
	assert.IsType(t, (*adapt.FuncNode[*dept])(nil), node)

	// Unregistered types still fail.
	_, err = r.Convert(42)
	assert.ErrorIs(t, err, adapt.ErrUnsupported)
}

func TestRegistryInterfaceMatch(t *testing.T) {
	// fstest.MapFS matches through the fs.FS interface registration; the
	// resolved conversion is memoized per concrete type.
	r := adapt.DefaultRegistry

	first, err := r.Convert(fstest.MapFS{})
	require.NoError(t, err)
	second, err := r.Convert(fstest.MapFS{})
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf(first), reflect.TypeOf(second))
}
