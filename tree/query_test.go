package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind_OnlyImmediateChildren(t *testing.T) {
	root := New("root")
	a := root.Push("a")
	a.Push("nested")
	first := root.Push("dup")
	root.Push("dup")

	assert.Nil(t, root.Find("nested"))
	assert.Same(t, first, root.Find("dup"))
}

func TestDepth_Law(t *testing.T) {
	root := New("root")
	deepest := root.PushVertical("a", "b", "c", "d")

	d, err := root.Depth()
	require.NoError(t, err)
	assert.Equal(t, 0, d)

	for cur := deepest; !cur.IsRoot(); {
		p, err := cur.Parent()
		require.NoError(t, err)

		cd, err := cur.Depth()
		require.NoError(t, err)
		pd, err := p.Depth()
		require.NoError(t, err)
		assert.Equal(t, pd+1, cd)

		cur = p
	}
}

func TestLineage(t *testing.T) {
	root := New("root")
	a := root.Push("a")
	c := a.PushVertical("b", "c")

	tests := []struct {
		name string
		node *Node[string]
		want []string
	}{
		{name: "root is excluded", node: root, want: []string{}},
		{name: "direct child", node: a, want: []string{"a"}},
		{name: "nearest first", node: c, want: []string{"c", "b", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.node.Lineage()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			depth, err := tt.node.Depth()
			require.NoError(t, err)
			assert.Len(t, got, depth)
		})
	}
}

func TestRoot(t *testing.T) {
	root := New("root")
	leaf := root.PushVertical("a", "b")

	got, err := leaf.Root()
	require.NoError(t, err)
	assert.Same(t, root, got)

	got, err = root.Root()
	require.NoError(t, err)
	assert.Same(t, root, got)
}
