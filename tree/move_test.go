package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// starks builds the family used across the move tests.
func starks(t *testing.T) (root, ned, lyanna, jon *Node[string]) {
	t.Helper()

	root = New("Richard Stark")
	ned = root.Push("Ned Stark")
	_, err := root.PushChildren("Brandon Stark", "Benjen Stark", "Lyanna Stark")
	require.NoError(t, err)
	_, err = ned.PushChildren("Robb Stark", "Jon Snow", "Sansa Stark", "Arya Stark", "Bran Stark", "Rickon Stark")
	require.NoError(t, err)

	lyanna = root.Find("Lyanna Stark")
	require.NotNil(t, lyanna)
	jon = ned.Find("Jon Snow")
	require.NotNil(t, jon)
	return root, ned, lyanna, jon
}

func count[T comparable](nodes []*Node[T], target *Node[T]) int {
	n := 0
	for _, c := range nodes {
		if c == target {
			n++
		}
	}
	return n
}

func TestMoveTo_Reparents(t *testing.T) {
	root, ned, lyanna, jon := starks(t)

	require.NoError(t, jon.MoveTo(lyanna))

	p, err := jon.Parent()
	require.NoError(t, err)
	assert.Equal(t, lyanna.Value(), p.Value())
	assert.Equal(t, 0, count(ned.Children(), jon))
	assert.Equal(t, 1, count(lyanna.Children(), jon))
	assert.Equal(t, 5, ned.ChildCount())
	assert.Equal(t, 4, root.ChildCount())
	require.NoError(t, root.Validate())
}

func TestMoveTo_Scenario(t *testing.T) {
	root, ned, lyanna, jon := starks(t)
	require.Equal(t, 4, root.ChildCount())
	require.Equal(t, 6, ned.ChildCount())

	require.NoError(t, jon.MoveTo(lyanna))
	jon.SetValue("Jon Targaryen")

	assert.Equal(t, 5, ned.ChildCount())
	assert.Nil(t, ned.Find("Jon Snow"))
	require.Equal(t, 1, lyanna.ChildCount())
	assert.Equal(t, "Jon Targaryen", lyanna.Children()[0].Value())
	assert.Equal(t, 4, root.ChildCount())

	lineage, err := jon.Lineage()
	require.NoError(t, err)
	assert.Equal(t, []string{"Jon Targaryen", "Lyanna Stark"}, lineage)
}

func TestMoveTo_Root(t *testing.T) {
	root := New("root")
	stray := New("stray")

	require.NoError(t, stray.MoveTo(root))

	assert.False(t, stray.IsRoot())
	assert.Same(t, stray, root.Find("stray"))
}

func TestMoveTo_SameParentMovesToEnd(t *testing.T) {
	root := New("root")
	a := root.Push("a")
	root.Push("b")

	require.NoError(t, a.MoveTo(root))

	kids := root.Children()
	require.Len(t, kids, 2)
	assert.Equal(t, "b", kids[0].Value())
	assert.Same(t, a, kids[1])
	require.NoError(t, root.Validate())
}

func TestMoveTo_Rejected(t *testing.T) {
	root := New("root")
	a := root.Push("a")
	deep := a.PushVertical("b", "c")

	tests := []struct {
		name    string
		node    *Node[string]
		dest    *Node[string]
		wantErr error
	}{
		{name: "nil destination", node: a, dest: nil, wantErr: ErrNilNode},
		{name: "onto itself", node: a, dest: a, wantErr: ErrCycle},
		{name: "into own subtree", node: a, dest: deep, wantErr: ErrCycle},
		{name: "root under descendant", node: root, dest: a, wantErr: ErrCycle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.node.MoveTo(tt.dest)
			require.ErrorIs(t, err, tt.wantErr)
			require.NoError(t, root.Validate())
			assert.Equal(t, 1, root.ChildCount())
		})
	}
}

func TestMoveTo_AcrossTrees(t *testing.T) {
	west := New("west")
	east := New("east")
	n := west.Push("n")
	n.Push("leaf")

	require.NoError(t, n.MoveTo(east))

	assert.False(t, west.HasChildren())
	root, err := n.Root()
	require.NoError(t, err)
	assert.Same(t, east, root)
	assert.Equal(t, Stats{Nodes: 3, Leaves: 1, MaxDepth: 2, MaxFanout: 1}, east.Stats())
}
