package tree

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) *Node[string] {
	t.Helper()
	root := New("root")
	a := root.Push("a")
	_, err := a.PushChildren("a1", "a2")
	require.NoError(t, err)
	root.Push("b").Push("b1")
	return root
}

func TestWalk_PreOrder(t *testing.T) {
	root := sample(t)

	var visited []string
	err := root.Walk(func(n *Node[string], depth int) error {
		visited = append(visited, strings.Repeat("-", depth)+n.Value())
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"root", "-a", "--a1", "--a2", "-b", "--b1"}, visited)
}

func TestWalk_SkipChildren(t *testing.T) {
	root := sample(t)

	var visited []string
	err := root.Walk(func(n *Node[string], _ int) error {
		visited = append(visited, n.Value())
		if n.Value() == "a" {
			return SkipChildren
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"root", "a", "b", "b1"}, visited)

	err = root.Walk(func(*Node[string], int) error { return SkipChildren })
	assert.NoError(t, err)
}

func TestWalk_StopsOnError(t *testing.T) {
	root := sample(t)
	stop := errors.New("stop")

	var visited int
	err := root.Walk(func(n *Node[string], _ int) error {
		visited++
		if n.Value() == "a1" {
			return stop
		}
		return nil
	})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 3, visited)
}

func TestStats(t *testing.T) {
	root := sample(t)
	assert.Equal(t, Stats{Nodes: 6, Leaves: 3, MaxDepth: 2, MaxFanout: 2}, root.Stats())
	assert.Equal(t, Stats{Nodes: 1, Leaves: 1}, New(0).Stats())
}

func TestTreeStats_CountsFromRoot(t *testing.T) {
	root := sample(t)
	a := root.Find("a")
	require.NotNil(t, a)
	a1 := a.Find("a1")
	require.NotNil(t, a1)

	whole := Stats{Nodes: 6, Leaves: 3, MaxDepth: 2, MaxFanout: 2}
	tests := []struct {
		name    string
		node    *Node[string]
		subtree Stats
	}{
		{name: "root", node: root, subtree: whole},
		{name: "inner node", node: a, subtree: Stats{Nodes: 3, Leaves: 2, MaxDepth: 1, MaxFanout: 2}},
		{name: "leaf", node: a1, subtree: Stats{Nodes: 1, Leaves: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.subtree, tt.node.Stats())

			got, err := tt.node.TreeStats()
			require.NoError(t, err)
			assert.Equal(t, whole, got)
		})
	}
}

func TestValidate_DetectsBrokenLinks(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		require.NoError(t, sample(t).Validate())
	})

	t.Run("child without back-reference", func(t *testing.T) {
		root := sample(t)
		stray := New("stray")
		root.children = append(root.children, stray)

		assert.ErrorIs(t, root.Validate(), ErrInvariant)
	})

	t.Run("listed under two parents", func(t *testing.T) {
		root := sample(t)
		a := root.Find("a")
		b := root.Find("b")
		b.children = append(b.children, a.Children()[0])

		assert.ErrorIs(t, root.Validate(), ErrInvariant)
	})
}
