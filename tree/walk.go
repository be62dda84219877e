package tree

import (
	"errors"
	"fmt"
)

// WalkFunc is called by Walk for every visited node. depth is relative to
// the node Walk was called on. Returning SkipChildren skips the node's
// subtree; any other error stops the walk and is returned by Walk.
type WalkFunc[T comparable] func(n *Node[T], depth int) error

// Walk visits n and its descendants depth-first in pre-order, children in
// insertion order. Each node's children are snapshotted when the node is
// visited, so concurrent mutations may or may not be observed but never
// corrupt the traversal.
func (n *Node[T]) Walk(fn WalkFunc[T]) error {
	return walk(n, 0, fn)
}

func walk[T comparable](n *Node[T], depth int, fn WalkFunc[T]) error {
	if err := fn(n, depth); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	for _, c := range n.Children() {
		if err := walk(c, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// Stats summarizes the shape of a subtree
type Stats struct {
	Nodes     int
	Leaves    int
	MaxDepth  int
	MaxFanout int
}

// Stats walks the subtree rooted at n and reports its shape. Nodes above n
// are not counted; use TreeStats for the whole tree n belongs to.
func (n *Node[T]) Stats() Stats {
	var s Stats
	_ = n.Walk(func(c *Node[T], depth int) error {
		s.Nodes++
		s.MaxDepth = max(s.MaxDepth, depth)
		kids := c.ChildCount()
		s.MaxFanout = max(s.MaxFanout, kids)
		if kids == 0 {
			s.Leaves++
		}
		return nil
	})
	return s
}

// TreeStats climbs from n to its root and reports the shape of the whole
// tree. It fails like Root when a parent link is dangling.
func (n *Node[T]) TreeStats() (Stats, error) {
	root, err := n.Root()
	if err != nil {
		return Stats{}, err
	}
	return root.Stats(), nil
}

// Validate checks the single-parent invariant over the subtree rooted at
// n: every child's parent reference points back to the node listing it,
// and no node is listed twice. Failures wrap ErrInvariant. Results are only
// meaningful while no moves run concurrently in the subtree.
func (n *Node[T]) Validate() error {
	seen := map[*Node[T]]struct{}{n: {}}
	return n.Walk(func(p *Node[T], _ int) error {
		for _, c := range p.Children() {
			if _, dup := seen[c]; dup {
				return fmt.Errorf("%w: node %d listed more than once", ErrInvariant, c.id)
			}
			seen[c] = struct{}{}

			c.mu.RLock()
			ok := c.parent.Points(p)
			c.mu.RUnlock()
			if !ok {
				return fmt.Errorf("%w: node %d is listed under %d but does not point back",
					ErrInvariant, c.id, p.id)
			}
		}
		return nil
	})
}
