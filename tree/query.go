package tree

// Find returns the first immediate child of n whose value equals v, or nil.
// Only direct children are searched.
func (n *Node[T]) Find(v T) *Node[T] {
	for _, c := range n.Children() {
		c.mu.RLock()
		match := c.value == v
		c.mu.RUnlock()
		if match {
			return c
		}
	}
	return nil
}

// Depth returns the number of parent hops from n to its root. A root has
// depth 0.
func (n *Node[T]) Depth() (int, error) {
	depth := 0
	for cur := n; ; depth++ {
		p, err := cur.Parent()
		if err != nil {
			return 0, err
		}
		if p == nil {
			return depth, nil
		}
		cur = p
	}
}

// Lineage returns the values from n up to, but not including, the root:
// n's own value first, then each ancestor nearest first. A root yields an
// empty slice, and len(Lineage()) always equals Depth().
func (n *Node[T]) Lineage() ([]T, error) {
	values := make([]T, 0)
	for cur := n; ; {
		p, err := cur.Parent()
		if err != nil {
			return nil, err
		}
		if p == nil {
			return values, nil
		}
		values = append(values, cur.Value())
		cur = p
	}
}

// Root returns the root of the tree containing n
func (n *Node[T]) Root() (*Node[T], error) {
	cur := n
	for {
		p, err := cur.Parent()
		if err != nil {
			return nil, err
		}
		if p == nil {
			return cur, nil
		}
		cur = p
	}
}
