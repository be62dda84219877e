package tree

// Push creates a new child holding v, appends it to n's children and
// returns it. The child is attached before any other goroutine can see it.
func (n *Node[T]) Push(v T) *Node[T] {
	child := newNode(v, n.cfg)
	child.parent = makeWeak(n)

	n.mu.Lock()
	n.children = append(n.children, child)
	n.mu.Unlock()

	n.cfg.notify(Event{Op: OpPush, Node: child.id, To: n.id})
	return child
}

// PushChildren pushes every value as a direct child of n, in order, and
// returns the last child created.
func (n *Node[T]) PushChildren(values ...T) (*Node[T], error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}

	var last *Node[T]
	for _, v := range values {
		last = n.Push(v)
	}
	return last, nil
}

// PushVertical builds a chain below n where each value becomes the only
// child of the previous one. It returns the deepest node, or n itself when
// values is empty.
func (n *Node[T]) PushVertical(values ...T) *Node[T] {
	cur := n
	for _, v := range values {
		cur = cur.Push(v)
	}
	return cur
}

// Attach makes child the last child of n, detaching it from its current
// parent and updating its parent reference in the same critical section.
// It returns child.
func (n *Node[T]) Attach(child *Node[T]) (*Node[T], error) {
	if child == nil {
		return nil, ErrNilNode
	}
	if err := child.MoveTo(n); err != nil {
		return nil, err
	}
	return child, nil
}
