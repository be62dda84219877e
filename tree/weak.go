package tree

import "weak"

// Weak is a non-owning reference to a node. It is used for child-to-parent
// links so that parent and child never keep each other alive.
type Weak[T comparable] struct {
	p weak.Pointer[Node[T]]
}

func makeWeak[T comparable](n *Node[T]) Weak[T] {
	return Weak[T]{p: weak.Make(n)}
}

// Upgrade returns the referenced node if it is still alive
func (w Weak[T]) Upgrade() (*Node[T], bool) {
	n := w.p.Value()
	return n, n != nil
}

// Points reports whether w refers to n
func (w Weak[T]) Points(n *Node[T]) bool {
	return !w.isZero() && w.p == weak.Make(n)
}

func (w Weak[T]) isZero() bool {
	return w.p == weak.Pointer[Node[T]]{}
}
