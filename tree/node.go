package tree

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Cloner is implemented by values that need a deep copy when they are read
// out of a node. Values that do not implement it are copied by assignment.
type Cloner[T any] interface {
	Clone() T
}

// nextID hands out node ids. Ids are unique across all trees in the process
// so that nodes moved between trees still have a total lock order.
var nextID atomic.Uint64

// Node is a single tree node. A *Node is a strong reference: the node stays
// alive as long as any caller or its parent's children list points to it.
type Node[T comparable] struct {
	id  uint64
	cfg *settings

	mu       sync.RWMutex
	value    T
	parent   Weak[T] // zero for a root
	children []*Node[T]
}

// New creates a root node holding value
func New[T comparable](value T, opts ...Option) *Node[T] {
	return newNode(value, newSettings(opts))
}

func newNode[T comparable](value T, cfg *settings) *Node[T] {
	return &Node[T]{
		id:    nextID.Add(1),
		cfg:   cfg,
		value: value,
	}
}

// ID returns the node's creation id. Ids increase monotonically and are
// never reused.
func (n *Node[T]) ID() uint64 {
	return n.id
}

// Value returns a copy of the stored value
func (n *Node[T]) Value() T {
	n.mu.RLock()
	v := n.value
	n.mu.RUnlock()
	return cloneValue(v)
}

// SetValue replaces the stored value
func (n *Node[T]) SetValue(v T) {
	n.mu.Lock()
	n.value = v
	n.mu.Unlock()

	n.cfg.notify(Event{Op: OpSetValue, Node: n.id})
}

// IsRoot reports whether the node has no parent
func (n *Node[T]) IsRoot() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.parent.isZero()
}

// HasChildren reports whether the node has at least one child
func (n *Node[T]) HasChildren() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.children) > 0
}

// ChildCount returns the number of immediate children
func (n *Node[T]) ChildCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.children)
}

// Children returns a snapshot of the node's children in insertion order.
// Later mutations are not reflected in the returned slice.
func (n *Node[T]) Children() []*Node[T] {
	n.mu.RLock()
	defer n.mu.RUnlock()

	result := make([]*Node[T], len(n.children))
	copy(result, n.children)
	return result
}

// Parent returns the node's parent, or nil for a root. A non-root node
// whose parent has been reclaimed yields ErrDanglingParent.
func (n *Node[T]) Parent() (*Node[T], error) {
	n.mu.RLock()
	w := n.parent
	n.mu.RUnlock()

	if w.isZero() {
		return nil, nil
	}
	p, ok := w.Upgrade()
	if !ok {
		n.cfg.logger.Debug("dangling parent reference", "node", n.id)
		return nil, fmt.Errorf("node %d: %w", n.id, ErrDanglingParent)
	}
	return p, nil
}

// Downgrade returns a weak reference to the node
func (n *Node[T]) Downgrade() Weak[T] {
	return makeWeak(n)
}

// String implements fmt.Stringer
func (n *Node[T]) String() string {
	return fmt.Sprintf("node %d (%v)", n.id, n.Value())
}

func cloneValue[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}
