package tree

import (
	"cmp"
	"fmt"
	"slices"
)

// lockMode is the lock a move needs on one node of its plan
type lockMode int

const (
	readLock lockMode = iota
	writeLock
)

type lockEntry[T comparable] struct {
	node *Node[T]
	mode lockMode
}

// movePlan records the nodes a move depends on as observed without locks.
// After locking, valid checks that none of the observed parent links has
// changed in the meantime.
type movePlan[T comparable] struct {
	node  *Node[T]
	from  *Node[T]   // current parent, nil for a root
	chain []*Node[T] // destination followed by its ancestors up to the root
	locks []lockEntry[T]
}

// MoveTo detaches n from its current parent, if any, and appends it to
// dest's children. While the move is in progress no other goroutine can
// observe n under both parents or under neither.
//
// Moving a node under itself or one of its descendants fails with ErrCycle.
// Moving a node to its current parent moves it to the end of the children.
//
// The move is reported to the observer of n's tree and, when dest was
// created by a different New call, to the observer of dest's tree as well.
func (n *Node[T]) MoveTo(dest *Node[T]) error {
	if dest == nil {
		return ErrNilNode
	}

	for retries := 0; ; retries++ {
		plan, err := n.planMove(dest)
		if err != nil {
			return err
		}

		plan.lock()
		if !plan.valid() {
			plan.unlock()
			n.cfg.logger.Debug("move plan changed, retrying",
				"node", n.id, "dest", dest.id, "retries", retries+1)
			continue
		}
		if slices.Contains(plan.chain, n) {
			plan.unlock()
			n.cfg.logger.Debug("move rejected", "node", n.id, "dest", dest.id, "reason", "cycle")
			return fmt.Errorf("move node %d under %d: %w", n.id, dest.id, ErrCycle)
		}

		var from uint64
		if plan.from != nil {
			from = plan.from.id
			plan.from.children = slices.DeleteFunc(plan.from.children, func(c *Node[T]) bool {
				return c == n
			})
		}
		dest.children = append(dest.children, n)
		n.parent = makeWeak(dest)
		plan.unlock()

		ev := Event{Op: OpMove, Node: n.id, From: from, To: dest.id, Retries: retries}
		n.cfg.notify(ev)
		if dest.cfg != n.cfg {
			dest.cfg.notify(ev)
		}
		return nil
	}
}

// planMove collects the current parent of n and the ancestor chain of dest
// without holding more than one lock at a time.
func (n *Node[T]) planMove(dest *Node[T]) (*movePlan[T], error) {
	from, err := n.Parent()
	if err != nil {
		return nil, err
	}

	plan := &movePlan[T]{node: n, from: from}
	for cur := dest; cur != nil; {
		plan.chain = append(plan.chain, cur)
		if cur == n {
			// Cycle; the chain above n is irrelevant.
			break
		}
		if cur, err = cur.Parent(); err != nil {
			return nil, err
		}
	}

	modes := make(map[*Node[T]]lockMode, len(plan.chain)+2)
	for _, c := range plan.chain {
		modes[c] = readLock
	}
	modes[n] = writeLock
	modes[dest] = writeLock
	if from != nil {
		modes[from] = writeLock
	}

	plan.locks = make([]lockEntry[T], 0, len(modes))
	for node, mode := range modes {
		plan.locks = append(plan.locks, lockEntry[T]{node: node, mode: mode})
	}
	slices.SortFunc(plan.locks, func(a, b lockEntry[T]) int {
		return cmp.Compare(a.node.id, b.node.id)
	})
	return plan, nil
}

// lock acquires every lock of the plan in ascending node id order
func (p *movePlan[T]) lock() {
	for _, e := range p.locks {
		if e.mode == writeLock {
			e.node.mu.Lock()
		} else {
			e.node.mu.RLock()
		}
	}
}

// unlock releases the plan's locks in reverse acquisition order
func (p *movePlan[T]) unlock() {
	for i := len(p.locks) - 1; i >= 0; i-- {
		e := p.locks[i]
		if e.mode == writeLock {
			e.node.mu.Unlock()
		} else {
			e.node.mu.RUnlock()
		}
	}
}

// valid reports whether the parent links observed by planMove still hold.
// It must be called with the plan's locks held; since changing a parent
// link requires the child's write lock, the links cannot change until
// unlock.
func (p *movePlan[T]) valid() bool {
	if !p.linked(p.node, p.from) {
		return false
	}
	last := len(p.chain) - 1
	for i, c := range p.chain {
		if c == p.node {
			// Cycle chains stop at n, whose link was checked above.
			return true
		}
		var want *Node[T]
		if i < last {
			want = p.chain[i+1]
		}
		if !p.linked(c, want) {
			return false
		}
	}
	return true
}

// linked reports whether child's parent field refers to parent, or is
// empty when parent is nil. The caller holds child's lock.
func (p *movePlan[T]) linked(child, parent *Node[T]) bool {
	if parent == nil {
		return child.parent.isZero()
	}
	return child.parent.Points(parent)
}
