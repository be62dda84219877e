package tree

import "errors"

// Input errors
var (
	// ErrEmptyInput indicates that PushChildren was called without values
	ErrEmptyInput = errors.New("no values to push")

	// ErrNilNode indicates that a nil node was passed where a node is required
	ErrNilNode = errors.New("nil node")
)

// Structural errors
var (
	// ErrCycle indicates that a move would place a node under itself or one
	// of its own descendants.
	ErrCycle = errors.New("move would create a cycle")

	// ErrDanglingParent indicates that a non-root node's parent reference no
	// longer resolves to a live node. It is never a normal "no parent" result.
	ErrDanglingParent = errors.New("parent reference is dangling")

	// ErrInvariant indicates that Validate found a broken structural invariant
	ErrInvariant = errors.New("tree invariant violated")
)

// SkipChildren is returned by a WalkFunc to skip the children of the
// node it was called for. It is never returned by Walk.
var SkipChildren = errors.New("skip children")
