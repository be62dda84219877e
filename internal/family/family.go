// Package family builds the Stark family tree used by the grove CLI and
// applies the "Jon was Lyanna's son" correction to it.
package family

import (
	"errors"
	"fmt"

	"github.com/billie-coop/grove/tree"
)

const (
	Patriarch = "Richard Stark"
	Ned       = "Ned Stark"
	Lyanna    = "Lyanna Stark"
	JonSnow   = "Jon Snow"
	JonTarg   = "Jon Targaryen"
)

// ErrMemberNotFound is returned when an expected family member is missing.
var ErrMemberNotFound = errors.New("family member not found")

// Children of Richard Stark, in birth order.
var RichardsChildren = []string{Ned, "Brandon Stark", "Benjen Stark", Lyanna}

// Children of Ned Stark, in birth order.
var NedsChildren = []string{"Robb Stark", JonSnow, "Sansa Stark", "Arya Stark", "Bran Stark", "Rickon Stark"}

// Build creates the family tree and returns its root.
func Build(opts ...tree.Option) (*tree.Node[string], error) {
	root := tree.New(Patriarch, opts...)
	if _, err := root.PushChildren(RichardsChildren...); err != nil {
		return nil, fmt.Errorf("failed to add %s's children: %w", Patriarch, err)
	}

	ned, err := find(root, Ned)
	if err != nil {
		return nil, err
	}
	if _, err := ned.PushChildren(NedsChildren...); err != nil {
		return nil, fmt.Errorf("failed to add %s's children: %w", Ned, err)
	}
	return root, nil
}

// RevealParentage moves Jon Snow from Ned to Lyanna and renames him.
// It returns Jon's node.
func RevealParentage(root *tree.Node[string]) (*tree.Node[string], error) {
	ned, err := find(root, Ned)
	if err != nil {
		return nil, err
	}
	lyanna, err := find(root, Lyanna)
	if err != nil {
		return nil, err
	}
	jon, err := find(ned, JonSnow)
	if err != nil {
		return nil, err
	}

	if err := jon.MoveTo(lyanna); err != nil {
		return nil, fmt.Errorf("failed to move %s to %s: %w", JonSnow, Lyanna, err)
	}
	jon.SetValue(JonTarg)
	return jon, nil
}

func find(parent *tree.Node[string], name string) (*tree.Node[string], error) {
	n := parent.Find(name)
	if n == nil {
		return nil, fmt.Errorf("%w: %s under %s", ErrMemberNotFound, name, parent.Value())
	}
	return n, nil
}
