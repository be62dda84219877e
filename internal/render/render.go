// Package render draws trees for the terminal: a plain indented listing, a
// styled lipgloss tree, and a glamour markdown report.
package render

import (
	"fmt"
	"io"
	"strings"

	ltree "github.com/charmbracelet/lipgloss/v2/tree"

	"github.com/billie-coop/grove/tree"
)

// Plain writes the subtree rooted at root depth-first, one node per line,
// indented four spaces per level.
func Plain[T comparable](w io.Writer, root *tree.Node[T]) error {
	return root.Walk(func(n *tree.Node[T], depth int) error {
		indent := strings.Repeat("    ", depth)
		var err error
		if n.HasChildren() {
			_, err = fmt.Fprintf(w, "%s%v has children:\n", indent, n.Value())
		} else {
			_, err = fmt.Fprintf(w, "%s%v has no children.\n", indent, n.Value())
		}
		return err
	})
}

// Options controls styled rendering.
type Options struct {
	Theme *Theme

	// Enumerator is "rounded" or "default".
	Enumerator string

	// Decorate, when set, may restyle a node's label. It receives the
	// node id and the already styled label.
	Decorate func(id uint64, label string) string
}

// Styled renders the subtree rooted at root as a lipgloss tree. Internal
// nodes and leaves are styled differently.
func Styled[T comparable](root *tree.Node[T], opts Options) string {
	if opts.Theme == nil {
		opts.Theme = NewDarkTheme()
	}
	return build(root, opts, true).String()
}

func build[T comparable](n *tree.Node[T], opts Options, isRoot bool) *ltree.Tree {
	s := opts.Theme.S()
	children := n.Children()

	style := s.Leaf
	switch {
	case isRoot:
		style = s.Root
	case len(children) > 0:
		style = s.Branch
	}
	label := style.Render(fmt.Sprint(n.Value()))
	if opts.Decorate != nil {
		label = opts.Decorate(n.ID(), label)
	}

	t := ltree.Root(label).
		Enumerator(enumerator(opts.Enumerator)).
		EnumeratorStyle(s.Enumerator)
	for _, c := range children {
		if c.HasChildren() {
			t.Child(build(c, opts, false))
			continue
		}
		leaf := s.Leaf.Render(fmt.Sprint(c.Value()))
		if opts.Decorate != nil {
			leaf = opts.Decorate(c.ID(), leaf)
		}
		t.Child(leaf)
	}
	return t
}

func enumerator(name string) ltree.Enumerator {
	if name == "default" {
		return ltree.DefaultEnumerator
	}
	return ltree.RoundedEnumerator
}
