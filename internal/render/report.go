package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour/v2"

	"github.com/billie-coop/grove/tree"
)

// Markdown describes the whole tree n belongs to as a markdown document:
// a shape summary followed by the lineage of every leaf.
func Markdown[T comparable](title string, n *tree.Node[T]) (string, error) {
	root, err := n.Root()
	if err != nil {
		return "", err
	}
	stats := root.Stats()

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Root | %v |\n", root.Value())
	fmt.Fprintf(&b, "| Nodes | %d |\n", stats.Nodes)
	fmt.Fprintf(&b, "| Leaves | %d |\n", stats.Leaves)
	fmt.Fprintf(&b, "| Max depth | %d |\n", stats.MaxDepth)
	fmt.Fprintf(&b, "| Max fan-out | %d |\n", stats.MaxFanout)

	b.WriteString("\n## Lineage\n\n")
	err = root.Walk(func(n *tree.Node[T], _ int) error {
		if n.HasChildren() {
			return nil
		}
		lineage, err := n.Lineage()
		if err != nil {
			return err
		}
		if len(lineage) == 0 {
			return nil
		}
		parts := make([]string, len(lineage))
		for i, v := range lineage {
			parts[i] = fmt.Sprint(v)
		}
		fmt.Fprintf(&b, "- %s\n", strings.Join(parts, " ← "))
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to collect lineage: %w", err)
	}
	return b.String(), nil
}

// Report renders Markdown for the terminal using the given glamour style
// ("dark", "light", "dracula", "notty" or a style file path).
func Report[T comparable](title string, root *tree.Node[T], style string, width int) (string, error) {
	md, err := Markdown(title, root)
	if err != nil {
		return "", err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return out, nil
}
