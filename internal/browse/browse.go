// Package browse is an interactive terminal browser for a string tree.
// Nodes can be marked and moved under another node; changes made by other
// goroutines show up as soon as the tree reports them.
package browse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/billie-coop/grove/internal/csync"
	"github.com/billie-coop/grove/internal/render"
	"github.com/billie-coop/grove/tree"
)

// treeChangedMsg is sent when the tree reported a mutation
type treeChangedMsg tree.Event

// Model is the browser's bubbletea model
type Model struct {
	root       *tree.Node[string]
	theme      *render.Theme
	enumerator string
	events     <-chan tree.Event

	keys KeyMap
	help help.Model

	rows     *csync.Slice[*tree.Node[string]]
	selected *tree.Node[string]
	marked   *tree.Node[string]
	status   string
	changes  int
}

// New creates a browser for root. events may be nil; when set, the view is
// refreshed whenever an event arrives.
func New(root *tree.Node[string], theme *render.Theme, enumerator string, events <-chan tree.Event) *Model {
	m := &Model{
		root:       root,
		theme:      theme,
		enumerator: enumerator,
		events:     events,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		rows:       csync.NewSlice[*tree.Node[string]](),
		selected:   root,
	}
	m.refresh()
	return m
}

// Init starts listening for tree events
func (m *Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case treeChangedMsg:
		m.changes++
		m.refresh()
		return m, waitForEvent(m.events)

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1)
		case key.Matches(msg, m.keys.Mark):
			m.mark()
		case key.Matches(msg, m.keys.Move):
			m.moveMarked()
		case key.Matches(msg, m.keys.Cancel):
			m.marked = nil
			m.status = ""
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

// View renders the UI
func (m *Model) View() tea.View {
	s := m.theme.S()

	var b strings.Builder
	b.WriteString(s.Title.Render("grove"))
	b.WriteString("\n")
	b.WriteString(render.Styled(m.root, render.Options{
		Theme:      m.theme,
		Enumerator: m.enumerator,
		Decorate:   m.decorate,
	}))
	b.WriteString("\n\n")
	if m.status != "" {
		b.WriteString(s.Muted.Render(m.status))
		b.WriteString("\n")
	}
	if m.events != nil {
		b.WriteString(s.Muted.Render(fmt.Sprintf("%d live changes", m.changes)))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))

	return tea.NewView(b.String())
}

// Selected returns the node under the cursor
func (m *Model) Selected() *tree.Node[string] {
	return m.selected
}

// Marked returns the node marked for moving, if any
func (m *Model) Marked() *tree.Node[string] {
	return m.marked
}

func (m *Model) decorate(id uint64, label string) string {
	s := m.theme.S()
	switch {
	case m.selected != nil && id == m.selected.ID():
		return s.Selected.Render("▸ ") + label
	case m.marked != nil && id == m.marked.ID():
		return s.Marked.Render("✂ ") + label
	}
	return label
}

// refresh re-reads the tree in display order, keeping the cursor on the
// same node when it is still reachable.
func (m *Model) refresh() {
	var rows []*tree.Node[string]
	_ = m.root.Walk(func(n *tree.Node[string], _ int) error {
		rows = append(rows, n)
		return nil
	})
	m.rows.Replace(rows)
	if m.index(m.selected) < 0 {
		m.selected = m.root
	}
}

func (m *Model) index(n *tree.Node[string]) int {
	return m.rows.IndexFunc(func(r *tree.Node[string]) bool { return r == n })
}

func (m *Model) moveCursor(delta int) {
	if n, ok := m.rows.Get(m.index(m.selected) + delta); ok {
		m.selected = n
	}
}

func (m *Model) mark() {
	if m.selected == m.root {
		m.status = "the root cannot be moved"
		return
	}
	m.marked = m.selected
	m.status = fmt.Sprintf("marked %s, select a new parent and press p", m.marked.Value())
}

func (m *Model) moveMarked() {
	if m.marked == nil {
		m.status = "nothing marked"
		return
	}
	err := m.marked.MoveTo(m.selected)
	switch {
	case errors.Is(err, tree.ErrCycle):
		m.status = fmt.Sprintf("cannot move %s under its own descendant", m.marked.Value())
		return
	case err != nil:
		m.status = fmt.Sprintf("move failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("moved %s under %s", m.marked.Value(), m.selected.Value())
	m.marked = nil
	m.refresh()
}

func waitForEvent(ch <-chan tree.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return treeChangedMsg(ev)
	}
}
