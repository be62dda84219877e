package cli

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/billie-coop/grove/internal/browse"
	"github.com/billie-coop/grove/internal/events"
	"github.com/billie-coop/grove/internal/family"
	"github.com/billie-coop/grove/internal/render"
	"github.com/billie-coop/grove/tree"
)

func newBrowseCommand(a *app) *cobra.Command {
	var churn time.Duration

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse and rearrange the family tree interactively",
		Long: `Opens an interactive view of the family tree. Mark a node with x, select
its new parent and press p to move it. With --churn, a background goroutine
keeps moving random nodes so you can watch concurrent edits arrive.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			broker := events.NewBroker(64)
			defer broker.Clear()

			root, err := family.Build(tree.WithLogger(a.logger), tree.WithObserver(broker))
			if err != nil {
				return err
			}

			model := browse.New(root, render.ThemeByName(a.cfg.Theme), a.cfg.Enumerator, broker.Subscribe())

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			g, ctx := errgroup.WithContext(ctx)

			if churn > 0 {
				g.Go(func() error {
					return browse.Churn(ctx, root, churn, a.logger)
				})
			}
			g.Go(func() error {
				defer cancel()
				_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
				return err
			})
			return g.Wait()
		},
	}

	cmd.Flags().DurationVar(&churn, "churn", 0, "move a random node this often (0 disables)")
	return cmd
}
