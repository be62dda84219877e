package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/billie-coop/grove/internal/family"
	"github.com/billie-coop/grove/internal/render"
	"github.com/billie-coop/grove/tree"
)

func newStatsCommand(a *app) *cobra.Command {
	var (
		width int
		raw   bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Render a markdown report of the family tree after the move",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := family.Build(tree.WithLogger(a.logger))
			if err != nil {
				return err
			}
			if _, err := family.RevealParentage(root); err != nil {
				return err
			}

			var out string
			if raw {
				out, err = render.Markdown("House Stark", root)
			} else {
				out, err = render.Report("House Stark", root, a.cfg.MarkdownStyle, width)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().IntVar(&width, "width", 80, "word wrap width")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the markdown source")
	return cmd
}
