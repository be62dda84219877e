package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/billie-coop/grove/internal/family"
	"github.com/billie-coop/grove/internal/render"
	"github.com/billie-coop/grove/tree"
)

func newShowCommand(a *app) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the family tree, move Jon to Lyanna, print it again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := family.Build(tree.WithLogger(a.logger))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := a.print(out, root, plain); err != nil {
				return err
			}

			jon, err := family.RevealParentage(root)
			if err != nil {
				return err
			}
			a.logger.Info("moved node", "node", jon.ID(), "value", jon.Value())

			fmt.Fprintln(out)
			return a.print(out, root, plain)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print an indented listing without styling")
	return cmd
}

func (a *app) print(w io.Writer, root *tree.Node[string], plain bool) error {
	if plain {
		return render.Plain(w, root)
	}
	_, err := fmt.Fprintln(w, render.Styled(root, render.Options{
		Theme:      render.ThemeByName(a.cfg.Theme),
		Enumerator: a.cfg.Enumerator,
	}))
	return err
}
