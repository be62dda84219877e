package browse

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/billie-coop/grove/tree"
)

// Churn moves a random node under another random node every interval until
// ctx is done. It simulates other goroutines editing the tree while it is
// being browsed. Moves that would create a cycle are skipped.
func Churn(ctx context.Context, root *tree.Node[string], interval time.Duration, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		var nodes []*tree.Node[string]
		_ = root.Walk(func(n *tree.Node[string], _ int) error {
			nodes = append(nodes, n)
			return nil
		})
		if len(nodes) < 3 {
			continue
		}

		n := nodes[1+rand.IntN(len(nodes)-1)]
		dest := nodes[rand.IntN(len(nodes))]
		err := n.MoveTo(dest)
		switch {
		case errors.Is(err, tree.ErrCycle):
			continue
		case err != nil:
			return err
		}
		logger.Debug("churn moved node", "node", n.Value(), "dest", dest.Value())
	}
}
