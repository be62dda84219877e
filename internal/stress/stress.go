// Package stress runs a concurrent push/move workload against a tree and
// checks that the structure is still consistent afterwards.
package stress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/billie-coop/grove/internal/csync"
	"github.com/billie-coop/grove/tree"
)

// Config controls the workload.
type Config struct {
	Workers    int
	Operations int // total across all workers
	Seed       uint64
}

// Result summarizes a finished run.
type Result struct {
	Pushes   int64
	Moves    int64
	Rejected int64 // moves refused with tree.ErrCycle
	Skipped  int64 // moves not attempted because the root was picked
	Stats    tree.Stats
	Elapsed  time.Duration
}

// ErrorRecorder is told about every failed tree operation.
type ErrorRecorder interface {
	RecordError(err error)
}

// Run executes the workload on the tree rooted at root. root itself is never
// moved. Run returns the first unexpected error, or a wrapped
// tree.ErrInvariant if the tree is inconsistent afterwards.
func Run(ctx context.Context, root *tree.Node[string], cfg Config, rec ErrorRecorder, logger *slog.Logger) (Result, error) {
	if cfg.Workers < 1 {
		return Result{}, fmt.Errorf("workers must be positive, got %d", cfg.Workers)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	before := root.Stats().Nodes
	// The pool only grows; workers pick push parents and move endpoints from it.
	pool := csync.NewSlice[*tree.Node[string]]()
	_ = root.Walk(func(n *tree.Node[string], _ int) error {
		pool.Append(n)
		return nil
	})

	var pushes, moves, rejected, skipped atomic.Int64
	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	for w := range cfg.Workers {
		ops := cfg.Operations / cfg.Workers
		if w < cfg.Operations%cfg.Workers {
			ops++
		}
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(cfg.Seed, uint64(w)))
			pick := func() *tree.Node[string] {
				n, _ := pool.Pick(rng.IntN)
				return n
			}
			for i := range ops {
				if err := ctx.Err(); err != nil {
					return err
				}
				if rng.IntN(2) == 0 {
					parent := pick()
					pool.Append(parent.Push(fmt.Sprintf("w%d-%d", w, i)))
					pushes.Add(1)
					continue
				}

				n, dest := pick(), pick()
				if n == root {
					skipped.Add(1)
					continue
				}
				err := n.MoveTo(dest)
				switch {
				case err == nil:
					moves.Add(1)
				case errors.Is(err, tree.ErrCycle):
					rejected.Add(1)
					if rec != nil {
						rec.RecordError(err)
					}
				default:
					if rec != nil {
						rec.RecordError(err)
					}
					return fmt.Errorf("worker %d: %w", w, err)
				}
			}
			return nil
		})
	}

	err := g.Wait()
	res := Result{
		Pushes:   pushes.Load(),
		Moves:    moves.Load(),
		Rejected: rejected.Load(),
		Skipped:  skipped.Load(),
		Elapsed:  time.Since(start),
	}
	if err != nil {
		return res, err
	}
	res.Stats = root.Stats()

	logger.Info("stress run finished",
		"workers", cfg.Workers,
		"pushes", res.Pushes,
		"moves", res.Moves,
		"rejected", res.Rejected,
		"nodes", res.Stats.Nodes,
		"elapsed", res.Elapsed)

	if err := root.Validate(); err != nil {
		return res, err
	}
	if want := before + int(res.Pushes); res.Stats.Nodes != want {
		return res, fmt.Errorf("%w: %d nodes reachable, want %d", tree.ErrInvariant, res.Stats.Nodes, want)
	}
	return res, nil
}
