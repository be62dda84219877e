package stress

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billie-coop/grove/internal/family"
	"github.com/billie-coop/grove/tree"
)

type recorder struct {
	errs []error
}

func (r *recorder) RecordError(err error) {
	r.errs = append(r.errs, err)
}

func TestRun_KeepsTreeConsistent(t *testing.T) {
	root, err := family.Build()
	require.NoError(t, err)

	res, err := Run(context.Background(), root, Config{Workers: 8, Operations: 2000, Seed: 1}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(2000), res.Pushes+res.Moves+res.Rejected+res.Skipped)
	assert.Equal(t, 11+int(res.Pushes), res.Stats.Nodes)
	assert.Positive(t, res.Pushes)
	assert.Positive(t, res.Moves)
	assert.Same(t, root, mustRoot(t, root))
}

func TestRun_RecordsRejectedMoves(t *testing.T) {
	root := tree.New("root")
	root.PushVertical("a", "b", "c")

	rec := &recorder{}
	res, err := Run(context.Background(), root, Config{Workers: 1, Operations: 500, Seed: 7}, rec, nil)
	require.NoError(t, err)

	require.Len(t, rec.errs, int(res.Rejected))
	for _, e := range rec.errs {
		assert.ErrorIs(t, e, tree.ErrCycle)
	}
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, tree.New("root"), Config{Workers: 2, Operations: 10}, nil, nil)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRun_InvalidConfig(t *testing.T) {
	_, err := Run(context.Background(), tree.New("root"), Config{Workers: 0}, nil, nil)
	assert.Error(t, err)
}

func mustRoot(t *testing.T, n *tree.Node[string]) *tree.Node[string] {
	t.Helper()
	r, err := n.Root()
	require.NoError(t, err)
	return r
}
