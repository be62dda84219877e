package events

import (
	"testing"

	"github.com/billie-coop/grove/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker_DeliversByOp(t *testing.T) {
	b := NewBroker(8)
	moves := b.Subscribe(tree.OpMove)
	all := b.Subscribe()

	root := tree.New("root", tree.WithObserver(b))
	a := root.Push("a")
	c := root.Push("c")
	require.NoError(t, a.MoveTo(c))

	require.Len(t, moves, 1)
	ev := <-moves
	assert.Equal(t, tree.OpMove, ev.Op)
	assert.Equal(t, a.ID(), ev.Node)
	assert.Equal(t, root.ID(), ev.From)
	assert.Equal(t, c.ID(), ev.To)

	assert.Len(t, all, 3)
}

func TestBroker_DropsWhenFull(t *testing.T) {
	b := NewBroker(1)
	ch := b.Subscribe(tree.OpPush)

	root := tree.New(0, tree.WithObserver(b))
	root.Push(1)
	root.Push(2)
	root.Push(3)

	assert.Len(t, ch, 1)
	assert.Equal(t, int64(2), b.Dropped())
}

func TestBroker_UnsubscribeClosesChannel(t *testing.T) {
	b := NewBroker(4)
	ch := b.Subscribe(tree.OpPush, tree.OpMove)
	b.Unsubscribe(ch)

	_, open := <-ch
	assert.False(t, open)

	// Publishing after unsubscribe must not panic on the closed channel.
	b.Observe(tree.Event{Op: tree.OpPush})
}

func TestBroker_Clear(t *testing.T) {
	b := NewBroker(4)
	first := b.Subscribe()
	second := b.Subscribe(tree.OpSetValue, tree.OpMove)

	b.Clear()

	_, open := <-first
	assert.False(t, open)
	_, open = <-second
	assert.False(t, open)
}
