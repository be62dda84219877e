package events

import (
	"sync"
	"sync/atomic"

	"github.com/billie-coop/grove/tree"
)

// Wildcard subscribes to every event type.
const Wildcard tree.Op = "*"

// Broker fans tree mutation events out to subscribers. It implements
// tree.Observer, so it can be passed to tree.WithObserver directly.
type Broker struct {
	subscribers map[tree.Op][]chan tree.Event
	mu          sync.RWMutex
	bufferSize  int
	dropped     atomic.Int64
}

// NewBroker creates a new event broker whose subscriber channels buffer
// bufferSize events.
func NewBroker(bufferSize int) *Broker {
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Broker{
		subscribers: make(map[tree.Op][]chan tree.Event),
		bufferSize:  bufferSize,
	}
}

// Subscribe creates a subscription to specific operations
func (b *Broker) Subscribe(ops ...tree.Op) <-chan tree.Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan tree.Event, b.bufferSize)

	// If no specific ops provided, subscribe to all
	if len(ops) == 0 {
		ops = []tree.Op{Wildcard}
	}

	for _, op := range ops {
		b.subscribers[op] = append(b.subscribers[op], ch)
	}

	return ch
}

// Unsubscribe removes a subscription and closes its channel
func (b *Broker) Unsubscribe(ch <-chan tree.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	closed := false
	for op, subscribers := range b.subscribers {
		for i, sub := range subscribers {
			if sub != ch {
				continue
			}
			b.subscribers[op] = append(subscribers[:i], subscribers[i+1:]...)
			if !closed {
				close(sub)
				closed = true
			}
			break
		}
		if len(b.subscribers[op]) == 0 {
			delete(b.subscribers, op)
		}
	}
}

// Observe implements tree.Observer. It never blocks the goroutine that
// mutated the tree: a subscriber whose buffer is full misses the event.
func (b *Broker) Observe(event tree.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers[event.Op] {
		b.send(ch, event)
	}
	for _, ch := range b.subscribers[Wildcard] {
		b.send(ch, event)
	}
}

func (b *Broker) send(ch chan tree.Event, event tree.Event) {
	select {
	case ch <- event:
	default:
		b.dropped.Add(1)
	}
}

// Dropped returns how many events were discarded because a subscriber's
// buffer was full.
func (b *Broker) Dropped() int64 {
	return b.dropped.Load()
}

// Clear removes all subscriptions
func (b *Broker) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	closed := make(map[chan tree.Event]bool)
	for _, subscribers := range b.subscribers {
		for _, ch := range subscribers {
			if !closed[ch] {
				close(ch)
				closed[ch] = true
			}
		}
	}

	b.subscribers = make(map[tree.Op][]chan tree.Event)
}
