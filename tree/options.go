package tree

import "log/slog"

// Op names a mutation reported to an Observer
type Op string

const (
	OpPush     Op = "push"
	OpMove     Op = "move"
	OpSetValue Op = "set_value"
)

// Event describes a completed mutation. Node ids are the values returned
// by Node.ID; From is zero when the moved node was a root.
type Event struct {
	Op      Op
	Node    uint64
	From    uint64
	To      uint64
	Retries int
}

// Observer receives an Event after every successful mutation. Observe is
// called after all node locks have been released, from the goroutine that
// performed the mutation. A node keeps the observer of the tree it was
// created in; a move between two trees is reported to both observers.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a plain function to the Observer interface
type ObserverFunc func(Event)

// Observe calls f(e)
func (f ObserverFunc) Observe(e Event) { f(e) }

// settings are shared by every node created from the same New call
type settings struct {
	logger   *slog.Logger
	observer Observer
}

// Option configures a tree created by New
type Option func(*settings)

// WithLogger sets the logger used for debug diagnostics
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithObserver registers an observer for mutation events
func WithObserver(o Observer) Option {
	return func(s *settings) {
		s.observer = o
	}
}

func newSettings(opts []Option) *settings {
	s := &settings{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *settings) notify(e Event) {
	if s.observer != nil {
		s.observer.Observe(e)
	}
}
