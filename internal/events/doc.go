// Package events distributes tree mutation events to interested goroutines.
//
// A Broker is registered on a tree with tree.WithObserver. Each call to
// Subscribe returns a buffered channel that receives the events for the
// requested operations (all operations when none are given):
//
//	broker := events.NewBroker(64)
//	root := tree.New("root", tree.WithObserver(broker))
//
//	moves := broker.Subscribe(tree.OpMove)
//	defer broker.Unsubscribe(moves)
//
// Publishing never blocks the mutating goroutine; slow subscribers miss
// events, counted by Dropped.
package events
