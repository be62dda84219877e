package csync

import (
	"slices"
	"sync"
)

// Slice is a thread-safe slice with generic types.
// Reads share a RWMutex read lock, writes take it exclusively.
type Slice[T any] struct {
	data []T
	mu   sync.RWMutex
}

// NewSlice creates a new thread-safe slice
func NewSlice[T any]() *Slice[T] {
	return &Slice[T]{
		data: make([]T, 0),
	}
}

// Append adds elements to the end of the slice
func (s *Slice[T]) Append(elements ...T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append(s.data, elements...)
}

// Get retrieves an element by index, returns the element and whether index is valid
func (s *Slice[T]) Get(index int) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var zero T
	if index < 0 || index >= len(s.data) {
		return zero, false
	}
	return s.data[index], true
}

// Pick returns the element at intn(Len()), read under a single lock so the
// index can never fall out of range. It reports false when the slice is empty.
func (s *Slice[T]) Pick(intn func(n int) int) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var zero T
	if len(s.data) == 0 {
		return zero, false
	}
	return s.data[intn(len(s.data))], true
}

// IndexFunc returns the index of the first element satisfying f, or -1
func (s *Slice[T]) IndexFunc(f func(T) bool) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.IndexFunc(s.data, f)
}

// Replace swaps the contents for a copy of elements
func (s *Slice[T]) Replace(elements []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = slices.Clone(elements)
}

// Len returns the length of the slice
func (s *Slice[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// All returns a copy of the slice
func (s *Slice[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.data)
}
