// Package store provides the in-memory collection backing the service.
// There is deliberately no durable persistence: the collection is the single
// owner of its records, readers get copies, and every mutation runs
// validate-then-swap under one lock so state checks are atomic with the write
package store

import (
	"sync"

	perr "podium/internal/platform/errors"
)

// Collection is a concurrency-safe in-memory record set keyed by id.
// T should be a value type (or treated as immutable) so the copies handed to
// readers cannot alias live state
type Collection[T any] struct {
	mu   sync.RWMutex
	byID map[string]T
	ord  []string // insertion order, for stable listings
}

// NewCollection returns an empty collection
func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{byID: make(map[string]T)}
}

// Len returns the number of records
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byID)
}

// Get returns the record for id
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.byID[id]
	return v, ok
}

// List returns all records in insertion order as a fresh slice
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.ord))
	for _, id := range c.ord {
		out = append(out, c.byID[id])
	}
	return out
}

// Filter returns the records for which keep is true, in insertion order
func (c *Collection[T]) Filter(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []T
	for _, id := range c.ord {
		if v := c.byID[id]; keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Insert adds a new record under id. Duplicate ids are rejected
func (c *Collection[T]) Insert(id string, v T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.byID[id]; exists {
		return perr.DuplicateKeyf("record %q already exists", id)
	}
	c.byID[id] = v
	c.ord = append(c.ord, id)
	return nil
}

// Update applies mutate to the record under id and swaps the result in.
// The read, the mutation, and the write happen under one lock, so mutate can
// enforce state-transition guards atomically. When mutate returns an error
// nothing is written and the error is passed through
func (c *Collection[T]) Update(id string, mutate func(T) (T, error)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cur, ok := c.byID[id]
	if !ok {
		var zero T
		return zero, perr.NotFoundf("record %q not found", id)
	}
	next, err := mutate(cur)
	if err != nil {
		var zero T
		return zero, err
	}
	c.byID[id] = next
	return next, nil
}

// UpdateAll applies mutate to every record, swapping in only the records for
// which changed is true. Returns how many records changed. Used by sweep jobs
func (c *Collection[T]) UpdateAll(mutate func(T) (T, bool)) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, id := range c.ord {
		if next, changed := mutate(c.byID[id]); changed {
			c.byID[id] = next
			n++
		}
	}
	return n
}
