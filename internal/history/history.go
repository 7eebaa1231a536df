// Package history provides the fixed-capacity sample buffer shared by every
// time-series tracker.
package history

import (
	"fmt"

	sderrors "sysdash/internal/errors"
)

// Sample is one observation of a metric series. Elapsed is seconds since the
// dashboard's shared start instant; Value is a percentage for every series
// the dashboard charts.
type Sample struct {
	Elapsed float64
	Value   float64
}

// Bounded is a fixed-size circular buffer. Appending to a full buffer
// overwrites the oldest entry, so contents are always the most recent
// Cap() values in insertion order.
//
// Bounded is not safe for concurrent use. The refresh loop is its only
// mutator and hands renderers copies from Slice.
type Bounded[T any] struct {
	data  []T
	head  int // next write position
	count int
}

// New creates a buffer holding at most capacity values.
func New[T any](capacity int) (*Bounded[T], error) {
	if capacity <= 0 {
		return nil, sderrors.New(sderrors.ErrConfig,
			fmt.Sprintf("History capacity must be positive, got %d", capacity),
			"Set history.capacity (or --capacity) to a value such as 200.")
	}
	return &Bounded[T]{data: make([]T, capacity)}, nil
}

// Append adds v, evicting the oldest value when the buffer is full.
func (b *Bounded[T]) Append(v T) {
	b.data[b.head] = v
	b.head = (b.head + 1) % len(b.data)
	if b.count < len(b.data) {
		b.count++
	}
}

// Slice returns the stored values oldest first. The result is a copy.
func (b *Bounded[T]) Slice() []T {
	out := make([]T, b.count)
	start := (b.head - b.count + len(b.data)) % len(b.data)
	for i := 0; i < b.count; i++ {
		out[i] = b.data[(start+i)%len(b.data)]
	}
	return out
}

// Last returns the most recently appended value.
func (b *Bounded[T]) Last() (T, bool) {
	var zero T
	if b.count == 0 {
		return zero, false
	}
	return b.data[(b.head-1+len(b.data))%len(b.data)], true
}

// Len returns the number of stored values.
func (b *Bounded[T]) Len() int { return b.count }

// Cap returns the maximum number of stored values.
func (b *Bounded[T]) Cap() int { return len(b.data) }

// Reset discards every stored value without reallocating.
func (b *Bounded[T]) Reset() {
	var zero T
	for i := range b.data {
		b.data[i] = zero
	}
	b.head = 0
	b.count = 0
}
