// Package sequence allocates shipment sequence numbers.
package sequence

import (
	"context"
	"sync"

	"shiplabel/internal/core/domain/model/kernel"
)

// Counter hands out monotonically increasing sequence numbers per agency.
// It implements ports.SequenceSource.
//
// Counter is safe for concurrent use; the batch workers share one instance.
type Counter struct {
	mu   sync.Mutex
	next map[string]int
}

// NewCounter creates a Counter that starts every agency at 1.
func NewCounter() *Counter {
	return &Counter{next: make(map[string]int)}
}

// NewCounterFrom creates a Counter seeded with the next free number per
// agency code, used to resume after the last persisted expedition.
func NewCounterFrom(seed map[string]int) *Counter {
	next := make(map[string]int, len(seed))
	for agency, n := range seed {
		next[agency] = n
	}
	return &Counter{next: next}
}

// Next returns the next free sequence number for the agency.
func (c *Counter) Next(_ context.Context, agency kernel.Agency) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := agency.String()
	n := c.next[key]
	if n < 1 {
		n = 1
	}
	c.next[key] = n + 1

	return n, nil
}
