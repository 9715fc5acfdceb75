// Package bus provides the in-process event publishing primitive used to
// notify listeners of label lifecycle events.
package bus

import (
	"context"
	"sync"
)

// Publish delivers an event to interested listeners. Implementations must be
// safe for concurrent use; publishing never fails and never blocks the caller
// on listener work.
type Publish func(ctx context.Context, event any)

// Discard is a Publish that drops every event.
func Discard(_ context.Context, _ any) {}

// RecordingBus wraps a Publish and keeps a copy of every event that passed
// through it. It composes over the delegate rather than replacing it, so the
// original listeners still fire.
type RecordingBus struct {
	delegate Publish

	mu      sync.Mutex
	history []any
}

// NewRecordingBus creates a recording wrapper around the delegate.
// A nil delegate records only.
func NewRecordingBus(delegate Publish) *RecordingBus {
	if delegate == nil {
		delegate = Discard
	}
	return &RecordingBus{delegate: delegate}
}

// Publish records the event and forwards it to the delegate.
func (b *RecordingBus) Publish(ctx context.Context, event any) {
	b.mu.Lock()
	b.history = append(b.history, event)
	b.mu.Unlock()

	b.delegate(ctx, event)
}

// History returns a copy of the recorded events in publish order.
func (b *RecordingBus) History() []any {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]any, len(b.history))
	copy(out, b.history)
	return out
}
