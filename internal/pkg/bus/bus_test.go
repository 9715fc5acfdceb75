package bus_test

import (
	"context"
	"sync"
	"testing"

	"shiplabel/internal/pkg/bus"

	"github.com/stretchr/testify/assert"
)

func TestRecordingBus_ForwardsAndRecords(t *testing.T) {
	ctx := t.Context()

	var forwarded []any
	delegate := func(_ context.Context, event any) {
		forwarded = append(forwarded, event)
	}

	b := bus.NewRecordingBus(delegate)
	b.Publish(ctx, "first")
	b.Publish(ctx, 42)

	assert.Equal(t, []any{"first", 42}, forwarded)
	assert.Equal(t, []any{"first", 42}, b.History())
}

func TestRecordingBus_NilDelegateRecordsOnly(t *testing.T) {
	b := bus.NewRecordingBus(nil)
	b.Publish(t.Context(), "event")

	assert.Equal(t, []any{"event"}, b.History())
}

func TestRecordingBus_HistoryIsACopy(t *testing.T) {
	b := bus.NewRecordingBus(nil)
	b.Publish(t.Context(), "one")

	history := b.History()
	history[0] = "mutated"

	assert.Equal(t, []any{"one"}, b.History())
}

func TestRecordingBus_ConcurrentPublish(t *testing.T) {
	b := bus.NewRecordingBus(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			b.Publish(context.Background(), n)
		}(i)
	}
	wg.Wait()

	assert.Len(t, b.History(), 50)
}
