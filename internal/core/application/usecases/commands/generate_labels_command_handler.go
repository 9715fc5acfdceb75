package commands

import (
	"context"
	"sync"
)

// defaultBatchWorkers bounds concurrent label generations in a batch.
const defaultBatchWorkers = 4

// BatchResult is the outcome of a batch generation. Results holds one entry
// per submitted order, in submission order, regardless of individual
// failures.
type BatchResult struct {
	Results   []LabelResult
	Generated int
	Failed    int
}

// GenerateLabelsCommandHandler fans a batch out over a bounded worker pool of
// single-label generations. One order failing never aborts the rest: its slot
// carries the error and the batch continues.
type GenerateLabelsCommandHandler struct {
	single  GenerateLabelCommandHandler
	workers int
}

// NewGenerateLabelsCommandHandler creates a batch handler around a
// single-label handler. workers bounds the pool; values below 1 fall back to
// the default.
func NewGenerateLabelsCommandHandler(
	single GenerateLabelCommandHandler,
	workers int,
) GenerateLabelsCommandHandler {
	if workers < 1 {
		workers = defaultBatchWorkers
	}

	return GenerateLabelsCommandHandler{
		single:  single,
		workers: workers,
	}
}

// Handle processes the batch command. Each order's result lands in the slot
// matching its submission position. The returned error reflects only the
// command itself; per-order failures live in their result entries.
func (h *GenerateLabelsCommandHandler) Handle(
	ctx context.Context,
	cmd GenerateLabelsCommand,
) (BatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return BatchResult{}, err
	}

	orderIDs := cmd.OrderIDs()
	results := make([]LabelResult, len(orderIDs))

	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < h.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = h.generateOne(ctx, orderIDs[i], cmd)
			}
		}()
	}

	for i := range orderIDs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	batch := BatchResult{Results: results}
	for _, r := range results {
		if r.Success {
			batch.Generated++
		} else {
			batch.Failed++
		}
	}

	return batch, nil
}

func (h *GenerateLabelsCommandHandler) generateOne(
	ctx context.Context,
	orderID string,
	cmd GenerateLabelsCommand,
) LabelResult {
	single, err := NewGenerateLabelCommand(orderID, cmd.Service(), cmd.Options())
	if err != nil {
		return LabelResult{OrderID: orderID, Err: err}
	}

	result, _ := h.single.Handle(ctx, single)
	return result
}
