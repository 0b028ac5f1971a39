package filter

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EvaluatorOption configures an evaluator
type EvaluatorOption func(*ConcurrentEvaluator)

// WithWorkers sets the number of worker goroutines
func WithWorkers(workers int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		if workers > 0 {
			e.workerCount = workers
		}
	}
}

// WithBatchSize sets the batch size for chunked processing
func WithBatchSize(size int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		if size > 0 {
			e.batchSize = size
		}
	}
}

// ConcurrentEvaluator splits large record lists into chunks evaluated in
// parallel. Small lists are evaluated inline.
type ConcurrentEvaluator struct {
	workerCount int
	batchSize   int
}

// NewConcurrentEvaluator creates a new concurrent evaluator
func NewConcurrentEvaluator(opts ...EvaluatorOption) *ConcurrentEvaluator {
	e := &ConcurrentEvaluator{
		workerCount: runtime.GOMAXPROCS(0),
		batchSize:   100,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Evaluate evaluates a single filter against all records
func (e *ConcurrentEvaluator) Evaluate(ctx context.Context, filter CompiledFilter, records []Record) ([]Record, error) {
	if len(records) == 0 {
		return []Record{}, nil
	}

	if len(records) < e.batchSize || !filter.IsThreadSafe() {
		return evaluateSequential(filter, records), nil
	}

	return e.evaluateConcurrent(ctx, filter, records)
}

func evaluateSequential(filter CompiledFilter, records []Record) []Record {
	matches := make([]Record, 0, len(records))
	for _, record := range records {
		if filter.Evaluate(record) {
			matches = append(matches, record)
		}
	}
	return matches
}

func (e *ConcurrentEvaluator) evaluateConcurrent(ctx context.Context, filter CompiledFilter, records []Record) ([]Record, error) {
	chunkSize := max(len(records)/e.workerCount, e.batchSize)
	chunks := (len(records) + chunkSize - 1) / chunkSize
	results := make([][]Record, chunks)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workerCount)

	for i := range chunks {
		start := i * chunkSize
		end := min(start+chunkSize, len(records))

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = evaluateSequential(filter, records[start:end])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	matches := make([]Record, 0, total)
	for _, r := range results {
		matches = append(matches, r...)
	}
	return matches, nil
}
