package check

import (
	"context"
	"fmt"

	"github.com/locqa/locqa/internal/domain"
)

// Runner executes task for every index in [0, n). Implementations may run
// tasks concurrently but must return only after all started tasks finished.
// A non-nil error means the batch is incomplete.
type Runner interface {
	Run(ctx context.Context, n int, task func(i int)) error
}

// SequentialRunner runs tasks one after another on the calling goroutine.
type SequentialRunner struct{}

func (SequentialRunner) Run(ctx context.Context, n int, task func(i int)) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		task(i)
	}
	return nil
}

// Aggregator evaluates a whole batch and assembles the report.
type Aggregator struct {
	evaluator *Evaluator
	runner    Runner
}

// AggregatorOption configures an Aggregator.
type AggregatorOption func(*Aggregator)

// WithRunner sets how records are scheduled. Defaults to SequentialRunner.
func WithRunner(r Runner) AggregatorOption {
	return func(a *Aggregator) {
		if r != nil {
			a.runner = r
		}
	}
}

func NewAggregator(evaluator *Evaluator, opts ...AggregatorOption) *Aggregator {
	if evaluator == nil {
		evaluator = NewEvaluator()
	}
	a := &Aggregator{evaluator: evaluator, runner: SequentialRunner{}}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run validates the inputs, evaluates every record and returns the report.
// Findings are ordered by batch position, then checker order. Any error,
// including cancellation, yields no report.
func (a *Aggregator) Run(ctx context.Context, records []domain.TranslationRecord, rules *domain.RuleSet) (*domain.Report, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	for i, rec := range records {
		if err := rec.Validate(i); err != nil {
			return nil, err
		}
	}

	perRecord := make([][]domain.Finding, len(records))
	err := a.runner.Run(ctx, len(records), func(i int) {
		perRecord[i] = a.evaluator.Evaluate(records[i], rules)
	})
	if err != nil {
		return nil, fmt.Errorf("evaluating records: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("evaluating records: %w", err)
	}

	var all []domain.Finding
	for _, fs := range perRecord {
		all = append(all, fs...)
	}
	return domain.NewReport(all), nil
}
