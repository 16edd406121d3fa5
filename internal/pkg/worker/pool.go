// Package worker provides a bounded goroutine pool for record evaluation.
package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/locqa/locqa/internal/pkg/logger"
)

// ErrTaskPanicked is returned by Run when at least one task panicked.
var ErrTaskPanicked = errors.New("worker task panicked")

// Pool wraps ants.Pool with context-aware batch execution.
type Pool struct {
	pool *ants.Pool
	name string
}

// New creates a pool of size goroutines. size must be positive.
func New(name string, size int) (*Pool, error) {
	if size <= 0 {
		return nil, fmt.Errorf("worker pool %q: size must be > 0 (got %d)", name, size)
	}
	p, err := ants.NewPool(size,
		ants.WithNonblocking(false),
		ants.WithExpiryDuration(10*time.Second),
		ants.WithPanicHandler(func(v interface{}) {
			logger.Error("Worker panic escaped task wrapper",
				zap.String("pool", name),
				zap.Any("panic", v),
			)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("creating worker pool %q: %w", name, err)
	}
	return &Pool{pool: p, name: name}, nil
}

// Run submits task for every index in [0, n) and waits for all submitted
// tasks. It returns ctx.Err() if the context is cancelled before every task
// ran, and ErrTaskPanicked if any task panicked.
func (p *Pool) Run(ctx context.Context, n int, task func(i int)) error {
	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		errOnce.Do(func() { firstErr = err })
	}

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			fail(err)
			break
		}

		i := i
		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Worker task panicked",
						zap.String("pool", p.name),
						zap.Int("index", i),
						zap.Any("panic", r),
						zap.Stack("stack"),
					)
					fail(fmt.Errorf("%w: index %d: %v", ErrTaskPanicked, i, r))
				}
			}()

			// Skip work queued before a cancellation.
			if ctx.Err() != nil {
				logger.Debug("Task skipped: context cancelled",
					zap.String("pool", p.name),
					zap.Int("index", i),
				)
				return
			}
			task(i)
		})
		if err != nil {
			wg.Done()
			fail(fmt.Errorf("submitting task %d to pool %q: %w", i, p.name, err))
			break
		}
	}

	wg.Wait()
	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}

// Release shuts the pool down, waiting at most timeout for running tasks.
func (p *Pool) Release(timeout time.Duration) {
	if err := p.pool.ReleaseTimeout(timeout); err != nil {
		logger.Warn("Worker pool shutdown timeout",
			zap.String("pool", p.name),
			zap.Error(err),
		)
	}
}

// Metrics returns pool metrics for diagnostics.
func (p *Pool) Metrics() map[string]int {
	return map[string]int{
		"running": p.pool.Running(),
		"free":    p.pool.Free(),
		"cap":     p.pool.Cap(),
	}
}
