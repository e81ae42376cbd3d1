package sort

import (
	"github.com/ajroetker/go-freqsort/freq"
	"github.com/ajroetker/go-freqsort/freq/workerpool"
)

// DefaultSequentialThreshold is the range length below which the parallel
// sorters stop forking.
const DefaultSequentialThreshold = 64

type options struct {
	workers    int
	pool       *workerpool.Pool
	sequential bool
	threshold  int
	maxNumbers int
	logger     *freq.Logger
}

// Option configures a Sorter.
type Option func(*options)

// WithWorkers sets the size of the pool the Sorter creates.
// If n <= 0, freq.AvailableCPUs is used.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithPool makes the Sorter use a caller-owned pool. Close leaves it open.
func WithPool(pool *workerpool.Pool) Option {
	return func(o *options) {
		o.pool = pool
	}
}

// WithSequential disables the worker pool; every algorithm runs on the
// calling goroutine.
func WithSequential() Option {
	return func(o *options) {
		o.sequential = true
	}
}

// WithSequentialThreshold sets the smallest range length that is split into
// parallel tasks. Values <= 1 fork at every split.
func WithSequentialThreshold(n int) Option {
	return func(o *options) {
		o.threshold = n
	}
}

// WithMaxNumbers bounds the input size accepted by Run.
// A value <= 0 removes the bound.
func WithMaxNumbers(n int) Option {
	return func(o *options) {
		o.maxNumbers = n
	}
}

// WithLogger configures the logger. If nil is passed, logging is disabled.
func WithLogger(l *freq.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = freq.NoopLogger()
		}
		o.logger = l
	}
}
