package threadpool

import (
	"log/slog"

	"github.com/pgvanniekerk/ezthreadpool/internal/metrics"
	"github.com/pgvanniekerk/ezthreadpool/internal/threadpool"
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultThreads is the worker count used when WithThreads is not supplied.
const DefaultThreads = threadpool.DefaultThreads

// ErrInvalidThreadCount is returned by New when the worker count is 0 or negative.
var ErrInvalidThreadCount = threadpool.ErrInvalidThreadCount

// Option customizes a ThreadPool created by New.
type Option = threadpool.Option

// Metrics is a set of Prometheus collectors recording pool activity.
type Metrics = metrics.Recorder

// WithThreads sets the fixed number of worker goroutines.
func WithThreads(threads int) Option {
	return threadpool.WithThreads(threads)
}

// WithLogger routes lifecycle events (start, stop, drain) to logger.
func WithLogger(logger *slog.Logger) Option {
	return threadpool.WithLogger(logger)
}

// WithMetrics records pool activity into m. See NewMetrics.
func WithMetrics(m *Metrics) Option {
	return threadpool.WithMetrics(m)
}

// WithPanicHandler recovers task panics and passes the recovered value to handler.
// Without it a panicking task crashes the process, so tasks must handle their own errors.
func WithPanicHandler(handler func(any)) Option {
	return threadpool.WithPanicHandler(handler)
}

// NewMetrics creates the pool collectors under namespace and registers them with reg.
// A nil reg skips registration.
func NewMetrics(reg prometheus.Registerer, namespace string, labels prometheus.Labels) (*Metrics, error) {
	m := metrics.New(namespace, labels)
	if reg == nil {
		return m, nil
	}
	if err := m.Register(reg); err != nil {
		return nil, err
	}
	return m, nil
}

// New creates a ThreadPool in the Stopped state. Call Start before enqueueing tasks.
//
// Arguments:
//   - opts: WithThreads (default DefaultThreads), WithLogger, WithMetrics, WithPanicHandler.
//
// Returns:
//   - ThreadPool: the new pool.
//   - error: wraps ErrInvalidThreadCount if the worker count is not positive.
//
// Usage Example:
//
//	tp, err := threadpool.New(threadpool.WithThreads(4))
//	if err != nil {
//	    log.Fatalf("Failed to create ThreadPool: %v", err)
//	}
//	defer tp.Close()
//
//	tp.Start()
//	for i := 0; i < 10; i++ {
//	    tp.Enqueue(func() {
//	        fmt.Printf("Processing task: %d\n", i)
//	    })
//	}
//
//	// Run everything that was queued, then stop.
//	tp.Drain()
func New(opts ...Option) (ThreadPool, error) {
	tp, err := threadpool.New(opts...)
	if err != nil {
		return nil, err
	}
	return tp, nil
}
