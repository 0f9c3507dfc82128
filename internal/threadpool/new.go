package threadpool

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/pgvanniekerk/ezthreadpool/internal/metrics"
)

// DefaultThreads is the worker count used when WithThreads is not supplied.
const DefaultThreads = 4

// ErrInvalidThreadCount is returned by New when the requested worker count is not positive.
var ErrInvalidThreadCount = errors.New("thread count must be greater than 0")

// options represents configuration for a Pool, including worker count, logging, metrics
// and panic handling.
type options struct {
	threads      int
	logger       *slog.Logger
	metrics      *metrics.Recorder
	panicHandler func(any)
}

// Option defines a functional option for customizing a Pool by modifying options.
type Option func(*options)

// WithThreads sets the fixed number of worker goroutines.
func WithThreads(threads int) Option {
	return func(o *options) {
		o.threads = threads
	}
}

// WithLogger sets the logger used for lifecycle events. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics attaches a metrics recorder to the pool.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(o *options) {
		o.metrics = rec
	}
}

// WithPanicHandler recovers panics raised by tasks and hands the recovered value to
// handler. The worker that ran the task stays alive. Without this option a task panic
// terminates the process.
func WithPanicHandler(handler func(any)) Option {
	return func(o *options) {
		o.panicHandler = handler
	}
}

// New creates a Pool in the Stopped state with an empty queue and no workers.
//
// Parameters:
//   - opts: functional options. The worker count defaults to DefaultThreads and the
//     logger discards everything unless WithLogger is supplied.
//
// Returns:
//   - A pointer to the new Pool.
//   - ErrInvalidThreadCount (wrapped) if the configured worker count is 0 or negative.
func New(opts ...Option) (*Pool, error) {

	o := &options{
		threads: DefaultThreads,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for idx := range opts {
		opts[idx](o)
	}

	if o.threads <= 0 {
		return nil, fmt.Errorf("threadpool: %d: %w", o.threads, ErrInvalidThreadCount)
	}

	mu := &sync.Mutex{}

	p := &Pool{
		threads:      o.threads,
		mu:           mu,
		qNotEmpty:    sync.NewCond(mu),
		queue:        newTaskQueue(),
		controlMu:    &sync.Mutex{},
		logger:       o.logger.With("threads", o.threads),
		metrics:      o.metrics,
		panicHandler: o.panicHandler,
	}
	p.metrics.Status(int(Stopped))

	return p, nil
}
