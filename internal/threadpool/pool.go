package threadpool

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/pgvanniekerk/ezthreadpool/internal/metrics"
	"golang.org/x/sync/errgroup"
)

// Task is a unit of work executed by a Pool. It takes no arguments and returns nothing.
type Task func()

// Pool runs tasks on a fixed number of worker goroutines fed from one shared FIFO queue.
// Its lifecycle is Stopped -> Starting -> Active -> (Draining | Stopping) -> Stopped and
// is driven by Start, Stop and Drain. Workers read the state under the same mutex that
// guards the queue, so a worker's view of "queue empty and pool active" is always consistent.
type Pool struct {

	// threads is the number of workers spawned by each Start. It never changes.
	threads int

	// available counts workers that are currently idle. It is advisory only and is
	// never used to decide admission or wake-ups.
	available atomic.Int32

	// mu guards state and queue. It is never held while a task runs.
	mu *sync.Mutex

	// qNotEmpty is signalled when a task is enqueued and broadcast when the state
	// leaves Active, waking idle workers so they can re-check the state.
	qNotEmpty *sync.Cond

	// state is the lifecycle state. It is written only while holding mu.
	state Status

	// status mirrors state so that Status can be read without taking mu.
	status atomic.Int32

	// queue holds pending tasks in enqueue order.
	queue *taskQueue

	// controlMu serializes Start, Stop and Drain, and guards workers.
	controlMu *sync.Mutex

	// workers is the group of goroutines spawned by the last Start. Wait joins them.
	workers *errgroup.Group

	logger       *slog.Logger
	metrics      *metrics.Recorder
	panicHandler func(any)
}

// Stats is a point-in-time snapshot of a Pool.
type Stats struct {
	Threads   int
	Available int
	Queued    int
	Status    Status
}

//region Implementation

// Start spawns the workers and moves the pool to Active.
// It returns false and does nothing unless the pool is Stopped. A pool that was
// previously stopped or drained gets a fresh set of workers.
func (p *Pool) Start() bool {
	p.controlMu.Lock()
	defer p.controlMu.Unlock()

	p.mu.Lock()
	if p.state != Stopped {
		p.mu.Unlock()
		return false
	}
	p.setState(Starting)
	p.mu.Unlock()

	p.logger.Info("starting thread pool")

	workers := &errgroup.Group{}
	for id := 0; id < p.threads; id++ {
		workers.Go(func() error {
			p.work(id)
			return nil
		})
	}
	p.workers = workers

	p.mu.Lock()
	p.setState(Active)
	p.mu.Unlock()

	return true
}

// Enqueue appends task to the tail of the queue and wakes one idle worker.
// It returns false, without retaining the task, if the pool is not Active or task is nil.
func (p *Pool) Enqueue(task Task) bool {
	if task == nil {
		p.metrics.Rejected()
		return false
	}

	p.mu.Lock()
	if p.state != Active {
		p.mu.Unlock()
		p.metrics.Rejected()
		return false
	}
	p.queue.push(task)
	p.qNotEmpty.Signal()
	p.mu.Unlock()

	p.metrics.Enqueued()
	return true
}

// Stop performs a hard stop. Idle workers exit at once and busy workers exit after
// their current task. Tasks still queued are discarded. Stop blocks until every worker
// has returned, then leaves the pool Stopped. It is a no-op unless the pool is Active.
func (p *Pool) Stop() {
	p.controlMu.Lock()
	defer p.controlMu.Unlock()

	p.mu.Lock()
	if p.state != Active {
		p.mu.Unlock()
		return
	}
	p.setState(Stopping)
	p.qNotEmpty.Broadcast()
	p.mu.Unlock()

	p.logger.Info("stopping thread pool")
	p.logger.Info("waiting for workers to finish")

	p.join()

	p.mu.Lock()
	discarded := p.queue.reset()
	p.setState(Stopped)
	p.mu.Unlock()

	p.metrics.Discarded(discarded)
	p.logger.Info("thread pool stopped", "discarded", discarded)
}

// Drain stops admission and lets the workers run the remaining backlog to completion.
// It blocks until the queue is empty and every worker has returned, then leaves the
// pool Stopped. It is a no-op unless the pool is Active.
func (p *Pool) Drain() {
	p.controlMu.Lock()
	defer p.controlMu.Unlock()

	p.mu.Lock()
	if p.state != Active {
		p.mu.Unlock()
		return
	}
	p.setState(Draining)
	p.qNotEmpty.Broadcast()
	p.mu.Unlock()

	p.logger.Info("draining thread pool queue")

	p.join()

	p.mu.Lock()
	p.setState(Stopped)
	p.mu.Unlock()

	p.logger.Info("thread pool drained")
}

// Close hard-stops an Active pool, discarding anything still queued. Call Drain first
// if the backlog must run. Close is safe to call more than once and always returns nil.
func (p *Pool) Close() error {
	p.Stop()
	return nil
}

// NumThreads returns the configured number of workers.
func (p *Pool) NumThreads() int {
	return p.threads
}

// AvailableThreads returns how many workers are idle right now.
func (p *Pool) AvailableThreads() int {
	return int(p.available.Load())
}

// NumTasks returns the number of tasks waiting on the queue.
func (p *Pool) NumTasks() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queue.len()
}

// Status returns the current lifecycle state.
func (p *Pool) Status() Status {
	return Status(p.status.Load())
}

// Stats returns a snapshot of the pool's counters.
func (p *Pool) Stats() Stats {
	return Stats{
		Threads:   p.NumThreads(),
		Available: p.AvailableThreads(),
		Queued:    p.NumTasks(),
		Status:    p.Status(),
	}
}

//endregion

//region Helpers

// setState moves the pool to next. The caller must hold mu. An illegal transition is a
// bug in the pool and panics.
func (p *Pool) setState(next Status) {
	if !p.state.CanTransition(next) {
		panic(fmt.Errorf("threadpool: illegal transition %s -> %s", p.state, next))
	}
	p.state = next
	p.status.Store(int32(next))
	p.metrics.Status(int(next))
}

// join waits for every worker spawned by the last Start. The caller must hold controlMu.
func (p *Pool) join() {
	if p.workers == nil {
		return
	}
	_ = p.workers.Wait()
	p.workers = nil
}

//endregion
