package threadpool

import (
	"github.com/pgvanniekerk/ezthreadpool/internal/threadpool"
)

// Status is the lifecycle state of a ThreadPool.
type Status = threadpool.Status

// Stats is a point-in-time snapshot of a ThreadPool.
type Stats = threadpool.Stats

const (
	Stopped  = threadpool.Stopped
	Starting = threadpool.Starting
	Active   = threadpool.Active
	Draining = threadpool.Draining
	Stopping = threadpool.Stopping
)

// ThreadPool defines a fixed-size pool of worker goroutines sharing one unbounded FIFO
// queue of tasks.
//
// A ThreadPool moves through these states:
//
//	Stopped --Start--> Starting --> Active --Drain--> Draining --> Stopped
//	                                       --Stop---> Stopping --> Stopped
//
// Control operations (Start, Stop, Drain, Close) are serialized internally and may be
// called from any goroutine. Enqueue and the accessors are safe for concurrent use.
type ThreadPool interface {

	// Start spawns the workers and moves the pool to Active. It returns true on success.
	// It returns false, and changes nothing, if the pool is not Stopped. Start may be
	// called again after Stop or Drain; a fresh set of workers is created.
	Start() bool

	// Enqueue appends task to the queue and returns true. It returns false when the pool
	// is not Active or task is nil; the task is not retained and the caller decides
	// whether to retry, drop or report it.
	//
	// An accepted task is run at most once by exactly one worker. Tasks are dequeued in
	// FIFO order, but tasks on different workers may finish in any order.
	Enqueue(task Task) bool

	// Stop is the hard stop. New tasks are refused, idle workers exit immediately and busy
	// workers exit after their current task. Anything still queued is discarded. Stop
	// blocks until every worker has returned. It is a no-op unless the pool is Active.
	Stop()

	// Drain is the soft stop. New tasks are refused but every queued task still runs.
	// Drain blocks until the queue is empty and every worker has returned. It is a no-op
	// unless the pool is Active.
	Drain()

	// Close performs the same hard stop as Stop and always returns nil. It is intended
	// for defer so that an abandoned pool never leaks goroutines:
	//
	//	tp, err := threadpool.New()
	//	if err != nil {
	//	    return err
	//	}
	//	defer tp.Close()
	//
	// Queued work is lost unless Drain was called first.
	Close() error

	// NumThreads returns the configured worker count.
	NumThreads() int

	// AvailableThreads returns the number of idle workers. The value is a best-effort
	// snapshot.
	AvailableThreads() int

	// NumTasks returns the number of queued tasks. The value is stale as soon as it is
	// returned if other goroutines are enqueueing or workers are running.
	NumTasks() int

	// Status returns the current lifecycle state.
	Status() Status

	// Stats returns NumThreads, AvailableThreads, NumTasks and Status in one value.
	Stats() Stats
}
