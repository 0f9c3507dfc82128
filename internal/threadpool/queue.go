package threadpool

import (
	"github.com/eapache/queue"
)

// taskQueue is an unbounded FIFO of tasks. It is not safe for concurrent use; the
// owning Pool guards every call with its mutex.
type taskQueue struct {
	q *queue.Queue
}

func newTaskQueue() *taskQueue {
	return &taskQueue{q: queue.New()}
}

func (tq *taskQueue) push(t Task) {
	tq.q.Add(t)
}

// pop removes and returns the front task. The caller must check len first.
func (tq *taskQueue) pop() Task {
	return tq.q.Remove().(Task)
}

func (tq *taskQueue) len() int {
	return tq.q.Length()
}

func (tq *taskQueue) empty() bool {
	return tq.q.Length() == 0
}

// reset drops every queued task and returns how many were dropped.
func (tq *taskQueue) reset() int {
	n := tq.q.Length()
	if n > 0 {
		tq.q = queue.New()
	}
	return n
}
