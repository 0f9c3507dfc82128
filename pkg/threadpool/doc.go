// Package threadpool provides a fixed-size pool of worker goroutines fed from a shared,
// unbounded FIFO queue of tasks.
//
// # Overview
//
// A ThreadPool is created Stopped. Start spawns the configured number of workers and
// makes the pool Active. While Active, Enqueue adds tasks and idle workers pick them up
// in the order they were enqueued. Two operations end the pool's run:
//
//   - Stop is a hard stop. Workers finish the task they are running and exit, and any
//     tasks still queued are discarded.
//   - Drain is a soft stop. No new tasks are accepted, but the workers run the queue
//     until it is empty and then exit.
//
// Both block until all workers have returned and leave the pool Stopped. A Stopped
// pool can be started again and gets a fresh set of workers.
//
// Key features:
//   - Fixed worker count, set once with WithThreads (default 4)
//   - Unbounded FIFO queue; Enqueue never blocks on capacity
//   - Explicit lifecycle state visible through Status
//   - Boolean results for control and admission instead of panics
//   - Optional structured logging (log/slog) and Prometheus metrics
//
// # Usage
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//		"time"
//
//		"github.com/pgvanniekerk/ezthreadpool/pkg/threadpool"
//	)
//
//	func main() {
//		tp, err := threadpool.New(threadpool.WithThreads(4))
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer tp.Close()
//
//		if !tp.Start() {
//			log.Fatal("thread pool did not start")
//		}
//
//		for i := 0; i < 10; i++ {
//			tp.Enqueue(func() {
//				fmt.Printf("Job %d working for %d ms...\n", i, i*100)
//				time.Sleep(time.Duration(i) * 100 * time.Millisecond)
//				fmt.Printf("Job %d done.\n", i)
//			})
//		}
//
//		// Run the whole backlog, then stop.
//		tp.Drain()
//	}
//
// # Data loss on Close
//
// Close, like Stop, discards queued tasks. If every enqueued task must run, call Drain
// before the pool is closed:
//
//	defer tp.Close() // safety net; a no-op after Drain
//	...
//	tp.Drain()
//
// # Metrics
//
// NewMetrics builds Prometheus collectors for enqueued, rejected, executed, discarded
// and panicked tasks, idle workers, queue depth and pool state:
//
//	m, err := threadpool.NewMetrics(prometheus.DefaultRegisterer, "myapp", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	tp, err := threadpool.New(threadpool.WithMetrics(m))
package threadpool
