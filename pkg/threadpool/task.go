package threadpool

import (
	"github.com/pgvanniekerk/ezthreadpool/internal/threadpool"
)

// Task is a unit of work executed by a ThreadPool. It takes no arguments and returns
// nothing, so a task that needs input captures it in a closure and a task that produces
// output writes it somewhere the caller can read.
//
// # Responsibilities of a Task
//
// A Task should:
//   - Do its work and return
//   - Handle its own errors, for example by logging them or sending them on a channel
//   - Never panic, unless the pool was built with WithPanicHandler
//
// A panic escaping a task is outside the pool's contract. With the default configuration
// it terminates the process.
//
// # Thread Safety
//
// Tasks run concurrently on different workers. Any state shared between tasks must be
// protected with a mutex, atomics or channels.
//
// # Examples
//
// Collecting results:
//
//	var mu sync.Mutex
//	results := make([]int, 0)
//
//	for i := 0; i < 10; i++ {
//	    tp.Enqueue(func() {
//	        mu.Lock()
//	        defer mu.Unlock()
//	        results = append(results, i*i)
//	    })
//	}
//	tp.Drain()
//
// Reporting errors:
//
//	errs := make(chan error, 10)
//	tp.Enqueue(func() {
//	    if err := upload(file); err != nil {
//	        errs <- fmt.Errorf("upload %s: %w", file, err)
//	    }
//	})
type Task = threadpool.Task
