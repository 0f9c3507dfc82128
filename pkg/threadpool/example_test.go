package threadpool_test

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pgvanniekerk/ezthreadpool/pkg/threadpool"
)

func Example() {
	tp, err := threadpool.New(threadpool.WithThreads(4))
	if err != nil {
		fmt.Println(err)
		return
	}
	defer tp.Close()

	tp.Start()

	mu := &sync.Mutex{}
	var done []int
	for i := 0; i < 5; i++ {
		tp.Enqueue(func() {
			mu.Lock()
			defer mu.Unlock()
			done = append(done, i)
		})
	}

	tp.Drain()
	sort.Ints(done)

	fmt.Println(done)
	fmt.Println(tp.Status())
	fmt.Println(tp.Enqueue(func() {}))
	// Output:
	// [0 1 2 3 4]
	// STOPPED
	// false
}

func ExampleThreadPool_Stop() {
	tp, _ := threadpool.New(threadpool.WithThreads(1))
	defer tp.Close()

	fmt.Println(tp.Enqueue(func() {}))
	fmt.Println(tp.Start(), tp.Start())

	tp.Stop()
	fmt.Println(tp.Status(), tp.NumTasks())
	// Output:
	// false
	// true false
	// STOPPED 0
}
