package threadpool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestTaskQueue_FIFO verifies tasks come out in the order they went in.
func TestTaskQueue_FIFO(t *testing.T) {
	tq := newTaskQueue()
	require.True(t, tq.empty())

	var got []int
	for i := 0; i < 100; i++ {
		tq.push(func() { got = append(got, i) })
	}
	require.Equal(t, 100, tq.len())

	for !tq.empty() {
		tq.pop()()
	}

	require.Len(t, got, 100)
	for i, v := range got {
		require.Equal(t, i, v)
	}
}

// TestTaskQueue_Reset verifies reset empties the queue and reports the dropped count.
func TestTaskQueue_Reset(t *testing.T) {
	tq := newTaskQueue()
	require.Equal(t, 0, tq.reset())

	for i := 0; i < 7; i++ {
		tq.push(func() {})
	}
	require.Equal(t, 7, tq.reset())
	require.True(t, tq.empty())

	tq.push(func() {})
	require.Equal(t, 1, tq.len())
}
