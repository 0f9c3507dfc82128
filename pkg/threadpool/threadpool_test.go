package threadpool_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pgvanniekerk/ezthreadpool/pkg/threadpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// TestThreadPool_TestSuite executes the test suite for the public ThreadPool API.
func TestThreadPool_TestSuite(t *testing.T) {
	suite.Run(t, new(ThreadPool_TestSuite))
}

// ThreadPool_TestSuite exercises a ThreadPool with metrics attached.
type ThreadPool_TestSuite struct {
	suite.Suite

	reg *prometheus.Registry
	m   *threadpool.Metrics
	tp  threadpool.ThreadPool
}

// SetupTest builds a 3-worker pool recording into a fresh registry.
func (s *ThreadPool_TestSuite) SetupTest() {
	s.reg = prometheus.NewRegistry()

	m, err := threadpool.NewMetrics(s.reg, "test", prometheus.Labels{"pool": "suite"})
	s.Require().NoError(err)
	s.m = m

	tp, err := threadpool.New(threadpool.WithThreads(3), threadpool.WithMetrics(m))
	s.Require().NoError(err)
	s.tp = tp
}

// TearDownTest closes the pool.
func (s *ThreadPool_TestSuite) TearDownTest() {
	s.Require().NoError(s.tp.Close())
}

// TestThreadPool_New_Invalid verifies the constructor error is exposed.
func (s *ThreadPool_TestSuite) TestThreadPool_New_Invalid() {
	tp, err := threadpool.New(threadpool.WithThreads(0))
	s.Require().True(errors.Is(err, threadpool.ErrInvalidThreadCount))
	s.Require().Nil(tp)
}

// TestThreadPool_Drain_Metrics verifies counters after a full drain.
func (s *ThreadPool_TestSuite) TestThreadPool_Drain_Metrics() {
	s.Require().False(s.tp.Enqueue(func() {}))
	s.Require().True(s.tp.Start())
	s.Require().Equal(threadpool.Active, s.tp.Status())

	var ran atomic.Int32
	for i := 0; i < 30; i++ {
		s.Require().True(s.tp.Enqueue(func() { ran.Add(1) }))
	}
	s.tp.Drain()

	s.Require().EqualValues(30, ran.Load())
	s.Require().Equal(30.0, testutil.ToFloat64(s.m.TasksEnqueued))
	s.Require().Equal(30.0, testutil.ToFloat64(s.m.TasksExecuted))
	s.Require().Equal(1.0, testutil.ToFloat64(s.m.TasksRejected))
	s.Require().Equal(0.0, testutil.ToFloat64(s.m.QueueDepth))
	s.Require().Equal(0.0, testutil.ToFloat64(s.m.WorkersAvailable))
	s.Require().Equal(float64(threadpool.Stopped), testutil.ToFloat64(s.m.PoolStatus))
}

// TestThreadPool_Stop_Metrics verifies discarded tasks are counted by a hard stop.
func (s *ThreadPool_TestSuite) TestThreadPool_Stop_Metrics() {
	s.Require().True(s.tp.Start())

	gate := make(chan struct{})
	busy := make(chan struct{}, 3)
	for i := 0; i < 10; i++ {
		s.Require().True(s.tp.Enqueue(func() {
			busy <- struct{}{}
			<-gate
		}))
	}
	for i := 0; i < 3; i++ {
		<-busy
	}

	done := make(chan struct{})
	go func() {
		s.tp.Stop()
		close(done)
	}()
	s.Require().Eventually(func() bool { return s.tp.Status() == threadpool.Stopping }, 5*time.Second, time.Millisecond)
	close(gate)
	<-done

	stats := s.tp.Stats()
	s.Require().Equal(threadpool.Stats{Threads: 3, Available: 0, Queued: 0, Status: threadpool.Stopped}, stats)
	s.Require().Equal(7.0, testutil.ToFloat64(s.m.TasksDiscarded))
	s.Require().Equal(3.0, testutil.ToFloat64(s.m.TasksExecuted))
}

// TestThreadPool_PanicHandler verifies panics are recovered through the public option.
func (s *ThreadPool_TestSuite) TestThreadPool_PanicHandler() {
	mu := &sync.Mutex{}
	var recovered []any

	tp, err := threadpool.New(
		threadpool.WithThreads(2),
		threadpool.WithMetrics(s.m),
		threadpool.WithPanicHandler(func(r any) {
			mu.Lock()
			defer mu.Unlock()
			recovered = append(recovered, r)
		}),
	)
	s.Require().NoError(err)
	defer tp.Close()

	s.Require().True(tp.Start())
	for i := 0; i < 4; i++ {
		tp.Enqueue(func() { panic(i) })
	}
	tp.Drain()

	s.Require().ElementsMatch([]any{0, 1, 2, 3}, recovered)
	s.Require().Equal(4.0, testutil.ToFloat64(s.m.TasksPanicked))
}

// TestNewMetrics_NilRegisterer verifies collectors can be created without registering.
func TestNewMetrics_NilRegisterer(t *testing.T) {
	m, err := threadpool.NewMetrics(nil, "x", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Collectors()) != 8 {
		t.Fatalf("expected 8 collectors, got %d", len(m.Collectors()))
	}
}

// TestNewMetrics_DuplicateRegistration verifies a registration conflict is reported.
func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := threadpool.NewMetrics(reg, "dup", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := threadpool.NewMetrics(reg, "dup", nil); err == nil {
		t.Fatal("expected duplicate registration error")
	}
}
