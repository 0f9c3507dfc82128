package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds the Prometheus collectors describing a single thread pool.
// Every method is safe to call on a nil *Recorder, in which case nothing is recorded.
type Recorder struct {

	// TasksEnqueued counts tasks accepted onto the queue.
	TasksEnqueued prometheus.Counter

	// TasksRejected counts Enqueue calls refused because the pool was not active.
	TasksRejected prometheus.Counter

	// TasksExecuted counts tasks that were popped and ran to completion.
	TasksExecuted prometheus.Counter

	// TasksDiscarded counts queued tasks thrown away by a hard stop.
	TasksDiscarded prometheus.Counter

	// TasksPanicked counts tasks whose panic was recovered by a panic handler.
	TasksPanicked prometheus.Counter

	// WorkersAvailable tracks the number of idle workers.
	WorkersAvailable prometheus.Gauge

	// QueueDepth tracks the number of tasks waiting on the queue.
	QueueDepth prometheus.Gauge

	// PoolStatus tracks the numeric lifecycle state of the pool.
	PoolStatus prometheus.Gauge
}

//region Implementation

// Collectors returns every collector held by r, in registration order.
func (r *Recorder) Collectors() []prometheus.Collector {
	if r == nil {
		return nil
	}
	return []prometheus.Collector{
		r.TasksEnqueued,
		r.TasksRejected,
		r.TasksExecuted,
		r.TasksDiscarded,
		r.TasksPanicked,
		r.WorkersAvailable,
		r.QueueDepth,
		r.PoolStatus,
	}
}

// Register registers all collectors with reg.
func (r *Recorder) Register(reg prometheus.Registerer) error {
	if r == nil {
		return nil
	}
	for _, c := range r.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Enqueued records a task accepted onto the queue.
func (r *Recorder) Enqueued() {
	if r == nil {
		return
	}
	r.TasksEnqueued.Inc()
	r.QueueDepth.Inc()
}

func (r *Recorder) Rejected() {
	if r == nil {
		return
	}
	r.TasksRejected.Inc()
}

// Dequeued records a task popped by a worker.
func (r *Recorder) Dequeued() {
	if r == nil {
		return
	}
	r.QueueDepth.Dec()
}

func (r *Recorder) Executed() {
	if r == nil {
		return
	}
	r.TasksExecuted.Inc()
}

func (r *Recorder) Panicked() {
	if r == nil {
		return
	}
	r.TasksPanicked.Inc()
}

// Discarded records n queued tasks dropped by a hard stop.
func (r *Recorder) Discarded(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.TasksDiscarded.Add(float64(n))
	r.QueueDepth.Sub(float64(n))
}

// WorkerIdle and WorkerBusy move the idle-worker gauge by one. Concurrent updates
// commute, so the gauge settles on the true idle count.
func (r *Recorder) WorkerIdle() {
	if r == nil {
		return
	}
	r.WorkersAvailable.Inc()
}

func (r *Recorder) WorkerBusy() {
	if r == nil {
		return
	}
	r.WorkersAvailable.Dec()
}

func (r *Recorder) Status(s int) {
	if r == nil {
		return
	}
	r.PoolStatus.Set(float64(s))
}

//endregion

//region Constructor

// New builds a Recorder whose metric names are prefixed with namespace and carry the
// given constant labels. The collectors are not registered; call Register for that.
func New(namespace string, labels prometheus.Labels) *Recorder {

	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "threadpool",
			Name:        name,
			Help:        help,
			ConstLabels: labels,
		})
	}

	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "threadpool",
			Name:        name,
			Help:        help,
			ConstLabels: labels,
		})
	}

	return &Recorder{
		TasksEnqueued:    counter("tasks_enqueued_total", "Total number of tasks accepted onto the queue"),
		TasksRejected:    counter("tasks_rejected_total", "Total number of tasks rejected because the pool was not active"),
		TasksExecuted:    counter("tasks_executed_total", "Total number of tasks executed by workers"),
		TasksDiscarded:   counter("tasks_discarded_total", "Total number of queued tasks discarded by a hard stop"),
		TasksPanicked:    counter("tasks_panicked_total", "Total number of task panics recovered by a panic handler"),
		WorkersAvailable: gauge("workers_available", "Number of idle workers"),
		QueueDepth:       gauge("queue_depth", "Number of tasks waiting on the queue"),
		PoolStatus:       gauge("pool_status", "Lifecycle state of the pool (0=stopped 1=starting 2=active 3=draining 4=stopping)"),
	}
}

//endregion
