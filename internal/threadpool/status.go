package threadpool

// Status is the lifecycle state of a Pool.
type Status int32

const (
	// Stopped is the initial and final state. No workers are running.
	Stopped Status = iota

	// Starting is held while Start spawns workers. Enqueue is rejected.
	Starting

	// Active accepts tasks and runs them.
	Active

	// Draining rejects new tasks while workers finish the backlog.
	Draining

	// Stopping rejects new tasks and abandons the backlog once running tasks finish.
	Stopping
)

func (s Status) String() string {
	switch s {
	case Stopped:
		return "STOPPED"
	case Starting:
		return "STARTING"
	case Active:
		return "ACTIVE"
	case Draining:
		return "DRAINING"
	case Stopping:
		return "STOPPING"
	default:
		return "UNKNOWN"
	}
}

// transitions lists, for each state, the states it may move to next.
var transitions = map[Status][]Status{
	Stopped:  {Starting},
	Starting: {Active},
	Active:   {Draining, Stopping},
	Draining: {Stopped},
	Stopping: {Stopped},
}

// CanTransition reports whether moving from s to next is a legal lifecycle step.
func (s Status) CanTransition(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// accepting reports whether workers should keep waiting on an empty queue in state s.
func (s Status) accepting() bool {
	return s == Starting || s == Active
}
