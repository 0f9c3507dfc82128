package threadpool

// work is the loop run by every worker goroutine. A worker waits while the queue is
// empty and the pool is Starting or Active. Once woken it exits on Stopping, exits on
// Draining if nothing is left, and otherwise pops one task and runs it outside the lock.
func (p *Pool) work(id int) {
	for {
		p.markIdle()

		p.mu.Lock()
		for p.queue.empty() && p.state.accepting() {
			p.qNotEmpty.Wait()
		}

		if p.state == Stopping || p.state == Stopped {
			p.markBusy()
			p.mu.Unlock()
			p.logger.Debug("worker exiting", "worker", id, "reason", "stop")
			return
		}

		if p.queue.empty() && p.state == Draining {
			p.markBusy()
			p.mu.Unlock()
			p.logger.Debug("worker exiting", "worker", id, "reason", "drained")
			return
		}

		p.markBusy()
		task := p.queue.pop()
		p.mu.Unlock()

		p.metrics.Dequeued()
		p.run(task)
	}
}

// run executes task. When a panic handler is configured a panicking task is recovered
// and reported instead of unwinding the worker.
func (p *Pool) run(task Task) {
	if p.panicHandler != nil {
		defer func() {
			if r := recover(); r != nil {
				p.metrics.Panicked()
				p.panicHandler(r)
			}
		}()
	}

	task()
	p.metrics.Executed()
}

func (p *Pool) markIdle() {
	p.available.Add(1)
	p.metrics.WorkerIdle()
}

func (p *Pool) markBusy() {
	p.available.Add(-1)
	p.metrics.WorkerBusy()
}
