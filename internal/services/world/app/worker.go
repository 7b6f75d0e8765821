package server

import "sync"

// worker runs posted functions one at a time in posting order. Post never
// blocks, so two workers can post to each other freely.
type worker struct {
	mu      sync.Mutex
	queue   []func()
	wake    chan struct{}
	stopped bool
	done    chan struct{}
}

func newWorker() *worker {
	return &worker{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Post queues fn. It reports false once the worker has been stopped.
func (w *worker) Post(fn func()) bool {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return false
	}
	w.queue = append(w.queue, fn)
	w.mu.Unlock()
	w.signal()
	return true
}

// Stop queues final as the last function and refuses further posts. The
// run loop drains the queue and exits after final returns.
func (w *worker) Stop(final func()) {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	if final != nil {
		w.queue = append(w.queue, final)
	}
	w.stopped = true
	w.mu.Unlock()
	w.signal()
}

// Done is closed when the run loop exits.
func (w *worker) Done() <-chan struct{} { return w.done }

func (w *worker) signal() {
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *worker) run() {
	defer close(w.done)
	for {
		w.mu.Lock()
		batch := w.queue
		w.queue = nil
		stopped := w.stopped
		w.mu.Unlock()

		for _, fn := range batch {
			fn()
		}
		if len(batch) > 0 {
			continue
		}
		if stopped {
			return
		}
		<-w.wake
	}
}
