package carousel

import "time"

// TaskID names a task queued on a Scheduler. The zero value never names a task.
type TaskID uint64

type task struct {
	id    TaskID
	frame func(now time.Time)
	fn    func()
}

// Scheduler is a cooperative frame queue. Nothing runs on its own: the host
// calls Tick once per frame (ebiten's Update) and every task queued before
// that call runs in order. Tasks queued while a tick is running land on the
// next tick, which is what "next animation frame" and "deferred tick" mean
// for the engine.
type Scheduler struct {
	clock   func() time.Time
	nextID  TaskID
	queue   []task
	dropped map[TaskID]bool
	ticking bool
	closed  bool
}

// NewScheduler creates a scheduler reading time from clock (time.Now when nil).
func NewScheduler(clock func() time.Time) *Scheduler {
	if clock == nil {
		clock = time.Now
	}
	return &Scheduler{clock: clock}
}

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Time {
	return s.clock()
}

// RequestFrame queues fn for the next tick; fn receives the tick time.
func (s *Scheduler) RequestFrame(fn func(now time.Time)) TaskID {
	return s.enqueue(task{frame: fn})
}

// Defer queues fn for the next tick.
func (s *Scheduler) Defer(fn func()) TaskID {
	return s.enqueue(task{fn: fn})
}

func (s *Scheduler) enqueue(t task) TaskID {
	if s.closed {
		return 0
	}
	s.nextID++
	t.id = s.nextID
	s.queue = append(s.queue, t)
	return t.id
}

// Cancel drops a pending task. Unknown or finished IDs are ignored.
func (s *Scheduler) Cancel(id TaskID) {
	if id == 0 {
		return
	}
	for i := range s.queue {
		if s.queue[i].id == id {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			return
		}
	}
	if s.ticking {
		if s.dropped == nil {
			s.dropped = make(map[TaskID]bool)
		}
		s.dropped[id] = true
	}
}

// Tick runs every task that was pending when it was called.
func (s *Scheduler) Tick() {
	if s.closed || len(s.queue) == 0 {
		return
	}
	now := s.clock()
	batch := s.queue
	s.queue = nil
	s.ticking = true
	for _, t := range batch {
		if s.closed {
			break
		}
		if s.dropped[t.id] {
			continue
		}
		if t.frame != nil {
			t.frame(now)
		} else if t.fn != nil {
			t.fn()
		}
	}
	s.ticking = false
	s.dropped = nil
}

// Pending returns the number of queued tasks.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// Close drops all pending tasks; later requests are ignored.
func (s *Scheduler) Close() {
	s.closed = true
	s.queue = nil
	s.dropped = nil
}
