package carousel

import (
	"math"
	"time"
)

// BaseScrollTime is the shortest smooth-scroll duration.
const BaseScrollTime = 200 * time.Millisecond

// ScrollDuration returns how long a smooth scroll over delta pixels takes.
// Duration grows with log10 of the distance and never drops below base.
func ScrollDuration(delta float64, base time.Duration) time.Duration {
	if delta == 0 {
		return base
	}
	d := time.Duration((math.Log10(math.Abs(delta)) - 1.1) * float64(base))
	if d < base {
		return base
	}
	return d
}

// Animator emulates smooth scrolling on one scroll axis. Starting a new
// animation cancels the one in flight, so two animations never race on the
// same axis.
type Animator struct {
	sched *Scheduler
	base  time.Duration
	task  TaskID
	gen   uint64
}

// Handle identifies one animation started by an Animator.
type Handle struct {
	a   *Animator
	gen uint64
}

// Active reports whether the animation is still running.
func (h Handle) Active() bool {
	return h.a != nil && h.a.gen == h.gen && h.a.task != 0
}

// NewAnimator creates an animator driven by sched. A zero base uses BaseScrollTime.
func NewAnimator(sched *Scheduler, base time.Duration) *Animator {
	if base <= 0 {
		base = BaseScrollTime
	}
	return &Animator{sched: sched, base: base}
}

// Start scrolls by delta, calling apply with each frame's step.
func (a *Animator) Start(delta float64, apply func(step float64)) Handle {
	a.Cancel()
	h := Handle{a: a, gen: a.gen}
	total := math.Abs(delta)
	if total == 0 || apply == nil {
		return h
	}
	sign := math.Copysign(1, delta)
	dur := ScrollDuration(total, a.base)
	start := a.sched.Now()
	gen := a.gen
	var applied float64

	var frame func(now time.Time)
	frame = func(now time.Time) {
		if gen != a.gen {
			return
		}
		a.task = 0
		elapsed := now.Sub(start)
		suggested := math.Ceil(float64(elapsed) / float64(dur) * total)
		step := math.Min(suggested-applied, total-applied)
		if step > 0 {
			applied += step
			apply(sign * step)
		}
		if applied < total && gen == a.gen {
			a.task = a.sched.RequestFrame(frame)
		}
	}
	a.task = a.sched.RequestFrame(frame)
	return h
}

// Cancel stops the running animation, if any.
func (a *Animator) Cancel() {
	a.sched.Cancel(a.task)
	a.task = 0
	a.gen++
}

// Running reports whether an animation is in flight.
func (a *Animator) Running() bool {
	return a.task != 0
}
