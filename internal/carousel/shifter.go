package carousel

import (
	"math"
	"time"
)

// StripGeometry is answered by the host layout for the main strip.
// Zero or negative widths mean "not measured yet".
type StripGeometry interface {
	ViewportWidth() float64
	ItemWidth() float64
}

// Shifter turns a selection index into the strip's horizontal translation
// (listX). The strip is drawn at -listX. When Animated is false the host
// must jump to listX instead of easing toward it.
type Shifter struct {
	geo   StripGeometry
	sched *Scheduler

	vw, w  float64
	listX  float64
	fringe int
	count  int

	animated   bool
	layoutTask TaskID
	animTask   TaskID
	wrapTask   TaskID
}

// NewShifter creates a shifter reading geometry from geo.
func NewShifter(geo StripGeometry, sched *Scheduler) *Shifter {
	return &Shifter{geo: geo, sched: sched, animated: true}
}

// ListX returns the current translation offset.
func (s *Shifter) ListX() float64 { return s.listX }

// Animated reports whether changes to ListX should be eased.
func (s *Shifter) Animated() bool { return s.animated }

// Geometry returns the last measured viewport and item widths.
func (s *Shifter) Geometry() (viewport, item float64) { return s.vw, s.w }

// Wrapping reports whether a loop-seam reset is still pending.
func (s *Shifter) Wrapping() bool { return s.wrapTask != 0 }

// SetLayout updates fringe and item counts of the displayed sequence.
func (s *Shifter) SetLayout(fringe, count int) {
	s.fringe = fringe
	s.count = count
}

// CenteringOffset is half of the viewport width not covered by one item.
func (s *Shifter) CenteringOffset() float64 {
	return (s.vw - s.w) / 2
}

// Offset returns the translation that centers real item i.
func (s *Shifter) Offset(i int) float64 {
	return float64(i+s.fringe)*s.w - s.CenteringOffset()
}

// Center shifts to the selected index, or to 0 for an empty strip.
func (s *Shifter) Center(i int) {
	if s.count == 0 {
		s.listX = 0
		return
	}
	s.listX = s.Offset(i)
}

// Nearest returns the real index whose centered position is closest to the
// current offset. ok is false before the strip has been measured.
func (s *Shifter) Nearest() (i int, ok bool) {
	if s.w <= 0 {
		return 0, false
	}
	return int(math.Round((s.listX+s.CenteringOffset())/s.w)) - s.fringe, true
}

// BeginDrag switches to direct pointer tracking. Pending layout and
// recenter continuations are dropped; geometry is refreshed right away.
func (s *Shifter) BeginDrag() {
	if s.layoutTask != 0 {
		s.sched.Cancel(s.layoutTask)
		s.layoutTask = 0
		s.measure()
	}
	s.sched.Cancel(s.animTask)
	s.animTask = 0
	s.animated = false
}

// Drag follows the pointer: delta is the horizontal pointer displacement
// since the gesture started.
func (s *Shifter) Drag(i int, delta float64) {
	if s.count == 0 {
		return
	}
	s.listX = s.Offset(i) - delta
}

// EndDrag re-enables eased movement.
func (s *Shifter) EndDrag() {
	s.animated = true
}

// Wrap moves across the loop seam to real index to. The strip first jumps,
// without animation, onto the fringe copy showing the same pixels it shows
// now, keeping any partial drag. The jump stays in place for one full frame
// so the host draws it; the tick after that re-enables animation and the
// strip eases onto the real item. done runs after the reset.
func (s *Shifter) Wrap(to int, done func()) {
	if s.w <= 0 || s.count == 0 {
		s.Center(to)
		if done != nil {
			done()
		}
		return
	}
	s.sched.Cancel(s.animTask)
	s.animTask = 0
	s.sched.Cancel(s.wrapTask)
	s.animated = false

	c := s.CenteringOffset()
	dragShift := math.Mod(s.listX+c, s.w)
	var base int
	switch {
	case to == 0:
		base = to + s.fringe - 1
	case dragShift != 0:
		base = to + s.fringe
	default:
		base = to + s.fringe + 1
	}
	s.listX = float64(base)*s.w + dragShift - c

	s.wrapTask = s.sched.Defer(func() {
		// the jump stays on screen for the frame drawn after this tick
		s.wrapTask = s.sched.Defer(func() {
			s.wrapTask = 0
			s.animated = true
			s.Center(to)
			if done != nil {
				done()
			}
		})
	})
}

// Relayout re-reads geometry and recenters on the next tick. Requests made
// within one tick collapse into a single relayout.
func (s *Shifter) Relayout(selected func() int) {
	if s.layoutTask != 0 {
		return
	}
	s.layoutTask = s.sched.Defer(func() {
		s.layoutTask = 0
		s.applyLayout(selected)
	})
}

func (s *Shifter) applyLayout(selected func() int) {
	if s.wrapTask != 0 {
		// the seam reset recenters on its own; measure now, center after it
		s.measure()
		return
	}
	s.animated = false
	if s.count == 0 {
		s.listX = 0
	} else {
		if !s.measure() {
			// container not measured yet, retry on the next frame
			s.layoutTask = s.sched.RequestFrame(func(time.Time) {
				s.layoutTask = 0
				s.applyLayout(selected)
			})
			return
		}
		s.Center(selected())
	}
	s.sched.Cancel(s.animTask)
	s.animTask = s.sched.Defer(func() {
		s.animTask = 0
		s.animated = true
	})
}

func (s *Shifter) measure() bool {
	if s.geo == nil {
		return false
	}
	vw, w := s.geo.ViewportWidth(), s.geo.ItemWidth()
	if vw <= 0 || w <= 0 {
		return false
	}
	s.vw, s.w = vw, w
	return true
}

// Stop cancels every continuation the shifter owns.
func (s *Shifter) Stop() {
	s.sched.Cancel(s.layoutTask)
	s.sched.Cancel(s.animTask)
	s.sched.Cancel(s.wrapTask)
	s.layoutTask, s.animTask, s.wrapTask = 0, 0, 0
}

// CancelWrap drops a pending seam reset without running its completion.
// The caller is expected to recenter.
func (s *Shifter) CancelWrap() {
	if s.wrapTask == 0 {
		return
	}
	s.sched.Cancel(s.wrapTask)
	s.wrapTask = 0
	s.animated = true
}
