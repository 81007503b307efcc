package carousel

import "fmt"

// Transition describes the outcome of a selection request.
type Transition struct {
	From, To int
	Changed  bool
	// Wrapped is set when a single step crossed the loop seam, from the
	// last item to the first or back.
	Wrapped bool
	// Rejected is set when the target was out of range without looping.
	Rejected bool
}

// Selector owns the selection index.
type Selector struct {
	index int
	count int
	loop  bool
}

// Index returns the selected index.
func (s *Selector) Index() int { return s.index }

// Count returns the number of items.
func (s *Selector) Count() int { return s.count }

// Loop reports whether selection wraps around.
func (s *Selector) Loop() bool { return s.loop }

// SetLoop enables or disables wrapping.
func (s *Selector) SetLoop(loop bool) { s.loop = loop }

// SetCount updates the item count and clamps the index into range.
func (s *Selector) SetCount(n int) {
	if n < 0 {
		n = 0
	}
	s.count = n
	s.clamp()
}

// Set moves the register without any transition semantics. Used when the
// collection changes underneath the selection.
func (s *Selector) Set(i int) {
	s.index = i
	s.clamp()
}

func (s *Selector) clamp() {
	switch {
	case s.count == 0:
		s.index = 0
	case s.index >= s.count:
		s.index = s.count - 1
	case s.index < 0:
		s.index = 0
	}
}

// Request asks for target to become the selection.
func (s *Selector) Request(target int) Transition {
	t := Transition{From: s.index, To: s.index}
	if s.count == 0 {
		t.Rejected = true
		return t
	}
	if target == s.index {
		return t
	}
	if target < 0 || target >= s.count {
		if !s.loop {
			t.Rejected = true
			return t
		}
		from := s.index
		if target < 0 {
			target = s.count - 1
			t.Wrapped = from == 0
		} else {
			target = 0
			t.Wrapped = from == s.count-1
		}
		if target == from {
			t.Wrapped = false
			return t
		}
	}
	s.index = target
	t.To = target
	t.Changed = true
	return t
}

// Step is Request(index + dir).
func (s *Selector) Step(dir int) Transition {
	return s.Request(s.index + dir)
}

// ShowPrev reports whether a "previous" arrow leads anywhere.
func (s *Selector) ShowPrev() bool {
	return s.count > 1 && (s.index > 0 || s.loop)
}

// ShowNext reports whether a "next" arrow leads anywhere.
func (s *Selector) ShowNext() bool {
	return s.count > 1 && (s.index < s.count-1 || s.loop)
}

// Counter renders the "3 / 10" image counter, empty for no items.
func (s *Selector) Counter() string {
	if s.count == 0 {
		return ""
	}
	return fmt.Sprintf("%d / %d", s.index+1, s.count)
}
