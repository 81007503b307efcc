package ui

import "math"

// ScrollState tracks one scroll axis with smooth animation toward a target.
type ScrollState struct {
	Pos    float64
	Target float64
	// Max is the largest offset reachable by ScrollBy and the wheel.
	Max float64
}

// HandleMouseWheel moves the target by a wheel delta.
func (s *ScrollState) HandleMouseWheel(delta float64) {
	if delta != 0 {
		s.Target = s.clamp(s.Target - delta*ScrollWheelSpeed)
	}
}

// ScrollBy moves both position and target, clamped to [0, Max].
func (s *ScrollState) ScrollBy(delta float64) {
	s.Pos = s.clamp(s.Pos + delta)
	s.Target = s.clamp(s.Target + delta)
}

// SetMax updates the scroll range and pulls the offsets inside it.
func (s *ScrollState) SetMax(m float64) {
	s.Max = math.Max(0, m)
	s.Pos = s.clamp(s.Pos)
	s.Target = s.clamp(s.Target)
}

// Follow sets an unclamped target. When animated is false the position
// jumps there immediately.
func (s *ScrollState) Follow(target float64, animated bool) {
	s.Target = target
	if !animated {
		s.Pos = target
	}
}

// Animate performs smooth scroll interpolation. Call this once per frame.
func (s *ScrollState) Animate() {
	s.Pos = Lerp(s.Pos, s.Target, ScrollAnimSpeed)
	if math.Abs(s.Target-s.Pos) < 0.5 {
		s.Pos = s.Target
	}
}

// Settled reports whether the position has reached the target.
func (s *ScrollState) Settled() bool {
	return s.Pos == s.Target
}

// Reset sets scroll position back to the start.
func (s *ScrollState) Reset() {
	s.Pos = 0
	s.Target = 0
}

func (s *ScrollState) clamp(v float64) float64 {
	return math.Min(math.Max(0, v), s.Max)
}
