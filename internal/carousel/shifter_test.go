package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMeasuredShifter returns a shifter over five looping items on a
// 1000px viewport with 300px items, so the centering offset is 350.
func newMeasuredShifter(t *testing.T) (*Shifter, *Scheduler) {
	t.Helper()
	sched := NewScheduler(nil)
	s := NewShifter(&fakeStrip{vw: 1000, w: 300}, sched)
	s.SetLayout(1, 5)
	s.Relayout(func() int { return 0 })
	sched.Tick()
	require.False(t, s.Animated())
	sched.Tick()
	require.True(t, s.Animated())
	return s, sched
}

func TestShifterCenter(t *testing.T) {
	s, _ := newMeasuredShifter(t)
	assert.Equal(t, 350.0, s.CenteringOffset())
	assert.Equal(t, -50.0, s.ListX())

	s.Center(3)
	assert.Equal(t, 850.0, s.ListX())
	i, ok := s.Nearest()
	require.True(t, ok)
	assert.Equal(t, 3, i)

	s.SetLayout(0, 0)
	s.Center(3)
	assert.Zero(t, s.ListX())
}

func TestShifterDragAndNearest(t *testing.T) {
	s, _ := newMeasuredShifter(t)
	s.Center(2)
	s.BeginDrag()
	assert.False(t, s.Animated())

	s.Drag(2, -170)
	assert.Equal(t, s.Offset(2)+170, s.ListX())
	i, _ := s.Nearest()
	assert.Equal(t, 3, i)

	s.Drag(2, -120)
	i, _ = s.Nearest()
	assert.Equal(t, 2, i)

	s.EndDrag()
	assert.True(t, s.Animated())
}

func TestShifterWrapForward(t *testing.T) {
	cases := []struct {
		name      string
		drag      float64
		wantJump  float64
	}{
		{"at rest", 0, -350},
		{"mid drag", -100, -250},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, sched := newMeasuredShifter(t)
			s.Center(4)
			s.BeginDrag()
			s.Drag(4, tc.drag)
			s.EndDrag()

			done := false
			s.Wrap(0, func() { done = true })
			assert.True(t, s.Wrapping())
			assert.False(t, s.Animated())
			assert.Equal(t, tc.wantJump, s.ListX())

			// the jump holds for one frame
			sched.Tick()
			assert.False(t, done)
			assert.True(t, s.Wrapping())
			assert.False(t, s.Animated())
			assert.Equal(t, tc.wantJump, s.ListX())

			sched.Tick()
			assert.True(t, done)
			assert.False(t, s.Wrapping())
			assert.True(t, s.Animated())
			assert.Equal(t, s.Offset(0), s.ListX())
		})
	}
}

func TestShifterWrapBackward(t *testing.T) {
	cases := []struct {
		name     string
		drag     float64
		wantJump float64
	}{
		{"at rest", 0, 1450},
		{"mid drag", 100, 1350},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, sched := newMeasuredShifter(t)
			s.Center(0)
			s.BeginDrag()
			s.Drag(0, tc.drag)
			s.EndDrag()

			s.Wrap(4, nil)
			assert.Equal(t, tc.wantJump, s.ListX())

			sched.Tick()
			assert.Equal(t, tc.wantJump, s.ListX())
			sched.Tick()
			assert.Equal(t, s.Offset(4), s.ListX())
		})
	}
}

func TestShifterRelayoutWaitsForMeasurement(t *testing.T) {
	geo := &fakeStrip{}
	sched := NewScheduler(nil)
	s := NewShifter(geo, sched)
	s.SetLayout(0, 3)

	calls := 0
	sel := func() int { calls++; return 2 }
	s.Relayout(sel)
	s.Relayout(sel)
	assert.Equal(t, 1, sched.Pending())

	sched.Tick()
	sched.Tick()
	assert.Zero(t, calls)

	geo.vw, geo.w = 600, 200
	sched.Tick()
	assert.Equal(t, 1, calls)
	assert.Equal(t, 200.0, s.ListX())
	assert.False(t, s.Animated())
	sched.Tick()
	assert.True(t, s.Animated())
}

func TestShifterCancelWrap(t *testing.T) {
	s, sched := newMeasuredShifter(t)
	s.Center(4)
	done := false
	s.Wrap(0, func() { done = true })
	sched.Tick()
	require.True(t, s.Wrapping())
	s.CancelWrap()
	sched.Tick()
	sched.Tick()
	assert.False(t, done)
	assert.False(t, s.Wrapping())
	assert.True(t, s.Animated())
}
