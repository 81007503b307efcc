package carousel

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrollDuration(t *testing.T) {
	cases := []struct {
		name  string
		delta float64
		want  time.Duration
	}{
		{"zero", 0, 200 * time.Millisecond},
		{"short", 5, 200 * time.Millisecond},
		{"negative short", -5, 200 * time.Millisecond},
		{"hundred", 100, 200 * time.Millisecond},
		{"five hundred", 500, 320 * time.Millisecond},
		{"far", -5000, 520 * time.Millisecond},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ScrollDuration(tc.delta, BaseScrollTime)
			assert.InDelta(t, float64(tc.want), float64(got), float64(time.Millisecond))
		})
	}
}

func runFrames(s *Scheduler, clock *fakeClock, step time.Duration, n int) {
	for range n {
		clock.Advance(step)
		s.Tick()
	}
}

func TestAnimatorAppliesWholeDelta(t *testing.T) {
	clock := newFakeClock()
	s := NewScheduler(clock.Now)
	a := NewAnimator(s, 0)

	var steps []float64
	h := a.Start(-250, func(step float64) { steps = append(steps, step) })
	require.True(t, h.Active())

	runFrames(s, clock, 16*time.Millisecond, 40)

	var sum float64
	for _, st := range steps {
		assert.Less(t, st, 0.0)
		assert.Equal(t, math.Ceil(math.Abs(st)), math.Abs(st))
		sum += st
	}
	assert.Equal(t, -250.0, sum)
	assert.Greater(t, len(steps), 1)
	assert.False(t, h.Active())
	assert.False(t, a.Running())
}

func TestAnimatorRestartCancelsPrevious(t *testing.T) {
	clock := newFakeClock()
	s := NewScheduler(clock.Now)
	a := NewAnimator(s, 0)

	var first, second float64
	h1 := a.Start(400, func(step float64) { first += step })
	runFrames(s, clock, 16*time.Millisecond, 3)
	require.Greater(t, first, 0.0)
	stopped := first

	h2 := a.Start(-60, func(step float64) { second += step })
	assert.False(t, h1.Active())
	assert.True(t, h2.Active())

	runFrames(s, clock, 16*time.Millisecond, 40)
	assert.Equal(t, stopped, first)
	assert.Equal(t, -60.0, second)
	assert.LessOrEqual(t, math.Abs(second), 60.0)
}

func TestAnimatorZeroDelta(t *testing.T) {
	s := NewScheduler(nil)
	a := NewAnimator(s, 0)
	called := false
	h := a.Start(0, func(float64) { called = true })
	s.Tick()
	assert.False(t, called)
	assert.False(t, h.Active())
	assert.Zero(t, s.Pending())
}

func TestAnimatorCancel(t *testing.T) {
	clock := newFakeClock()
	s := NewScheduler(clock.Now)
	a := NewAnimator(s, 0)
	var applied float64
	a.Start(100, func(step float64) { applied += step })
	a.Cancel()
	runFrames(s, clock, 16*time.Millisecond, 20)
	assert.Zero(t, applied)
}
