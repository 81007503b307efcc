package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRunsQueuedTasksOnNextTick(t *testing.T) {
	clock := newFakeClock()
	s := NewScheduler(clock.Now)

	var order []string
	s.Defer(func() {
		order = append(order, "a")
		s.Defer(func() { order = append(order, "c") })
	})
	s.RequestFrame(func(now time.Time) {
		assert.Equal(t, clock.Now(), now)
		order = append(order, "b")
	})
	assert.Empty(t, order)
	assert.Equal(t, 2, s.Pending())

	s.Tick()
	assert.Equal(t, []string{"a", "b"}, order)
	assert.Equal(t, 1, s.Pending())

	s.Tick()
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Zero(t, s.Pending())
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler(nil)

	ran := map[string]bool{}
	id := s.Defer(func() { ran["cancelled"] = true })
	s.Cancel(id)
	s.Cancel(0)
	s.Cancel(9999)

	var later TaskID
	s.Defer(func() {
		ran["first"] = true
		s.Cancel(later)
	})
	later = s.Defer(func() { ran["later"] = true })

	s.Tick()
	assert.Equal(t, map[string]bool{"first": true}, ran)
}

func TestSchedulerClose(t *testing.T) {
	s := NewScheduler(nil)
	ran := false
	s.Defer(func() { ran = true })
	s.Close()

	assert.Zero(t, s.Defer(func() { ran = true }))
	s.Tick()
	assert.False(t, ran)
	assert.Zero(t, s.Pending())
}
