package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ten 100px thumbnails in a 350px strip
func newThumbSync(behavior ScrollBehavior) (*ThumbSync, *fakeThumbs, *Scheduler, *fakeClock) {
	clock := newFakeClock()
	sched := NewScheduler(clock.Now)
	geo := &fakeThumbs{count: 10, size: 100, view: 350}
	ts := NewThumbSync(geo, NewAnimator(sched, 0))
	ts.Behavior = behavior
	ts.Arrows = true
	ts.SetCount(10)
	return ts, geo, sched, clock
}

func TestThumbSyncInitIsInstant(t *testing.T) {
	ts, geo, sched, _ := newThumbSync(ScrollSmooth)
	ts.Init(5)
	require.Len(t, geo.calls, 1)
	assert.Equal(t, 375.0, geo.calls[0])
	assert.Zero(t, sched.Pending())
}

func TestThumbSyncSmoothCentering(t *testing.T) {
	ts, geo, sched, clock := newThumbSync(ScrollSmooth)
	ts.Init(0)
	assert.Empty(t, geo.calls, "first thumbnail already visible")

	ts.Select(2)
	assert.Empty(t, geo.calls, "fully visible thumbnails do not scroll")

	ts.Select(8)
	assert.Empty(t, geo.calls)
	for range 30 {
		clock.Advance(16 * time.Millisecond)
		sched.Tick()
	}
	assert.Greater(t, len(geo.calls), 1)
	// 800 + 50 - 175 = 675, clamped by the host to 650
	assert.Equal(t, 650.0, geo.pos)
}

func TestThumbSyncAutoBehaviorJumps(t *testing.T) {
	ts, geo, _, _ := newThumbSync(ScrollAuto)
	ts.Init(0)
	ts.Select(6)
	require.Len(t, geo.calls, 1)
	assert.Equal(t, 475.0, geo.calls[0])
}

func TestThumbSyncNativeSmoothScroll(t *testing.T) {
	ts, geo, sched, _ := newThumbSync(ScrollSmooth)
	geo.native = true
	ts.Init(0)
	ts.Select(6)
	require.Len(t, geo.calls, 1)
	assert.Zero(t, sched.Pending())
}

func TestThumbSyncAutoScrollOff(t *testing.T) {
	ts, geo, _, _ := newThumbSync(ScrollAuto)
	ts.AutoScroll = false
	ts.Init(0)
	ts.Select(9)
	assert.Empty(t, geo.calls)
}

func TestThumbSyncSingleThumbNeverScrolls(t *testing.T) {
	ts, geo, _, _ := newThumbSync(ScrollAuto)
	ts.SetCount(1)
	assert.False(t, ts.CenterIfNeeded(0))
	assert.Empty(t, geo.calls)
}

func TestThumbSyncSlide(t *testing.T) {
	ts, geo, _, _ := newThumbSync(ScrollAuto)
	ts.Init(0)

	ts.Slide(1)
	assert.Equal(t, 350.0, geo.pos)
	ts.Slide(-1)
	assert.Zero(t, geo.pos)

	ts.SlideBy = 120
	ts.Slide(1)
	assert.Equal(t, 120.0, geo.pos)
}

func TestThumbSyncArrowVisibility(t *testing.T) {
	ts, geo, _, _ := newThumbSync(ScrollAuto)

	cases := []struct {
		name       string
		pos        float64
		start, end bool
	}{
		{"scrolled to start", 0, false, true},
		{"scrolled to end", 650, true, false},
		{"middle", 300, true, true},
		{"first almost visible", 9, false, true},
		{"first cut off", 11, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			geo.pos = tc.pos
			start, end := ts.ArrowVisibility()
			assert.Equal(t, tc.start, start)
			assert.Equal(t, tc.end, end)
		})
	}

	geo.count = 3
	ts.SetCount(3)
	geo.pos = 0
	start, end := ts.ArrowVisibility()
	assert.False(t, start)
	assert.False(t, end)
}
