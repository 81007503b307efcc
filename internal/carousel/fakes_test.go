package carousel

import (
	"fmt"
	"time"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeStrip struct {
	vw, w float64
}

func (s *fakeStrip) ViewportWidth() float64 { return s.vw }
func (s *fakeStrip) ItemWidth() float64     { return s.w }

// fakeThumbs lays out count thumbnails of equal size back to back.
type fakeThumbs struct {
	count  int
	size   float64
	view   float64
	pos    float64
	native bool
	calls  []float64
}

func (f *fakeThumbs) ThumbExtent(i int) (float64, float64) { return float64(i) * f.size, f.size }
func (f *fakeThumbs) ViewportSize() float64                { return f.view }
func (f *fakeThumbs) ContentSize() float64                 { return float64(f.count) * f.size }
func (f *fakeThumbs) ScrollPos() float64                   { return f.pos }
func (f *fakeThumbs) NativeSmoothScroll() bool             { return f.native }

func (f *fakeThumbs) ScrollBy(delta float64) {
	f.calls = append(f.calls, delta)
	f.pos += delta
	if limit := f.ContentSize() - f.view; f.pos > limit {
		f.pos = limit
	}
	if f.pos < 0 {
		f.pos = 0
	}
}

func testItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{
			ID:  fmt.Sprintf("item-%d", i),
			Src: fmt.Sprintf("/media/%02d.jpg", i),
		}
	}
	return items
}
