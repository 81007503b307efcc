package carousel

import "math"

// Orientation is the scroll axis of the thumbnail strip.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// ScrollBehavior selects how thumbnail scrolling is performed.
type ScrollBehavior int

const (
	ScrollSmooth ScrollBehavior = iota
	// ScrollAuto jumps instantly.
	ScrollAuto
)

// arrowThreshold is the visible share an edge thumbnail needs to count as
// intersecting.
const arrowThreshold = 0.9

// ThumbGeometry is answered by the host layout for the thumbnail strip.
// All values are measured along the scroll axis.
type ThumbGeometry interface {
	// ThumbExtent returns the offset of thumbnail i from the start of the
	// scroll content and its size.
	ThumbExtent(i int) (offset, size float64)
	// ViewportSize is the visible length of the strip.
	ViewportSize() float64
	// ContentSize is the total scrollable length.
	ContentSize() float64
	// ScrollPos is the current scroll offset.
	ScrollPos() float64
	// ScrollBy moves the scroll offset; the host clamps it to its range.
	ScrollBy(delta float64)
	// NativeSmoothScroll reports whether the host eases ScrollBy on its own.
	NativeSmoothScroll() bool
}

// ThumbSync keeps the active thumbnail visible.
type ThumbSync struct {
	AutoScroll bool
	Arrows     bool
	Behavior   ScrollBehavior
	// SlideBy is the arrow slide length; zero slides by a screenful.
	SlideBy float64

	geo           ThumbGeometry
	anim          *Animator
	count         int
	smoothAllowed bool
}

// NewThumbSync creates a synchronizer scrolling geo through anim.
func NewThumbSync(geo ThumbGeometry, anim *Animator) *ThumbSync {
	return &ThumbSync{geo: geo, anim: anim, AutoScroll: true}
}

// SetCount updates the number of thumbnails.
func (t *ThumbSync) SetCount(n int) { t.count = n }

// Init performs the first centering, instantly, and allows smooth
// scrolling afterwards. It does nothing while there are no thumbnails.
func (t *ThumbSync) Init(index int) {
	if t.count == 0 {
		return
	}
	t.smoothAllowed = false
	t.CenterIfNeeded(index)
	t.smoothAllowed = true
}

// Select reacts to a selection change.
func (t *ThumbSync) Select(index int) {
	if t.AutoScroll {
		t.CenterIfNeeded(index)
	}
}

// CenterIfNeeded scrolls thumbnail index into the middle of the strip when
// it is not fully visible. It reports whether a scroll was issued.
func (t *ThumbSync) CenterIfNeeded(index int) bool {
	if t.geo == nil || t.count <= 1 || index < 0 || index >= t.count {
		return false
	}
	offset, size := t.geo.ThumbExtent(index)
	view := t.geo.ViewportSize()
	scroll := t.geo.ScrollPos()
	if scroll+view < offset+size || scroll > offset {
		t.scroll(offset + size/2 - view/2 - scroll)
		return true
	}
	return false
}

// Slide scrolls one arrow step in direction (-1 toward start, +1 toward end).
func (t *ThumbSync) Slide(direction int) {
	if t.geo == nil || t.count == 0 {
		return
	}
	delta := t.SlideBy
	if delta <= 0 {
		view := t.geo.ViewportSize()
		delta = math.Min(view, t.geo.ContentSize()-view)
	}
	if delta <= 0 {
		return
	}
	t.scroll(delta * float64(direction))
}

func (t *ThumbSync) scroll(delta float64) {
	if delta == 0 {
		return
	}
	if t.geo.NativeSmoothScroll() || t.behavior() == ScrollAuto {
		t.anim.Cancel()
		t.geo.ScrollBy(delta)
		return
	}
	t.anim.Start(delta, t.geo.ScrollBy)
}

func (t *ThumbSync) behavior() ScrollBehavior {
	if !t.smoothAllowed {
		return ScrollAuto
	}
	return t.Behavior
}

// ArrowVisibility decides which "more content" arrows to show. The start
// arrow shows once the last thumbnail is in view and the end arrow while
// the first one is; with neither edge in view both show. Content that fits
// without scrolling shows none.
func (t *ThumbSync) ArrowVisibility() (start, end bool) {
	if !t.Arrows || t.geo == nil || t.count == 0 {
		return false, false
	}
	if t.geo.ContentSize() <= t.geo.ViewportSize() {
		return false, false
	}
	firstIn := t.visibleRatio(0) >= arrowThreshold
	lastIn := t.visibleRatio(t.count-1) >= arrowThreshold
	start, end = lastIn, firstIn
	if !start && !end {
		return true, true
	}
	return start, end
}

func (t *ThumbSync) visibleRatio(i int) float64 {
	offset, size := t.geo.ThumbExtent(i)
	if size <= 0 {
		return 0
	}
	scroll := t.geo.ScrollPos()
	lo := math.Max(offset, scroll)
	hi := math.Min(offset+size, scroll+t.geo.ViewportSize())
	return math.Max(0, hi-lo) / size
}
