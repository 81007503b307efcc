package ui

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ThumbItem is what the thumbnail strip needs to render one entry.
type ThumbItem struct {
	Image  *ebiten.Image
	Video  bool
	Failed bool
}

// ThumbFrame carries the per-frame state of the thumbnail strip.
type ThumbFrame struct {
	Items     []ThumbItem
	Selected  int
	ShowStart bool
	ShowEnd   bool
}

// ThumbView is the scrollable thumbnail strip along one screen edge.
// Offsets are measured along its scroll axis.
type ThumbView struct {
	X, Y, W, H float64
	Vertical   bool
	// Size is the edge length of one square thumbnail.
	Size       float64
	Scroll     ScrollState

	count     int
	startRect ButtonRect
	endRect   ButtonRect
}

// NewThumbView creates a strip of size x size thumbnails.
func NewThumbView(size float64, vertical bool) *ThumbView {
	return &ThumbView{Size: size, Vertical: vertical}
}

// SetBounds places the strip and updates the scroll range.
func (t *ThumbView) SetBounds(x, y, w, h float64) {
	t.X, t.Y, t.W, t.H = x, y, w, h
	t.Scroll.SetMax(t.ContentSize() - t.ViewportSize())
}

// SetCount updates the number of thumbnails and the scroll range.
func (t *ThumbView) SetCount(n int) {
	t.count = n
	t.Scroll.SetMax(t.ContentSize() - t.ViewportSize())
}

// Extent returns the strip's size across its scroll axis.
func (t *ThumbView) Extent() float64 {
	return t.Size + 2*ThumbGap
}

func (t *ThumbView) ThumbExtent(i int) (offset, size float64) {
	return ThumbGap + float64(i)*(t.Size+ThumbGap), t.Size
}

func (t *ThumbView) ViewportSize() float64 {
	if t.Vertical {
		return t.H
	}
	return t.W
}

func (t *ThumbView) ContentSize() float64 {
	if t.count == 0 {
		return 0
	}
	return ThumbGap + float64(t.count)*(t.Size+ThumbGap)
}

func (t *ThumbView) ScrollPos() float64 { return t.Scroll.Pos }

func (t *ThumbView) ScrollBy(delta float64) { t.Scroll.ScrollBy(delta) }

// NativeSmoothScroll is false; the engine eases thumbnail scrolling itself.
func (t *ThumbView) NativeSmoothScroll() bool { return false }

// VisibleRange returns the half-open range of thumbnails in view.
func (t *ThumbView) VisibleRange() (first, last int) {
	if t.count == 0 {
		return 0, 0
	}
	step := t.Size + ThumbGap
	first = max(0, int(math.Floor((t.Scroll.Pos-ThumbGap)/step)))
	last = min(t.count, int(math.Ceil((t.Scroll.Pos+t.ViewportSize())/step)))
	return first, max(first, last)
}

// Contains reports whether (px, py) lies on the strip.
func (t *ThumbView) Contains(px, py int) bool {
	return PointInRect(px, py, t.X, t.Y, t.W, t.H)
}

// axis projects a screen point onto the scroll axis, relative to the strip.
func (t *ThumbView) axis(px, py int) float64 {
	if t.Vertical {
		return float64(py) - t.Y
	}
	return float64(px) - t.X
}

// ThumbAt returns the thumbnail under (px, py).
func (t *ThumbView) ThumbAt(px, py int) (int, bool) {
	if !t.Contains(px, py) || t.count == 0 {
		return 0, false
	}
	pos := t.axis(px, py) + t.Scroll.Pos - ThumbGap
	if pos < 0 {
		return 0, false
	}
	step := t.Size + ThumbGap
	i := int(math.Floor(pos / step))
	if i >= t.count || pos-float64(i)*step > t.Size {
		// past the end or in a gap
		return 0, false
	}
	return i, true
}

// ArrowAt returns -1 or +1 when (px, py) hits a visible arrow, else 0.
func (t *ThumbView) ArrowAt(px, py int) int {
	switch {
	case t.startRect.Contains(px, py):
		return -1
	case t.endRect.Contains(px, py):
		return 1
	}
	return 0
}

// screenRect maps an offset along the axis to a screen rectangle.
func (t *ThumbView) screenRect(offset, size float64) (x, y, w, h float64) {
	if t.Vertical {
		return t.X + ThumbGap, t.Y + offset - t.Scroll.Pos, t.Size, size
	}
	return t.X + offset - t.Scroll.Pos, t.Y + ThumbGap, size, t.Size
}

func (t *ThumbView) Draw(dst *ebiten.Image, f ThumbFrame) {
	if t.W <= 0 || t.H <= 0 {
		return
	}
	t.Scroll.Animate()

	area := image.Rect(int(t.X), int(t.Y), int(t.X+t.W), int(t.Y+t.H))
	clip := dst.SubImage(area).(*ebiten.Image)
	clip.Fill(ColorSurface)

	view := t.ViewportSize()
	for i, it := range f.Items {
		offset, size := t.ThumbExtent(i)
		if offset+size < t.Scroll.Pos || offset > t.Scroll.Pos+view {
			continue
		}
		x, y, w, h := t.screenRect(offset, size)
		vector.DrawFilledRect(clip, float32(x), float32(y), float32(w), float32(h), ColorBackground, false)
		switch {
		case it.Failed:
			drawBrokenImageIcon(clip, float32(x+w/2), float32(y+h/2), float32(w/5), ColorTextMuted)
		case it.Image != nil:
			drawImageFit(clip, it.Image, x, y, w, h)
		}
		if it.Video && !it.Failed {
			drawPlayIcon(clip, float32(x+w/2), float32(y+h/2), float32(w/6))
		}
		if i == f.Selected {
			vector.StrokeRect(clip, float32(x-ThumbFocusPad), float32(y-ThumbFocusPad),
				float32(w+2*ThumbFocusPad), float32(h+2*ThumbFocusPad), 2, ColorFocusBorder, false)
		}
	}

	t.startRect, t.endRect = ButtonRect{}, ButtonRect{}
	startDir, endDir := ChevronLeft, ChevronRight
	var sx, sy, ex, ey, aw, ah float64
	if t.Vertical {
		startDir, endDir = ChevronUp, ChevronDown
		aw, ah = t.W, ThumbArrowW
		sx, sy = t.X, t.Y
		ex, ey = t.X, t.Y+t.H-ThumbArrowW
	} else {
		aw, ah = ThumbArrowW, t.H
		sx, sy = t.X, t.Y
		ex, ey = t.X+t.W-ThumbArrowW, t.Y
	}
	if f.ShowStart {
		t.startRect = ButtonRect{X: sx, Y: sy, W: aw, H: ah}
		t.drawArrow(dst, t.startRect, startDir)
	}
	if f.ShowEnd {
		t.endRect = ButtonRect{X: ex, Y: ey, W: aw, H: ah}
		t.drawArrow(dst, t.endRect, endDir)
	}
}

func (t *ThumbView) drawArrow(dst *ebiten.Image, r ButtonRect, dir int) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), ColorArrowBg, false)
	drawChevron(dst, float32(r.X+r.W/2), float32(r.Y+r.H/2), float32(ThumbArrowW/2), dir, ColorText)
}
