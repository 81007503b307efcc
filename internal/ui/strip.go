package ui

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StripItem is what the strip needs to render one displayed item.
type StripItem struct {
	Image   *ebiten.Image // nil until decoded
	Title   string
	Video   bool
	// Pending is set for items whose source has not been resolved yet.
	Pending bool
	Failed  bool
	// Playing hides the poster; the player window covers the item.
	Playing bool
}

// StripFrame carries the per-frame state of the main strip.
type StripFrame struct {
	Items    []StripItem
	Selected int // displayed index
	ShowPrev bool
	ShowNext bool
	Counter  string
}

// StripView lays out and draws the main carousel strip. It answers the
// engine's geometry queries.
type StripView struct {
	X, Y, W, H float64
	// Ratio of the strip width one item takes.
	Ratio      float64
	Scroll     ScrollState

	prevRect ButtonRect
	nextRect ButtonRect
}

// NewStripView creates a strip whose items take ratio of its width.
func NewStripView(ratio float64) *StripView {
	if ratio <= 0 || ratio > 1 {
		ratio = 1
	}
	return &StripView{Ratio: ratio}
}

// SetBounds places the strip. It reports whether the size changed.
func (s *StripView) SetBounds(x, y, w, h float64) bool {
	changed := w != s.W || h != s.H
	s.X, s.Y, s.W, s.H = x, y, w, h
	return changed
}

func (s *StripView) ViewportWidth() float64 { return s.W }

func (s *StripView) ItemWidth() float64 { return math.Round(s.W * s.Ratio) }

// Follow tracks the engine's translation, easing only when animated.
func (s *StripView) Follow(listX float64, animated bool) {
	s.Scroll.Follow(listX, animated)
	s.Scroll.Animate()
}

// itemX returns the screen x of displayed item d.
func (s *StripView) itemX(d int) float64 {
	return s.X + float64(d)*s.ItemWidth() - s.Scroll.Pos
}

// ItemAt returns the displayed index under (px, py).
func (s *StripView) ItemAt(px, py int, count int) (int, bool) {
	w := s.ItemWidth()
	if w <= 0 || !PointInRect(px, py, s.X, s.Y, s.W, s.H) {
		return 0, false
	}
	d := int(math.Floor((float64(px) - s.X + s.Scroll.Pos) / w))
	if d < 0 || d >= count {
		return 0, false
	}
	return d, true
}

// ArrowAt returns -1 or +1 when (px, py) hits a visible arrow, else 0.
func (s *StripView) ArrowAt(px, py int) int {
	switch {
	case s.prevRect.Contains(px, py):
		return -1
	case s.nextRect.Contains(px, py):
		return 1
	}
	return 0
}

// Contains reports whether (px, py) lies on the strip.
func (s *StripView) Contains(px, py int) bool {
	return PointInRect(px, py, s.X, s.Y, s.W, s.H)
}

func (s *StripView) Draw(dst *ebiten.Image, f StripFrame) {
	if s.W <= 0 || s.H <= 0 {
		return
	}
	area := image.Rect(int(s.X), int(s.Y), int(s.X+s.W), int(s.Y+s.H))
	clip := dst.SubImage(area).(*ebiten.Image)
	clip.Fill(ColorBackground)

	w := s.ItemWidth()
	for d, it := range f.Items {
		x := s.itemX(d)
		if x+w < s.X || x > s.X+s.W {
			continue
		}
		s.drawItem(clip, it, d == f.Selected, x, w)
	}

	s.prevRect, s.nextRect = ButtonRect{}, ButtonRect{}
	cy := s.Y + s.H/2 - ArrowSize/2
	if f.ShowPrev {
		s.prevRect = ButtonRect{X: s.X + ArrowMargin, Y: cy, W: ArrowSize, H: ArrowSize}
		drawArrowButton(dst, s.prevRect, ChevronLeft)
	}
	if f.ShowNext {
		s.nextRect = ButtonRect{X: s.X + s.W - ArrowMargin - ArrowSize, Y: cy, W: ArrowSize, H: ArrowSize}
		drawArrowButton(dst, s.nextRect, ChevronRight)
	}

	if f.Counter != "" {
		tw, th := MeasureText(f.Counter, FontSizeSmall)
		bx := s.X + s.W - tw - 24
		by := s.Y + s.H - th - 20
		vector.DrawFilledRect(dst, float32(bx-8), float32(by-4), float32(tw+16), float32(th+8), ColorOverlay, false)
		DrawText(dst, f.Counter, bx, by, FontSizeSmall, ColorText)
	}
}

func (s *StripView) drawItem(dst *ebiten.Image, it StripItem, selected bool, x, w float64) {
	bx, by := x+StripPadding, s.Y+StripPadding
	bw, bh := w-2*StripPadding, s.H-2*StripPadding
	if bw <= 0 || bh <= 0 {
		return
	}
	cx, cy := float32(bx+bw/2), float32(by+bh/2)

	switch {
	case it.Playing:
		// the player surface is on top
	case it.Failed:
		vector.DrawFilledRect(dst, float32(bx), float32(by), float32(bw), float32(bh), ColorSurface, false)
		drawBrokenImageIcon(dst, cx, cy-16, 24, ColorTextMuted)
		DrawTextCentered(dst, Truncate(it.Title, FontSizeBody, bw-32), float64(cx), float64(cy)+28, FontSizeBody, ColorTextSecondary)
	case it.Image != nil:
		drawImageFit(dst, it.Image, bx, by, bw, bh)
	default:
		vector.DrawFilledRect(dst, float32(bx), float32(by), float32(bw), float32(bh), ColorSurface, false)
		label := "Loading…"
		if it.Pending {
			label = Truncate(it.Title, FontSizeBody, bw-32)
		}
		DrawTextCentered(dst, label, float64(cx), float64(cy), FontSizeBody, ColorTextMuted)
	}

	if it.Video && !it.Playing && !it.Failed {
		drawPlayIcon(dst, cx, cy, 32)
	}
	if selected && s.Ratio < 1 {
		vector.StrokeRect(dst, float32(bx-ThumbFocusPad), float32(by-ThumbFocusPad),
			float32(bw+2*ThumbFocusPad), float32(bh+2*ThumbFocusPad), 2, ColorFocusBorder, false)
	}
}
