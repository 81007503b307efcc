package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Chevron directions.
const (
	ChevronLeft = iota
	ChevronRight
	ChevronUp
	ChevronDown
)

// drawChevron draws an arrow head pointing in dir at (cx, cy) with given radius.
func drawChevron(dst *ebiten.Image, cx, cy, r float32, dir int, clr color.Color) {
	h := r * 0.5
	switch dir {
	case ChevronLeft:
		vector.StrokeLine(dst, cx+h*0.5, cy-h, cx-h*0.5, cy, 2.5, clr, true)
		vector.StrokeLine(dst, cx-h*0.5, cy, cx+h*0.5, cy+h, 2.5, clr, true)
	case ChevronRight:
		vector.StrokeLine(dst, cx-h*0.5, cy-h, cx+h*0.5, cy, 2.5, clr, true)
		vector.StrokeLine(dst, cx+h*0.5, cy, cx-h*0.5, cy+h, 2.5, clr, true)
	case ChevronUp:
		vector.StrokeLine(dst, cx-h, cy+h*0.5, cx, cy-h*0.5, 2.5, clr, true)
		vector.StrokeLine(dst, cx, cy-h*0.5, cx+h, cy+h*0.5, 2.5, clr, true)
	case ChevronDown:
		vector.StrokeLine(dst, cx-h, cy-h*0.5, cx, cy+h*0.5, 2.5, clr, true)
		vector.StrokeLine(dst, cx, cy+h*0.5, cx+h, cy-h*0.5, 2.5, clr, true)
	}
}

// drawArrowButton draws a round chevron button centered in r.
func drawArrowButton(dst *ebiten.Image, r ButtonRect, dir int) {
	cx := float32(r.X + r.W/2)
	cy := float32(r.Y + r.H/2)
	rad := float32(min(r.W, r.H) / 2)
	vector.DrawFilledCircle(dst, cx, cy, rad, ColorArrowBg, true)
	drawChevron(dst, cx, cy, rad, dir, ColorText)
}

// drawPlayIcon draws a play badge at (cx, cy) with given radius.
func drawPlayIcon(dst *ebiten.Image, cx, cy, r float32) {
	vector.DrawFilledCircle(dst, cx, cy, r, ColorArrowBg, true)
	vector.StrokeCircle(dst, cx, cy, r, 2, ColorText, true)
	// Triangle outline, apex to the right
	tx, ty := cx-r*0.3, cy-r*0.45
	bx, by := cx-r*0.3, cy+r*0.45
	ax, ay := cx+r*0.5, cy
	vector.StrokeLine(dst, tx, ty, bx, by, 2.5, ColorText, true)
	vector.StrokeLine(dst, bx, by, ax, ay, 2.5, ColorText, true)
	vector.StrokeLine(dst, ax, ay, tx, ty, 2.5, ColorText, true)
}

// drawBrokenImageIcon draws a crossed-out frame at (cx, cy) with given radius.
func drawBrokenImageIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.StrokeRect(dst, cx-r, cy-r*0.75, r*2, r*1.5, 1.5, clr, true)
	vector.StrokeLine(dst, cx-r*0.6, cy-r*0.45, cx+r*0.6, cy+r*0.45, 1.5, clr, true)
	vector.StrokeLine(dst, cx+r*0.6, cy-r*0.45, cx-r*0.6, cy+r*0.45, 1.5, clr, true)
}

// drawImageFit draws img scaled to fit inside the box, centered.
func drawImageFit(dst, img *ebiten.Image, x, y, w, h float64) {
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw == 0 || ih == 0 || w <= 0 || h <= 0 {
		return
	}
	scale := min(w/iw, h/ih)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x+(w-iw*scale)/2, y+(h-ih*scale)/2)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}
