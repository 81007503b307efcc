package icon

import (
	"image"
	"image/color"
	"math"
)

var (
	darkBG     = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	stripAmber = color.RGBA{R: 0xF2, G: 0xA0, B: 0x3D, A: 0xFF}
	stripDark  = color.RGBA{R: 0x8A, G: 0x55, B: 0x18, A: 0xFF}
	frameDim   = color.RGBA{R: 0x2A, G: 0x2A, B: 0x34, A: 0xFF}
	frameLit   = color.RGBA{R: 0xE8, G: 0xE8, B: 0xF0, A: 0xFF}
	glowCol    = color.RGBA{R: 0x7A, G: 0x50, B: 0x1E, A: 0x60} // premultiplied amber
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRect(img, 0, 0, size, size, darkBG)
	drawStrip(img, s)
	drawFrames(img, s)

	return img
}

// drawStrip draws a horizontal film band with sprocket holes along both edges.
func drawStrip(img *image.RGBA, s float64) {
	bandY := s * 0.22
	bandH := s * 0.56
	fillCircle(img, s*0.5, s*0.5, s*0.42, glowCol)
	fillRoundedRect(img, s*0.02, bandY, s*0.96, bandH, s*0.06, stripAmber)

	holeW := s * 0.07
	holeH := s * 0.06
	for i := 0; i < 6; i++ {
		x := s*0.08 + float64(i)*s*0.155
		fillRoundedRect(img, x, bandY+s*0.035, holeW, holeH, s*0.015, stripDark)
		fillRoundedRect(img, x, bandY+bandH-s*0.035-holeH, holeW, holeH, s*0.015, stripDark)
	}
}

// drawFrames draws three frames; the middle one is lit and carries a play mark.
func drawFrames(img *image.RGBA, s float64) {
	y := s * 0.36
	h := s * 0.28
	w := s * 0.24
	fillRoundedRect(img, s*0.05, y+s*0.03, w, h-s*0.06, s*0.02, frameDim)
	fillRoundedRect(img, s*0.71, y+s*0.03, w, h-s*0.06, s*0.02, frameDim)
	fillRoundedRect(img, s*0.35, y-s*0.01, s*0.30, h+s*0.02, s*0.03, frameLit)

	cx, cy := s*0.5, s*0.5
	r := s * 0.08
	fillTriangle(img, cx-r*0.7, cy-r, cx-r*0.7, cy+r, cx+r, cy, stripDark)
}

func fillRect(img *image.RGBA, x0, y0, w, h int, c color.Color) {
	bounds := img.Bounds()
	for y := y0; y < y0+h && y < bounds.Max.Y; y++ {
		for x := x0; x < x0+w && x < bounds.Max.X; x++ {
			if x >= 0 && y >= 0 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// fillRoundedRect fills pixels whose distance to the rectangle shrunk by rf
// is at most rf.
func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, rf float64, c color.Color) {
	bounds := img.Bounds()
	for y := int(yf); y <= int(yf+hf) && y < bounds.Max.Y; y++ {
		for x := int(xf); x <= int(xf+wf) && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			fx, fy := float64(x), float64(y)
			dx := math.Max(0, math.Max(xf+rf-fx, fx-(xf+wf-rf)))
			dy := math.Max(0, math.Max(yf+rf-fy, fy-(yf+hf-rf)))
			if dx*dx+dy*dy <= rf*rf {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	bounds := img.Bounds()
	r2 := r * r
	for y := int(cy - r); y <= int(cy+r+1) && y < bounds.Max.Y; y++ {
		for x := int(cx - r); x <= int(cx+r+1) && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r2 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// fillTriangle fills the triangle (x0,y0) (x1,y1) (x2,y2) by edge tests.
func fillTriangle(img *image.RGBA, x0, y0, x1, y1, x2, y2 float64, c color.Color) {
	edge := func(ax, ay, bx, by, px, py float64) float64 {
		return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
	}
	minX, maxX := math.Min(x0, math.Min(x1, x2)), math.Max(x0, math.Max(x1, x2))
	minY, maxY := math.Min(y0, math.Min(y1, y2)), math.Max(y0, math.Max(y1, y2))
	for y := int(minY); y <= int(maxY); y++ {
		for x := int(minX); x <= int(maxX); x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			e0 := edge(x0, y0, x1, y1, px, py)
			e1 := edge(x1, y1, x2, y2, px, py)
			e2 := edge(x2, y2, x0, y0, px, py)
			if (e0 >= 0 && e1 >= 0 && e2 >= 0) || (e0 <= 0 && e1 <= 0 && e2 <= 0) {
				if image.Pt(x, y).In(img.Bounds()) {
					blendPixel(img, x, y, c)
				}
			}
		}
	}
}

// blendPixel alpha-blends color c onto the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	existing := img.RGBAAt(x, y)
	inv := 0xFFFF - a0
	// c.RGBA() is alpha-premultiplied
	nr := r0 + uint32(existing.R)*257*inv/0xFFFF
	ng := g0 + uint32(existing.G)*257*inv/0xFFFF
	nb := b0 + uint32(existing.B)*257*inv/0xFFFF

	img.SetRGBA(x, y, color.RGBA{
		R: uint8(nr >> 8),
		G: uint8(ng >> 8),
		B: uint8(nb >> 8),
		A: 0xFF,
	})
}
