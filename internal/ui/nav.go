package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ButtonRect is a clickable screen rectangle.
type ButtonRect struct {
	X, Y, W, H float64
}

// Contains reports whether (px, py) lies inside the rectangle.
func (r ButtonRect) Contains(px, py int) bool {
	return r.W > 0 && PointInRect(px, py, r.X, r.Y, r.W, r.H)
}

// IsModifierPressed reports whether any modifier key (Alt, Ctrl, Shift, Meta) is held.
func IsModifierPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyAlt) ||
		ebiten.IsKeyPressed(ebiten.KeyControl) ||
		ebiten.IsKeyPressed(ebiten.KeyShift) ||
		ebiten.IsKeyPressed(ebiten.KeyMeta)
}

// UpdateInputState must be called at the end of each Update() to track key state.
func UpdateInputState() {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if ebiten.IsKeyPressed(k) {
			keyHoldFrames[k]++
		} else {
			delete(keyHoldFrames, k)
		}
	}
}

var keyHoldFrames = make(map[ebiten.Key]int)

const (
	repeatDelay    = 18 // frames before repeat starts (~300ms at 60fps)
	repeatInterval = 4  // frames between repeats (~67ms at 60fps)
)

// KeyRepeating reports whether key fires this frame, either freshly pressed
// or auto-repeating while held.
func KeyRepeating(key ebiten.Key) bool {
	if !ebiten.IsKeyPressed(key) {
		return false
	}
	return repeatFires(keyHoldFrames[key])
}

// KeyJustPressed reports a fresh press with no modifier held.
func KeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key) && !IsModifierPressed()
}

// repeatFires decides from the number of frames a key has been held.
func repeatFires(frames int) bool {
	if frames == 0 {
		return true
	}
	return frames >= repeatDelay && (frames-repeatDelay)%repeatInterval == 0
}

// PointInRect returns true if point (px, py) is inside the rectangle (rx, ry, rw, rh).
func PointInRect(px, py int, rx, ry, rw, rh float64) bool {
	return float64(px) >= rx && float64(px) <= rx+rw &&
		float64(py) >= ry && float64(py) <= ry+rh
}

// MouseWheelDelta returns the mouse wheel scroll delta.
func MouseWheelDelta() (dx, dy float64) {
	return ebiten.Wheel()
}

// Lerp for smooth scrolling
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
