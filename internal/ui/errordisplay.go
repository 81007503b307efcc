package ui

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ErrorDisplay draws an error message with a "Copy" button.
// Call Draw each frame and HandleClick in Update.
type ErrorDisplay struct {
	copyRect    ButtonRect
	copiedTimer int // frames remaining to show "Copied!" feedback
}

// Draw renders the error text and a Copy button. Returns the total height used.
func (ed *ErrorDisplay) Draw(dst *ebiten.Image, errText string, x, y, fontSize float64) float64 {
	if errText == "" {
		ed.copyRect = ButtonRect{}
		return 0
	}

	tw, th := MeasureText(errText, fontSize)
	btnW := 50.0
	btnH := fontSize + 6
	vector.DrawFilledRect(dst, float32(x-10), float32(y-6), float32(tw+btnW+34), float32(th+12), ColorOverlay, false)
	DrawText(dst, errText, x, y, fontSize, ColorError)

	btnX := x + tw + 12
	btnY := y - 2
	ed.copyRect = ButtonRect{X: btnX, Y: btnY, W: btnW, H: btnH}

	if ed.copiedTimer > 0 {
		ed.copiedTimer--
		DrawText(dst, "Copied!", btnX, y, FontSizeSmall, ColorSuccess)
	} else {
		vector.DrawFilledRect(dst, float32(btnX), float32(btnY), float32(btnW), float32(btnH), ColorSurface, false)
		vector.StrokeRect(dst, float32(btnX), float32(btnY), float32(btnW), float32(btnH), 1, ColorTextMuted, false)
		DrawTextCentered(dst, "Copy", btnX+btnW/2, btnY+btnH/2, FontSizeSmall, ColorTextSecondary)
	}

	return fontSize + 8
}

// HandleClick copies copyText when the button was hit. Returns true if the
// click was consumed.
func (ed *ErrorDisplay) HandleClick(mx, my int, copyText string) bool {
	if !ed.copyRect.Contains(mx, my) {
		return false
	}
	if err := WriteClipboard(copyText); err != nil {
		log.Printf("copy failed: %v", err)
		return true
	}
	ed.Copied()
	return true
}

// Copied shows the "Copied!" feedback for about two seconds.
func (ed *ErrorDisplay) Copied() {
	ed.copiedTimer = 120
}
