package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugOverlayVisible bool

// ToggleDebugOverlay toggles the debug overlay on F12.
func ToggleDebugOverlay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// SetDebugOverlay shows or hides the overlay.
func SetDebugOverlay(visible bool) {
	debugOverlayVisible = visible
}

// DrawDebugOverlay draws lines in a panel at the top right if visible.
func DrawDebugOverlay(screen *ebiten.Image, lines []string) {
	if !debugOverlayVisible {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginR = 20.0
		marginT = 20.0
	)

	var pressedKeys []ebiten.Key
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if ebiten.IsKeyPressed(k) {
			pressedKeys = append(pressedKeys, k)
		}
	}

	rows := 1 + len(lines) + 1
	if len(pressedKeys) > 0 {
		rows++
	}
	panelH := float64(rows)*lineH + padY*2
	panelW := 420.0
	px := float64(screen.Bounds().Dx()) - panelW - marginR
	py := marginT

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	x := px + padX
	y := py + padY

	DrawText(screen, "Debug (F12 to close)", x, y, FontSizeSmall, ColorPrimary)
	y += lineH

	for _, line := range lines {
		DrawText(screen, line, x, y, FontSizeSmall, ColorText)
		y += lineH
	}

	DrawText(screen, fmt.Sprintf("tps %.0f  fps %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()), x, y, FontSizeSmall, ColorTextMuted)
	y += lineH
	if len(pressedKeys) > 0 {
		keys := ""
		for _, k := range pressedKeys {
			keys += k.String() + " "
		}
		DrawText(screen, "keys: "+keys, x, y, FontSizeSmall, ColorTextSecondary)
	}
}
