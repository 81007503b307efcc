package app

import (
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/stripview/internal/carousel"
	"github.com/depeter/stripview/internal/ui"
)

// keyMap maps config key names to ebiten keys.
var keyMap = map[string]ebiten.Key{
	"space":    ebiten.KeySpace,
	"enter":    ebiten.KeyEnter,
	"return":   ebiten.KeyEnter,
	"tab":      ebiten.KeyTab,
	"escape":   ebiten.KeyEscape,
	"esc":      ebiten.KeyEscape,
	"left":     ebiten.KeyArrowLeft,
	"right":    ebiten.KeyArrowRight,
	"up":       ebiten.KeyArrowUp,
	"down":     ebiten.KeyArrowDown,
	"home":     ebiten.KeyHome,
	"end":      ebiten.KeyEnd,
	"pageup":   ebiten.KeyPageUp,
	"pagedown": ebiten.KeyPageDown,
	"a":        ebiten.KeyA,
	"b":        ebiten.KeyB,
	"c":        ebiten.KeyC,
	"d":        ebiten.KeyD,
	"e":        ebiten.KeyE,
	"f":        ebiten.KeyF,
	"g":        ebiten.KeyG,
	"h":        ebiten.KeyH,
	"i":        ebiten.KeyI,
	"j":        ebiten.KeyJ,
	"k":        ebiten.KeyK,
	"l":        ebiten.KeyL,
	"m":        ebiten.KeyM,
	"n":        ebiten.KeyN,
	"o":        ebiten.KeyO,
	"p":        ebiten.KeyP,
	"q":        ebiten.KeyQ,
	"r":        ebiten.KeyR,
	"s":        ebiten.KeyS,
	"t":        ebiten.KeyT,
	"u":        ebiten.KeyU,
	"v":        ebiten.KeyV,
	"w":        ebiten.KeyW,
	"x":        ebiten.KeyX,
	"y":        ebiten.KeyY,
	"z":        ebiten.KeyZ,
	"0":        ebiten.KeyDigit0,
	"1":        ebiten.KeyDigit1,
	"2":        ebiten.KeyDigit2,
	"3":        ebiten.KeyDigit3,
	"4":        ebiten.KeyDigit4,
	"5":        ebiten.KeyDigit5,
	"6":        ebiten.KeyDigit6,
	"7":        ebiten.KeyDigit7,
	"8":        ebiten.KeyDigit8,
	"9":        ebiten.KeyDigit9,
}

// parseKey converts a config key name to an ebiten.Key.
func parseKey(name string) (ebiten.Key, bool) {
	k, ok := keyMap[strings.ToLower(name)]
	return k, ok
}

// keyJustPressed checks if the key named by the config string was just pressed.
func keyJustPressed(name string) bool {
	if k, ok := parseKey(name); ok {
		return ui.KeyJustPressed(k)
	}
	return false
}

// keyRepeating is keyJustPressed with auto-repeat while the key is held.
func keyRepeating(name string) bool {
	if k, ok := parseKey(name); ok {
		return ui.KeyRepeating(k) && !ui.IsModifierPressed()
	}
	return false
}

// handleKeys maps the configured keybinds onto the engine.
func (g *Game) handleKeys() {
	kb := &g.Config.Keybinds
	switch {
	case keyRepeating(kb.Next):
		g.Engine.Next()
	case keyRepeating(kb.Prev):
		g.Engine.Prev()
	case keyJustPressed(kb.First):
		g.Engine.First()
	case keyJustPressed(kb.Last):
		g.Engine.Last()
	case keyJustPressed(kb.PlayPause), ui.KeyJustPressed(ebiten.KeyEnter):
		g.Engine.Activate()
	case keyJustPressed(kb.CopySource):
		g.copySource()
	case keyJustPressed(kb.Fullscreen):
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	case ui.KeyJustPressed(ebiten.KeyEscape) && ebiten.IsFullscreen():
		ebiten.SetFullscreen(false)
	}

	dx, dy := ui.MouseWheelDelta()
	if dx == 0 && dy == 0 {
		return
	}
	mx, my := ebiten.CursorPosition()
	if g.thumbs != nil && g.thumbs.Contains(mx, my) {
		g.thumbs.Scroll.HandleMouseWheel(dy + dx)
		return
	}
	if g.strip.Contains(mx, my) && !g.Engine.Dragging() {
		switch {
		case dy < 0 || dx < 0:
			g.Engine.Next()
		case dy > 0 || dx > 0:
			g.Engine.Prev()
		}
	}
}

// handlePointer routes the normalized pointer stream. Presses on arrows,
// thumbnails and the copy button are handled here; presses on the strip
// become drag sessions.
func (g *Game) handlePointer() {
	for _, ev := range g.pointer.Update() {
		px, py := int(ev.X), int(ev.Y)
		p := carousel.Point{X: ev.X, Y: ev.Y}
		now := g.Engine.Scheduler().Now()

		switch ev.Kind {
		case ui.PointerDown:
			g.press = pressNone
			g.pointerDown(px, py, p)

		case ui.PointerMove:
			if g.press == pressStrip {
				g.Engine.PointerMove(p, now)
			}

		case ui.PointerUp:
			if g.press != pressStrip {
				break
			}
			g.press = pressNone
			if g.Engine.PointerUp(p, now) {
				if d, ok := g.strip.ItemAt(px, py, len(g.Engine.Displayed())); ok {
					g.Engine.ClickItem(d)
				}
			}

		case ui.PointerCancel:
			if g.press == pressStrip {
				g.Engine.PointerCancel()
			}
			g.press = pressNone
		}
	}
}

func (g *Game) pointerDown(px, py int, p carousel.Point) {
	_, src := g.failure()
	if g.errDisplay.HandleClick(px, py, src) {
		return
	}
	if dir := g.strip.ArrowAt(px, py); dir != 0 {
		if dir < 0 {
			g.Engine.Prev()
		} else {
			g.Engine.Next()
		}
		return
	}
	if g.thumbs != nil {
		if dir := g.thumbs.ArrowAt(px, py); dir != 0 {
			g.Engine.SlideThumbs(dir)
			return
		}
		if g.thumbs.Contains(px, py) {
			if i, ok := g.thumbs.ThumbAt(px, py); ok {
				g.Engine.ClickThumb(i)
			}
			return
		}
	}
	if g.strip.Contains(px, py) {
		g.press = pressStrip
		g.Engine.PointerDown(p, g.Engine.Scheduler().Now())
	}
}

// copySource puts the selected item's source on the clipboard.
func (g *Game) copySource() {
	it, ok := g.Engine.SelectedItem()
	if !ok {
		return
	}
	if err := ui.WriteClipboard(it.Src); err != nil {
		log.Printf("copy failed: %v", err)
		return
	}
	g.errDisplay.Copied()
}
