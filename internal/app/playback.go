package app

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/stripview/internal/carousel"
	"github.com/depeter/stripview/internal/player"
	"github.com/depeter/stripview/internal/ui"
)

// initPlayer creates the mpv player instance. Call after the window is visible.
func (g *Game) initPlayer() error {
	p, err := player.New(g.Config.Playback)
	if err != nil {
		return err
	}
	p.OnPlaybackEnd = func() {
		g.playbackEnded.Store(true)
	}
	g.Player = p
	return nil
}

// play hands the window to mpv for a video or embed item.
func (g *Game) play(item carousel.Item) {
	if g.Player == nil {
		if err := g.initPlayer(); err != nil {
			log.Printf("failed to init player: %v", err)
			return
		}
	}

	wid, err := player.GetWindowHandle()
	if err != nil {
		log.Printf("failed to get window handle: %v", err)
		return
	}
	if err := g.Player.SetWindowID(wid); err != nil {
		log.Printf("failed to set window ID: %v", err)
	}

	if err := g.Player.Play(item.Src, item.ID); err != nil {
		log.Printf("failed to play %s: %v", item.Src, err)
		g.Engine.ResolveLoad(item.ID, false)
		return
	}
	g.playbackEnded.Store(false)
	g.State = StatePlay
}

// stopPlayback returns the window to the strip.
func (g *Game) stopPlayback() {
	if g.Player != nil && g.Player.Playing() {
		if err := g.Player.Stop(); err != nil {
			log.Printf("mpv stop: %v", err)
		}
	}
	g.playbackEnded.Store(false)
	g.State = StateBrowse
}

// handlePlaybackInput forwards keybinds to mpv (required on Windows where
// embedded mpv doesn't receive keyboard input directly). Navigating away
// stops playback through the engine's pause signal.
func (g *Game) handlePlaybackInput() {
	kb := &g.Config.Keybinds
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		inpututil.IsKeyJustPressed(ebiten.KeyBackspace),
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButton3):
		g.stopPlayback()
	case keyJustPressed(kb.PlayPause), inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if err := g.Player.TogglePause(); err != nil {
			log.Printf("mpv pause: %v", err)
		}
	case keyRepeating(kb.Next):
		g.Engine.Next()
	case keyRepeating(kb.Prev):
		g.Engine.Prev()
	case keyJustPressed(kb.Fullscreen):
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	case ui.KeyJustPressed(ebiten.KeyEnter):
		g.stopPlayback()
	}
}
