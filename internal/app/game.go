package app

import (
	"fmt"
	"log"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/stripview/internal/cache"
	"github.com/depeter/stripview/internal/carousel"
	"github.com/depeter/stripview/internal/config"
	"github.com/depeter/stripview/internal/library"
	"github.com/depeter/stripview/internal/player"
	"github.com/depeter/stripview/internal/ui"
)

// AppState tracks who owns the window surface.
type AppState int

const (
	StateBrowse AppState = iota
	// StatePlay: mpv renders into the window via --wid.
	StatePlay
)

// pressTarget records where the current pointer session started.
type pressTarget int

const (
	pressNone pressTarget = iota
	pressStrip
)

// Game implements ebiten.Game and connects the carousel engine to the
// window, the image cache, the video player and the folder watcher.
type Game struct {
	Config  *config.Config
	Engine  *carousel.Engine
	Cache   *cache.ImageCache
	Player  *player.Player
	Watcher *library.Watcher

	State         AppState
	Width, Height int

	strip      *ui.StripView
	thumbs     *ui.ThumbView // nil when the thumbnail strip is disabled
	pointer    *ui.PointerTracker
	media      *mediaLoader
	errDisplay ui.ErrorDisplay
	press      pressTarget

	stripItems []ui.StripItem
	thumbItems []ui.ThumbItem

	// set from the mpv event goroutine
	playbackEnded atomic.Bool

	subs []carousel.Subscription
}

// NewGame creates the Game with all dependencies. selected is the initial
// item; debug routes engine diagnostics to the log.
func NewGame(cfg *config.Config, imgCache *cache.ImageCache, items []carousel.Item, selected int, debug bool) *Game {
	g := &Game{
		Config:  cfg,
		Cache:   imgCache,
		State:   StateBrowse,
		Width:   cfg.UI.Width,
		Height:  cfg.UI.Height,
		strip:   ui.NewStripView(cfg.Carousel.ItemWidthRatio),
		pointer: ui.NewPointerTracker(cfg.Carousel.MouseGestures, cfg.Carousel.TouchGestures),
		media:   newMediaLoader(imgCache, cfg.Thumbs.Size),
	}

	// a nil *ThumbView must not reach the engine as a non-nil interface
	var thumbGeo carousel.ThumbGeometry
	if cfg.Thumbs.Enabled {
		g.thumbs = ui.NewThumbView(float64(cfg.Thumbs.Size), cfg.Thumbs.Vertical())
		thumbGeo = g.thumbs
	}
	g.layout()

	g.Engine = carousel.New(engineOptions(cfg, selected, debug), g.strip, thumbGeo)
	g.subs = append(g.subs,
		g.Engine.OnItemClick(g.onItemClick),
		g.Engine.OnPause(g.onPause),
		g.Engine.OnSelect(g.onSelect),
	)
	if debug {
		ui.SetDebugOverlay(true)
		g.subs = append(g.subs,
			g.Engine.OnLoad(func(ev carousel.LoadEvent) {
				log.Printf("resolved %s thumb=%v ok=%v", ev.Item.ID, ev.Thumb, ev.OK)
			}),
			g.Engine.OnThumbClick(func(ev carousel.ThumbEvent) {
				log.Printf("thumbnail %d clicked", ev.Index)
			}),
		)
	}
	g.SetItems(items)
	return g
}

// engineOptions maps the configuration onto the engine.
func engineOptions(cfg *config.Config, selected int, debug bool) carousel.Options {
	opts := carousel.DefaultOptions()
	opts.Loop = cfg.Carousel.Loop
	if l, err := carousel.ParseLoading(cfg.Carousel.Loading); err == nil {
		opts.Loading = l
	}
	opts.Arrows = cfg.Carousel.Arrows
	opts.Selected = selected
	opts.ThumbArrows = cfg.Thumbs.Arrows
	opts.ThumbAutoScroll = cfg.Thumbs.AutoScroll
	opts.ThumbSlideBy = cfg.Thumbs.SlideByLength
	if cfg.Thumbs.ScrollBehavior == "auto" {
		opts.ScrollBehavior = carousel.ScrollAuto
	}
	if debug {
		opts.Logf = log.Printf
	}
	return opts
}

// SetItems replaces the collection shown by the strip.
func (g *Game) SetItems(items []carousel.Item) {
	if g.Player != nil && g.Player.Playing() && !hasID(items, g.Player.ItemID()) {
		g.stopPlayback()
	}
	if g.thumbs != nil {
		g.thumbs.SetCount(len(items))
	}
	g.Engine.SetItems(items)
	g.media.retain(items)
	if len(items) == 0 {
		ebiten.SetWindowTitle("stripview")
	}
}

// Close releases the engine, the watcher and the player.
func (g *Game) Close() {
	for _, s := range g.subs {
		s.Remove()
	}
	g.Engine.Close()
	if g.Watcher != nil {
		g.Watcher.Close()
	}
	if g.Player != nil {
		g.Player.Destroy()
	}
}

func (g *Game) layout() {
	ext := 0.0
	if g.thumbs != nil {
		ext = g.thumbs.Extent()
	}
	strip, thumbs := layoutRects(float64(g.Width), float64(g.Height), g.Config.Thumbs.Orientation, ext)
	g.strip.SetBounds(strip.X, strip.Y, strip.W, strip.H)
	if g.thumbs != nil {
		g.thumbs.SetBounds(thumbs.X, thumbs.Y, thumbs.W, thumbs.H)
	}
}

type rect struct {
	X, Y, W, H float64
}

// layoutRects splits the window between the strip and a thumbnail strip of
// thickness ext along the given edge.
func layoutRects(w, h float64, orientation string, ext float64) (strip, thumbs rect) {
	if ext <= 0 {
		return rect{0, 0, w, h}, rect{}
	}
	switch orientation {
	case "top":
		return rect{0, ext, w, h - ext}, rect{0, 0, w, ext}
	case "left":
		return rect{ext, 0, w - ext, h}, rect{0, 0, ext, h}
	case "right":
		return rect{0, 0, w - ext, h}, rect{w - ext, 0, ext, h}
	default:
		return rect{0, 0, w, h - ext}, rect{0, h - ext, w, ext}
	}
}

func (g *Game) Update() error {
	// Alt+Enter toggles fullscreen (works in all modes)
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// F12 toggles debug overlay (works in all modes)
	ui.ToggleDebugOverlay()

	g.drainWatcher()
	g.media.drain(g.resolved)

	switch g.State {
	case StateBrowse:
		g.handlePointer()
		g.handleKeys()

	case StatePlay:
		if g.playbackEnded.Swap(false) {
			g.State = StateBrowse
			break
		}
		g.handlePlaybackInput()
	}

	g.Engine.Tick()
	g.requestMedia()
	g.strip.Follow(g.Engine.ListX(), g.Engine.Animated())

	ui.UpdateInputState()
	return nil
}

func (g *Game) drainWatcher() {
	if g.Watcher == nil {
		return
	}
	select {
	case items := <-g.Watcher.Items:
		log.Printf("library changed: %d items", len(items))
		g.SetItems(items)
	case err := <-g.Watcher.Errors:
		log.Printf("watch error: %v", err)
	default:
	}
}

func (g *Game) resolved(w waiter, ok bool) {
	switch w.purpose {
	case purposeSource:
		g.Engine.ResolveLoad(w.id, ok)
	case purposeThumb:
		g.Engine.ResolveThumb(w.id, ok)
	}
}

// requestMedia starts loads for every displayed item the load policy
// admits and for the thumbnails in view.
func (g *Game) requestMedia() {
	for d, it := range g.Engine.Displayed() {
		st := g.Engine.State(it.ID)
		if st.Loaded || st.Failed || !g.Engine.ShouldResolve(d) {
			continue
		}
		g.resolveSource(it)
	}

	if g.thumbs == nil {
		return
	}
	items := g.Engine.Items()
	first, last := g.thumbs.VisibleRange()
	for i := first; i < last && i < len(items); i++ {
		g.resolveThumb(items[i])
	}
}

func (g *Game) resolveSource(it carousel.Item) {
	switch it.Kind {
	case carousel.KindEmbed:
		// played by mpv, nothing to decode
		g.Engine.ResolveLoad(it.ID, true)
	case carousel.KindVideo:
		if it.Thumb != "" {
			g.media.request(it.Thumb, 0, waiter{id: it.ID, purpose: purposePoster})
		}
		g.Engine.ResolveLoad(it.ID, true)
	default:
		if ok, known := g.media.request(it.Src, 0, waiter{id: it.ID, purpose: purposeSource}); known {
			g.Engine.ResolveLoad(it.ID, ok)
		}
	}
}

func (g *Game) resolveThumb(it carousel.Item) {
	if g.Engine.State(it.ID).ThumbFailed {
		return
	}
	if it.IsVideo() && it.Thumb == "" {
		// drawn as a play badge
		return
	}
	ok, known := g.media.request(it.ThumbSrc(), g.media.thumbSize, waiter{id: it.ID, purpose: purposeThumb})
	if known && !ok {
		g.Engine.ResolveThumb(it.ID, false)
	}
}

func (g *Game) onItemClick(ev carousel.ItemEvent) {
	if ev.Index != g.Engine.Selected() {
		// a neighbour peeking in
		g.Engine.Select(ev.Index)
		return
	}
	if ev.Item.IsVideo() {
		g.play(ev.Item)
	}
}

func (g *Game) onPause(ev carousel.ItemEvent) {
	if g.Player != nil && g.Player.Playing() && g.Player.ItemID() == ev.Item.ID {
		g.stopPlayback()
	}
}

func (g *Game) onSelect(ev carousel.SelectEvent) {
	ebiten.SetWindowTitle(windowTitle(ev.Item))
}

func windowTitle(it carousel.Item) string {
	if it.Title == "" {
		return "stripview"
	}
	return it.Title + " - stripview"
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.State == StatePlay {
		// mpv owns the window surface via --wid
		return
	}
	screen.Fill(ui.ColorBackground)

	if len(g.Engine.Items()) == 0 {
		ui.DrawTextCentered(screen, "No media", float64(g.Width)/2, float64(g.Height)/2, ui.FontSizeTitle, ui.ColorTextMuted)
		ui.DrawDebugOverlay(screen, g.debugLines())
		return
	}

	g.strip.Draw(screen, g.stripFrame())
	if g.thumbs != nil {
		g.thumbs.Draw(screen, g.thumbFrame())
	}
	msg, _ := g.failure()
	g.errDisplay.Draw(screen, msg, g.strip.X+24, g.strip.Y+g.strip.H-40, ui.FontSizeSmall)
	ui.DrawDebugOverlay(screen, g.debugLines())
}

func (g *Game) stripFrame() ui.StripFrame {
	displayed := g.Engine.Displayed()
	g.stripItems = g.stripItems[:0]
	playing := ""
	if g.Player != nil && g.Player.Playing() {
		playing = g.Player.ItemID()
	}
	for d, it := range displayed {
		st := g.Engine.State(it.ID)
		g.stripItems = append(g.stripItems, ui.StripItem{
			Image:   g.media.source(it),
			Title:   it.Title,
			Video:   it.IsVideo(),
			Pending: !st.Loaded && !st.Failed && !g.Engine.ShouldResolve(d),
			Failed:  st.Failed,
			Playing: it.ID == playing,
		})
	}
	f := ui.StripFrame{
		Items:    g.stripItems,
		Selected: g.Engine.Selected() + g.Engine.Fringe(),
		ShowPrev: g.Engine.ShowPrev(),
		ShowNext: g.Engine.ShowNext(),
	}
	if g.Config.Carousel.ImageCounter {
		f.Counter = g.Engine.Counter()
	}
	return f
}

func (g *Game) thumbFrame() ui.ThumbFrame {
	g.thumbItems = g.thumbItems[:0]
	for _, it := range g.Engine.Items() {
		g.thumbItems = append(g.thumbItems, ui.ThumbItem{
			Image:  g.media.thumb(it),
			Video:  it.IsVideo(),
			Failed: g.Engine.State(it.ID).ThumbFailed,
		})
	}
	start, end := g.Engine.ThumbArrows()
	return ui.ThumbFrame{
		Items:     g.thumbItems,
		Selected:  g.Engine.Selected(),
		ShowStart: start,
		ShowEnd:   end,
	}
}

// failure returns the message and source of a selected item that failed.
func (g *Game) failure() (msg, src string) {
	it, ok := g.Engine.SelectedItem()
	if !ok || !g.Engine.State(it.ID).Failed {
		return "", ""
	}
	msg = "Cannot open " + it.Title
	if err := g.media.errs[it.ID]; err != nil {
		msg = fmt.Sprintf("Cannot open %s: %v", it.Title, err)
	}
	return ui.Truncate(msg, ui.FontSizeSmall, g.strip.W*0.7), it.Src
}

func (g *Game) debugLines() []string {
	state := "browse"
	if g.State == StatePlay {
		state = "play"
	}
	lines := []string{
		fmt.Sprintf("item %s  loop=%v  loading=%s  state=%s", g.Engine.Counter(), g.Engine.Loop(), g.Engine.Loading(), state),
		fmt.Sprintf("listX %.1f  drawn %.1f  animated=%v", g.Engine.ListX(), g.strip.Scroll.Pos, g.Engine.Animated()),
		fmt.Sprintf("wrapping=%v  dragging=%v  tasks=%d", g.Engine.Wrapping(), g.Engine.Dragging(), g.Engine.Scheduler().Pending()),
		fmt.Sprintf("textures %d  displayed %d", len(g.media.images), len(g.Engine.Displayed())),
	}
	if it, ok := g.Engine.SelectedItem(); ok {
		st := g.Engine.State(it.ID)
		lines = append(lines, fmt.Sprintf("%s  seen=%v loaded=%v failed=%v", it.Kind, st.Seen, st.Loaded, st.Failed))
	}
	return lines
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.Width || outsideHeight != g.Height {
		g.Width, g.Height = outsideWidth, outsideHeight
		g.layout()
		g.Engine.Resize()
	}
	return g.Width, g.Height
}
