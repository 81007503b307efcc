package player

import (
	"fmt"
	"log"
	"runtime"
	"strconv"
	"sync"

	"github.com/gen2brain/go-mpv"

	"github.com/depeter/stripview/internal/config"
)

// Player wraps libmpv for the video items of the strip.
type Player struct {
	m       *mpv.Mpv
	mu      sync.Mutex
	playing bool
	paused  bool
	itemID  string

	OnPlaybackEnd func()
}

type option struct {
	name, value string
}

// options derives the mpv options for cfg. mpv owns the render pipeline
// and draws its own on-screen controller.
func options(cfg config.PlaybackConfig) []option {
	opts := []option{
		{"hwdec", cfg.HWAccel},
		{"vo", "gpu"},
		{"osc", "yes"},
		{"keep-open", "yes"},
		{"idle", "yes"},
		{"volume", strconv.Itoa(cfg.Volume)},
		// embeds are YouTube style URLs
		{"ytdl", "yes"},
	}
	if cfg.LoopVideo {
		opts = append(opts, option{"loop-file", "inf"})
	}
	return opts
}

// New creates and initializes a new mpv player instance.
func New(cfg config.PlaybackConfig) (*Player, error) {
	m := mpv.New()
	for _, o := range options(cfg) {
		must(m.SetOptionString(o.name, o.value))
	}

	if err := m.Initialize(); err != nil {
		return nil, fmt.Errorf("mpv init: %w", err)
	}

	p := &Player{m: m}
	m.ObserveProperty(0, "pause", mpv.FormatFlag)

	go p.eventLoop()

	return p, nil
}

func must(err error) {
	if err != nil {
		log.Printf("mpv option warning: %v", err)
	}
}

// SetWindowID sets the native window handle for embedded playback.
func (p *Player) SetWindowID(wid int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.m.SetOptionString("wid", strconv.FormatInt(wid, 10))
}

// Play starts playback of src for the item itemID.
func (p *Player) Play(src, itemID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.itemID = itemID
	p.playing = true
	p.paused = false
	if err := p.m.Command([]string{"loadfile", src}); err != nil {
		p.playing = false
		return fmt.Errorf("play %s: %w", src, err)
	}
	return p.m.SetPropertyString("pause", "no")
}

// Pause pauses playback, leaving the file loaded.
func (p *Player) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.playing {
		return nil
	}
	p.paused = true
	return p.m.SetPropertyString("pause", "yes")
}

// TogglePause toggles pause state.
func (p *Player) TogglePause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.m.Command([]string{"cycle", "pause"})
}

// Stop stops playback.
func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
	p.itemID = ""
	return p.m.Command([]string{"stop"})
}

// Destroy cleans up the mpv instance.
func (p *Player) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.m.TerminateDestroy()
}

// Playing returns whether media is currently loaded.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Paused returns the current pause state.
func (p *Player) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

// ItemID returns the currently playing item ID.
func (p *Player) ItemID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.itemID
}

func (p *Player) eventLoop() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	for {
		ev := p.m.WaitEvent(1.0)
		if ev == nil {
			continue
		}

		switch ev.EventID {
		case mpv.EventPropertyChange:
			if ev.Data == nil {
				continue
			}
			prop := ev.Property()
			if prop.Name == "pause" {
				if v, ok := prop.Data.(int); ok {
					p.mu.Lock()
					p.paused = v == 1
					p.mu.Unlock()
				}
			}

		case mpv.EventEnd:
			p.mu.Lock()
			wasPlaying := p.playing
			p.playing = false
			p.mu.Unlock()
			if ev.Data != nil {
				log.Printf("mpv end-file: reason=%s wasPlaying=%v", ev.EndFile().Reason, wasPlaying)
			}
			// Stop clears playing before the stop command, so its
			// end-file event is not reported.
			if wasPlaying && p.OnPlaybackEnd != nil {
				p.OnPlaybackEnd()
			}

		case mpv.EventShutdown:
			return
		}
	}
}
