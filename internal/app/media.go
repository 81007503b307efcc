package app

import (
	"log"
	"slices"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/stripview/internal/cache"
	"github.com/depeter/stripview/internal/carousel"
)

// loadPurpose says what a finished decode resolves.
type loadPurpose int

const (
	purposeSource loadPurpose = iota // the item's own media
	purposeThumb                     // thumbnail strip entry
	purposePoster                    // still shown for a video before playback
)

type loadStatus int

const (
	statusNone loadStatus = iota
	statusLoading
	statusOK
	statusFailed
)

type waiter struct {
	id      string
	purpose loadPurpose
}

// mediaLoader requests decodes from the image cache and hands the results
// back to the UI goroutine, which owns every texture and all engine calls.
type mediaLoader struct {
	cache     *cache.ImageCache
	thumbSize int

	mu       sync.Mutex
	finished []cache.Result

	status  map[string]loadStatus
	paths   map[string]string // key -> source path
	waiting map[string][]waiter
	images  map[string]*ebiten.Image
	errs    map[string]error // item ID -> last failure
}

func newMediaLoader(c *cache.ImageCache, thumbSize int) *mediaLoader {
	return &mediaLoader{
		cache:     c,
		thumbSize: thumbSize,
		status:    make(map[string]loadStatus),
		paths:     make(map[string]string),
		waiting:   make(map[string][]waiter),
		images:    make(map[string]*ebiten.Image),
		errs:      make(map[string]error),
	}
}

// request asks for path at size on behalf of w. When the outcome is already
// known it is returned with known set and nothing is queued.
func (m *mediaLoader) request(path string, size int, w waiter) (ok, known bool) {
	key := cache.Key(path, size)
	switch m.status[key] {
	case statusOK:
		return true, true
	case statusFailed:
		return false, true
	case statusLoading:
		if !slices.Contains(m.waiting[key], w) {
			m.waiting[key] = append(m.waiting[key], w)
		}
		return false, false
	}
	m.status[key] = statusLoading
	m.paths[key] = path
	m.waiting[key] = append(m.waiting[key], w)
	m.cache.LoadAsync(path, size, m.deliver)
	return false, false
}

// deliver runs on cache workers.
func (m *mediaLoader) deliver(r cache.Result) {
	m.mu.Lock()
	m.finished = append(m.finished, r)
	m.mu.Unlock()
}

// drain uploads finished decodes and reports each waiter's outcome.
func (m *mediaLoader) drain(resolve func(w waiter, ok bool)) {
	m.mu.Lock()
	done := m.finished
	m.finished = nil
	m.mu.Unlock()

	for _, r := range done {
		key := cache.Key(r.Path, r.Size)
		ok := r.Err == nil && r.Image != nil
		if ok {
			m.images[key] = ebiten.NewImageFromImage(r.Image)
			m.status[key] = statusOK
		} else {
			m.status[key] = statusFailed
			log.Printf("image load failed: %v", r.Err)
		}
		ws := m.waiting[key]
		delete(m.waiting, key)
		for _, w := range ws {
			if !ok && w.purpose == purposeSource {
				m.errs[w.id] = r.Err
			}
			resolve(w, ok)
		}
	}
}

// image returns the uploaded texture for path at size, or nil.
func (m *mediaLoader) image(path string, size int) *ebiten.Image {
	if path == "" {
		return nil
	}
	return m.images[cache.Key(path, size)]
}

// source returns the still shown in the strip for it.
func (m *mediaLoader) source(it carousel.Item) *ebiten.Image {
	if it.IsVideo() {
		return m.image(it.Thumb, 0)
	}
	return m.image(it.Src, 0)
}

// thumb returns the thumbnail strip texture for it.
func (m *mediaLoader) thumb(it carousel.Item) *ebiten.Image {
	return m.image(it.ThumbSrc(), m.thumbSize)
}

// retain drops every texture no item in items refers to.
func (m *mediaLoader) retain(items []carousel.Item) {
	keep := make(map[string]bool, len(items)*2)
	for _, it := range items {
		keep[cache.Key(it.Src, 0)] = true
		keep[cache.Key(it.Thumb, 0)] = true
		keep[cache.Key(it.ThumbSrc(), m.thumbSize)] = true
	}
	for key, img := range m.images {
		if !keep[key] {
			img.Deallocate()
			m.cache.Forget(m.paths[key])
			delete(m.images, key)
			delete(m.status, key)
		}
	}
	for key, st := range m.status {
		if st == statusFailed && !keep[key] {
			delete(m.status, key)
		}
	}
	for id := range m.errs {
		if !hasID(items, id) {
			delete(m.errs, id)
		}
	}
}

func hasID(items []carousel.Item, id string) bool {
	return slices.ContainsFunc(items, func(it carousel.Item) bool { return it.ID == id })
}
