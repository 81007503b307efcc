package library

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/depeter/stripview/internal/carousel"
)

const defaultSettle = 300 * time.Millisecond

// Watcher rescans a folder whenever media files appear, vanish or get
// renamed. Bursts of file events collapse into one rescan.
type Watcher struct {
	dir    string
	settle time.Duration
	fsw    *fsnotify.Watcher

	// Items receives the new collection after each rescan.
	Items chan []carousel.Item
	// Errors receives scan and watch errors.
	Errors chan error

	done chan struct{}
}

// Watch starts watching dir until ctx is cancelled or Close is called.
// settle is the quiet period before a rescan (300ms if zero).
func Watch(ctx context.Context, dir string, settle time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(abs); err != nil {
		fsw.Close()
		return nil, err
	}
	if settle <= 0 {
		settle = defaultSettle
	}
	w := &Watcher{
		dir:    abs,
		settle: settle,
		fsw:    fsw,
		Items:  make(chan []carousel.Item, 1),
		Errors: make(chan error, 1),
		done:   make(chan struct{}),
	}
	go w.loop(ctx)
	return w, nil
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if relevant(ev) {
				timer.Reset(w.settle)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.sendErr(err)
		case <-timer.C:
			items, err := Scan(w.dir)
			if err != nil {
				w.sendErr(err)
				continue
			}
			// keep only the newest collection
			select {
			case <-w.Items:
			default:
			}
			w.Items <- items
		}
	}
}

func relevant(ev fsnotify.Event) bool {
	if ev.Op == fsnotify.Chmod {
		return false
	}
	_, ok := KindOf(ev.Name)
	return ok
}

func (w *Watcher) sendErr(err error) {
	select {
	case w.Errors <- err:
	default:
		log.Printf("watch %s: %v", w.dir, err)
	}
}

// Close stops watching and waits for the loop to exit.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	<-w.done
	return err
}
