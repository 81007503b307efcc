package cache

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// MaxImageSize bounds full-resolution images so they fit in one texture.
const MaxImageSize = 4096

// ErrRemote is returned for sources that are not local files.
var ErrRemote = errors.New("remote sources are not loaded")

// Result is delivered to LoadAsync callbacks.
type Result struct {
	Path  string
	Size  int
	Image image.Image
	Err   error
}

// Key identifies one cached rendition.
func Key(path string, size int) string {
	return fmt.Sprintf("%s@%d", path, size)
}

// ImageCache decodes local images in the background, keeps them in memory
// and stores scaled thumbnails on disk.
type ImageCache struct {
	cacheDir string
	memory   sync.Map // key -> image.Image
	loading  sync.Map // key -> *loadEntry (in-flight dedup with waiters)
	sem      chan struct{}
}

// loadEntry tracks in-flight decodes and their waiters.
type loadEntry struct {
	mu        sync.Mutex
	callbacks []func(Result)
	done      bool
	res       Result
}

// NewImageCache creates a new image cache with the given disk directory.
func NewImageCache(cacheDir string) (*ImageCache, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, err
	}
	return &ImageCache{
		cacheDir: cacheDir,
		sem:      make(chan struct{}, 6),
	}, nil
}

// DefaultDir returns the thumbnail cache directory under the user cache dir.
func DefaultDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "stripview", "thumbs"), nil
}

// Get returns a cached image if available, or nil.
func (ic *ImageCache) Get(path string, size int) image.Image {
	if v, ok := ic.memory.Load(Key(path, size)); ok {
		return v.(image.Image)
	}
	return nil
}

// LoadAsync decodes path in the background. A positive size scales the
// image to fit a size x size box and caches that thumbnail on disk; zero
// keeps the original resolution. The callback runs on a worker goroutine
// (or synchronously when the image is already in memory).
func (ic *ImageCache) LoadAsync(path string, size int, callback func(Result)) {
	key := Key(path, size)
	if v, ok := ic.memory.Load(key); ok {
		callback(Result{Path: path, Size: size, Image: v.(image.Image)})
		return
	}

	entry := &loadEntry{}
	entry.callbacks = append(entry.callbacks, callback)

	if existing, loaded := ic.loading.LoadOrStore(key, entry); loaded {
		existingEntry := existing.(*loadEntry)
		existingEntry.mu.Lock()
		if existingEntry.done {
			res := existingEntry.res
			existingEntry.mu.Unlock()
			callback(res)
			return
		}
		existingEntry.callbacks = append(existingEntry.callbacks, callback)
		existingEntry.mu.Unlock()
		return
	}

	go func() {
		ic.sem <- struct{}{}
		img, err := ic.load(path, size)
		<-ic.sem

		if err == nil {
			ic.memory.Store(key, img)
		}
		res := Result{Path: path, Size: size, Image: img, Err: err}

		entry.mu.Lock()
		entry.done = true
		entry.res = res
		cbs := entry.callbacks
		entry.callbacks = nil
		entry.mu.Unlock()
		// failed loads may be retried by later callers
		ic.loading.Delete(key)

		for _, cb := range cbs {
			cb(res)
		}
	}()
}

func (ic *ImageCache) load(path string, size int) (image.Image, error) {
	if strings.Contains(path, "://") {
		return nil, fmt.Errorf("%s: %w", path, ErrRemote)
	}
	if size <= 0 {
		img, err := decodeFile(path)
		if err != nil {
			return nil, err
		}
		return Fit(img, MaxImageSize), nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	diskPath := ic.diskPath(path, size, info.ModTime().UnixNano())

	if img, err := decodeFile(diskPath); err == nil {
		return img, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		// Corrupt cache file, remove and rebuild
		os.Remove(diskPath)
	}

	src, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	thumb := Fit(src, size)
	if err := writePNG(diskPath, thumb); err != nil {
		// the thumbnail is still usable, only the disk copy is lost
		os.Remove(diskPath)
	}
	return thumb, nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func writePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Fit scales img down to fit inside a size x size box, keeping its aspect
// ratio. Images that already fit are returned unchanged.
func Fit(img image.Image, size int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= size && h <= size || w == 0 || h == 0 {
		return img
	}
	nw, nh := size, size
	if w > h {
		nh = max(1, h*size/w)
	} else {
		nw = max(1, w*size/h)
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

func (ic *ImageCache) diskPath(path string, size int, mtime int64) string {
	h := sha256.Sum256([]byte(fmt.Sprintf("%s|%d|%d", path, size, mtime)))
	name := fmt.Sprintf("%x", h[:16])
	return filepath.Join(ic.cacheDir, name[:2], name+".png")
}

// CacheDir returns the disk cache directory path.
func (ic *ImageCache) CacheDir() string {
	return ic.cacheDir
}

// Forget drops every in-memory rendition of path.
func (ic *ImageCache) Forget(path string) {
	prefix := path + "@"
	ic.memory.Range(func(k, _ any) bool {
		if strings.HasPrefix(k.(string), prefix) {
			ic.memory.Delete(k)
		}
		return true
	})
}

// Clear removes all cached images from memory.
func (ic *ImageCache) Clear() {
	ic.memory.Range(func(k, _ any) bool {
		ic.memory.Delete(k)
		return true
	})
}

// ClearDisk removes all cached images from disk.
func (ic *ImageCache) ClearDisk() error {
	return os.RemoveAll(ic.cacheDir)
}
