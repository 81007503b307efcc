package cache

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func load(t *testing.T, ic *ImageCache, path string, size int) Result {
	t.Helper()
	ch := make(chan Result, 1)
	ic.LoadAsync(path, size, func(r Result) { ch <- r })
	select {
	case r := <-ch:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("load did not finish")
		return Result{}
	}
}

func countFiles(t *testing.T, dir string) int {
	t.Helper()
	n := 0
	err := filepath.WalkDir(dir, func(_ string, d os.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			n++
		}
		return err
	})
	require.NoError(t, err)
	return n
}

func TestLoadFullImage(t *testing.T) {
	ic, err := NewImageCache(t.TempDir())
	require.NoError(t, err)
	path := writeTestPNG(t, t.TempDir(), "a.png", 40, 20)

	r := load(t, ic, path, 0)
	require.NoError(t, r.Err)
	assert.Equal(t, image.Pt(40, 20), r.Image.Bounds().Size())
	assert.Same(t, r.Image, ic.Get(path, 0))
	assert.Zero(t, countFiles(t, ic.CacheDir()), "full images are not written to disk")
}

func TestLoadThumbnailIsScaledAndCached(t *testing.T) {
	cacheDir := t.TempDir()
	ic, err := NewImageCache(cacheDir)
	require.NoError(t, err)
	path := writeTestPNG(t, t.TempDir(), "wide.png", 200, 100)

	r := load(t, ic, path, 50)
	require.NoError(t, r.Err)
	assert.Equal(t, image.Pt(50, 25), r.Image.Bounds().Size())
	assert.Equal(t, 1, countFiles(t, cacheDir))

	// a fresh cache over the same directory reads the disk copy
	ic2, err := NewImageCache(cacheDir)
	require.NoError(t, err)
	r = load(t, ic2, path, 50)
	require.NoError(t, r.Err)
	assert.Equal(t, image.Pt(50, 25), r.Image.Bounds().Size())
	assert.Equal(t, 1, countFiles(t, cacheDir))
}

func TestLoadErrors(t *testing.T) {
	ic, err := NewImageCache(t.TempDir())
	require.NoError(t, err)

	r := load(t, ic, filepath.Join(t.TempDir(), "missing.png"), 0)
	assert.ErrorIs(t, r.Err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.jpg")
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0o644))
	r = load(t, ic, bad, 64)
	assert.Error(t, r.Err)
	assert.Nil(t, ic.Get(bad, 64))

	r = load(t, ic, "https://example.com/a.jpg", 0)
	assert.ErrorIs(t, r.Err, ErrRemote)
}

func TestLoadAsyncNotifiesEveryCaller(t *testing.T) {
	ic, err := NewImageCache(t.TempDir())
	require.NoError(t, err)
	path := writeTestPNG(t, t.TempDir(), "a.png", 64, 64)

	var wg sync.WaitGroup
	results := make(chan Result, 10)
	for range 10 {
		wg.Add(1)
		ic.LoadAsync(path, 32, func(r Result) {
			results <- r
			wg.Done()
		})
	}
	wg.Wait()
	close(results)
	for r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, image.Pt(32, 32), r.Image.Bounds().Size())
	}
}

func TestForgetAndClear(t *testing.T) {
	ic, err := NewImageCache(t.TempDir())
	require.NoError(t, err)
	dir := t.TempDir()
	a := writeTestPNG(t, dir, "a.png", 10, 10)
	b := writeTestPNG(t, dir, "b.png", 10, 10)
	load(t, ic, a, 0)
	load(t, ic, a, 8)
	load(t, ic, b, 0)

	ic.Forget(a)
	assert.Nil(t, ic.Get(a, 0))
	assert.Nil(t, ic.Get(a, 8))
	assert.NotNil(t, ic.Get(b, 0))

	ic.Clear()
	assert.Nil(t, ic.Get(b, 0))
}

func TestFit(t *testing.T) {
	tall := image.NewRGBA(image.Rect(0, 0, 30, 90))
	assert.Equal(t, image.Pt(10, 30), Fit(tall, 30).Bounds().Size())

	small := image.NewRGBA(image.Rect(0, 0, 8, 8))
	assert.Same(t, image.Image(small), Fit(small, 30))
}
