// Package library turns folders and manifests into carousel items.
package library

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/depeter/stripview/internal/carousel"
)

var ErrNoItems = errors.New("no media items found")

var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".webp": true, ".bmp": true, ".tif": true, ".tiff": true,
}

var videoExts = map[string]bool{
	".mp4": true, ".mkv": true, ".webm": true, ".mov": true,
	".avi": true, ".m4v": true,
}

// KindOf classifies a path by extension. ok is false for unsupported files.
func KindOf(path string) (kind carousel.Kind, ok bool) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case imageExts[ext]:
		return carousel.KindImage, true
	case videoExts[ext]:
		return carousel.KindVideo, true
	}
	return carousel.KindImage, false
}

// Scan lists the supported media directly inside dir, sorted by name.
// Hidden files are skipped.
func Scan(dir string) ([]carousel.Item, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	var items []carousel.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		kind, ok := KindOf(name)
		if !ok {
			continue
		}
		path := filepath.Join(abs, name)
		items = append(items, carousel.Item{
			ID:    path,
			Src:   path,
			Title: strings.TrimSuffix(name, filepath.Ext(name)),
			Kind:  kind,
		})
	}
	sort.Slice(items, func(i, j int) bool {
		return strings.ToLower(items[i].Title) < strings.ToLower(items[j].Title)
	})
	return items, nil
}

// Open resolves a command line argument: a directory is scanned, a .yaml
// or .yml file is read as a manifest and any other media file opens its
// folder with that file selected.
func Open(path string) (items []carousel.Item, selected int, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, 0, err
	}
	if info.IsDir() {
		items, err = Scan(path)
	} else {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			items, err = LoadManifest(path)
		default:
			if _, ok := KindOf(path); !ok {
				return nil, 0, fmt.Errorf("%s: unsupported file type", path)
			}
			items, err = Scan(filepath.Dir(path))
			if err == nil {
				abs, _ := filepath.Abs(path)
				selected = max(0, indexOf(items, abs))
			}
		}
	}
	if err != nil {
		return nil, 0, err
	}
	if len(items) == 0 {
		return nil, 0, fmt.Errorf("%s: %w", path, ErrNoItems)
	}
	return items, selected, nil
}

func indexOf(items []carousel.Item, src string) int {
	for i, it := range items {
		if it.Src == src {
			return i
		}
	}
	return -1
}
