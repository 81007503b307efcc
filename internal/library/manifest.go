package library

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/depeter/stripview/internal/carousel"
)

// Manifest is the YAML form of a hand-assembled collection:
//
//	items:
//	  - src: beach.jpg
//	    title: Beach
//	  - src: https://www.youtube.com/embed/abc
//	    kind: embed
//	    thumb: abc.jpg
type Manifest struct {
	Items []ManifestItem `yaml:"items"`
}

type ManifestItem struct {
	Src   string `yaml:"src"`
	Thumb string `yaml:"thumb"`
	Title string `yaml:"title"`
	Kind  string `yaml:"kind"`
}

// LoadManifest reads a manifest. Relative paths are resolved against the
// manifest's directory.
func LoadManifest(path string) ([]carousel.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	base, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	return m.Resolve(base)
}

// Resolve converts manifest entries to items. IDs are unique even when the
// same source is listed twice.
func (m Manifest) Resolve(base string) ([]carousel.Item, error) {
	items := make([]carousel.Item, 0, len(m.Items))
	seen := make(map[string]int)
	for i, mi := range m.Items {
		if strings.TrimSpace(mi.Src) == "" {
			return nil, fmt.Errorf("manifest item %d: missing src", i+1)
		}
		src := resolvePath(base, mi.Src)
		kind, err := parseKind(mi.Kind, src)
		if err != nil {
			return nil, fmt.Errorf("manifest item %d: %w", i+1, err)
		}
		title := mi.Title
		if title == "" {
			title = strings.TrimSuffix(filepath.Base(mi.Src), filepath.Ext(mi.Src))
		}

		id := src
		if n := seen[src]; n > 0 {
			id = fmt.Sprintf("%s#%d", src, n)
		}
		seen[src]++

		item := carousel.Item{ID: id, Src: src, Title: title, Kind: kind}
		if mi.Thumb != "" {
			item.Thumb = resolvePath(base, mi.Thumb)
		}
		items = append(items, item)
	}
	return items, nil
}

func resolvePath(base, p string) string {
	if isURL(p) || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

func isURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}

func parseKind(s, src string) (carousel.Kind, error) {
	switch strings.ToLower(s) {
	case "image":
		return carousel.KindImage, nil
	case "video":
		return carousel.KindVideo, nil
	case "embed":
		return carousel.KindEmbed, nil
	case "":
		if isURL(src) {
			return carousel.KindEmbed, nil
		}
		if kind, ok := KindOf(src); ok {
			return kind, nil
		}
		return carousel.KindImage, fmt.Errorf("cannot infer kind of %s", src)
	}
	return carousel.KindImage, fmt.Errorf("unknown kind %q", s)
}
