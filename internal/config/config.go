package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/depeter/stripview/internal/carousel"
)

var ErrInvalidValue = errors.New("invalid config value")

type Config struct {
	Carousel CarouselConfig `toml:"carousel"`
	Thumbs   ThumbsConfig   `toml:"thumbs"`
	Playback PlaybackConfig `toml:"playback"`
	UI       UIConfig       `toml:"ui"`
	Keybinds KeybindConfig  `toml:"keybinds"`
}

type CarouselConfig struct {
	Loop           bool    `toml:"loop"`
	Loading        string  `toml:"loading"`
	Arrows         bool    `toml:"arrows"`
	ImageCounter   bool    `toml:"image_counter"`
	MouseGestures  bool    `toml:"mouse_gestures"`
	TouchGestures  bool    `toml:"touch_gestures"`
	// Share of the viewport width one item takes; below 1 the neighbours peek in.
	ItemWidthRatio float64 `toml:"item_width_ratio"`
}

type ThumbsConfig struct {
	Enabled        bool    `toml:"enabled"`
	Arrows         bool    `toml:"arrows"`
	AutoScroll     bool    `toml:"auto_scroll"`
	Orientation    string  `toml:"orientation"`
	SlideByLength  float64 `toml:"slide_by_length"`
	ScrollBehavior string  `toml:"scroll_behavior"`
	Size           int     `toml:"size"`
}

type PlaybackConfig struct {
	HWAccel   string `toml:"hwdec"`
	Volume    int    `toml:"volume"`
	LoopVideo bool   `toml:"loop_video"`
}

type UIConfig struct {
	Fullscreen bool   `toml:"fullscreen"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Font       string `toml:"font"`
	FontSize   int    `toml:"font_size"`
}

type KeybindConfig struct {
	Next       string `toml:"next"`
	Prev       string `toml:"prev"`
	First      string `toml:"first"`
	Last       string `toml:"last"`
	PlayPause  string `toml:"play_pause"`
	CopySource string `toml:"copy_source"`
	Fullscreen string `toml:"fullscreen"`
}

func DefaultConfig() *Config {
	return &Config{
		Carousel: CarouselConfig{
			Loop:           true,
			Loading:        "auto",
			Arrows:         true,
			ImageCounter:   true,
			MouseGestures:  true,
			TouchGestures:  true,
			ItemWidthRatio: 1.0,
		},
		Thumbs: ThumbsConfig{
			Enabled:        true,
			Arrows:         true,
			AutoScroll:     true,
			Orientation:    "bottom",
			SlideByLength:  0,
			ScrollBehavior: "smooth",
			Size:           96,
		},
		Playback: PlaybackConfig{
			HWAccel: "auto-safe",
			Volume:  100,
		},
		UI: UIConfig{
			Fullscreen: false,
			Width:      1280,
			Height:     800,
			Font:       "DejaVuSans",
			FontSize:   16,
		},
		Keybinds: KeybindConfig{
			Next:       "Right",
			Prev:       "Left",
			First:      "Home",
			Last:       "End",
			PlayPause:  "Space",
			CopySource: "C",
			Fullscreen: "F",
		},
	}
}

// Validate rejects enum values and sizes the viewer cannot work with.
func (c *Config) Validate() error {
	if _, err := carousel.ParseLoading(c.Carousel.Loading); err != nil {
		return fmt.Errorf("carousel.loading: %w", err)
	}
	if c.Carousel.ItemWidthRatio <= 0 || c.Carousel.ItemWidthRatio > 1 {
		return fmt.Errorf("%w: carousel.item_width_ratio %v not in (0, 1]", ErrInvalidValue, c.Carousel.ItemWidthRatio)
	}
	switch c.Thumbs.Orientation {
	case "bottom", "top", "left", "right":
	default:
		return fmt.Errorf("%w: thumbs.orientation %q", ErrInvalidValue, c.Thumbs.Orientation)
	}
	switch c.Thumbs.ScrollBehavior {
	case "smooth", "auto":
	default:
		return fmt.Errorf("%w: thumbs.scroll_behavior %q", ErrInvalidValue, c.Thumbs.ScrollBehavior)
	}
	if c.Thumbs.Size <= 0 {
		return fmt.Errorf("%w: thumbs.size %d", ErrInvalidValue, c.Thumbs.Size)
	}
	if c.Thumbs.SlideByLength < 0 {
		return fmt.Errorf("%w: thumbs.slide_by_length %v", ErrInvalidValue, c.Thumbs.SlideByLength)
	}
	return nil
}

// Vertical reports whether the thumbnail strip runs along a side edge.
func (t ThumbsConfig) Vertical() bool {
	return t.Orientation == "left" || t.Orientation == "right"
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "stripview"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads path over the defaults. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
