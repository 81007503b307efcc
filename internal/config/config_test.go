package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/stripview/internal/carousel"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Carousel.Loop)
	assert.Equal(t, "auto", cfg.Carousel.Loading)
	assert.False(t, cfg.Thumbs.Vertical())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfigDirHonoursXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path, err := ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "stripview", "config.toml"), path)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[carousel]
loop = false
loading = "lazy"

[thumbs]
orientation = "left"
size = 64
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.False(t, cfg.Carousel.Loop)
	assert.Equal(t, "lazy", cfg.Carousel.Loading)
	assert.True(t, cfg.Thumbs.Vertical())
	assert.Equal(t, 64, cfg.Thumbs.Size)
	// untouched keys keep their defaults
	assert.True(t, cfg.Carousel.Arrows)
	assert.Equal(t, "smooth", cfg.Thumbs.ScrollBehavior)
}

func TestLoadFileRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"loading":     "[carousel]\nloading = \"sometimes\"\n",
		"orientation": "[thumbs]\norientation = \"diagonal\"\n",
		"behavior":    "[thumbs]\nscroll_behavior = \"instant\"\n",
		"ratio":       "[carousel]\nitem_width_ratio = 1.5\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
			_, err := LoadFile(path)
			require.Error(t, err)
			if name == "loading" {
				assert.ErrorIs(t, err, carousel.ErrInvalidLoading)
			} else {
				assert.ErrorIs(t, err, ErrInvalidValue)
			}
		})
	}
}

func TestLoadFileSyntaxError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[carousel\n"), 0o644))
	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg := DefaultConfig()
	cfg.Carousel.Loop = false
	cfg.Keybinds.Next = "L"
	require.NoError(t, cfg.Save())

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
