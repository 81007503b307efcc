package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/depeter/stripview/assets/icon"
	"github.com/depeter/stripview/internal/app"
	"github.com/depeter/stripview/internal/cache"
	"github.com/depeter/stripview/internal/carousel"
	"github.com/depeter/stripview/internal/config"
	"github.com/depeter/stripview/internal/library"
	"github.com/depeter/stripview/internal/ui"
)

// flags collects the command line overrides.
type flags struct {
	cfgPath    string
	loop       bool
	noLoop     bool
	loading    string
	start      string
	manifest   string
	fullscreen bool
	watch      bool
	debug      bool
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           "stripview [folder|file|manifest.yaml]",
		Short:         "Browse images and videos in a swipeable strip",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFile(f.cfgPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := applyFlags(cfg, &f); err != nil {
				return err
			}

			var path string
			if len(args) > 0 {
				path = args[0]
			}
			return run(cmd.Context(), cfg, path, &f)
		},
	}

	cmd.PersistentFlags().StringVar(&f.cfgPath, "config", defaultConfigPath(), "path to config file")
	cmd.Flags().BoolVar(&f.loop, "loop", false, "wrap around at both ends")
	cmd.Flags().BoolVar(&f.noLoop, "no-loop", false, "stop at the first and last item")
	cmd.Flags().StringVar(&f.loading, "loading", "", "when to load media: eager, lazy or auto")
	cmd.Flags().StringVar(&f.start, "start", "", "initial item: 1-based position or a name to search for")
	cmd.Flags().StringVar(&f.manifest, "manifest", "", "YAML manifest listing the items")
	cmd.Flags().BoolVar(&f.fullscreen, "fullscreen", false, "start in fullscreen")
	cmd.Flags().BoolVar(&f.watch, "watch", true, "reload when files in the folder change")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "log engine diagnostics and show the debug overlay")
	cmd.MarkFlagsMutuallyExclusive("loop", "no-loop")

	cmd.AddCommand(newConfigCmd(&f.cfgPath))
	cmd.AddCommand(newCacheCmd())

	return cmd
}

func defaultConfigPath() string {
	path, err := config.ConfigPath()
	if err != nil {
		return "config.toml"
	}
	return path
}

// applyFlags lays the command line over the loaded configuration.
func applyFlags(cfg *config.Config, f *flags) error {
	switch {
	case f.loop:
		cfg.Carousel.Loop = true
	case f.noLoop:
		cfg.Carousel.Loop = false
	}
	if f.loading != "" {
		if _, err := carousel.ParseLoading(f.loading); err != nil {
			return fmt.Errorf("--loading: %w", err)
		}
		cfg.Carousel.Loading = f.loading
	}
	if f.fullscreen {
		cfg.UI.Fullscreen = true
	}
	return nil
}

// source is where the items came from.
type source struct {
	items    []carousel.Item
	selected int
	// watchDir is the folder to watch, empty for manifests.
	watchDir string
}

// resolveSource turns the manifest flag or the path argument into items.
// With neither, the desktop folder chooser is asked.
func resolveSource(path, manifest string) (source, error) {
	if manifest != "" {
		items, err := library.LoadManifest(manifest)
		if err != nil {
			return source{}, err
		}
		return source{items: items}, nil
	}

	if path == "" {
		dir, err := library.ChooseFolder()
		if err != nil {
			return source{}, err
		}
		path = dir
	}

	items, selected, err := library.Open(path)
	if err != nil {
		return source{}, err
	}
	src := source{items: items, selected: selected}
	if info, err := os.Stat(path); err == nil {
		switch {
		case info.IsDir():
			src.watchDir = path
		case !isManifest(path):
			src.watchDir = filepath.Dir(path)
		}
	}
	return src, nil
}

func isManifest(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".yaml" || ext == ".yml"
}

func run(ctx context.Context, cfg *config.Config, path string, f *flags) error {
	src, err := resolveSource(path, f.manifest)
	if errors.Is(err, library.ErrCancelled) {
		return nil
	}
	if err != nil {
		return err
	}

	selected := src.selected
	if f.start != "" {
		if i := library.Find(src.items, f.start); i >= 0 {
			selected = i
		} else {
			log.Printf("no item matches %q, starting at the first", f.start)
		}
	}

	if err := ui.InitFonts(ui.LoadFont(cfg.UI.Font)); err != nil {
		return fmt.Errorf("init fonts: %w", err)
	}
	if err := ui.InitClipboard(); err != nil {
		// copying is optional
		log.Printf("clipboard unavailable: %v", err)
	}

	cacheDir, err := cache.DefaultDir()
	if err != nil {
		cacheDir = filepath.Join(os.TempDir(), "stripview", "thumbs")
	}
	imgCache, err := cache.NewImageCache(cacheDir)
	if err != nil {
		return fmt.Errorf("init image cache: %w", err)
	}

	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("stripview")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	game := app.NewGame(cfg, imgCache, src.items, selected, f.debug)
	defer game.Close()

	if f.watch && src.watchDir != "" {
		w, err := library.Watch(ctx, src.watchDir, 0)
		if err != nil {
			log.Printf("not watching %s: %v", src.watchDir, err)
		} else {
			game.Watcher = w
		}
	}

	return ebiten.RunGame(game)
}
