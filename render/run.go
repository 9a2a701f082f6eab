package render

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/lizard"
)

// RunConfig configures the window and the App created by Run.
type RunConfig struct {
	// Title is the window title. Defaults to DefaultTitle.
	Title string
	// Width and Height are the initial window size. Default 1024x768.
	Width, Height int
	// TPS is the update rate. The animation clock advances 1/TPS per frame.
	TPS int
	// ShowFPS draws the FPS/TPS widget in the top-right corner.
	ShowFPS bool
	// Debug prints per-frame timing to stderr.
	Debug bool
	// Fullscreen starts the window in fullscreen mode.
	Fullscreen bool
	// ShowHint draws the key-binding hint in the top-left corner.
	ShowHint bool
	// HintHold is how long, in seconds, the hint stays fully visible before
	// fading. Zero uses the default; negative keeps it up permanently.
	HintHold float64
	// IconPath loads the window icon from a PNG file. When empty the icon
	// is generated.
	IconPath string
	// NoIcon leaves the platform default icon in place.
	NoIcon bool
	// ScreenshotDir receives screenshots. Defaults to "screenshots".
	ScreenshotDir string
	// Tuning overrides the creature's default constants.
	Tuning *lizard.Tuning
	// Script drives the App from a JSON test script instead of the pointer.
	Script *TestRunner
	// Sink, if set, receives every frame's Pose.
	Sink PoseSink
}

func (cfg RunConfig) withDefaults() RunConfig {
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.TPS <= 0 {
		cfg.TPS = DefaultTPS
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	return cfg
}

// Run opens a resizable window and runs the lizard until the user quits.
// A clean quit (Esc while windowed, window close, or a scripted quit)
// returns nil.
func Run(cfg RunConfig) error {
	app, err := NewApp(cfg)
	if err != nil {
		return err
	}
	cfg = cfg.withDefaults()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetFullscreen(cfg.Fullscreen)

	if !cfg.NoIcon {
		icons, err := windowIcons(cfg.IconPath)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[lizard] icon: %v\n", err)
		} else {
			ebiten.SetWindowIcon(icons)
		}
	}

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
