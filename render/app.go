package render

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/lizard"
)

// Defaults applied by NewApp when the corresponding RunConfig field is zero.
const (
	DefaultWidth  = 1024
	DefaultHeight = 768
	DefaultTPS    = 60
	DefaultTitle  = "Skeleton Lizard Follower - Press F11 for Fullscreen"
)

// PoseSink receives every Pose the App produces, once per frame, after the
// creature update and before drawing.
type PoseSink = lizard.PoseSink

// window is the subset of window state the App toggles.
type window interface {
	IsFullscreen() bool
	SetFullscreen(fullscreen bool)
}

type ebitenWindow struct{}

func (ebitenWindow) IsFullscreen() bool  { return ebiten.IsFullscreen() }
func (ebitenWindow) SetFullscreen(f bool) { ebiten.SetFullscreen(f) }

// App is the application context: it owns the creature, the window state
// and the per-frame input, and implements ebiten.Game.
type App struct {
	creature *lizard.Creature
	pose     lizard.Pose
	sink     PoseSink

	input  InputSource
	win    window
	tps    int
	frames uint64
	width  int
	height int

	cursor lizard.Vec2
	cmdBuf []Command

	// Scripted runs
	injectQueue []syntheticEvent
	runner      *TestRunner

	// ScreenshotDir is the directory where screenshots are saved.
	// Defaults to "screenshots".
	ScreenshotDir   string
	screenshotQueue []string

	canvas *ebitenCanvas
	hint   *hintOverlay
	fps    *fpsWidget

	debug      bool
	debugOut   io.Writer
	updateTime time.Duration
}

// NewApp builds an App from cfg. The creature spawns at the window center
// with the cursor resting on it.
func NewApp(cfg RunConfig) (*App, error) {
	return newApp(cfg, &ebitenInput{}, ebitenWindow{})
}

func newApp(cfg RunConfig, in InputSource, win window) (*App, error) {
	cfg = cfg.withDefaults()

	tuning := lizard.DefaultTuning()
	if cfg.Tuning != nil {
		tuning = *cfg.Tuning
	}
	spawn := lizard.Vec2{X: float64(cfg.Width) / 2, Y: float64(cfg.Height) / 2}
	c, err := lizard.NewCreature(spawn, tuning)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	a := &App{
		creature:      c,
		pose:          c.Pose(),
		sink:          cfg.Sink,
		input:         in,
		win:           win,
		tps:           cfg.TPS,
		width:         cfg.Width,
		height:        cfg.Height,
		cursor:        spawn,
		runner:        cfg.Script,
		ScreenshotDir: cfg.ScreenshotDir,
		canvas:        &ebitenCanvas{},
		debug:         cfg.Debug,
		debugOut:      os.Stderr,
	}
	if cfg.ShowHint {
		h, err := newHintOverlay(cfg.HintHold)
		if err != nil {
			// The hint is optional; run without it.
			_, _ = fmt.Fprintf(os.Stderr, "[lizard] hint: %v\n", err)
		} else {
			a.hint = h
		}
	}
	if cfg.ShowFPS {
		a.fps = &fpsWidget{}
	}
	return a, nil
}

// Creature returns the animated creature.
func (a *App) Creature() *lizard.Creature { return a.creature }

// Pose returns the pose produced by the most recent Update.
func (a *App) Pose() lizard.Pose { return a.pose }

// Frames returns the number of completed updates.
func (a *App) Frames() uint64 { return a.frames }

// Clock returns the animation clock in seconds: frames divided by TPS.
func (a *App) Clock() float64 {
	return float64(a.frames) / float64(a.tps)
}

// SetDebugMode enables per-frame timing output on stderr.
func (a *App) SetDebugMode(enabled bool) {
	a.debug = enabled
}

// Update reads input, applies commands and advances the creature one frame.
// Returns ebiten.Termination when the user quits.
func (a *App) Update() error {
	var start time.Time
	if a.debug {
		start = time.Now()
	}

	if a.runner != nil {
		a.runner.step(a)
	}

	cursor, cmds := a.processInput()
	for _, cmd := range cmds {
		if err := a.handleCommand(cmd); err != nil {
			return err
		}
	}

	a.frames++
	a.pose = a.creature.Update(cursor, a.Clock())
	if a.sink != nil {
		a.sink.EmitPose(a.pose)
	}

	dt := float32(1.0 / float64(a.tps))
	if a.hint != nil {
		a.hint.update(dt)
	}
	if a.fps != nil {
		a.fps.update(dt)
	}

	if a.debug {
		a.updateTime = time.Since(start)
	}
	return nil
}

func (a *App) handleCommand(cmd Command) error {
	switch cmd {
	case CommandToggleFullscreen:
		a.win.SetFullscreen(!a.win.IsFullscreen())
		if a.hint != nil {
			a.hint.show()
		}
	case CommandEscape:
		if !a.win.IsFullscreen() {
			return ebiten.Termination
		}
		a.win.SetFullscreen(false)
		if a.hint != nil {
			a.hint.show()
		}
	case CommandQuit:
		return ebiten.Termination
	}
	return nil
}

// Draw clears the screen to black and paints the current pose, then the
// overlays on top.
func (a *App) Draw(screen *ebiten.Image) {
	var start time.Time
	if a.debug {
		start = time.Now()
	}

	screen.Fill(color.Black)
	a.canvas.begin(screen)
	lizard.Paint(a.canvas, a.pose)

	if a.hint != nil {
		a.hint.draw(screen)
	}
	if a.fps != nil {
		a.fps.draw(screen)
	}

	a.flushScreenshots(screen)

	if a.debug {
		a.debugLog(debugStats{
			updateTime: a.updateTime,
			paintTime:  time.Since(start),
			primitives: a.canvas.primitives,
			frame:      a.frames,
			state:      a.pose.State,
			speed:      a.pose.Speed,
		})
	}
}

// Layout tracks the window size so the play field always fills it.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.width, a.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Size returns the current logical screen size.
func (a *App) Size() (width, height int) { return a.width, a.height }
