package term

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/lizard"
)

const (
	// DefaultTPS is the frame rate used when Config.TPS is not positive.
	DefaultTPS = 60
	hintText   = "Move the mouse | q/ESC: Exit"
)

var hintColor = lizard.Color{R: 100.0 / 255, G: 100.0 / 255, B: 100.0 / 255, A: 1}

// Config configures a terminal run.
type Config struct {
	// ScaleX and ScaleY are world units per terminal column and row.
	// Default 8x16.
	ScaleX, ScaleY float64
	// TPS is the frame rate. The animation clock advances 1/TPS per frame.
	TPS int
	// HideHint suppresses the key-binding line on the top row.
	HideHint bool
	// Debug prints per-frame timing to stderr.
	Debug bool
	// Tuning overrides the creature's default constants.
	Tuning *lizard.Tuning
	// Sink, if set, receives every frame's Pose.
	Sink lizard.PoseSink
}

// Loop drives the creature from terminal mouse events and paints it into
// the screen cells. All state is touched on the goroutine calling Run or
// Step.
type Loop struct {
	screen   tcell.Screen
	canvas   *Canvas
	creature *lizard.Creature
	sink     lizard.PoseSink

	tps    int
	frames uint64
	cursor lizard.Vec2
	pose   lizard.Pose

	hint     bool
	debug    bool
	debugOut io.Writer
}

// NewLoop builds a Loop on an initialized screen. The creature spawns at
// the screen center.
func NewLoop(screen tcell.Screen, cfg Config) (*Loop, error) {
	if cfg.TPS <= 0 {
		cfg.TPS = DefaultTPS
	}
	tuning := lizard.DefaultTuning()
	if cfg.Tuning != nil {
		tuning = *cfg.Tuning
	}

	canvas := NewCanvas(screen, cfg.ScaleX, cfg.ScaleY)
	spawn := canvas.WorldSize().Scale(0.5)
	c, err := lizard.NewCreature(spawn, tuning)
	if err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	return &Loop{
		screen:   screen,
		canvas:   canvas,
		creature: c,
		sink:     cfg.Sink,
		tps:      cfg.TPS,
		cursor:   spawn,
		pose:     c.Pose(),
		hint:     !cfg.HideHint,
		debug:    cfg.Debug,
		debugOut: os.Stderr,
	}, nil
}

// Pose returns the pose produced by the most recent Step.
func (l *Loop) Pose() lizard.Pose { return l.pose }

// Cursor returns the current target in world coordinates.
func (l *Loop) Cursor() lizard.Vec2 { return l.cursor }

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (l *Loop) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		l.cursor = l.canvas.ToWorld(col, row)
	case *tcell.EventResize:
		l.screen.Sync()
	}
	return true
}

// Step advances the creature one frame toward the cursor and redraws.
func (l *Loop) Step() {
	var start time.Time
	if l.debug {
		start = time.Now()
	}

	l.frames++
	l.pose = l.creature.Update(l.cursor, float64(l.frames)/float64(l.tps))
	if l.sink != nil {
		l.sink.EmitPose(l.pose)
	}

	l.canvas.Clear()
	lizard.Paint(l.canvas, l.pose)
	if l.hint {
		l.canvas.DrawText(1, 0, hintText, hintColor)
	}
	l.screen.Show()

	if l.debug {
		_, _ = fmt.Fprintf(l.debugOut, "[lizard] frame %d | step: %v | cells: %d | state: %v\n",
			l.frames, time.Since(start), l.canvas.Cells(), l.pose.State)
	}
}

// Run steps at TPS until a quit key arrives or the screen stops delivering
// events.
func (l *Loop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(l.tps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !l.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			l.Step()
		}
	}
}

// Run opens the terminal, enables mouse tracking and runs the lizard until
// the user quits.
func Run(cfg Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	loop, err := NewLoop(screen, cfg)
	if err != nil {
		return err
	}
	loop.Run()
	return nil
}
