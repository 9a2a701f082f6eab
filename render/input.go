package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/lizard"
)

// Command is a discrete user request handled by the App between frames.
type Command uint8

const (
	CommandToggleFullscreen Command = iota + 1 // F11
	CommandEscape                              // Esc: leave fullscreen, or quit when windowed
	CommandQuit                                // quit unconditionally
)

func (c Command) String() string {
	switch c {
	case CommandToggleFullscreen:
		return "toggle-fullscreen"
	case CommandEscape:
		return "escape"
	case CommandQuit:
		return "quit"
	default:
		return "none"
	}
}

// InputSource supplies the per-frame pointer position and commands.
type InputSource interface {
	// Cursor returns the pointer position in screen pixels.
	Cursor() lizard.Vec2
	// AppendCommands appends the commands issued since the last frame.
	AppendCommands(dst []Command) []Command
}

// ebitenInput reads the mouse, the first active touch, and the keyboard.
type ebitenInput struct {
	touchIDs []ebiten.TouchID
}

func (in *ebitenInput) Cursor() lizard.Vec2 {
	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	if len(in.touchIDs) > 0 {
		x, y := ebiten.TouchPosition(in.touchIDs[0])
		return lizard.Vec2{X: float64(x), Y: float64(y)}
	}
	x, y := ebiten.CursorPosition()
	return lizard.Vec2{X: float64(x), Y: float64(y)}
}

func (in *ebitenInput) AppendCommands(dst []Command) []Command {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		dst = append(dst, CommandToggleFullscreen)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		dst = append(dst, CommandEscape)
	}
	return dst
}

// processInput resolves this frame's cursor and commands. An injected event
// takes precedence over real input; while a script is attached, the real
// pointer is ignored entirely so scripted runs are reproducible.
func (a *App) processInput() (lizard.Vec2, []Command) {
	a.cmdBuf = a.cmdBuf[:0]

	if a.processInjectedInput() {
		return a.cursor, a.cmdBuf
	}
	if a.runner != nil {
		return a.cursor, a.cmdBuf
	}

	a.cursor = a.input.Cursor()
	a.cmdBuf = a.input.AppendCommands(a.cmdBuf)
	return a.cursor, a.cmdBuf
}
