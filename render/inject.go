package render

import "github.com/phanxgames/lizard"

// syntheticEvent is one injected frame of input: a cursor position, a
// command, or both.
type syntheticEvent struct {
	cursor    lizard.Vec2
	hasCursor bool
	cmd       Command
}

// InjectMove queues a cursor move to (x, y) in screen coordinates. The event
// is consumed on the next frame's Update.
func (a *App) InjectMove(x, y float64) {
	a.injectQueue = append(a.injectQueue, syntheticEvent{
		cursor:    lizard.Vec2{X: x, Y: y},
		hasCursor: true,
	})
}

// InjectGlide queues a straight cursor sweep from (fromX, fromY) to
// (toX, toY), one position per frame. The sequence consumes frames frames and
// ends exactly on the destination. Minimum frames is 1.
func (a *App) InjectGlide(fromX, fromY, toX, toY float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	if frames == 1 {
		a.InjectMove(toX, toY)
		return
	}
	for i := range frames {
		t := float64(i) / float64(frames-1)
		a.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// InjectCommand queues a command. Consumes one frame.
func (a *App) InjectCommand(cmd Command) {
	a.injectQueue = append(a.injectQueue, syntheticEvent{cmd: cmd})
}

// processInjectedInput pops one event from the inject queue and applies it.
// Returns true if an event was consumed (real input should be skipped).
func (a *App) processInjectedInput() bool {
	if len(a.injectQueue) == 0 {
		return false
	}
	evt := a.injectQueue[0]
	copy(a.injectQueue, a.injectQueue[1:])
	a.injectQueue = a.injectQueue[:len(a.injectQueue)-1]

	if evt.hasCursor {
		a.cursor = evt.cursor
	}
	if evt.cmd != 0 {
		a.cmdBuf = append(a.cmdBuf, evt.cmd)
	}
	return true
}
