package render

import (
	"fmt"
	"time"

	"github.com/phanxgames/lizard"
)

// debugStats holds per-frame timing and paint metrics.
// Only populated when App.debug is true.
type debugStats struct {
	updateTime time.Duration
	paintTime  time.Duration
	primitives int
	frame      uint64
	state      lizard.MotionState
	speed      float64
}

// debugLog prints timing and paint stats to the debug writer (stderr).
func (a *App) debugLog(stats debugStats) {
	if !a.debug {
		return
	}
	_, _ = fmt.Fprintf(a.debugOut,
		"[lizard] frame %d | update: %v | paint: %v | total: %v\n",
		stats.frame, stats.updateTime, stats.paintTime, stats.updateTime+stats.paintTime)
	_, _ = fmt.Fprintf(a.debugOut,
		"[lizard] primitives: %d | state: %v | speed: %.2f\n",
		stats.primitives, stats.state, stats.speed)
}
