package lizard

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorCycler rotates the body hue. The rate depends on the motion state so
// the creature shifts color faster while running and holds still at rest.
type ColorCycler struct {
	tuning *Tuning
	hue    float64
}

// NewColorCycler returns a cycler starting at hue (degrees).
func NewColorCycler(t *Tuning, hue float64) *ColorCycler {
	return &ColorCycler{tuning: t, hue: wrapHue(hue)}
}

// Advance steps the hue by one frame and returns it.
func (c *ColorCycler) Advance(state MotionState) float64 {
	switch state {
	case Running:
		c.hue = wrapHue(c.hue + c.tuning.RunHueRate)
	case Walking:
		c.hue = wrapHue(c.hue + c.tuning.WalkHueRate)
	}
	return c.hue
}

// Hue returns the current hue in [0, 360).
func (c *ColorCycler) Hue() float64 { return c.hue }

// RGB converts the current hue to an opaque color.
func (c *ColorCycler) RGB() Color {
	return HueColor(c.hue, c.tuning.Saturation, c.tuning.Value)
}

// HueColor converts HSV (hue in degrees, s and v in [0, 1]) to an opaque
// Color.
func HueColor(hue, s, v float64) Color {
	rgb := colorful.Hsv(wrapHue(hue), s, v)
	return Color{R: rgb.R, G: rgb.G, B: rgb.B, A: 1}
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
