package lizard

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorBlack is used for eye pupils and the background.
var ColorBlack = Color{0, 0, 0, 1}

// WithAlpha returns a copy of c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// RGBA8 returns the color as 8-bit channels, clamped to [0, 255].
func (c Color) RGBA8() (r, g, b, a uint8) {
	return unit8(c.R), unit8(c.G), unit8(c.B), unit8(c.A)
}

func unit8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Vec2 is a 2D vector used for joint positions, offsets and directions.
// The coordinate system has its origin at the top-left, with Y increasing
// downward.
type Vec2 struct {
	X, Y float64
}

// FromAngle returns the point at the given distance from the origin in the
// direction theta (radians).
func FromAngle(theta, length float64) Vec2 {
	return Vec2{X: math.Cos(theta) * length, Y: math.Sin(theta) * length}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return math.Hypot(o.X-v.X, o.Y-v.Y) }

// Angle returns the direction of v in radians, in [-Pi, Pi]. The zero vector
// has angle 0.
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Polar returns the point at distance length from v in direction theta.
func (v Vec2) Polar(theta, length float64) Vec2 {
	return v.Add(FromAngle(theta, length))
}

// approach moves cur toward target by at most maxDelta without overshooting.
func approach(cur, target, maxDelta float64) float64 {
	if cur < target {
		cur += maxDelta
		if cur > target {
			cur = target
		}
		return cur
	}
	if cur > target {
		cur -= maxDelta
		if cur < target {
			cur = target
		}
	}
	return cur
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
