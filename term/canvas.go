package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/phanxgames/lizard"
)

const (
	solidRune = '█'
	shadeRune = '░'

	// Fills below this alpha are drawn with the shade glyph.
	shadeAlpha = 0.5
)

// Canvas rasterizes lizard primitives into terminal cells. World coordinates
// map to cells by scaleX world units per column and scaleY per row; a
// terminal cell is roughly twice as tall as it is wide, so the default
// scale is 8x16.
type Canvas struct {
	screen tcell.Screen
	scaleX float64
	scaleY float64
	bg     colorful.Color

	// cells counts cell writes since the last Clear.
	cells int
}

var _ lizard.Canvas = (*Canvas)(nil)

// NewCanvas returns a Canvas drawing onto s. Non-positive scales fall back
// to 8x16.
func NewCanvas(s tcell.Screen, scaleX, scaleY float64) *Canvas {
	if scaleX <= 0 {
		scaleX = 8
	}
	if scaleY <= 0 {
		scaleY = 16
	}
	return &Canvas{screen: s, scaleX: scaleX, scaleY: scaleY}
}

// Clear blanks the screen to the black background.
func (c *Canvas) Clear() {
	c.cells = 0
	c.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	c.screen.Clear()
}

// Cells returns the number of cells written since the last Clear.
func (c *Canvas) Cells() int { return c.cells }

// ToWorld maps the center of cell (col, row) to world coordinates.
func (c *Canvas) ToWorld(col, row int) lizard.Vec2 {
	return lizard.Vec2{X: (float64(col) + 0.5) * c.scaleX, Y: (float64(row) + 0.5) * c.scaleY}
}

// ToCell maps a world position to the cell containing it.
func (c *Canvas) ToCell(p lizard.Vec2) (col, row int) {
	return int(math.Floor(p.X / c.scaleX)), int(math.Floor(p.Y / c.scaleY))
}

// WorldSize returns the screen extent in world units.
func (c *Canvas) WorldSize() lizard.Vec2 {
	w, h := c.screen.Size()
	return lizard.Vec2{X: float64(w) * c.scaleX, Y: float64(h) * c.scaleY}
}

// style composites col over the background and returns a foreground style.
func (c *Canvas) style(col lizard.Color) tcell.Style {
	fg := colorful.Color{R: col.R, G: col.G, B: col.B}
	mixed := c.bg.BlendRgb(fg, math.Max(0, math.Min(1, col.A))).Clamped()
	r, g, b := mixed.RGB255()
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b))).
		Background(tcell.ColorBlack)
}

func (c *Canvas) set(col, row int, r rune, st tcell.Style) {
	w, h := c.screen.Size()
	if col < 0 || row < 0 || col >= w || row >= h {
		return
	}
	c.screen.SetContent(col, row, r, nil, st)
	c.cells++
}

// StrokeLine plots a one-cell-wide Bresenham line. Width is below cell
// resolution for every stroke the painter emits.
func (c *Canvas) StrokeLine(a, b lizard.Vec2, _ float64, col lizard.Color) {
	st := c.style(col)
	x0, y0 := c.ToCell(a)
	x1, y1 := c.ToCell(b)
	bresenham(x0, y0, x1, y1, func(x, y int) { c.set(x, y, solidRune, st) })
}

// FillCircle fills every cell whose center lies inside the circle, and
// always at least the cell holding the center.
func (c *Canvas) FillCircle(center lizard.Vec2, radius float64, col lizard.Color) {
	st := c.style(col)
	c0, r0 := c.ToCell(lizard.Vec2{X: center.X - radius, Y: center.Y - radius})
	c1, r1 := c.ToCell(lizard.Vec2{X: center.X + radius, Y: center.Y + radius})
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			if c.ToWorld(x, y).Dist(center) <= radius {
				c.set(x, y, solidRune, st)
			}
		}
	}
	cx, cy := c.ToCell(center)
	c.set(cx, cy, solidRune, st)
}

// StrokeCircle plots the cells the circumference passes through.
func (c *Canvas) StrokeCircle(center lizard.Vec2, radius, _ float64, col lizard.Color) {
	st := c.style(col)
	// One sample per half cell along the circumference.
	steps := max(8, int(math.Ceil(2*math.Pi*radius/(math.Min(c.scaleX, c.scaleY)/2))))
	for i := range steps {
		p := center.Polar(2*math.Pi*float64(i)/float64(steps), radius)
		x, y := c.ToCell(p)
		c.set(x, y, solidRune, st)
	}
}

// FillPolygon fills the cells whose centers lie inside the polygon.
// Translucent fills use a shade glyph.
func (c *Canvas) FillPolygon(points []lizard.Vec2, col lizard.Color) {
	if len(points) < 3 {
		return
	}
	st := c.style(col)
	r := solidRune
	if col.A < shadeAlpha {
		r = shadeRune
	}

	minX, minY, maxX, maxY := bounds(points)
	c0, r0 := c.ToCell(lizard.Vec2{X: minX, Y: minY})
	c1, r1 := c.ToCell(lizard.Vec2{X: maxX, Y: maxY})
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			if pointInPolygon(c.ToWorld(x, y), points) {
				c.set(x, y, r, st)
			}
		}
	}
}

// StrokePolygon outlines a closed polygon.
func (c *Canvas) StrokePolygon(points []lizard.Vec2, width float64, col lizard.Color) {
	for i := range points {
		c.StrokeLine(points[i], points[(i+1)%len(points)], width, col)
	}
}

// DrawText writes s starting at cell (col, row).
func (c *Canvas) DrawText(col, row int, s string, fg lizard.Color) {
	st := c.style(fg)
	for _, r := range s {
		c.set(col, row, r, st)
		col++
	}
}

func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// pointInPolygon is the even-odd crossing test.
func pointInPolygon(p lizard.Vec2, poly []lizard.Vec2) bool {
	in := false
	j := len(poly) - 1
	for i := range poly {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
		j = i
	}
	return in
}

func bounds(points []lizard.Vec2) (minX, minY, maxX, maxY float64) {
	minX, minY = points[0].X, points[0].Y
	maxX, maxY = minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
