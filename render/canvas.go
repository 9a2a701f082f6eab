package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/lizard"
)

var whiteImage = ebiten.NewImage(3, 3)

// whiteSubImage is an inner 1x1 region of whiteImage. Sampling the inner
// pixel avoids bleeding from the edge when triangles are filtered.
var whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

func init() {
	whiteImage.Fill(color.White)
}

// ebitenCanvas implements lizard.Canvas on an *ebiten.Image. All shapes are
// antialiased.
type ebitenCanvas struct {
	dst        *ebiten.Image
	primitives int

	verts []ebiten.Vertex
	inds  []uint16
}

var _ lizard.Canvas = (*ebitenCanvas)(nil)

// begin retargets the canvas and resets the primitive counter.
func (c *ebitenCanvas) begin(dst *ebiten.Image) {
	c.dst = dst
	c.primitives = 0
}

func (c *ebitenCanvas) StrokeLine(a, b lizard.Vec2, width float64, col lizard.Color) {
	c.primitives++
	vector.StrokeLine(c.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
		float32(width), toNRGBA(col), true)
}

func (c *ebitenCanvas) FillCircle(center lizard.Vec2, radius float64, col lizard.Color) {
	c.primitives++
	vector.DrawFilledCircle(c.dst, float32(center.X), float32(center.Y), float32(radius),
		toNRGBA(col), true)
}

func (c *ebitenCanvas) StrokeCircle(center lizard.Vec2, radius, width float64, col lizard.Color) {
	c.primitives++
	vector.StrokeCircle(c.dst, float32(center.X), float32(center.Y), float32(radius),
		float32(width), toNRGBA(col), true)
}

func (c *ebitenCanvas) FillPolygon(points []lizard.Vec2, col lizard.Color) {
	c.verts, c.inds = appendPolygonFan(c.verts[:0], c.inds[:0], points, col)
	if len(c.inds) == 0 {
		return
	}
	c.primitives++
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
	}
	c.dst.DrawTriangles(c.verts, c.inds, whiteSubImage, op)
}

func (c *ebitenCanvas) StrokePolygon(points []lizard.Vec2, width float64, col lizard.Color) {
	if len(points) < 2 {
		return
	}
	clr := toNRGBA(col)
	c.primitives++
	for i := range points {
		a, b := points[i], points[(i+1)%len(points)]
		vector.StrokeLine(c.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			float32(width), clr, true)
	}
}

// appendPolygonFan triangulates a convex polygon as a fan around its first
// vertex. Every vertex samples the white pixel and carries the fill color as
// straight-alpha color scale. Fewer than 3 points produce nothing.
func appendPolygonFan(verts []ebiten.Vertex, inds []uint16, points []lizard.Vec2, col lizard.Color) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 3 {
		return verts, inds
	}
	base := uint16(len(verts))
	for _, p := range points {
		verts = append(verts, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(col.R),
			ColorG: float32(col.G),
			ColorB: float32(col.B),
			ColorA: float32(col.A),
		})
	}
	for i := 1; i < n-1; i++ {
		inds = append(inds, base, base+uint16(i), base+uint16(i+1))
	}
	return verts, inds
}

func toNRGBA(c lizard.Color) color.NRGBA {
	r, g, b, a := c.RGBA8()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
