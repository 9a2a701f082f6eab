package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// IconSizes lists the square edge lengths produced for the window icon, in
// ascending order. The last entry is the master size everything is scaled
// down from.
var IconSizes = []int{16, 32, 48, 64, 128, 256}

const iconMaster = 256

var (
	iconBody    = color.RGBA{50, 200, 50, 255}
	iconOutline = color.RGBA{30, 120, 30, 255}
	iconWhite   = color.RGBA{255, 255, 255, 255}
	iconBlack   = color.RGBA{0, 0, 0, 255}
)

// GenerateIcon draws the lizard icon: a green body and head seen from
// above, two eyes, six legs and a tapering tail, on a transparent
// background. It returns one image per entry in IconSizes.
func GenerateIcon() []image.Image {
	return iconSet(drawIconMaster())
}

// LoadIcon reads a PNG from path and returns it scaled to every entry in
// IconSizes.
func LoadIcon(path string) ([]image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load icon %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load icon %s: %w", path, err)
	}
	return iconSet(img), nil
}

// windowIcons loads the icon from path, or generates it when path is empty.
func windowIcons(path string) ([]image.Image, error) {
	if path == "" {
		return GenerateIcon(), nil
	}
	return LoadIcon(path)
}

func iconSet(src image.Image) []image.Image {
	out := make([]image.Image, 0, len(IconSizes))
	for _, size := range IconSizes {
		dst := image.NewRGBA(image.Rect(0, 0, size, size))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
		out = append(out, dst)
	}
	return out
}

// iconPainter rasterizes filled shapes onto an RGBA image, one shape per
// call.
type iconPainter struct {
	dst *image.RGBA
	z   *vector.Rasterizer
}

func drawIconMaster() *image.RGBA {
	p := iconPainter{
		dst: image.NewRGBA(image.Rect(0, 0, iconMaster, iconMaster)),
		z:   vector.NewRasterizer(iconMaster, iconMaster),
	}

	// Body and head, each with an inset outline.
	p.outlinedEllipse(128, 130, 68, 30, 3, iconBody, iconOutline)
	p.outlinedEllipse(200, 130, 30, 30, 3, iconBody, iconOutline)

	for _, ey := range []float32{122, 138} {
		p.outlinedEllipse(190, ey, 5, 5, 2, iconWhite, iconBlack)
		p.ellipse(190, ey, 2, 2, iconBlack)
	}

	const legWidth = 8
	// Legs splay backwards from the flanks; feet sit under the hips.
	for _, x := range []float32{80, 120, 160} {
		for _, side := range [][2]float32{{140, 30}, {120, -30}} {
			y, reach := side[0], side[1]
			p.line(x, y, x-15, y+reach, legWidth, iconBody)
			p.outlinedEllipse(x, y+reach, legWidth, legWidth, 2, iconBody, iconOutline)
		}
	}

	tail := [][2]float32{{60, 130}, {40, 130}, {20, 125}, {10, 120}, {5, 110}}
	for i := 0; i < len(tail)-1; i++ {
		w := max(float32(10-2*i), 2)
		p.line(tail[i][0], tail[i][1], tail[i+1][0], tail[i+1][1], w, iconBody)
	}
	tip := tail[len(tail)-1]
	p.outlinedEllipse(tip[0], tip[1], 3, 3, 2, iconBody, iconOutline)

	return p.dst
}

func (p *iconPainter) fill(c color.RGBA) {
	p.z.Draw(p.dst, p.dst.Bounds(), image.NewUniform(c), image.Point{})
}

// ellipse fills an axis-aligned ellipse approximated by four cubic arcs.
func (p *iconPainter) ellipse(cx, cy, rx, ry float32, c color.RGBA) {
	// Control-point distance for a quarter circle.
	const k = 0.5522847
	kx, ky := rx*k, ry*k

	p.z.Reset(iconMaster, iconMaster)
	p.z.MoveTo(cx+rx, cy)
	p.z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	p.z.ClosePath()
	p.fill(c)
}

// outlinedEllipse fills with the outline color, then fills the interior
// inset by width, so the outline lies inside the ellipse bounds.
func (p *iconPainter) outlinedEllipse(cx, cy, rx, ry, width float32, fill, outline color.RGBA) {
	p.ellipse(cx, cy, rx, ry, outline)
	p.ellipse(cx, cy, rx-width, ry-width, fill)
}

// line fills a butt-capped stroke of the given width from (x0,y0) to (x1,y1).
func (p *iconPainter) line(x0, y0, x1, y1, width float32, c color.RGBA) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2

	p.z.Reset(iconMaster, iconMaster)
	p.z.MoveTo(x0+nx, y0+ny)
	p.z.LineTo(x1+nx, y1+ny)
	p.z.LineTo(x1-nx, y1-ny)
	p.z.LineTo(x0-nx, y0-ny)
	p.z.ClosePath()
	p.fill(c)
}
