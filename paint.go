package lizard

// Canvas is the drawing surface a renderer provides. Coordinates are in the
// same space as the pose; widths and radii are in pose units.
type Canvas interface {
	StrokeLine(a, b Vec2, width float64, c Color)
	FillCircle(center Vec2, radius float64, c Color)
	StrokeCircle(center Vec2, radius, width float64, c Color)
	FillPolygon(points []Vec2, c Color)
	StrokePolygon(points []Vec2, width float64, c Color)
}

// Stroke widths and radii used by Paint.
const (
	tailLinkWidth   = 3.0
	spineLinkWidth  = 4.0
	vertebraRadius  = 6.0
	ribWidth        = 2.0
	boneWidth       = 4.0
	kneeRadius      = 5.0
	footRadius      = 4.0
	skullWidth      = 3.0
	skullFillAlpha  = 0.35
	eyeSocketRadius = 6.0
	eyeSocketWidth  = 2.0
	pupilRadius     = 3.0
	jawWidth        = 3.0
)

// Paint draws p onto c, back to front: tail, spine, ribs, legs, skull.
func Paint(c Canvas, p Pose) {
	col := p.Color

	prev := p.TailRoot()
	for _, tp := range p.Tail {
		c.StrokeLine(prev, tp.Pos, tailLinkWidth, col)
		c.FillCircle(tp.Pos, tp.Thickness, col)
		prev = tp.Pos
	}

	for i := 0; i+1 < len(p.Spine); i++ {
		c.StrokeLine(p.Spine[i], p.Spine[i+1], spineLinkWidth, col)
		c.FillCircle(p.Spine[i], vertebraRadius, col)
	}
	if len(p.Spine) > 0 {
		c.FillCircle(p.TailRoot(), vertebraRadius, col)
	}

	for _, r := range p.Ribs {
		c.StrokeLine(r.Root, r.Left, ribWidth, col)
		c.StrokeLine(r.Root, r.Right, ribWidth, col)
	}

	for _, pair := range p.Legs {
		paintLeg(c, pair.Left, col)
		paintLeg(c, pair.Right, col)
	}

	if len(p.Spine) == 0 {
		return
	}
	s := p.Skull
	outline := s.Outline()
	c.FillPolygon(outline, col.WithAlpha(skullFillAlpha))
	c.StrokePolygon(outline, skullWidth, col)
	for _, eye := range [2]Vec2{s.LeftEye, s.RightEye} {
		c.StrokeCircle(eye, eyeSocketRadius, eyeSocketWidth, col)
		c.FillCircle(eye, pupilRadius, ColorBlack)
	}
	c.StrokeLine(p.Head(), s.Jaw, jawWidth, col)
}

func paintLeg(c Canvas, l Leg, col Color) {
	c.StrokeLine(l.Hip, l.Knee, boneWidth, col)
	c.FillCircle(l.Knee, kneeRadius, col)
	c.StrokeLine(l.Knee, l.Foot, boneWidth, col)
	c.FillCircle(l.Foot, footRadius, col)
}
