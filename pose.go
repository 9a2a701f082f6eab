package lizard

// Pose is one frame of creature geometry, ready to paint. Every slice is
// freshly allocated by Assemble, so a Pose is never changed by later frames.
type Pose struct {
	Frame  uint64
	Clock  float64
	Target Vec2

	Spine     []Vec2
	HeadAngle float64
	Skull     Skull
	Ribs      []Rib
	Legs      []LegPair
	Tail      []TailPoint

	Hue   float64
	Color Color

	State  MotionState
	Speed  float64
	Moving bool
}

// PoseSink receives each frame's Pose after the creature update. Frontends
// call EmitPose once per frame on the frame-loop goroutine.
type PoseSink interface {
	EmitPose(p Pose)
}

// Head returns spine joint 0, or the zero vector for an empty pose.
func (p Pose) Head() Vec2 {
	if len(p.Spine) == 0 {
		return Vec2{}
	}
	return p.Spine[0]
}

// TailRoot returns the terminal vertebra the tail grows from.
func (p Pose) TailRoot() Vec2 {
	if len(p.Spine) == 0 {
		return Vec2{}
	}
	return p.Spine[len(p.Spine)-1]
}

// PoseParts are the per-frame outputs of the motion, spine, limb and color
// stages.
type PoseParts struct {
	Frame     uint64
	Clock     float64
	Target    Vec2
	Spine     *SpineChain
	Motion    *MotionController
	HeadAngle float64
	Skull     Skull
	Ribs      []Rib
	Legs      []LegPair
	Tail      []TailPoint
	Color     *ColorCycler
}

// Assemble packages parts into a Pose. Slices in parts are copied so the
// caller may reuse them.
func Assemble(parts PoseParts) Pose {
	return Pose{
		Frame:     parts.Frame,
		Clock:     parts.Clock,
		Target:    parts.Target,
		Spine:     parts.Spine.Joints(),
		HeadAngle: parts.HeadAngle,
		Skull:     parts.Skull,
		Ribs:      append([]Rib(nil), parts.Ribs...),
		Legs:      append([]LegPair(nil), parts.Legs...),
		Tail:      append([]TailPoint(nil), parts.Tail...),
		Hue:       parts.Color.Hue(),
		Color:     parts.Color.RGB(),
		State:     parts.Motion.State(),
		Speed:     parts.Motion.Speed(),
		Moving:    parts.Motion.Moving(),
	}
}
