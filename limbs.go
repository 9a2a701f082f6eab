package lizard

import "math"

// Leg is one two-bone leg: hip at the spine, knee, foot.
type Leg struct {
	Hip, Knee, Foot Vec2
	// Wave is the oscillator offset applied to this leg's hip angle.
	Wave float64
}

// LegPair is the left and right leg attached at one spine joint.
type LegPair struct {
	Joint       int
	Left, Right Leg
}

// TailPoint is one bead of the tail.
type TailPoint struct {
	Pos       Vec2
	Thickness float64
}

// Rib is a pair of ribs perpendicular to the spine at one joint.
type Rib struct {
	Root, Left, Right Vec2
}

// Skull is the head outline, eye sockets and jaw line.
type Skull struct {
	Snout, BackLeft, BackRight Vec2
	LeftEye, RightEye          Vec2
	Jaw                        Vec2
}

// Outline returns the skull triangle as a polygon.
func (s Skull) Outline() []Vec2 {
	return []Vec2{s.Snout, s.BackLeft, s.BackRight}
}

// LimbAnimator derives limb, tail, rib and skull geometry from the spine.
// It keeps no state between frames: every phase comes from the clock.
type LimbAnimator struct {
	tuning *Tuning
}

// NewLimbAnimator returns an animator for t.
func NewLimbAnimator(t *Tuning) *LimbAnimator {
	return &LimbAnimator{tuning: t}
}

// PhaseTime converts clock seconds into oscillator time.
func (a *LimbAnimator) PhaseTime(clock float64) float64 {
	return clock * a.tuning.PhaseRate
}

// Compute returns the leg pairs, tail and head angle for one frame.
func (a *LimbAnimator) Compute(spine *SpineChain, target Vec2, state MotionState, clock float64) ([]LegPair, []TailPoint, float64) {
	phase := a.PhaseTime(clock)
	return a.Legs(spine, state, phase), a.Tail(spine, phase), a.HeadAngle(spine, target)
}

// HeadAngle returns the direction from the head to the target. It follows
// the cursor, not the spine, so the head looks at the target while the body
// lags behind.
func (a *LimbAnimator) HeadAngle(spine *SpineChain, target Vec2) float64 {
	return target.Sub(spine.Head()).Angle()
}

// LegWave returns the hip angle offset for attachment idx. Static legs
// freeze: the wave is exactly zero and does not advance with time.
func (a *LimbAnimator) LegWave(state MotionState, phase float64, idx int) float64 {
	var g Gait
	switch state {
	case Running:
		g = a.tuning.RunGait
	case Walking:
		g = a.tuning.WalkGait
	default:
		return 0
	}
	return math.Sin(phase*g.Frequency+float64(idx)*2) * g.Amplitude
}

// Legs computes every leg pair for the given state and oscillator time.
func (a *LimbAnimator) Legs(spine *SpineChain, state MotionState, phase float64) []LegPair {
	t := a.tuning
	pairs := make([]LegPair, 0, len(t.LegJoints))
	for idx, j := range t.LegJoints {
		if j+1 >= spine.Len() {
			continue
		}
		hip := spine.Joint(j)
		spineAngle := spine.Joint(j + 1).Sub(hip).Angle()
		wave := a.LegWave(state, phase, idx)

		pairs = append(pairs, LegPair{
			Joint: j,
			Left:  a.leg(hip, spineAngle+math.Pi/2+wave, t.KneeBend+wave*0.5, wave),
			Right: a.leg(hip, spineAngle-math.Pi/2-wave, -(t.KneeBend + wave*0.5), wave),
		})
	}
	return pairs
}

func (a *LimbAnimator) leg(hip Vec2, hipAngle, kneeOffset, wave float64) Leg {
	knee := hip.Polar(hipAngle, a.tuning.LegLength)
	return Leg{
		Hip:  hip,
		Knee: knee,
		Foot: knee.Polar(hipAngle+kneeOffset, a.tuning.LegJointLength),
		Wave: wave,
	}
}

// Tail extrapolates the tail from the last spine segment. Each bead steps
// along the segment direction and is displaced sideways by a travelling
// sine wave; thickness tapers toward the tip.
func (a *LimbAnimator) Tail(spine *SpineChain, phase float64) []TailPoint {
	t := a.tuning
	n := spine.Len()
	if n < 2 || t.TailSegments == 0 {
		return nil
	}
	last := spine.Joint(n - 1)
	angle := last.Sub(spine.Joint(n - 2)).Angle()
	along := FromAngle(angle, t.TailStep)
	side := FromAngle(angle+math.Pi/2, 1)

	tail := make([]TailPoint, t.TailSegments)
	prev := last
	for i := range tail {
		wave := math.Sin(phase*t.TailWaveFrequency-float64(i)*t.TailWavePhase) * t.TailWaveAmplitude
		p := prev.Add(along).Add(side.Scale(wave))
		tail[i] = TailPoint{
			Pos:       p,
			Thickness: math.Max(t.TailMinThickness, t.TailMaxThickness-float64(i)),
		}
		prev = p
	}
	return tail
}

// Ribs places a rib pair on every second interior joint.
func (a *LimbAnimator) Ribs(spine *SpineChain) []Rib {
	t := a.tuning
	var ribs []Rib
	for i := 2; i < spine.Len()-1; i += 2 {
		root := spine.Joint(i)
		angle := spine.Joint(i + 1).Sub(root).Angle()
		ribs = append(ribs, Rib{
			Root:  root,
			Left:  root.Polar(angle+math.Pi/2, t.RibLength),
			Right: root.Polar(angle-math.Pi/2, t.RibLength),
		})
	}
	return ribs
}

// Skull builds the head geometry around joint 0 facing headAngle.
func (a *LimbAnimator) Skull(spine *SpineChain, headAngle float64) Skull {
	t := a.tuning
	head := spine.Head()
	return Skull{
		Snout:     head.Polar(headAngle, t.HeadSize),
		BackLeft:  head.Polar(headAngle+t.SkullSpread, t.SkullWidth),
		BackRight: head.Polar(headAngle-t.SkullSpread, t.SkullWidth),
		LeftEye:   head.Polar(headAngle+t.EyeSpread, t.EyeOffset),
		RightEye:  head.Polar(headAngle-t.EyeSpread, t.EyeOffset),
		Jaw:       head.Polar(headAngle, t.HeadSize*t.JawRatio),
	}
}
