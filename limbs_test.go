package lizard

import (
	"math"
	"testing"
)

func TestHeadAngleTracksTarget(t *testing.T) {
	tu := DefaultTuning()
	a := NewLimbAnimator(&tu)
	s := straightSpine(&tu, Vec2{})

	assertNear(t, "down", a.HeadAngle(s, Vec2{0, 10}), math.Pi/2)
	// Behind the body: the head still looks at the target.
	assertNear(t, "behind", a.HeadAngle(s, Vec2{X: 300}), 0)
	assertNear(t, "left", a.HeadAngle(s, Vec2{X: -50}), math.Pi)
}

func TestLegWaveFrozenWhenStatic(t *testing.T) {
	tu := DefaultTuning()
	a := NewLimbAnimator(&tu)
	for _, phase := range []float64{0, 0.37, 1.5, 12.25, 999} {
		for idx := range 3 {
			if w := a.LegWave(Static, phase, idx); w != 0 {
				t.Fatalf("LegWave(static, %v, %d) = %v, want 0", phase, idx, w)
			}
		}
	}
}

func TestLegWaveGaits(t *testing.T) {
	tu := DefaultTuning()
	a := NewLimbAnimator(&tu)
	phase := 1.3
	for idx := range 3 {
		assertNear(t, "walking", a.LegWave(Walking, phase, idx), math.Sin(phase*3+float64(idx)*2)*0.4)
		assertNear(t, "running", a.LegWave(Running, phase, idx), math.Sin(phase*6+float64(idx)*2)*0.6)
	}
}

func TestLegsStaticGeometry(t *testing.T) {
	tu := DefaultTuning()
	a := NewLimbAnimator(&tu)
	s := straightSpine(&tu, Vec2{})

	pairs := a.Legs(s, Static, 4.2)
	if len(pairs) != 3 {
		t.Fatalf("got %d leg pairs, want 3", len(pairs))
	}
	diag := 25 * math.Sqrt2 / 2
	for i, p := range pairs {
		x := float64(tu.LegJoints[i]) * tu.SegmentLength
		if p.Joint != tu.LegJoints[i] {
			t.Errorf("pair %d joint = %d, want %d", i, p.Joint, tu.LegJoints[i])
		}
		assertVec(t, "left hip", p.Left.Hip, Vec2{X: x})
		assertVec(t, "left knee", p.Left.Knee, Vec2{X: x, Y: 40})
		assertVec(t, "left foot", p.Left.Foot, Vec2{X: x - diag, Y: 40 + diag})
		assertVec(t, "right knee", p.Right.Knee, Vec2{X: x, Y: -40})
		assertVec(t, "right foot", p.Right.Foot, Vec2{X: x - diag, Y: -40 - diag})
		if p.Left.Wave != 0 || p.Right.Wave != 0 {
			t.Errorf("pair %d wave = %v/%v, want 0", i, p.Left.Wave, p.Right.Wave)
		}
	}
}

func TestLegsMirrorWhileWalking(t *testing.T) {
	tu := DefaultTuning()
	a := NewLimbAnimator(&tu)
	s := straightSpine(&tu, Vec2{})

	for _, p := range a.Legs(s, Walking, 0.8) {
		// Along a spine on the X axis the right leg is the left leg
		// reflected across it.
		assertVec(t, "knee mirror", p.Right.Knee, Vec2{X: p.Left.Knee.X, Y: -p.Left.Knee.Y})
		assertVec(t, "foot mirror", p.Right.Foot, Vec2{X: p.Left.Foot.X, Y: -p.Left.Foot.Y})
		assertNear(t, "upper bone", p.Left.Hip.Dist(p.Left.Knee), tu.LegLength)
		assertNear(t, "lower bone", p.Left.Knee.Dist(p.Left.Foot), tu.LegJointLength)
	}
}

func TestTailWave(t *testing.T) {
	tu := DefaultTuning()
	a := NewLimbAnimator(&tu)
	s := straightSpine(&tu, Vec2{})
	root := s.Joint(s.Len() - 1)

	tail := a.Tail(s, 0)
	if len(tail) != 5 {
		t.Fatalf("tail has %d points, want 5", len(tail))
	}
	y := 0.0
	for i, tp := range tail {
		y += math.Sin(-float64(i)*0.5) * 3
		assertVec(t, "tail point", tp.Pos, Vec2{X: root.X + float64(i+1)*10, Y: y})
		assertNear(t, "thickness", tp.Thickness, math.Max(2, 8-float64(i)))
	}
}

func TestTailThicknessFloor(t *testing.T) {
	tu := DefaultTuning()
	tu.TailSegments = 9
	a := NewLimbAnimator(&tu)
	tail := a.Tail(straightSpine(&tu, Vec2{}), 0)
	assertNear(t, "tip", tail[8].Thickness, 2)
	assertNear(t, "sixth", tail[6].Thickness, 2)
}

func TestRibsOnAlternateJoints(t *testing.T) {
	tu := DefaultTuning()
	a := NewLimbAnimator(&tu)
	s := straightSpine(&tu, Vec2{})
	ribs := a.Ribs(s)
	if len(ribs) != 3 {
		t.Fatalf("got %d ribs, want 3", len(ribs))
	}
	for i, r := range ribs {
		x := float64(2*(i+1)) * tu.SegmentLength
		assertVec(t, "root", r.Root, Vec2{X: x})
		assertVec(t, "left", r.Left, Vec2{X: x, Y: 15})
		assertVec(t, "right", r.Right, Vec2{X: x, Y: -15})
	}
}

func TestSkullFacesHeadAngle(t *testing.T) {
	tu := DefaultTuning()
	a := NewLimbAnimator(&tu)
	s := straightSpine(&tu, Vec2{})
	sk := a.Skull(s, 0)

	assertVec(t, "snout", sk.Snout, Vec2{X: 25})
	assertVec(t, "jaw", sk.Jaw, Vec2{X: 20})
	assertVec(t, "back left", sk.BackLeft, FromAngle(2.5, 20))
	assertVec(t, "back right", sk.BackRight, FromAngle(-2.5, 20))
	assertVec(t, "left eye", sk.LeftEye, FromAngle(0.4, 8))
	if len(sk.Outline()) != 3 {
		t.Errorf("outline has %d points, want 3", len(sk.Outline()))
	}
}

func TestComputeUsesPhaseRate(t *testing.T) {
	tu := DefaultTuning()
	a := NewLimbAnimator(&tu)
	s := straightSpine(&tu, Vec2{})

	legs, tail, angle := a.Compute(s, Vec2{Y: -10}, Running, 0.2)
	phase := 0.2 * tu.PhaseRate
	assertNear(t, "phase", a.PhaseTime(0.2), phase)
	assertNear(t, "wave", legs[1].Left.Wave, math.Sin(phase*6+2)*0.6)
	assertNear(t, "head angle", angle, -math.Pi/2)
	want := a.Tail(s, phase)
	for i := range tail {
		assertVec(t, "tail", tail[i].Pos, want[i].Pos)
	}
}
