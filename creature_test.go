package lizard

import (
	"errors"
	"math"
	"testing"
)

const fps = 60.0

func newTestCreature(t *testing.T, spawn Vec2) *Creature {
	t.Helper()
	c, err := NewCreature(spawn, DefaultTuning())
	if err != nil {
		t.Fatalf("NewCreature: %v", err)
	}
	return c
}

func TestNewCreatureRejectsInvalidTuning(t *testing.T) {
	tu := DefaultTuning()
	tu.Joints = 0
	_, err := NewCreature(Vec2{}, tu)
	if !errors.Is(err, ErrInvalidTuning) {
		t.Fatalf("err = %v, want ErrInvalidTuning", err)
	}
}

func TestNewCreatureInitialPose(t *testing.T) {
	c := newTestCreature(t, Vec2{100, 50})
	p := c.Pose()
	if p.Frame != 0 || len(p.Spine) != 8 {
		t.Fatalf("initial pose frame=%d joints=%d", p.Frame, len(p.Spine))
	}
	for _, j := range p.Spine {
		assertVec(t, "joint", j, Vec2{100, 50})
	}
	if p.State != Static || p.Speed != 0 {
		t.Errorf("initial state %v speed %v", p.State, p.Speed)
	}
}

func TestCreatureFirstFrameTowardFarTarget(t *testing.T) {
	c := newTestCreature(t, Vec2{})
	target := Vec2{X: 1000}

	p := c.Update(target, 1/fps)
	if c.Motion().Band() != Running {
		t.Errorf("band = %v, want running", c.Motion().Band())
	}
	assertNear(t, "speed", p.Speed, 0.3)
	assertNear(t, "head.x", p.Head().X, 0.3)
	assertNear(t, "head.y", p.Head().Y, 0)
	if p.Frame != 1 {
		t.Errorf("frame = %d, want 1", p.Frame)
	}

	// Frame 2 sees 0.3 of displacement, which is not above the threshold.
	p = c.Update(target, 2/fps)
	if p.State != Static {
		t.Errorf("frame 2 state = %v, want static", p.State)
	}
	// Frame 3 sees 0.6.
	p = c.Update(target, 3/fps)
	if p.State != Running || !p.Moving {
		t.Errorf("frame 3 state = %v moving = %v, want running", p.State, p.Moving)
	}
}

func TestCreatureHoldsInsideStopDistance(t *testing.T) {
	c := newTestCreature(t, Vec2{})
	for i := 1; i <= 5; i++ {
		p := c.Update(Vec2{X: 5}, float64(i)/fps)
		assertVec(t, "head", p.Head(), Vec2{})
		if p.State != Static {
			t.Fatalf("frame %d state = %v, want static", i, p.State)
		}
	}
}

func TestCreatureStopsAfterArrival(t *testing.T) {
	c := newTestCreature(t, Vec2{})
	frame := 0
	step := func(target Vec2) Pose {
		frame++
		return c.Update(target, float64(frame)/fps)
	}

	for range 90 {
		step(Vec2{X: 2000})
	}
	if c.Pose().State != Running {
		t.Fatalf("state after run-up = %v, want running", c.Pose().State)
	}

	// Drop the target right in front of the head.
	stop := c.Pose().Head().Add(Vec2{X: 5})
	step(stop)
	p := step(stop)
	if p.State != Static {
		t.Errorf("state = %v, want static once the head stops", p.State)
	}
	if p.Speed == 0 {
		t.Errorf("speed decayed instantly; expected a lingering nonzero speed")
	}
	for _, pair := range p.Legs {
		if pair.Left.Wave != 0 || pair.Right.Wave != 0 {
			t.Fatalf("leg wave %v/%v while static", pair.Left.Wave, pair.Right.Wave)
		}
	}

	for range 30 {
		p = step(stop)
	}
	if p.Speed != 0 {
		t.Errorf("speed = %v, want 0 after decay", p.Speed)
	}
}

func segmentLengths(c *Creature) []float64 {
	j := c.Spine().Joints()
	out := make([]float64, 0, len(j)-1)
	for i := 1; i < len(j); i++ {
		out = append(out, j[i-1].Dist(j[i]))
	}
	return out
}

// A chain spawned on one point folds on a straight walk: odd joints trail
// the head at 23 units and even joints sit 7 units ahead of their leader.
// The first change of heading unfolds it to an even 23-unit spacing.
func TestCreatureFoldedWalkUnfoldsOnTurn(t *testing.T) {
	c := newTestCreature(t, Vec2{})
	frame := 0
	walk := func(dir Vec2) {
		for range 600 {
			frame++
			c.Update(c.Spine().Head().Add(dir.Scale(200)), float64(frame)/fps)
		}
	}

	walk(Vec2{X: 1})
	if c.Pose().State != Walking {
		t.Fatalf("state = %v, want walking", c.Pose().State)
	}
	assertNear(t, "speed", c.Pose().Speed, 3)
	for i, d := range segmentLengths(c) {
		want := 23.0
		if i%2 == 1 {
			want = 7
		}
		if math.Abs(d-want) > 1e-6 {
			t.Errorf("straight walk segment %d = %v, want %v", i+1, d, want)
		}
	}
	j := c.Spine().Joints()
	for i := 2; i < len(j); i += 2 {
		if j[i].X <= j[i-1].X {
			t.Errorf("joint %d at x=%v, want ahead of joint %d at x=%v", i, j[i].X, i-1, j[i-1].X)
		}
	}

	walk(Vec2{Y: 1})
	for i, d := range segmentLengths(c) {
		if math.Abs(d-23) > 1e-6 {
			t.Errorf("after turn segment %d = %v, want 23", i+1, d)
		}
	}
}

func TestCreatureStaticLegsDoNotAdvance(t *testing.T) {
	c := newTestCreature(t, Vec2{})
	a := c.Update(Vec2{}, 1)
	b := c.Update(Vec2{}, 7.3)
	for i := range a.Legs {
		if a.Legs[i] != b.Legs[i] {
			t.Errorf("leg pair %d changed while static: %+v -> %+v", i, a.Legs[i], b.Legs[i])
		}
	}
}

func TestCreatureHueFollowsState(t *testing.T) {
	c := newTestCreature(t, Vec2{})
	var hue float64
	for i := 1; i <= 200; i++ {
		before := c.Pose().Hue
		p := c.Update(Vec2{X: 5000}, float64(i)/fps)
		var rate float64
		switch p.State {
		case Running:
			rate = 0.8
		case Walking:
			rate = 0.3
		}
		if math.Abs(p.Hue-math.Mod(before+rate, 360)) > 1e-9 {
			t.Fatalf("frame %d: hue %v after %v in state %v", i, p.Hue, before, p.State)
		}
		hue = p.Hue
	}
	if hue == 0 {
		t.Error("hue never advanced")
	}
}

func TestPoseHasNoCrossFrameAliasing(t *testing.T) {
	c := newTestCreature(t, Vec2{})
	first := c.Update(Vec2{X: 800, Y: 300}, 1/fps)
	saved := append([]Vec2(nil), first.Spine...)
	savedTail := append([]TailPoint(nil), first.Tail...)

	for i := 2; i < 50; i++ {
		c.Update(Vec2{X: 800, Y: 300}, float64(i)/fps)
	}
	for i := range saved {
		if first.Spine[i] != saved[i] {
			t.Fatalf("joint %d of an old pose changed", i)
		}
	}
	for i := range savedTail {
		if first.Tail[i] != savedTail[i] {
			t.Fatalf("tail point %d of an old pose changed", i)
		}
	}

	latest := c.Pose()
	latest.Spine[0] = Vec2{X: -1e6}
	if c.Spine().Head().X == -1e6 {
		t.Error("mutating a pose reached the creature's spine")
	}
}

func TestCreatureTuningCopy(t *testing.T) {
	tu := DefaultTuning()
	c, err := NewCreature(Vec2{}, tu)
	if err != nil {
		t.Fatal(err)
	}
	tu.LegJoints[0] = 6
	got := c.Tuning()
	if got.LegJoints[0] != 1 {
		t.Errorf("creature tuning aliased caller slice: %v", got.LegJoints)
	}
}

func BenchmarkCreatureUpdate(b *testing.B) {
	c, err := NewCreature(Vec2{}, DefaultTuning())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		x := 400 * math.Cos(float64(i)*0.01)
		y := 300 * math.Sin(float64(i)*0.013)
		c.Update(Vec2{X: x, Y: y}, float64(i)/fps)
	}
}
