package lizard

import "fmt"

// Creature owns one lizard's animation state and runs the per-frame
// pipeline: motion, spine, limbs, color, pose.
//
// A Creature is not safe for concurrent use; it is meant to be driven from
// a single frame loop.
type Creature struct {
	tuning Tuning

	motion *MotionController
	spine  *SpineChain
	limbs  *LimbAnimator
	color  *ColorCycler

	prevHead Vec2
	frame    uint64
	pose     Pose
}

// NewCreature spawns a creature with all joints at spawn. The tuning is
// validated and copied.
func NewCreature(spawn Vec2, t Tuning) (*Creature, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("new creature: %w", err)
	}
	t.LegJoints = append([]int(nil), t.LegJoints...)

	c := &Creature{tuning: t, prevHead: spawn}
	c.motion = NewMotionController(&c.tuning)
	c.spine = NewSpineChain(&c.tuning, spawn)
	c.limbs = NewLimbAnimator(&c.tuning)
	c.color = NewColorCycler(&c.tuning, 0)
	c.pose = c.assemble(spawn, 0)
	return c, nil
}

// Update advances one frame toward cursor. clock is the monotonic time in
// seconds that drives the limb and tail oscillators.
func (c *Creature) Update(cursor Vec2, clock float64) Pose {
	head := c.spine.Head()
	state := c.motion.Update(head, cursor, c.prevHead)
	c.prevHead = head

	c.spine.Advance(cursor, c.motion.Speed(), c.tuning.StopDistance)
	c.color.Advance(state)

	c.frame++
	c.pose = c.assemble(cursor, clock)
	return c.pose
}

func (c *Creature) assemble(cursor Vec2, clock float64) Pose {
	legs, tail, headAngle := c.limbs.Compute(c.spine, cursor, c.motion.State(), clock)
	return Assemble(PoseParts{
		Frame:     c.frame,
		Clock:     clock,
		Target:    cursor,
		Spine:     c.spine,
		Motion:    c.motion,
		HeadAngle: headAngle,
		Skull:     c.limbs.Skull(c.spine, headAngle),
		Ribs:      c.limbs.Ribs(c.spine),
		Legs:      legs,
		Tail:      tail,
		Color:     c.color,
	})
}

// Pose returns the most recent pose.
func (c *Creature) Pose() Pose { return c.pose }

// Tuning returns a copy of the creature's tuning.
func (c *Creature) Tuning() Tuning {
	t := c.tuning
	t.LegJoints = append([]int(nil), t.LegJoints...)
	return t
}

// Motion exposes the motion controller for inspection.
func (c *Creature) Motion() *MotionController { return c.motion }

// Spine exposes the spine chain for inspection.
func (c *Creature) Spine() *SpineChain { return c.spine }
