// Package lizard is a procedural animation core for a cursor-following
// skeleton lizard.
//
// A [Creature] is a chain of spine joints whose head chases a target point.
// Each frame it decides a speed from the distance to the target, moves the
// head, relaxes the rest of the spine toward a nominal segment length,
// derives legs, ribs, tail and skull from the spine's orientation, and
// rotates its hue. The result is a [Pose]: plain geometry with no ties to a
// window or graphics API.
//
// # Quick start
//
//	c, err := lizard.NewCreature(lizard.Vec2{X: 512, Y: 384}, lizard.DefaultTuning())
//	if err != nil {
//		log.Fatal(err)
//	}
//	for frame := 1; ; frame++ {
//		pose := c.Update(cursor(), float64(frame)/60)
//		lizard.Paint(canvas, pose)
//	}
//
// # Frame pipeline
//
// [MotionController] picks a target speed by distance band (run, walk,
// slow approach, stop) and ramps toward it. [SpineChain] moves joint 0 at
// that speed and relaxes the followers in one head-to-tail pass.
// [LimbAnimator] places three leg pairs, the tail and the skull. Legs only
// swing while the head is actually moving; at rest the leg wave is exactly
// zero. [ColorCycler] advances the hue at a rate set by the motion state.
// [Assemble] packs everything into an immutable Pose.
//
// # Rendering
//
// [Paint] turns a Pose into line, circle and polygon calls on a [Canvas].
// The render package provides an Ebitengine canvas and window app; the term
// package renders into a terminal with tcell; the ecs package forwards poses
// into a [Donburi] world.
//
// [Donburi]: https://github.com/yohamta/donburi
package lizard
