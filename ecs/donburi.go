package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"

	"github.com/phanxgames/lizard"
)

// PoseEventType is the Donburi event type for per-frame creature poses.
// Subscribe to this in your ECS systems to receive every frame.
var PoseEventType = events.NewEventType[lizard.Pose]()

// StateChange reports a visible motion state transition.
type StateChange struct {
	Frame    uint64
	From, To lizard.MotionState
}

// StateChangeEventType is published only on frames where the visible state
// differs from the previous frame's.
var StateChangeEventType = events.NewEventType[StateChange]()

// PoseComponent holds the latest pose on the creature entity.
var PoseComponent = donburi.NewComponentType[lizard.Pose]()

var creatureQuery = donburi.NewQuery(filter.Contains(PoseComponent))

type donburiSink struct {
	world  donburi.World
	entity donburi.Entity
	state  lizard.MotionState
	seen   bool
}

// NewDonburiSink creates a PoseSink backed by a Donburi world. It creates one
// entity carrying PoseComponent and keeps it current. Poses are published to
// PoseEventType and state transitions to StateChangeEventType; both are
// queued until ProcessEvents.
func NewDonburiSink(world donburi.World) lizard.PoseSink {
	return &donburiSink{
		world:  world,
		entity: world.Create(PoseComponent),
	}
}

func (s *donburiSink) EmitPose(p lizard.Pose) {
	if entry := s.world.Entry(s.entity); entry.Valid() {
		PoseComponent.SetValue(entry, p)
	}
	PoseEventType.Publish(s.world, p)

	if s.seen && p.State != s.state {
		StateChangeEventType.Publish(s.world, StateChange{Frame: p.Frame, From: s.state, To: p.State})
	}
	s.state = p.State
	s.seen = true
}

// LatestPose returns the pose stored on the first creature entity in world.
func LatestPose(world donburi.World) (lizard.Pose, bool) {
	entry, ok := creatureQuery.First(world)
	if !ok {
		return lizard.Pose{}, false
	}
	return *PoseComponent.Get(entry), true
}
