package lizard

// SpineChain is the creature's body axis: an ordered list of joints where
// index 0 is the head and the last index is the terminal vertebra.
//
// Followers are relaxed in a single head-to-tail pass. Each correction is
// visible to the next joint within the same frame, and the fractions are
// asymmetric (gentle pull when slack is exceeded, a harder pull once the
// segment is overstretched). A chain spawned on a single point folds when it
// first moves in a straight line: the overlap push sends alternate joints to
// opposite sides of their leader. It stays folded until the heading changes.
type SpineChain struct {
	tuning *Tuning
	joints []Vec2
}

// NewSpineChain returns a chain with every joint at spawn.
func NewSpineChain(t *Tuning, spawn Vec2) *SpineChain {
	joints := make([]Vec2, t.Joints)
	for i := range joints {
		joints[i] = spawn
	}
	return &SpineChain{tuning: t, joints: joints}
}

// Len returns the number of joints.
func (s *SpineChain) Len() int { return len(s.joints) }

// Head returns joint 0.
func (s *SpineChain) Head() Vec2 { return s.joints[0] }

// Joint returns joint i.
func (s *SpineChain) Joint(i int) Vec2 { return s.joints[i] }

// Joints returns a copy of the joint positions.
func (s *SpineChain) Joints() []Vec2 {
	out := make([]Vec2, len(s.joints))
	copy(out, s.joints)
	return out
}

// Advance moves the head toward target by speed and relaxes the followers.
// The head holds still when it is within stopDistance of the target.
func (s *SpineChain) Advance(target Vec2, speed, stopDistance float64) {
	head := &s.joints[0]
	delta := target.Sub(*head)
	if dist := delta.Len(); dist > stopDistance && dist > 0 {
		*head = head.Add(delta.Scale(speed / dist))
	}
	s.Relax()
}

// Relax applies one pass of the segment-length constraints, head to tail.
func (s *SpineChain) Relax() {
	t := s.tuning
	for i := 1; i < len(s.joints); i++ {
		prev, cur := s.joints[i-1], &s.joints[i]
		toPrev := prev.Sub(*cur)
		d := toPrev.Len()
		if d == 0 {
			continue
		}

		var move float64
		switch {
		case d < t.MinSegmentLength:
			// Negative: step away from the previous joint.
			move = -t.OverlapPush * (t.MinSegmentLength - d)
		case d > t.MaxSegmentLength:
			move = t.StretchPull * (d - t.SegmentLength)
		case d > t.SegmentLength:
			move = t.FollowPull * (d - t.SegmentLength)
		default:
			continue
		}
		*cur = cur.Add(toPrev.Scale(move / d))
	}
}
