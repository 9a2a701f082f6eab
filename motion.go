package lizard

// MotionState classifies how the creature is moving. It drives the leg
// oscillator and the hue cycle rate.
type MotionState uint8

const (
	Static  MotionState = iota // head displacement at or below the movement threshold
	Walking                    // moving, target within the run band
	Running                    // moving, target beyond the run distance
)

func (s MotionState) String() string {
	switch s {
	case Static:
		return "static"
	case Walking:
		return "walking"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// MotionController turns distance-to-target into a head speed. The speed
// ramps toward a target chosen by distance band, limited per frame by the
// acceleration and deceleration tuning. The visible state is derived from
// how far the head actually moved, not from the speed, so it can read Static
// for a frame while the speed is still decaying.
type MotionController struct {
	tuning       *Tuning
	speed        float64
	band         MotionState
	state        MotionState
	moving       bool
	distance     float64
	displacement float64
}

// NewMotionController returns a controller at rest.
func NewMotionController(t *Tuning) *MotionController {
	return &MotionController{tuning: t}
}

// Update advances the controller by one frame. head is the current head
// position, previousHead the head position one frame earlier.
func (m *MotionController) Update(head, target, previousHead Vec2) MotionState {
	t := m.tuning

	m.distance = head.Dist(target)
	var targetSpeed float64
	switch {
	case m.distance > t.RunDistance:
		targetSpeed, m.band = t.RunSpeed, Running
	case m.distance > t.WalkDistance:
		targetSpeed, m.band = t.WalkSpeed, Walking
	case m.distance > t.StopDistance:
		targetSpeed, m.band = lerp(t.MinSpeed, t.WalkSpeed, m.distance/t.WalkDistance), Walking
	default:
		targetSpeed, m.band = 0, Static
	}

	if m.speed < targetSpeed {
		m.speed = approach(m.speed, targetSpeed, t.Acceleration)
	} else {
		m.speed = approach(m.speed, targetSpeed, t.Deceleration)
	}
	m.speed = clampF(m.speed, 0, t.RunSpeed)

	m.displacement = head.Dist(previousHead)
	m.moving = m.displacement > t.MovementThreshold
	switch {
	case m.moving && m.band == Running:
		m.state = Running
	case m.moving:
		m.state = Walking
	default:
		m.state = Static
	}
	return m.state
}

// Speed returns the current head speed in units per frame.
func (m *MotionController) Speed() float64 { return m.speed }

// State returns the visible motion state from the last Update.
func (m *MotionController) State() MotionState { return m.state }

// Band returns the tentative state chosen by distance band alone.
func (m *MotionController) Band() MotionState { return m.band }

// Moving reports whether the head moved more than the movement threshold
// between the two positions passed to the last Update.
func (m *MotionController) Moving() bool { return m.moving }

// Distance returns the head-to-target distance from the last Update.
func (m *MotionController) Distance() float64 { return m.distance }

// Displacement returns the head movement magnitude from the last Update.
func (m *MotionController) Displacement() float64 { return m.displacement }
