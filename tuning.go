package lizard

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// Gait is the leg oscillator setting for one motion state.
type Gait struct {
	Frequency float64 `json:"frequency"`
	Amplitude float64 `json:"amplitude"`
}

// Tuning holds every constant the animation core reads. DefaultTuning
// returns the values the creature was designed with; LoadTuning overlays
// JSON onto those defaults.
type Tuning struct {
	// Spine
	Joints           int     `json:"joints"`
	SegmentLength    float64 `json:"segmentLength"`
	MinSegmentLength float64 `json:"minSegmentLength"`
	MaxSegmentLength float64 `json:"maxSegmentLength"`
	OverlapPush      float64 `json:"overlapPush"` // fraction of the shortfall pushed apart
	FollowPull       float64 `json:"followPull"`  // fraction of the excess pulled in
	StretchPull      float64 `json:"stretchPull"` // fraction of the excess pulled in past MaxSegmentLength

	// Motion
	RunDistance       float64 `json:"runDistance"`
	WalkDistance      float64 `json:"walkDistance"`
	StopDistance      float64 `json:"stopDistance"`
	RunSpeed          float64 `json:"runSpeed"`
	WalkSpeed         float64 `json:"walkSpeed"`
	MinSpeed          float64 `json:"minSpeed"`
	Acceleration      float64 `json:"acceleration"`
	Deceleration      float64 `json:"deceleration"`
	MovementThreshold float64 `json:"movementThreshold"`

	// PhaseRate converts clock seconds into oscillator time.
	PhaseRate float64 `json:"phaseRate"`

	// Tail
	TailSegments      int     `json:"tailSegments"`
	TailStep          float64 `json:"tailStep"`
	TailWaveAmplitude float64 `json:"tailWaveAmplitude"`
	TailWaveFrequency float64 `json:"tailWaveFrequency"`
	TailWavePhase     float64 `json:"tailWavePhase"`
	TailMaxThickness  float64 `json:"tailMaxThickness"`
	TailMinThickness  float64 `json:"tailMinThickness"`

	// Legs
	LegJoints      []int   `json:"legJoints"`
	LegLength      float64 `json:"legLength"`
	LegJointLength float64 `json:"legJointLength"`
	KneeBend       float64 `json:"kneeBend"`
	WalkGait       Gait    `json:"walkGait"`
	RunGait        Gait    `json:"runGait"`

	// Ribs and skull
	RibLength   float64 `json:"ribLength"`
	HeadSize    float64 `json:"headSize"`
	SkullWidth  float64 `json:"skullWidth"`
	SkullSpread float64 `json:"skullSpread"`
	EyeOffset   float64 `json:"eyeOffset"`
	EyeSpread   float64 `json:"eyeSpread"`
	JawRatio    float64 `json:"jawRatio"`

	// Color
	WalkHueRate float64 `json:"walkHueRate"`
	RunHueRate  float64 `json:"runHueRate"`
	Saturation  float64 `json:"saturation"`
	Value       float64 `json:"value"`
}

// DefaultTuning returns the stock lizard: eight vertebrae, three leg pairs,
// a five-bead tail.
func DefaultTuning() Tuning {
	return Tuning{
		Joints:           8,
		SegmentLength:    20,
		MinSegmentLength: 10,
		MaxSegmentLength: 30,
		OverlapPush:      0.5,
		FollowPull:       0.5,
		StretchPull:      0.6,

		RunDistance:       380,
		WalkDistance:      100,
		StopDistance:      10,
		RunSpeed:          8,
		WalkSpeed:         3,
		MinSpeed:          0.5,
		Acceleration:      0.3,
		Deceleration:      0.5,
		MovementThreshold: 0.3,

		PhaseRate: 5, // 0.005 per millisecond

		TailSegments:      5,
		TailStep:          10,
		TailWaveAmplitude: 3,
		TailWaveFrequency: 2,
		TailWavePhase:     0.5,
		TailMaxThickness:  8,
		TailMinThickness:  2,

		LegJoints:      []int{1, 3, 5},
		LegLength:      40,
		LegJointLength: 25,
		KneeBend:       math.Pi / 4,
		WalkGait:       Gait{Frequency: 3, Amplitude: 0.4},
		RunGait:        Gait{Frequency: 6, Amplitude: 0.6},

		RibLength:   15,
		HeadSize:    25,
		SkullWidth:  20,
		SkullSpread: 2.5,
		EyeOffset:   8,
		EyeSpread:   0.4,
		JawRatio:    0.8,

		WalkHueRate: 0.3,
		RunHueRate:  0.8,
		Saturation:  0.9,
		Value:       1.0,
	}
}

// ErrInvalidTuning is wrapped by every error Validate returns.
var ErrInvalidTuning = errors.New("lizard: invalid tuning")

// Validate reports the first inconsistency in t.
func (t Tuning) Validate() error {
	switch {
	case t.Joints < 2:
		return fmt.Errorf("%w: joints = %d, need at least 2", ErrInvalidTuning, t.Joints)
	case t.MinSegmentLength <= 0:
		return fmt.Errorf("%w: minSegmentLength must be positive", ErrInvalidTuning)
	case t.MinSegmentLength > t.SegmentLength || t.SegmentLength > t.MaxSegmentLength:
		return fmt.Errorf("%w: need minSegmentLength <= segmentLength <= maxSegmentLength, got %v/%v/%v",
			ErrInvalidTuning, t.MinSegmentLength, t.SegmentLength, t.MaxSegmentLength)
	case !(t.StopDistance < t.WalkDistance && t.WalkDistance < t.RunDistance):
		return fmt.Errorf("%w: need stopDistance < walkDistance < runDistance", ErrInvalidTuning)
	case t.MinSpeed < 0 || t.MinSpeed > t.WalkSpeed || t.WalkSpeed > t.RunSpeed:
		return fmt.Errorf("%w: need 0 <= minSpeed <= walkSpeed <= runSpeed", ErrInvalidTuning)
	case t.Acceleration <= 0 || t.Deceleration <= 0:
		return fmt.Errorf("%w: acceleration and deceleration must be positive", ErrInvalidTuning)
	case t.TailSegments < 0:
		return fmt.Errorf("%w: tailSegments = %d", ErrInvalidTuning, t.TailSegments)
	case t.Saturation < 0 || t.Saturation > 1 || t.Value < 0 || t.Value > 1:
		return fmt.Errorf("%w: saturation and value must be in [0, 1]", ErrInvalidTuning)
	}
	for _, j := range t.LegJoints {
		// Legs read the segment toward the next joint, so the last joint
		// cannot carry a pair.
		if j < 0 || j >= t.Joints-1 {
			return fmt.Errorf("%w: leg joint %d outside [0, %d)", ErrInvalidTuning, j, t.Joints-1)
		}
	}
	return nil
}

// LoadTuning parses JSON over DefaultTuning and validates the result.
// Fields absent from the document keep their default values.
func LoadTuning(data []byte) (Tuning, error) {
	t := DefaultTuning()
	if err := json.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("lizard: parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}
