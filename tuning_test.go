package lizard

import (
	"errors"
	"testing"
)

func TestDefaultTuningValid(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("default tuning invalid: %v", err)
	}
}

func TestTuningValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Tuning)
	}{
		{"one joint", func(t *Tuning) { t.Joints = 1 }},
		{"zero minimum", func(t *Tuning) { t.MinSegmentLength = 0 }},
		{"minimum above nominal", func(t *Tuning) { t.MinSegmentLength = 25 }},
		{"maximum below nominal", func(t *Tuning) { t.MaxSegmentLength = 15 }},
		{"bands out of order", func(t *Tuning) { t.WalkDistance = 500 }},
		{"speeds out of order", func(t *Tuning) { t.WalkSpeed = 9 }},
		{"negative min speed", func(t *Tuning) { t.MinSpeed = -1 }},
		{"zero acceleration", func(t *Tuning) { t.Acceleration = 0 }},
		{"negative tail", func(t *Tuning) { t.TailSegments = -1 }},
		{"saturation over one", func(t *Tuning) { t.Saturation = 1.5 }},
		{"leg on last joint", func(t *Tuning) { t.LegJoints = []int{7} }},
		{"negative leg joint", func(t *Tuning) { t.LegJoints = []int{-1} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tu := DefaultTuning()
			tt.modify(&tu)
			err := tu.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrInvalidTuning) {
				t.Errorf("error %v does not wrap ErrInvalidTuning", err)
			}
		})
	}
}

func TestLoadTuningOverlaysDefaults(t *testing.T) {
	tu, err := LoadTuning([]byte(`{"joints": 12, "runSpeed": 10, "legJoints": [2, 5, 8], "runGait": {"frequency": 7, "amplitude": 0.5}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tu.Joints != 12 || tu.RunSpeed != 10 {
		t.Errorf("overrides not applied: joints=%d runSpeed=%v", tu.Joints, tu.RunSpeed)
	}
	if len(tu.LegJoints) != 3 || tu.LegJoints[2] != 8 {
		t.Errorf("legJoints = %v", tu.LegJoints)
	}
	if tu.RunGait.Frequency != 7 || tu.WalkGait.Frequency != 3 {
		t.Errorf("gaits = %+v / %+v", tu.RunGait, tu.WalkGait)
	}
	if tu.SegmentLength != 20 || tu.Acceleration != 0.3 {
		t.Errorf("defaults lost: segmentLength=%v acceleration=%v", tu.SegmentLength, tu.Acceleration)
	}
}

func TestLoadTuning_Invalid(t *testing.T) {
	if _, err := LoadTuning([]byte(`not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
	_, err := LoadTuning([]byte(`{"joints": 0}`))
	if !errors.Is(err, ErrInvalidTuning) {
		t.Errorf("err = %v, want ErrInvalidTuning", err)
	}
}

func TestDefaultTuningFreshSlices(t *testing.T) {
	a := DefaultTuning()
	a.LegJoints[0] = 6
	if b := DefaultTuning(); b.LegJoints[0] != 1 {
		t.Errorf("DefaultTuning shares LegJoints: %v", b.LegJoints)
	}
}
