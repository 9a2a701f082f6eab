package render

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"move": true, "glide": true, "wait": true, "screenshot": true,
	"fullscreen": true, "escape": true, "quit": true,
}

// TestRunner sequences injected cursor moves, commands and screenshots
// across frames for reproducible runs. Attach to an App via SetTestRunner or
// RunConfig.Script.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner.
//
//	{"steps": [
//		{"action": "move", "x": 100, "y": 100},
//		{"action": "glide", "fromX": 100, "fromY": 100, "toX": 900, "toY": 600, "frames": 120},
//		{"action": "wait", "frames": 30},
//		{"action": "screenshot", "label": "running"},
//		{"action": "quit"}
//	]}
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the app. The runner's step method
// is called from App.Update before input is processed each frame. While a
// runner is attached the real pointer is ignored.
func (a *App) SetTestRunner(runner *TestRunner) {
	a.runner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from App.Update.
func (r *TestRunner) step(a *App) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(a.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		a.Screenshot(st.Label)
	case "move":
		a.InjectMove(st.X, st.Y)
	case "glide":
		a.InjectGlide(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "fullscreen":
		a.InjectCommand(CommandToggleFullscreen)
	case "escape":
		a.InjectCommand(CommandEscape)
	case "quit":
		a.InjectCommand(CommandQuit)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(a.injectQueue) == 0 {
		r.done = true
	}
}
