package cursor

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
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

// TestRunner sequences injected input across frames for scripted
// interaction tests. Attach it to an Interactor via SetTestRunner.
//
// Supported actions: press, move, hover, release, click, drag, wait.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to an Interactor via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: %w", ErrNoSteps)
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press", "move", "hover", "release", "click", "drag", "wait":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner. Its step method runs at the start of
// every Update, before input is sampled.
func (it *Interactor) SetTestRunner(runner *TestRunner) {
	it.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Interactor.tick.
func (r *TestRunner) step(it *Interactor) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(it.injectQueue) > 0 {
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
	case "press":
		it.InjectPress(st.X, st.Y)
	case "move":
		it.InjectMove(st.X, st.Y)
	case "hover":
		it.InjectHover(st.X, st.Y)
	case "release":
		it.InjectRelease(st.X, st.Y)
	case "click":
		it.InjectClick(st.X, st.Y)
	case "drag":
		it.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(it.injectQueue) == 0 {
		r.done = true
	}
}
