package cursor

import (
	"errors"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "hover", "x": 5, "y": 5},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "drag", "fromX": 1, "fromY": 2, "toX": 3, "toY": 4, "frames": 6}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "hover" || runner.steps[0].X != 5 {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "click" || runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if st := runner.steps[3]; st.FromY != 2 || st.ToX != 3 || st.Frames != 6 {
		t.Error("step 3 mismatch")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	_, err := LoadTestScript([]byte(`not json`))
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadTestScript_Empty(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": []}`))
	if !errors.Is(err, ErrNoSteps) {
		t.Errorf("expected ErrNoSteps, got %v", err)
	}
}

func TestLoadTestScript_UnknownAction(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": [{"action": "screenshot"}]}`))
	if err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestRunnerStep_Click(t *testing.T) {
	s := newScene(t, testConfig())

	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "click", "x": 10, "y": 10}]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.it.SetTestRunner(runner)

	// Frame 1: the runner queues press+release and the press is consumed.
	s.frame()
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}
	// Frame 2: release.
	s.frame()
	// Frame 3: queue drained, runner finishes.
	s.frame()
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
	s.expect(t, "cursor_over(low)", "pressed(low)", "released(low)")
}

func TestRunnerStep_Wait(t *testing.T) {
	it, _ := New(testConfig(), nil)

	data := []byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "hover", "x": 7, "y": 8}
	]}`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatal(err)
	}

	// Frame 1: execute wait (waitCount becomes 2).
	runner.step(it)
	if runner.Done() {
		t.Error("should not be done during wait")
	}

	// Frame 2: waitCount 2→1.
	runner.step(it)
	// Frame 3: waitCount 1→0.
	runner.step(it)
	if runner.Done() || it.Pending() != 0 {
		t.Error("hover step should not have run yet")
	}

	// Frame 4: execute hover step, runner finishes.
	runner.step(it)
	if it.Pending() != 1 || !it.injectQueue[0].hover {
		t.Fatalf("expected a queued hover, got %v", it.injectQueue)
	}
	if runner.Done() {
		t.Error("runner should wait for the hover to be consumed")
	}
}

func TestRunnerStep_Drag(t *testing.T) {
	it, _ := New(testConfig(), nil)

	data := []byte(`{"steps": [{"action": "drag", "fromX": 10, "fromY": 10, "toX": 200, "toY": 200, "frames": 4}]}`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatal(err)
	}

	runner.step(it)
	if it.Pending() != 4 {
		t.Fatalf("expected 4 queued events for drag, got %d", it.Pending())
	}
}

func TestRunnerDone(t *testing.T) {
	it, _ := New(testConfig(), nil)

	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "wait", "frames": 1}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if runner.Done() {
		t.Error("runner should not be done before any steps")
	}

	runner.step(it)
	if !runner.Done() {
		t.Error("runner should be done after single wait step")
	}
}

func TestRunnerWaitsForInjectQueue(t *testing.T) {
	it, _ := New(testConfig(), nil)

	data := []byte(`{"steps": [
		{"action": "click", "x": 50, "y": 50},
		{"action": "press", "x": 60, "y": 60}
	]}`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatal(err)
	}

	// Step 1: click queues 2 events.
	runner.step(it)
	if it.Pending() != 2 {
		t.Fatalf("expected 2 events, got %d", it.Pending())
	}

	// Step again: should not advance because the queue is not drained.
	runner.step(it)
	if runner.cursor != 1 {
		t.Errorf("cursor should still be 1, got %d", runner.cursor)
	}

	it.injectQueue = it.injectQueue[:0]

	runner.step(it)
	if it.Pending() != 1 || !it.injectQueue[0].pressed {
		t.Errorf("expected the press to be queued, got %v", it.injectQueue)
	}
}
