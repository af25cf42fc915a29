package ebitenhost

import (
	"encoding/json"
	"fmt"

	"github.com/phanxgames/thicket"
)

// testStep is a single action in a test script.
type testStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	FromX  int    `json:"fromX,omitempty"`
	FromY  int    `json:"fromY,omitempty"`
	ToX    int    `json:"toX,omitempty"`
	ToY    int    `json:"toY,omitempty"`
	Frames int    `json:"frames,omitempty"`
	Key    string `json:"key,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// scriptKeys names the keys a script may press.
var scriptKeys = map[string]thicket.Key{
	"enter":    thicket.KeyEnter,
	"space":    thicket.KeySpace,
	"tab":      thicket.KeyTab,
	"escape":   thicket.KeyEscape,
	"left":     thicket.KeyLeft,
	"right":    thicket.KeyRight,
	"up":       thicket.KeyUp,
	"down":     thicket.KeyDown,
	"home":     thicket.KeyHome,
	"end":      thicket.KeyEnd,
	"pageup":   thicket.KeyPageUp,
	"pagedown": thicket.KeyPageDown,
}

// TestRunner sequences injected input, key presses and screenshots across
// frames for automated visual testing. Attach it with Screen.SetTestRunner.
type TestRunner struct {
	steps []testStep
	next  int // index of the step to run
	hold  int // frames left before the next step
	done  bool
}

// LoadTestScript parses a JSON test script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "screenshot", "click", "drag", "wait":
		case "key":
			if _, ok := scriptKeys[st.Key]; !ok {
				return nil, fmt.Errorf("parse test script: step %d: unknown key %q", i, st.Key)
			}
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a runner to the screen. Its step method runs at
// the start of every Update.
func (s *Screen) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether every step has been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Nothing runs while injected
// input is still queued or a wait is counting down.
func (r *TestRunner) step(s *Screen) {
	switch {
	case r.done || len(s.injectQueue) > 0:
		return
	case r.hold > 0:
		r.hold--
		return
	case r.next < len(r.steps):
		r.run(s, r.steps[r.next])
		r.next++
	}
	r.done = r.next >= len(r.steps) && r.hold == 0 && len(s.injectQueue) == 0
}

func (r *TestRunner) run(s *Screen, st testStep) {
	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "key":
		s.gui.KeyPressed(0, scriptKeys[st.Key], 0)
	case "wait":
		// the frame running the step counts toward the wait
		r.hold = max(st.Frames-1, 0)
	}
}
