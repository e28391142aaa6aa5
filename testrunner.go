package ebitools

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string       `yaml:"action"`
	Label  string       `yaml:"label,omitempty"`
	Keys   []ebiten.Key `yaml:"keys,omitempty"`
	X      float64      `yaml:"x,omitempty"`
	Y      float64      `yaml:"y,omitempty"`
	Button MouseButton  `yaml:"button,omitempty"`
	Player int          `yaml:"player,omitempty"`
	// Pad is the standard-layout gamepad button index for "gamepad".
	Pad    ebiten.StandardGamepadButton `yaml:"pad,omitempty"`
	Frames int                          `yaml:"frames,omitempty"`
}

// testScript is the top-level structure for a test script.
type testScript struct {
	Steps []testStep `yaml:"steps"`
}

// TestRunner sequences injected input and screenshots across ticks for
// automated visual testing. Attach to a Game via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a YAML (or JSON) test script. Supported actions
// are key, click, move, gamepad, wait and screenshot.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("ebitools: parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("ebitools: parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "key", "click", "move", "gamepad", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("ebitools: parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one tick. Called from Game.Update
// before input is polled.
func (r *TestRunner) step(g *Game) {
	if r.done {
		return
	}
	in := g.ctx.Input
	// Wait for pending injections to drain before advancing.
	if in.Pending() > 0 {
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
		g.Screenshot(st.Label)
	case "key":
		in.InjectKey(st.Keys...)
	case "click":
		in.InjectClick(st.X, st.Y, st.Button)
	case "move":
		in.InjectMove(st.X, st.Y)
	case "gamepad":
		in.InjectGamepadButton(st.Player, st.Pad)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && in.Pending() == 0 {
		r.done = true
	}
}
