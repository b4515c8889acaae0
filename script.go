package glide

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep represents a single action in an animation script.
type scriptStep struct {
	Action string `yaml:"action"`
	// Target is the name of the node to animate, looked up under the scene
	// root. An empty name means the root itself.
	Target      string  `yaml:"target,omitempty"`
	From        float64 `yaml:"from,omitempty"`
	To          float64 `yaml:"to,omitempty"`
	FromColor   string  `yaml:"fromColor,omitempty"`
	ToColor     string  `yaml:"toColor,omitempty"`
	X           float64 `yaml:"x,omitempty"`
	Y           float64 `yaml:"y,omitempty"`
	FromX       float64 `yaml:"fromX,omitempty"`
	FromY       float64 `yaml:"fromY,omitempty"`
	Time        float64 `yaml:"time,omitempty"`
	Delay       float64 `yaml:"delay,omitempty"`
	Descendants bool    `yaml:"descendants,omitempty"`
	Frames      int     `yaml:"frames,omitempty"`

	fromColor, toColor Color
}

// script is the top-level structure of a script document.
type script struct {
	Steps []scriptStep `yaml:"steps"`
}

// ScriptRunner plays a sequence of tween launches and waits against a Scene,
// one step per frame. Attach it with Scene.SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	err       error
}

// LoadScript parses a YAML (or JSON) animation script and returns a
// ScriptRunner ready to be attached to a Scene:
//
//	steps:
//	  - {action: alpha-from, target: panel, to: 0, time: 0.5, descendants: true}
//	  - {action: wait, frames: 30}
//	  - {action: color, target: title, fromColor: "#ffffff", toColor: "#ff8800", time: 1}
//	  - {action: shift, target: title, x: 0, y: -40, time: 0.25}
//
// Actions: alpha, alpha-from, color, color-from, move, move-from, shift, wait.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var sc script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i := range sc.Steps {
		if err := sc.Steps[i].prepare(); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

func (st *scriptStep) prepare() error {
	var err error
	switch st.Action {
	case "color":
		if st.fromColor, err = ParseColor(st.FromColor); err != nil {
			return err
		}
		if st.toColor, err = ParseColor(st.ToColor); err != nil {
			return err
		}
	case "color-from":
		if st.toColor, err = ParseColor(st.ToColor); err != nil {
			return err
		}
	case "wait":
		if st.Frames <= 0 {
			return fmt.Errorf("wait needs a positive frame count")
		}
		return nil
	case "alpha", "alpha-from", "move", "move-from", "shift":
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return checkTiming(st.Action, st.Time, st.Delay)
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Err returns the first error an Animator returned while running the script.
func (r *ScriptRunner) Err() error {
	return r.err
}

// step advances the runner by one frame. Called from Scene.Update.
func (r *ScriptRunner) step(s *Scene) {
	if r.done {
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

	if st.Action == "wait" {
		r.waitCount = st.Frames - 1 // this frame counts as one
	} else if err := st.run(s); err != nil && r.err == nil {
		r.err = err
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

func (st *scriptStep) run(s *Scene) error {
	node := s.root
	if st.Target != "" {
		node = s.root.FindChild(st.Target)
	}
	a := s.animator
	if node == nil {
		a.skip(kindForAction(st.Action), nil)
		return nil
	}

	switch st.Action {
	case "alpha":
		return a.AnimateAlpha(node, st.From, st.To, st.Time, st.Delay, st.Descendants)
	case "alpha-from":
		return a.AnimateAlphaFromCurrent(node, st.To, st.Time, st.Delay, st.Descendants)
	case "color":
		return a.AnimateColor(node, st.fromColor, st.toColor, st.Time, st.Delay)
	case "color-from":
		return a.AnimateColorFromCurrent(node, st.toColor, st.Time, st.Delay, st.Descendants)
	case "move":
		return a.AnimatePosition(node, Vec2{st.FromX, st.FromY}, Vec2{st.X, st.Y}, st.Time, st.Delay)
	case "move-from":
		return a.AnimatePositionFromCurrent(node, Vec2{st.X, st.Y}, st.Time, st.Delay)
	case "shift":
		return a.AnimatePositionShift(node, Vec2{st.X, st.Y}, st.Time, st.Delay)
	}
	return nil
}

func kindForAction(action string) TweenKind {
	switch action {
	case "color", "color-from":
		return TweenColor
	case "move", "move-from", "shift":
		return TweenPosition
	default:
		return TweenAlpha
	}
}
