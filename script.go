package uzu

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string      `yaml:"action"`
	Button MouseButton `yaml:"button,omitempty"`
	ID     int         `yaml:"id,omitempty"`
	X      float64     `yaml:"x,omitempty"`
	Y      float64     `yaml:"y,omitempty"`
	FromX  float64     `yaml:"fromX,omitempty"`
	FromY  float64     `yaml:"fromY,omitempty"`
	ToX    float64     `yaml:"toX,omitempty"`
	ToY    float64     `yaml:"toY,omitempty"`
	Frames int         `yaml:"frames,omitempty"`
}

type inputScript struct {
	Steps []scriptStep `yaml:"steps"`
}

// InputScript is a recorded sequence of input actions that can be replayed
// through an InjectSource, for automated testing and attract-mode demos.
//
// Scripts are YAML (or JSON) documents with a list of steps:
//
//	steps:
//	  - {action: click, x: 100, y: 200}
//	  - {action: wait, frames: 3}
//	  - {action: drag, fromX: 0, fromY: 0, toX: 50, toY: 50, frames: 5}
//	  - {action: touch, id: 1, x: 10, y: 10, frames: 4}
//
// Supported actions are click, drag, press, hold, release, touch and wait.
type InputScript struct {
	steps []scriptStep
}

// LoadInputScript parses a script. Unknown actions are rejected.
func LoadInputScript(data []byte) (*InputScript, error) {
	var script inputScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("uzu: parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, errors.New("uzu: parse input script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "click", "drag", "press", "hold", "release", "touch", "wait":
		default:
			return nil, fmt.Errorf("uzu: parse input script: step %d: unknown action %q", i, st.Action)
		}
		if st.Button > MouseButtonRight {
			return nil, fmt.Errorf("uzu: parse input script: step %d: invalid button %d", i, st.Button)
		}
	}
	return &InputScript{steps: script.Steps}, nil
}

// Len returns the number of steps.
func (s *InputScript) Len() int { return len(s.steps) }

// Queue appends the frames for every step to src. A touch step holds a
// contact at one position for the given number of frames (minimum 1); it
// ends on the frame after.
func (s *InputScript) Queue(src *InjectSource) {
	for _, st := range s.steps {
		switch st.Action {
		case "click":
			src.InjectClick(st.X, st.Y)
		case "drag":
			src.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
		case "press":
			src.InjectPress(st.Button, st.X, st.Y)
		case "hold":
			for i := 0; i < max(st.Frames, 1); i++ {
				src.InjectHold(st.Button, st.X, st.Y)
			}
		case "release":
			src.InjectRelease(st.Button, st.X, st.Y)
		case "touch":
			pos := Vec2{X: st.X, Y: st.Y}
			src.InjectTouches(Touch{ID: st.ID, Position: pos, Phase: PhaseBegan})
			for i := 1; i < max(st.Frames, 1); i++ {
				src.InjectTouches(Touch{ID: st.ID, Position: pos, DeltaTime: src.step, Phase: PhaseStationary})
			}
		case "wait":
			src.InjectIdle(st.Frames)
		}
	}
}
