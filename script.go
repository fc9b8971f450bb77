package scrollfx

import (
	"encoding/json"
	"fmt"
)

// scriptStep is one action of a scroll script.
type scriptStep struct {
	Action   string  `json:"action"`
	Label    string  `json:"label,omitempty"`
	Y        float64 `json:"y,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
	Duration float32 `json:"duration,omitempty"`
	Ease     string  `json:"ease,omitempty"`
	Frames   int     `json:"frames,omitempty"`
}

type scrollScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScrollScript replays a fixed sequence of scroll, resize, wait and
// screenshot actions, one per frame, so the effects of a page can be
// captured at known scroll positions. Pass one to Run via RunConfig.Script.
//
// Actions:
//
//	{"action": "scrollTo", "y": 800, "duration": 0.5, "ease": "power2.inOut"}
//	{"action": "scrollBy", "y": -120}
//	{"action": "resize", "width": 390, "height": 844}
//	{"action": "wait", "frames": 60}
//	{"action": "screenshot", "label": "hero"}
type ScrollScript struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScrollScript parses a JSON scroll script.
func LoadScrollScript(data []byte) (*ScrollScript, error) {
	var s scrollScript
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scroll script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse scroll script: no steps")
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse scroll script: step %d: %w", i, err)
		}
	}
	return &ScrollScript{steps: s.Steps}, nil
}

func (st scriptStep) validate() error {
	switch st.Action {
	case "scrollTo":
		if st.Ease != "" {
			if _, ok := EaseByName(st.Ease); !ok {
				return fmt.Errorf("unknown ease %q", st.Ease)
			}
		}
	case "resize":
		if st.Width <= 0 || st.Height <= 0 {
			return fmt.Errorf("resize to %vx%v", st.Width, st.Height)
		}
	case "scrollBy", "wait", "screenshot":
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// Done reports whether every step has run.
func (r *ScrollScript) Done() bool {
	return r.done
}

// step runs at most one action against p. Called from Run once per frame
// before input handling. A running scrollTo finishes before the next step.
func (r *ScrollScript) step(p *Page) {
	if r.done {
		return
	}
	if p.viewport.Scrolling() {
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
	case "scrollTo":
		name := st.Ease
		if name == "" {
			name = DefaultEase
		}
		fn, _ := EaseByName(name)
		p.viewport.ScrollTo(st.Y, st.Duration, fn)
	case "scrollBy":
		p.viewport.ScrollBy(st.Y)
	case "resize":
		p.Resize(st.Width, st.Height)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		p.Screenshot(st.Label)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && !p.viewport.Scrolling() {
		r.done = true
	}
}
