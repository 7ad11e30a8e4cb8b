package textbind

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action string `json:"action"`
	Target string `json:"target,omitempty"`
	Value  any    `json:"value,omitempty"`
	Text   string `json:"text,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner drives a scene frame by frame from a JSON script, assigning
// registry sources and checking registry sinks. Attach it with
// Scene.SetScript. One step runs per Scene.Update, before the scheduler
// tick, so an "expect" sees text published by earlier frames.
//
//	{"steps": [
//	  {"action": "set", "target": "score", "value": 42},
//	  {"action": "wait", "frames": 1},
//	  {"action": "expect", "target": "scoreLabel", "text": "Score: 42"}
//	]}
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	failures  []error
}

// LoadScript parses a JSON script and returns a runner ready to be attached
// with Scene.SetScript.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("textbind: parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("textbind: parse script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "set", "expect":
			if st.Target == "" {
				return nil, fmt.Errorf("textbind: parse script: step %d: %s needs a target", i, st.Action)
			}
		case "wait":
		default:
			return nil, fmt.Errorf("textbind: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// SetScript attaches a runner to the scene; nil detaches it.
func (s *Scene) SetScript(r *ScriptRunner) {
	s.script = r
}

// Done reports whether every step has run.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Failures returns the errors recorded by failed steps.
func (r *ScriptRunner) Failures() []error {
	return r.failures
}

func (r *ScriptRunner) fail(i int, format string, args ...any) {
	err := fmt.Errorf("step %d: "+format, append([]any{i}, args...)...)
	r.failures = append(r.failures, err)
	logger.Warn("script step failed", zap.Error(err))
}

// step advances the runner by one frame. Called from Scene.Update.
func (r *ScriptRunner) step(s *Scene) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		if r.waitCount == 0 && r.cursor >= len(r.steps) {
			r.done = true
		}
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	i := r.cursor
	st := r.steps[i]
	r.cursor++

	switch st.Action {
	case "set":
		src, ok := s.Registry().Source(st.Target)
		if !ok {
			r.fail(i, "%w %q", ErrUnknownSource, st.Target)
			break
		}
		a, ok := src.(Assignable)
		if !ok {
			r.fail(i, "source %q is not assignable", st.Target)
			break
		}
		if err := a.Assign(st.Value); err != nil {
			r.fail(i, "set %q: %w", st.Target, err)
		}
	case "expect":
		sink, ok := s.Registry().Sink(st.Target)
		if !ok {
			r.fail(i, "%w %q", ErrUnknownSink, st.Target)
			break
		}
		if got := sink.Text(); got != st.Text {
			r.fail(i, "sink %q text = %q, want %q", st.Target, got, st.Text)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
