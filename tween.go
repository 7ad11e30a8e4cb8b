package textbind

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenValue is a ValueSource whose number animates toward a target. Call
// Update(dt) each frame; Changed fires whenever the published value moves,
// so a Binding fed by a TweenValue re-formats at most once per frame however
// many updates land in it.
//
// With Round set the value is published as an int64 and only whole-number
// steps fire Changed, which suits count-up score and currency text.
//
// There is no global animation manager; users call Update themselves.
type TweenValue struct {
	Round bool
	Done  bool

	tween   *gween.Tween
	fn      ease.TweenFunc
	current float64
	changed Event
}

// NewTweenValue creates a TweenValue that animates from -> to over duration
// seconds using the easing function fn.
func NewTweenValue(from, to float64, duration float32, fn ease.TweenFunc) *TweenValue {
	return &TweenValue{
		tween:   gween.New(float32(from), float32(to), duration, fn),
		fn:      fn,
		current: from,
	}
}

// Update advances the animation by dt seconds.
func (t *TweenValue) Update(dt float32) {
	if t.Done {
		return
	}
	val, finished := t.tween.Update(dt)
	t.Done = finished
	t.set(float64(val))
}

// Retarget starts a new animation from the current value to `to`.
func (t *TweenValue) Retarget(to float64, duration float32) {
	t.tween = gween.New(float32(t.current), float32(to), duration, t.fn)
	t.Done = false
}

// Snap jumps straight to v and stops the animation.
func (t *TweenValue) Snap(v float64) {
	t.Done = true
	t.set(v)
}

func (t *TweenValue) set(v float64) {
	prev := t.current
	t.current = v
	if t.Round {
		if math.Round(prev) == math.Round(v) {
			return
		}
	} else if prev == v {
		return
	}
	t.changed.Invoke()
}

// Float returns the unrounded current value.
func (t *TweenValue) Float() float64 {
	return t.current
}

// Value returns the published value: an int64 when Round is set, otherwise
// a float64.
func (t *TweenValue) Value() any {
	if t.Round {
		return int64(math.Round(t.current))
	}
	return t.current
}

// Changed returns the change event.
func (t *TweenValue) Changed() *Event {
	return &t.changed
}
