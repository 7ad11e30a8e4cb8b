package ebitenhost

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/textbind"
)

// fpsInterval is how often FPSValue samples, in seconds.
const fpsInterval = 0.5

// FPSValue is a textbind.ValueSource publishing the measured frame rate,
// rounded to one decimal and refreshed every half second. Feed it to a
// Binding such as NewBinding("FPS: {0:F1}", fps) and add it to a Game.
type FPSValue struct {
	// Sample reports the current rate; nil means ebiten.ActualFPS.
	Sample func() float64

	elapsed float64
	value   float64
	changed textbind.Event
}

// NewFPSValue creates an FPSValue sampling ebiten.ActualFPS.
func NewFPSValue() *FPSValue {
	return &FPSValue{}
}

// Update accumulates dt seconds and samples once the interval has passed.
func (f *FPSValue) Update(dt float32) {
	f.elapsed += float64(dt)
	if f.elapsed < fpsInterval {
		return
	}
	f.elapsed = 0

	sample := f.Sample
	if sample == nil {
		sample = ebiten.ActualFPS
	}
	v := math.Round(sample()*10) / 10
	if v == f.value {
		return
	}
	f.value = v
	f.changed.Invoke()
}

// Value returns the last sample as a float64.
func (f *FPSValue) Value() any {
	return f.value
}

// Changed returns the change event.
func (f *FPSValue) Changed() *textbind.Event {
	return &f.changed
}
