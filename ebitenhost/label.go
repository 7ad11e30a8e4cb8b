package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/phanxgames/textbind"
)

// Label is an on-screen text element. It is a textbind.TextSink, so a
// Binding can publish into it, and a textbind.TextSource, so SyncText and
// other bindings can observe it.
type Label struct {
	X, Y  float64
	Color color.Color
	Font  *Font

	text     string
	changed  textbind.Event
	dirty    bool
	measured [2]float64
	measures int
}

var (
	_ textbind.TextSink   = (*Label)(nil)
	_ textbind.TextSource = (*Label)(nil)
)

// NewLabel creates a white label at (x, y).
func NewLabel(font *Font, x, y float64) *Label {
	return &Label{X: x, Y: y, Color: color.White, Font: font}
}

// Text returns the label's content.
func (l *Label) Text() string {
	return l.text
}

// SetText replaces the label's content. An unchanged string does not mark
// the label for re-measure or fire Changed.
func (l *Label) SetText(s string) {
	if s == l.text {
		return
	}
	l.text = s
	l.dirty = true
	l.changed.Invoke()
}

// Changed returns the change event.
func (l *Label) Changed() *textbind.Event {
	return &l.changed
}

// Size returns the rendered size of the content, measuring only when the
// text or font changed since the last call.
func (l *Label) Size() (width, height float64) {
	if l.Font == nil {
		return 0, 0
	}
	if l.dirty || l.measures == 0 {
		l.dirty = false
		l.measures++
		w, h := l.Font.Measure(l.text)
		l.measured = [2]float64{w, h}
	}
	return l.measured[0], l.measured[1]
}

// SetFont swaps the font and marks the label for re-measure.
func (l *Label) SetFont(f *Font) {
	l.Font = f
	l.dirty = true
}

// Draw renders the label onto dst.
func (l *Label) Draw(dst *ebiten.Image) {
	if l.Font == nil || l.text == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(l.X, l.Y)
	if l.Color != nil {
		op.ColorScale.ScaleWithColor(l.Color)
	}
	op.LineSpacing = l.Font.lh
	text.Draw(dst, l.text, l.Font.face, op)
}
