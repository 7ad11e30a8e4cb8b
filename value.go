package textbind

import (
	"fmt"
	"reflect"
)

// ValueSource is a property that holds a value and fires Changed whenever
// that value changes. Bindings read sources; they never write them.
type ValueSource interface {
	Value() any
	Changed() *Event
}

// TextSink receives formatted text. It is the only thing a Binding writes.
type TextSink interface {
	Text() string
	SetText(s string)
}

// TextSource is a string-valued property with change notification.
type TextSource interface {
	Text() string
	Changed() *Event
}

// Assignable is a source that can be set from an untyped value, as config
// and script files do.
type Assignable interface {
	Assign(v any) error
}

// Value is an observable property of any comparable type.
type Value[T comparable] struct {
	v       T
	changed Event
}

// NewValue creates a Value holding v.
func NewValue[T comparable](v T) *Value[T] {
	return &Value[T]{v: v}
}

// Get returns the current value.
func (p *Value[T]) Get() T {
	return p.v
}

// Set stores v and fires Changed if it differs from the current value.
func (p *Value[T]) Set(v T) {
	if p.v == v {
		return
	}
	p.v = v
	p.changed.Invoke()
}

// Assign sets the value from an untyped v, converting between numeric
// kinds (config and script files decode numbers as float64).
func (p *Value[T]) Assign(v any) error {
	if typed, ok := v.(T); ok {
		p.Set(typed)
		return nil
	}
	var zero T
	target := reflect.TypeOf(zero)
	rv := reflect.ValueOf(v)
	if target == nil || !rv.IsValid() || !isNumericKind(rv.Kind()) || !isNumericKind(target.Kind()) {
		return fmt.Errorf("textbind: cannot assign %T to %T", v, zero)
	}
	p.Set(rv.Convert(target).Interface().(T))
	return nil
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// Value returns the current value boxed as any.
func (p *Value[T]) Value() any {
	return p.v
}

// Changed returns the change event.
func (p *Value[T]) Changed() *Event {
	return &p.changed
}

// Text is an observable string property. It is both a TextSource and a
// TextSink, so bindings can write it and other bindings or SyncText
// components can observe it.
type Text struct {
	s       string
	writes  int
	changed Event
}

// NewText creates a Text holding s.
func NewText(s string) *Text {
	return &Text{s: s}
}

// Text returns the current string.
func (t *Text) Text() string {
	return t.s
}

// SetText stores s. Every call counts as a write; Changed fires only when
// the content differs.
func (t *Text) SetText(s string) {
	t.writes++
	if t.s == s {
		return
	}
	t.s = s
	t.changed.Invoke()
}

// Value returns the current string boxed as any, so a Text can feed a
// Binding input directly.
func (t *Text) Value() any {
	return t.s
}

// Assign sets the text from the natural string form of v.
func (t *Text) Assign(v any) error {
	t.SetText(naturalString(v))
	return nil
}

// Changed returns the change event.
func (t *Text) Changed() *Event {
	return &t.changed
}

// IsSet reports whether the text is non-empty.
func (t *Text) IsSet() bool {
	return t.s != ""
}

// Writes returns how many times SetText has been called.
func (t *Text) Writes() int {
	return t.writes
}
