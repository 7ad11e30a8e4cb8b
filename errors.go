package textbind

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedTemplate is matched by errors for templates that cannot be
	// parsed (unbalanced braces, bad placeholder index or alignment).
	ErrMalformedTemplate = errors.New("textbind: malformed template")

	// ErrIndexOutOfRange is matched by errors for placeholders whose index
	// has no corresponding input.
	ErrIndexOutOfRange = errors.New("textbind: placeholder index out of range")

	// ErrUnknownSource is returned when a configuration names a source that
	// is not registered.
	ErrUnknownSource = errors.New("textbind: unknown source")

	// ErrUnknownSink is returned when a configuration names a sink that is
	// not registered.
	ErrUnknownSink = errors.New("textbind: unknown sink")

	// ErrNoScheduler is returned by Bind when given a nil Scheduler.
	ErrNoScheduler = errors.New("textbind: no scheduler")
)

// FormatError describes a template that could not be parsed or executed.
// It is a configuration error and is always returned to the caller.
type FormatError struct {
	Template string
	Pos      int // byte offset into Template; -1 when not applicable
	Index    int // placeholder index for ErrIndexOutOfRange; -1 otherwise
	Msg      string
	kind     error
}

func (e *FormatError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("%v: %s at offset %d in %q", e.kind, e.Msg, e.Pos, e.Template)
	}
	return fmt.Sprintf("%v: %s in %q", e.kind, e.Msg, e.Template)
}

// Unwrap returns the sentinel the error belongs to.
func (e *FormatError) Unwrap() error {
	return e.kind
}

func malformed(src string, pos int, msg string) error {
	return &FormatError{Template: src, Pos: pos, Index: -1, Msg: msg, kind: ErrMalformedTemplate}
}

func outOfRange(src string, pos, index, argc int) error {
	return &FormatError{
		Template: src,
		Pos:      pos,
		Index:    index,
		Msg:      fmt.Sprintf("index %d with %d argument(s)", index, argc),
		kind:     ErrIndexOutOfRange,
	}
}
