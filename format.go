package textbind

import (
	"reflect"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Options controls a single Format call.
type Options struct {
	// Live selects running mode. When false, Preview strings stand in for
	// the inputs (design-time preview).
	Live bool

	// Preview holds the placeholder strings used when Live is false. If it
	// is shorter than the input list its last entry is repeated; if empty,
	// every position is "".
	Preview []string

	// Limiter enables the {i:N} truncation directive.
	Limiter bool

	// Ellipsis appends "..." to limited strings (N >= 3).
	Ellipsis bool

	// Name identifies the caller in log output.
	Name string
}

const maxCachedTemplates = 64

// Formatter turns a template and an ordered list of inputs into a string.
// It caches parsed templates and reuses its scratch buffers between calls,
// but never retains input values past the call that read them. A Formatter
// is not safe for concurrent use; re-entrant calls are fine.
type Formatter struct {
	// Language selects the locale used for grouped numeric specs (N, P).
	// The zero value means English.
	Language language.Tag

	// Resolver, if set, is consulted for {i:spec} placeholders after the
	// string limiter (when enabled) declines.
	Resolver DirectiveResolver

	printer     *message.Printer
	printerLang language.Tag

	templates map[string]*Template
	pool      argPool
	buf       []byte
}

// NewFormatter creates a Formatter with English number formatting.
func NewFormatter() *Formatter {
	return &Formatter{}
}

var sharedFormatter = NewFormatter()

// Format formats template with inputs using a package-level Formatter.
// See Formatter.Format.
func Format(template string, inputs []ValueSource, previewInputs []string, isLive, limiterEnabled, ellipsisEnabled bool) (string, error) {
	return sharedFormatter.Format(template, inputs, Options{
		Live:     isLive,
		Preview:  previewInputs,
		Limiter:  limiterEnabled,
		Ellipsis: ellipsisEnabled,
	})
}

// Format substitutes the inputs into template.
//
// With no inputs the template is returned verbatim and is not parsed. A nil
// input contributes "" and logs a warning. A malformed template or a
// placeholder index past the end of inputs returns a *FormatError.
func (f *Formatter) Format(template string, inputs []ValueSource, opts Options) (string, error) {
	if len(inputs) == 0 {
		return template, nil
	}
	t, err := f.parse(template)
	if err != nil {
		return "", err
	}

	args := f.pool.Acquire(len(inputs))
	defer f.pool.Release(args)

	if !opts.Live {
		fillPreview(args, opts.Preview)
	} else {
		for i, in := range inputs {
			if isNil(in) {
				warnMissingInput(opts.Name, i)
				args[i] = ""
				continue
			}
			args[i] = in.Value()
		}
	}

	// Take ownership of the byte buffer so a re-entrant call allocates its
	// own instead of overwriting ours.
	buf := f.buf[:0]
	f.buf = nil
	buf, err = t.appendTo(buf, args, f.resolver(opts), f.numberPrinter())
	var out string
	if err == nil {
		out = string(buf)
	}
	f.buf = buf[:0]
	return out, err
}

// fillPreview writes the preview placeholder for each argument position.
func fillPreview(args []any, preview []string) {
	for i := range args {
		if len(preview) == 0 {
			args[i] = ""
			continue
		}
		args[i] = preview[min(len(preview)-1, i)]
	}
}

func (f *Formatter) resolver(opts Options) DirectiveResolver {
	if !opts.Limiter {
		return f.Resolver
	}
	var limiter DirectiveResolver = SharedLimiter
	if opts.Ellipsis {
		limiter = SharedEllipsisLimiter
	}
	if f.Resolver == nil {
		return limiter
	}
	return ChainResolvers(limiter, f.Resolver)
}

func (f *Formatter) numberPrinter() *message.Printer {
	if f.Language == language.Und {
		return defaultPrinter()
	}
	if f.printer == nil || f.printerLang != f.Language {
		f.printer = message.NewPrinter(f.Language)
		f.printerLang = f.Language
	}
	return f.printer
}

// parse returns the cached Template for src, parsing it on first use.
func (f *Formatter) parse(src string) (*Template, error) {
	if t, ok := f.templates[src]; ok {
		return t, nil
	}
	t, err := ParseTemplate(src)
	if err != nil {
		return nil, err
	}
	if f.templates == nil || len(f.templates) >= maxCachedTemplates {
		f.templates = make(map[string]*Template)
	}
	f.templates[src] = t
	return t, nil
}

// isNil reports whether v is nil or an interface holding a nil pointer,
// map, slice, func or chan.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
