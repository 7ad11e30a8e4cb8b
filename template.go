package textbind

import (
	"strconv"
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/message"
)

// maxAlignment bounds the pad width of a placeholder, exclusive.
const maxAlignment = 1_000_000

// Template is a parsed composite format string: literal text with
// positional placeholders of the form {index[,alignment][:spec]}. Braces
// are escaped by doubling them. A Template is immutable once parsed.
type Template struct {
	src      string
	segs     []segment
	maxIndex int
}

// segment is either a literal run or a placeholder.
type segment struct {
	literal     string
	placeholder bool
	index       int
	align       int
	spec        string
	hasSpec     bool
	pos         int
}

// ParseTemplate parses src. Malformed input returns a *FormatError matching
// ErrMalformedTemplate.
func ParseTemplate(src string) (*Template, error) {
	t := &Template{src: src, maxIndex: -1}
	var lit strings.Builder

	flushLiteral := func() {
		if lit.Len() > 0 {
			t.segs = append(t.segs, segment{literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(src); {
		c := src[i]
		switch c {
		case '{':
			if i+1 < len(src) && src[i+1] == '{' {
				lit.WriteByte('{')
				i += 2
				continue
			}
			seg, next, err := parsePlaceholder(src, i)
			if err != nil {
				return nil, err
			}
			flushLiteral()
			t.segs = append(t.segs, seg)
			if seg.index > t.maxIndex {
				t.maxIndex = seg.index
			}
			i = next
		case '}':
			if i+1 < len(src) && src[i+1] == '}' {
				lit.WriteByte('}')
				i += 2
				continue
			}
			return nil, malformed(src, i, "unmatched '}'")
		default:
			lit.WriteByte(c)
			i++
		}
	}
	flushLiteral()
	return t, nil
}

// parsePlaceholder parses the placeholder whose '{' is at src[start] and
// returns the index just past its closing '}'.
func parsePlaceholder(src string, start int) (segment, int, error) {
	seg := segment{placeholder: true, pos: start}
	i := start + 1

	digits := i
	for i < len(src) && src[i] >= '0' && src[i] <= '9' {
		i++
	}
	if i == digits {
		if i >= len(src) {
			return seg, 0, malformed(src, start, "unclosed '{'")
		}
		return seg, 0, malformed(src, i, "expected placeholder index")
	}
	idx, err := strconv.Atoi(src[digits:i])
	if err != nil {
		return seg, 0, malformed(src, digits, "placeholder index too large")
	}
	seg.index = idx
	i = skipSpaces(src, i)

	if i < len(src) && src[i] == ',' {
		i = skipSpaces(src, i+1)
		alignStart := i
		if i < len(src) && src[i] == '-' {
			i++
		}
		numStart := i
		for i < len(src) && src[i] >= '0' && src[i] <= '9' {
			i++
		}
		if i == numStart {
			return seg, 0, malformed(src, alignStart, "expected alignment")
		}
		align, err := strconv.Atoi(src[alignStart:i])
		if err != nil || align >= maxAlignment || align <= -maxAlignment {
			return seg, 0, malformed(src, alignStart, "alignment too large")
		}
		seg.align = align
		i = skipSpaces(src, i)
	}

	if i < len(src) && src[i] == ':' {
		i++
		specStart := i
		for i < len(src) && src[i] != '}' {
			if src[i] == '{' {
				return seg, 0, malformed(src, i, "'{' inside format spec")
			}
			i++
		}
		seg.spec = src[specStart:i]
		seg.hasSpec = true
	}

	if i >= len(src) {
		return seg, 0, malformed(src, start, "unclosed '{'")
	}
	if src[i] != '}' {
		return seg, 0, malformed(src, i, "unexpected character in placeholder")
	}
	return seg, i + 1, nil
}

func skipSpaces(s string, i int) int {
	for i < len(s) && s[i] == ' ' {
		i++
	}
	return i
}

// String returns the source the template was parsed from.
func (t *Template) String() string {
	return t.src
}

// MaxIndex returns the highest placeholder index, or -1 if the template has
// no placeholders.
func (t *Template) MaxIndex() int {
	return t.maxIndex
}

// Execute substitutes args into the template. Placeholders carrying a format
// are offered to resolver first (which may be nil); when it declines, the
// default formatter handles it. An index past the end of args returns
// a *FormatError matching ErrIndexOutOfRange.
func (t *Template) Execute(args []any, resolver DirectiveResolver) (string, error) {
	buf, err := t.appendTo(nil, args, resolver, defaultPrinter())
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

func (t *Template) appendTo(dst []byte, args []any, resolver DirectiveResolver, p *message.Printer) ([]byte, error) {
	for i := range t.segs {
		seg := &t.segs[i]
		if !seg.placeholder {
			dst = append(dst, seg.literal...)
			continue
		}
		if seg.index >= len(args) {
			return dst, outOfRange(t.src, seg.pos, seg.index, len(args))
		}
		arg := args[seg.index]

		var s string
		handled := false
		if seg.hasSpec && resolver != nil {
			s, handled = resolver.Resolve(seg.spec, arg)
		}
		if !handled {
			if seg.hasSpec {
				s = formatWithSpec(arg, seg.spec, p)
			} else {
				s = naturalString(arg)
			}
		}
		dst = appendAligned(dst, s, seg.align)
	}
	return dst, nil
}

// appendAligned pads s with spaces to |align| characters: right-aligned for
// positive align, left-aligned for negative.
func appendAligned(dst []byte, s string, align int) []byte {
	if align == 0 {
		return append(dst, s...)
	}
	width := align
	if width < 0 {
		width = -width
	}
	pad := width - uniseg.GraphemeClusterCount(s)
	if pad <= 0 {
		return append(dst, s...)
	}
	if align < 0 {
		dst = append(dst, s...)
	}
	for ; pad > 0; pad-- {
		dst = append(dst, ' ')
	}
	if align > 0 {
		dst = append(dst, s...)
	}
	return dst
}
