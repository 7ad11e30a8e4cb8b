package textbind

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"
)

// StringLimiter is a DirectiveResolver that reads {i:N} as "truncate
// argument i to at most N characters". Characters are grapheme clusters, so
// combining marks and emoji sequences are never split.
//
// When the text is longer than N and Ellipsis is set (and N >= 3), the
// first N-3 characters are kept, trimmed, and "..." is appended. Otherwise
// the first N characters are kept and trimmed.
//
// The limiter declines non-string arguments and specs that are not a
// non-negative integer, so {0:0.00} still formats numbers.
type StringLimiter struct {
	Ellipsis bool
}

// Shared limiter instances. StringLimiter is stateless, so these are safe to
// use from any binding.
var (
	SharedLimiter         = &StringLimiter{}
	SharedEllipsisLimiter = &StringLimiter{Ellipsis: true}
)

// Resolve implements DirectiveResolver.
func (l *StringLimiter) Resolve(spec string, arg any) (string, bool) {
	s, ok := arg.(string)
	if !ok {
		v := reflect.ValueOf(arg)
		if v.Kind() != reflect.String {
			return "", false
		}
		s = v.String()
	}
	n, err := strconv.Atoi(spec)
	if err != nil || n < 0 {
		return "", false
	}
	return l.Limit(s, n), true
}

// Limit truncates s to at most n characters.
func (l *StringLimiter) Limit(s string, n int) string {
	if uniseg.GraphemeClusterCount(s) <= n {
		return s
	}
	if n >= 3 && l.Ellipsis {
		return strings.TrimSpace(firstGraphemes(s, n-3)) + "..."
	}
	return strings.TrimSpace(firstGraphemes(s, n))
}

// firstGraphemes returns the prefix of s holding its first n grapheme
// clusters.
func firstGraphemes(s string, n int) string {
	rest := s
	state := -1
	end := 0
	for i := 0; i < n && rest != ""; i++ {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		end += len(cluster)
	}
	return s[:end]
}
