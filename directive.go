package textbind

import (
	"fmt"
	"strconv"
)

// DirectiveResolver handles the format part of a {index:format} placeholder.
// Resolve returns the replacement text and true, or false to decline, in
// which case the default formatter handles it. Resolvers must be
// reentrant; the engine may share one instance across bindings.
type DirectiveResolver interface {
	Resolve(spec string, arg any) (string, bool)
}

// DirectiveFunc adapts a plain function to DirectiveResolver.
type DirectiveFunc func(spec string, arg any) (string, bool)

// Resolve calls f.
func (f DirectiveFunc) Resolve(spec string, arg any) (string, bool) {
	return f(spec, arg)
}

// ChainResolvers returns a resolver that offers each placeholder to rs in
// order and returns the first result that is not declined.
func ChainResolvers(rs ...DirectiveResolver) DirectiveResolver {
	return DirectiveFunc(func(spec string, arg any) (string, bool) {
		for _, r := range rs {
			if r == nil {
				continue
			}
			if s, ok := r.Resolve(spec, arg); ok {
				return s, true
			}
		}
		return "", false
	})
}

// naturalString returns the plain string form of a placeholder argument.
func naturalString(arg any) string {
	switch v := arg.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	default:
		return fmt.Sprint(v)
	}
}
