package textbind

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var englishPrinter = message.NewPrinter(language.English)

func defaultPrinter() *message.Printer {
	return englishPrinter
}

// formatWithSpec formats arg using a generic format spec. It never fails:
// a spec it does not understand yields the natural string form.
//
//	%...           fmt verb, e.g. {0:%6.2f}
//	time.Time      Go time layout, e.g. {0:15:04}
//	F2 N0 D3 X4 E2 P1 G5   standard numeric specs
//	0.00 #,##0 0.#%        custom numeric patterns
func formatWithSpec(arg any, spec string, p *message.Printer) string {
	if spec == "" {
		return naturalString(arg)
	}
	if spec[0] == '%' {
		return fmt.Sprintf(spec, arg)
	}
	if t, ok := arg.(time.Time); ok {
		return t.Format(spec)
	}
	f, isNum := asFloat(arg)
	if !isNum {
		return naturalString(arg)
	}
	if s, ok := formatStandard(arg, f, spec, p); ok {
		return s
	}
	if s, ok := formatCustom(f, spec); ok {
		return s
	}
	return naturalString(arg)
}

// formatStandard handles a single letter spec with an optional precision.
func formatStandard(arg any, f float64, spec string, p *message.Printer) (string, bool) {
	letter := spec[0]
	prec := -1
	if len(spec) > 1 {
		n, err := strconv.Atoi(spec[1:])
		if err != nil || n < 0 || n > 99 {
			return "", false
		}
		prec = n
	}

	switch letter {
	case 'F', 'f':
		if prec < 0 {
			prec = 2
		}
		return strconv.FormatFloat(f, 'f', prec, 64), true
	case 'N', 'n':
		if prec < 0 {
			prec = 2
		}
		return p.Sprintf("%."+strconv.Itoa(prec)+"f", f), true
	case 'D', 'd':
		i, ok := asInt(arg)
		if !ok {
			return "", false
		}
		neg := i < 0
		digits := strconv.FormatUint(absInt(i), 10)
		digits = zeroPad(digits, prec)
		if neg {
			return "-" + digits, true
		}
		return digits, true
	case 'X', 'x':
		i, ok := asInt(arg)
		if !ok {
			return "", false
		}
		s := strconv.FormatUint(uint64(i), 16)
		if letter == 'X' {
			s = strings.ToUpper(s)
		}
		return zeroPad(s, prec), true
	case 'E', 'e':
		if prec < 0 {
			prec = 6
		}
		s := strconv.FormatFloat(f, 'e', prec, 64)
		if letter == 'E' {
			s = strings.ToUpper(s)
		}
		return s, true
	case 'P', 'p':
		if prec < 0 {
			prec = 2
		}
		return p.Sprintf("%."+strconv.Itoa(prec)+"f", f*100) + " %", true
	case 'G', 'g':
		if prec == 0 {
			prec = -1
		}
		s := strconv.FormatFloat(f, 'g', prec, 64)
		if letter == 'G' {
			s = strings.ToUpper(s)
		}
		return s, true
	}
	return "", false
}

// formatCustom handles patterns built from 0 # , . and an optional trailing
// %: '0' is a required digit, '#' an optional one, ',' in the integer part
// turns on thousands grouping.
func formatCustom(f float64, spec string) (string, bool) {
	percent := false
	pattern := spec
	if strings.HasSuffix(pattern, "%") {
		percent = true
		pattern = pattern[:len(pattern)-1]
	}
	if pattern == "" {
		return "", false
	}
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '0', '#', ',', '.':
		default:
			return "", false
		}
	}

	intPat, fracPat, _ := strings.Cut(pattern, ".")
	if strings.Contains(fracPat, ".") {
		return "", false
	}
	minInt := strings.Count(intPat, "0")
	grouping := strings.Contains(intPat, ",")
	maxFrac := strings.Count(fracPat, "0") + strings.Count(fracPat, "#")
	minFrac := 0
	for i := 0; i < len(fracPat) && fracPat[i] == '0'; i++ {
		minFrac++
	}

	if percent {
		f *= 100
	}
	neg := f < 0
	s := strconv.FormatFloat(math.Abs(f), 'f', maxFrac, 64)
	intDigits, fracDigits, _ := strings.Cut(s, ".")
	for len(fracDigits) > minFrac && fracDigits[len(fracDigits)-1] == '0' {
		fracDigits = fracDigits[:len(fracDigits)-1]
	}
	if intDigits == "0" && minInt == 0 {
		intDigits = ""
	}
	intDigits = zeroPad(intDigits, minInt)
	if grouping {
		intDigits = groupThousands(intDigits)
	}

	var b strings.Builder
	if neg && strings.Trim(intDigits+fracDigits, "0,") != "" {
		b.WriteByte('-')
	}
	b.WriteString(intDigits)
	if fracDigits != "" {
		b.WriteByte('.')
		b.WriteString(fracDigits)
	}
	if b.Len() == 0 {
		b.WriteByte('0')
	}
	if percent {
		b.WriteByte('%')
	}
	return b.String(), true
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func zeroPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func absInt(i int64) uint64 {
	if i < 0 {
		return uint64(-(i + 1)) + 1
	}
	return uint64(i)
}

// asFloat reports whether arg is a Go numeric type and returns it as float64.
func asFloat(arg any) (float64, bool) {
	switch v := arg.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

// asInt reports whether arg is an integer type and returns it as int64.
// uint64 values above math.MaxInt64 are rejected.
func asInt(arg any) (int64, bool) {
	switch v := arg.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	}
	return 0, false
}
