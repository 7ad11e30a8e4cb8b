package textbind

import (
	"testing"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestFormatWithSpec(t *testing.T) {
	tests := []struct {
		arg  any
		spec string
		want string
	}{
		// standard specs
		{3.14159, "F2", "3.14"},
		{3, "F", "3.00"},
		{1234567, "N0", "1,234,567"},
		{42, "D5", "00042"},
		{-42, "D5", "-00042"},
		{42, "D", "42"},
		{255, "X", "FF"},
		{255, "x4", "00ff"},
		{1500.0, "E2", "1.50E+03"},
		{1234.5, "G", "1234.5"},
		{0.25, "P0", "25 %"},

		// custom patterns
		{1234.5, "#,##0.00", "1,234.50"},
		{1234567.0, "#,##0", "1,234,567"},
		{0.5, "0.##", "0.5"},
		{2.0, "0.##", "2"},
		{3, "0.00", "3.00"},
		{7, "000", "007"},
		{0.5, "#.##", ".5"},
		{0, "#", "0"},
		{-0.001, "0.00", "0.00"},
		{-1.5, "0.0", "-1.5"},
		{0.125, "0.0%", "12.5%"},

		// fmt verbs
		{3.14159, "%05.1f", "003.1"},
		{"x", "%q", `"x"`},

		// fallbacks
		{"abc", "F2", "abc"},
		{5, "zz", "5"},
		{5, "F999", "5"},
		{1.5, "D2", "1.5"},
		{5, "", "5"},
	}
	for _, tt := range tests {
		if got := formatWithSpec(tt.arg, tt.spec, englishPrinter); got != tt.want {
			t.Errorf("formatWithSpec(%v, %q) = %q, want %q", tt.arg, tt.spec, got, tt.want)
		}
	}
}

func TestFormatWithSpec_Time(t *testing.T) {
	ts := time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC)
	if got := formatWithSpec(ts, "15:04", englishPrinter); got != "15:04" {
		t.Errorf("got %q, want %q", got, "15:04")
	}
	if got := formatWithSpec(ts, "2006-01-02", englishPrinter); got != "2024-03-09" {
		t.Errorf("got %q, want %q", got, "2024-03-09")
	}
}

func TestFormatWithSpec_Locale(t *testing.T) {
	de := message.NewPrinter(language.German)
	if got := formatWithSpec(1234567, "N0", de); got != "1.234.567" {
		t.Errorf("German N0 = %q, want %q", got, "1.234.567")
	}
}

func TestGroupThousands(t *testing.T) {
	tests := map[string]string{
		"":        "",
		"1":       "1",
		"123":     "123",
		"1234":    "1,234",
		"123456":  "123,456",
		"1234567": "1,234,567",
	}
	for in, want := range tests {
		if got := groupThousands(in); got != want {
			t.Errorf("groupThousands(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAsInt_Bounds(t *testing.T) {
	if _, ok := asInt(uint64(1 << 63)); ok {
		t.Error("asInt should reject uint64 above MaxInt64")
	}
	if v, ok := asInt(uint8(200)); !ok || v != 200 {
		t.Errorf("asInt(uint8(200)) = %d, %v", v, ok)
	}
	if _, ok := asInt(1.0); ok {
		t.Error("asInt should reject floats")
	}
}

func TestNaturalString(t *testing.T) {
	tests := []struct {
		arg  any
		want string
	}{
		{nil, ""},
		{"s", "s"},
		{false, "false"},
		{uint16(9), "9"},
		{float32(0.1), "0.1"},
		{2.50, "2.5"},
		{time.Second, "1s"},
		{[]int{1, 2}, "[1 2]"},
	}
	for _, tt := range tests {
		if got := naturalString(tt.arg); got != tt.want {
			t.Errorf("naturalString(%#v) = %q, want %q", tt.arg, got, tt.want)
		}
	}
}
