package logfilter

import (
	"testing"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected Level
		ok       bool
	}{
		{"off", Off, true},
		{"error", Error, true},
		{"warn", Warn, true},
		{"info", Info, true},
		{"debug", Debug, true},
		{"trace", Trace, true},
		{"OFF", Off, true},
		{"ERROR", Error, true},
		{"Warn", Warn, true},
		{"InFo", Info, true},
		{"DEBUG", Debug, true},
		{"TRACE", Trace, true},
		{"", Off, false},
		{"warning", Off, false},
		{"critical", Off, false},
		{" info", Off, false},
		{"info ", Off, false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			level, ok := ParseLevel(tc.input)
			if ok != tc.ok {
				t.Fatalf("ParseLevel(%q) ok = %v, want %v", tc.input, ok, tc.ok)
			}
			if ok && level != tc.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tc.input, level, tc.expected)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	levels := []Level{Off, Error, Warn, Info, Debug, Trace}

	for _, level := range levels {
		parsed, ok := ParseLevel(level.String())
		if !ok {
			t.Errorf("Expected %v.String() to round-trip, got %q", level, level.String())
		}
		if parsed != level {
			t.Errorf("Expected %v after round-trip, got %v", level, parsed)
		}
	}

	if Level(42).String() != "unknown" {
		t.Errorf("Expected out-of-range level to stringify as unknown, got %q", Level(42).String())
	}
}

func TestLevelOrdering(t *testing.T) {
	ordered := []Level{Off, Error, Warn, Info, Debug, Trace}

	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("Expected %v < %v", ordered[i-1], ordered[i])
		}
	}
}

func TestLevelEnables(t *testing.T) {
	testCases := []struct {
		threshold Level
		requested Level
		expected  bool
	}{
		{Off, Error, false},
		{Off, Trace, false},
		{Off, Off, false},
		{Error, Error, true},
		{Error, Warn, false},
		{Info, Error, true},
		{Info, Warn, true},
		{Info, Info, true},
		{Info, Debug, false},
		{Info, Trace, false},
		{Trace, Error, true},
		{Trace, Warn, true},
		{Trace, Info, true},
		{Trace, Debug, true},
		{Trace, Trace, true},
	}

	for _, tc := range testCases {
		if got := tc.threshold.Enables(tc.requested); got != tc.expected {
			t.Errorf("Expected %v.Enables(%v) to be %v, got %v", tc.threshold, tc.requested, tc.expected, got)
		}
	}
}

func TestLevelTextRoundTrip(t *testing.T) {
	for _, level := range []Level{Off, Error, Warn, Info, Debug, Trace} {
		text, err := level.MarshalText()
		if err != nil {
			t.Fatalf("Unexpected error marshalling %v: %v", level, err)
		}

		var parsed Level
		if err := parsed.UnmarshalText(text); err != nil {
			t.Fatalf("Unexpected error unmarshalling %q: %v", text, err)
		}

		if parsed != level {
			t.Errorf("Expected %v after text round-trip, got %v", level, parsed)
		}
	}

	var level Level
	if err := level.UnmarshalText([]byte("verbose")); err == nil {
		t.Error("Expected error for unknown level name")
	}
}
