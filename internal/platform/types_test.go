package platform

import "testing"

func TestParseWindowStyle_Valid(t *testing.T) {
	tests := []struct {
		in   string
		want WindowStyle
	}{
		{"", WindowNormal},
		{"normal", WindowNormal},
		{"Normal", WindowNormal},
		{"minimized", WindowMinimized},
		{"MAXIMIZED", WindowMaximized},
		{"hidden", WindowHidden},
	}
	for _, tt := range tests {
		got, err := ParseWindowStyle(tt.in)
		if err != nil {
			t.Errorf("ParseWindowStyle(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseWindowStyle(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseWindowStyle_Invalid(t *testing.T) {
	if _, err := ParseWindowStyle("fullscreen"); err == nil {
		t.Error("ParseWindowStyle(\"fullscreen\") should fail")
	}
}

func TestWindowStyle_String_RoundTrip(t *testing.T) {
	for _, style := range []WindowStyle{WindowNormal, WindowMinimized, WindowMaximized, WindowHidden} {
		parsed, err := ParseWindowStyle(style.String())
		if err != nil {
			t.Fatalf("ParseWindowStyle(%q) error: %v", style.String(), err)
		}
		if parsed != style {
			t.Errorf("round trip %v → %q → %v", style, style.String(), parsed)
		}
	}
}
