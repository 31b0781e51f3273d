package cssval

import (
	"reflect"
	"testing"
)

func TestSplitTopLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"plain", "a,b,c", []string{"a", "b", "c"}},
		{"comma in parens", "rgba(0,0,0,0.5),red", []string{"rgba(0,0,0,0.5)", "red"}},
		{"nested parens", "calc(min(1,2),3),x", []string{"calc(min(1,2),3)", "x"}},
		{"no separator", "abc", []string{"abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitTopLevel(tt.input, ','); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestParseBoxShadows(t *testing.T) {
	shadows := ParseBoxShadows("0 0 5px rgba(0,0,0,0.5), inset 1px 2px 3px 4px red")
	if len(shadows) != 2 {
		t.Fatalf("expected 2 shadows, got %d", len(shadows))
	}

	first := shadows[0]
	if first.Inset {
		t.Errorf("first shadow should not be inset")
	}
	if first.Blur.Value != 5 || first.Blur.Unit != UnitPx {
		t.Errorf("expected blur 5px, got %v%s", first.Blur.Value, first.Blur.Unit)
	}
	if first.Spread.Value != 0 {
		t.Errorf("expected spread 0, got %v", first.Spread.Value)
	}
	if first.Color != "rgba(0,0,0,0.5)" {
		t.Errorf("expected rgba color, got %q", first.Color)
	}

	second := shadows[1]
	if !second.Inset {
		t.Errorf("second shadow should be inset")
	}
	if second.Spread.Value != 4 {
		t.Errorf("expected spread 4, got %v", second.Spread.Value)
	}
	if second.Color != "red" {
		t.Errorf("expected color red, got %q", second.Color)
	}
}

func TestParseBoxShadow(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"minimal", "1px 2px", true},
		{"with blur", "1px 2px 3px", true},
		{"spaced rgba color", "0 0 4px rgba(10, 20, 30, 0.4)", true},
		{"none", "none", false},
		{"empty", "", false},
		{"single dimension", "5px", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh, ok := ParseBoxShadow(tt.input)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got ok=%v", tt.ok, ok)
			}
			if ok && sh.Original == "" {
				t.Errorf("expected original to be preserved")
			}
		})
	}

	t.Run("default color", func(t *testing.T) {
		sh, ok := ParseBoxShadow("1px 2px")
		if !ok {
			t.Fatalf("expected parse to succeed")
		}
		if sh.Color != DefaultShadowColor {
			t.Errorf("expected default color, got %q", sh.Color)
		}
	})
}

func TestParseTextShadows(t *testing.T) {
	shadows := ParseTextShadows("1px 1px 2px black, 0 0 3px rgba(255,0,0,0.8)")
	if len(shadows) != 2 {
		t.Fatalf("expected 2 shadows, got %d", len(shadows))
	}
	if shadows[0].Color != "black" {
		t.Errorf("expected black, got %q", shadows[0].Color)
	}
	if shadows[0].Blur.Value != 2 {
		t.Errorf("expected blur 2, got %v", shadows[0].Blur.Value)
	}
	if shadows[1].Color != "rgba(255,0,0,0.8)" {
		t.Errorf("expected rgba color, got %q", shadows[1].Color)
	}
}
