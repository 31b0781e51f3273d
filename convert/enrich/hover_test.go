package enrich

import (
	"testing"

	"w2b/component"
)

func TestHoverDiff(t *testing.T) {
	t.Run("identical states yield nil", func(t *testing.T) {
		c := &component.RecognizedComponent{
			States: &component.StateStyles{
				Normal: component.StyleSnapshot{"color": "#000", "opacity": "1"},
				Hover:  component.StyleSnapshot{"color": "#000", "opacity": "1"},
			},
		}
		if diff := HoverDiff(c); diff != nil {
			t.Errorf("expected nil, got %+v", diff)
		}
	})

	t.Run("only differing properties emitted", func(t *testing.T) {
		c := &component.RecognizedComponent{
			States: &component.StateStyles{
				Normal: component.StyleSnapshot{"color": "#000", "backgroundColor": "#fff"},
				Hover:  component.StyleSnapshot{"color": "#f00", "backgroundColor": "#fff"},
			},
		}
		diff := HoverDiff(c)
		if diff == nil {
			t.Fatalf("expected a diff")
		}
		if len(diff.Changes) != 1 || diff.Changes["color"] != "#f00" {
			t.Errorf("expected only color change, got %v", diff.Changes)
		}
	})

	t.Run("untracked properties ignored", func(t *testing.T) {
		c := &component.RecognizedComponent{
			States: &component.StateStyles{
				Normal: component.StyleSnapshot{"letterSpacing": "0"},
				Hover:  component.StyleSnapshot{"letterSpacing": "2px"},
			},
		}
		if diff := HoverDiff(c); diff != nil {
			t.Errorf("untracked property should not produce a diff, got %+v", diff)
		}
	})

	t.Run("base style used when normal snapshot missing", func(t *testing.T) {
		c := &component.RecognizedComponent{
			Style: component.StyleSnapshot{"color": "#000"},
			States: &component.StateStyles{
				Hover: component.StyleSnapshot{"color": "#f00"},
			},
		}
		diff := HoverDiff(c)
		if diff == nil || diff.Changes["color"] != "#f00" {
			t.Errorf("expected color change, got %+v", diff)
		}
	})

	t.Run("no hover snapshot", func(t *testing.T) {
		if diff := HoverDiff(&component.RecognizedComponent{}); diff != nil {
			t.Errorf("expected nil, got %+v", diff)
		}
	})
}

func TestParseTransition(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Transition
	}{
		{"full", "color 0.5s ease-in 0.1s", Transition{Property: "color", Duration: "0.5s", Timing: "ease-in", Delay: "0.1s"}},
		{"no delay", "transform 1s linear", Transition{Property: "transform", Duration: "1s", Timing: "linear"}},
		{"short defaults", "all", Transition{Property: "all", Duration: "0.3s", Timing: "ease"}},
		{"empty defaults", "", Transition{Property: "all", Duration: "0.3s", Timing: "ease"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseTransition(tt.input); got != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}
