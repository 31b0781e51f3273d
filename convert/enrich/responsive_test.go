package enrich

import (
	"testing"

	"w2b/component"
	"w2b/cssval"
)

func TestResponsive(t *testing.T) {
	t.Run("no breakpoints yields nil", func(t *testing.T) {
		if got := Responsive(&component.RecognizedComponent{}); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})

	t.Run("only present breakpoints projected", func(t *testing.T) {
		c := &component.RecognizedComponent{
			Breakpoints: map[component.Breakpoint]component.StyleSnapshot{
				component.BreakpointMobile: {
					"fontSize":  "14px",
					"textAlign": "center",
					"margin":    "0 auto",
					"color":     "#fff", // not in the allow-list
				},
			},
		}
		got := Responsive(c)
		if len(got) != 1 {
			t.Fatalf("expected 1 breakpoint, got %d", len(got))
		}
		mobile := got[component.BreakpointMobile]
		if _, ok := got[component.BreakpointTablet]; ok {
			t.Errorf("absent breakpoint must not be synthesized")
		}
		if _, ok := mobile["color"]; ok {
			t.Errorf("non-allow-listed property must be dropped")
		}
		if mobile["textAlign"] != "center" {
			t.Errorf("expected textAlign center, got %v", mobile["textAlign"])
		}

		fs, ok := mobile["fontSize"].(*cssval.ParsedDimension)
		if !ok || fs.Value != 14 {
			t.Errorf("expected parsed 14px fontSize, got %v", mobile["fontSize"])
		}

		set, ok := mobile["margin"].(*cssval.DimensionSet)
		if !ok {
			// "0 auto" parses as a shorthand of zero and auto
			t.Fatalf("expected parsed margin shorthand, got %T", mobile["margin"])
		}
		if set.Top.Value != 0 || set.Left.Unit != cssval.UnitAuto {
			t.Errorf("unexpected margin expansion: %+v", set)
		}
	})

	t.Run("unparsable dimension passes through raw", func(t *testing.T) {
		c := &component.RecognizedComponent{
			Breakpoints: map[component.Breakpoint]component.StyleSnapshot{
				component.BreakpointTablet: {"width": "calc(100% - 20px)"},
			},
		}
		got := Responsive(c)
		if got[component.BreakpointTablet]["width"] != "calc(100% - 20px)" {
			t.Errorf("expected raw passthrough, got %v", got[component.BreakpointTablet]["width"])
		}
	})
}
