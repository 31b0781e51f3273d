package enrich

import (
	"testing"

	"w2b/component"
)

func TestDetectMotion(t *testing.T) {
	t.Run("no signals", func(t *testing.T) {
		if got := DetectMotion(&component.RecognizedComponent{}); got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})

	t.Run("parallax from background attachment", func(t *testing.T) {
		c := &component.RecognizedComponent{
			Style: component.StyleSnapshot{"backgroundAttachment": "fixed"},
		}
		got := DetectMotion(c)
		if got == nil || !got.Parallax {
			t.Errorf("expected parallax, got %+v", got)
		}
	})

	t.Run("sticky with offsets", func(t *testing.T) {
		c := &component.RecognizedComponent{
			Style: component.StyleSnapshot{"position": "sticky", "top": "20px"},
		}
		got := DetectMotion(c)
		if got == nil || got.Sticky == nil {
			t.Fatalf("expected sticky, got %+v", got)
		}
		if got.Sticky.Top == nil || got.Sticky.Top.Value != 20 {
			t.Errorf("expected top offset 20px, got %+v", got.Sticky.Top)
		}
		if got.Sticky.Bottom != nil {
			t.Errorf("expected no bottom offset")
		}
	})

	t.Run("fixed position is sticky too", func(t *testing.T) {
		c := &component.RecognizedComponent{
			Style: component.StyleSnapshot{"position": "fixed"},
		}
		if got := DetectMotion(c); got == nil || got.Sticky == nil {
			t.Errorf("expected sticky effect, got %+v", got)
		}
	})

	t.Run("scroll library class", func(t *testing.T) {
		c := &component.RecognizedComponent{Classes: []string{"card", "aos-init"}}
		got := DetectMotion(c)
		if got == nil || !got.ScrollFadeIn {
			t.Errorf("expected scroll fade-in, got %+v", got)
		}
	})

	t.Run("signals combine", func(t *testing.T) {
		c := &component.RecognizedComponent{
			Style:    component.StyleSnapshot{"backgroundAttachment": "fixed", "position": "sticky"},
			Behavior: &component.Behavior{ScrollClasses: []string{"wow"}},
		}
		got := DetectMotion(c)
		if got == nil || !got.Parallax || got.Sticky == nil || !got.ScrollFadeIn {
			t.Errorf("expected all three signals, got %+v", got)
		}
	})
}
