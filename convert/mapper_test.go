package convert

import (
	"testing"

	"w2b/component"
	"w2b/cssval"
)

func newTestMapper() *Mapper {
	return NewMapper(NewIDGen(), nil, nil)
}

func TestMapButtonEndToEnd(t *testing.T) {
	c := &component.RecognizedComponent{
		Type: component.TypeButton,
		Tag:  "a",
		Text: "Sign Up",
		Props: map[string]string{
			"href":    "/signup",
			"padding": "10px 20px",
		},
	}

	node := newTestMapper().Map(c)
	if node.WidgetType != "button" {
		t.Fatalf("expected button widget, got %q", node.WidgetType)
	}
	if v, _ := node.Get("text"); v != "Sign Up" {
		t.Errorf("expected text Sign Up, got %v", v)
	}
	if v, _ := node.Get("link.url"); v != "/signup" {
		t.Errorf("expected link url /signup, got %v", v)
	}

	pad, ok := node.Get("padding")
	if !ok {
		t.Fatalf("expected padding setting")
	}
	set, ok := pad.(*cssval.DimensionSet)
	if !ok {
		t.Fatalf("expected *cssval.DimensionSet, got %T", pad)
	}
	if set.Top.Value != 10 || set.Bottom.Value != 10 {
		t.Errorf("expected top/bottom 10, got %v/%v", set.Top.Value, set.Bottom.Value)
	}
	if set.Left.Value != 20 || set.Right.Value != 20 {
		t.Errorf("expected left/right 20, got %v/%v", set.Left.Value, set.Right.Value)
	}
}

func TestMapUnknownNeverFails(t *testing.T) {
	c := &component.RecognizedComponent{
		Type:    component.TypeUnknown,
		Tag:     "marquee",
		ID:      "legacy",
		Classes: []string{"old"},
		Text:    "hello",
	}
	node := newTestMapper().Map(c)
	if node == nil {
		t.Fatalf("mapper must be total")
	}
	if node.WidgetType != "html" {
		t.Errorf("expected html passthrough, got %q", node.WidgetType)
	}
	html, _ := node.Get("html")
	if html != `<marquee id="legacy" class="old">hello</marquee>` {
		t.Errorf("unexpected passthrough markup: %v", html)
	}
}

func TestMapHeadingLevel(t *testing.T) {
	tests := []struct {
		tag      string
		expected string
	}{
		{"h1", "h1"},
		{"h4", "h4"},
		{"div", "h2"},
		{"", "h2"},
		{"h7", "h2"},
	}

	for _, tt := range tests {
		t.Run("tag "+tt.tag, func(t *testing.T) {
			node := newTestMapper().Map(&component.RecognizedComponent{
				Type: component.TypeHeading,
				Tag:  tt.tag,
				Text: "Title",
			})
			if v, _ := node.Get("header_size"); v != tt.expected {
				t.Errorf("expected %s, got %v", tt.expected, v)
			}
		})
	}
}

func TestMapImageBackgroundFallback(t *testing.T) {
	node := newTestMapper().Map(&component.RecognizedComponent{
		Type:  component.TypeImage,
		Tag:   "div",
		Style: component.StyleSnapshot{"backgroundImage": `url("https://cdn.example.com/hero.jpg")`},
	})
	if v, _ := node.Get("image.url"); v != "https://cdn.example.com/hero.jpg" {
		t.Errorf("expected background image url, got %v", v)
	}
}

func TestMapIDsUniquePerRun(t *testing.T) {
	m := newTestMapper()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		node := m.Map(&component.RecognizedComponent{Type: component.TypeText, Text: "x"})
		if seen[node.ID] {
			t.Fatalf("duplicate id %q", node.ID)
		}
		seen[node.ID] = true
	}
}

func TestMapGenericSkipsAbsentProperties(t *testing.T) {
	node := newTestMapper().Map(&component.RecognizedComponent{
		Type: component.TypeText,
		Text: "body",
	})
	if _, ok := node.Get("text_color"); ok {
		t.Errorf("absent property must not produce a setting")
	}
}

func TestMapStyleFallback(t *testing.T) {
	node := newTestMapper().Map(&component.RecognizedComponent{
		Type:  component.TypeText,
		Style: component.StyleSnapshot{"color": "#333333", "textAlign": "center"},
	})
	if v, _ := node.Get("text_color"); v != "#333333" {
		t.Errorf("expected style fallback color, got %v", v)
	}
	if v, _ := node.Get("align"); v != "center" {
		t.Errorf("expected align center, got %v", v)
	}
}

func TestSetDotNotation(t *testing.T) {
	n := &WidgetNode{}
	n.Set("link.url", "/a")
	n.Set("link.is_external", true)
	n.Set("plain", 1)

	if v, _ := n.Get("link.url"); v != "/a" {
		t.Errorf("expected /a, got %v", v)
	}
	if v, _ := n.Get("link.is_external"); v != true {
		t.Errorf("expected true, got %v", v)
	}
	if _, ok := n.Get("link.missing"); ok {
		t.Errorf("missing nested key should report absence")
	}
}
