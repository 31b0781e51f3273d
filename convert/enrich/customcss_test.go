package enrich

import (
	"strings"
	"testing"

	"w2b/component"
)

func TestKebabCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"backgroundColor", "background-color"},
		{"borderTopLeftRadius", "border-top-left-radius"},
		{"color", "color"},
		{"fontSize", "font-size"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := KebabCase(tt.input); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestSelector(t *testing.T) {
	tests := []struct {
		name     string
		c        *component.RecognizedComponent
		expected string
	}{
		{"id preferred", &component.RecognizedComponent{ID: "hero", Classes: []string{"big"}}, "#hero"},
		{"first class", &component.RecognizedComponent{Classes: []string{"Main Banner", "alt"}}, ".main-banner"},
		{"tag fallback", &component.RecognizedComponent{Tag: "section"}, ".w2b-section"},
		{"empty", &component.RecognizedComponent{}, ".w2b-div"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Selector(tt.c); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestGenerateCSS(t *testing.T) {
	c := &component.RecognizedComponent{
		ID: "hero",
		Style: component.StyleSnapshot{
			"backgroundColor": "#112233",
			"paddingTop":      "40px",
		},
		States: &component.StateStyles{
			Normal: component.StyleSnapshot{"backgroundColor": "#112233"},
			Hover:  component.StyleSnapshot{"backgroundColor": "#334455"},
		},
		Pseudo: &component.PseudoStyles{
			Before: component.StyleSnapshot{"content": `""`, "display": "block"},
		},
		Breakpoints: map[component.Breakpoint]component.StyleSnapshot{
			component.BreakpointMobile: {"paddingTop": "16px"},
			component.BreakpointTablet: {"paddingTop": "24px"},
		},
	}

	css := GenerateCSS(c)

	for _, want := range []string{
		"#hero {",
		"  background-color: #112233;",
		"  padding-top: 40px;",
		"#hero:hover {",
		"  background-color: #334455;",
		"#hero::before {",
		"@media (max-width: 767px) {",
		"@media (min-width: 768px) and (max-width: 1023px) {",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("missing %q in generated css:\n%s", want, css)
		}
	}

	if strings.Contains(css, "::after") {
		t.Errorf("no after styles were given, but ::after block emitted")
	}

	// deterministic output
	if again := GenerateCSS(c); again != css {
		t.Errorf("generation is not deterministic")
	}
}

func TestGenerateCSSEmpty(t *testing.T) {
	if css := GenerateCSS(&component.RecognizedComponent{ID: "x"}); css != "" {
		t.Errorf("expected empty output, got %q", css)
	}
}
