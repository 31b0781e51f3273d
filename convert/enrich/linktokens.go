package enrich

import (
	"strings"

	"w2b/component"
	"w2b/cssval"
	"w2b/tokens"
)

// TokenRef records that a style property's value matched a design token.
type TokenRef struct {
	Kind  string `json:"kind"` // "color", "font" or "size"
	Token string `json:"token"`
}

// colorProperties are the style properties whose values are checked against
// the color token registry.
var colorProperties = []string{"color", "backgroundColor", "borderColor"}

// LinkTokens resolves a component's concrete style values against the
// per-run design-token reference. Only found matches are recorded, keyed by
// CSS property name.
func LinkTokens(c *component.RecognizedComponent, ref *tokens.Reference) map[string]TokenRef {
	if ref == nil {
		return nil
	}
	out := make(map[string]TokenRef)

	for _, prop := range colorProperties {
		v := c.Style.Get(prop)
		if v == "" {
			continue
		}
		if name, ok := ref.Color(v); ok {
			out[prop] = TokenRef{Kind: "color", Token: name}
		}
	}

	if family := c.Style.Get("fontFamily"); family != "" {
		if name, ok := ref.Font(family); ok {
			out["fontFamily"] = TokenRef{Kind: "font", Token: name}
		}
	}

	if size := c.Style.Get("fontSize"); size != "" {
		if d, ok := cssval.ParseDimension(size); ok && d.Unit == cssval.UnitPx {
			if name, ok := ref.Size(d.Value); ok {
				out["fontSize"] = TokenRef{Kind: "size", Token: name}
			}
		}
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// DynamicRef flags template-engine or shortcode content that should become
// a dynamic custom-field reference instead of literal text.
type DynamicRef struct {
	Kind     string // "custom-field"
	Source   string
	Fallback string
}

// DetectDynamic flags template placeholders ({{ }}, {% %}), bracket-style
// shortcodes and the explicit data-dynamic attribute. The raw source text is
// carried as both source and fallback.
func DetectDynamic(c *component.RecognizedComponent) *DynamicRef {
	text := strings.TrimSpace(c.Text)
	dynamic := strings.Contains(text, "{{") || strings.Contains(text, "{%") || isShortcode(text)
	if !dynamic {
		if _, ok := c.Attributes["data-dynamic"]; ok {
			dynamic = true
		}
	}
	if !dynamic {
		return nil
	}
	return &DynamicRef{Kind: "custom-field", Source: text, Fallback: text}
}

// isShortcode matches bracket-style shortcodes like [gallery id="1"].
func isShortcode(text string) bool {
	return len(text) > 2 && strings.HasPrefix(text, "[") && strings.Contains(text, "]")
}
