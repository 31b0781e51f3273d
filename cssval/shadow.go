package cssval

import "strings"

// DefaultShadowColor is used when a shadow omits its color.
const DefaultShadowColor = "rgba(0,0,0,0.5)"

// ParsedBoxShadow is one box-shadow layer.
type ParsedBoxShadow struct {
	H        ParsedDimension
	V        ParsedDimension
	Blur     ParsedDimension
	Spread   ParsedDimension
	Color    string
	Inset    bool
	Original string
}

// ParsedTextShadow is one text-shadow layer.
type ParsedTextShadow struct {
	H        ParsedDimension
	V        ParsedDimension
	Blur     ParsedDimension
	Color    string
	Original string
}

// SplitTopLevel splits s on sep occurrences outside parentheses, so commas
// inside color functions like rgba(...) do not break the list.
func SplitTopLevel(s string, sep byte) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// splitShadowTokens splits one shadow declaration on whitespace outside
// parentheses, keeping "rgba(0, 0, 0, 0.5)" a single token.
func splitShadowTokens(s string) []string {
	var tokens []string
	depth, start := 0, -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
		case (c == ' ' || c == '\t') && depth == 0:
			if start >= 0 {
				tokens = append(tokens, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, s[start:])
	}
	return tokens
}

// ParseBoxShadow parses a single shadow layer using the positional grammar
// [inset] h v [blur] [spread] [color]. Blur and spread default to zero and
// the color to a semi-transparent black.
func ParseBoxShadow(raw string) (*ParsedBoxShadow, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "none") {
		return nil, false
	}

	shadow := ParsedBoxShadow{Original: s, Color: DefaultShadowColor}
	var dims []ParsedDimension
	var colorParts []string

	for _, tok := range splitShadowTokens(s) {
		if strings.EqualFold(tok, "inset") {
			shadow.Inset = true
			continue
		}
		if d, ok := ParseDimension(tok); ok && !d.Unit.IsKeyword() && len(dims) < 4 {
			dims = append(dims, *d)
			continue
		}
		colorParts = append(colorParts, tok)
	}

	if len(dims) < 2 {
		return nil, false
	}
	zero := ParsedDimension{Unit: UnitPx, Original: "0px"}
	shadow.H, shadow.V = dims[0], dims[1]
	shadow.Blur, shadow.Spread = zero, zero
	if len(dims) > 2 {
		shadow.Blur = dims[2]
	}
	if len(dims) > 3 {
		shadow.Spread = dims[3]
	}
	if len(colorParts) > 0 {
		shadow.Color = strings.Join(colorParts, " ")
	}
	return &shadow, true
}

// ParseBoxShadows splits a multi-shadow value on top-level commas and parses
// each layer. Layers that fail to parse are dropped.
func ParseBoxShadows(raw string) []ParsedBoxShadow {
	var shadows []ParsedBoxShadow
	for _, part := range SplitTopLevel(raw, ',') {
		if sh, ok := ParseBoxShadow(part); ok {
			shadows = append(shadows, *sh)
		}
	}
	return shadows
}

// ParseTextShadow parses one text-shadow layer: h v [blur] [color].
func ParseTextShadow(raw string) (*ParsedTextShadow, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "none") {
		return nil, false
	}

	shadow := ParsedTextShadow{Original: s, Color: DefaultShadowColor}
	var dims []ParsedDimension
	var colorParts []string

	for _, tok := range splitShadowTokens(s) {
		if d, ok := ParseDimension(tok); ok && !d.Unit.IsKeyword() && len(dims) < 3 {
			dims = append(dims, *d)
			continue
		}
		colorParts = append(colorParts, tok)
	}

	if len(dims) < 2 {
		return nil, false
	}
	shadow.H, shadow.V = dims[0], dims[1]
	shadow.Blur = ParsedDimension{Unit: UnitPx, Original: "0px"}
	if len(dims) > 2 {
		shadow.Blur = dims[2]
	}
	if len(colorParts) > 0 {
		shadow.Color = strings.Join(colorParts, " ")
	}
	return &shadow, true
}

// ParseTextShadows splits and parses a multi-layer text-shadow value.
func ParseTextShadows(raw string) []ParsedTextShadow {
	var shadows []ParsedTextShadow
	for _, part := range SplitTopLevel(raw, ',') {
		if sh, ok := ParseTextShadow(part); ok {
			shadows = append(shadows, *sh)
		}
	}
	return shadows
}
