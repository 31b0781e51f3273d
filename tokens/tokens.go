// Package tokens builds the design-token reference consulted during
// enrichment. The reference is constructed once per export run from the
// externally supplied palette and typography system and is read-only
// afterwards, which makes it safe to share across the pipeline.
package tokens

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ColorPalette groups the site's colors into semantic buckets, keyed by
// token name within each bucket.
type ColorPalette struct {
	Primary   map[string]string `json:"primary,omitempty"`
	Secondary map[string]string `json:"secondary,omitempty"`
	Accent    map[string]string `json:"accent,omitempty"`
	Neutral   map[string]string `json:"neutral,omitempty"`
	Semantic  map[string]string `json:"semantic,omitempty"`
}

// TypographySystem is the site's font families and named type scale
// (pixel sizes keyed by scale name).
type TypographySystem struct {
	FontFamilies map[string]string  `json:"fontFamilies,omitempty"`
	Scale        map[string]float64 `json:"scale,omitempty"`
}

// Reference resolves concrete style values to token names. All three maps
// are populated at construction and never mutated afterwards.
type Reference struct {
	colors map[string]string  // normalized hex -> token name
	fonts  map[string]string  // lowercased family -> token name
	sizes  map[float64]string // pixel size -> token name
}

// Load decodes an externally supplied palette and typography document.
func Load(r io.Reader) (ColorPalette, TypographySystem, error) {
	var doc struct {
		Colors     ColorPalette     `json:"colors"`
		Typography TypographySystem `json:"typography"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return ColorPalette{}, TypographySystem{}, fmt.Errorf("unable to decode design tokens: %w", err)
	}
	return doc.Colors, doc.Typography, nil
}

// NewReference builds the per-run token reference.
func NewReference(palette ColorPalette, typography TypographySystem) *Reference {
	ref := &Reference{
		colors: make(map[string]string),
		fonts:  make(map[string]string),
		sizes:  make(map[float64]string),
	}
	for bucket, colors := range map[string]map[string]string{
		"primary":   palette.Primary,
		"secondary": palette.Secondary,
		"accent":    palette.Accent,
		"neutral":   palette.Neutral,
		"semantic":  palette.Semantic,
	} {
		for name, value := range colors {
			if hex, ok := NormalizeHex(value); ok {
				ref.colors[hex] = bucket + "/" + name
			}
		}
	}
	for name, family := range typography.FontFamilies {
		ref.fonts[strings.ToLower(primaryFamily(family))] = name
	}
	for name, size := range typography.Scale {
		ref.sizes[size] = name
	}
	return ref
}

// Color looks up a color value (hex or rgb/rgba form) and returns its token
// name.
func (r *Reference) Color(value string) (string, bool) {
	hex, ok := NormalizeHex(value)
	if !ok {
		return "", false
	}
	name, ok := r.colors[hex]
	return name, ok
}

// Font looks up the primary family of a font-family value.
func (r *Reference) Font(value string) (string, bool) {
	name, ok := r.fonts[strings.ToLower(primaryFamily(value))]
	return name, ok
}

// Size looks up a literal pixel size in the type scale.
func (r *Reference) Size(px float64) (string, bool) {
	name, ok := r.sizes[px]
	return name, ok
}

// Colors returns the token name -> hex registry for page settings.
func (r *Reference) Colors() map[string]string {
	out := make(map[string]string, len(r.colors))
	for hex, name := range r.colors {
		out[name] = hex
	}
	return out
}

// Fonts returns the token name -> family registry for page settings.
func (r *Reference) Fonts() map[string]string {
	out := make(map[string]string, len(r.fonts))
	for family, name := range r.fonts {
		out[name] = family
	}
	return out
}

// primaryFamily returns the first family of a comma-separated font stack,
// unquoted and trimmed.
func primaryFamily(stack string) string {
	first, _, _ := strings.Cut(stack, ",")
	return strings.Trim(strings.TrimSpace(first), `'"`)
}

// NormalizeHex converts supported color forms (#abc, #aabbcc, rgb(), rgba())
// to lowercase six-digit hex. Unsupported forms report false.
func NormalizeHex(value string) (string, bool) {
	v := strings.TrimSpace(strings.ToLower(value))
	switch {
	case strings.HasPrefix(v, "#"):
		hex := v[1:]
		switch len(hex) {
		case 3:
			var b strings.Builder
			for _, c := range hex {
				b.WriteRune(c)
				b.WriteRune(c)
			}
			hex = b.String()
		case 6:
		default:
			return "", false
		}
		for _, c := range hex {
			if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
				return "", false
			}
		}
		return "#" + hex, true

	case strings.HasPrefix(v, "rgb(") || strings.HasPrefix(v, "rgba("):
		open := strings.IndexByte(v, '(')
		end := strings.IndexByte(v, ')')
		if open < 0 || end < open {
			return "", false
		}
		parts := strings.Split(v[open+1:end], ",")
		if len(parts) < 3 {
			return "", false
		}
		rgb := make([]int, 3)
		for i := 0; i < 3; i++ {
			n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
			if err != nil || n < 0 || n > 255 {
				return "", false
			}
			rgb[i] = n
		}
		return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2]), true
	}
	return "", false
}
