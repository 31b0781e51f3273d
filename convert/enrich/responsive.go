// Package enrich adds responsive, interactive, animation, design-token and
// custom-CSS information to mapped widgets. Every function here is pure:
// missing signals produce absence, never errors.
package enrich

import (
	"w2b/component"
	"w2b/cssval"
)

// responsiveProperties is the fixed allow-list of layout, dimension,
// spacing and typography properties projected per breakpoint.
var responsiveProperties = []string{
	"display",
	"flexDirection",
	"justifyContent",
	"alignItems",
	"width",
	"height",
	"minWidth",
	"maxWidth",
	"margin",
	"padding",
	"fontSize",
	"lineHeight",
	"textAlign",
}

// dimensionValued marks allow-listed properties that should be parsed as
// dimensions rather than passed through.
var dimensionValued = map[string]bool{
	"width":    true,
	"height":   true,
	"minWidth": true,
	"maxWidth": true,
	"fontSize": true,
}

// Responsive projects the allow-listed properties of each breakpoint
// snapshot into a per-breakpoint settings mapping. Breakpoints absent from
// the component are omitted; nothing is synthesized.
func Responsive(c *component.RecognizedComponent) map[component.Breakpoint]map[string]any {
	if len(c.Breakpoints) == 0 {
		return nil
	}
	out := make(map[component.Breakpoint]map[string]any)
	for _, bp := range component.Breakpoints {
		snap, ok := c.Breakpoints[bp]
		if !ok {
			continue
		}
		settings := make(map[string]any)
		for _, prop := range responsiveProperties {
			v := snap.Get(prop)
			if v == "" {
				continue
			}
			switch {
			case dimensionValued[prop]:
				if d, ok := cssval.ParseDimension(v); ok {
					settings[prop] = d
					continue
				}
				settings[prop] = v
			case prop == "margin" || prop == "padding":
				if set, ok := cssval.ParseShorthand(v); ok {
					settings[prop] = set
					continue
				}
				settings[prop] = v
			default:
				settings[prop] = v
			}
		}
		if len(settings) > 0 {
			out[bp] = settings
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
