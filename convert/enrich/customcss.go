package enrich

import (
	"sort"
	"strings"

	"github.com/gosimple/slug"

	"w2b/component"
)

// Media query bounds for the generated breakpoint blocks.
const (
	mobileMediaQuery = "@media (max-width: 767px)"
	tabletMediaQuery = "@media (min-width: 768px) and (max-width: 1023px)"
)

// Selector derives the CSS selector for a component: the id when present,
// otherwise the first class, slugified. Components with neither get a
// generated class from their tag.
func Selector(c *component.RecognizedComponent) string {
	if c.ID != "" {
		return "#" + slug.Make(c.ID)
	}
	if len(c.Classes) > 0 {
		return "." + slug.Make(c.Classes[0])
	}
	tag := c.Tag
	if tag == "" {
		tag = "div"
	}
	return ".w2b-" + slug.Make(tag)
}

// GenerateCSS emits the custom CSS for one component: a base rule block,
// a :hover block when hover differences exist, ::before/::after blocks when
// pseudo-element styles are present, and media-query blocks for mobile and
// tablet responsive overrides. Returns "" when there is nothing to emit.
func GenerateCSS(c *component.RecognizedComponent) string {
	selector := Selector(c)
	var b strings.Builder

	writeRule(&b, selector, c.Style)

	if hover := HoverDiff(c); hover != nil {
		writeRule(&b, selector+":hover", hover.Changes)
	}

	if c.Pseudo != nil {
		writeRule(&b, selector+"::before", c.Pseudo.Before)
		writeRule(&b, selector+"::after", c.Pseudo.After)
	}

	writeMediaRule(&b, mobileMediaQuery, selector, c.Breakpoints[component.BreakpointMobile])
	writeMediaRule(&b, tabletMediaQuery, selector, c.Breakpoints[component.BreakpointTablet])

	return b.String()
}

// writeRule writes one rule block with properties in sorted order for
// deterministic output.
func writeRule(b *strings.Builder, selector string, props map[string]string) {
	if len(props) == 0 {
		return
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(selector + " {\n")
	for _, name := range sortedKeys(props) {
		b.WriteString("  " + KebabCase(name) + ": " + props[name] + ";\n")
	}
	b.WriteString("}\n")
}

func writeMediaRule(b *strings.Builder, query, selector string, props map[string]string) {
	if len(props) == 0 {
		return
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(query + " {\n")
	b.WriteString("  " + selector + " {\n")
	for _, name := range sortedKeys(props) {
		b.WriteString("    " + KebabCase(name) + ": " + props[name] + ";\n")
	}
	b.WriteString("  }\n")
	b.WriteString("}\n")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// KebabCase converts a camelCase property name to kebab-case.
func KebabCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 3)
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
