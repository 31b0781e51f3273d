package elementor

import "fmt"

// Report is the outcome of validating an export document. Errors make the
// document invalid; warnings are informational. Accepting or rejecting an
// invalid export is the caller's decision.
type Report struct {
	IsValid  bool
	Errors   []string
	Warnings []string
}

// ValidateExport walks the document tree and reports an error for every
// duplicate element id and a warning for an empty top-level export. The
// input is never mutated.
func ValidateExport(doc *Document) Report {
	report := Report{IsValid: true}
	if doc == nil || len(doc.Content) == 0 {
		report.Warnings = append(report.Warnings, "export has no content")
		return report
	}

	seen := make(map[string]bool)
	var walk func(el *Element)
	walk = func(el *Element) {
		if el == nil {
			return
		}
		if seen[el.ID] {
			report.Errors = append(report.Errors, fmt.Sprintf("duplicate element id %q", el.ID))
		}
		seen[el.ID] = true
		for _, child := range el.Elements {
			walk(child)
		}
	}
	for _, el := range doc.Content {
		walk(el)
	}

	report.IsValid = len(report.Errors) == 0
	return report
}

// OptimizeExport returns a copy of the document with nil values, empty maps
// and empty arrays removed recursively. The original document is left
// untouched.
func OptimizeExport(doc *Document) *Document {
	if doc == nil {
		return nil
	}
	out := &Document{
		Version: doc.Version,
		Title:   doc.Title,
		Type:    doc.Type,
	}
	if settings, ok := pruneValue(doc.PageSettings); ok {
		out.PageSettings = settings.(map[string]any)
	} else {
		out.PageSettings = map[string]any{}
	}
	for _, el := range doc.Content {
		out.Content = append(out.Content, pruneElement(el))
	}
	return out
}

func pruneElement(el *Element) *Element {
	out := &Element{
		ID:         el.ID,
		ElType:     el.ElType,
		WidgetType: el.WidgetType,
		Elements:   []*Element{},
	}
	// settings always marshal as an object, never null
	if settings, ok := pruneValue(el.Settings); ok {
		out.Settings = settings.(map[string]any)
	} else {
		out.Settings = map[string]any{}
	}
	for _, child := range el.Elements {
		out.Elements = append(out.Elements, pruneElement(child))
	}
	return out
}

// pruneValue returns the cleaned value and whether it is worth keeping.
func pruneValue(v any) (any, bool) {
	switch val := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			if cleaned, keep := pruneValue(item); keep {
				out[k] = cleaned
			}
		}
		if len(out) == 0 {
			return nil, false
		}
		return out, true
	case []any:
		out := make([]any, 0, len(val))
		for _, item := range val {
			if cleaned, keep := pruneValue(item); keep {
				out = append(out, cleaned)
			}
		}
		if len(out) == 0 {
			return nil, false
		}
		return out, true
	default:
		return val, true
	}
}
