// Package elementor renders the internal widget tree as an Elementor-style
// page document. It is one exporter over the shared IR; other target schemas
// would live in sibling packages without touching the mapping layer.
package elementor

import (
	"math"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"w2b/convert"
	"w2b/cssval"
	"w2b/tokens"
)

// SchemaVersion is the export envelope version downstream importers accept.
const SchemaVersion = "0.4"

// DocumentType tags the envelope as a page document.
const DocumentType = "wp-page"

// DefaultContentWidth is the fixed content width of the wrapping section.
const DefaultContentWidth = 1140

// Element is one node of the exported document.
type Element struct {
	ID         string         `json:"id"`
	ElType     string         `json:"elType"`
	WidgetType string         `json:"widgetType,omitempty"`
	Settings   map[string]any `json:"settings"`
	Elements   []*Element     `json:"elements"`
}

// Document is the versioned export envelope. Its JSON form is the bit-exact
// contract a downstream importer must accept.
type Document struct {
	Version      string         `json:"version"`
	Title        string         `json:"title"`
	Type         string         `json:"type"`
	Content      []*Element     `json:"content"`
	PageSettings map[string]any `json:"page_settings"`
}

// Options controls envelope assembly.
type Options struct {
	Reference    *tokens.Reference
	CustomCSS    string
	ContentWidth int
}

// Exporter assembles export documents. Validation and optimization are
// separate explicit passes; Export never runs them implicitly.
type Exporter struct {
	log *zap.Logger
}

// New creates an exporter.
func New(log *zap.Logger) *Exporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Exporter{log: log.Named("elementor")}
}

// Export wraps a flat widget list in a single default section and column
// sized to the content width and stamps the versioned envelope.
func (e *Exporter) Export(widgets []*convert.WidgetNode, title string, opts Options) *Document {
	width := opts.ContentWidth
	if width <= 0 {
		width = DefaultContentWidth
	}

	column := &Element{
		ID:       uuid.NewString()[:8],
		ElType:   "column",
		Settings: map[string]any{"_column_size": float64(100)},
	}
	for _, w := range widgets {
		column.Elements = append(column.Elements, e.element(w))
	}

	section := &Element{
		ID:     uuid.NewString()[:8],
		ElType: "section",
		Settings: map[string]any{
			"layout":        "boxed",
			"content_width": map[string]any{"size": width, "unit": "px"},
		},
		Elements: []*Element{column},
	}

	doc := &Document{
		Version:      SchemaVersion,
		Title:        title,
		Type:         DocumentType,
		Content:      []*Element{section},
		PageSettings: e.pageSettings(opts),
	}
	e.log.Debug("Assembled flat export", zap.Int("widgets", len(widgets)))
	return doc
}

// ExportTree accepts a pre-grouped section/column/widget tree and preserves
// multi-column layouts. Sibling columns split the column width evenly;
// section-level background and padding styles are carried through dimension
// parsing.
func (e *Exporter) ExportTree(sections []*convert.WidgetNode, title string, opts Options) *Document {
	doc := &Document{
		Version:      SchemaVersion,
		Title:        title,
		Type:         DocumentType,
		PageSettings: e.pageSettings(opts),
	}
	for _, s := range sections {
		doc.Content = append(doc.Content, e.sectionElement(s))
	}
	e.log.Debug("Assembled tree export", zap.Int("sections", len(doc.Content)))
	return doc
}

func (e *Exporter) sectionElement(s *convert.WidgetNode) *Element {
	el := e.element(s)

	// section-level spacing arrives as raw CSS text
	if raw, ok := el.Settings["padding"].(string); ok {
		if set, parsed := cssval.ParseShorthand(raw); parsed {
			el.Settings["padding"] = normalizeValue(set)
		}
	}

	if n := len(el.Elements); n > 0 {
		size := math.Round(10000/float64(n)) / 100
		for _, col := range el.Elements {
			if col.ElType == string(convert.KindColumn) {
				col.Settings["_column_size"] = size
			}
		}
	}
	return el
}

// element converts one IR node (and its children) to the export form.
func (e *Exporter) element(n *convert.WidgetNode) *Element {
	el := &Element{
		ID:       n.ID,
		ElType:   string(n.Kind),
		Settings: make(map[string]any, len(n.Settings)),
		Elements: []*Element{},
	}
	if n.Kind == convert.KindWidget {
		el.WidgetType = n.WidgetType
	}
	for k, v := range n.Settings {
		el.Settings[k] = normalizeValue(v)
	}
	for _, child := range n.Children {
		el.Elements = append(el.Elements, e.element(child))
	}
	return el
}

func (e *Exporter) pageSettings(opts Options) map[string]any {
	settings := make(map[string]any)
	if opts.Reference != nil {
		if colors := opts.Reference.Colors(); len(colors) > 0 {
			settings["global_colors"] = colors
		}
		if fonts := opts.Reference.Fonts(); len(fonts) > 0 {
			settings["global_fonts"] = fonts
		}
	}
	if opts.CustomCSS != "" {
		settings["custom_css"] = opts.CustomCSS
	}
	return settings
}

// normalizeValue converts parsed cssval values into the target schema's
// plain JSON shapes. Everything else passes through.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case *cssval.ParsedDimension:
		if val == nil {
			return nil
		}
		return dimensionJSON(*val)
	case cssval.ParsedDimension:
		return dimensionJSON(val)
	case *cssval.DimensionSet:
		if val == nil {
			return nil
		}
		return dimensionSetJSON(*val)
	case cssval.DimensionSet:
		return dimensionSetJSON(val)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalizeValue(item)
		}
		return out
	case []map[string]any:
		out := make([]any, 0, len(val))
		for _, item := range val {
			out = append(out, normalizeValue(item))
		}
		return out
	case []any:
		out := make([]any, 0, len(val))
		for _, item := range val {
			out = append(out, normalizeValue(item))
		}
		return out
	default:
		return v
	}
}

func dimensionJSON(d cssval.ParsedDimension) map[string]any {
	if d.Unit.IsKeyword() {
		return map[string]any{"size": string(d.Unit), "unit": "custom"}
	}
	return map[string]any{"size": d.Value, "unit": string(d.Unit)}
}

func dimensionSetJSON(s cssval.DimensionSet) map[string]any {
	side := func(d *cssval.ParsedDimension) string {
		if d == nil {
			return ""
		}
		if d.Unit.IsKeyword() {
			return string(d.Unit)
		}
		return strconv.FormatFloat(d.Value, 'f', -1, 64)
	}
	unit := "px"
	for _, d := range []*cssval.ParsedDimension{s.Top, s.Right, s.Bottom, s.Left} {
		if d != nil && !d.Unit.IsKeyword() {
			unit = string(d.Unit)
			break
		}
	}
	t, r, b, l := side(s.Top), side(s.Right), side(s.Bottom), side(s.Left)
	return map[string]any{
		"top":      t,
		"right":    r,
		"bottom":   b,
		"left":     l,
		"unit":     unit,
		"isLinked": t == r && r == b && b == l,
	}
}
