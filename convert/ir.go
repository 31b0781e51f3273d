// Package convert maps recognized components onto the internal widget tree.
// The tree is target-agnostic: exporter packages (convert/elementor) turn it
// into a concrete builder document, so adding a target format means adding an
// exporter, not another mapping layer.
package convert

import (
	"strconv"
	"strings"
)

// NodeKind distinguishes the three structural node kinds of the widget tree.
// ENUM(section, column, widget)
type NodeKind string

const (
	KindSection NodeKind = "section"
	KindColumn  NodeKind = "column"
	KindWidget  NodeKind = "widget"
)

// WidgetNode is one node of the output tree. Sections own columns, columns
// own widgets; every leaf is a widget. Widgets never carry children.
type WidgetNode struct {
	ID         string
	Kind       NodeKind
	WidgetType string
	Settings   map[string]any
	Children   []*WidgetNode
}

// Set stores a value under a dot-notation path, creating nested maps as
// needed ("link.url" -> Settings["link"]["url"]).
func (n *WidgetNode) Set(path string, value any) {
	if n.Settings == nil {
		n.Settings = make(map[string]any)
	}
	parts := strings.Split(path, ".")
	m := n.Settings
	for _, key := range parts[:len(parts)-1] {
		next, ok := m[key].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[key] = next
		}
		m = next
	}
	m[parts[len(parts)-1]] = value
}

// Get reads a value by dot-notation path.
func (n *WidgetNode) Get(path string) (any, bool) {
	var cur any = n.Settings
	for _, key := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = m[key]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// IDGen hands out identifiers unique within one export run. It is owned by
// the run context, never shared between concurrent invocations.
type IDGen struct {
	next int
}

// NewIDGen starts a fresh per-run id sequence.
func NewIDGen() *IDGen {
	return &IDGen{}
}

// Next returns the next run-unique id.
func (g *IDGen) Next() string {
	g.next++
	return "w2b-" + strconv.Itoa(g.next)
}

// NewSection creates an empty section node.
func NewSection(ids *IDGen) *WidgetNode {
	return &WidgetNode{ID: ids.Next(), Kind: KindSection, Settings: make(map[string]any)}
}

// NewColumn creates an empty column node.
func NewColumn(ids *IDGen) *WidgetNode {
	return &WidgetNode{ID: ids.Next(), Kind: KindColumn, Settings: make(map[string]any)}
}

// NewWidget creates a widget node of the given target widget type.
func NewWidget(ids *IDGen, widgetType string) *WidgetNode {
	return &WidgetNode{ID: ids.Next(), Kind: KindWidget, WidgetType: widgetType, Settings: make(map[string]any)}
}
