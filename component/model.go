// Package component defines the recognized component tree the conversion
// pipeline consumes. The tree is produced by an out-of-process page analyzer
// and arrives as a JSON snapshot with the CSS cascade already resolved.
package component

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// StyleSnapshot is a flat computed-style map keyed by camelCase property
// names. Cascade and specificity are resolved upstream.
type StyleSnapshot map[string]string

// Get returns the property value, treating missing and empty as the same.
func (s StyleSnapshot) Get(name string) string {
	if s == nil {
		return ""
	}
	return s[name]
}

// PseudoStyles carries ::before / ::after style snapshots.
type PseudoStyles struct {
	Before StyleSnapshot `json:"before,omitempty"`
	After  StyleSnapshot `json:"after,omitempty"`
}

// StateStyles carries per-interaction-state style snapshots.
type StateStyles struct {
	Normal StyleSnapshot `json:"normal,omitempty"`
	Hover  StyleSnapshot `json:"hover,omitempty"`
	Focus  StyleSnapshot `json:"focus,omitempty"`
}

// Animation describes a declared CSS animation on a component.
type Animation struct {
	Name     string `json:"name"`
	Duration string `json:"duration,omitempty"`
	Delay    string `json:"delay,omitempty"`
}

// Behavior is the analyzer's behavioral summary for one component.
type Behavior struct {
	Animation     *Animation `json:"animation,omitempty"`
	Transition    string     `json:"transition,omitempty"`
	ScrollClasses []string   `json:"scrollClasses,omitempty"`
}

// RecognizedComponent is one node of the recognized page tree. The parent
// owns its children exclusively; the structure is a tree, never a graph.
type RecognizedComponent struct {
	Type       ComponentType
	Tag        string
	ID         string
	Classes    []string
	Attributes map[string]string
	Text       string

	// Props are analyzer-extracted semantic properties (link targets, image
	// sources, rating values) as opposed to computed style.
	Props map[string]string

	Style       StyleSnapshot
	States      *StateStyles
	Pseudo      *PseudoStyles
	Breakpoints map[Breakpoint]StyleSnapshot
	Behavior    *Behavior

	Children []*RecognizedComponent
}

// Prop reads a semantic property, falling back to the computed style
// snapshot, which mirrors how the analyzer populates the two maps.
func (c *RecognizedComponent) Prop(name string) (string, bool) {
	if v, ok := c.Props[name]; ok && v != "" {
		return v, true
	}
	if v := c.Style.Get(name); v != "" {
		return v, true
	}
	return "", false
}

// HasClass reports whether any class contains sub (case-insensitive).
func (c *RecognizedComponent) HasClass(sub string) bool {
	for _, cl := range c.Classes {
		if strings.Contains(strings.ToLower(cl), strings.ToLower(sub)) {
			return true
		}
	}
	return false
}

// jsonComponent is the wire form of a recognized component.
type jsonComponent struct {
	Type        string                   `json:"type"`
	Tag         string                   `json:"tag,omitempty"`
	ID          string                   `json:"id,omitempty"`
	Classes     []string                 `json:"classes,omitempty"`
	Attributes  map[string]string        `json:"attributes,omitempty"`
	Text        string                   `json:"text,omitempty"`
	Props       map[string]string        `json:"props,omitempty"`
	Style       StyleSnapshot            `json:"style,omitempty"`
	States      *StateStyles             `json:"states,omitempty"`
	Pseudo      *PseudoStyles            `json:"pseudo,omitempty"`
	Breakpoints map[string]StyleSnapshot `json:"breakpoints,omitempty"`
	Behavior    *Behavior                `json:"behavior,omitempty"`
	Children    []*jsonComponent         `json:"children,omitempty"`
}

func (jc *jsonComponent) toComponent() *RecognizedComponent {
	c := &RecognizedComponent{
		Type:       ParseComponentType(jc.Type),
		Tag:        strings.ToLower(jc.Tag),
		ID:         jc.ID,
		Classes:    jc.Classes,
		Attributes: jc.Attributes,
		Text:       jc.Text,
		Props:      jc.Props,
		Style:      jc.Style,
		States:     jc.States,
		Pseudo:     jc.Pseudo,
		Behavior:   jc.Behavior,
	}
	if len(jc.Breakpoints) > 0 {
		c.Breakpoints = make(map[Breakpoint]StyleSnapshot, len(jc.Breakpoints))
		for name, snap := range jc.Breakpoints {
			switch bp := Breakpoint(strings.ToLower(name)); bp {
			case BreakpointMobile, BreakpointTablet, BreakpointLaptop, BreakpointDesktop:
				c.Breakpoints[bp] = snap
			}
		}
	}
	for _, child := range jc.Children {
		c.Children = append(c.Children, child.toComponent())
	}
	return c
}

// PageSnapshot is the analyzer output for a single page.
type PageSnapshot struct {
	PageID     string
	Title      string
	Markup     string
	Components []*RecognizedComponent
}

type jsonPage struct {
	PageID     string           `json:"pageId"`
	Title      string           `json:"title,omitempty"`
	Markup     string           `json:"markup,omitempty"`
	Components []*jsonComponent `json:"components"`
}

func (jp *jsonPage) toPage() *PageSnapshot {
	p := &PageSnapshot{PageID: jp.PageID, Title: jp.Title, Markup: jp.Markup}
	for _, jc := range jp.Components {
		p.Components = append(p.Components, jc.toComponent())
	}
	return p
}

// LoadPageSnapshot decodes a single page snapshot from r.
func LoadPageSnapshot(r io.Reader) (*PageSnapshot, error) {
	var jp jsonPage
	if err := json.NewDecoder(r).Decode(&jp); err != nil {
		return nil, fmt.Errorf("unable to decode page snapshot: %w", err)
	}
	return jp.toPage(), nil
}

// LoadSiteSnapshot decodes a multi-page snapshot ({"pages": [...]}) from r.
func LoadSiteSnapshot(r io.Reader) ([]*PageSnapshot, error) {
	var js struct {
		Pages []*jsonPage `json:"pages"`
	}
	if err := json.NewDecoder(r).Decode(&js); err != nil {
		return nil, fmt.Errorf("unable to decode site snapshot: %w", err)
	}
	pages := make([]*PageSnapshot, 0, len(js.Pages))
	for _, jp := range js.Pages {
		pages = append(pages, jp.toPage())
	}
	return pages, nil
}
