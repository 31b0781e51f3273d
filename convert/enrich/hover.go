package enrich

import (
	"strings"

	"w2b/component"
)

// hoverTracked is the closed set of properties compared between the normal
// and hover state snapshots.
var hoverTracked = []string{
	"transform",
	"backgroundColor",
	"color",
	"borderColor",
	"boxShadow",
	"opacity",
}

// Transition is the parsed CSS transition applied to hover changes. It
// travels into export settings, so the wire form is lowercase.
type Transition struct {
	Property string `json:"property"`
	Duration string `json:"duration"`
	Timing   string `json:"timing"`
	Delay    string `json:"delay,omitempty"`
}

// HoverEffects carries only the properties whose hover value differs from
// the normal state.
type HoverEffects struct {
	Changes    map[string]string
	Transition Transition
}

// HoverDiff compares the tracked properties between the normal and hover
// snapshots and returns nil when nothing differs.
func HoverDiff(c *component.RecognizedComponent) *HoverEffects {
	if c.States == nil || c.States.Hover == nil {
		return nil
	}
	normal := c.States.Normal
	if normal == nil {
		normal = c.Style
	}

	changes := make(map[string]string)
	for _, prop := range hoverTracked {
		hv := c.States.Hover.Get(prop)
		if hv == "" {
			continue
		}
		if hv != normal.Get(prop) {
			changes[prop] = hv
		}
	}
	if len(changes) == 0 {
		return nil
	}

	transition := ""
	if c.Behavior != nil {
		transition = c.Behavior.Transition
	}
	return &HoverEffects{
		Changes:    changes,
		Transition: ParseTransition(transition),
	}
}

// ParseTransition parses "property duration timing-function delay". Short
// transition strings default the duration to 0.3s and the timing function
// to ease.
func ParseTransition(raw string) Transition {
	tr := Transition{Property: "all", Duration: "0.3s", Timing: "ease"}
	fields := strings.Fields(raw)
	if len(fields) < 2 {
		return tr
	}
	tr.Property = fields[0]
	tr.Duration = fields[1]
	if len(fields) > 2 {
		tr.Timing = fields[2]
	}
	if len(fields) > 3 {
		tr.Delay = fields[3]
	}
	return tr
}
