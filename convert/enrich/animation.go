package enrich

import (
	"strconv"
	"strings"

	"w2b/component"
)

// EntranceType is the closed set of entrance animation classifications.
// ENUM(fadeIn, fadeOut, slideInUp, slideInDown, slideInLeft, slideInRight,
// zoomIn, zoomOut, rotateIn, flipIn, bounceIn)
type EntranceType string

const (
	EntranceFadeIn       EntranceType = "fadeIn"
	EntranceFadeOut      EntranceType = "fadeOut"
	EntranceSlideInUp    EntranceType = "slideInUp"
	EntranceSlideInDown  EntranceType = "slideInDown"
	EntranceSlideInLeft  EntranceType = "slideInLeft"
	EntranceSlideInRight EntranceType = "slideInRight"
	EntranceZoomIn       EntranceType = "zoomIn"
	EntranceZoomOut      EntranceType = "zoomOut"
	EntranceRotateIn     EntranceType = "rotateIn"
	EntranceFlipIn       EntranceType = "flipIn"
	EntranceBounceIn     EntranceType = "bounceIn"
)

// entranceRules are checked in order; the first matching substring set wins.
// More specific rules come before the generic ones they overlap with.
var entranceRules = []struct {
	subs []string
	t    EntranceType
}{
	{[]string{"slide", "up"}, EntranceSlideInUp},
	{[]string{"slide", "down"}, EntranceSlideInDown},
	{[]string{"slide", "left"}, EntranceSlideInLeft},
	{[]string{"slide", "right"}, EntranceSlideInRight},
	{[]string{"fade", "out"}, EntranceFadeOut},
	{[]string{"fade"}, EntranceFadeIn},
	{[]string{"zoom", "out"}, EntranceZoomOut},
	{[]string{"zoom"}, EntranceZoomIn},
	{[]string{"scale"}, EntranceZoomIn},
	{[]string{"rotate"}, EntranceRotateIn},
	{[]string{"flip"}, EntranceFlipIn},
	{[]string{"bounce"}, EntranceBounceIn},
}

// ClassifyEntrance maps an animation name onto an entrance type using
// case-insensitive substring heuristics. Unrecognized names yield false.
func ClassifyEntrance(name string) (EntranceType, bool) {
	lower := strings.ToLower(name)
	if lower == "" {
		return "", false
	}
	for _, rule := range entranceRules {
		matched := true
		for _, sub := range rule.subs {
			if !strings.Contains(lower, sub) {
				matched = false
				break
			}
		}
		if matched {
			return rule.t, true
		}
	}
	return "", false
}

// EntranceAnimation is a classified entrance with normalized timings.
type EntranceAnimation struct {
	Type       EntranceType
	DurationMs int
	DelayMs    int
}

// Entrance classifies a component's declared animation. Components without
// a recognizable animation yield nil.
func Entrance(c *component.RecognizedComponent) *EntranceAnimation {
	if c.Behavior == nil || c.Behavior.Animation == nil {
		return nil
	}
	t, ok := ClassifyEntrance(c.Behavior.Animation.Name)
	if !ok {
		return nil
	}
	return &EntranceAnimation{
		Type:       t,
		DurationMs: NormalizeDurationMs(c.Behavior.Animation.Duration),
		DelayMs:    NormalizeDurationMs(c.Behavior.Animation.Delay),
	}
}

// NormalizeDurationMs converts a CSS time string to milliseconds: "ms"
// passes through, "s" multiplies by 1000. Unparsable input yields 0.
func NormalizeDurationMs(raw string) int {
	s := strings.TrimSpace(strings.ToLower(raw))
	if s == "" {
		return 0
	}
	switch {
	case strings.HasSuffix(s, "ms"):
		n, err := strconv.ParseFloat(strings.TrimSuffix(s, "ms"), 64)
		if err != nil {
			return 0
		}
		return int(n)
	case strings.HasSuffix(s, "s"):
		n, err := strconv.ParseFloat(strings.TrimSuffix(s, "s"), 64)
		if err != nil {
			return 0
		}
		return int(n * 1000)
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(n)
}
