package enrich

import (
	"strings"

	"w2b/component"
	"w2b/cssval"
)

// StickyEffect pins a component while scrolling, with optional offsets.
type StickyEffect struct {
	Top    *cssval.ParsedDimension `json:"top,omitempty"`
	Bottom *cssval.ParsedDimension `json:"bottom,omitempty"`
}

// MotionEffects aggregates the independent scroll-motion signals detected
// on one component.
type MotionEffects struct {
	Parallax     bool
	Sticky       *StickyEffect
	ScrollFadeIn bool
}

// scrollLibraryClasses are class-name substrings of known scroll-animation
// libraries.
var scrollLibraryClasses = []string{"aos", "wow", "scroll-reveal", "scrollreveal", "animate-on-scroll"}

// DetectMotion inspects style and class signals for scroll-coupled motion.
// Multiple independent signals combine into one result; nil means none.
func DetectMotion(c *component.RecognizedComponent) *MotionEffects {
	var effects MotionEffects
	found := false

	if strings.EqualFold(c.Style.Get("backgroundAttachment"), "fixed") {
		effects.Parallax = true
		found = true
	}

	switch strings.ToLower(c.Style.Get("position")) {
	case "sticky", "fixed":
		sticky := &StickyEffect{}
		if d, ok := cssval.ParseDimension(c.Style.Get("top")); ok {
			sticky.Top = d
		}
		if d, ok := cssval.ParseDimension(c.Style.Get("bottom")); ok {
			sticky.Bottom = d
		}
		effects.Sticky = sticky
		found = true
	}

	classes := make([]string, 0, len(c.Classes))
	classes = append(classes, c.Classes...)
	if c.Behavior != nil {
		classes = append(classes, c.Behavior.ScrollClasses...)
	}
	for _, cl := range classes {
		lower := strings.ToLower(cl)
		for _, lib := range scrollLibraryClasses {
			if strings.Contains(lower, lib) {
				effects.ScrollFadeIn = true
				found = true
			}
		}
	}

	if !found {
		return nil
	}
	return &effects
}
