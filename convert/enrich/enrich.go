package enrich

import (
	"go.uber.org/zap"

	"w2b/component"
	"w2b/convert"
	"w2b/tokens"
)

// Enrichment is everything this layer derived for one component. Absent
// signals are nil.
type Enrichment struct {
	Responsive map[component.Breakpoint]map[string]any
	Hover      *HoverEffects
	Entrance   *EntranceAnimation
	Motion     *MotionEffects
	TokenRefs  map[string]TokenRef
	Dynamic    *DynamicRef
	CustomCSS  string
}

// Collect runs every enrichment pass over one component.
func Collect(c *component.RecognizedComponent, ref *tokens.Reference, log *zap.Logger) *Enrichment {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Enrichment{
		Responsive: Responsive(c),
		Hover:      HoverDiff(c),
		Entrance:   Entrance(c),
		Motion:     DetectMotion(c),
		TokenRefs:  LinkTokens(c, ref),
		Dynamic:    DetectDynamic(c),
		CustomCSS:  GenerateCSS(c),
	}
	if e.Entrance != nil {
		log.Debug("Classified entrance animation",
			zap.String("type", string(e.Entrance.Type)),
			zap.Int("durationMs", e.Entrance.DurationMs))
	}
	return e
}

// Apply attaches the collected enrichment to a widget node's settings.
func (e *Enrichment) Apply(node *convert.WidgetNode) {
	for bp, settings := range e.Responsive {
		node.Set("responsive."+string(bp), settings)
	}
	if e.Hover != nil {
		node.Set("hover_effects.changes", e.Hover.Changes)
		node.Set("hover_effects.transition", e.Hover.Transition)
	}
	if e.Entrance != nil {
		node.Set("_animation", string(e.Entrance.Type))
		if e.Entrance.DurationMs > 0 {
			node.Set("_animation_duration", e.Entrance.DurationMs)
		}
		if e.Entrance.DelayMs > 0 {
			node.Set("_animation_delay", e.Entrance.DelayMs)
		}
	}
	if e.Motion != nil {
		if e.Motion.Parallax {
			node.Set("motion_fx.parallax", true)
		}
		if e.Motion.Sticky != nil {
			// offsets go in as parsed dimensions so the exporter renders
			// them like every other dimension setting
			sticky := make(map[string]any)
			if e.Motion.Sticky.Top != nil {
				sticky["top"] = e.Motion.Sticky.Top
			}
			if e.Motion.Sticky.Bottom != nil {
				sticky["bottom"] = e.Motion.Sticky.Bottom
			}
			node.Set("motion_fx.sticky", sticky)
		}
		if e.Motion.ScrollFadeIn {
			node.Set("motion_fx.scroll_fade_in", true)
		}
	}
	if len(e.TokenRefs) > 0 {
		node.Set("design_tokens", e.TokenRefs)
	}
	if e.Dynamic != nil {
		node.Set("dynamic", map[string]any{
			"kind":     e.Dynamic.Kind,
			"source":   e.Dynamic.Source,
			"fallback": e.Dynamic.Fallback,
		})
	}
}
