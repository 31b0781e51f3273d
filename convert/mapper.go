package convert

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"w2b/component"
	"w2b/cssval"
	"w2b/tokens"
)

// Mapper translates recognized components into widget nodes. It is total:
// every component yields a node, with unknown types falling back to a raw
// HTML passthrough widget.
type Mapper struct {
	ids    *IDGen
	tokens *tokens.Reference
	log    *zap.Logger
}

// NewMapper creates a mapper bound to one export run.
func NewMapper(ids *IDGen, ref *tokens.Reference, log *zap.Logger) *Mapper {
	if log == nil {
		log = zap.NewNop()
	}
	if ids == nil {
		ids = NewIDGen()
	}
	return &Mapper{ids: ids, tokens: ref, log: log.Named("mapper")}
}

// Tokens exposes the run's token reference to enrichment callers.
func (m *Mapper) Tokens() *tokens.Reference {
	return m.tokens
}

// valueKind tells the generic table how to translate a source value.
type valueKind int

const (
	asString    valueKind = iota // pass through verbatim
	asDimension                  // parse via cssval, store the parsed dimension
	asShorthand                  // parse a 1-4 value shorthand into a DimensionSet
)

// propertyMapping is one row of a generic per-type table: where the value
// comes from and which (possibly nested) setting it lands in.
type propertyMapping struct {
	source string
	target string
	kind   valueKind
}

// genericTables drives the legacy component types. Specialized types have
// dedicated builders instead.
var genericTables = map[component.ComponentType][]propertyMapping{
	component.TypeButton: {
		{"href", "link.url", asString},
		{"backgroundColor", "background_color", asString},
		{"color", "button_text_color", asString},
		{"fontSize", "typography_font_size", asDimension},
		{"fontWeight", "typography_font_weight", asString},
		{"borderRadius", "border_radius", asShorthand},
	},
	component.TypeHeading: {
		{"color", "title_color", asString},
		{"fontSize", "typography_font_size", asDimension},
		{"fontWeight", "typography_font_weight", asString},
		{"textAlign", "align", asString},
	},
	component.TypeText: {
		{"color", "text_color", asString},
		{"fontSize", "typography_font_size", asDimension},
		{"lineHeight", "typography_line_height", asString},
		{"textAlign", "align", asString},
	},
	component.TypeImage: {
		{"alt", "image.alt", asString},
		{"borderRadius", "image_border_radius", asShorthand},
	},
	component.TypeIcon: {
		{"icon", "selected_icon.value", asString},
		{"color", "primary_color", asString},
		{"fontSize", "size", asDimension},
	},
	component.TypeSpacer: {
		{"height", "space", asDimension},
	},
	component.TypeDivider: {
		{"borderColor", "color", asString},
		{"borderTopWidth", "weight", asDimension},
		{"width", "width", asDimension},
	},
}

// widget type tags of the target schema
const (
	widgetButton       = "button"
	widgetHeading      = "heading"
	widgetTextEditor   = "text-editor"
	widgetImage        = "image"
	widgetIcon         = "icon"
	widgetSpacer       = "spacer"
	widgetDivider      = "divider"
	widgetHTML         = "html"
	widgetIconBox      = "icon-box"
	widgetStarRating   = "star-rating"
	widgetSocialIcons  = "social-icons"
	widgetProgress     = "progress"
	widgetCounter      = "counter"
	widgetTestimonial  = "testimonial"
	widgetCarousel     = "image-carousel"
	widgetPosts        = "posts"
	widgetCallToAction = "call-to-action"
	widgetPriceList    = "price-list"
	widgetPriceTable   = "price-table"
	widgetAlert        = "alert"
	widgetTabs         = "tabs"
	widgetToggle       = "toggle"
	widgetFlipBox      = "flip-box"
	widgetGallery      = "image-gallery"
	widgetPlaylist     = "video-playlist"
)

// Map converts one recognized component into a widget node. It never fails;
// unrecognized component types produce an HTML passthrough widget.
func (m *Mapper) Map(c *component.RecognizedComponent) *WidgetNode {
	switch c.Type {
	case component.TypeIconBox:
		return m.buildIconBox(c)
	case component.TypeStarRating:
		return m.buildStarRating(c)
	case component.TypeSocialIcons:
		return m.buildSocialIcons(c)
	case component.TypeProgressBar:
		return m.buildProgressBar(c)
	case component.TypeCounter:
		return m.buildCounter(c)
	case component.TypeTestimonial:
		return m.buildTestimonial(c)
	case component.TypeImageCarousel:
		return m.buildImageCarousel(c)
	case component.TypePostsGrid:
		return m.buildPostsGrid(c)
	case component.TypeCallToAction:
		return m.buildCallToAction(c)
	case component.TypePriceList:
		return m.buildPriceList(c)
	case component.TypePriceTable:
		return m.buildPriceTable(c)
	case component.TypeAlert:
		return m.buildAlert(c)
	case component.TypeTabs:
		return m.buildTabs(c)
	case component.TypeToggle:
		return m.buildToggle(c)
	case component.TypeFlipBox:
		return m.buildFlipBox(c)
	case component.TypeImageGallery:
		return m.buildImageGallery(c)
	case component.TypeVideoPlaylist:
		return m.buildVideoPlaylist(c)
	case component.TypeButton, component.TypeHeading, component.TypeText,
		component.TypeImage, component.TypeIcon, component.TypeSpacer,
		component.TypeDivider:
		return m.mapGeneric(c)
	default:
		m.log.Debug("Unknown component type, using passthrough", zap.String("tag", c.Tag))
		return m.buildPassthrough(c)
	}
}

var legacyWidgetTypes = map[component.ComponentType]string{
	component.TypeButton:  widgetButton,
	component.TypeHeading: widgetHeading,
	component.TypeText:    widgetTextEditor,
	component.TypeImage:   widgetImage,
	component.TypeIcon:    widgetIcon,
	component.TypeSpacer:  widgetSpacer,
	component.TypeDivider: widgetDivider,
}

// mapGeneric walks the per-type property table, preferring component props
// over the computed style snapshot and skipping properties absent from both.
func (m *Mapper) mapGeneric(c *component.RecognizedComponent) *WidgetNode {
	node := NewWidget(m.ids, legacyWidgetTypes[c.Type])

	for _, pm := range genericTables[c.Type] {
		raw, ok := c.Prop(pm.source)
		if !ok {
			continue
		}
		switch pm.kind {
		case asDimension:
			if d, ok := cssval.ParseDimension(raw); ok {
				node.Set(pm.target, d)
			}
		case asShorthand:
			if set, ok := cssval.ParseShorthand(raw); ok {
				node.Set(pm.target, set)
			}
		default:
			node.Set(pm.target, raw)
		}
	}

	switch c.Type {
	case component.TypeButton:
		m.refineButton(c, node)
	case component.TypeHeading:
		m.refineHeading(c, node)
	case component.TypeImage:
		m.refineImage(c, node)
	}
	return node
}

// refineButton expands padding, border radius, typography, link and text
// after the generic table pass.
func (m *Mapper) refineButton(c *component.RecognizedComponent, node *WidgetNode) {
	if c.Text != "" {
		node.Set("text", c.Text)
	}
	if v, ok := c.Prop("padding"); ok {
		if set, ok := cssval.ParseShorthand(v); ok {
			node.Set("padding", set)
		}
	}
	if v, ok := c.Prop("fontFamily"); ok {
		node.Set("typography_font_family", v)
	}
	if v, ok := c.Prop("target"); ok && v == "_blank" {
		node.Set("link.is_external", true)
	}
}

// refineHeading infers the semantic heading level from the tag name,
// falling back to level 2.
func (m *Mapper) refineHeading(c *component.RecognizedComponent, node *WidgetNode) {
	node.Set("title", c.Text)

	level := 2
	if len(c.Tag) == 2 && c.Tag[0] == 'h' && c.Tag[1] >= '1' && c.Tag[1] <= '6' {
		level = int(c.Tag[1] - '0')
	}
	node.Set("header_size", "h"+strconv.Itoa(level))

	if v, ok := c.Prop("fontFamily"); ok {
		node.Set("typography_font_family", v)
	}
}

// refineImage resolves the image source from an explicit property or a
// background-image style, plus dimensions and link.
func (m *Mapper) refineImage(c *component.RecognizedComponent, node *WidgetNode) {
	src, ok := c.Prop("src")
	if !ok {
		if bg, bgOK := c.Prop("backgroundImage"); bgOK {
			src, ok = extractURL(bg)
		}
	}
	if ok && src != "" {
		node.Set("image.url", src)
	}
	if d, ok := cssval.ParseDimension(c.Style.Get("width")); ok {
		node.Set("width", d)
	}
	if d, ok := cssval.ParseDimension(c.Style.Get("height")); ok {
		node.Set("height", d)
	}
	if v, ok := c.Prop("href"); ok {
		node.Set("link.url", v)
		node.Set("link_to", "custom")
	}
}

// buildPassthrough wraps a component of unknown type as raw HTML so the
// mapper stays total.
func (m *Mapper) buildPassthrough(c *component.RecognizedComponent) *WidgetNode {
	node := NewWidget(m.ids, widgetHTML)
	if v, ok := c.Prop("html"); ok {
		node.Set("html", v)
	} else {
		node.Set("html", renderFallbackHTML(c))
	}
	return node
}

// renderFallbackHTML rebuilds minimal markup for a passthrough widget from
// what the analyzer captured.
func renderFallbackHTML(c *component.RecognizedComponent) string {
	tag := c.Tag
	if tag == "" {
		tag = "div"
	}
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(tag)
	if c.ID != "" {
		b.WriteString(` id="` + c.ID + `"`)
	}
	if len(c.Classes) > 0 {
		b.WriteString(` class="` + strings.Join(c.Classes, " ") + `"`)
	}
	b.WriteByte('>')
	b.WriteString(c.Text)
	b.WriteString("</" + tag + ">")
	return b.String()
}

// extractURL pulls the target out of a CSS url(...) value.
func extractURL(v string) (string, bool) {
	start := strings.Index(v, "url(")
	if start < 0 {
		return "", false
	}
	rest := v[start+4:]
	end := strings.IndexByte(rest, ')')
	if end < 0 {
		return "", false
	}
	u := strings.Trim(strings.TrimSpace(rest[:end]), `'"`)
	return u, u != ""
}
