package convert

import (
	"strconv"
	"strings"

	"w2b/component"
	"w2b/cssval"
)

// Specialized per-type builders. Each produces a widget-type tag plus a
// settings mapping tailored to that widget's semantics. Builders read
// analyzer props first and fall back to structure (children, text, style).

func (m *Mapper) buildIconBox(c *component.RecognizedComponent) *WidgetNode {
	node := NewWidget(m.ids, widgetIconBox)

	if v, ok := c.Prop("icon"); ok {
		node.Set("selected_icon.value", v)
	} else if icon := firstChildOfType(c, component.TypeIcon); icon != nil {
		if v, ok := icon.Prop("icon"); ok {
			node.Set("selected_icon.value", v)
		}
	}
	if v, ok := c.Prop("title"); ok {
		node.Set("title_text", v)
	} else if h := firstChildOfType(c, component.TypeHeading); h != nil {
		node.Set("title_text", h.Text)
	}
	if v, ok := c.Prop("description"); ok {
		node.Set("description_text", v)
	} else if p := firstChildOfType(c, component.TypeText); p != nil {
		node.Set("description_text", p.Text)
	}
	pos := "top"
	if v, ok := c.Prop("iconPosition"); ok {
		pos = v
	}
	node.Set("position", pos)
	return node
}

func (m *Mapper) buildStarRating(c *component.RecognizedComponent) *WidgetNode {
	node := NewWidget(m.ids, widgetStarRating)
	rating := propFloat(c, "rating", 5)
	node.Set("rating", clampFloat(rating, 0, 5))
	node.Set("rating_scale", 5)
	if v, ok := c.Prop("markStyle"); ok {
		node.Set("star_style", v)
	} else {
		node.Set("star_style", "star_fontawesome")
	}
	return node
}

// socialNetworks maps URL substrings to network names.
var socialNetworks = []struct{ host, name string }{
	{"facebook.", "facebook"},
	{"twitter.", "twitter"},
	{"x.com", "twitter"},
	{"instagram.", "instagram"},
	{"linkedin.", "linkedin"},
	{"youtube.", "youtube"},
	{"pinterest.", "pinterest"},
	{"tiktok.", "tiktok"},
	{"github.", "github"},
}

// SocialNetworkFromURL guesses the network name from a profile link.
func SocialNetworkFromURL(url string) (string, bool) {
	lower := strings.ToLower(url)
	for _, n := range socialNetworks {
		if strings.Contains(lower, n.host) {
			return n.name, true
		}
	}
	return "", false
}

func (m *Mapper) buildSocialIcons(c *component.RecognizedComponent) *WidgetNode {
	node := NewWidget(m.ids, widgetSocialIcons)
	var icons []map[string]any
	for _, child := range c.Children {
		href, ok := child.Prop("href")
		if !ok {
			continue
		}
		network, known := SocialNetworkFromURL(href)
		if !known {
			network = "link"
		}
		icons = append(icons, map[string]any{
			"social_icon": "fab fa-" + network,
			"link":        map[string]any{"url": href},
		})
	}
	node.Set("social_icon_list", icons)
	return node
}

func (m *Mapper) buildProgressBar(c *component.RecognizedComponent) *WidgetNode {
	node := NewWidget(m.ids, widgetProgress)
	if v, ok := c.Prop("title"); ok {
		node.Set("title", v)
	} else if c.Text != "" {
		node.Set("title", c.Text)
	}

	percent := propFloat(c, "percent", -1)
	if percent < 0 {
		percent = propFloat(c, "value", -1)
	}
	if percent < 0 {
		// width: NN% on the fill element is the usual fallback signal
		if d, ok := cssval.ParseDimension(c.Style.Get("width")); ok && d.Unit == cssval.UnitPct {
			percent = d.Value
		}
	}
	if percent < 0 {
		percent = 0
	}
	node.Set("percent", clampFloat(percent, 0, 100))
	node.Set("display_percentage", "show")
	return node
}

func (m *Mapper) buildCounter(c *component.RecognizedComponent) *WidgetNode {
	node := NewWidget(m.ids, widgetCounter)
	node.Set("starting_number", propFloat(c, "start", 0))

	end := propFloat(c, "end", -1)
	if end < 0 {
		// "1,000+" -> 1000
		text := strings.ReplaceAll(strings.TrimSpace(c.Text), ",", "")
		if n, err := strconv.ParseFloat(strings.Trim(text, "+"), 64); err == nil {
			end = n
		} else {
			end = 0
		}
	}
	node.Set("ending_number", end)
	node.Set("duration", propFloat(c, "duration", 2000))
	if v, ok := c.Prop("prefix"); ok {
		node.Set("prefix", v)
	}
	if v, ok := c.Prop("suffix"); ok {
		node.Set("suffix", v)
	}
	node.Set("thousand_separator", "yes")
	return node
}

func (m *Mapper) buildTestimonial(c *component.RecognizedComponent) *WidgetNode {
	node := NewWidget(m.ids, widgetTestimonial)
	if v, ok := c.Prop("quote"); ok {
		node.Set("testimonial_content", v)
	} else if c.Text != "" {
		node.Set("testimonial_content", c.Text)
	}
	if v, ok := c.Prop("author"); ok {
		node.Set("testimonial_name", v)
	}
	if v, ok := c.Prop("role"); ok {
		node.Set("testimonial_job", v)
	}
	if v, ok := c.Prop("image"); ok {
		node.Set("testimonial_image.url", v)
	} else if img := firstChildOfType(c, component.TypeImage); img != nil {
		if v, ok := img.Prop("src"); ok {
			node.Set("testimonial_image.url", v)
		}
	}
	if rating := propFloat(c, "rating", 0); rating > 0 {
		node.Set("rating", clampFloat(rating, 1, 5))
	}
	return node
}

func (m *Mapper) buildImageCarousel(c *component.RecognizedComponent) *WidgetNode {
	node := NewWidget(m.ids, widgetCarousel)
	node.Set("carousel", collectImages(c))
	node.Set("slides_to_show", int(propFloat(c, "slidesToShow", 3)))
	if v, ok := c.Prop("autoplay"); ok {
		node.Set("autoplay", v)
	}
	return node
}

func (m *Mapper) buildPostsGrid(c *component.RecognizedComponent) *WidgetNode {
	node := NewWidget(m.ids, widgetPosts)
	cols := int(propFloat(c, "columns", 3))
	if cols < 1 {
		cols = 1
	}
	node.Set("columns", cols)
	node.Set("posts_per_page", int(propFloat(c, "postsPerPage", 6)))
	node.Set("show_excerpt", "yes")
	return node
}

func (m *Mapper) buildCallToAction(c *component.RecognizedComponent) *WidgetNode {
	node := NewWidget(m.ids, widgetCallToAction)
	if v, ok := c.Prop("title"); ok {
		node.Set("title", v)
	} else if h := firstChildOfType(c, component.TypeHeading); h != nil {
		node.Set("title", h.Text)
	}
	if v, ok := c.Prop("description"); ok {
		node.Set("description", v)
	} else if p := firstChildOfType(c, component.TypeText); p != nil {
		node.Set("description", p.Text)
	}
	if btn := firstChildOfType(c, component.TypeButton); btn != nil {
		node.Set("button", btn.Text)
		if v, ok := btn.Prop("href"); ok {
			node.Set("link.url", v)
		}
	}
	if bg, ok := c.Prop("backgroundImage"); ok {
		if u, ok := extractURL(bg); ok {
			node.Set("bg_image.url", u)
		}
	}
	return node
}

// plan reflects one offering of a price list or table.
func buildPlan(c *component.RecognizedComponent) map[string]any {
	plan := make(map[string]any)
	if v, ok := c.Prop("title"); ok {
		plan["title"] = v
	} else if h := firstChildOfType(c, component.TypeHeading); h != nil {
		plan["title"] = h.Text
	}
	if v, ok := c.Prop("price"); ok {
		plan["price"] = v
	}
	if v, ok := c.Prop("period"); ok {
		plan["period"] = v
	}
	var features []string
	if v, ok := c.Prop("features"); ok {
		for _, f := range strings.Split(v, "|") {
			if f = strings.TrimSpace(f); f != "" {
				features = append(features, f)
			}
		}
	} else {
		for _, child := range c.Children {
			if child.Type == component.TypeText && child.Text != "" {
				features = append(features, child.Text)
			}
		}
	}
	plan["features"] = features
	highlighted := false
	if v, ok := c.Prop("highlighted"); ok {
		highlighted = v == "true" || v == "yes"
	} else {
		highlighted = c.HasClass("featured") || c.HasClass("highlight") || c.HasClass("popular")
	}
	plan["highlighted"] = highlighted
	return plan
}

func (m *Mapper) buildPriceList(c *component.RecognizedComponent) *WidgetNode {
	node := NewWidget(m.ids, widgetPriceList)
	var items []map[string]any
	for _, child := range c.Children {
		item := make(map[string]any)
		if v, ok := child.Prop("title"); ok {
			item["title"] = v
		} else {
			item["title"] = child.Text
		}
		if v, ok := child.Prop("price"); ok {
			item["price"] = v
		}
		if v, ok := child.Prop("description"); ok {
			item["item_description"] = v
		}
		items = append(items, item)
	}
	node.Set("price_list", items)
	return node
}

func (m *Mapper) buildPriceTable(c *component.RecognizedComponent) *WidgetNode {
	node := NewWidget(m.ids, widgetPriceTable)
	if len(c.Children) == 0 {
		// single-plan table: the component itself is the plan
		node.Set("plans", []map[string]any{buildPlan(c)})
		return node
	}
	plans := make([]map[string]any, 0, len(c.Children))
	for _, child := range c.Children {
		plans = append(plans, buildPlan(child))
	}
	node.Set("plans", plans)
	return node
}

func (m *Mapper) buildAlert(c *component.RecognizedComponent) *WidgetNode {
	node := NewWidget(m.ids, widgetAlert)

	alertType := "info"
	if v, ok := c.Prop("alertType"); ok {
		alertType = v
	} else {
		switch {
		case c.HasClass("success"):
			alertType = "success"
		case c.HasClass("warning"):
			alertType = "warning"
		case c.HasClass("danger") || c.HasClass("error"):
			alertType = "danger"
		}
	}
	node.Set("alert_type", alertType)

	if v, ok := c.Prop("title"); ok {
		node.Set("alert_title", v)
	}
	if c.Text != "" {
		node.Set("alert_description", c.Text)
	}
	dismissible := "hide"
	for _, child := range c.Children {
		if child.Type == component.TypeButton && child.HasClass("close") {
			dismissible = "show"
		}
	}
	node.Set("show_dismiss", dismissible)
	return node
}

// collectItems extracts ordered title/content pairs for tabs and toggles.
func collectItems(c *component.RecognizedComponent, titleKey, contentKey string) []map[string]any {
	var items []map[string]any
	for _, child := range c.Children {
		item := make(map[string]any)
		if v, ok := child.Prop("title"); ok {
			item[titleKey] = v
		} else if h := firstChildOfType(child, component.TypeHeading); h != nil {
			item[titleKey] = h.Text
		}
		if v, ok := child.Prop("content"); ok {
			item[contentKey] = v
		} else if child.Text != "" {
			item[contentKey] = child.Text
		}
		if len(item) > 0 {
			items = append(items, item)
		}
	}
	return items
}

func (m *Mapper) buildTabs(c *component.RecognizedComponent) *WidgetNode {
	node := NewWidget(m.ids, widgetTabs)
	node.Set("tabs", collectItems(c, "tab_title", "tab_content"))
	return node
}

func (m *Mapper) buildToggle(c *component.RecognizedComponent) *WidgetNode {
	node := NewWidget(m.ids, widgetToggle)
	node.Set("tabs", collectItems(c, "tab_title", "tab_content"))
	return node
}

func (m *Mapper) buildFlipBox(c *component.RecognizedComponent) *WidgetNode {
	node := NewWidget(m.ids, widgetFlipBox)
	if v, ok := c.Prop("frontTitle"); ok {
		node.Set("title_text_a", v)
	}
	if v, ok := c.Prop("frontDescription"); ok {
		node.Set("description_text_a", v)
	}
	if v, ok := c.Prop("backTitle"); ok {
		node.Set("title_text_b", v)
	}
	if v, ok := c.Prop("backDescription"); ok {
		node.Set("description_text_b", v)
	}
	// structural fallback: first child is the front face, second the back
	if len(c.Children) > 0 {
		fillFace(node, c.Children[0], "a")
	}
	if len(c.Children) > 1 {
		fillFace(node, c.Children[1], "b")
	}
	return node
}

func fillFace(node *WidgetNode, face *component.RecognizedComponent, side string) {
	if _, ok := node.Get("title_text_" + side); !ok {
		if h := firstChildOfType(face, component.TypeHeading); h != nil {
			node.Set("title_text_"+side, h.Text)
		}
	}
	if _, ok := node.Get("description_text_" + side); !ok {
		if p := firstChildOfType(face, component.TypeText); p != nil {
			node.Set("description_text_"+side, p.Text)
		}
	}
	if bg, ok := face.Prop("backgroundColor"); ok {
		node.Set("background_color_"+side, bg)
	}
}

func (m *Mapper) buildImageGallery(c *component.RecognizedComponent) *WidgetNode {
	node := NewWidget(m.ids, widgetGallery)
	node.Set("gallery", collectImages(c))
	cols := int(propFloat(c, "columns", 3))
	if cols < 1 {
		cols = 1
	}
	node.Set("gallery_columns", cols)
	return node
}

func (m *Mapper) buildVideoPlaylist(c *component.RecognizedComponent) *WidgetNode {
	node := NewWidget(m.ids, widgetPlaylist)
	var videos []map[string]any
	for _, child := range c.Children {
		url, ok := child.Prop("src")
		if !ok {
			if url, ok = child.Prop("url"); !ok {
				continue
			}
		}
		video := map[string]any{"url": url}
		if v, ok := child.Prop("title"); ok {
			video["title"] = v
		} else if child.Text != "" {
			video["title"] = child.Text
		}
		if v, ok := child.Prop("duration"); ok {
			video["duration"] = v
		}
		videos = append(videos, video)
	}
	node.Set("playlist", videos)
	return node
}

// collectImages gathers image children (and image props of generic
// children) in document order.
func collectImages(c *component.RecognizedComponent) []map[string]any {
	var images []map[string]any
	for _, child := range c.Children {
		src, ok := child.Prop("src")
		if !ok {
			if bg, bgOK := child.Prop("backgroundImage"); bgOK {
				src, ok = extractURL(bg)
			}
		}
		if !ok || src == "" {
			continue
		}
		img := map[string]any{"url": src}
		if alt, ok := child.Prop("alt"); ok {
			img["alt"] = alt
		}
		images = append(images, img)
	}
	return images
}

func firstChildOfType(c *component.RecognizedComponent, t component.ComponentType) *component.RecognizedComponent {
	for _, child := range c.Children {
		if child.Type == t {
			return child
		}
	}
	return nil
}

func propFloat(c *component.RecognizedComponent, name string, fallback float64) float64 {
	v, ok := c.Prop(name)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return fallback
	}
	return n
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
