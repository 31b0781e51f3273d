package convert

import (
	"testing"

	"w2b/component"
)

func TestBuildTestimonial(t *testing.T) {
	node := newTestMapper().Map(&component.RecognizedComponent{
		Type: component.TypeTestimonial,
		Props: map[string]string{
			"quote":  "Great product",
			"author": "Ada",
			"role":   "Engineer",
			"image":  "/ada.jpg",
			"rating": "7",
		},
	})
	if node.WidgetType != "testimonial" {
		t.Fatalf("expected testimonial, got %q", node.WidgetType)
	}
	if v, _ := node.Get("testimonial_content"); v != "Great product" {
		t.Errorf("content: got %v", v)
	}
	if v, _ := node.Get("testimonial_name"); v != "Ada" {
		t.Errorf("name: got %v", v)
	}
	if v, _ := node.Get("rating"); v != 5.0 {
		t.Errorf("rating must clamp to 5, got %v", v)
	}
	if v, _ := node.Get("testimonial_image.url"); v != "/ada.jpg" {
		t.Errorf("image: got %v", v)
	}
}

func TestBuildPriceTable(t *testing.T) {
	c := &component.RecognizedComponent{
		Type: component.TypePriceTable,
		Children: []*component.RecognizedComponent{
			{
				Type:  component.TypeUnknown,
				Props: map[string]string{"title": "Basic", "price": "$9", "features": "1 site|Email support"},
			},
			{
				Type:    component.TypeUnknown,
				Classes: []string{"plan", "featured"},
				Props:   map[string]string{"title": "Pro", "price": "$29", "period": "month"},
				Children: []*component.RecognizedComponent{
					{Type: component.TypeText, Text: "10 sites"},
					{Type: component.TypeText, Text: "Priority support"},
				},
			},
		},
	}

	node := newTestMapper().Map(c)
	plansAny, ok := node.Get("plans")
	if !ok {
		t.Fatalf("expected plans setting")
	}
	plans := plansAny.([]map[string]any)
	if len(plans) != 2 {
		t.Fatalf("expected 2 plans, got %d", len(plans))
	}

	basic := plans[0]
	if basic["title"] != "Basic" || basic["price"] != "$9" {
		t.Errorf("basic plan wrong: %v", basic)
	}
	if feats := basic["features"].([]string); len(feats) != 2 || feats[0] != "1 site" {
		t.Errorf("basic features wrong: %v", feats)
	}
	if basic["highlighted"] != false {
		t.Errorf("basic should not be highlighted")
	}

	pro := plans[1]
	if pro["highlighted"] != true {
		t.Errorf("featured class should mark plan highlighted")
	}
	if feats := pro["features"].([]string); len(feats) != 2 || feats[1] != "Priority support" {
		t.Errorf("pro features wrong: %v", feats)
	}
}

func TestBuildProgressBarClamps(t *testing.T) {
	tests := []struct {
		name     string
		props    map[string]string
		style    component.StyleSnapshot
		expected float64
	}{
		{"explicit percent", map[string]string{"percent": "65"}, nil, 65},
		{"over 100 clamps", map[string]string{"percent": "150"}, nil, 100},
		{"width fallback", nil, component.StyleSnapshot{"width": "40%"}, 40},
		{"no signal", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := newTestMapper().Map(&component.RecognizedComponent{
				Type:  component.TypeProgressBar,
				Props: tt.props,
				Style: tt.style,
			})
			if v, _ := node.Get("percent"); v != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, v)
			}
		})
	}
}

func TestBuildSocialIcons(t *testing.T) {
	node := newTestMapper().Map(&component.RecognizedComponent{
		Type: component.TypeSocialIcons,
		Children: []*component.RecognizedComponent{
			{Type: component.TypeUnknown, Props: map[string]string{"href": "https://facebook.com/acme"}},
			{Type: component.TypeUnknown, Props: map[string]string{"href": "https://x.com/acme"}},
			{Type: component.TypeUnknown, Props: map[string]string{"href": "https://example.com"}},
			{Type: component.TypeUnknown}, // no link, skipped
		},
	})
	icons, _ := node.Get("social_icon_list")
	list := icons.([]map[string]any)
	if len(list) != 3 {
		t.Fatalf("expected 3 icons, got %d", len(list))
	}
	if list[0]["social_icon"] != "fab fa-facebook" {
		t.Errorf("expected facebook icon, got %v", list[0]["social_icon"])
	}
	if list[1]["social_icon"] != "fab fa-twitter" {
		t.Errorf("x.com should map to twitter, got %v", list[1]["social_icon"])
	}
	if list[2]["social_icon"] != "fab fa-link" {
		t.Errorf("unknown host should map to generic link, got %v", list[2]["social_icon"])
	}
}

func TestBuildCounterFromText(t *testing.T) {
	cases := []struct {
		text string
		want float64
	}{
		{"1500", 1500},
		{"1,000+", 1000},
		{" 2,500,000 ", 2500000},
		{"n/a", 0},
	}
	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			node := newTestMapper().Map(&component.RecognizedComponent{
				Type: component.TypeCounter,
				Text: tc.text,
			})
			if v, _ := node.Get("ending_number"); v != tc.want {
				t.Errorf("expected %v, got %v", tc.want, v)
			}
		})
	}

	node := newTestMapper().Map(&component.RecognizedComponent{
		Type: component.TypeCounter,
		Text: "1500",
	})
	if v, _ := node.Get("starting_number"); v != 0.0 {
		t.Errorf("expected 0, got %v", v)
	}
}

func TestBuildTabsItems(t *testing.T) {
	node := newTestMapper().Map(&component.RecognizedComponent{
		Type: component.TypeTabs,
		Children: []*component.RecognizedComponent{
			{Type: component.TypeUnknown, Props: map[string]string{"title": "One"}, Text: "First"},
			{Type: component.TypeUnknown, Props: map[string]string{"title": "Two", "content": "Second"}},
		},
	})
	items, _ := node.Get("tabs")
	list := items.([]map[string]any)
	if len(list) != 2 {
		t.Fatalf("expected 2 tabs, got %d", len(list))
	}
	if list[0]["tab_title"] != "One" || list[0]["tab_content"] != "First" {
		t.Errorf("first tab wrong: %v", list[0])
	}
	if list[1]["tab_content"] != "Second" {
		t.Errorf("explicit content prop should win: %v", list[1])
	}
}

func TestBuildImageGallery(t *testing.T) {
	node := newTestMapper().Map(&component.RecognizedComponent{
		Type:  component.TypeImageGallery,
		Props: map[string]string{"columns": "4"},
		Children: []*component.RecognizedComponent{
			{Type: component.TypeImage, Props: map[string]string{"src": "/a.jpg", "alt": "A"}},
			{Type: component.TypeImage, Props: map[string]string{"src": "/b.jpg"}},
			{Type: component.TypeText, Text: "caption"}, // not an image, skipped
		},
	})
	gallery, _ := node.Get("gallery")
	images := gallery.([]map[string]any)
	if len(images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(images))
	}
	if images[0]["url"] != "/a.jpg" || images[0]["alt"] != "A" {
		t.Errorf("first image wrong: %v", images[0])
	}
	if v, _ := node.Get("gallery_columns"); v != 4 {
		t.Errorf("expected 4 columns, got %v", v)
	}
}

func TestBuildAlertClassification(t *testing.T) {
	tests := []struct {
		name     string
		classes  []string
		props    map[string]string
		expected string
	}{
		{"explicit prop", nil, map[string]string{"alertType": "success"}, "success"},
		{"danger class", []string{"alert", "alert-danger"}, nil, "danger"},
		{"error class", []string{"error-box"}, nil, "danger"},
		{"warning class", []string{"warning"}, nil, "warning"},
		{"default info", []string{"note"}, nil, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := newTestMapper().Map(&component.RecognizedComponent{
				Type:    component.TypeAlert,
				Classes: tt.classes,
				Props:   tt.props,
			})
			if v, _ := node.Get("alert_type"); v != tt.expected {
				t.Errorf("expected %s, got %v", tt.expected, v)
			}
		})
	}
}

func TestBuildVideoPlaylist(t *testing.T) {
	node := newTestMapper().Map(&component.RecognizedComponent{
		Type: component.TypeVideoPlaylist,
		Children: []*component.RecognizedComponent{
			{Type: component.TypeUnknown, Props: map[string]string{"src": "https://youtu.be/1", "title": "Intro", "duration": "2:30"}},
			{Type: component.TypeUnknown, Props: map[string]string{"url": "https://youtu.be/2"}, Text: "Part 2"},
			{Type: component.TypeUnknown}, // no source, skipped
		},
	})
	videos, _ := node.Get("playlist")
	list := videos.([]map[string]any)
	if len(list) != 2 {
		t.Fatalf("expected 2 videos, got %d", len(list))
	}
	if list[0]["title"] != "Intro" || list[0]["duration"] != "2:30" {
		t.Errorf("first video wrong: %v", list[0])
	}
	if list[1]["title"] != "Part 2" {
		t.Errorf("text should fall back as title: %v", list[1])
	}
}
