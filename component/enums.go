package component

import "strings"

// ComponentType is the closed set of recognized component kinds produced by
// the upstream page analyzer.
// ENUM(unknown, button, heading, text, image, icon, spacer, divider, icon-box,
// star-rating, social-icons, progress-bar, counter, testimonial,
// image-carousel, posts-grid, call-to-action, price-list, price-table, alert,
// tabs, toggle, flip-box, image-gallery, video-playlist)
type ComponentType int

const (
	TypeUnknown ComponentType = iota
	TypeButton
	TypeHeading
	TypeText
	TypeImage
	TypeIcon
	TypeSpacer
	TypeDivider
	TypeIconBox
	TypeStarRating
	TypeSocialIcons
	TypeProgressBar
	TypeCounter
	TypeTestimonial
	TypeImageCarousel
	TypePostsGrid
	TypeCallToAction
	TypePriceList
	TypePriceTable
	TypeAlert
	TypeTabs
	TypeToggle
	TypeFlipBox
	TypeImageGallery
	TypeVideoPlaylist
)

var typeNames = map[ComponentType]string{
	TypeUnknown:       "unknown",
	TypeButton:        "button",
	TypeHeading:       "heading",
	TypeText:          "text",
	TypeImage:         "image",
	TypeIcon:          "icon",
	TypeSpacer:        "spacer",
	TypeDivider:       "divider",
	TypeIconBox:       "icon-box",
	TypeStarRating:    "star-rating",
	TypeSocialIcons:   "social-icons",
	TypeProgressBar:   "progress-bar",
	TypeCounter:       "counter",
	TypeTestimonial:   "testimonial",
	TypeImageCarousel: "image-carousel",
	TypePostsGrid:     "posts-grid",
	TypeCallToAction:  "call-to-action",
	TypePriceList:     "price-list",
	TypePriceTable:    "price-table",
	TypeAlert:         "alert",
	TypeTabs:          "tabs",
	TypeToggle:        "toggle",
	TypeFlipBox:       "flip-box",
	TypeImageGallery:  "image-gallery",
	TypeVideoPlaylist: "video-playlist",
}

func (t ComponentType) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "unknown"
}

// synonyms maps analyzer aliases onto canonical component types.
var synonyms = map[string]ComponentType{
	"paragraph":     TypeText,
	"accordion":     TypeToggle,
	"carousel":      TypeImageCarousel,
	"slider":        TypeImageCarousel,
	"image-slider":  TypeImageCarousel,
	"gallery":       TypeImageGallery,
	"pricing-table": TypePriceTable,
	"pricing-list":  TypePriceList,
	"cta":           TypeCallToAction,
	"faq":           TypeToggle,
	"rating":        TypeStarRating,
}

// ParseComponentType resolves name, including analyzer synonyms, into a
// ComponentType. Unrecognized names map to TypeUnknown.
func ParseComponentType(name string) ComponentType {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range typeNames {
		if n == name {
			return t
		}
	}
	if t, ok := synonyms[name]; ok {
		return t
	}
	return TypeUnknown
}

// Breakpoint identifies one responsive style snapshot.
// ENUM(mobile, tablet, laptop, desktop)
type Breakpoint string

const (
	BreakpointMobile  Breakpoint = "mobile"
	BreakpointTablet  Breakpoint = "tablet"
	BreakpointLaptop  Breakpoint = "laptop"
	BreakpointDesktop Breakpoint = "desktop"
)

// Breakpoints lists all breakpoints in ascending viewport order.
var Breakpoints = []Breakpoint{BreakpointMobile, BreakpointTablet, BreakpointLaptop, BreakpointDesktop}
