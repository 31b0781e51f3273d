package cssval

import "strings"

// DimensionSet holds up to four side dimensions produced by expanding a CSS
// 1/2/3/4-value shorthand.
type DimensionSet struct {
	Top    *ParsedDimension
	Right  *ParsedDimension
	Bottom *ParsedDimension
	Left   *ParsedDimension
}

// IsEmpty returns true when no side is set.
func (s DimensionSet) IsEmpty() bool {
	return s.Top == nil && s.Right == nil && s.Bottom == nil && s.Left == nil
}

// ParseShorthand expands a whitespace-separated shorthand into a
// DimensionSet. Expansion follows CSS conventions: one value sets all sides,
// two set vertical/horizontal, three set top/horizontal/bottom, four set
// top/right/bottom/left. Any token that fails dimension parsing invalidates
// the whole shorthand.
func ParseShorthand(raw string) (*DimensionSet, bool) {
	fields := strings.Fields(raw)
	if len(fields) == 0 || len(fields) > 4 {
		return nil, false
	}

	dims := make([]*ParsedDimension, 0, len(fields))
	for _, f := range fields {
		d, ok := ParseDimension(f)
		if !ok {
			return nil, false
		}
		dims = append(dims, d)
	}

	set := &DimensionSet{}
	switch len(dims) {
	case 1:
		set.Top, set.Right, set.Bottom, set.Left = clone(dims[0]), clone(dims[0]), clone(dims[0]), clone(dims[0])
	case 2:
		set.Top, set.Bottom = clone(dims[0]), clone(dims[0])
		set.Right, set.Left = clone(dims[1]), clone(dims[1])
	case 3:
		set.Top = dims[0]
		set.Right, set.Left = clone(dims[1]), clone(dims[1])
		set.Bottom = dims[2]
	case 4:
		set.Top, set.Right, set.Bottom, set.Left = dims[0], dims[1], dims[2], dims[3]
	}
	return set, true
}

func clone(d *ParsedDimension) *ParsedDimension {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}

// FormatDimensionSet collapses a set back to the shortest CSS shorthand,
// using the same precedence as shorthand output conventions: all equal, then
// vertical/horizontal, then top/horizontal/bottom, then four values. Missing
// sides render as "0".
func FormatDimensionSet(s DimensionSet) string {
	t, r, b, l := sideText(s.Top), sideText(s.Right), sideText(s.Bottom), sideText(s.Left)
	switch {
	case t == r && r == b && b == l:
		return t
	case t == b && r == l:
		return t + " " + r
	case r == l:
		return t + " " + r + " " + b
	default:
		return t + " " + r + " " + b + " " + l
	}
}

func sideText(d *ParsedDimension) string {
	if d == nil {
		return "0"
	}
	return FormatDimension(*d)
}

// BoxModel aggregates the spacing and sizing dimensions of one component.
type BoxModel struct {
	Margin  DimensionSet
	Padding DimensionSet
	Border  DimensionSet

	Width     *ParsedDimension
	Height    *ParsedDimension
	MinWidth  *ParsedDimension
	MaxWidth  *ParsedDimension
	MinHeight *ParsedDimension
	MaxHeight *ParsedDimension
}

// BuildBoxModel assembles a BoxModel from a computed style snapshot keyed by
// camelCase property names. A shorthand property is preferred when present;
// otherwise the set is assembled from the four longhand properties.
func BuildBoxModel(style map[string]string) BoxModel {
	return BoxModel{
		Margin:    buildSet(style, "margin", "marginTop", "marginRight", "marginBottom", "marginLeft"),
		Padding:   buildSet(style, "padding", "paddingTop", "paddingRight", "paddingBottom", "paddingLeft"),
		Border:    buildSet(style, "borderWidth", "borderTopWidth", "borderRightWidth", "borderBottomWidth", "borderLeftWidth"),
		Width:     dimOrNil(style["width"]),
		Height:    dimOrNil(style["height"]),
		MinWidth:  dimOrNil(style["minWidth"]),
		MaxWidth:  dimOrNil(style["maxWidth"]),
		MinHeight: dimOrNil(style["minHeight"]),
		MaxHeight: dimOrNil(style["maxHeight"]),
	}
}

func buildSet(style map[string]string, shorthand, top, right, bottom, left string) DimensionSet {
	if v, ok := style[shorthand]; ok {
		if set, ok := ParseShorthand(v); ok {
			return *set
		}
	}
	return DimensionSet{
		Top:    dimOrNil(style[top]),
		Right:  dimOrNil(style[right]),
		Bottom: dimOrNil(style[bottom]),
		Left:   dimOrNil(style[left]),
	}
}

func dimOrNil(v string) *ParsedDimension {
	d, ok := ParseDimension(v)
	if !ok {
		return nil
	}
	return d
}
