// Package cssval parses computed CSS values into structured dimensions and
// shadows. All parsers are total: unparsable input is reported as absence,
// never as an error, so a partially broken upstream snapshot degrades to
// missing styling instead of failing the conversion.
package cssval

import (
	"math"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Unit is a CSS length unit or a dimension keyword.
type Unit string

const (
	UnitPx   Unit = "px"
	UnitEm   Unit = "em"
	UnitRem  Unit = "rem"
	UnitPct  Unit = "%"
	UnitVh   Unit = "vh"
	UnitVw   Unit = "vw"
	UnitVmin Unit = "vmin"
	UnitVmax Unit = "vmax"
	UnitCh   Unit = "ch"
	UnitEx   Unit = "ex"
	UnitCm   Unit = "cm"
	UnitMm   Unit = "mm"
	UnitIn   Unit = "in"
	UnitPt   Unit = "pt"
	UnitPc   Unit = "pc"

	// Keyword dimensions carry no numeric value.
	UnitAuto    Unit = "auto"
	UnitInherit Unit = "inherit"
	UnitInitial Unit = "initial"
)

// ParseUnit matches s against the closed unit grammar.
func ParseUnit(s string) (Unit, bool) {
	switch Unit(strings.ToLower(s)) {
	case UnitPx, UnitEm, UnitRem, UnitPct, UnitVh, UnitVw, UnitVmin, UnitVmax,
		UnitCh, UnitEx, UnitCm, UnitMm, UnitIn, UnitPt, UnitPc,
		UnitAuto, UnitInherit, UnitInitial:
		return Unit(strings.ToLower(s)), true
	}
	return "", false
}

// IsKeyword returns true for auto/inherit/initial.
func (u Unit) IsKeyword() bool {
	return u == UnitAuto || u == UnitInherit || u == UnitInitial
}

// ParsedDimension is a single CSS length value.
type ParsedDimension struct {
	Value        float64
	Unit         Unit
	Original     string
	IsResponsive bool
}

// responsiveUnit reports units whose rendered size depends on the viewport.
func responsiveUnit(u Unit) bool {
	switch u {
	case UnitPct, UnitVh, UnitVw, UnitVmin, UnitVmax:
		return true
	}
	return false
}

// ParseDimension parses a single dimension string ("10px", "1.5em", "50%",
// "auto"). Unmatched or empty input yields nil, false. A bare "0" is accepted
// as zero pixels; any other unitless number is rejected.
func ParseDimension(raw string) (*ParsedDimension, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, false
	}

	lexer := css.NewLexer(parse.NewInput(strings.NewReader(s)))
	tt, data := lexer.Next()

	var d ParsedDimension
	switch tt {
	case css.DimensionToken:
		num, unitStr := splitDimension(string(data))
		unit, ok := ParseUnit(unitStr)
		if !ok || unit.IsKeyword() {
			return nil, false
		}
		d = ParsedDimension{Value: num, Unit: unit}
	case css.PercentageToken:
		num, _ := strconv.ParseFloat(strings.TrimSuffix(string(data), "%"), 64)
		d = ParsedDimension{Value: num, Unit: UnitPct}
	case css.NumberToken:
		num, err := strconv.ParseFloat(string(data), 64)
		if err != nil || num != 0 {
			return nil, false
		}
		d = ParsedDimension{Value: 0, Unit: UnitPx}
	case css.IdentToken:
		unit, ok := ParseUnit(string(data))
		if !ok || !unit.IsKeyword() {
			return nil, false
		}
		d = ParsedDimension{Value: 0, Unit: unit}
	default:
		return nil, false
	}

	// The whole input must be a single token.
	if tt, _ := lexer.Next(); tt != css.ErrorToken {
		return nil, false
	}

	d.Original = s
	d.IsResponsive = responsiveUnit(d.Unit)
	return &d, true
}

// splitDimension separates the numeric part from the unit part of a
// dimension token.
func splitDimension(s string) (float64, string) {
	numEnd := 0
	for i, r := range s {
		if r >= '0' && r <= '9' || r == '.' || r == '-' || r == '+' {
			numEnd = i + 1
		} else {
			break
		}
	}
	if numEnd == 0 {
		return 0, s
	}
	num, _ := strconv.ParseFloat(s[:numEnd], 64)
	return num, s[numEnd:]
}

// pxPerUnit returns how many pixels one unit of u represents, using base as
// the em/rem reference size. Viewport and keyword units are not convertible.
func pxPerUnit(u Unit, base float64) (float64, bool) {
	if base <= 0 {
		base = 16
	}
	switch u {
	case UnitPx:
		return 1, true
	case UnitEm, UnitRem:
		return base, true
	case UnitPt:
		return 1.333, true
	case UnitPc:
		return 16, true
	case UnitIn:
		return 96, true
	case UnitCm:
		return 37.8, true
	case UnitMm:
		return 3.78, true
	}
	return 0, false
}

// ConvertToUnit converts d to the target unit using a fixed px-per-unit
// table. base is the em/rem reference size; pass 0 for the default of 16.
// Conversion is symmetric within rounding to two decimals. Percentages,
// viewport units and keywords are not convertible.
func ConvertToUnit(d ParsedDimension, target Unit, base float64) (*ParsedDimension, bool) {
	from, ok := pxPerUnit(d.Unit, base)
	if !ok {
		return nil, false
	}
	to, ok := pxPerUnit(target, base)
	if !ok {
		return nil, false
	}
	v := math.Round(d.Value*from/to*100) / 100
	out := ParsedDimension{Value: v, Unit: target, IsResponsive: responsiveUnit(target)}
	out.Original = FormatDimension(out)
	return &out, true
}

// FormatDimension renders d back to CSS text. It is the exact inverse of
// ParseDimension for values that came from it.
func FormatDimension(d ParsedDimension) string {
	if d.Unit.IsKeyword() {
		return string(d.Unit)
	}
	return strconv.FormatFloat(d.Value, 'f', -1, 64) + string(d.Unit)
}
