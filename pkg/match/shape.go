package match

import (
	"regexp"
	"strconv"
	"strings"
)

// Shape is the duck-typed "value shape" of a style literal. It buckets
// candidates during matching so a spacing value is never scored against a
// color, and so on. The set is closed.
type Shape string

const (
	ShapeColor      Shape = "color"
	ShapePixel      Shape = "pixel"
	ShapeRem        Shape = "rem"
	ShapeEm         Shape = "em"
	ShapeFontWeight Shape = "font-weight"
	ShapeNumber     Shape = "number"
	ShapeString     Shape = "string"
)

var (
	hexShapeRe  = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	rgbShapeRe  = regexp.MustCompile(`^(?i)rgba?\(`)
	pixelRe     = regexp.MustCompile(`^-?\d*\.?\d+px$`)
	remRe       = regexp.MustCompile(`^-?\d*\.?\d+rem$`)
	emRe        = regexp.MustCompile(`^-?\d*\.?\d+em$`)
	numberRe    = regexp.MustCompile(`^-?\d*\.?\d+$`)
	weightWords = map[string]bool{"normal": true, "bold": true, "bolder": true, "lighter": true}
)

// DetectShape classifies a literal into its value shape.
//
// Bare integers that are multiples of 100 in [100,900] are treated as font
// weights, not numbers; that is how they appear in stylesheets.
func DetectShape(value string) Shape {
	v := strings.TrimSpace(value)
	lower := strings.ToLower(v)

	switch {
	case hexShapeRe.MatchString(v), rgbShapeRe.MatchString(v):
		return ShapeColor
	case pixelRe.MatchString(lower):
		return ShapePixel
	case remRe.MatchString(lower):
		return ShapeRem
	case emRe.MatchString(lower):
		return ShapeEm
	case weightWords[lower]:
		return ShapeFontWeight
	case numberRe.MatchString(v):
		if n, err := strconv.Atoi(v); err == nil && n >= 100 && n <= 900 && n%100 == 0 {
			return ShapeFontWeight
		}
		return ShapeNumber
	}
	return ShapeString
}

// Magnitude returns the numeric part of a pixel/rem/em/number literal.
// The bool is false when the literal has no leading number.
func Magnitude(value string) (float64, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, suffix := range []string{"px", "rem", "em"} {
		v = strings.TrimSuffix(v, suffix)
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
