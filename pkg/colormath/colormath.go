// Package colormath provides sRGB color conversions and WCAG 2.1
// luminance/contrast math. All functions are pure; nothing here touches
// the catalog.
package colormath

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// RGB holds 8-bit color channels in the 0-255 range.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HSL holds a color as hue (degrees, [0,360)), saturation and lightness
// (integer percent, [0,100]).
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// Level classifies a contrast ratio against the WCAG 2.1 normal-text thresholds.
type Level string

const (
	LevelFail Level = "fail"
	LevelAA   Level = "AA"
	LevelAAA  Level = "AAA"
)

// WCAG 2.1 normal-text thresholds.
const (
	aaThreshold  = 4.5
	aaaThreshold = 7.0
)

// Grade is the pass/fail breakdown for a contrast ratio.
type Grade struct {
	PassesAA  bool  `json:"passes_aa"`
	PassesAAA bool  `json:"passes_aaa"`
	Level     Level `json:"level"`
}

var rgbFuncRe = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*[\d.]+\s*)?\)$`)

// HexToRGB parses a 3- or 6-digit hex color, with or without a leading "#".
func HexToRGB(hex string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	switch len(h) {
	case 3:
		// Expand shorthand: "0af" -> "00aaff".
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
	default:
		return RGB{}, fmt.Errorf("invalid hex color %q: expected 3 or 6 hex digits", hex)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}

	return RGB{
		R: int(v >> 16 & 0xff),
		G: int(v >> 8 & 0xff),
		B: int(v & 0xff),
	}, nil
}

// ParseColor parses a hex literal or an rgb()/rgba() call.
// Anything else is an error; callers must never coerce to a default color.
func ParseColor(s string) (RGB, error) {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "#") {
		return HexToRGB(s)
	}
	if m := rgbFuncRe.FindStringSubmatch(strings.ToLower(s)); m != nil {
		r, _ := strconv.Atoi(m[1])
		g, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		if r > 255 || g > 255 || b > 255 {
			return RGB{}, fmt.Errorf("invalid rgb color %q: channel out of range", s)
		}
		return RGB{R: r, G: g, B: b}, nil
	}
	// Bare hex digits without "#" still count as hex.
	if len(s) == 3 || len(s) == 6 {
		if rgb, err := HexToRGB(s); err == nil {
			return rgb, nil
		}
	}
	return RGB{}, fmt.Errorf("unparseable color %q: not hex or rgb()", s)
}

// RGBToHSL converts via the standard min/max-channel algorithm.
// Hue is rounded to the nearest degree, saturation and lightness to the
// nearest percent. Achromatic colors yield hue=0, saturation=0.
func RGBToHSL(c RGB) HSL {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2.0

	if max == min {
		return HSL{H: 0, S: 0, L: roundPercent(l)}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2.0 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60

	hi := int(math.Round(h)) % 360
	if hi < 0 {
		hi += 360
	}
	return HSL{H: hi, S: roundPercent(s), L: roundPercent(l)}
}

func roundPercent(v float64) int {
	return int(math.Round(v * 100))
}

// RelativeLuminance computes WCAG relative luminance with the ITU-R BT.709
// channel weights.
func RelativeLuminance(c RGB) float64 {
	return 0.2126*linearize(float64(c.R)/255.0) +
		0.7152*linearize(float64(c.G)/255.0) +
		0.0722*linearize(float64(c.B)/255.0)
}

// linearize gamma-decodes one sRGB channel (WCAG 2.1 definition).
func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio computes the WCAG contrast ratio between two textual colors
// (hex or rgb()/rgba()). The result is always >= 1.
func ContrastRatio(colorA, colorB string) (float64, error) {
	a, err := ParseColor(colorA)
	if err != nil {
		return 0, err
	}
	b, err := ParseColor(colorB)
	if err != nil {
		return 0, err
	}
	return ContrastRatioRGB(a, b), nil
}

// ContrastRatioRGB computes the contrast ratio between two parsed colors.
func ContrastRatioRGB(a, b RGB) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// Classify grades a ratio against the AA/AAA thresholds. The comparison uses
// the full-precision ratio; use Round2 only when reporting.
func Classify(ratio float64) Grade {
	g := Grade{
		PassesAA:  ratio >= aaThreshold,
		PassesAAA: ratio >= aaaThreshold,
	}
	switch {
	case g.PassesAAA:
		g.Level = LevelAAA
	case g.PassesAA:
		g.Level = LevelAA
	default:
		g.Level = LevelFail
	}
	return g
}

// Round2 rounds a ratio to two decimal places for reporting.
func Round2(ratio float64) float64 {
	return math.Round(ratio*100) / 100
}
