// Package extract recognizes literal style values embedded in arbitrary
// source text. It is deliberately not a CSS parser: each value kind is a
// regex-level pattern rule, applied independently over the raw text.
package extract

import (
	"regexp"
	"strings"
)

// Kind identifies what sort of style literal was extracted.
// Kinds mirror the token categories, at finer grain for typography.
type Kind string

const (
	KindColor        Kind = "color"
	KindSpacing      Kind = "spacing"
	KindFontSize     Kind = "font-size"
	KindFontWeight   Kind = "font-weight"
	KindFontFamily   Kind = "font-family"
	KindBorderRadius Kind = "border-radius"
	KindShadow       Kind = "shadow"
	KindUnknown      Kind = "unknown"
)

// Value is one extracted style literal. Values are transient: produced per
// scan, consumed by matching, never stored.
type Value struct {
	Kind     Kind   `json:"kind"`
	Literal  string `json:"literal"`
	Property string `json:"property,omitempty"` // originating CSS property, "" when property-agnostic
	Line     int    `json:"line"`               // 1-based
}

// rule is one extraction pattern. The regex either captures the literal in
// group 1 (property-bound rules, with the property name in a named or fixed
// position) or matches the literal wholesale (property-agnostic rules).
type rule struct {
	kind Kind
	re   *regexp.Regexp
	// literalGroup is the submatch index holding the literal.
	// 0 means the whole match is the literal.
	literalGroup int
	// propertyGroup is the submatch index holding the property name, or 0
	// when the rule is property-agnostic.
	propertyGroup int
}

// spacingProperties is the fixed set of box-model property names whose
// numeric values are treated as spacing literals.
const spacingProperties = `padding|margin|gap|width|height|top|bottom|left|right`

// rules drives extraction. New kinds are added here, not in Extract.
//
// Color rules are property-agnostic on purpose: a bare hex anywhere in the
// text is still a color literal even outside a declaration. Every other kind
// requires its exact CSS property name and a colon.
var rules = []rule{
	{kind: KindColor, re: regexp.MustCompile(`#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{3})\b`)},
	{kind: KindColor, re: regexp.MustCompile(`(?i)rgba?\(\s*\d{1,3}\s*,\s*\d{1,3}\s*,\s*\d{1,3}\s*(?:,\s*[\d.]+\s*)?\)`)},
	{
		kind:          KindSpacing,
		re:            regexp.MustCompile(`(?i)\b(` + spacingProperties + `)\s*:\s*(-?\d*\.?\d+(?:px|rem|em))\b`),
		literalGroup:  2,
		propertyGroup: 1,
	},
	{
		kind:          KindFontSize,
		re:            regexp.MustCompile(`(?i)\b(font-size)\s*:\s*(\d*\.?\d+(?:px|rem|em))\b`),
		literalGroup:  2,
		propertyGroup: 1,
	},
	{
		kind:          KindFontWeight,
		re:            regexp.MustCompile(`(?i)\b(font-weight)\s*:\s*([1-9]00|normal|bold|bolder|lighter)\b`),
		literalGroup:  2,
		propertyGroup: 1,
	},
	{
		kind:          KindFontFamily,
		re:            regexp.MustCompile(`(?i)\b(font-family)\s*:\s*([^;}\n]+)`),
		literalGroup:  2,
		propertyGroup: 1,
	},
	{
		kind:          KindBorderRadius,
		re:            regexp.MustCompile(`(?i)\b(border-radius)\s*:\s*(\d*\.?\d+(?:px|rem|em|%))\b`),
		literalGroup:  2,
		propertyGroup: 1,
	},
	{
		kind:          KindShadow,
		re:            regexp.MustCompile(`(?i)\b(box-shadow)\s*:\s*([^;}\n]+)`),
		literalGroup:  2,
		propertyGroup: 1,
	},
}

// Extract scans text with every rule and returns the extracted values in
// rule order. A literal already extracted under one kind is never re-tagged
// with a second kind, but the same literal may appear twice under the same
// kind (e.g. two padding declarations).
func Extract(text string) []Value {
	var values []Value
	kindOf := make(map[string]Kind)

	for _, r := range rules {
		for _, loc := range r.re.FindAllStringSubmatchIndex(text, -1) {
			v := Value{Kind: r.kind}

			start, end := loc[0], loc[1]
			if r.literalGroup > 0 {
				start, end = loc[2*r.literalGroup], loc[2*r.literalGroup+1]
			}
			v.Literal = strings.TrimSpace(text[start:end])

			if r.propertyGroup > 0 {
				v.Property = strings.ToLower(text[loc[2*r.propertyGroup]:loc[2*r.propertyGroup+1]])
			}

			if prev, seen := kindOf[v.Literal]; seen && prev != r.kind {
				continue
			}
			kindOf[v.Literal] = r.kind

			v.Line = 1 + strings.Count(text[:loc[0]], "\n")
			values = append(values, v)
		}
	}

	return values
}

// Category maps an extraction kind to its token category.
func (k Kind) Category() string {
	switch k {
	case KindColor:
		return "color"
	case KindSpacing:
		return "spacing"
	case KindFontSize, KindFontWeight, KindFontFamily:
		return "typography"
	case KindBorderRadius:
		return "border"
	case KindShadow:
		return "shadow"
	}
	return ""
}
