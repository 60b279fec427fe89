// Package theme derives brand color components and assembles full token
// sets, either by overriding a static catalog's base HSL tokens or by
// generating a complete token list from scratch.
package theme

import (
	"fmt"

	"github.com/gnana997/tokensmith/pkg/catalog"
	"github.com/gnana997/tokensmith/pkg/colormath"
)

// Mode selects the assembly strategy. The two modes produce token sets with
// different shapes (HSL component tokens vs flat hex values) and are never
// mixed within one invocation.
type Mode string

const (
	// ModeOverride starts from the static catalog and replaces the base
	// hue/saturation/lightness tokens of each overridden color family.
	ModeOverride Mode = "override"

	// ModeFullGeneration ignores the catalog and synthesizes a complete
	// token list from built-in scale tables plus per-role hex colors.
	ModeFullGeneration Mode = "full-generation"
)

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeOverride, ModeFullGeneration:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown theme mode %q (want %q or %q)", s, ModeOverride, ModeFullGeneration)
}

// colorFamilies are the brand color families an override-mode caller may
// supply: primary, neutral, and the four alert families.
var colorFamilies = []string{"primary", "neutral", "success", "info", "warning", "danger"}

// colorRoles are the ten semantic roles a full-generation theme carries.
var colorRoles = []string{
	"primary", "secondary", "background", "surface", "text",
	"text-muted", "success", "info", "warning", "danger",
}

// defaultRoleColors supplies full-generation defaults for roles the caller
// leaves out.
var defaultRoleColors = map[string]string{
	"primary":    "#2D6FDB",
	"secondary":  "#6C757D",
	"background": "#FFFFFF",
	"surface":    "#F8F9FA",
	"text":       "#212529",
	"text-muted": "#6C757D",
	"success":    "#28A745",
	"info":       "#17A2B8",
	"warning":    "#FFC107",
	"danger":     "#DC3545",
}

// Theme is an assembled token set for one brand.
type Theme struct {
	Brand  string          `json:"brand"`
	Mode   Mode            `json:"mode"`
	Tokens []catalog.Token `json:"tokens"`
}

// HexToHSL converts a brand hex color into the three HSL components that
// drive the scale-based color system. Hue is rounded to the nearest degree,
// saturation and lightness to the nearest percent.
func HexToHSL(hex string) (colormath.HSL, error) {
	rgb, err := colormath.HexToRGB(hex)
	if err != nil {
		return colormath.HSL{}, err
	}
	return colormath.RGBToHSL(rgb), nil
}

// Assemble builds a theme for brand in the given mode. colorOverrides maps a
// family name (override mode) or role name (full-generation mode) to a hex
// color; unknown keys and malformed hex values are errors. cat is required
// in override mode and ignored otherwise.
func Assemble(brand string, colorOverrides map[string]string, mode Mode, cat *catalog.Catalog) (*Theme, error) {
	switch mode {
	case ModeOverride:
		if cat == nil {
			return nil, fmt.Errorf("override mode requires a catalog")
		}
		return assembleOverride(brand, colorOverrides, cat)
	case ModeFullGeneration:
		return assembleFullGeneration(brand, colorOverrides)
	}
	return nil, fmt.Errorf("unknown theme mode %q", mode)
}

// familyTokenNames returns the three base HSL token names for a family.
func familyTokenNames(family string) (hue, sat, light string) {
	return "color-" + family + "-hue",
		"color-" + family + "-saturation",
		"color-" + family + "-lightness"
}

// assembleOverride copies the catalog and swaps the base HSL tokens of every
// overridden family. Non-color tokens and non-overridden families pass
// through untouched.
func assembleOverride(brand string, overrides map[string]string, cat *catalog.Catalog) (*Theme, error) {
	known := make(map[string]bool, len(colorFamilies))
	for _, f := range colorFamilies {
		known[f] = true
	}

	replacements := make(map[string]string)
	for family, hex := range overrides {
		if !known[family] {
			return nil, fmt.Errorf("unknown color family %q (want one of %v)", family, colorFamilies)
		}
		hsl, err := HexToHSL(hex)
		if err != nil {
			return nil, fmt.Errorf("family %q: %w", family, err)
		}
		hueName, satName, lightName := familyTokenNames(family)
		replacements[hueName] = fmt.Sprintf("%d", hsl.H)
		replacements[satName] = fmt.Sprintf("%d%%", hsl.S)
		replacements[lightName] = fmt.Sprintf("%d%%", hsl.L)
	}

	tokens := make([]catalog.Token, len(cat.Tokens))
	copy(tokens, cat.Tokens)
	for i := range tokens {
		if v, ok := replacements[tokens[i].Name]; ok {
			tokens[i].Value = v
			delete(replacements, tokens[i].Name)
		}
	}

	// Base HSL tokens the catalog does not carry yet are appended so the
	// theme stands alone.
	for _, family := range colorFamilies {
		for _, name := range famNames(family) {
			if v, ok := replacements[name]; ok {
				tokens = append(tokens, catalog.Token{
					Name:     name,
					Value:    v,
					Category: catalog.CategoryColor,
				})
			}
		}
	}

	return &Theme{Brand: brand, Mode: ModeOverride, Tokens: tokens}, nil
}

func famNames(family string) []string {
	h, s, l := familyTokenNames(family)
	return []string{h, s, l}
}

// assembleFullGeneration synthesizes a complete flat token list from the
// generator tables plus per-role hex colors. The catalog is not consulted.
func assembleFullGeneration(brand string, colors map[string]string) (*Theme, error) {
	known := make(map[string]bool, len(colorRoles))
	for _, r := range colorRoles {
		known[r] = true
	}
	for role, hex := range colors {
		if !known[role] {
			return nil, fmt.Errorf("unknown color role %q (want one of %v)", role, colorRoles)
		}
		if _, err := colormath.HexToRGB(hex); err != nil {
			return nil, fmt.Errorf("role %q: %w", role, err)
		}
	}

	var tokens []catalog.Token

	// Color roles first: supplied hex values stay flat, no HSL
	// decomposition at assembly time.
	for _, role := range colorRoles {
		hex, ok := colors[role]
		if !ok {
			hex = defaultRoleColors[role]
		}
		tokens = append(tokens, catalog.Token{
			Name:     "color-" + role,
			Value:    hex,
			Category: catalog.CategoryColor,
		})
	}

	for _, t := range generatorScales {
		tokens = append(tokens, t)
	}

	return &Theme{Brand: brand, Mode: ModeFullGeneration, Tokens: tokens}, nil
}

// generatorScales are the fixed non-color scales for full-generation mode:
// spacing, typography, border, and shadow steps.
var generatorScales = []catalog.Token{
	{Name: "spacing-xs", Value: "4px", Category: catalog.CategorySpacing},
	{Name: "spacing-sm", Value: "8px", Category: catalog.CategorySpacing},
	{Name: "spacing-md", Value: "16px", Category: catalog.CategorySpacing},
	{Name: "spacing-lg", Value: "24px", Category: catalog.CategorySpacing},
	{Name: "spacing-xl", Value: "32px", Category: catalog.CategorySpacing},
	{Name: "spacing-2xl", Value: "48px", Category: catalog.CategorySpacing},

	{Name: "font-family-base", Value: "Inter, system-ui, sans-serif", Category: catalog.CategoryTypography},
	{Name: "font-size-sm", Value: "14px", Category: catalog.CategoryTypography},
	{Name: "font-size-base", Value: "16px", Category: catalog.CategoryTypography},
	{Name: "font-size-lg", Value: "18px", Category: catalog.CategoryTypography},
	{Name: "font-size-xl", Value: "20px", Category: catalog.CategoryTypography},
	{Name: "font-weight-normal", Value: "400", Category: catalog.CategoryTypography},
	{Name: "font-weight-medium", Value: "500", Category: catalog.CategoryTypography},
	{Name: "font-weight-bold", Value: "700", Category: catalog.CategoryTypography},

	{Name: "radius-sm", Value: "2px", Category: catalog.CategoryBorder},
	{Name: "radius-md", Value: "6px", Category: catalog.CategoryBorder},
	{Name: "radius-lg", Value: "12px", Category: catalog.CategoryBorder},
	{Name: "radius-full", Value: "9999px", Category: catalog.CategoryBorder},
	{Name: "border-width", Value: "1px", Category: catalog.CategoryBorder},

	{Name: "shadow-sm", Value: "0 1px 2px rgba(0,0,0,0.05)", Category: catalog.CategoryShadow},
	{Name: "shadow-md", Value: "0 4px 6px rgba(0,0,0,0.1)", Category: catalog.CategoryShadow},
	{Name: "shadow-lg", Value: "0 10px 15px rgba(0,0,0,0.1)", Category: catalog.CategoryShadow},
}
