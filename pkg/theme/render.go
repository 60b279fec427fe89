package theme

import (
	"fmt"
	"strings"

	"github.com/gnana997/tokensmith/pkg/catalog"
)

// categoryOrder fixes the rendering order of token categories.
var categoryOrder = []string{
	catalog.CategoryColor,
	catalog.CategorySpacing,
	catalog.CategoryTypography,
	catalog.CategoryBorder,
	catalog.CategoryShadow,
}

// RenderCSS emits the theme as one :root custom-property block, grouped by
// category.
//
// In override mode values are emitted raw: the color tokens are already HSL
// component sub-tokens (or literal colors) carried by the catalog. In
// full-generation mode each color role's hex is expanded into three HSL
// component properties (-h/-s/-l); the modes are not value-compatible.
func (t *Theme) RenderCSS() string {
	byCategory := make(map[string][]catalog.Token)
	for _, tok := range t.Tokens {
		byCategory[tok.Category] = append(byCategory[tok.Category], tok)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "/* theme: %s (%s) */\n", t.Brand, t.Mode)
	b.WriteString(":root {\n")

	for _, cat := range categoryOrder {
		tokens := byCategory[cat]
		if len(tokens) == 0 {
			continue
		}
		fmt.Fprintf(&b, "  /* %s */\n", cat)
		for _, tok := range tokens {
			if t.Mode == ModeFullGeneration && tok.Category == catalog.CategoryColor {
				writeHSLComponents(&b, tok)
				continue
			}
			fmt.Fprintf(&b, "  --%s: %s;\n", tok.Name, tok.Value)
		}
	}

	b.WriteString("}\n")
	return b.String()
}

// writeHSLComponents expands one hex-valued color token into -h/-s/-l
// custom properties. Assemble already validated the hex, so a parse failure
// here falls back to the raw value rather than dropping the token.
func writeHSLComponents(b *strings.Builder, tok catalog.Token) {
	hsl, err := HexToHSL(tok.Value)
	if err != nil {
		fmt.Fprintf(b, "  --%s: %s;\n", tok.Name, tok.Value)
		return
	}
	fmt.Fprintf(b, "  --%s-h: %d;\n", tok.Name, hsl.H)
	fmt.Fprintf(b, "  --%s-s: %d%%;\n", tok.Name, hsl.S)
	fmt.Fprintf(b, "  --%s-l: %d%%;\n", tok.Name, hsl.L)
}
