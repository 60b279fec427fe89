package main

import (
	"fmt"
	"strings"

	"github.com/gnana997/tokensmith/pkg/catalog"
	"github.com/gnana997/tokensmith/pkg/colormath"
)

const maxWidth = 80

// runInspect prints a token, a component, or (with no name) a catalog
// summary in human-readable form.
func runInspect(args []string) error {
	var catalogFlag, name string
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--catalog":
			if i+1 >= len(args) {
				return fmt.Errorf("--catalog requires a path")
			}
			i++
			catalogFlag = args[i]
		case strings.HasPrefix(args[i], "--"):
			return fmt.Errorf("unknown flag: %s", args[i])
		default:
			name = args[i]
		}
	}

	cfg, err := loadProjectConfig()
	if err != nil {
		return fmt.Errorf("read project config: %w", err)
	}
	_, qs, err := openCatalog(resolveCatalogPath(catalogFlag, cfg))
	if err != nil {
		return err
	}

	if name == "" {
		printCatalogSummary(qs.Catalog)
		return nil
	}
	if tok, ok := qs.GetToken(name); ok {
		printTokenHuman(tok)
		return nil
	}
	if comp, ok := qs.GetComponent(name); ok {
		printComponentHuman(comp, qs.TokensFor(name))
		return nil
	}
	return fmt.Errorf("no token or component named %q", name)
}

func printCatalogSummary(cat *catalog.Catalog) {
	fmt.Printf("%s  v%s\n", cat.Name, cat.Version)
	if cat.Source != "" {
		fmt.Printf("  source: %s\n", cat.Source)
	}
	fmt.Println()

	counts := make(map[string]int)
	for _, tok := range cat.Tokens {
		counts[tok.Category]++
	}
	fmt.Printf("Tokens  (%d)\n", len(cat.Tokens))
	for _, c := range []string{
		catalog.CategoryColor,
		catalog.CategorySpacing,
		catalog.CategoryTypography,
		catalog.CategoryBorder,
		catalog.CategoryShadow,
	} {
		if counts[c] > 0 {
			fmt.Printf("  %-12s %d\n", c, counts[c])
		}
	}

	fmt.Println()
	if len(cat.Components) == 0 {
		fmt.Println("Components  (none)")
		return
	}
	fmt.Printf("Components  (%d)\n", len(cat.Components))
	nameWidth := 0
	for _, comp := range cat.Components {
		if len(comp.Name) > nameWidth {
			nameWidth = len(comp.Name)
		}
	}
	for _, comp := range cat.Components {
		padding := strings.Repeat(" ", nameWidth-len(comp.Name))
		fmt.Printf("  %s%s  %s\n", comp.Name, padding, comp.Description)
	}
}

func printTokenHuman(tok *catalog.Token) {
	fmt.Printf("%s  [%s]\n", tok.Name, tok.Category)
	fmt.Printf("  value: %s\n", tok.Value)
	if tok.Description != "" {
		printWrapped(tok.Description, 2, maxWidth)
	}

	// For parseable colors, show the derived forms too.
	if tok.Category == catalog.CategoryColor {
		if rgb, err := colormath.ParseColor(tok.Value); err == nil {
			hsl := colormath.RGBToHSL(rgb)
			fmt.Printf("  rgb:   rgb(%d, %d, %d)\n", rgb.R, rgb.G, rgb.B)
			fmt.Printf("  hsl:   hsl(%d, %d%%, %d%%)\n", hsl.H, hsl.S, hsl.L)
		}
	}
}

func printComponentHuman(comp *catalog.Component, tokens []catalog.Token) {
	fmt.Printf("%s\n", comp.Name)
	if comp.Description != "" {
		printWrapped(comp.Description, 0, maxWidth)
	}

	fmt.Println()
	if len(tokens) == 0 {
		fmt.Println("Tokens  (none)")
	} else {
		fmt.Println("Tokens")
		nameWidth := 0
		for _, tok := range tokens {
			if len(tok.Name) > nameWidth {
				nameWidth = len(tok.Name)
			}
		}
		for _, tok := range tokens {
			padding := strings.Repeat(" ", nameWidth-len(tok.Name))
			fmt.Printf("  %s%s  %s\n", tok.Name, padding, tok.Value)
		}
	}

	if comp.Usage != "" {
		fmt.Println()
		fmt.Println("Usage")
		printWrapped(comp.Usage, 2, maxWidth)
	}

	if len(comp.Examples) > 0 {
		fmt.Println()
		fmt.Println("Examples")
		for _, ex := range comp.Examples {
			fmt.Println()
			for _, line := range strings.Split(ex, "\n") {
				fmt.Printf("  %s\n", line)
			}
		}
	}
}

// printWrapped prints text word-wrapped at width with the given left indent.
func printWrapped(text string, indent, width int) {
	words := strings.Fields(text)
	prefix := strings.Repeat(" ", indent)
	line := prefix
	for _, word := range words {
		if len(line)+len(word)+1 > width && line != prefix {
			fmt.Println(line)
			line = prefix + word
		} else {
			if line == prefix {
				line += word
			} else {
				line += " " + word
			}
		}
	}
	if line != prefix {
		fmt.Println(line)
	}
}
