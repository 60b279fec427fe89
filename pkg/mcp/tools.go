package mcp

import "github.com/mark3labs/mcp-go/mcp"

func getTokenTool() mcp.Tool {
	return mcp.NewTool("get_token",
		mcp.WithDescription("Look up a single design token by name"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Token name, e.g. color-primary")),
	)
}

func listTokensTool() mcp.Tool {
	return mcp.NewTool("list_tokens",
		mcp.WithDescription("List design tokens, optionally filtered by category"),
		mcp.WithString("category", mcp.Description("Token category: color, spacing, typography, border, shadow")),
	)
}

func searchTokensTool() mcp.Tool {
	return mcp.NewTool("search_tokens",
		mcp.WithDescription("Search tokens by name, value, or description"),
		mcp.WithString("query", mcp.Required(), mcp.Description("Case-insensitive search text")),
	)
}

func listComponentsTool() mcp.Tool {
	return mcp.NewTool("list_components",
		mcp.WithDescription("List catalog components, optionally filtered by keyword"),
		mcp.WithString("keyword", mcp.Description("Case-insensitive keyword matched against name and description")),
	)
}

func getComponentTool() mcp.Tool {
	return mcp.NewTool("get_component",
		mcp.WithDescription("Get one component with its resolved design tokens"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Component name")),
	)
}

func extractValuesTool() mcp.Tool {
	return mcp.NewTool("extract_values",
		mcp.WithDescription("Extract literal style values (colors, spacing, typography, borders, shadows) from raw text"),
		mcp.WithString("text", mcp.Required(), mcp.Description("Raw style or source text to scan")),
	)
}

func validateStylesTool() mcp.Tool {
	return mcp.NewTool("validate_styles",
		mcp.WithDescription("Find hard-coded style values in text and suggest token replacements"),
		mcp.WithString("text", mcp.Required(), mcp.Description("Raw style or source text to validate")),
	)
}

func suggestMigrationTool() mcp.Tool {
	return mcp.NewTool("suggest_migration",
		mcp.WithDescription("Rank catalog tokens closest to a literal style value (top 5, similarity >= 0.5)"),
		mcp.WithString("value", mcp.Required(), mcp.Description("Literal style value, e.g. #0066CC or 15px")),
		mcp.WithString("category", mcp.Description("Restrict candidates to one token category")),
	)
}

func checkContrastTool() mcp.Tool {
	return mcp.NewTool("check_contrast",
		mcp.WithDescription("Compute WCAG contrast between two color tokens and suggest an alternative when AA fails"),
		mcp.WithString("foreground", mcp.Required(), mcp.Description("Foreground token name")),
		mcp.WithString("background", mcp.Required(), mcp.Description("Background token name")),
	)
}

func rankContrastTool() mcp.Tool {
	return mcp.NewTool("rank_contrast",
		mcp.WithDescription("Rank every color token by contrast against one background token"),
		mcp.WithString("background", mcp.Required(), mcp.Description("Background token name")),
	)
}

func generateThemeTool() mcp.Tool {
	return mcp.NewTool("generate_theme",
		mcp.WithDescription("Assemble a brand theme (override or full-generation mode) and render it as CSS custom properties"),
		mcp.WithString("brand", mcp.Required(), mcp.Description("Brand name for the generated theme")),
		mcp.WithString("mode", mcp.Required(), mcp.Description("Assembly mode: override or full-generation")),
		mcp.WithObject("colors", mcp.Description("Hex color per family (override) or per role (full-generation)")),
	)
}
