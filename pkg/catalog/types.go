package catalog

// Token categories. Every token in a catalog belongs to exactly one.
const (
	CategoryColor      = "color"
	CategorySpacing    = "spacing"
	CategoryTypography = "typography"
	CategoryBorder     = "border"
	CategoryShadow     = "shadow"
)

// ValidCategories is the closed set of token categories.
var ValidCategories = map[string]bool{
	CategoryColor:      true,
	CategorySpacing:    true,
	CategoryTypography: true,
	CategoryBorder:     true,
	CategoryShadow:     true,
}

// Token represents a design token: a named design constant with a literal
// CSS value. Tokens are immutable once loaded.
type Token struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
}

// Component represents a UI component and the tokens it is built from.
// Token references are informational and may name tokens that do not exist.
type Component struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tokens      []string `json:"tokens,omitempty"`
	Usage       string   `json:"usage,omitempty"`
	Examples    []string `json:"examples,omitempty"`
}
