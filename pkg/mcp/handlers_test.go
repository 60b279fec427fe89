package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/tokensmith/pkg/catalog"
)

// --- helpers ---

func testServer() *Server {
	cat := &catalog.Catalog{
		Name:    "test",
		Version: "1.0",
		Tokens: []catalog.Token{
			{Name: "color-text-primary", Value: "#212529", Category: "color", Description: "Primary body text"},
			{Name: "color-primary", Value: "#0066CC", Category: "color", Description: "Brand blue"},
			{Name: "color-background", Value: "#FFFFFF", Category: "color"},
			{Name: "spacing-sm", Value: "8px", Category: "spacing"},
			{Name: "spacing-md", Value: "16px", Category: "spacing"},
			{Name: "font-size-base", Value: "16px", Category: "typography"},
			{Name: "font-weight-bold", Value: "700", Category: "typography"},
			{Name: "radius-md", Value: "6px", Category: "border"},
		},
		Components: []catalog.Component{
			{
				Name:        "button",
				Description: "Primary action button",
				Tokens:      []string{"color-primary", "spacing-md", "radius-md"},
				Usage:       "Use for the primary action on a page.",
			},
			{
				Name:        "card",
				Description: "Content container with elevation",
				Tokens:      []string{"color-background", "radius-md"},
			},
		},
	}

	idx := cat.BuildIndex()
	qs := catalog.NewQueryService(cat, idx)
	return NewServer(qs, nil)
}

func callTool(t *testing.T, s *Server, req mcp.CallToolRequest) *mcp.CallToolResult {
	t.Helper()
	var handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

	switch req.Params.Name {
	case "get_token":
		handler = s.handleGetToken
	case "list_tokens":
		handler = s.handleListTokens
	case "search_tokens":
		handler = s.handleSearchTokens
	case "list_components":
		handler = s.handleListComponents
	case "get_component":
		handler = s.handleGetComponent
	case "extract_values":
		handler = s.handleExtractValues
	case "validate_styles":
		handler = s.handleValidateStyles
	case "suggest_migration":
		handler = s.handleSuggestMigration
	case "check_contrast":
		handler = s.handleCheckContrast
	case "rank_contrast":
		handler = s.handleRankContrast
	case "generate_theme":
		handler = s.handleGenerateTheme
	default:
		t.Fatalf("unknown tool: %s", req.Params.Name)
	}

	result, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func makeRequest(toolName string, args map[string]any) mcp.CallToolRequest {
	var arguments any
	if args != nil {
		arguments = args
	}
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      toolName,
			Arguments: arguments,
		},
	}
}

func resultJSON(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return textContent.Text
}

// --- get_token ---

func TestHandleGetToken(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("get_token", map[string]any{"name": "color-primary"}))
	assert.False(t, result.IsError)

	var tok map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &tok))
	assert.Equal(t, "color-primary", tok["name"])
	assert.Equal(t, "#0066CC", tok["value"])
}

func TestHandleGetToken_NotFound(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("get_token", map[string]any{"name": "nope"}))
	assert.True(t, result.IsError)
}

func TestHandleGetToken_MissingName(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("get_token", nil))
	assert.True(t, result.IsError)
}

// --- list_tokens ---

func TestHandleListTokens_All(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("list_tokens", nil))
	assert.False(t, result.IsError)

	var tokens []map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &tokens))
	assert.Len(t, tokens, 8)
}

func TestHandleListTokens_ByCategory(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("list_tokens", map[string]any{"category": "spacing"}))

	var tokens []map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &tokens))
	require.Len(t, tokens, 2)
	assert.Equal(t, "spacing-sm", tokens[0]["name"])
	assert.Equal(t, "spacing-md", tokens[1]["name"])
}

func TestHandleListTokens_UnknownCategory(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("list_tokens", map[string]any{"category": "sounds"}))
	assert.True(t, result.IsError)
}

// --- search_tokens ---

func TestHandleSearchTokens(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("search_tokens", map[string]any{"query": "brand"}))
	assert.False(t, result.IsError)

	var hits []map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &hits))
	require.Len(t, hits, 1)
	tok := hits[0]["token"].(map[string]any)
	assert.Equal(t, "color-primary", tok["name"])
}

func TestHandleSearchTokens_NoMatches(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("search_tokens", map[string]any{"query": "zzzz"}))
	assert.False(t, result.IsError)
	assert.Contains(t, resultJSON(t, result), "no tokens found")
}

// --- list_components / get_component ---

func TestHandleListComponents(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("list_components", nil))

	var comps []map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &comps))
	assert.Len(t, comps, 2)
}

func TestHandleListComponents_ByKeyword(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("list_components", map[string]any{"keyword": "elevation"}))

	var comps []map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &comps))
	require.Len(t, comps, 1)
	assert.Equal(t, "card", comps[0]["name"])
}

func TestHandleGetComponent(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("get_component", map[string]any{"name": "button"}))
	assert.False(t, result.IsError)

	var out struct {
		Component map[string]any   `json:"component"`
		Tokens    []map[string]any `json:"tokens"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &out))
	assert.Equal(t, "button", out.Component["name"])
	require.Len(t, out.Tokens, 3)
	assert.Equal(t, "color-primary", out.Tokens[0]["name"])
}

func TestHandleGetComponent_NotFound(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("get_component", map[string]any{"name": "ghost"}))
	assert.True(t, result.IsError)
}

// --- extract_values ---

func TestHandleExtractValues(t *testing.T) {
	s := testServer()
	css := ".btn { background-color: #0066CC; padding: 16px; border-radius: 4px; }"
	result := callTool(t, s, makeRequest("extract_values", map[string]any{"text": css}))
	assert.False(t, result.IsError)

	var values []map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &values))
	assert.Len(t, values, 3)
}

func TestHandleExtractValues_Empty(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("extract_values", map[string]any{"text": "display: flex;"}))
	assert.False(t, result.IsError)
	assert.Contains(t, resultJSON(t, result), "no style values found")
}

// --- validate_styles ---

func TestHandleValidateStyles(t *testing.T) {
	s := testServer()
	css := ".btn { padding: 16px; color: #ff4400; }"
	result := callTool(t, s, makeRequest("validate_styles", map[string]any{"text": css}))
	assert.False(t, result.IsError)

	var out struct {
		Valid    bool           `json:"valid"`
		Findings []styleFinding `json:"findings"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &out))
	assert.False(t, out.Valid)
	require.Len(t, out.Findings, 2)

	var hardcoded, matched *styleFinding
	for i := range out.Findings {
		if out.Findings[i].Hardcoded {
			hardcoded = &out.Findings[i]
		} else {
			matched = &out.Findings[i]
		}
	}
	require.NotNil(t, matched)
	assert.Equal(t, "16px", matched.Literal)
	assert.Equal(t, "spacing-md", matched.TokenName)

	require.NotNil(t, hardcoded)
	assert.Equal(t, "#ff4400", hardcoded.Literal)
	assert.Equal(t, "color-text-primary", hardcoded.Replacement)
}

func TestHandleValidateStyles_AllTokens(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("validate_styles", map[string]any{"text": "padding: 8px;"}))

	var out struct {
		Valid bool `json:"valid"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &out))
	assert.True(t, out.Valid)
}

// --- suggest_migration ---

func TestHandleSuggestMigration(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("suggest_migration", map[string]any{"value": "15px", "category": "spacing"}))
	assert.False(t, result.IsError)

	var suggestions []map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &suggestions))
	require.NotEmpty(t, suggestions)
	assert.Equal(t, "spacing-md", suggestions[0]["token_name"])
}

func TestHandleSuggestMigration_Cached(t *testing.T) {
	s := testServer()
	req := makeRequest("suggest_migration", map[string]any{"value": "15px"})

	first := resultJSON(t, callTool(t, s, req))
	_, ok := s.suggestions.Get("15px\x00")
	assert.True(t, ok)
	second := resultJSON(t, callTool(t, s, req))
	assert.Equal(t, first, second)
}

func TestHandleSuggestMigration_UnknownCategory(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("suggest_migration", map[string]any{"value": "15px", "category": "sounds"}))
	assert.True(t, result.IsError)
}

// --- check_contrast / rank_contrast ---

func TestHandleCheckContrast(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("check_contrast", map[string]any{
		"foreground": "color-text-primary",
		"background": "color-background",
	}))
	assert.False(t, result.IsError)

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &report))
	assert.Equal(t, true, report["passes_aa"])
	assert.Equal(t, true, report["passes_aaa"])
	assert.InDelta(t, 15.43, report["ratio"].(float64), 0.01)
}

func TestHandleRankContrast(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("rank_contrast", map[string]any{"background": "color-background"}))
	assert.False(t, result.IsError)

	var ranked []map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &ranked))
	require.Len(t, ranked, 2)
	assert.Equal(t, "color-text-primary", ranked[0]["token_name"])
}

func TestHandleRankContrast_UnknownToken(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("rank_contrast", map[string]any{"background": "nope"}))
	assert.True(t, result.IsError)
}

// --- generate_theme ---

func TestHandleGenerateTheme_FullGeneration(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("generate_theme", map[string]any{
		"brand": "Acme",
		"mode":  "full-generation",
		"colors": map[string]any{
			"primary": "#2D6FDB",
		},
	}))
	assert.False(t, result.IsError)

	var out struct {
		Brand string `json:"brand"`
		Mode  string `json:"mode"`
		CSS   string `json:"css"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultJSON(t, result)), &out))
	assert.Equal(t, "Acme", out.Brand)
	assert.Equal(t, "full-generation", out.Mode)
	assert.Contains(t, out.CSS, "--color-primary-h: 217;")
	assert.Contains(t, out.CSS, "--color-primary-s: 71%;")
}

func TestHandleGenerateTheme_BadMode(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("generate_theme", map[string]any{"brand": "Acme", "mode": "rainbow"}))
	assert.True(t, result.IsError)
}

func TestHandleGenerateTheme_BadColorType(t *testing.T) {
	s := testServer()
	result := callTool(t, s, makeRequest("generate_theme", map[string]any{
		"brand":  "Acme",
		"mode":   "full-generation",
		"colors": map[string]any{"primary": float64(7)},
	}))
	assert.True(t, result.IsError)
}

// --- catalog reload ---

func TestSetQueryPurgesSuggestionCache(t *testing.T) {
	s := testServer()
	callTool(t, s, makeRequest("suggest_migration", map[string]any{"value": "15px"}))
	require.NotZero(t, s.suggestions.Len())

	cat := &catalog.Catalog{
		Name:    "replacement",
		Version: "2.0",
		Tokens:  []catalog.Token{{Name: "spacing-base", Value: "12px", Category: "spacing"}},
	}
	s.SetQuery(catalog.NewQueryService(cat, cat.BuildIndex()))
	assert.Zero(t, s.suggestions.Len())

	result := callTool(t, s, makeRequest("get_token", map[string]any{"name": "spacing-base"}))
	assert.False(t, result.IsError)
}
