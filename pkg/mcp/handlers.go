package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gnana997/tokensmith/pkg/catalog"
	"github.com/gnana997/tokensmith/pkg/extract"
	"github.com/gnana997/tokensmith/pkg/match"
	"github.com/gnana997/tokensmith/pkg/theme"
)

// jsonResult marshals v as the tool's text content.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleGetToken(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: name"), nil
	}

	qs, _ := s.services()
	tok, ok := qs.GetToken(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("token not found: %s", name)), nil
	}
	return jsonResult(tok)
}

func (s *Server) handleListTokens(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category := req.GetString("category", "")
	if category != "" && !catalog.ValidCategories[category] {
		return mcp.NewToolResultError(fmt.Sprintf("unknown category: %s", category)), nil
	}

	qs, _ := s.services()
	return jsonResult(qs.GetTokens(category))
}

func (s *Server) handleSearchTokens(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	qs, _ := s.services()
	results := qs.SearchTokens(query)
	if len(results) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("no tokens found matching %q", query)), nil
	}
	return jsonResult(results)
}

func (s *Server) handleListComponents(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	qs, _ := s.services()
	return jsonResult(qs.ListComponents(req.GetString("keyword", "")))
}

func (s *Server) handleGetComponent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: name"), nil
	}

	qs, _ := s.services()
	comp, ok := qs.GetComponent(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("component not found: %s", name)), nil
	}

	return jsonResult(map[string]any{
		"component": comp,
		"tokens":    qs.TokensFor(name),
	})
}

func (s *Server) handleExtractValues(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: text"), nil
	}

	values := extract.Extract(text)
	if len(values) == 0 {
		return mcp.NewToolResultText("no style values found"), nil
	}
	return jsonResult(values)
}

// styleFinding is one extracted literal with its validation outcome.
type styleFinding struct {
	Literal     string `json:"literal"`
	Kind        string `json:"kind"`
	Property    string `json:"property,omitempty"`
	Line        int    `json:"line"`
	TokenName   string `json:"token_name,omitempty"`
	Replacement string `json:"replacement,omitempty"`
	Hardcoded   bool   `json:"hardcoded"`
}

func (s *Server) handleValidateStyles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: text"), nil
	}

	qs, _ := s.services()
	values := extract.Extract(text)

	findings := make([]styleFinding, 0, len(values))
	valid := true
	for _, v := range values {
		f := styleFinding{
			Literal:  v.Literal,
			Kind:     string(v.Kind),
			Property: v.Property,
			Line:     v.Line,
		}

		if tok, ok := match.FindExact(v.Literal, qs.Catalog); ok {
			f.TokenName = tok.Name
		} else {
			f.Hardcoded = true
			valid = false
			// First category-appropriate token in catalog order; cheap
			// lookup, not a ranked match.
			if tok, ok := match.FirstForCategory(v.Kind.Category(), qs.Catalog); ok {
				f.Replacement = tok.Name
			}
		}
		findings = append(findings, f)
	}

	return jsonResult(map[string]any{
		"valid":    valid,
		"findings": findings,
	})
}

func (s *Server) handleSuggestMigration(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	value, err := req.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: value"), nil
	}
	category := req.GetString("category", "")
	if category != "" && !catalog.ValidCategories[category] {
		return mcp.NewToolResultError(fmt.Sprintf("unknown category: %s", category)), nil
	}

	cacheKey := value + "\x00" + category
	if results, ok := s.suggestions.Get(cacheKey); ok {
		return jsonResult(results)
	}

	qs, _ := s.services()
	results := match.SuggestMigration(value, qs.Catalog, category)
	s.suggestions.Add(cacheKey, results)

	if len(results) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("no tokens close to %q", value)), nil
	}
	return jsonResult(results)
}

func (s *Server) handleCheckContrast(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fg, err := req.RequireString("foreground")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: foreground"), nil
	}
	bg, err := req.RequireString("background")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: background"), nil
	}

	_, eval := s.services()
	return jsonResult(eval.Check(fg, bg))
}

func (s *Server) handleRankContrast(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	bg, err := req.RequireString("background")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: background"), nil
	}

	qs, eval := s.services()
	if _, ok := qs.GetToken(bg); !ok {
		return mcp.NewToolResultError(fmt.Sprintf("token not found: %s", bg)), nil
	}
	return jsonResult(eval.RankAgainst(bg))
}

func (s *Server) handleGenerateTheme(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	brand, err := req.RequireString("brand")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: brand"), nil
	}
	mode, err := theme.ParseMode(req.GetString("mode", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	colors := make(map[string]string)
	if raw, ok := req.GetArguments()["colors"].(map[string]any); ok {
		for k, v := range raw {
			hex, ok := v.(string)
			if !ok {
				return mcp.NewToolResultError(fmt.Sprintf("color %q must be a hex string", k)), nil
			}
			colors[k] = hex
		}
	}

	qs, _ := s.services()
	th, err := theme.Assemble(brand, colors, mode, qs.Catalog)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(map[string]any{
		"brand":  th.Brand,
		"mode":   th.Mode,
		"tokens": th.Tokens,
		"css":    th.RenderCSS(),
	})
}
