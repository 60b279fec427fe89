package catalog

import "strings"

// TokenSearchResult holds a token match with the reason it matched.
type TokenSearchResult struct {
	Token       *Token `json:"token"`
	MatchReason string `json:"match_reason"`
}

// QueryService provides read-only query methods over a loaded catalog.
type QueryService struct {
	Catalog *Catalog
	Index   *Index
}

// NewQueryService creates a QueryService from a validated catalog and its index.
func NewQueryService(cat *Catalog, idx *Index) *QueryService {
	return &QueryService{Catalog: cat, Index: idx}
}

// LoadAndQuery loads a catalog from file and returns a ready-to-use QueryService.
func LoadAndQuery(path string) (*QueryService, error) {
	cat, idx, err := LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	return NewQueryService(cat, idx), nil
}

// LoadAndQueryBytes loads a catalog from raw JSON bytes and returns a ready-to-use QueryService.
func LoadAndQueryBytes(data []byte) (*QueryService, error) {
	cat, idx, err := LoadFromBytes(data)
	if err != nil {
		return nil, err
	}
	return NewQueryService(cat, idx), nil
}

// GetToken looks up a token by exact name.
// The bool indicates whether the token was found.
func (q *QueryService) GetToken(name string) (*Token, bool) {
	tok, ok := q.Index.TokenByName[name]
	return tok, ok
}

// GetTokens returns design tokens, optionally filtered by category.
// Pass "" to return all tokens. Catalog order is preserved.
func (q *QueryService) GetTokens(category string) []Token {
	if category == "" {
		return q.Catalog.Tokens
	}
	result := make([]Token, 0)
	for _, t := range q.Catalog.Tokens {
		if t.Category == category {
			result = append(result, t)
		}
	}
	return result
}

// SearchTokens performs a case-insensitive search across token names,
// values, and descriptions. Returns matching tokens with the reason for
// the match.
func (q *QueryService) SearchTokens(query string) []TokenSearchResult {
	query = strings.ToLower(query)
	if query == "" {
		return nil
	}

	var results []TokenSearchResult
	for i := range q.Catalog.Tokens {
		tok := &q.Catalog.Tokens[i]

		switch {
		case strings.Contains(strings.ToLower(tok.Name), query):
			results = append(results, TokenSearchResult{Token: tok, MatchReason: "name"})
		case strings.Contains(strings.ToLower(tok.Value), query):
			results = append(results, TokenSearchResult{Token: tok, MatchReason: "value"})
		case strings.Contains(strings.ToLower(tok.Description), query):
			results = append(results, TokenSearchResult{Token: tok, MatchReason: "description"})
		}
	}

	return results
}

// GetComponent looks up a component by name.
// The bool indicates whether the component was found.
func (q *QueryService) GetComponent(name string) (*Component, bool) {
	comp, ok := q.Index.ComponentByName[name]
	return comp, ok
}

// ListComponents returns components filtered by keyword (pass "" for all).
// The keyword matches case-insensitively against component Name and Description.
func (q *QueryService) ListComponents(keyword string) []Component {
	keyword = strings.ToLower(keyword)
	result := make([]Component, 0)

	for _, comp := range q.Catalog.Components {
		if keyword != "" {
			nameLower := strings.ToLower(comp.Name)
			descLower := strings.ToLower(comp.Description)
			if !strings.Contains(nameLower, keyword) && !strings.Contains(descLower, keyword) {
				continue
			}
		}
		result = append(result, comp)
	}

	return result
}

// TokensFor resolves a component's token references against the catalog.
// References to unknown tokens are silently skipped (they are not enforced
// at load time either).
func (q *QueryService) TokensFor(componentName string) []Token {
	comp, ok := q.Index.ComponentByName[componentName]
	if !ok {
		return nil
	}
	result := make([]Token, 0, len(comp.Tokens))
	for _, name := range comp.Tokens {
		if tok, ok := q.Index.TokenByName[name]; ok {
			result = append(result, *tok)
		}
	}
	return result
}
