package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQueryService() *QueryService {
	cat := &Catalog{
		Name:    "test",
		Version: "1.0",
		Tokens: []Token{
			{Name: "color-primary", Value: "#0066CC", Category: CategoryColor, Description: "Brand primary"},
			{Name: "color-background", Value: "#FFFFFF", Category: CategoryColor},
			{Name: "spacing-md", Value: "16px", Category: CategorySpacing, Description: "Default gap"},
			{Name: "shadow-card", Value: "0 1px 3px rgba(0,0,0,0.12)", Category: CategoryShadow},
		},
		Components: []Component{
			{Name: "Button", Description: "A clickable button", Tokens: []string{"color-primary", "spacing-md"}},
			{Name: "Card", Description: "A content surface", Tokens: []string{"shadow-card", "color-missing"}},
		},
	}
	return NewQueryService(cat, cat.BuildIndex())
}

func TestGetToken(t *testing.T) {
	q := testQueryService()

	tok, ok := q.GetToken("color-primary")
	require.True(t, ok)
	assert.Equal(t, "#0066CC", tok.Value)

	_, ok = q.GetToken("color-nope")
	assert.False(t, ok)
}

func TestGetTokens(t *testing.T) {
	q := testQueryService()

	assert.Len(t, q.GetTokens(""), 4)
	assert.Len(t, q.GetTokens(CategoryColor), 2)
	assert.Empty(t, q.GetTokens(CategoryBorder))
}

func TestSearchTokens(t *testing.T) {
	q := testQueryService()

	results := q.SearchTokens("primary")
	require.Len(t, results, 1)
	assert.Equal(t, "color-primary", results[0].Token.Name)
	assert.Equal(t, "name", results[0].MatchReason)

	// Value match.
	results = q.SearchTokens("#ffffff")
	require.Len(t, results, 1)
	assert.Equal(t, "value", results[0].MatchReason)

	// Description match.
	results = q.SearchTokens("default gap")
	require.Len(t, results, 1)
	assert.Equal(t, "description", results[0].MatchReason)

	assert.Empty(t, q.SearchTokens("zzz"))
	assert.Nil(t, q.SearchTokens(""))
}

func TestGetComponent(t *testing.T) {
	q := testQueryService()

	comp, ok := q.GetComponent("Button")
	require.True(t, ok)
	assert.Equal(t, "A clickable button", comp.Description)

	_, ok = q.GetComponent("Modal")
	assert.False(t, ok)
}

func TestListComponents(t *testing.T) {
	q := testQueryService()

	assert.Len(t, q.ListComponents(""), 2)

	comps := q.ListComponents("surface")
	require.Len(t, comps, 1)
	assert.Equal(t, "Card", comps[0].Name)

	assert.Empty(t, q.ListComponents("zzz"))
}

func TestTokensFor(t *testing.T) {
	q := testQueryService()

	tokens := q.TokensFor("Button")
	require.Len(t, tokens, 2)
	assert.Equal(t, "color-primary", tokens[0].Name)

	// Unknown references are skipped, not errors.
	tokens = q.TokensFor("Card")
	require.Len(t, tokens, 1)
	assert.Equal(t, "shadow-card", tokens[0].Name)

	assert.Nil(t, q.TokensFor("Modal"))
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	write := func(rel string) {
		full := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(`{"name":"x","version":"1","tokens":[]}`), 0644))
	}
	write("tokens.json")
	write("themes/brand.tokens.json")
	write("docs/readme.md")

	matches, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"themes/brand.tokens.json", "tokens.json"}, matches)

	first, err := DiscoverFirst(dir)
	require.NoError(t, err)
	assert.Equal(t, "themes/brand.tokens.json", first)
}

func TestDiscoverFirst_Empty(t *testing.T) {
	_, err := DiscoverFirst(t.TempDir())
	assert.Error(t, err)
}
