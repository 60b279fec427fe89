// Package match maps literal style values to catalog tokens. It covers the
// exact-match path, ranked migration suggestions, and the cheap first-fit
// lookup used by style validation.
package match

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/gnana997/tokensmith/pkg/catalog"
)

// Rationale describes how a match was found.
type Rationale string

const (
	RationaleExact        Rationale = "exact"
	RationaleCloseNumeric Rationale = "close-numeric"
	RationaleNoMatch      Rationale = "no-match"
)

// Result is one scored candidate for a query literal.
type Result struct {
	Query      string    `json:"query"`
	TokenName  string    `json:"token_name,omitempty"`
	Similarity float64   `json:"similarity"`
	Reason     string    `json:"reason"`
	Rationale  Rationale `json:"rationale"`
}

// Migration suggestion limits.
const (
	maxSuggestions      = 5
	similarityThreshold = 0.5
)

// normalize lower-cases a literal and strips all whitespace, so that
// "RGB(0, 102, 204)" and "rgb(0,102,204)" compare equal.
func normalize(value string) string {
	return strings.ToLower(strings.Join(strings.Fields(value), ""))
}

// FindExact returns the first catalog token (in catalog order) whose value
// equals the literal after normalization. The bool is false when no token
// matches.
func FindExact(literal string, cat *catalog.Catalog) (*catalog.Token, bool) {
	want := normalize(literal)
	for i := range cat.Tokens {
		if normalize(cat.Tokens[i].Value) == want {
			return &cat.Tokens[i], true
		}
	}
	return nil, false
}

// SuggestMigration returns up to five tokens whose values most closely match
// the literal, each scored in [0,1]. Candidates are restricted to tokens
// whose value shape matches the query's, optionally narrowed further by
// token category. Results below 0.5 are dropped; ties keep catalog order.
func SuggestMigration(literal string, cat *catalog.Catalog, categoryFilter string) []Result {
	shape := DetectShape(literal)

	var results []Result
	for i := range cat.Tokens {
		tok := &cat.Tokens[i]
		if categoryFilter != "" && tok.Category != categoryFilter {
			continue
		}
		if DetectShape(tok.Value) != shape {
			continue
		}

		sim := similarity(literal, tok.Value, shape)
		if sim < similarityThreshold {
			continue
		}

		r := Result{
			Query:      literal,
			TokenName:  tok.Name,
			Similarity: sim,
			Reason:     reasonFor(sim),
			Rationale:  RationaleCloseNumeric,
		}
		if sim == 1.0 {
			r.Rationale = RationaleExact
		}
		results = append(results, r)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	if len(results) > maxSuggestions {
		results = results[:maxSuggestions]
	}
	return results
}

// similarity scores a query literal against a candidate value, both already
// known to share a shape.
func similarity(query, candidate string, shape Shape) float64 {
	switch shape {
	case ShapeColor:
		// Colors either match a design intent or they don't; there is no
		// partial credit.
		if strings.EqualFold(query, candidate) {
			return 1.0
		}
		return 0

	case ShapePixel, ShapeRem, ShapeEm:
		a, aok := Magnitude(query)
		b, bok := Magnitude(candidate)
		if !aok || !bok {
			return 0
		}
		if a == b {
			return 1.0
		}
		max := math.Max(math.Abs(a), math.Abs(b))
		if max == 0 {
			return 1.0
		}
		return math.Max(0, 1.0-math.Abs(a-b)/max)

	case ShapeFontWeight:
		if weightsEqual(query, candidate) {
			return 1.0
		}
		return 0.5

	default:
		if strings.EqualFold(strings.TrimSpace(query), strings.TrimSpace(candidate)) {
			return 1.0
		}
		return 0.3
	}
}

// weightsEqual compares font weights as integers when possible, falling back
// to case-insensitive keyword comparison.
func weightsEqual(a, b string) bool {
	ai, aerr := strconv.Atoi(strings.TrimSpace(a))
	bi, berr := strconv.Atoi(strings.TrimSpace(b))
	if aerr == nil && berr == nil {
		return ai == bi
	}
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// reasonFor maps a similarity score to its human-readable reason string.
func reasonFor(sim float64) string {
	switch {
	case sim == 1.0:
		return "Exact match"
	case sim > 0.9:
		return "Very close match"
	case sim > 0.7:
		return "Close match"
	default:
		return "Similar value"
	}
}

// FirstForCategory returns the first token of the given category in catalog
// order. This is the cheap replacement lookup used by style validation; it
// deliberately does not rank. The pick is order-dependent, which is suspect
// but preserved for compatibility with existing catalogs.
func FirstForCategory(category string, cat *catalog.Catalog) (*catalog.Token, bool) {
	for i := range cat.Tokens {
		if cat.Tokens[i].Category == category {
			return &cat.Tokens[i], true
		}
	}
	return nil, false
}
