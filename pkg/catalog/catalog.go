package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Catalog holds the full design-token dataset. It is built once at startup
// and never mutated afterwards, so concurrent readers need no locking.
type Catalog struct {
	Name       string      `json:"name"`
	Version    string      `json:"version"`
	Source     string      `json:"source,omitempty"`
	Tokens     []Token     `json:"tokens"`
	Components []Component `json:"components,omitempty"`
}

// Index provides O(1) lookups into the catalog.
// Built during Load after validation passes.
type Index struct {
	// TokenByName maps token name -> *Token.
	TokenByName map[string]*Token

	// TokensByCategory maps category -> []*Token in catalog order.
	// Catalog order matters: several operations are defined as first-match
	// scans over it.
	TokensByCategory map[string][]*Token

	// ComponentByName maps component name -> *Component.
	ComponentByName map[string]*Component
}

// Validate checks the catalog for internal consistency.
// Returns a slice of validation errors (empty slice if valid).
func (c *Catalog) Validate() []error {
	var errs []error

	if c.Name == "" {
		errs = append(errs, fmt.Errorf("catalog name is required"))
	}
	if c.Version == "" {
		errs = append(errs, fmt.Errorf("catalog version is required"))
	}

	tokenNames := make(map[string]bool, len(c.Tokens))
	for i, tok := range c.Tokens {
		if tok.Name == "" {
			errs = append(errs, fmt.Errorf("tokens[%d]: name is required", i))
			continue
		}
		if tok.Value == "" {
			errs = append(errs, fmt.Errorf("token %q: value is required", tok.Name))
		}
		if !ValidCategories[tok.Category] {
			errs = append(errs, fmt.Errorf("token %q: unknown category %q", tok.Name, tok.Category))
		}
		if tokenNames[tok.Name] {
			errs = append(errs, fmt.Errorf("token %q: duplicate token name", tok.Name))
			continue
		}
		tokenNames[tok.Name] = true
	}

	componentNames := make(map[string]bool, len(c.Components))
	for i, comp := range c.Components {
		if comp.Name == "" {
			errs = append(errs, fmt.Errorf("components[%d]: name is required", i))
			continue
		}
		if componentNames[comp.Name] {
			errs = append(errs, fmt.Errorf("component %q: duplicate component name", comp.Name))
			continue
		}
		componentNames[comp.Name] = true
		// Component token references are deliberately not checked against
		// tokenNames: components may list tokens that only exist in a
		// generated theme.
	}

	return errs
}

// BuildIndex creates lookup maps for fast access.
// Should be called after Validate() passes.
func (c *Catalog) BuildIndex() *Index {
	idx := &Index{
		TokenByName:      make(map[string]*Token, len(c.Tokens)),
		TokensByCategory: make(map[string][]*Token),
		ComponentByName:  make(map[string]*Component, len(c.Components)),
	}

	for i := range c.Tokens {
		tok := &c.Tokens[i]
		idx.TokenByName[tok.Name] = tok
		idx.TokensByCategory[tok.Category] = append(idx.TokensByCategory[tok.Category], tok)
	}

	for i := range c.Components {
		idx.ComponentByName[c.Components[i].Name] = &c.Components[i]
	}

	return idx
}

// LoadFromFile loads a catalog from a JSON file, validates it, and builds the index.
func LoadFromFile(path string) (*Catalog, *Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses a catalog from raw JSON bytes, validates it, and builds the index.
func LoadFromBytes(data []byte) (*Catalog, *Index, error) {
	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	if errs := cat.Validate(); len(errs) > 0 {
		return nil, nil, fmt.Errorf("catalog validation failed: %w", errors.Join(errs...))
	}

	index := cat.BuildIndex()
	return &cat, index, nil
}
