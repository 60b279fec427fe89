// Package contrast evaluates WCAG contrast between catalog tokens and, when
// a pair fails AA, searches the catalog for a passing alternative.
package contrast

import (
	"fmt"
	"sort"

	"github.com/gnana997/tokensmith/pkg/catalog"
	"github.com/gnana997/tokensmith/pkg/colormath"
)

// Report is the structured outcome of a contrast check. Failures to resolve
// or parse tokens are carried in the report rather than returned as errors,
// so batch callers always get a result per pair.
type Report struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`

	// Ratio is rounded to 2 decimal places for reporting; pass/fail uses
	// the full-precision value. Nil when no ratio could be computed.
	Ratio     *float64        `json:"ratio,omitempty"`
	PassesAA  bool            `json:"passes_aa"`
	PassesAAA bool            `json:"passes_aaa"`
	Level     colormath.Level `json:"level,omitempty"`

	// MissingTokens lists supplied names with no catalog entry.
	MissingTokens []string `json:"missing_tokens,omitempty"`

	// Diagnostic explains why no ratio was computed (unparseable values).
	Diagnostic string `json:"diagnostic,omitempty"`

	// Suggestion names an alternative foreground when the pair fails AA.
	Suggestion string `json:"suggestion,omitempty"`
}

// Ranked pairs a foreground token with its contrast report against a fixed
// background.
type Ranked struct {
	TokenName string `json:"token_name"`
	Report    Report `json:"report"`
}

// Evaluator runs contrast checks against one immutable catalog.
type Evaluator struct {
	cat *catalog.Catalog
	idx *catalog.Index
}

// NewEvaluator creates an Evaluator over a validated catalog and its index.
func NewEvaluator(cat *catalog.Catalog, idx *catalog.Index) *Evaluator {
	return &Evaluator{cat: cat, idx: idx}
}

// Check resolves two token names and reports their WCAG contrast. When the
// pair fails AA, the report carries a first-fit alternative suggestion.
func (e *Evaluator) Check(fgName, bgName string) Report {
	report := Report{Foreground: fgName, Background: bgName}

	fg, fgOK := e.idx.TokenByName[fgName]
	bg, bgOK := e.idx.TokenByName[bgName]
	if !fgOK {
		report.MissingTokens = append(report.MissingTokens, fgName)
	}
	if !bgOK {
		report.MissingTokens = append(report.MissingTokens, bgName)
	}
	if len(report.MissingTokens) > 0 {
		return report
	}

	ratio, err := colormath.ContrastRatio(fg.Value, bg.Value)
	if err != nil {
		report.Diagnostic = fmt.Sprintf("cannot compute contrast: %v", err)
		return report
	}

	grade := colormath.Classify(ratio)
	rounded := colormath.Round2(ratio)
	report.Ratio = &rounded
	report.PassesAA = grade.PassesAA
	report.PassesAAA = grade.PassesAAA
	report.Level = grade.Level

	if !grade.PassesAA {
		report.Suggestion = e.suggestAlternative(fgName, bg)
	}

	return report
}

// suggestAlternative scans color tokens in catalog order and returns the
// first one (excluding the background itself) that passes AA against the
// background. First fit, not best fit: the scan mirrors how a designer would
// walk the palette top to bottom.
func (e *Evaluator) suggestAlternative(fgName string, bg *catalog.Token) string {
	for _, tok := range e.idx.TokensByCategory[catalog.CategoryColor] {
		if tok.Name == bg.Name {
			continue
		}
		ratio, err := colormath.ContrastRatio(tok.Value, bg.Value)
		if err != nil {
			continue
		}
		if colormath.Classify(ratio).PassesAA {
			return fmt.Sprintf("use %s (%s) instead of %s: contrast %.2f passes AA against %s",
				tok.Name, tok.Value, fgName, colormath.Round2(ratio), bg.Name)
		}
	}
	return fmt.Sprintf("no color token in the catalog passes AA against %s", bg.Name)
}

// RankAgainst checks every color token (except the background) as a
// foreground against bgName and returns the results sorted by descending
// ratio. Entries without a computed ratio keep their relative catalog order
// at the end.
func (e *Evaluator) RankAgainst(bgName string) []Ranked {
	var ranked []Ranked
	for _, tok := range e.idx.TokensByCategory[catalog.CategoryColor] {
		if tok.Name == bgName {
			continue
		}
		ranked = append(ranked, Ranked{
			TokenName: tok.Name,
			Report:    e.Check(tok.Name, bgName),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		ri, rj := ranked[i].Report.Ratio, ranked[j].Report.Ratio
		if ri == nil || rj == nil {
			return rj == nil && ri != nil
		}
		return *ri > *rj
	})

	return ranked
}
