// Package check holds the rule evaluation engine: the checkers, the
// per-record evaluator and the batch aggregator.
package check

import "github.com/locqa/locqa/internal/domain"

// Checker evaluates one record against a RuleSet. Implementations must be
// pure: no state carried between records, no writes to the RuleSet.
type Checker interface {
	Category() domain.Category
	Check(rec domain.TranslationRecord, rules *domain.RuleSet) []domain.Finding
}

// DefaultCheckers returns the built-in registry in evaluation order.
func DefaultCheckers() []Checker {
	return []Checker{
		NewTerminologyChecker(),
		NewPlaceholderChecker(DefaultPlaceholderMarkers...),
		NewLengthChecker(),
		NewStyleChecker(),
	}
}

// Without returns checkers minus those whose category is listed, preserving
// registration order.
func Without(checkers []Checker, skip ...domain.Category) []Checker {
	if len(skip) == 0 {
		return checkers
	}
	skipped := make(map[domain.Category]bool, len(skip))
	for _, c := range skip {
		skipped[c] = true
	}
	out := make([]Checker, 0, len(checkers))
	for _, c := range checkers {
		if !skipped[c.Category()] {
			out = append(out, c)
		}
	}
	return out
}
