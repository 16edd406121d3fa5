package check

import "github.com/locqa/locqa/internal/domain"

// Evaluator runs a fixed, ordered checker registry against single records.
type Evaluator struct {
	checkers []Checker
}

// NewEvaluator builds an evaluator over checkers in the given order. With no
// checkers it uses DefaultCheckers.
func NewEvaluator(checkers ...Checker) *Evaluator {
	if len(checkers) == 0 {
		checkers = DefaultCheckers()
	}
	cs := make([]Checker, len(checkers))
	copy(cs, checkers)
	return &Evaluator{checkers: cs}
}

// Checkers returns the registry in evaluation order.
func (e *Evaluator) Checkers() []Checker {
	out := make([]Checker, len(e.checkers))
	copy(out, e.checkers)
	return out
}

// Evaluate concatenates every checker's findings for rec, in registry order.
func (e *Evaluator) Evaluate(rec domain.TranslationRecord, rules *domain.RuleSet) []domain.Finding {
	var findings []domain.Finding
	for _, c := range e.checkers {
		findings = append(findings, c.Check(rec, rules)...)
	}
	return findings
}
