package check

import (
	"fmt"
	"strings"

	"github.com/locqa/locqa/internal/domain"
)

// TerminologyChecker enforces preferred and forbidden glossary terms using
// case-sensitive substring containment.
type TerminologyChecker struct{}

func NewTerminologyChecker() *TerminologyChecker { return &TerminologyChecker{} }

func (c *TerminologyChecker) Category() domain.Category { return domain.CategoryTerminology }

func (c *TerminologyChecker) Check(rec domain.TranslationRecord, rules *domain.RuleSet) []domain.Finding {
	var findings []domain.Finding

	// Source terms are walked in lexical order so output is reproducible.
	for _, term := range rules.SourceTerms() {
		if !strings.Contains(rec.Source, term) {
			continue
		}
		expected, ok := rules.PreferredTerms[term][rec.Language]
		if !ok || expected == "" {
			continue
		}
		if !strings.Contains(rec.Target, expected) {
			findings = append(findings, domain.NewFinding(rec.Key, domain.ConditionPreferredTermMissing,
				fmt.Sprintf("Preferred term for '%s' should be '%s'", term, expected)))
		}
	}

	seen := make(map[string]bool)
	for _, bad := range rules.ForbiddenTerms[rec.Language] {
		if bad == "" || seen[bad] {
			continue
		}
		seen[bad] = true
		if strings.Contains(rec.Target, bad) {
			findings = append(findings, domain.NewFinding(rec.Key, domain.ConditionForbiddenTerm,
				fmt.Sprintf("Forbidden term '%s' found", bad)))
		}
	}

	return findings
}
