package check

import (
	"strings"

	"github.com/locqa/locqa/internal/domain"
)

// StyleChecker flags exclamation marks in targets. Further style rules get
// their own checker.
type StyleChecker struct{}

func NewStyleChecker() *StyleChecker { return &StyleChecker{} }

func (c *StyleChecker) Category() domain.Category { return domain.CategoryStyle }

func (c *StyleChecker) Check(rec domain.TranslationRecord, _ *domain.RuleSet) []domain.Finding {
	if !strings.Contains(rec.Target, "!") {
		return nil
	}
	return []domain.Finding{
		domain.NewFinding(rec.Key, domain.ConditionExclamationMark, "Avoid exclamation marks"),
	}
}
