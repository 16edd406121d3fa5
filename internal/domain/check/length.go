package check

import (
	"fmt"
	"unicode/utf8"

	"github.com/locqa/locqa/internal/domain"
)

// LengthChecker enforces per-key maximum target length in runes.
type LengthChecker struct{}

func NewLengthChecker() *LengthChecker { return &LengthChecker{} }

func (c *LengthChecker) Category() domain.Category { return domain.CategoryLength }

func (c *LengthChecker) Check(rec domain.TranslationRecord, rules *domain.RuleSet) []domain.Finding {
	limit, ok := rules.LengthLimit(rec.Key)
	if !ok {
		return nil
	}
	n := utf8.RuneCountInString(rec.Target)
	if n <= limit {
		return nil
	}
	return []domain.Finding{
		domain.NewFinding(rec.Key, domain.ConditionOverLength,
			fmt.Sprintf("Over length limit %d (got %d)", limit, n)),
	}
}
