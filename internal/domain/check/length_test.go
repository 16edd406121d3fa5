package check_test

import (
	"testing"

	"github.com/locqa/locqa/internal/domain"
	"github.com/locqa/locqa/internal/domain/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLength_AtLimitPasses(t *testing.T) {
	rules := &domain.RuleSet{LengthLimits: map[string]int{"btn.ok": 5}}
	rec := domain.TranslationRecord{Key: "btn.ok", Source: "OK", Target: "12345", Language: "fr"}
	assert.Empty(t, check.NewLengthChecker().Check(rec, rules))
}

func TestLength_OneOverLimitIsBlocker(t *testing.T) {
	rules := &domain.RuleSet{LengthLimits: map[string]int{"btn.ok": 5}}
	rec := domain.TranslationRecord{Key: "btn.ok", Source: "OK", Target: "123456", Language: "fr"}

	findings := check.NewLengthChecker().Check(rec, rules)

	require.Len(t, findings, 1)
	assert.Equal(t, domain.CategoryLength, findings[0].Category)
	assert.Equal(t, domain.SeverityBlocker, findings[0].Severity)
	assert.Equal(t, "Over length limit 5 (got 6)", findings[0].Message)
}

func TestLength_CountsRunesNotBytes(t *testing.T) {
	rules := &domain.RuleSet{LengthLimits: map[string]int{"k": 2}}
	rec := domain.TranslationRecord{Key: "k", Source: "Save", Target: "保存", Language: "ja"}
	assert.Empty(t, check.NewLengthChecker().Check(rec, rules))
}

func TestLength_NoLimitNoCheck(t *testing.T) {
	rules := &domain.RuleSet{LengthLimits: map[string]int{"other": 1}}
	rec := domain.TranslationRecord{Key: "k", Source: "x", Target: "a very long target", Language: "fr"}
	assert.Empty(t, check.NewLengthChecker().Check(rec, rules))
}

func TestLength_ZeroLimitRejectsNonEmptyTarget(t *testing.T) {
	rules := &domain.RuleSet{LengthLimits: map[string]int{"k": 0}}

	assert.Len(t, check.NewLengthChecker().Check(domain.TranslationRecord{Key: "k", Target: "a", Language: "fr"}, rules), 1)
	assert.Empty(t, check.NewLengthChecker().Check(domain.TranslationRecord{Key: "k", Target: "", Language: "fr"}, rules))
}
