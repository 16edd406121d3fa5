package check_test

import (
	"testing"

	"github.com/locqa/locqa/internal/domain"
	"github.com/locqa/locqa/internal/domain/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func glossaryRules() *domain.RuleSet {
	return &domain.RuleSet{
		PreferredTerms: map[string]map[string]string{
			"Save":    {"fr": "Enregistrer", "ja": "保存"},
			"Account": {"fr": "Compte"},
		},
		ForbiddenTerms: map[string][]string{
			"fr": {"cliquez", "", "Sauver"},
		},
	}
}

func TestTerminology_PreferredTermMissingIsWarn(t *testing.T) {
	rec := domain.TranslationRecord{Key: "btn.save", Source: "Save", Target: "Sauvegarder", Language: "fr"}

	findings := check.NewTerminologyChecker().Check(rec, glossaryRules())

	require.Len(t, findings, 1)
	assert.Equal(t, domain.CategoryTerminology, findings[0].Category)
	assert.Equal(t, domain.SeverityWarn, findings[0].Severity)
	assert.Equal(t, "btn.save", findings[0].Key)
	assert.Contains(t, findings[0].Message, "'Enregistrer'")
	assert.Contains(t, findings[0].Message, "'Save'")
}

func TestTerminology_PreferredTermPresent(t *testing.T) {
	rec := domain.TranslationRecord{Key: "btn.save", Source: "Save", Target: "Enregistrer", Language: "fr"}
	assert.Empty(t, check.NewTerminologyChecker().Check(rec, glossaryRules()))
}

func TestTerminology_NoExpectationForLanguageIsSkipped(t *testing.T) {
	rec := domain.TranslationRecord{Key: "acct", Source: "Account", Target: "Konto", Language: "de"}
	assert.Empty(t, check.NewTerminologyChecker().Check(rec, glossaryRules()))
}

func TestTerminology_SourceTermAbsent(t *testing.T) {
	rec := domain.TranslationRecord{Key: "k", Source: "Cancel", Target: "Annuler", Language: "fr"}
	assert.Empty(t, check.NewTerminologyChecker().Check(rec, glossaryRules()))
}

func TestTerminology_ForbiddenTermIsBlocker(t *testing.T) {
	rec := domain.TranslationRecord{Key: "k", Source: "Keep", Target: "Sauver le fichier", Language: "fr"}

	findings := check.NewTerminologyChecker().Check(rec, glossaryRules())

	require.Len(t, findings, 1)
	assert.Equal(t, domain.SeverityBlocker, findings[0].Severity)
	assert.Equal(t, "Forbidden term 'Sauver' found", findings[0].Message)
}

// TestTerminology_ForbiddenIsCaseSensitive documents that "cliquez" does not
// match "Cliquez ici".
func TestTerminology_ForbiddenIsCaseSensitive(t *testing.T) {
	rules := &domain.RuleSet{ForbiddenTerms: map[string][]string{"fr": {"cliquez"}}}
	rec := domain.TranslationRecord{Key: "k", Source: "Click here", Target: "Cliquez ici", Language: "fr"}
	assert.Empty(t, check.NewTerminologyChecker().Check(rec, rules))
}

func TestTerminology_EmptyForbiddenTermIgnored(t *testing.T) {
	rules := &domain.RuleSet{ForbiddenTerms: map[string][]string{"fr": {""}}}
	rec := domain.TranslationRecord{Key: "k", Source: "x", Target: "anything", Language: "fr"}
	assert.Empty(t, check.NewTerminologyChecker().Check(rec, rules))
}

func TestTerminology_DuplicateForbiddenTermReportedOnce(t *testing.T) {
	rules := &domain.RuleSet{ForbiddenTerms: map[string][]string{"fr": {"bad", "bad"}}}
	rec := domain.TranslationRecord{Key: "k", Source: "x", Target: "bad", Language: "fr"}
	assert.Len(t, check.NewTerminologyChecker().Check(rec, rules), 1)
}

func TestTerminology_PreferredBeforeForbiddenAndSortedBySourceTerm(t *testing.T) {
	rec := domain.TranslationRecord{
		Key:      "k",
		Source:   "Save your Account",
		Target:   "Sauver votre profil",
		Language: "fr",
	}

	findings := check.NewTerminologyChecker().Check(rec, glossaryRules())

	require.Len(t, findings, 3)
	assert.Contains(t, findings[0].Message, "'Account'")
	assert.Contains(t, findings[1].Message, "'Save'")
	assert.Equal(t, domain.SeverityBlocker, findings[2].Severity)
}
