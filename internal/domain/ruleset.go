package domain

import (
	"fmt"
	"sort"
)

// RuleSet is the linguistic configuration every checker consults. It is
// read-only for the duration of a run.
type RuleSet struct {
	// PreferredTerms maps a source-language term to the expected translation
	// per language code.
	PreferredTerms map[string]map[string]string `json:"preferred_terms,omitempty"`
	// ForbiddenTerms maps a language code to substrings that must not appear
	// in a target.
	ForbiddenTerms map[string][]string `json:"forbidden,omitempty"`
	// LengthLimits maps a record key to the maximum rune count of its target.
	LengthLimits map[string]int `json:"length_limits,omitempty"`
}

// Validate rejects structurally malformed rule sets.
func (rs *RuleSet) Validate() error {
	if rs == nil {
		return fmt.Errorf("%w: rule set is nil", ErrInvalidRuleSet)
	}
	for _, term := range rs.SourceTerms() {
		if term == "" {
			return fmt.Errorf("%w: preferred_terms has an empty source term", ErrInvalidRuleSet)
		}
		for lang := range rs.PreferredTerms[term] {
			if lang == "" {
				return fmt.Errorf("%w: preferred_terms[%q] has an empty language code", ErrInvalidRuleSet, term)
			}
		}
	}
	for lang := range rs.ForbiddenTerms {
		if lang == "" {
			return fmt.Errorf("%w: forbidden has an empty language code", ErrInvalidRuleSet)
		}
	}
	for _, key := range sortedKeys(rs.LengthLimits) {
		if key == "" {
			return fmt.Errorf("%w: length_limits has an empty key", ErrInvalidRuleSet)
		}
		if limit := rs.LengthLimits[key]; limit < 0 {
			return fmt.Errorf("%w: length_limits[%q] is negative (%d)", ErrInvalidRuleSet, key, limit)
		}
	}
	return nil
}

// SourceTerms returns the preferred-term source terms in lexical order.
func (rs *RuleSet) SourceTerms() []string {
	return sortedKeys(rs.PreferredTerms)
}

// LengthLimit reports the limit configured for key, if any.
func (rs *RuleSet) LengthLimit(key string) (int, bool) {
	limit, ok := rs.LengthLimits[key]
	return limit, ok
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
