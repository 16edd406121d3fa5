package domain

import "fmt"

// Category groups findings by the checker that produced them.
type Category string

const (
	CategoryTerminology Category = "terminology"
	CategoryPlaceholder Category = "placeholder"
	CategoryLength      Category = "length"
	CategoryStyle       Category = "style"
)

// ValidCategories lists the built-in categories in evaluation order.
var ValidCategories = []Category{
	CategoryTerminology,
	CategoryPlaceholder,
	CategoryLength,
	CategoryStyle,
}

// IsValidCategory reports whether c is a built-in category.
func IsValidCategory(c Category) bool {
	for _, v := range ValidCategories {
		if v == c {
			return true
		}
	}
	return false
}

// Severity classifies how a finding affects release.
type Severity string

const (
	SeverityBlocker Severity = "blocker"
	SeverityWarn    Severity = "warn"
)

// Fatal reports whether the severity must fail QA.
func (s Severity) Fatal() bool { return s == SeverityBlocker }

// Condition is a single rule outcome a checker can detect.
type Condition string

const (
	ConditionPreferredTermMissing Condition = "preferred_term_missing"
	ConditionForbiddenTerm        Condition = "forbidden_term"
	ConditionPlaceholderMissing   Condition = "placeholder_missing"
	ConditionOverLength           Condition = "over_length"
	ConditionExclamationMark      Condition = "exclamation_mark"
)

// Classification is the fixed category and severity of a condition.
type Classification struct {
	Condition Condition `json:"condition"`
	Category  Category  `json:"category"`
	Severity  Severity  `json:"severity"`
}

// severityPolicy never varies at runtime.
var severityPolicy = []Classification{
	{ConditionPreferredTermMissing, CategoryTerminology, SeverityWarn},
	{ConditionForbiddenTerm, CategoryTerminology, SeverityBlocker},
	{ConditionPlaceholderMissing, CategoryPlaceholder, SeverityBlocker},
	{ConditionOverLength, CategoryLength, SeverityBlocker},
	{ConditionExclamationMark, CategoryStyle, SeverityWarn},
}

// SeverityPolicy returns a copy of the condition table.
func SeverityPolicy() []Classification {
	out := make([]Classification, len(severityPolicy))
	copy(out, severityPolicy)
	return out
}

// Classify looks up the classification of a condition.
func Classify(c Condition) (Classification, bool) {
	for _, cl := range severityPolicy {
		if cl.Condition == c {
			return cl, true
		}
	}
	return Classification{}, false
}

// Finding is one detected issue. Findings are values and are never mutated
// after a checker returns them.
type Finding struct {
	Key       string    `json:"key"`
	Category  Category  `json:"type"`
	Severity  Severity  `json:"severity"`
	Message   string    `json:"message"`
	Condition Condition `json:"-"`
}

// NewFinding builds a finding whose category and severity come from the
// severity policy. It panics on a condition missing from the policy, which
// is a programming error in a checker.
func NewFinding(key string, c Condition, message string) Finding {
	cl, ok := Classify(c)
	if !ok {
		panic(fmt.Sprintf("domain: condition %q has no severity classification", c))
	}
	return Finding{
		Key:       key,
		Category:  cl.Category,
		Severity:  cl.Severity,
		Message:   message,
		Condition: c,
	}
}
