package check

import (
	"fmt"
	"strings"

	"github.com/locqa/locqa/internal/domain"
)

// DefaultPlaceholderMarkers are the literal markers that must survive
// translation. Occurrence counts and ordering are not compared.
var DefaultPlaceholderMarkers = []string{"{{", "}}", "%s"}

// PlaceholderChecker reports markers present in the source but missing from
// the target, one finding per marker.
type PlaceholderChecker struct {
	markers []string
}

func NewPlaceholderChecker(markers ...string) *PlaceholderChecker {
	m := make([]string, 0, len(markers))
	for _, marker := range markers {
		if marker != "" {
			m = append(m, marker)
		}
	}
	return &PlaceholderChecker{markers: m}
}

func (c *PlaceholderChecker) Category() domain.Category { return domain.CategoryPlaceholder }

// Markers returns the configured markers in check order.
func (c *PlaceholderChecker) Markers() []string {
	out := make([]string, len(c.markers))
	copy(out, c.markers)
	return out
}

func (c *PlaceholderChecker) Check(rec domain.TranslationRecord, _ *domain.RuleSet) []domain.Finding {
	var findings []domain.Finding
	for _, ph := range c.markers {
		if strings.Contains(rec.Source, ph) && !strings.Contains(rec.Target, ph) {
			findings = append(findings, domain.NewFinding(rec.Key, domain.ConditionPlaceholderMissing,
				fmt.Sprintf("Missing placeholder '%s'", ph)))
		}
	}
	return findings
}
