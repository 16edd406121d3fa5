package domain

// Summary is the caller-facing verdict of a run.
type Summary struct {
	Pass   bool `json:"pass"`
	Issues int  `json:"issues"`
}

// Report is the result of one batch run.
type Report struct {
	Summary Summary   `json:"summary"`
	Checks  []Finding `json:"checks"`
}

// NewReport assembles a report from findings already in batch order.
func NewReport(findings []Finding) *Report {
	checks := make([]Finding, len(findings))
	copy(checks, findings)
	return &Report{
		Summary: Summary{
			Pass:   len(checks) == 0,
			Issues: len(checks),
		},
		Checks: checks,
	}
}

// Blockers counts findings whose severity is fatal.
func (r *Report) Blockers() int {
	n := 0
	for _, f := range r.Checks {
		if f.Severity.Fatal() {
			n++
		}
	}
	return n
}

// Warnings counts advisory findings.
func (r *Report) Warnings() int {
	return len(r.Checks) - r.Blockers()
}

// CountByCategory tallies findings per category.
func (r *Report) CountByCategory() map[Category]int {
	counts := make(map[Category]int)
	for _, f := range r.Checks {
		counts[f.Category]++
	}
	return counts
}

// Failed applies a fail policy to the report.
func (r *Report) Failed(policy FailPolicy) bool {
	switch policy {
	case FailOnAny:
		return !r.Summary.Pass
	case FailNever:
		return false
	default:
		return r.Blockers() > 0
	}
}
