package domain

// RunEntry is one line of QA run history.
type RunEntry struct {
	RunID      string `json:"run_id"`
	Timestamp  string `json:"timestamp"`
	CommitHash string `json:"commit_hash,omitempty"`
	Dirty      bool   `json:"dirty,omitempty"`
	Records    int    `json:"records"`
	Pass       bool   `json:"pass"`
	Issues     int    `json:"issues"`
	Blockers   int    `json:"blockers"`
	Warnings   int    `json:"warnings"`
}

// NewRunEntry summarizes a report into a history entry.
func NewRunEntry(runID, timestamp, commitHash string, records int, r *Report) RunEntry {
	return RunEntry{
		RunID:      runID,
		Timestamp:  timestamp,
		CommitHash: commitHash,
		Records:    records,
		Pass:       r.Summary.Pass,
		Issues:     r.Summary.Issues,
		Blockers:   r.Blockers(),
		Warnings:   r.Warnings(),
	}
}
