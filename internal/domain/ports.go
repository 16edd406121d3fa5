package domain

// ConfigLoader reads project configuration.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// RecordSource materializes a batch of translation records.
type RecordSource interface {
	Load() ([]TranslationRecord, error)
}

// RuleSetLoader assembles a RuleSet from a glossary and optional length limits.
// An empty lengthsPath means no length limits.
type RuleSetLoader interface {
	Load(glossaryPath, lengthsPath string) (*RuleSet, error)
}

// RecordOverlay rewrites records before evaluation, e.g. human corrections.
type RecordOverlay interface {
	Apply(path string, records []TranslationRecord) ([]TranslationRecord, error)
}

// ReportWriter persists a finished report.
type ReportWriter interface {
	Write(path string, report *Report) error
}

// RunHistory stores one entry per QA run.
type RunHistory interface {
	Save(projectPath string, entry RunEntry) error
	Load(projectPath string) ([]RunEntry, error)
}

// GitInfo resolves the revision a run was made against.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
	IsDirty(projectPath string) (bool, error)
}
