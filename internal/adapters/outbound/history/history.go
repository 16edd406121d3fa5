package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/locqa/locqa/internal/domain"
)

const historyFile = ".locqa/history/runs.json"

// FileHistory implements domain.RunHistory using JSON file storage.
type FileHistory struct {
	limit int
}

// New creates a FileHistory. A positive limit keeps only the most recent entries.
func New(limit int) *FileHistory {
	return &FileHistory{limit: limit}
}

// Path returns the history file location for a project.
func Path(projectPath string) string {
	return filepath.Join(projectPath, historyFile)
}

func (h *FileHistory) Save(projectPath string, entry domain.RunEntry) error {
	entries, err := h.Load(projectPath)
	if err != nil {
		return err
	}

	entries = append(entries, entry)
	if h.limit > 0 && len(entries) > h.limit {
		entries = entries[len(entries)-h.limit:]
	}

	fp := Path(projectPath)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(fp, data, 0644)
}

func (h *FileHistory) Load(projectPath string) ([]domain.RunEntry, error) {
	fp := Path(projectPath)

	data, err := os.ReadFile(fp)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.RunEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", historyFile, err)
	}

	return entries, nil
}
