// Package report persists QA reports as JSON files.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/locqa/locqa/internal/domain"
)

// JSONWriter implements domain.ReportWriter.
type JSONWriter struct{}

// New creates a JSONWriter.
func New() *JSONWriter { return &JSONWriter{} }

// Encode renders a report as indented JSON, keeping non-ASCII text and
// placeholder braces as written.
func Encode(r *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return nil, fmt.Errorf("encoding report: %w", err)
	}
	return buf.Bytes(), nil
}

// Write encodes the report to path, creating parent directories.
func (w *JSONWriter) Write(path string, r *domain.Report) error {
	data, err := Encode(r)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
