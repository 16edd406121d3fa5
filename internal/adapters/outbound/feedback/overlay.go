// Package feedback applies reviewer corrections to records before QA.
package feedback

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/locqa/locqa/internal/domain"
	"github.com/locqa/locqa/internal/pkg/logger"
)

// Edit is one line of an edits.jsonl file.
type Edit struct {
	Language string `json:"lang"`
	Key      string `json:"key"`
	New      string `json:"new"`
}

type editKey struct{ lang, key string }

// JSONLOverlay implements domain.RecordOverlay over a JSON Lines file of
// edits. The last edit for a (lang, key) pair wins.
type JSONLOverlay struct{}

// New creates a JSONLOverlay.
func New() *JSONLOverlay { return &JSONLOverlay{} }

// Apply returns a copy of records with matching targets replaced. A missing
// file leaves the records untouched.
func (o *JSONLOverlay) Apply(path string, records []domain.TranslationRecord) ([]domain.TranslationRecord, error) {
	out := make([]domain.TranslationRecord, len(records))
	copy(out, records)
	if path == "" {
		return out, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Info("No feedback file, skipping overlay", zap.String("path", path))
		return out, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading feedback: %w", err)
	}

	edits, err := parseEdits(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	applied := 0
	for i, rec := range out {
		if v, ok := edits[editKey{rec.Language, rec.Key}]; ok {
			out[i].Target = v
			applied++
		}
	}
	logger.Debug("Applied feedback",
		zap.String("path", path),
		zap.Int("edits", len(edits)),
		zap.Int("records_changed", applied),
	)
	return out, nil
}

// parseEdits decodes edits.jsonl content, keeping the last value per pair.
// Lines with an empty or missing lang, key or new are skipped.
func parseEdits(data []byte) (map[editKey]string, error) {
	edits := make(map[editKey]string)
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}
		var e Edit
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if e.Key == "" || e.Language == "" || e.New == "" {
			logger.Debug("Skipping incomplete feedback edit", zap.Int("line", line))
			continue
		}
		edits[editKey{e.Language, e.Key}] = e.New
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return edits, nil
}
