// Package records loads translation records from CSV tables and go-i18n
// message files.
package records

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/locqa/locqa/internal/domain"
)

// Columns lists the header names a CSV record table must carry.
var Columns = []string{"key", "source", "target", "lang"}

const utf8BOM = "\ufeff"

// CSVSource implements domain.RecordSource over a CSV file with a
// key,source,target,lang header. Column order is free and extra columns
// are ignored.
type CSVSource struct {
	Path string
}

// NewCSVSource creates a CSVSource for path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

func (s *CSVSource) Load() ([]domain.TranslationRecord, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("opening records: %w", err)
	}
	defer f.Close()

	recs, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.Path, err)
	}
	return recs, nil
}

// ReadCSV decodes records from a CSV stream in row order.
func ReadCSV(r io.Reader) ([]domain.TranslationRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("parsing header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}
	for _, col := range Columns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing column %q (header must include %s)", col, strings.Join(Columns, ","))
		}
	}

	var recs []domain.TranslationRecord
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing row: %w", err)
		}
		recs = append(recs, domain.TranslationRecord{
			Key:      cell(row, index["key"]),
			Source:   cell(row, index["source"]),
			Target:   cell(row, index["target"]),
			Language: cell(row, index["lang"]),
		})
	}
	return recs, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
