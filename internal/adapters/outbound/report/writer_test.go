package report_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/locqa/locqa/internal/adapters/outbound/report"
	"github.com/locqa/locqa/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_EmptyReport(t *testing.T) {
	data, err := report.Encode(domain.NewReport(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"summary":{"pass":true,"issues":0},"checks":[]}`, string(data))
}

func TestEncode_KeepsNonASCIIAndBraces(t *testing.T) {
	r := domain.NewReport([]domain.Finding{
		domain.NewFinding("greeting", domain.ConditionPlaceholderMissing, "Missing placeholder '{{'"),
		domain.NewFinding("btn.save", domain.ConditionForbiddenTerm, "Forbidden term 'Sauvegardé' found"),
	})

	data, err := report.Encode(r)
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, "Sauvegardé")
	assert.Contains(t, s, "{{")
	assert.NotContains(t, s, `\u00e9`)
	assert.Contains(t, s, "\n  \"summary\"")

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	checks := decoded["checks"].([]interface{})
	first := checks[0].(map[string]interface{})
	assert.Equal(t, "placeholder", first["type"])
	assert.Equal(t, "blocker", first["severity"])
	assert.NotContains(t, first, "condition")
}

func TestWrite_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "qa", "report.json")
	r := domain.NewReport([]domain.Finding{
		domain.NewFinding("btn.ok", domain.ConditionExclamationMark, "Avoid exclamation marks"),
	})

	require.NoError(t, report.New().Write(path, r))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got domain.Report
	require.NoError(t, json.Unmarshal(data, &got))
	assert.False(t, got.Summary.Pass)
	assert.Equal(t, 1, got.Summary.Issues)
	require.Len(t, got.Checks, 1)
	assert.Equal(t, domain.CategoryStyle, got.Checks[0].Category)
}
