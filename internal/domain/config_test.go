package domain_test

import (
	"testing"

	"github.com/locqa/locqa/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, domain.FailOnBlocker, cfg.FailOn)
	assert.Empty(t, cfg.Skip.Categories)
	assert.NoError(t, cfg.Validate())
}

func TestIsSkippedCategory(t *testing.T) {
	cfg := domain.ProjectConfig{
		Skip: domain.SkipConfig{Categories: []domain.Category{domain.CategoryStyle}},
	}
	assert.True(t, cfg.IsSkippedCategory(domain.CategoryStyle))
	assert.False(t, cfg.IsSkippedCategory(domain.CategoryLength))
}

func TestValidate_UnknownFailPolicy(t *testing.T) {
	cfg := domain.ProjectConfig{FailOn: "sometimes"}
	err := cfg.Validate()
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "sometimes")
}

func TestValidate_NegativeWorkers(t *testing.T) {
	assert.Error(t, domain.ProjectConfig{Workers: -1}.Validate())
}

func TestValidate_UnknownSkipCategory(t *testing.T) {
	cfg := domain.ProjectConfig{Skip: domain.SkipConfig{Categories: []domain.Category{"grammar"}}}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "grammar")
}

func TestValidate_CannotSkipAll(t *testing.T) {
	cfg := domain.ProjectConfig{Skip: domain.SkipConfig{Categories: domain.ValidCategories}}
	assert.Error(t, cfg.Validate())
}

func TestValidate_LogSettings(t *testing.T) {
	assert.Error(t, domain.ProjectConfig{Log: domain.LogConfig{Level: "verbose"}}.Validate())
	assert.Error(t, domain.ProjectConfig{Log: domain.LogConfig{Format: "xml"}}.Validate())
	assert.NoError(t, domain.ProjectConfig{Log: domain.LogConfig{Level: "debug", Format: "json"}}.Validate())
}

func TestMerge_ExplicitValuesWin(t *testing.T) {
	base := domain.DefaultConfig()
	base.Glossary = "glossary.json"

	got := base.Merge(domain.ProjectConfig{
		Lengths: "meta.json",
		Workers: 4,
		FailOn:  domain.FailOnAny,
		Skip:    domain.SkipConfig{Categories: []domain.Category{domain.CategoryStyle}},
	})

	assert.Equal(t, "glossary.json", got.Glossary)
	assert.Equal(t, "meta.json", got.Lengths)
	assert.Equal(t, 4, got.Workers)
	assert.Equal(t, domain.FailOnAny, got.FailOn)
	assert.Equal(t, "warn", got.Log.Level)
	assert.True(t, got.IsSkippedCategory(domain.CategoryStyle))
}
