package domain

import "fmt"

// FailPolicy decides when a report fails a CI gate.
type FailPolicy string

const (
	FailOnBlocker FailPolicy = "blocker"
	FailOnAny     FailPolicy = "any"
	FailNever     FailPolicy = "never"
)

// ValidFailPolicies enumerates all recognized fail policies.
var ValidFailPolicies = []FailPolicy{FailOnBlocker, FailOnAny, FailNever}

// ValidLogLevels enumerates the accepted log.level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ProjectConfig holds project-level configuration loaded from .locqa.yaml.
type ProjectConfig struct {
	Glossary string     `yaml:"glossary" json:"glossary,omitempty"`
	Lengths  string     `yaml:"lengths"  json:"lengths,omitempty"`
	Feedback string     `yaml:"feedback" json:"feedback,omitempty"`
	Output   string     `yaml:"output"   json:"output,omitempty"`
	Workers  int        `yaml:"workers"  json:"workers,omitempty"`
	FailOn   FailPolicy `yaml:"fail_on"  json:"fail_on,omitempty"`
	Skip     SkipConfig `yaml:"skip"     json:"skip,omitempty"`
	Log      LogConfig  `yaml:"log"      json:"log,omitempty"`
}

// SkipConfig removes whole checker categories from a run.
type SkipConfig struct {
	Categories []Category `yaml:"categories" json:"categories,omitempty"`
}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	Level  string `yaml:"level"  json:"level,omitempty"`
	Format string `yaml:"format" json:"format,omitempty"`
}

// DefaultConfig returns the configuration used when no .locqa.yaml exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		Workers: 1,
		FailOn:  FailOnBlocker,
		Log:     LogConfig{Level: "warn", Format: "console"},
	}
}

// IsSkippedCategory reports whether the category is excluded.
func (c ProjectConfig) IsSkippedCategory(cat Category) bool {
	for _, s := range c.Skip.Categories {
		if s == cat {
			return true
		}
	}
	return false
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0 (got %d)", ErrInvalidConfig, c.Workers)
	}

	if c.FailOn != "" && !isValidFailPolicy(c.FailOn) {
		return fmt.Errorf("%w: unknown fail_on %q (valid: blocker, any, never)", ErrInvalidConfig, c.FailOn)
	}

	for _, cat := range c.Skip.Categories {
		if !IsValidCategory(cat) {
			return fmt.Errorf("%w: unknown category %q in skip.categories", ErrInvalidConfig, cat)
		}
	}

	if len(c.Skip.Categories) >= len(ValidCategories) {
		return fmt.Errorf("%w: cannot skip all categories (must have at least one active)", ErrInvalidConfig)
	}

	if c.Log.Level != "" && !contains(ValidLogLevels, c.Log.Level) {
		return fmt.Errorf("%w: unknown log.level %q", ErrInvalidConfig, c.Log.Level)
	}

	if c.Log.Format != "" && c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("%w: unknown log.format %q (valid: console, json)", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

// Merge overlays explicit (non-zero) values from override on top of c.
func (c ProjectConfig) Merge(override ProjectConfig) ProjectConfig {
	result := c
	if override.Glossary != "" {
		result.Glossary = override.Glossary
	}
	if override.Lengths != "" {
		result.Lengths = override.Lengths
	}
	if override.Feedback != "" {
		result.Feedback = override.Feedback
	}
	if override.Output != "" {
		result.Output = override.Output
	}
	if override.Workers > 0 {
		result.Workers = override.Workers
	}
	if override.FailOn != "" {
		result.FailOn = override.FailOn
	}
	// Explicit skips replace the base list entirely.
	if len(override.Skip.Categories) > 0 {
		result.Skip.Categories = override.Skip.Categories
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Log.Format != "" {
		result.Log.Format = override.Log.Format
	}
	return result
}

func isValidFailPolicy(p FailPolicy) bool {
	for _, v := range ValidFailPolicies {
		if v == p {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
