package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/locqa/locqa/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up in the project root.
const FileName = ".locqa.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .locqa.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .locqa.yaml from projectPath and merges it over the defaults.
// Returns DefaultConfig if the file does not exist. Relative input and
// output paths are resolved against projectPath.
func (l *YAMLLoader) Load(projectPath string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	// Validate before merging so typos in the user's raw input surface.
	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	cfg.Glossary = resolve(projectPath, cfg.Glossary)
	cfg.Lengths = resolve(projectPath, cfg.Lengths)
	cfg.Feedback = resolve(projectPath, cfg.Feedback)
	cfg.Output = resolve(projectPath, cfg.Output)

	return domain.DefaultConfig().Merge(cfg), nil
}

func resolve(projectPath, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(projectPath, p)
}
