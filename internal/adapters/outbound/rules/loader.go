// Package rules loads glossary and length-limit documents into a RuleSet.
// Documents may be JSON, YAML or TOML and are checked against an embedded
// JSON Schema before decoding.
package rules

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/locqa/locqa/internal/domain"
	"github.com/locqa/locqa/internal/pkg/logger"
)

//go:embed schemas/glossary.schema.json
var glossarySchemaJSON []byte

//go:embed schemas/lengths.schema.json
var lengthsSchemaJSON []byte

// lengthLimitsKey wraps limits in metadata files; bare mappings are accepted too.
const lengthLimitsKey = "length_limits"

var (
	schemasOnce    sync.Once
	glossarySchema *gojsonschema.Schema
	lengthsSchema  *gojsonschema.Schema
	schemasErr     error
)

func loadSchemas() error {
	schemasOnce.Do(func() {
		glossarySchema, schemasErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(glossarySchemaJSON))
		if schemasErr != nil {
			schemasErr = fmt.Errorf("compiling glossary schema: %w", schemasErr)
			return
		}
		lengthsSchema, schemasErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(lengthsSchemaJSON))
		if schemasErr != nil {
			schemasErr = fmt.Errorf("compiling length limits schema: %w", schemasErr)
		}
	})
	return schemasErr
}

type glossaryDoc struct {
	PreferredTerms map[string]map[string]string `json:"preferred_terms"`
	Forbidden      map[string][]string          `json:"forbidden"`
}

// Loader implements domain.RuleSetLoader over files on disk.
type Loader struct{}

// New creates a Loader.
func New() *Loader { return &Loader{} }

// Load reads the glossary and, when lengthsPath is set, the length limits.
// An empty glossaryPath yields a rule set without terminology rules.
func (l *Loader) Load(glossaryPath, lengthsPath string) (*domain.RuleSet, error) {
	if err := loadSchemas(); err != nil {
		return nil, err
	}

	rs := &domain.RuleSet{}

	if glossaryPath != "" {
		doc, err := readDocument(glossaryPath)
		if err != nil {
			return nil, err
		}
		if err := validateAgainst(glossarySchema, doc, glossaryPath); err != nil {
			return nil, err
		}
		var g glossaryDoc
		if err := remarshal(doc, &g); err != nil {
			return nil, fmt.Errorf("decoding glossary %s: %w", glossaryPath, err)
		}
		rs.PreferredTerms = g.PreferredTerms
		rs.ForbiddenTerms = g.Forbidden
		logger.Debug("Loaded glossary",
			zap.String("path", glossaryPath),
			zap.Int("preferred_terms", len(g.PreferredTerms)),
			zap.Int("forbidden_languages", len(g.Forbidden)),
		)
	}

	if lengthsPath != "" {
		doc, err := readDocument(lengthsPath)
		if err != nil {
			return nil, err
		}
		limitsDoc := unwrapLengthLimits(doc)
		if err := validateAgainst(lengthsSchema, limitsDoc, lengthsPath); err != nil {
			return nil, err
		}
		var limits map[string]int
		if err := remarshal(limitsDoc, &limits); err != nil {
			return nil, fmt.Errorf("decoding length limits %s: %w", lengthsPath, err)
		}
		rs.LengthLimits = limits
		logger.Debug("Loaded length limits",
			zap.String("path", lengthsPath),
			zap.Int("limits", len(limits)),
		)
	}

	if err := rs.Validate(); err != nil {
		return nil, err
	}
	return rs, nil
}

// readDocument decodes a JSON, YAML or TOML file into generic values,
// choosing the format from the file extension.
func readDocument(path string) (interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc interface{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &doc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	case ".toml":
		var m map[string]interface{}
		err = toml.Unmarshal(data, &m)
		doc = m
	default:
		return nil, fmt.Errorf("%w: unsupported rule file format %q (%s)", domain.ErrInvalidRuleSet, ext, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", domain.ErrInvalidRuleSet, path, err)
	}
	return doc, nil
}

func unwrapLengthLimits(doc interface{}) interface{} {
	if m, ok := doc.(map[string]interface{}); ok {
		if inner, ok := m[lengthLimitsKey].(map[string]interface{}); ok {
			return inner
		}
	}
	return doc
}

func validateAgainst(schema *gojsonschema.Schema, doc interface{}, path string) error {
	if doc == nil {
		doc = map[string]interface{}{}
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidRuleSet, path, err)
	}
	if result.Valid() {
		return nil
	}

	var sb strings.Builder
	for i, e := range result.Errors() {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(e.Field())
		sb.WriteString(": ")
		sb.WriteString(e.Description())
	}
	return fmt.Errorf("%w: %s: %s", domain.ErrInvalidRuleSet, path, sb.String())
}

func remarshal(doc interface{}, v interface{}) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
