package records

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/locqa/locqa/internal/domain"
	"github.com/locqa/locqa/internal/pkg/logger"
)

var unmarshalFuncs = map[string]i18n.UnmarshalFunc{
	"json": json.Unmarshal,
	"toml": toml.Unmarshal,
	"yaml": yaml.Unmarshal,
	"yml":  yaml.Unmarshal,
}

// MessageSource implements domain.RecordSource over go-i18n message files:
// one source-language file and any number of translated files. Each target
// file contributes one record per source message.
type MessageSource struct {
	SourcePath  string
	TargetPaths []string
	// Language overrides the language parsed from target file names.
	Language string
}

// NewMessageSource creates a MessageSource.
func NewMessageSource(sourcePath string, targetPaths []string, lang string) *MessageSource {
	return &MessageSource{SourcePath: sourcePath, TargetPaths: targetPaths, Language: lang}
}

func (s *MessageSource) Load() ([]domain.TranslationRecord, error) {
	if len(s.TargetPaths) == 0 {
		return nil, fmt.Errorf("message source %s: no target files", s.SourcePath)
	}

	src, err := parseMessageFile(s.SourcePath)
	if err != nil {
		return nil, err
	}
	sourceText := src.texts
	ids := make([]string, 0, len(sourceText))
	for id := range sourceText {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var recs []domain.TranslationRecord
	for _, path := range s.TargetPaths {
		cat, err := parseMessageFile(path)
		if err != nil {
			return nil, err
		}

		lang := s.Language
		if lang == "" {
			if cat.tag == language.Und {
				return nil, fmt.Errorf("cannot determine language of %s: name it like strings.fr.json or pass a language", path)
			}
			lang = cat.tag.String()
		}

		targetText := cat.texts
		missing := 0
		for _, id := range ids {
			target, ok := targetText[id]
			if !ok {
				missing++
			}
			recs = append(recs, domain.TranslationRecord{
				Key:      id,
				Source:   sourceText[id],
				Target:   target,
				Language: lang,
			})
		}
		if missing > 0 {
			logger.Warn("Target file is missing source messages",
				zap.String("path", path),
				zap.String("lang", lang),
				zap.Int("missing", missing),
			)
		}
	}
	return recs, nil
}

// catalog is one parsed message file: its language from the file name and
// the singular text of every message.
type catalog struct {
	tag   language.Tag
	texts map[string]string
}

// parseMessageFile reads a flat key/value document directly so any key,
// including go-i18n field names like "description" or "other", is a message
// ID. Nested or plural documents go through go-i18n.
func parseMessageFile(path string) (*catalog, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading message file: %w", err)
	}
	// An empty buffer yields only the tag and format parsed from the path.
	head, err := i18n.ParseMessageFileBytes(nil, path, unmarshalFuncs)
	if err != nil {
		return nil, fmt.Errorf("parsing message file %s: %w", path, err)
	}

	if unmarshal, ok := unmarshalFuncs[head.Format]; ok && len(buf) > 0 {
		var flat map[string]string
		if err := unmarshal(buf, &flat); err == nil {
			return &catalog{tag: head.Tag, texts: flat}, nil
		}
	}

	mf, err := i18n.ParseMessageFileBytes(buf, path, unmarshalFuncs)
	if err != nil {
		return nil, fmt.Errorf("parsing message file %s: %w", path, err)
	}
	return &catalog{tag: mf.Tag, texts: messageTexts(mf)}, nil
}

// messageTexts maps message IDs to their singular text. Plural messages
// contribute their "other" form, falling back to "one".
func messageTexts(mf *i18n.MessageFile) map[string]string {
	out := make(map[string]string, len(mf.Messages))
	for _, m := range mf.Messages {
		text := m.Other
		if text == "" {
			text = m.One
		}
		out[m.ID] = text
	}
	return out
}
