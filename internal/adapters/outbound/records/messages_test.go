package records_test

import (
	"path/filepath"
	"testing"

	"github.com/locqa/locqa/internal/adapters/outbound/records"
	"github.com/locqa/locqa/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageSource_FlatJSON(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "strings.en.json", `{"btn.save": "Save", "btn.ok": "OK"}`)
	fr := writeFile(t, dir, "strings.fr.json", `{"btn.save": "Sauvegarder", "btn.ok": "OK!", "extra": "ignored"}`)

	recs, err := records.NewMessageSource(src, []string{fr}, "").Load()
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, domain.TranslationRecord{Key: "btn.ok", Source: "OK", Target: "OK!", Language: "fr"}, recs[0])
	assert.Equal(t, domain.TranslationRecord{Key: "btn.save", Source: "Save", Target: "Sauvegarder", Language: "fr"}, recs[1])
}

func TestMessageSource_MissingTargetKeyIsEmpty(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "strings.en.json", `{"a": "One", "b": "Two"}`)
	de := writeFile(t, dir, "strings.de.json", `{"a": "Eins"}`)

	recs, err := records.NewMessageSource(src, []string{de}, "").Load()
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "b", recs[1].Key)
	assert.Empty(t, recs[1].Target)
	assert.Equal(t, "de", recs[1].Language)
}

func TestMessageSource_TargetFilesInGivenOrder(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "active.en.toml", "greeting = \"Hello\"\n")
	ja := writeFile(t, dir, "active.ja.toml", "greeting = \"こんにちは\"\n")
	fr := writeFile(t, dir, "active.fr-FR.toml", "greeting = \"Bonjour\"\n")

	recs, err := records.NewMessageSource(src, []string{ja, fr}, "").Load()
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "ja", recs[0].Language)
	assert.Equal(t, "こんにちは", recs[0].Target)
	assert.Equal(t, "fr-FR", recs[1].Language)
	assert.Equal(t, "Bonjour", recs[1].Target)
}

func TestMessageSource_YAMLPluralUsesOther(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "app.en.yaml", "items:\n  one: \"{{.Count}} item\"\n  other: \"{{.Count}} items\"\n")
	fr := writeFile(t, dir, "app.fr.yaml", "items:\n  one: \"{{.Count}} article\"\n  other: \"{{.Count}} articles\"\n")

	recs, err := records.NewMessageSource(src, []string{fr}, "").Load()
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "items", recs[0].Key)
	assert.Equal(t, "{{.Count}} items", recs[0].Source)
	assert.Equal(t, "{{.Count}} articles", recs[0].Target)
}

func TestMessageSource_LanguageOverride(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "en.json", `{"k": "Save"}`)
	tgt := writeFile(t, dir, "fr.json", `{"k": "Enregistrer"}`)

	recs, err := records.NewMessageSource(src, []string{tgt}, "fr-CA").Load()
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "fr-CA", recs[0].Language)
}

func TestMessageSource_NoTargets(t *testing.T) {
	src := writeFile(t, t.TempDir(), "strings.en.json", `{}`)
	_, err := records.NewMessageSource(src, nil, "").Load()
	assert.Error(t, err)
}

func TestMessageSource_MalformedTarget(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "strings.en.json", `{"k": "v"}`)
	bad := writeFile(t, dir, "strings.fr.json", `{"k": `)

	_, err := records.NewMessageSource(src, []string{bad}, "").Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), filepath.Base(bad))
}

func TestMessageSource_FlatCatalogWithFieldNameKeys(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "strings.en.json", `{"description": "Product description", "title": "Title", "save": "Save", "other": "Other"}`)
	fr := writeFile(t, dir, "strings.fr.json", `{"description": "Description du produit", "title": "Titre", "save": "Enregistrer", "other": "Autre"}`)

	recs, err := records.NewMessageSource(src, []string{fr}, "").Load()
	require.NoError(t, err)
	require.Len(t, recs, 4)

	assert.Equal(t, domain.TranslationRecord{Key: "description", Source: "Product description", Target: "Description du produit", Language: "fr"}, recs[0])
	assert.Equal(t, "other", recs[1].Key)
	assert.Equal(t, "Autre", recs[1].Target)
	assert.Equal(t, "save", recs[2].Key)
	assert.Equal(t, "title", recs[3].Key)
}

func TestMessageSource_FlatYAMLWithFieldNameKeys(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "app.en.yaml", "id: Identifier\nhash: Hash\n")
	de := writeFile(t, dir, "app.de.yaml", "id: Kennung\nhash: Prüfsumme\n")

	recs, err := records.NewMessageSource(src, []string{de}, "").Load()
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, domain.TranslationRecord{Key: "hash", Source: "Hash", Target: "Prüfsumme", Language: "de"}, recs[0])
	assert.Equal(t, domain.TranslationRecord{Key: "id", Source: "Identifier", Target: "Kennung", Language: "de"}, recs[1])
}
