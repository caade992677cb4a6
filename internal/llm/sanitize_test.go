package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONPayload(t *testing.T) {
	plain := `{"title":"T"}`
	assert.JSONEq(t, plain, string(ExtractJSONPayload(plain)))

	fenced := "```json\n{\"title\":\"T\"}\n```"
	assert.JSONEq(t, plain, string(ExtractJSONPayload(fenced)))

	chatty := "Here is the data you asked for:\n{\"title\":\"T\"}\nLet me know!"
	assert.JSONEq(t, plain, string(ExtractJSONPayload(chatty)))
}

func TestDropEmptyOptionals(t *testing.T) {
	doc := []byte(`{"title":"T","author":null,"editor":"","year":"unknown","subtitle":"  keep me  "}`)
	cleaned, dropped, err := DropEmptyOptionals(doc, "title")
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(cleaned, &m))
	assert.Equal(t, "T", m["title"])
	assert.Equal(t, "keep me", m["subtitle"])
	assert.NotContains(t, m, "author")
	assert.NotContains(t, m, "editor")
	assert.NotContains(t, m, "year")
	assert.ElementsMatch(t, []string{"author", "editor", "year"}, dropped)
}

func TestDropEmptyOptionalsNeverTouchesRequired(t *testing.T) {
	doc := []byte(`{"main_subject":""}`)
	cleaned, dropped, err := DropEmptyOptionals(doc, "main_subject")
	require.NoError(t, err)
	assert.Empty(t, dropped)

	var m map[string]any
	require.NoError(t, json.Unmarshal(cleaned, &m))
	assert.Contains(t, m, "main_subject")
}

func TestValidateJSONAgainstSchema(t *testing.T) {
	schema := BuildBibliographicJSONSchema()

	require.NoError(t, ValidateJSONAgainstSchema(schema, []byte(`{"title":"T","year":"1925"}`)))
	require.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"year":"1925"}`)), "title is required")
	require.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"title":"T","year":"around 1925"}`)))
	require.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{"title":"T","isbn":"x"}`)), "additionalProperties is false")

	shot := BuildScreenshotJSONSchema()
	require.NoError(t, ValidateJSONAgainstSchema(shot, []byte(`{"main_subject":"S","date":"2025-01-15","time":"14:30"}`)))
	require.Error(t, ValidateJSONAgainstSchema(shot, []byte(`{"main_subject":"S","time":"2:30 PM"}`)))
}
