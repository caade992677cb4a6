package llm

// BuildBibliographicJSONSchema returns a JSON-Schema (draft 2020-12 subset)
// as a generic map. It is shown to the model as the output contract and used
// locally to validate what comes back.
func BuildBibliographicJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"author":      map[string]any{"type": "string"},
			"author_last": map[string]any{"type": "string"},
			"editor":      map[string]any{"type": "string"},
			"editor_last": map[string]any{"type": "string"},
			"year":        map[string]any{"type": "string", "pattern": `^\d{4}$`},
			"title":       map[string]any{"type": "string", "minLength": 1},
			"subtitle":    map[string]any{"type": "string"},
		},
		"required": []string{"title"},
	}
}

// BuildScreenshotJSONSchema is the screenshot counterpart of
// BuildBibliographicJSONSchema.
func BuildScreenshotJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"application":  map[string]any{"type": "string"},
			"date":         map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
			"time":         map[string]any{"type": "string", "pattern": `^\d{2}:\d{2}$`},
			"content_type": map[string]any{"type": "string"},
			"main_subject": map[string]any{"type": "string", "minLength": 1},
		},
		"required": []string{"main_subject"},
	}
}
