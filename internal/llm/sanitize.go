package llm

import (
	"encoding/json"
	"strings"
)

// ExtractJSONPayload pulls the JSON object out of a model reply that may be
// wrapped in markdown fences or surrounded by prose. Returns the input
// unchanged when no object boundaries are found; validation catches the rest.
func ExtractJSONPayload(content string) []byte {
	s := strings.TrimSpace(content)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		s = s[start : end+1]
	}
	return []byte(s)
}

// DropEmptyOptionals removes null, empty-string, and "null"-string optional
// fields so the stricter schema can still validate. Required keys are never
// touched. Returns the cleaned document and the dropped key names.
func DropEmptyOptionals(doc []byte, required ...string) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, nil, err
	}

	req := make(map[string]struct{}, len(required))
	for _, k := range required {
		req[k] = struct{}{}
	}

	var dropped []string
	for k, v := range m {
		if _, isRequired := req[k]; isRequired {
			continue
		}
		switch t := v.(type) {
		case nil:
			delete(m, k)
			dropped = append(dropped, k)
		case string:
			s := strings.TrimSpace(t)
			if s == "" || strings.EqualFold(s, "null") || strings.EqualFold(s, "unknown") {
				delete(m, k)
				dropped = append(dropped, k)
			} else {
				m[k] = s
			}
		}
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, nil, err
	}
	return b, dropped, nil
}
