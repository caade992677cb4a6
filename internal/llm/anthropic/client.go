// Package anthropic implements the llm extractor interfaces on top of the
// Anthropic Messages API.
package anthropic

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/doc-renamer/constants"
	"github.com/joseph-ayodele/doc-renamer/internal/llm"
	"github.com/joseph-ayodele/doc-renamer/internal/metadata"
)

// maxPromptChars caps how much extracted text goes into one request; the
// bibliographic header and any on-screen text of interest sit at the front.
const maxPromptChars = 8000

// ExtractBibliographic implements llm.BibliographicExtractor.
func (c *Client) ExtractBibliographic(ctx context.Context, text string) (metadata.BibliographicInfo, []byte, error) {
	schema := llm.BuildBibliographicJSONSchema()
	raw, err := c.extractStructured(ctx, "bibliographic", bibliographicSystemPrompt, bibliographicUserPrompt(text), schema, "title")
	if err != nil {
		return metadata.BibliographicInfo{}, raw, err
	}

	var info metadata.BibliographicInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return metadata.BibliographicInfo{}, raw, fmt.Errorf("unmarshal fields: %w", err)
	}
	if strings.TrimSpace(info.Title) == "" {
		return metadata.BibliographicInfo{}, raw, fmt.Errorf("model returned empty title")
	}
	return info, raw, nil
}

// ExtractScreenshot implements llm.ScreenshotExtractor.
func (c *Client) ExtractScreenshot(ctx context.Context, text string) (metadata.ScreenshotInfo, []byte, error) {
	schema := llm.BuildScreenshotJSONSchema()
	raw, err := c.extractStructured(ctx, "screenshot", screenshotSystemPrompt, screenshotUserPrompt(text), schema, "main_subject")
	if err != nil {
		return metadata.ScreenshotInfo{}, raw, err
	}

	var info metadata.ScreenshotInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return metadata.ScreenshotInfo{}, raw, fmt.Errorf("unmarshal fields: %w", err)
	}
	if strings.TrimSpace(info.MainSubject) == "" {
		return metadata.ScreenshotInfo{}, raw, fmt.Errorf("model returned empty main_subject")
	}
	return info, raw, nil
}

// TranscribeImage implements llm.ImageTranscriber using a vision message.
func (c *Client) TranscribeImage(ctx context.Context, path string) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	data, mediaType, err := readImage(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	c.log.Info("llm.transcribe.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"path", path,
		"media_type", mediaType,
		"bytes", len(data),
	)

	body := map[string]any{
		"model":      c.cfg.Model,
		"max_tokens": c.cfg.MaxTokens,
		"system":     transcribeSystemPrompt,
		"messages": []map[string]any{
			{
				"role": "user",
				"content": []map[string]any{
					{
						"type": "image",
						"source": map[string]any{
							"type":       "base64",
							"media_type": mediaType,
							"data":       base64.StdEncoding.EncodeToString(data),
						},
					},
					{
						"type": "text",
						"text": "Transcribe all text visible in this screenshot. Preserve the reading order; plain text only.",
					},
				},
			},
		},
	}

	raw, err := c.post(ctx, body)
	if err != nil {
		c.log.Error("llm.transcribe.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", err
	}
	text, err := completionText(raw)
	if err != nil {
		c.log.Error("llm.transcribe.decode_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("vision transcription returned no text")
	}

	c.log.Info("llm.transcribe.ok",
		"req_id", rid,
		"text_len", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}

// extractStructured runs one schema-constrained extraction round trip and
// returns validated JSON ready to unmarshal into the target model.
func (c *Client) extractStructured(ctx context.Context, kind, system, user string, schema map[string]any, required ...string) ([]byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"kind", kind,
		"model", c.cfg.Model,
		"text_len", len(user),
	)

	body := map[string]any{
		"model":      c.cfg.Model,
		"max_tokens": c.cfg.MaxTokens,
		"system":     system + "\n\nReturn ONLY JSON that matches this JSON Schema:\n" + mustJSON(schema),
		"messages": []map[string]any{
			{"role": "user", "content": user},
		},
	}

	raw, err := c.post(ctx, body)
	if err != nil {
		c.log.Error("llm.extract.http_error",
			"req_id", rid, "kind", kind, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	content, err := completionText(raw)
	if err != nil {
		c.log.Error("llm.extract.decode_error",
			"req_id", rid, "kind", kind, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	payload := llm.ExtractJSONPayload(content)
	cleaned, dropped, err := llm.DropEmptyOptionals(payload, required...)
	if err != nil {
		c.log.Error("llm.extract.sanitize_failed",
			"req_id", rid, "kind", kind, "error", err, "content", content,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return payload, fmt.Errorf("sanitize model json: %w", err)
	}
	if len(dropped) > 0 {
		c.log.Warn("llm.extract.optionals_dropped",
			"req_id", rid, "kind", kind, "dropped", dropped)
	}

	if err := llm.ValidateJSONAgainstSchema(schema, cleaned); err != nil {
		c.log.Error("llm.extract.schema_validation_failed",
			"req_id", rid, "kind", kind, "error", err, "content", string(cleaned),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return cleaned, fmt.Errorf("schema validation failed: %w", err)
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"kind", kind,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return cleaned, nil
}

func (c *Client) post(ctx context.Context, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/v1/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", c.cfg.APIKey)
	req.Header.Set("anthropic-version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("anthropic http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.log.Warn("anthropic response body close error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("anthropic status %d: %s", resp.StatusCode, string(raw))
	}
	return raw, nil
}

// completionText pulls the first text block out of a messages response.
func completionText(raw []byte) (string, error) {
	var mr struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(raw, &mr); err != nil {
		return "", fmt.Errorf("decode anthropic response: %w", err)
	}
	for _, block := range mr.Content {
		if block.Type == "text" {
			return strings.TrimSpace(block.Text), nil
		}
	}
	return "", fmt.Errorf("no text content in anthropic response")
}

func readImage(path string) ([]byte, string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	var mt string
	switch constants.NormalizeExt(filepath.Ext(path)) {
	case "jpg", "jpeg":
		mt = "image/jpeg"
	case "gif":
		mt = "image/gif"
	case "webp":
		mt = "image/webp"
	default:
		mt = "image/png"
	}
	return b, mt, nil
}

const bibliographicSystemPrompt = "You are an expert at extracting bibliographic information from academic papers, " +
	"books, and other publications. Extract the author(s), editor(s), year of publication, " +
	"and title from the provided text.\n\n" +
	"Guidelines:\n" +
	"- For multiple authors, list the main authors or use 'et al.' if there are many\n" +
	"- Also extract just the last name of the primary author (author_last field)\n" +
	"- If there's no author but there is an editor, provide the editor information\n" +
	"- Also extract just the last name of the primary editor (editor_last field)\n" +
	"- Extract the publication year in YYYY format if possible\n" +
	"- Extract the complete title of the publication\n" +
	"- For last names, handle naming conventions correctly (e.g., 'van Gogh' stays 'van Gogh', \"O'Brien\" stays \"O'Brien\")\n" +
	"- If information is unclear or missing, omit the field rather than guessing wildly"

const screenshotSystemPrompt = "You are an expert at classifying screenshots from their on-screen text. " +
	"Identify the application, any visible date (YYYY-MM-DD) and time (HH:MM, 24h), " +
	"the content type (one of: email, chat, error, website, document, terminal, other), " +
	"and a short main subject suitable for a filename.\n\n" +
	"Guidelines:\n" +
	"- Keep main_subject under ten words; no punctuation that is illegal in filenames\n" +
	"- Only report a date or time that is actually visible in the text\n" +
	"- If a field is not determinable, omit it"

const transcribeSystemPrompt = "You transcribe text from screenshots exactly as it appears. " +
	"Do not describe the image; output the visible text only."

func bibliographicUserPrompt(text string) string {
	return "Please extract the bibliographic information from the following text. " +
		"Focus on finding the author(s) or editor(s), publication year, and title.\n\nText:\n" + clip(text)
}

func screenshotUserPrompt(text string) string {
	return "Please classify the screenshot this text was read from.\n\nOn-screen text:\n" + clip(text)
}

func clip(s string) string {
	if len(s) > maxPromptChars {
		return s[:maxPromptChars]
	}
	return s
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
