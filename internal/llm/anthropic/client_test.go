package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// messagesResponse builds a minimal Anthropic messages payload whose single
// text block contains content. Runs inside handler goroutines, so no require.
func messagesResponse(content string) []byte {
	b, _ := json.Marshal(map[string]any{
		"content": []map[string]any{
			{"type": "text", "text": content},
		},
	})
	return b
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
}

func TestExtractBibliographic(t *testing.T) {
	var gotPath, gotKey, gotVersion string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		_, _ = w.Write(messagesResponse(
			"```json\n{\"author\":\"F. Scott Fitzgerald\",\"author_last\":\"Fitzgerald\",\"year\":\"1925\",\"title\":\"The Great Gatsby\"}\n```"))
	})

	info, raw, err := client.ExtractBibliographic(context.Background(), "some pdf text")
	require.NoError(t, err)

	assert.Equal(t, "/v1/messages", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, apiVersion, gotVersion)

	assert.Equal(t, "F. Scott Fitzgerald", info.Author)
	assert.Equal(t, "Fitzgerald", info.AuthorLast)
	assert.Equal(t, "1925", info.Year)
	assert.Equal(t, "The Great Gatsby", info.Title)
	assert.NotEmpty(t, raw)
}

func TestExtractBibliographicDropsNullOptionals(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(messagesResponse(`{"title":"T","author":null,"year":""}`))
	})

	info, _, err := client.ExtractBibliographic(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, "T", info.Title)
	assert.Empty(t, info.Author)
	assert.Empty(t, info.Year)
}

func TestExtractBibliographicRejectsSchemaViolations(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(messagesResponse(`{"title":"T","year":"around 1925"}`))
	})

	_, _, err := client.ExtractBibliographic(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestExtractBibliographicRejectsMissingTitle(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(messagesResponse(`{"author":"A"}`))
	})

	_, _, err := client.ExtractBibliographic(context.Background(), "text")
	require.Error(t, err)
}

func TestExtractBibliographicHTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"type":"overloaded_error"}}`, http.StatusServiceUnavailable)
	})

	_, _, err := client.ExtractBibliographic(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestExtractScreenshot(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(messagesResponse(
			`{"application":"Gmail","date":"2025-01-15","time":"14:30","content_type":"email","main_subject":"Project Meeting Schedule Email"}`))
	})

	info, _, err := client.ExtractScreenshot(context.Background(), "on-screen text")
	require.NoError(t, err)
	assert.Equal(t, "Gmail", info.Application)
	assert.Equal(t, "2025-01-15", info.Date)
	assert.Equal(t, "14:30", info.Time)
	assert.Equal(t, "email", info.ContentType)
	assert.Equal(t, "Project Meeting Schedule Email", info.MainSubject)
}

func TestTranscribeImageSendsVisionBlocks(t *testing.T) {
	var gotBody map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write(messagesResponse("Inbox - Project Meeting Schedule"))
	})

	img := filepath.Join(t.TempDir(), "shot.png")
	require.NoError(t, os.WriteFile(img, []byte("fake png bytes"), 0o644))

	text, err := client.TranscribeImage(context.Background(), img)
	require.NoError(t, err)
	assert.Equal(t, "Inbox - Project Meeting Schedule", text)

	messages := gotBody["messages"].([]any)
	content := messages[0].(map[string]any)["content"].([]any)
	imageBlock := content[0].(map[string]any)
	assert.Equal(t, "image", imageBlock["type"])
	source := imageBlock["source"].(map[string]any)
	assert.Equal(t, "base64", source["type"])
	assert.Equal(t, "image/png", source["media_type"])
}

func TestTranscribeImageMissingFile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an unreadable image")
	})

	_, err := client.TranscribeImage(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
}
