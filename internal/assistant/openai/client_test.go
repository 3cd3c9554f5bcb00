package openai

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"gedapi/internal/assistant"
	"gedapi/internal/config"
	"gedapi/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubCompletion returns a server answering every chat completion with the
// given message content.
func stubCompletion(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func newTestClient(baseURL string) *Client {
	return New(config.AssistantConfig{
		APIKey:     "test-key",
		BaseURL:    baseURL + "/v1",
		Model:      "gpt-test",
		TimeoutSec: 5,
	}, testLogger())
}

func TestSuggest_ParsesGeneratedMetadata(t *testing.T) {
	srv := stubCompletion(t, `{"description":"Rapport financier mensuel.","keywords":["finance","rapport","2024"]}`)
	defer srv.Close()

	c := newTestClient(srv.URL)
	s := c.Suggest(context.Background(), "rapport_q1.pdf", "Administratif")

	assert.Equal(t, "Rapport financier mensuel.", s.Description)
	assert.Equal(t, []string{"finance", "rapport", "2024"}, s.Keywords)
}

func TestSuggest_WrappedJSONStillParses(t *testing.T) {
	srv := stubCompletion(t, "Here you go:\n{\"description\":\"Desc.\",\"keywords\":[\"a\"]}\nDone.")
	defer srv.Close()

	c := newTestClient(srv.URL)
	s := c.Suggest(context.Background(), "a.pdf", "Science")

	assert.Equal(t, "Desc.", s.Description)
}

func TestSuggest_TransportFailureFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := newTestClient(srv.URL)
	s := c.Suggest(context.Background(), "notes.pdf", "Science")

	assert.Equal(t, assistant.Suggestion{
		Description: "Document uploaded in Science.",
		Keywords:    []string{"science", "document"},
	}, s)
}

func TestSuggest_MalformedResponseFallsBack(t *testing.T) {
	srv := stubCompletion(t, "not json at all")
	defer srv.Close()

	c := newTestClient(srv.URL)
	s := c.Suggest(context.Background(), "notes.pdf", "Histoire")

	assert.Equal(t, assistant.FallbackSuggestion("Histoire"), s)
}

func TestAnswer_ReturnsGeneratedText(t *testing.T) {
	srv := stubCompletion(t, "Je recommande « React Design Patterns ».")
	defer srv.Close()

	c := newTestClient(srv.URL)
	got := c.Answer(context.Background(), "un livre sur react ?", seed.Documents())

	assert.Equal(t, "Je recommande « React Design Patterns ».", got)
}

func TestAnswer_FailureReturnsApology(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	got := c.Answer(context.Background(), "query", nil)

	assert.Equal(t, assistant.FallbackAnswer, got)
}

func TestBuildAnswerPrompt_ListsDocuments(t *testing.T) {
	p := buildAnswerPrompt("react", seed.Documents()[:2])
	assert.Contains(t, p, "- Physique Quantique pour tous (Livres/Science): Introduction aux concepts de base.")
	assert.Contains(t, p, `User Query: "react"`)
}
