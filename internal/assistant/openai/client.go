package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"gedapi/internal/assistant"
	"gedapi/internal/config"
	"gedapi/internal/model"
)

// Client implements assistant.Assistant against any OpenAI-compatible chat
// completion endpoint. Failures are logged and absorbed into the fallback
// values; callers never see an error.
type Client struct {
	api    *openai.Client
	model  string
	logger *slog.Logger
}

// New creates an assistant client from configuration. The underlying HTTP
// client carries a request timeout and otel instrumentation.
func New(cfg config.AssistantConfig, logger *slog.Logger) *Client {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	apiCfg.HTTPClient = &http.Client{
		Timeout:   time.Duration(cfg.TimeoutSec) * time.Second,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	return &Client{
		api:    openai.NewClientWithConfig(apiCfg),
		model:  cfg.Model,
		logger: logger,
	}
}

func (c *Client) Suggest(ctx context.Context, filename, subcategory string) assistant.Suggestion {
	content, err := c.complete(ctx, buildSuggestPrompt(filename, subcategory), true)
	if err != nil {
		c.logger.Warn("suggestion failed, using fallback", "filename", filename, "error", err)
		return assistant.FallbackSuggestion(subcategory)
	}

	var s assistant.Suggestion
	if err := json.Unmarshal([]byte(extractJSONObject(content)), &s); err != nil {
		c.logger.Warn("suggestion response unparseable, using fallback", "error", err)
		return assistant.FallbackSuggestion(subcategory)
	}
	if s.Description == "" || len(s.Keywords) == 0 {
		return assistant.FallbackSuggestion(subcategory)
	}
	return s
}

func (c *Client) Answer(ctx context.Context, query string, docs []model.Document) string {
	content, err := c.complete(ctx, buildAnswerPrompt(query, docs), false)
	if err != nil {
		c.logger.Warn("answer failed, using fallback", "error", err)
		return assistant.FallbackAnswer
	}
	if content == "" {
		return assistant.FallbackAnswer
	}
	return content
}

// complete issues one non-streaming chat completion. jsonMode requests a
// JSON object response format.
func (c *Client) complete(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}
	if jsonMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
