// Package llm wraps the external chat-completion capability. Groq serves
// an OpenAI-compatible API, so the client rides on go-openai with a custom
// base URL. No retries, no rate limiting: a failed call is the caller's
// problem to surface.
package llm

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
)

const (
	defaultBaseURL = "https://api.groq.com/openai/v1"
	defaultModel   = "gemma2-9b-it"
	defaultTimeout = 30 * time.Second
)

// Config holds connection details for the completion endpoint.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Options are the per-call decoding parameters.
type Options struct {
	Temperature float32
	MaxTokens   int
	TopP        float32
}

// Client is a thin chat-completion client bound to a single model.
type Client struct {
	api    *openai.Client
	model  string
	logger zerolog.Logger
}

func NewClient(cfg Config, logger zerolog.Logger) *Client {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	apiCfg.BaseURL = cfg.BaseURL
	if apiCfg.BaseURL == "" {
		apiCfg.BaseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	apiCfg.HTTPClient = &http.Client{Timeout: timeout}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &Client{
		api:    openai.NewClientWithConfig(apiCfg),
		model:  model,
		logger: logger.With().Str("component", "llm_client").Logger(),
	}
}

// Complete sends one self-contained prompt and returns the trimmed reply.
func (c *Client) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	temperature := opts.Temperature
	if temperature == 0 {
		// go-openai marshals a zero temperature as absent, which the API
		// reads as its default of 1; the smallest float keeps it greedy
		temperature = math.SmallestNonzeroFloat32
	}

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: temperature,
		MaxTokens:   opts.MaxTokens,
		TopP:        opts.TopP,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	c.logger.Debug().
		Dur("elapsed", time.Since(start)).
		Int("prompt_chars", len(prompt)).
		Msg("completion served")
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
