// Package openai is a completion backend for OpenAI-compatible chat APIs.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spigell/cv-scorer/internal/ai"
	"github.com/spigell/cv-scorer/internal/ai/httpjson"
	"github.com/spigell/cv-scorer/internal/logger"
)

const (
	name           = "openai"
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"
)

// Config selects the endpoint and model.
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	MaxRetries int
}

// Client talks to the chat completions endpoint.
type Client struct {
	http   *httpjson.Client
	model  string
	logger *zap.Logger
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type request struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

type response struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// New returns a client. The API key is required.
func New(cfg Config, log *zap.Logger) (*Client, error) {
	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		return nil, errors.New("openai api key is required")
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = defaultBaseURL
	}

	log = logger.WithCommonFields(log, name, model)
	h := httpjson.New(base, map[string]string{"Authorization": "Bearer " + key}, log)
	if cfg.MaxRetries > 0 {
		h.MaxRetries = cfg.MaxRetries
	}

	return &Client{http: h, model: model, logger: log}, nil
}

// Name identifies the backend in logs and report metadata.
func (c *Client) Name() string {
	return name
}

// Complete sends prompt as the user turn and returns the first choice.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	req := request{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: ai.SystemPrompt},
			{Role: "user", Content: prompt},
		},
	}

	var resp response
	if err := c.http.PostJSON(ctx, "/chat/completions", req, &resp); err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	for _, choice := range resp.Choices {
		if text := strings.TrimSpace(choice.Message.Content); text != "" {
			c.logger.Debug("completion received", zap.Int("response_length", utf8.RuneCountInString(text)))
			return text, nil
		}
	}
	return "", ai.ErrEmptyResponse
}
