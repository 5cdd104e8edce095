// Package anthropic is a completion backend for the Anthropic Messages API.
package anthropic

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
	name           = "anthropic"
	defaultBaseURL = "https://api.anthropic.com"
	defaultModel   = "claude-3-5-haiku-latest"
	apiVersion     = "2023-06-01"
	maxTokens      = 1024
)

// Config selects the endpoint and model.
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	MaxRetries int
}

// Client talks to the messages endpoint.
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
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system"`
	Messages  []message `json:"messages"`
}

type response struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// New returns a client. The API key is required.
func New(cfg Config, log *zap.Logger) (*Client, error) {
	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		return nil, errors.New("anthropic api key is required")
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
	h := httpjson.New(base, map[string]string{
		"x-api-key":         key,
		"anthropic-version": apiVersion,
	}, log)
	if cfg.MaxRetries > 0 {
		h.MaxRetries = cfg.MaxRetries
	}

	return &Client{http: h, model: model, logger: log}, nil
}

// Name identifies the backend in logs and report metadata.
func (c *Client) Name() string {
	return name
}

// Complete sends prompt as a single user message and joins the text blocks
// of the reply.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	req := request{
		Model:     c.model,
		MaxTokens: maxTokens,
		System:    ai.SystemPrompt,
		Messages:  []message{{Role: "user", Content: prompt}},
	}

	var resp response
	if err := c.http.PostJSON(ctx, "/v1/messages", req, &resp); err != nil {
		return "", fmt.Errorf("create message: %w", err)
	}

	var b strings.Builder
	for _, block := range resp.Content {
		text := strings.TrimSpace(block.Text)
		if block.Type != "text" || text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(text)
	}

	out := b.String()
	if out == "" {
		return "", ai.ErrEmptyResponse
	}
	c.logger.Debug("completion received", zap.Int("response_length", utf8.RuneCountInString(out)))
	return out, nil
}
