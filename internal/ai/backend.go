// Package ai defines the contract shared by the text-generation backends that
// refine algorithmic match results.
package ai

import (
	"context"
	"errors"
)

// SystemPrompt frames every completion request.
const SystemPrompt = "You are an experienced recruiter and career coach. " +
	"Assess how well a candidate fits a job. Answer with a single JSON object and nothing else."

// ErrEmptyResponse is returned when a backend answers without any text.
var ErrEmptyResponse = errors.New("backend returned empty response")

// Backend is a text-generation service reachable through one prompt/completion call.
type Backend interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}
