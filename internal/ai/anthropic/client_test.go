package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/cv-scorer/internal/ai"
	"github.com/spigell/cv-scorer/internal/ai/httpjson"
)

func TestComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "key", r.Header.Get("x-api-key"))
		assert.Equal(t, apiVersion, r.Header.Get("anthropic-version"))

		var req request
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, ai.SystemPrompt, req.System)
		assert.Equal(t, []message{{Role: "user", Content: "score this"}}, req.Messages)
		assert.Equal(t, maxTokens, req.MaxTokens)

		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"{\"overallScore\":"},{"type":"tool_use"},{"type":"text","text":"80}"}]}`))
	}))
	defer srv.Close()

	c, err := New(Config{APIKey: "key", BaseURL: srv.URL}, nil)
	require.NoError(t, err)
	assert.Equal(t, "anthropic", c.Name())

	out, err := c.Complete(context.Background(), "score this")
	require.NoError(t, err)
	assert.Equal(t, "{\"overallScore\":\n80}", out)
}

func TestCompleteErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") == "empty" {
			_, _ = w.Write([]byte(`{"content":[]}`))
			return
		}
		http.Error(w, `{"error":"invalid key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c, err := New(Config{APIKey: "bad", BaseURL: srv.URL}, nil)
	require.NoError(t, err)
	_, err = c.Complete(context.Background(), "x")
	var status *httpjson.StatusError
	require.True(t, errors.As(err, &status))
	assert.Equal(t, http.StatusUnauthorized, status.Code)

	c, err = New(Config{APIKey: "empty", BaseURL: srv.URL}, nil)
	require.NoError(t, err)
	_, err = c.Complete(context.Background(), "x")
	assert.ErrorIs(t, err, ai.ErrEmptyResponse)

	_, err = c.Complete(context.Background(), "  ")
	assert.Error(t, err)

	_, err = New(Config{}, nil)
	assert.Error(t, err)
}
