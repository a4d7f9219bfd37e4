package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chatRequest struct {
	Model     string `json:"model"`
	MaxTokens int    `json:"max_tokens"`
	Messages  []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newServer(t *testing.T, hits *int32, status int, body string, seen *chatRequest, auth *string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		assert.Equal(t, "/openai/v1/chat/completions", r.URL.Path)
		if seen != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(seen))
		}
		if auth != nil {
			*auth = r.Header.Get("Authorization")
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

const okBody = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1760000000,
  "model": "llama-3.3-70b-versatile",
  "choices": [{"index": 0, "message": {"role": "assistant", "content": "Paris"}, "finish_reason": "stop"}]
}`

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestCompleteSendsCappedRequest(t *testing.T) {
	var hits int32
	var seen chatRequest
	var auth string
	srv := newServer(t, &hits, http.StatusOK, okBody, &seen, &auth)

	c := New(Config{APIKey: "gsk-test", BaseURL: srv.URL + "/openai/v1"})
	text, err := c.Complete(context.Background(), "capital of France?")

	require.NoError(t, err)
	assert.Equal(t, "Paris", text)
	assert.EqualValues(t, 1, atomic.LoadInt32(&hits))
	assert.Equal(t, DefaultModel, seen.Model)
	assert.Equal(t, 1000, seen.MaxTokens)
	require.Len(t, seen.Messages, 1)
	assert.Equal(t, "user", seen.Messages[0].Role)
	assert.Equal(t, "capital of France?", seen.Messages[0].Content)
	assert.Equal(t, "Bearer gsk-test", auth)
}

func TestAdapterWithoutKeyMakesNoCall(t *testing.T) {
	var hits int32
	srv := newServer(t, &hits, http.StatusOK, okBody, nil, nil)

	a := NewAdapter(Config{BaseURL: srv.URL + "/openai/v1"}, quietLogger())
	env := a.Invoke(context.Background(), "hello")

	assert.EqualValues(t, 0, atomic.LoadInt32(&hits))
	assert.Equal(t, "credential not configured", env.Error)
	assert.Equal(t, "Groq", env.Model)
}

func TestAdapterVendorErrorNoRetry(t *testing.T) {
	var hits int32
	srv := newServer(t, &hits, http.StatusTooManyRequests,
		`{"error":{"message":"rate limit reached","type":"requests"}}`, nil, nil)

	a := NewAdapter(Config{APIKey: "gsk-test", BaseURL: srv.URL + "/openai/v1"}, quietLogger())
	env := a.Invoke(context.Background(), "hello")

	assert.EqualValues(t, 1, atomic.LoadInt32(&hits))
	assert.False(t, env.OK())
	assert.NotEmpty(t, env.Error)
	assert.Equal(t, "Failed to get response from Groq", env.Response)
}

func TestCompleteWithoutChoices(t *testing.T) {
	var hits int32
	srv := newServer(t, &hits, http.StatusOK,
		`{"id":"x","object":"chat.completion","created":1,"model":"m","choices":[]}`, nil, nil)

	_, err := New(Config{APIKey: "k", BaseURL: srv.URL + "/openai/v1"}).Complete(context.Background(), "p")
	assert.EqualError(t, err, "no choices returned by model")
}
