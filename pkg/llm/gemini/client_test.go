package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestCompleteJoinsCandidateParts(t *testing.T) {
	var gotKey, gotPath string
	var req generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-goog-api-key")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Hello, "},{"text":"world"}]},"finishReason":"STOP"}]}`))
	}))
	defer srv.Close()

	c := New(Config{APIKey: "AIza-test", BaseURL: srv.URL + "/v1beta/"})
	text, err := c.Complete(context.Background(), "say hi")

	require.NoError(t, err)
	assert.Equal(t, "Hello, world", text)
	assert.Equal(t, "AIza-test", gotKey)
	assert.Equal(t, "/v1beta/models/gemini-flash-latest:generateContent", gotPath)
	require.Len(t, req.Contents, 1)
	require.Len(t, req.Contents[0].Parts, 1)
	assert.Equal(t, "say hi", req.Contents[0].Parts[0].Text)
}

func TestCompleteSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	}))
	defer srv.Close()

	_, err := New(Config{APIKey: "bad", BaseURL: srv.URL}).Complete(context.Background(), "p")
	assert.EqualError(t, err, "gemini http 400: API key not valid")
}

func TestCompleteBlockedPrompt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"promptFeedback":{"blockReason":"SAFETY"}}`))
	}))
	defer srv.Close()

	_, err := New(Config{APIKey: "k", BaseURL: srv.URL}).Complete(context.Background(), "p")
	assert.EqualError(t, err, "prompt blocked: SAFETY")
}

func TestAdapterWithoutKeyMakesNoCall(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	env := NewAdapter(Config{BaseURL: srv.URL}, quietLogger()).Invoke(context.Background(), "p")

	assert.Equal(t, 0, hits)
	assert.Equal(t, "credential not configured", env.Error)
	assert.Equal(t, "Gemini", env.Model)
}

func TestAdapterMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	env := NewAdapter(Config{APIKey: "k", BaseURL: srv.URL}, quietLogger()).Invoke(context.Background(), "p")

	assert.False(t, env.OK())
	assert.Contains(t, env.Error, "decode gemini response")
	assert.Equal(t, "Failed to get response from Gemini", env.Response)
}
