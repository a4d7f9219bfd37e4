package llm

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingCompleter struct {
	calls int
	text  string
	err   error
	panic bool
}

func (c *countingCompleter) Complete(_ context.Context, _ string) (string, error) {
	c.calls++
	if c.panic {
		panic("boom")
	}
	return c.text, c.err
}

func TestAdapterNotConfiguredSkipsCall(t *testing.T) {
	comp := &countingCompleter{text: "unused"}
	a := NewAdapter(ProviderGroq, "Groq", false, comp)

	env := a.Invoke(context.Background(), "hello")

	assert.Equal(t, 0, comp.calls)
	assert.False(t, env.OK())
	assert.Equal(t, "credential not configured", env.Error)
	assert.Equal(t, "API key not configured", env.Response)
	assert.Equal(t, "Groq", env.Model)
	assert.Empty(t, env.Timestamp)
}

func TestAdapterSuccess(t *testing.T) {
	at := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	comp := &countingCompleter{text: "hi there"}
	a := NewAdapter(ProviderGemini, "Gemini", true, comp, WithClock(func() time.Time { return at }))

	env := a.Invoke(context.Background(), "hello")

	assert.Equal(t, 1, comp.calls)
	assert.True(t, env.OK())
	assert.Equal(t, "hi there", env.Response)
	assert.Equal(t, "2026-10-16T12:00:00Z", env.Timestamp)
	assert.Equal(t, ProviderGemini, a.ID())
}

func TestAdapterFailureIsNormalizedAndLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	comp := &countingCompleter{err: errors.New("quota exceeded")}
	a := NewAdapter(ProviderGroq, "Groq", true, comp, WithLogger(logger))

	env := a.Invoke(context.Background(), "hello")

	assert.Equal(t, 1, comp.calls)
	assert.False(t, env.OK())
	assert.Equal(t, "quota exceeded", env.Error)
	assert.Equal(t, "Failed to get response from Groq", env.Response)
	assert.Empty(t, env.Timestamp)
	assert.Contains(t, buf.String(), "provider call failed")
	assert.Contains(t, buf.String(), "quota exceeded")
}

func TestAdapterRecoversFromPanickingClient(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	a := NewAdapter(ProviderGroq, "Groq", true, &countingCompleter{panic: true}, WithLogger(logger))

	var env Envelope
	require.NotPanics(t, func() { env = a.Invoke(context.Background(), "hello") })
	assert.False(t, env.OK())
	assert.Contains(t, env.Error, "boom")
}
