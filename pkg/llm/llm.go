package llm

import (
	"context"
	"errors"
)

// ProviderID identifies an LLM vendor in requests, results and history modes.
type ProviderID string

const (
	ProviderGroq   ProviderID = "groq"
	ProviderGemini ProviderID = "gemini"
)

// Order is the fixed invocation order of providers.
var Order = []ProviderID{ProviderGroq, ProviderGemini}

// ErrNotConfigured is reported in an envelope when the provider has no API key.
var ErrNotConfigured = errors.New("credential not configured")

// Completer is a minimal abstraction over a vendor text-completion call.
// It hides the concrete SDK so adapters stay vendor-agnostic.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

//go:generate minimock -i Provider -o ./mocks/provider_mock.go -n ProviderMock -p mocks

// Provider turns a prompt into a normalized Envelope.
// Implementations never return vendor errors; failures are carried in the envelope.
type Provider interface {
	ID() ProviderID
	Invoke(ctx context.Context, prompt string) Envelope
}
