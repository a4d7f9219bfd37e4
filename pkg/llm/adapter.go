package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Adapter implements Provider on top of a vendor Completer:
// credential check, one call, then normalization of the reply or failure.
type Adapter struct {
	id         ProviderID
	name       string
	configured bool
	completer  Completer
	logger     *slog.Logger
	now        func() time.Time
}

// AdapterOption customizes an Adapter.
type AdapterOption func(*Adapter)

// WithLogger sets the logger used for provider failures.
func WithLogger(l *slog.Logger) AdapterOption {
	return func(a *Adapter) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithClock overrides the completion timestamp source.
func WithClock(now func() time.Time) AdapterOption {
	return func(a *Adapter) {
		if now != nil {
			a.now = now
		}
	}
}

// NewAdapter wraps completer as provider id with display name. When
// configured is false the completer is never called.
func NewAdapter(id ProviderID, name string, configured bool, completer Completer, opts ...AdapterOption) *Adapter {
	a := &Adapter{
		id:         id,
		name:       name,
		configured: configured,
		completer:  completer,
		logger:     slog.Default(),
		now:        func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ID reports which provider the adapter serves.
func (a *Adapter) ID() ProviderID { return a.id }

// Invoke calls the vendor once and always returns an envelope.
func (a *Adapter) Invoke(ctx context.Context, prompt string) (env Envelope) {
	if !a.configured || a.completer == nil {
		return notConfigured(a.name)
	}
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%s client panic: %v", a.id, r)
			a.logger.Error("provider call failed", "provider", string(a.id), "error", err)
			env = failed(a.name, err)
		}
	}()
	text, err := a.completer.Complete(ctx, prompt)
	if err != nil {
		a.logger.Error("provider call failed", "provider", string(a.id), "error", err)
		return failed(a.name, err)
	}
	return succeeded(a.name, text, a.now())
}
