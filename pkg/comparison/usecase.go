package comparison

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/artem13815/aicomparator/pkg/history"
	"github.com/artem13815/aicomparator/pkg/llm"
)

var (
	ErrPromptRequired  = errors.New("prompt required")
	ErrNoProviders     = errors.New("at least one provider required")
	ErrUnknownProvider = errors.New("unknown provider")
)

// IsValidation reports whether err was caused by bad caller input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrPromptRequired) ||
		errors.Is(err, ErrNoProviders) ||
		errors.Is(err, ErrUnknownProvider)
}

// UseCase fans a prompt out to providers and records successful calls.
type UseCase interface {
	// Handle invokes every requested provider once, in the fixed provider
	// order. userID may be nil for anonymous callers; nothing is persisted then.
	Handle(ctx context.Context, prompt string, providers []llm.ProviderID, userID *uuid.UUID) (Result, error)
}

type service struct {
	providers map[llm.ProviderID]llm.Provider
	history   history.Repository
	logger    *slog.Logger
}

func NewService(historyRepo history.Repository, logger *slog.Logger, providers ...llm.Provider) UseCase {
	if logger == nil {
		logger = slog.Default()
	}
	byID := make(map[llm.ProviderID]llm.Provider, len(providers))
	for _, p := range providers {
		byID[p.ID()] = p
	}
	return &service{providers: byID, history: historyRepo, logger: logger}
}

func (s *service) Handle(ctx context.Context, prompt string, providers []llm.ProviderID, userID *uuid.UUID) (Result, error) {
	if strings.TrimSpace(prompt) == "" {
		return Result{}, ErrPromptRequired
	}
	ordered, err := s.resolve(providers)
	if err != nil {
		return Result{}, err
	}

	var res Result
	for _, p := range ordered {
		res.add(p.ID(), p.Invoke(ctx, prompt))
	}

	if userID != nil && res.AllOK() {
		s.record(ctx, *userID, prompt, res)
	}
	return res, nil
}

// resolve dedups the request and sorts it into llm.Order.
func (s *service) resolve(ids []llm.ProviderID) ([]llm.Provider, error) {
	if len(ids) == 0 {
		return nil, ErrNoProviders
	}
	want := make(map[llm.ProviderID]bool, len(ids))
	for _, id := range ids {
		if _, ok := s.providers[id]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, id)
		}
		want[id] = true
	}
	out := make([]llm.Provider, 0, len(want))
	for _, id := range llm.Order {
		if want[id] {
			out = append(out, s.providers[id])
		}
	}
	return out, nil
}

func (s *service) record(ctx context.Context, userID uuid.UUID, prompt string, res Result) {
	if s.history == nil {
		return
	}
	rec := history.Record{
		UserID: userID,
		Prompt: prompt,
		Mode:   ModeFor(res.Providers()),
	}
	if env, ok := res.Get(llm.ProviderGroq); ok {
		text := env.Response
		rec.ResponseGroq = &text
	}
	if env, ok := res.Get(llm.ProviderGemini); ok {
		text := env.Response
		rec.ResponseGemini = &text
	}
	if _, err := s.history.Append(ctx, rec); err != nil {
		s.logger.Error("append history failed", "user_id", userID.String(), "mode", string(rec.Mode), "error", err)
	}
}

// ModeFor maps an invoked provider set to its history mode.
func ModeFor(ids []llm.ProviderID) history.Mode {
	if len(ids) == 1 {
		return history.Mode(ids[0])
	}
	return history.ModeBoth
}
