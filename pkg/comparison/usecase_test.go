package comparison

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/aicomparator/pkg/history"
	historymocks "github.com/artem13815/aicomparator/pkg/history/mocks"
	"github.com/artem13815/aicomparator/pkg/llm"
	llmmocks "github.com/artem13815/aicomparator/pkg/llm/mocks"
)

func newProvider(t *testing.T, id llm.ProviderID, env llm.Envelope, calls *[]llm.ProviderID) *llmmocks.ProviderMock {
	p := llmmocks.NewProviderMock(t)
	p.IDMock.Return(id)
	p.InvokeMock.Optional().Set(func(_ context.Context, _ string) llm.Envelope {
		*calls = append(*calls, id)
		return env
	})
	return p
}

type fixture struct {
	calls []llm.ProviderID
	hist  *historymocks.RepositoryMock
	svc   UseCase
	logs  *bytes.Buffer
}

// newFixture builds a service whose history mock fails the test on any
// Append that was not explicitly expected.
func newFixture(t *testing.T, groqErr, geminiErr string) *fixture {
	f := &fixture{hist: historymocks.NewRepositoryMock(t), logs: &bytes.Buffer{}}
	groq := newProvider(t, llm.ProviderGroq,
		llm.Envelope{Model: "Groq", Response: "groq says hi", Error: groqErr}, &f.calls)
	gemini := newProvider(t, llm.ProviderGemini,
		llm.Envelope{Model: "Gemini", Response: "gemini says hi", Error: geminiErr}, &f.calls)
	logger := slog.New(slog.NewTextHandler(f.logs, nil))
	// registration order is reversed; invocation order must not depend on it
	f.svc = NewService(f.hist, logger, gemini, groq)
	return f
}

func strPtr(s string) *string { return &s }

func both() []llm.ProviderID { return []llm.ProviderID{llm.ProviderGemini, llm.ProviderGroq} }

func TestHandleKeysMatchRequestedProviders(t *testing.T) {
	cases := [][]llm.ProviderID{
		{llm.ProviderGroq},
		{llm.ProviderGemini},
		{llm.ProviderGroq, llm.ProviderGemini},
		{llm.ProviderGemini, llm.ProviderGroq, llm.ProviderGemini},
	}
	for _, ids := range cases {
		f := newFixture(t, "", "")
		res, err := f.svc.Handle(context.Background(), "hello", ids, nil)
		require.NoError(t, err)

		want := map[llm.ProviderID]bool{}
		for _, id := range ids {
			want[id] = true
		}
		got := map[llm.ProviderID]bool{}
		for _, id := range res.Providers() {
			got[id] = true
		}
		assert.Equal(t, want, got)
		assert.Equal(t, len(want), res.Len())
	}
}

func TestHandleInvokesSequentiallyInFixedOrder(t *testing.T) {
	f := newFixture(t, "", "")
	res, err := f.svc.Handle(context.Background(), "hello", both(), nil)

	require.NoError(t, err)
	assert.Equal(t, []llm.ProviderID{llm.ProviderGroq, llm.ProviderGemini}, f.calls)
	assert.Equal(t, []llm.ProviderID{llm.ProviderGroq, llm.ProviderGemini}, res.Providers())
}

func TestHandleEmptyPromptInvokesNothing(t *testing.T) {
	for _, prompt := range []string{"", "   \n\t"} {
		f := newFixture(t, "", "")
		uid := uuid.New()
		_, err := f.svc.Handle(context.Background(), prompt, both(), &uid)

		assert.ErrorIs(t, err, ErrPromptRequired)
		assert.True(t, IsValidation(err))
		assert.Empty(t, f.calls)
		assert.Zero(t, f.hist.AppendBeforeCounter())
	}
}

func TestHandleRejectsUnknownOrMissingProviders(t *testing.T) {
	f := newFixture(t, "", "")

	_, err := f.svc.Handle(context.Background(), "hi", nil, nil)
	assert.ErrorIs(t, err, ErrNoProviders)

	_, err = f.svc.Handle(context.Background(), "hi", []llm.ProviderID{"openai"}, nil)
	assert.ErrorIs(t, err, ErrUnknownProvider)
	assert.True(t, IsValidation(err))
	assert.Empty(t, f.calls)
}

func TestCompareBothOKPersistsOneRecord(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "", "")
	uid := uuid.New()
	f.hist.AppendMock.Expect(ctx, history.Record{
		UserID:         uid,
		Prompt:         "hello",
		ResponseGroq:   strPtr("groq says hi"),
		ResponseGemini: strPtr("gemini says hi"),
		Mode:           history.ModeBoth,
	}).Times(1).Return(history.Record{ID: uuid.New()}, nil)

	res, err := f.svc.Handle(ctx, "hello", both(), &uid)

	require.NoError(t, err)
	assert.True(t, res.AllOK())
}

func TestComparePartialFailurePersistsNothing(t *testing.T) {
	for _, errs := range [][2]string{{"boom", ""}, {"", "boom"}, {"boom", "boom"}} {
		f := newFixture(t, errs[0], errs[1])
		uid := uuid.New()

		res, err := f.svc.Handle(context.Background(), "hello", both(), &uid)

		require.NoError(t, err)
		assert.Equal(t, 2, res.Len(), "result is returned even on provider errors")
		assert.Len(t, f.calls, 2, "one failure does not abort the other call")
		assert.Zero(t, f.hist.AppendBeforeCounter())
	}
}

func TestSingleProviderSuccessPersistsWithMode(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "", "")
	uid := uuid.New()
	f.hist.AppendMock.Expect(ctx, history.Record{
		UserID:       uid,
		Prompt:       "hello",
		ResponseGroq: strPtr("groq says hi"),
		Mode:         history.ModeGroq,
	}).Times(1).Return(history.Record{ID: uuid.New()}, nil)

	_, err := f.svc.Handle(ctx, "hello", []llm.ProviderID{llm.ProviderGroq}, &uid)

	require.NoError(t, err)
	assert.Equal(t, []llm.ProviderID{llm.ProviderGroq}, f.calls)
}

func TestSingleProviderFailurePersistsNothing(t *testing.T) {
	f := newFixture(t, "", "credential not configured")
	uid := uuid.New()

	res, err := f.svc.Handle(context.Background(), "hello", []llm.ProviderID{llm.ProviderGemini}, &uid)

	require.NoError(t, err)
	env, ok := res.Get(llm.ProviderGemini)
	require.True(t, ok)
	assert.False(t, env.OK())
	assert.Zero(t, f.hist.AppendBeforeCounter())
}

func TestAnonymousCallPersistsNothing(t *testing.T) {
	f := newFixture(t, "", "")
	_, err := f.svc.Handle(context.Background(), "hello", both(), nil)
	require.NoError(t, err)
	assert.Zero(t, f.hist.AppendBeforeCounter())
}

func TestHistoryFailureDoesNotFailCall(t *testing.T) {
	f := newFixture(t, "", "")
	f.hist.AppendMock.Return(history.Record{}, errors.New("db down"))
	uid := uuid.New()

	res, err := f.svc.Handle(context.Background(), "hello", both(), &uid)

	require.NoError(t, err)
	assert.True(t, res.AllOK())
	assert.Equal(t, uint64(1), f.hist.AppendAfterCounter())
	assert.Contains(t, f.logs.String(), "append history failed")
}

func TestResultMarshalKeepsOrder(t *testing.T) {
	f := newFixture(t, "", "nope")
	res, err := f.svc.Handle(context.Background(), "hello", both(), nil)
	require.NoError(t, err)

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"groq": {"model":"Groq","response":"groq says hi"},
		"gemini": {"model":"Gemini","response":"gemini says hi","error":"nope"}
	}`, string(raw))
	assert.Less(t, bytes.Index(raw, []byte(`"groq"`)), bytes.Index(raw, []byte(`"gemini"`)))
}

func TestModeFor(t *testing.T) {
	assert.Equal(t, history.ModeGroq, ModeFor([]llm.ProviderID{llm.ProviderGroq}))
	assert.Equal(t, history.ModeGemini, ModeFor([]llm.ProviderID{llm.ProviderGemini}))
	assert.Equal(t, history.ModeBoth, ModeFor(llm.Order))
}
