package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/artem13815/aicomparator/pkg/llm"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "gemini-flash-latest"
)

// Config holds Gemini connection settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client calls the Gemini generateContent REST endpoint.
// Output length is left at the vendor default.
type Client struct {
	model  string
	apiKey string
	client *resty.Client
}

func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &Client{
		model:  cfg.Model,
		apiKey: cfg.APIKey,
		client: resty.New().
			SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
			SetTimeout(cfg.Timeout),
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Complete sends prompt as a single user turn and joins the text parts of the
// first candidate.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	res, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-goog-api-key", c.apiKey).
		SetBody(generateRequest{
			Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		}).
		Post(fmt.Sprintf("/models/%s:generateContent", c.model))
	if err != nil {
		return "", err
	}
	if !res.IsSuccess() {
		var apiErr apiError
		if json.Unmarshal(res.Body(), &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("gemini http %d: %s", res.StatusCode(), apiErr.Error.Message)
		}
		return "", fmt.Errorf("gemini http %d: %s", res.StatusCode(), res.String())
	}

	var out generateResponse
	if err := json.Unmarshal(res.Body(), &out); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}
	if len(out.Candidates) == 0 {
		if out.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("prompt blocked: %s", out.PromptFeedback.BlockReason)
		}
		return "", errors.New("no candidates returned by model")
	}
	var sb strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("empty candidate (finish reason %q)", out.Candidates[0].FinishReason)
	}
	return sb.String(), nil
}

// NewAdapter returns the Gemini provider. An empty API key yields an adapter
// that reports "credential not configured" without calling the API.
func NewAdapter(cfg Config, logger *slog.Logger) *llm.Adapter {
	return llm.NewAdapter(llm.ProviderGemini, "Gemini", cfg.APIKey != "", New(cfg), llm.WithLogger(logger))
}
