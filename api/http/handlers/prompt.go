package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/aicomparator/api/http/presenter"
	"github.com/artem13815/aicomparator/pkg/comparison"
	"github.com/artem13815/aicomparator/pkg/llm"
)

// PromptHandler serves the single-provider and comparison endpoints.
type PromptHandler struct {
	useCase comparison.UseCase
	logger  *slog.Logger
}

func NewPromptHandler(useCase comparison.UseCase, logger *slog.Logger) *PromptHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PromptHandler{useCase: useCase, logger: logger}
}

type promptRequest struct {
	Prompt string `json:"prompt"`
}

// Groq sends the prompt to Groq only.
// @Summary  Ask Groq
// @Tags     llm
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    input body promptRequest true "prompt"
// @Success  200 {object} llm.Envelope
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  500 {object} llm.Envelope
// @Router   /groq [post]
func (h *PromptHandler) Groq(c *fiber.Ctx) error {
	return h.single(c, llm.ProviderGroq, "Failed to get response from Groq")
}

// Gemini sends the prompt to Gemini only.
// @Summary  Ask Gemini
// @Tags     llm
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    input body promptRequest true "prompt"
// @Success  200 {object} llm.Envelope
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  500 {object} llm.Envelope
// @Router   /gemini [post]
func (h *PromptHandler) Gemini(c *fiber.Ctx) error {
	return h.single(c, llm.ProviderGemini, "Failed to get response from Gemini")
}

// Compare sends the prompt to every provider.
// @Summary  Compare providers
// @Tags     llm
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    input body promptRequest true "prompt"
// @Success  200 {object} map[string]llm.Envelope
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  500 {object} presenter.ErrorResponse
// @Router   /compare [post]
func (h *PromptHandler) Compare(c *fiber.Ctx) error {
	prompt, ok := h.prompt(c)
	if !ok {
		return nil
	}
	res, err := h.useCase.Handle(c.UserContext(), prompt, llm.Order, currentUserID(c))
	if err != nil {
		return h.fail(c, err, "Failed to compare AI responses")
	}
	return presenter.JSON(c, http.StatusOK, res)
}

func (h *PromptHandler) single(c *fiber.Ctx, id llm.ProviderID, failure string) error {
	prompt, ok := h.prompt(c)
	if !ok {
		return nil
	}
	res, err := h.useCase.Handle(c.UserContext(), prompt, []llm.ProviderID{id}, currentUserID(c))
	if err != nil {
		return h.fail(c, err, failure)
	}
	env, _ := res.Get(id)
	status := http.StatusOK
	if !env.OK() {
		status = http.StatusInternalServerError
	}
	return presenter.JSON(c, status, env)
}

// prompt parses the body and writes a 400 when no prompt was given.
func (h *PromptHandler) prompt(c *fiber.Ctx) (string, bool) {
	// decode regardless of Content-Type; clients post raw JSON
	var req promptRequest
	if err := c.App().Config().JSONDecoder(c.Body(), &req); err != nil {
		_ = presenter.Error(c, http.StatusBadRequest, "Invalid JSON payload")
		return "", false
	}
	if req.Prompt == "" {
		_ = presenter.Error(c, http.StatusBadRequest, "Prompt is required")
		return "", false
	}
	return req.Prompt, true
}

func (h *PromptHandler) fail(c *fiber.Ctx, err error, message string) error {
	switch {
	case errors.Is(err, comparison.ErrPromptRequired):
		return presenter.Error(c, http.StatusBadRequest, "Prompt is required")
	case comparison.IsValidation(err):
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	h.logger.Error("prompt handling failed", "error", err)
	return presenter.ErrorWithDetails(c, http.StatusInternalServerError, message, err)
}
