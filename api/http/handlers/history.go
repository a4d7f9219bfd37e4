package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/aicomparator/api/http/presenter"
	"github.com/artem13815/aicomparator/pkg/history"
)

type HistoryHandler struct {
	useCase history.UseCase
	logger  *slog.Logger
}

func NewHistoryHandler(useCase history.UseCase, logger *slog.Logger) *HistoryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HistoryHandler{useCase: useCase, logger: logger}
}

type historyResponses struct {
	Groq   *string `json:"groq"`
	Gemini *string `json:"gemini"`
}

type historyItem struct {
	ID        string           `json:"id"`
	Prompt    string           `json:"prompt"`
	Mode      string           `json:"mode"`
	CreatedAt time.Time        `json:"created_at"`
	Responses historyResponses `json:"responses"`
}

// List returns the caller's most recent comparisons.
// @Summary  Recent history
// @Tags     history
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} map[string][]historyItem
// @Failure  401 {object} presenter.ErrorResponse
// @Failure  500 {object} presenter.ErrorResponse
// @Router   /history [get]
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	id := currentUserID(c)
	if id == nil {
		return presenter.Error(c, http.StatusUnauthorized, "Authentication required")
	}
	records, err := h.useCase.Recent(c.UserContext(), *id)
	if err != nil {
		h.logger.Error("list history failed", "user_id", id.String(), "error", err)
		return presenter.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to fetch history", err)
	}

	items := make([]historyItem, 0, len(records))
	for _, r := range records {
		items = append(items, historyItem{
			ID:        r.ID.String(),
			Prompt:    r.Prompt,
			Mode:      string(r.Mode),
			CreatedAt: r.CreatedAt.UTC(),
			Responses: historyResponses{Groq: r.ResponseGroq, Gemini: r.ResponseGemini},
		})
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"history": items})
}
