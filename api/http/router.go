package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/aicomparator/api/http/handlers"
)

// Handlers groups everything Register mounts.
type Handlers struct {
	Auth    *handlers.AuthHandler
	Health  *handlers.HealthHandler
	Prompt  *handlers.PromptHandler
	History *handlers.HistoryHandler
	Profile *handlers.ProfileHandler
}

// Register wires all HTTP routes onto given Fiber app. requireAuth rejects
// anonymous callers; optionalAuth only resolves them when a token is sent.
func Register(app *fiber.App, h Handlers, requireAuth, optionalAuth fiber.Handler) {
	api := app.Group("/api")

	// Health and readiness endpoints for monitoring
	api.Get("/health", h.Health.Health)
	api.Get("/ready", h.Health.Ready)

	api.Post("/groq", optionalAuth, h.Prompt.Groq)
	api.Post("/gemini", optionalAuth, h.Prompt.Gemini)
	api.Post("/compare", optionalAuth, h.Prompt.Compare)

	a := api.Group("/auth")
	a.Post("/register", h.Auth.Register)
	a.Post("/login", h.Auth.Login)
	a.Post("/refresh", h.Auth.Refresh)
	a.Get("/user", requireAuth, h.Auth.User)

	api.Get("/history", requireAuth, h.History.List)

	api.Get("/profile", requireAuth, h.Profile.Get)
	api.Put("/profile/update", requireAuth, h.Profile.Update)
}
