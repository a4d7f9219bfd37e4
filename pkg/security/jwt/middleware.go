package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// LocalUserID is the fiber.Ctx Locals key holding the caller's user id.
const LocalUserID = "userId"

// NewAuthMiddleware returns a Fiber middleware that requires a valid Bearer
// access token. On success sets user id (subject) into c.Locals("userId").
func NewAuthMiddleware(m *Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := bearerToken(c.Get(fiber.HeaderAuthorization))
		if tokenStr == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required"})
		}
		claims, err := m.Parse(tokenStr, TypeAccess)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Authentication required", "details": err.Error()})
		}
		c.Locals(LocalUserID, claims.Subject)
		return c.Next()
	}
}

// NewOptionalAuthMiddleware resolves the caller when a valid access token is
// present and otherwise lets the request through anonymously.
func NewOptionalAuthMiddleware(m *Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if tokenStr := bearerToken(c.Get(fiber.HeaderAuthorization)); tokenStr != "" {
			if claims, err := m.Parse(tokenStr, TypeAccess); err == nil {
				c.Locals(LocalUserID, claims.Subject)
			}
		}
		return c.Next()
	}
}

// bearerToken supports both "Bearer <token>" and "<token>" (no prefix).
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	if scheme, rest, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(rest)
	}
	return header
}
