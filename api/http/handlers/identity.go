package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/aicomparator/pkg/security/jwt"
)

// currentUserID returns the caller resolved by the auth middleware, or nil
// for anonymous requests.
func currentUserID(c *fiber.Ctx) *uuid.UUID {
	sub, _ := c.Locals(jwt.LocalUserID).(string)
	if sub == "" {
		return nil
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return nil
	}
	return &id
}
