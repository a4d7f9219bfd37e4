package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/aicomparator/api/http/presenter"
	"github.com/artem13815/aicomparator/pkg/auth"
	"github.com/artem13815/aicomparator/pkg/profile"
)

type ProfileHandler struct {
	useCase profile.UseCase
}

func NewProfileHandler(useCase profile.UseCase) *ProfileHandler {
	return &ProfileHandler{useCase: useCase}
}

// updateProfileRequest leaves absent fields nil so they are not touched.
type updateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Location  *string `json:"location"`
	Bio       *string `json:"bio"`
}

// Get returns the caller's profile.
// @Summary  Get profile
// @Tags     profile
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} map[string]profile.Profile
// @Failure  401 {object} presenter.ErrorResponse
// @Router   /profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	id := currentUserID(c)
	if id == nil {
		return presenter.Error(c, http.StatusUnauthorized, "Authentication required")
	}
	p, err := h.useCase.Get(c.UserContext(), *id)
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"profile": p})
}

// Update applies a partial profile change.
// @Summary  Update profile
// @Tags     profile
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    input body updateProfileRequest true "fields to change"
// @Success  200 {object} map[string]any
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  401 {object} presenter.ErrorResponse
// @Router   /profile/update [put]
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	id := currentUserID(c)
	if id == nil {
		return presenter.Error(c, http.StatusUnauthorized, "Authentication required")
	}
	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Invalid JSON payload")
	}
	p, err := h.useCase.Update(c.UserContext(), *id, auth.ProfileChanges{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Location:  req.Location,
		Bio:       req.Bio,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"message": "Profile updated successfully",
		"profile": p,
	})
}

func (h *ProfileHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, profile.ErrFieldTooLong):
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrNotFound):
		return presenter.Error(c, http.StatusUnauthorized, "Authentication required")
	default:
		return presenter.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to process profile", err)
	}
}
