package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/aicomparator/api/http/presenter"
	"github.com/artem13815/aicomparator/pkg/auth"
)

type AuthHandler struct {
	useCase auth.AuthUseCase
	logger  *slog.Logger
}

func NewAuthHandler(useCase auth.AuthUseCase, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{useCase: useCase, logger: logger}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type userResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
}

type tokensResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type authResponse struct {
	Message string         `json:"message,omitempty"`
	User    userResponse   `json:"user"`
	Tokens  tokensResponse `json:"tokens"`
}

func newAuthResponse(message string, res auth.AuthResult) authResponse {
	return authResponse{
		Message: message,
		User:    userResponse{ID: res.User.ID.String(), Email: res.User.Email, Username: res.User.Username},
		Tokens:  tokensResponse{Access: res.Tokens.Access, Refresh: res.Tokens.Refresh},
	}
}

// Register handles user registration.
// @Summary Register user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body registerRequest true "registration payload"
// @Success 201 {object} authResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Invalid JSON payload")
	}

	result, err := h.useCase.Register(c.UserContext(), auth.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingFields):
			return presenter.Error(c, http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, auth.ErrUsernameRequired):
			return presenter.Error(c, http.StatusBadRequest, "Username is required")
		case errors.Is(err, auth.ErrUserAlreadyExists):
			return presenter.Error(c, http.StatusBadRequest, "Email already exists")
		default:
			h.logger.Error("register failed", "error", err)
			return presenter.ErrorWithDetails(c, http.StatusInternalServerError, "Registration failed", err)
		}
	}

	return presenter.JSON(c, http.StatusCreated, newAuthResponse("User registered successfully", result))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles user login.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} authResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Invalid JSON payload")
	}

	result, err := h.useCase.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingFields):
			return presenter.Error(c, http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, auth.ErrInvalidCredentials):
			return presenter.Error(c, http.StatusUnauthorized, "Invalid credentials")
		default:
			h.logger.Error("login failed", "error", err)
			return presenter.ErrorWithDetails(c, http.StatusInternalServerError, "Login failed", err)
		}
	}

	return presenter.JSON(c, http.StatusOK, newAuthResponse("Login successful", result))
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

// Refresh exchanges a refresh token for a new token pair.
// @Summary Refresh tokens
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body refreshRequest true "refresh token"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/refresh [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req refreshRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Invalid JSON payload")
	}
	if req.Refresh == "" {
		return presenter.Error(c, http.StatusBadRequest, "Refresh token is required")
	}

	result, err := h.useCase.Refresh(c.UserContext(), req.Refresh)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return presenter.Error(c, http.StatusUnauthorized, "Invalid refresh token")
		}
		h.logger.Error("refresh failed", "error", err)
		return presenter.ErrorWithDetails(c, http.StatusInternalServerError, "Token refresh failed", err)
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"tokens": tokensResponse{Access: result.Tokens.Access, Refresh: result.Tokens.Refresh},
	})
}

// User returns the authenticated caller.
// @Summary  Current user
// @Tags     auth
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} map[string]any
// @Failure  401 {object} presenter.ErrorResponse
// @Router   /auth/user [get]
func (h *AuthHandler) User(c *fiber.Ctx) error {
	id := currentUserID(c)
	if id == nil {
		return presenter.Error(c, http.StatusUnauthorized, "Authentication required")
	}
	user, err := h.useCase.GetUser(c.UserContext(), *id)
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			return presenter.Error(c, http.StatusUnauthorized, "Authentication required")
		}
		return presenter.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to load user", err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"user": userResponse{ID: user.ID.String(), Email: user.Email},
	})
}
