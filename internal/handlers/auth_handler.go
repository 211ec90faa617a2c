package handlers

import (
	"net/http"

	"financehub/internal/dto"
	"financehub/internal/errors"
	"financehub/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService services.AuthServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Description Create a user with a starting profile and the default category set
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.TokenResponse "User created, access token issued"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 422 {object} errors.ErrorResponse "Email already registered - AUTH_005"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	tokens, err := h.authService.Register(&req, getClientIP(c))
	if err != nil {
		switch err {
		case services.ErrUserAlreadyExists:
			return SendError(c, errors.AuthEmailTaken)
		case services.ErrInvalidAmount:
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Starting amounts must be non-negative numbers"))
		case services.ErrPasswordEmpty, services.ErrPasswordTooShort, services.ErrPasswordTooLong,
			services.ErrPasswordNoLetter, services.ErrPasswordNoNumber:
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, tokens)
}

// Login handles user authentication
// @Summary Login user
// @Description Authenticate with email and password, receive a JWT access token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.TokenResponse "Login successful"
// @Failure 401 {object} errors.ErrorResponse "Invalid credentials - AUTH_001"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	tokens, err := h.authService.Login(&req, getClientIP(c))
	if err != nil {
		if err == services.ErrInvalidCredentials {
			return SendError(c, errors.AuthInvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, tokens)
}

// Me returns the authenticated user's profile
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	profile, err := h.authService.GetProfile(userID)
	if err != nil {
		if err == services.ErrUserNotFound {
			return SendError(c, errors.AuthInvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, profile)
}
