package handlers

import (
	stderrors "errors"
	"net/http"

	"subtrack/internal/dto"
	"subtrack/internal/errors"
	"subtrack/internal/repositories"
	"subtrack/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService  services.AuthServiceInterface
	tokenService services.TokenServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface, tokenService services.TokenServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokenService: tokenService,
	}
}

// Register handles user registration
//
// Method: POST /api/v1/auth/register
//
// Success Response: 201 Created with the new profile and a token pair
//
// Error Responses:
//   - 400: VALIDATION_001 (malformed body or weak password)
//   - 409: USER_002 (email already registered)
//   - 500: SYSTEM_001
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	user, tokens, err := h.authService.Register(&req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrUserAlreadyExists):
			return SendError(c, errors.UserAlreadyExists)
		case stderrors.Is(err, services.ErrWeakPassword):
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return SendData(c, http.StatusCreated, dto.RegisterResponse{
		User:   dto.ToUserProfileResponse(user),
		Tokens: tokens,
	}, "User registered successfully")
}

// Login handles user authentication
//
// Method: POST /api/v1/auth/login
//
// Error Responses:
//   - 400: VALIDATION_001
//   - 401: AUTH_001 (invalid credentials)
//   - 403: AUTH_006 (account locked)
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	tokens, err := h.authService.Login(&req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		if stderrors.Is(err, services.ErrAccountLocked) {
			return SendError(c, errors.AuthAccountLocked)
		}
		if stderrors.Is(err, services.ErrInvalidCredentials) {
			return SendError(c, errors.AuthInvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	return SendData(c, http.StatusOK, tokens, "Login successful")
}

// RefreshToken exchanges a refresh token for a new pair. The presented
// token is revoked.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req dto.RefreshTokenRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	tokens, err := h.authService.RefreshTokens(req.RefreshToken, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidRefreshToken) {
			return SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Invalid or expired refresh token"))
		}
		return SendSystemError(c, err)
	}

	return SendData(c, http.StatusOK, tokens, "Token refreshed successfully")
}

// Logout handles user logout
//
// Method: POST /api/v1/auth/logout
// Authentication: Bearer token
func (h *AuthHandler) Logout(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return SendError(c, errors.AuthMissingToken)
	}

	accessToken, err := h.tokenService.ExtractTokenFromHeader(authHeader)
	if err != nil {
		return SendError(c, errors.AuthInvalidTokenFormat)
	}

	// Always report success so logout reveals nothing about the token
	if err := h.authService.Logout(accessToken, getClientIP(c), c.Request().UserAgent()); err != nil {
		c.Logger().Warnf("logout failed: %v", err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Logout successful",
	})
}

// Me returns the authenticated user's profile
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	user, err := h.authService.GetProfile(userID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrUserNotFound) {
			return SendError(c, errors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return SendData(c, http.StatusOK, dto.ToUserProfileResponse(user), "")
}
