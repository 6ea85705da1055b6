package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"subtrack/internal/dto"
	"subtrack/internal/models"
	"subtrack/internal/repositories"
	"subtrack/internal/services"
	"subtrack/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerSuite))
}

type AuthHandlerSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	authService  *service_mocks.MockAuthServiceInterface
	tokenService *service_mocks.MockTokenServiceInterface
	handler      *AuthHandler
	e            *echo.Echo
}

func (s *AuthHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.authService = service_mocks.NewMockAuthServiceInterface(s.ctrl)
	s.tokenService = service_mocks.NewMockTokenServiceInterface(s.ctrl)
	s.handler = NewAuthHandler(s.authService, s.tokenService)
	s.e = echo.New()
	s.e.Validator = NewValidator()
}

func (s *AuthHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthHandlerSuite) jsonRequest(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewBuffer(raw))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.e.NewContext(req, rec), rec
}

func (s *AuthHandlerSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response.Error.Code
}

func tokenPair() *dto.TokenResponse {
	return &dto.TokenResponse{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		ExpiresAt:    time.Now().Add(time.Hour),
	}
}

func (s *AuthHandlerSuite) TestRegister() {
	body := map[string]interface{}{
		"email":                        "test@example.com",
		"password":                     "SecurePassword123!",
		"first_name":                   "John",
		"last_name":                    "Doe",
		"default_reminder_days_before": 5,
	}

	s.Run("successful registration", func() {
		user := &models.User{
			ID:                        uuid.New(),
			Email:                     "test@example.com",
			FirstName:                 "John",
			LastName:                  "Doe",
			Role:                      models.RoleUser,
			DefaultReminderDaysBefore: 5,
			CreatedAt:                 time.Now(),
		}

		s.authService.EXPECT().
			Register(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(req *dto.RegisterRequest, _, _ string) (*models.User, *dto.TokenResponse, error) {
				s.Equal("John", req.FirstName)
				s.Require().NotNil(req.DefaultReminderDaysBefore)
				s.Equal(5, *req.DefaultReminderDaysBefore)
				return user, tokenPair(), nil
			})

		c, rec := s.jsonRequest(http.MethodPost, "/register", body)
		s.NoError(s.handler.Register(c))
		s.Equal(http.StatusCreated, rec.Code)

		var response struct {
			Data dto.RegisterResponse `json:"data"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal(user.ID.String(), response.Data.User.ID)
		s.Equal(5, response.Data.User.DefaultReminderDaysBefore)
		s.Equal("access", response.Data.Tokens.AccessToken)
	})

	s.Run("duplicate email", func() {
		s.authService.EXPECT().
			Register(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, services.ErrUserAlreadyExists)

		c, rec := s.jsonRequest(http.MethodPost, "/register", body)
		s.NoError(s.handler.Register(c))
		s.Equal(http.StatusConflict, rec.Code)
		s.Equal("USER_002", s.errorCode(rec))
	})

	s.Run("weak password", func() {
		s.authService.EXPECT().
			Register(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, fmt.Errorf("%w: must contain a number", services.ErrWeakPassword))

		c, rec := s.jsonRequest(http.MethodPost, "/register", body)
		s.NoError(s.handler.Register(c))
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("VALIDATION_001", s.errorCode(rec))
	})

	s.Run("invalid email fails validation", func() {
		invalid := map[string]interface{}{
			"email":      "not-an-email",
			"password":   "SecurePassword123!",
			"first_name": "John",
			"last_name":  "Doe",
		}

		c, _ := s.jsonRequest(http.MethodPost, "/register", invalid)
		s.Error(s.handler.Register(c))
	})

	s.Run("malformed body", func() {
		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString("{"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		s.NoError(s.handler.Register(s.e.NewContext(req, rec)))
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AuthHandlerSuite) TestLogin() {
	body := map[string]string{"email": "test@example.com", "password": "SecurePassword123!"}

	s.Run("successful login", func() {
		s.authService.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(tokenPair(), nil)

		c, rec := s.jsonRequest(http.MethodPost, "/login", body)
		s.NoError(s.handler.Login(c))
		s.Equal(http.StatusOK, rec.Code)

		var response struct {
			Data dto.TokenResponse `json:"data"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal("Bearer", response.Data.TokenType)
	})

	s.Run("invalid credentials", func() {
		s.authService.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, services.ErrInvalidCredentials)

		c, rec := s.jsonRequest(http.MethodPost, "/login", body)
		s.NoError(s.handler.Login(c))
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Equal("AUTH_001", s.errorCode(rec))
	})

	s.Run("locked account", func() {
		s.authService.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, services.ErrAccountLocked)

		c, rec := s.jsonRequest(http.MethodPost, "/login", body)
		s.NoError(s.handler.Login(c))
		s.Equal(http.StatusForbidden, rec.Code)
		s.Equal("AUTH_006", s.errorCode(rec))
	})

	s.Run("system error", func() {
		s.authService.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("db down"))

		c, rec := s.jsonRequest(http.MethodPost, "/login", body)
		s.NoError(s.handler.Login(c))
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

func (s *AuthHandlerSuite) TestRefreshToken() {
	s.Run("successful refresh", func() {
		s.authService.EXPECT().RefreshTokens("old", gomock.Any(), gomock.Any()).Return(tokenPair(), nil)

		c, rec := s.jsonRequest(http.MethodPost, "/refresh", map[string]string{"refresh_token": "old"})
		s.NoError(s.handler.RefreshToken(c))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("invalid refresh token", func() {
		s.authService.EXPECT().RefreshTokens("bad", gomock.Any(), gomock.Any()).Return(nil, services.ErrInvalidRefreshToken)

		c, rec := s.jsonRequest(http.MethodPost, "/refresh", map[string]string{"refresh_token": "bad"})
		s.NoError(s.handler.RefreshToken(c))
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Equal("AUTH_004", s.errorCode(rec))
	})

	s.Run("missing token fails validation", func() {
		c, _ := s.jsonRequest(http.MethodPost, "/refresh", map[string]string{})
		s.Error(s.handler.RefreshToken(c))
	})
}

func (s *AuthHandlerSuite) TestLogout() {
	s.Run("successful logout", func() {
		s.tokenService.EXPECT().ExtractTokenFromHeader("Bearer access").Return("access", nil)
		s.authService.EXPECT().Logout("access", gomock.Any(), gomock.Any()).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		req.Header.Set("Authorization", "Bearer access")
		rec := httptest.NewRecorder()

		s.NoError(s.handler.Logout(s.e.NewContext(req, rec)))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("service failure still succeeds", func() {
		s.tokenService.EXPECT().ExtractTokenFromHeader("Bearer access").Return("access", nil)
		s.authService.EXPECT().Logout("access", gomock.Any(), gomock.Any()).Return(fmt.Errorf("db down"))

		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		req.Header.Set("Authorization", "Bearer access")
		rec := httptest.NewRecorder()

		s.NoError(s.handler.Logout(s.e.NewContext(req, rec)))
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("missing header", func() {
		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		rec := httptest.NewRecorder()

		s.NoError(s.handler.Logout(s.e.NewContext(req, rec)))
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Equal("AUTH_002", s.errorCode(rec))
	})

	s.Run("malformed header", func() {
		s.tokenService.EXPECT().ExtractTokenFromHeader("Token abc").Return("", services.ErrInvalidAuthHeader)

		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()

		s.NoError(s.handler.Logout(s.e.NewContext(req, rec)))
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Equal("AUTH_004", s.errorCode(rec))
	})
}

func (s *AuthHandlerSuite) TestMe() {
	userID := uuid.New()

	s.Run("returns profile", func() {
		s.authService.EXPECT().GetProfile(userID).Return(&models.User{
			ID:                        userID,
			Email:                     "me@example.com",
			Role:                      models.RoleUser,
			DefaultReminderDaysBefore: 3,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)
		c.Set("user_id", userID)

		s.NoError(s.handler.Me(c))
		s.Equal(http.StatusOK, rec.Code)

		var response struct {
			Data dto.UserProfileResponse `json:"data"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal("me@example.com", response.Data.Email)
		s.Equal(3, response.Data.DefaultReminderDaysBefore)
	})

	s.Run("deleted user", func() {
		s.authService.EXPECT().GetProfile(userID).Return(nil, fmt.Errorf("failed to get profile: %w", repositories.ErrUserNotFound))

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)
		c.Set("user_id", userID)

		s.NoError(s.handler.Me(c))
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("no user in context", func() {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		rec := httptest.NewRecorder()

		s.NoError(s.handler.Me(s.e.NewContext(req, rec)))
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
