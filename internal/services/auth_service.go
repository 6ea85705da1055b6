package services

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"subtrack/internal/dto"
	"subtrack/internal/models"
	"subtrack/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrAccountLocked       = errors.New("account is locked due to too many failed attempts")
	ErrUserAlreadyExists   = errors.New("user with this email already exists")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrWeakPassword        = errors.New("password does not meet requirements")
)

// expired access tokens are still blacklisted for this long on logout
const expiredLogoutBlacklistTTL = 24 * time.Hour

// AuthService handles authentication business logic
type AuthService struct {
	userRepo             repositories.UserRepositoryInterface
	refreshTokenRepo     repositories.RefreshTokenRepositoryInterface
	auditRepo            repositories.AuditLogRepositoryInterface
	blacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface
	passwordService      PasswordServiceInterface
	tokenService         TokenServiceInterface
	metrics              MetricsRecorderInterface
	logger               *slog.Logger
	now                  func() time.Time
}

// NewAuthService creates a new authentication service. metrics may be nil.
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	refreshTokenRepo repositories.RefreshTokenRepositoryInterface,
	auditRepo repositories.AuditLogRepositoryInterface,
	blacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:             userRepo,
		refreshTokenRepo:     refreshTokenRepo,
		auditRepo:            auditRepo,
		blacklistedTokenRepo: blacklistedTokenRepo,
		passwordService:      passwordService,
		tokenService:         tokenService,
		metrics:              metrics,
		logger:               logger,
		now:                  time.Now,
	}
}

// Register creates a new user and signs them in
func (s *AuthService) Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*models.User, *dto.TokenResponse, error) {
	email := strings.TrimSpace(req.Email)

	existingUser, err := s.userRepo.GetByEmail(email)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	if existingUser != nil {
		s.auditFailedRegistration(email, ipAddress, userAgent, "email_already_exists")
		return nil, nil, ErrUserAlreadyExists
	}

	if err := s.passwordService.ValidatePassword(req.Password); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrWeakPassword, err)
	}

	hashedPassword, err := s.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	reminderDays := models.DefaultReminderDaysBefore
	if req.DefaultReminderDaysBefore != nil {
		reminderDays = *req.DefaultReminderDaysBefore
	}

	user := &models.User{
		Email:                     email,
		PasswordHash:              hashedPassword,
		FirstName:                 strings.TrimSpace(req.FirstName),
		LastName:                  strings.TrimSpace(req.LastName),
		Role:                      models.RoleUser,
		DefaultReminderDaysBefore: reminderDays,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, nil, ErrUserAlreadyExists
		}
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}

	tokens, err := s.generateTokens(user, ipAddress, userAgent)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	s.auditSuccessfulRegistration(user, ipAddress, userAgent)
	s.countAuthEvent("register", "success")

	return user, tokens, nil
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.auditFailedLogin(req.Email, ipAddress, userAgent, "user_not_found")
			s.countAuthEvent("login", "failure")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user.IsLocked() {
		s.auditFailedLogin(req.Email, ipAddress, userAgent, "account_locked")
		s.countAuthEvent("login", "locked")
		return nil, ErrAccountLocked
	}

	if !s.passwordService.ComparePassword(req.Password, user.PasswordHash) {
		user.IncrementFailedAttempts()
		if err := s.userRepo.UpdateFailedLoginAttempts(user); err != nil {
			// never surface this: it would reveal that the email exists
			s.logger.Error("failed to update login attempts",
				"error", err,
				"user_id", user.ID)
		}

		if user.IsLocked() {
			s.auditAccountLocked(user, ipAddress, userAgent)
		}

		s.auditFailedLogin(req.Email, ipAddress, userAgent, "invalid_password")
		s.countAuthEvent("login", "failure")
		return nil, ErrInvalidCredentials
	}

	if user.FailedLoginAttempts > 0 {
		if err := s.userRepo.ResetFailedLoginAttempts(user.ID); err != nil {
			s.logger.Warn("failed to reset login attempts",
				"error", err,
				"user_id", user.ID)
		}
		user.ResetFailedAttempts()
	}

	loginAt := s.now()
	if err := s.userRepo.UpdateLastLogin(user.ID, loginAt); err != nil {
		s.logger.Warn("failed to record last login",
			"error", err,
			"user_id", user.ID)
	} else {
		user.LastLoginAt = &loginAt
	}

	tokens, err := s.generateTokens(user, ipAddress, userAgent)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	s.auditSuccessfulLogin(user, ipAddress, userAgent)
	s.countAuthEvent("login", "success")

	return tokens, nil
}

// RefreshTokens rotates a refresh token. The presented token is revoked and
// linked to its successor; a revoked token can never be used again.
func (s *AuthService) RefreshTokens(refreshToken, ipAddress, userAgent string) (*dto.TokenResponse, error) {
	claims, err := s.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		s.auditFailedTokenRefresh(uuid.Nil, ipAddress, userAgent, "invalid_token")
		s.countAuthEvent("refresh", "failure")
		return nil, ErrInvalidRefreshToken
	}

	userID, err := claims.ParsedUserID()
	if err != nil {
		s.auditFailedTokenRefresh(uuid.Nil, ipAddress, userAgent, "invalid_subject")
		return nil, ErrInvalidRefreshToken
	}

	storedToken, err := s.refreshTokenRepo.GetByTokenHash(hashToken(refreshToken))
	if err != nil {
		s.auditFailedTokenRefresh(userID, ipAddress, userAgent, "token_not_found")
		s.countAuthEvent("refresh", "failure")
		return nil, ErrInvalidRefreshToken
	}

	if !storedToken.IsValid() || storedToken.UserID != userID {
		s.auditFailedTokenRefresh(userID, ipAddress, userAgent, "token_expired_or_revoked")
		s.countAuthEvent("refresh", "failure")
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	tokens, successor, err := s.issueTokens(user, ipAddress, userAgent)
	if err != nil {
		return nil, fmt.Errorf("failed to generate new tokens: %w", err)
	}

	storedToken.RotateTo(successor.ID)
	if err := s.refreshTokenRepo.Update(storedToken); err != nil {
		s.logger.Warn("failed to revoke rotated refresh token",
			"error", err,
			"user_id", user.ID,
			"token_id", storedToken.ID)
	}

	s.auditSuccessfulTokenRefresh(user, ipAddress, userAgent)
	s.countAuthEvent("refresh", "success")

	return tokens, nil
}

// Logout blacklists the access token and revokes every refresh token of the
// user. An expired or otherwise invalid token still has its JTI blacklisted.
func (s *AuthService) Logout(accessToken, ipAddress, userAgent string) error {
	claims, err := s.tokenService.ValidateAccessToken(accessToken)
	if err != nil {
		jti, _ := s.tokenService.GetJTI(accessToken)
		if jti != "" {
			token := models.NewBlacklistedToken(jti, uuid.Nil, s.now().Add(expiredLogoutBlacklistTTL), models.BlacklistReasonExpiredLogout)
			if err := s.blacklistedTokenRepo.Create(token); err != nil {
				s.logger.Error("failed to blacklist expired token",
					"error", err,
					"jti", jti)
			}
		}
		return nil
	}

	userID, _ := claims.ParsedUserID()

	expiry := s.now().Add(expiredLogoutBlacklistTTL)
	if claims.ExpiresAt != nil {
		expiry = claims.ExpiresAt.Time
	}

	token := models.NewBlacklistedToken(claims.ID, userID, expiry, models.BlacklistReasonLogout)
	if err := s.blacklistedTokenRepo.Create(token); err != nil {
		s.logger.Error("failed to blacklist token",
			"error", err,
			"jti", claims.ID,
			"user_id", userID)
	}

	if err := s.refreshTokenRepo.RevokeAllForUser(userID); err != nil {
		s.logger.Warn("failed to revoke refresh tokens",
			"error", err,
			"user_id", userID)
	}

	s.auditLogout(userID, ipAddress, userAgent)
	s.countAuthEvent("logout", "success")

	return nil
}

// GetProfile returns the user behind an authenticated request
func (s *AuthService) GetProfile(userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return user, nil
}

func (s *AuthService) generateTokens(user *models.User, ipAddress, userAgent string) (*dto.TokenResponse, error) {
	tokens, _, err := s.issueTokens(user, ipAddress, userAgent)
	return tokens, err
}

func (s *AuthService) issueTokens(user *models.User, ipAddress, userAgent string) (*dto.TokenResponse, *models.RefreshToken, error) {
	accessToken, expiresAt, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.tokenService.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	stored := &models.RefreshToken{
		ID:          uuid.New(),
		UserID:      user.ID,
		TokenHash:   hashToken(refreshToken),
		IssuedIP:    ipAddress,
		IssuedAgent: userAgent,
		ExpiresAt:   refreshExpiresAt,
	}

	if err := s.refreshTokenRepo.Create(stored); err != nil {
		return nil, nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresAt:    expiresAt,
	}, stored, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", sum)
}

func (s *AuthService) countAuthEvent(event, outcome string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter(MetricAuthEvents, map[string]string{
		"event":   event,
		"outcome": outcome,
	})
}

func (s *AuthService) auditSuccessfulRegistration(user *models.User, ipAddress, userAgent string) {
	s.createAuditLog(&user.ID, models.AuditActionRegister, models.AuditResourceUser, user.ID.String(), ipAddress, userAgent, nil)
}

func (s *AuthService) auditFailedRegistration(email, ipAddress, userAgent, reason string) {
	metadata := map[string]interface{}{
		"email":  email,
		"reason": reason,
	}
	s.createAuditLog(nil, models.AuditActionRegister, models.AuditResourceUser, "", ipAddress, userAgent, metadata)
}

func (s *AuthService) auditSuccessfulLogin(user *models.User, ipAddress, userAgent string) {
	s.createAuditLog(&user.ID, models.AuditActionLogin, models.AuditResourceUser, user.ID.String(), ipAddress, userAgent, nil)
}

func (s *AuthService) auditFailedLogin(email, ipAddress, userAgent, reason string) {
	metadata := map[string]interface{}{
		"email":  email,
		"reason": reason,
	}
	s.createAuditLog(nil, models.AuditActionFailedLogin, models.AuditResourceUser, "", ipAddress, userAgent, metadata)
}

func (s *AuthService) auditAccountLocked(user *models.User, ipAddress, userAgent string) {
	s.createAuditLog(&user.ID, models.AuditActionAccountLocked, models.AuditResourceUser, user.ID.String(), ipAddress, userAgent, nil)
}

func (s *AuthService) auditSuccessfulTokenRefresh(user *models.User, ipAddress, userAgent string) {
	s.createAuditLog(&user.ID, models.AuditActionTokenRefresh, models.AuditResourceUser, user.ID.String(), ipAddress, userAgent, nil)
}

func (s *AuthService) auditFailedTokenRefresh(userID uuid.UUID, ipAddress, userAgent, reason string) {
	var uid *uuid.UUID
	if userID != uuid.Nil {
		uid = &userID
	}
	metadata := map[string]interface{}{
		"reason": reason,
	}
	s.createAuditLog(uid, models.AuditActionTokenRefresh, models.AuditResourceToken, "", ipAddress, userAgent, metadata)
}

func (s *AuthService) auditLogout(userID uuid.UUID, ipAddress, userAgent string) {
	s.createAuditLog(&userID, models.AuditActionLogout, models.AuditResourceUser, userID.String(), ipAddress, userAgent, nil)
}

func (s *AuthService) createAuditLog(userID *uuid.UUID, action, resource, resourceID, ipAddress, userAgent string, metadata map[string]interface{}) {
	log := &models.AuditLog{
		UserID:     userID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Metadata:   metadata,
	}

	if err := s.auditRepo.Create(log); err != nil {
		// audit failures never block authentication
		s.logger.Error("failed to create audit log",
			"error", err,
			"action", action,
			"resource", resource,
			"resource_id", resourceID)
	}
}
