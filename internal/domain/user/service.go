// internal/domain/user/service.go
package user

import (
	"context"
	"errors"
	"time"

	"github.com/coupledelight/shop-api/internal/pkg/apperror"
	"github.com/coupledelight/shop-api/internal/pkg/auth"
	"github.com/coupledelight/shop-api/internal/pkg/validation"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var errInvalidCredentials = apperror.Unauthorized("Invalid email or password")

// Service handles account registration, login and profiles
type Service struct {
	repo      Repository
	passwords *auth.PasswordManager
	tokens    *auth.JWTManager
	logger    logrus.FieldLogger
	now       func() time.Time
}

// NewService creates a new user service
func NewService(repo Repository, passwords *auth.PasswordManager, tokens *auth.JWTManager, logger logrus.FieldLogger) *Service {
	return &Service{
		repo:      repo,
		passwords: passwords,
		tokens:    tokens,
		logger:    logger.WithField("component", "users"),
		now:       time.Now,
	}
}

// Register creates an email/password account and signs it in
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	req.Email = NormalizeEmail(req.Email)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, apperror.Validation(err.Error())
	}

	u := &User{
		Email:    req.Email,
		Password: hash,
		Provider: ProviderEmail,
		Role:     RoleUser,
		Profile:  req.Profile,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, apperror.Conflict("An account with this email already exists")
		}
		s.logger.WithError(err).Error("Failed to register user")
		return nil, apperror.Storage("register user", err)
	}

	s.logger.WithField("user_id", u.ID).Info("User registered")
	return s.issueTokens(u)
}

// Login verifies credentials. Unknown emails, social accounts and wrong
// passwords all produce the same error.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if errors.Is(err, ErrNotFound) {
		return nil, errInvalidCredentials
	}
	if err != nil {
		s.logger.WithError(err).Error("Failed to load user for login")
		return nil, apperror.Storage("log in", err)
	}
	if u.Password == "" || s.passwords.VerifyPassword(req.Password, u.Password) != nil {
		return nil, errInvalidCredentials
	}

	now := s.now().UTC()
	u.LastLoginAt = &now
	if err := s.repo.Save(ctx, u); err != nil {
		s.logger.WithError(err).WithField("user_id", u.ID).Warn("Failed to record last login")
	}

	return s.issueTokens(u)
}

// Refresh exchanges a refresh token for a new token pair
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid or expired refresh token")
	}

	u, err := s.repo.FindByID(ctx, claims.UserID)
	if errors.Is(err, ErrNotFound) {
		return nil, apperror.Unauthorized("Invalid or expired refresh token")
	}
	if err != nil {
		return nil, apperror.Storage("refresh token", err)
	}

	return s.issueTokens(u)
}

// GetProfile returns the user with the given id
func (s *Service) GetProfile(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperror.NotFound("User")
	}
	if err != nil {
		return nil, apperror.Storage("retrieve user", err)
	}
	return u, nil
}

// UpdateProfile replaces the couple profile of a user
func (s *Service) UpdateProfile(ctx context.Context, id uuid.UUID, profile Profile) (*User, error) {
	if err := validation.Struct(profile); err != nil {
		return nil, err
	}

	u, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	u.Profile = profile
	if err := s.repo.Save(ctx, u); err != nil {
		s.logger.WithError(err).WithField("user_id", id).Error("Failed to update profile")
		return nil, apperror.Storage("update profile", err)
	}
	return u, nil
}

func (s *Service) issueTokens(u *User) (*AuthResponse, error) {
	access, err := s.tokens.GenerateAccessToken(u.ID, u.Email, u.IsAdmin())
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(u.ID, u.Email)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		User:         u,
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.tokens.AccessTokenExpiry().Seconds()),
	}, nil
}
