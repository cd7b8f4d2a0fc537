package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/devlinkhq/devlink-backend/internal/domain/entity"
	"github.com/devlinkhq/devlink-backend/internal/domain/repository"
	"github.com/devlinkhq/devlink-backend/pkg/apperrors"
	"github.com/devlinkhq/devlink-backend/pkg/helpers"
)

// AuthService handles registration, login, and the current-user lookup.
// Authentication is stateless: the only credential a request carries is
// the bearer token, and the principal is rebuilt from it on every call.
type AuthService struct {
	Users  repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

// Register creates an account and returns a signed token for it. The
// avatar snapshot is derived from the email at registration time.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	if _, err := s.Users.GetByEmail(ctx, email); err == nil {
		return "", apperrors.Conflict("user already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", apperrors.Internal(err)
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return "", apperrors.Internal(err)
	}
	u := &entity.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Avatar:   helpers.GravatarURL(email),
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return "", apperrors.Internal(err)
	}

	token, _, err := s.JWT.Sign(u.ID.Hex())
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID.Hex()).Error("sign token failed")
		return "", apperrors.Internal(err)
	}
	return token, nil
}

// Login verifies credentials and returns a signed token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return "", apperrors.Conflict("invalid credentials")
	}
	if err != nil {
		return "", apperrors.Internal(err)
	}
	if !helpers.CheckPassword(u.Password, password) {
		return "", apperrors.Conflict("invalid credentials")
	}

	token, _, err := s.JWT.Sign(u.ID.Hex())
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID.Hex()).Error("sign token failed")
		return "", apperrors.Internal(err)
	}
	return token, nil
}

// CurrentUser returns the principal's account record; the password hash
// is excluded from serialization at the entity level.
func (s *AuthService) CurrentUser(ctx context.Context, principalID string) (*entity.User, error) {
	oid, err := principalOID(principalID)
	if err != nil {
		return nil, err
	}
	u, err := s.Users.GetByID(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NotFound("user not found")
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return u, nil
}
