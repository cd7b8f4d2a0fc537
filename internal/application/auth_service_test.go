package application

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devlinkhq/devlink-backend/pkg/apperrors"
	"github.com/devlinkhq/devlink-backend/pkg/helpers"
)

func newAuthService() (*AuthService, *fakeUserRepo) {
	users := newFakeUserRepo()
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	logger := logrus.New()
	return NewAuthService(users, jwt, logger), users
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc, users := newAuthService()

	t.Run("returns a token for the new account", func(t *testing.T) {
		token, err := svc.Register(ctx, "Ann", "a@x.com", "secret1")
		require.NoError(t, err)

		uid, err := svc.JWT.Verify(token)
		require.NoError(t, err)
		u, err := svc.CurrentUser(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, "Ann", u.Name)
		assert.Equal(t, "a@x.com", u.Email)
		assert.Contains(t, u.Avatar, "gravatar.com")
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, "Ann Again", "a@x.com", "secret2")
		ae := apperrors.From(err)
		assert.Equal(t, apperrors.KindConflict, ae.Kind)
		assert.Len(t, users.users, 1)
	})

	t.Run("stored password is hashed", func(t *testing.T) {
		for _, u := range users.users {
			assert.NotEqual(t, "secret1", u.Password)
			assert.True(t, helpers.CheckPassword(u.Password, "secret1"))
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService()
	_, err := svc.Register(ctx, "Ann", "a@x.com", "secret1")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		token, err := svc.Login(ctx, "a@x.com", "secret1")
		require.NoError(t, err)
		_, err = svc.JWT.Verify(token)
		assert.NoError(t, err)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		_, errPwd := svc.Login(ctx, "a@x.com", "wrong")
		_, errEmail := svc.Login(ctx, "nobody@x.com", "secret1")

		assert.Equal(t, apperrors.From(errPwd).Message, apperrors.From(errEmail).Message)
		assert.Equal(t, apperrors.KindConflict, apperrors.From(errPwd).Kind)
	})
}

func TestCurrentUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService()

	t.Run("malformed principal id reads as unauthorized", func(t *testing.T) {
		_, err := svc.CurrentUser(ctx, "not-an-object-id")
		assert.Equal(t, apperrors.KindUnauthorized, apperrors.From(err).Kind)
	})

	t.Run("unknown principal reads as not found", func(t *testing.T) {
		_, err := svc.CurrentUser(ctx, "5f1f77bcf86cd799439011aa")
		assert.Equal(t, apperrors.KindNotFound, apperrors.From(err).Kind)
	})
}
