package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devlinkhq/devlink-backend/internal/application"
	"github.com/devlinkhq/devlink-backend/internal/domain/entity"
	"github.com/devlinkhq/devlink-backend/internal/domain/repository"
	"github.com/devlinkhq/devlink-backend/internal/interface/middleware"
	"github.com/devlinkhq/devlink-backend/pkg/helpers"
	"github.com/devlinkhq/devlink-backend/pkg/validation"
)

type memUserRepo struct {
	users map[primitive.ObjectID]*entity.User
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	u.ID = primitive.NewObjectID()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(r.users, id)
	return nil
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := logrus.New()
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	svc := application.NewAuthService(&memUserRepo{users: map[primitive.ObjectID]*entity.User{}}, jwt, logger)
	h := NewAuthHandler(svc, logger)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/users", h.Register)
	api.POST("/auth", h.Login)
	api.GET("/auth", middleware.Auth(jwt), h.Me)
	return r
}

func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(middleware.TokenHeader, token)
	}
	r.ServeHTTP(w, req)
	return w
}

func tokenFrom(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var env struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NotEmpty(t, env.Data.Token)
	return env.Data.Token
}

func TestRegisterAndFetchCurrentUser(t *testing.T) {
	r := newAuthRouter()

	w := doJSON(r, http.MethodPost, "/api/users", `{"name":"Ann","email":"a@x.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token := tokenFrom(t, w)

	w = doJSON(r, http.MethodGet, "/api/auth", "", token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"email":"a@x.com"`)
	// password hash never leaves the server
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "secret1")
}

func TestRegisterValidation(t *testing.T) {
	r := newAuthRouter()

	t.Run("short password", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/users", `{"name":"Ann","email":"a@x.com","password":"abc"}`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "password")
	})

	t.Run("bad email", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/users", `{"name":"Ann","email":"nope","password":"secret1"}`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "email")
	})
}

func TestLoginFlow(t *testing.T) {
	r := newAuthRouter()
	w := doJSON(r, http.MethodPost, "/api/users", `{"name":"Ann","email":"a@x.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("good credentials", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/auth", `{"email":"a@x.com","password":"secret1"}`, "")
		assert.Equal(t, http.StatusOK, w.Code)
		tokenFrom(t, w)
	})

	t.Run("bad credentials", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/auth", `{"email":"a@x.com","password":"wrong"}`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid credentials")
	})
}

func TestProtectedEndpointWithoutToken(t *testing.T) {
	r := newAuthRouter()
	w := doJSON(r, http.MethodGet, "/api/auth", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "no token, authorization denied")
}
