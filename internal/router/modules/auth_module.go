package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devlinkhq/devlink-backend/internal/container"
	handlers "github.com/devlinkhq/devlink-backend/internal/interface/http"
	"github.com/devlinkhq/devlink-backend/internal/interface/middleware"
)

// AuthModule wires registration and authentication routes.
// Public: POST /api/users, POST /api/auth. Protected: GET /api/auth.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// credential endpoints get a per-IP limiter, private IPs bypass it
	limiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.POST("/users", limiter, m.Handler.Register)
	rg.POST("/auth", limiter, m.Handler.Login)

	auth := rg.Group("/auth")
	auth.Use(middleware.Auth(container.GetJWT()))
	auth.GET("", m.Handler.Me)
}
