package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/devlinkhq/devlink-backend/internal/container"
	handlers "github.com/devlinkhq/devlink-backend/internal/interface/http"
	"github.com/devlinkhq/devlink-backend/internal/interface/middleware"
)

// ProfileModule wires profile routes. Listing profiles and the github
// proxy are public; everything touching the principal's own profile is
// protected.
type ProfileModule struct {
	Handler *handlers.ProfileHandler
}

func NewProfileModule(h *handlers.ProfileHandler) *ProfileModule {
	return &ProfileModule{Handler: h}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	profile := rg.Group("/profile")

	profile.GET("", m.Handler.All)
	profile.GET("/user/:userId", m.Handler.ByUser)
	profile.GET("/github/:username", m.Handler.GithubRepos)

	authed := profile.Group("")
	authed.Use(middleware.Auth(container.GetJWT()))
	{
		authed.GET("/me", m.Handler.Me)
		authed.POST("", m.Handler.Upsert)
		authed.DELETE("", m.Handler.DeleteAccount)
		authed.PUT("/experience", m.Handler.AddExperience)
		authed.DELETE("/experience/:id", m.Handler.RemoveExperience)
		authed.PUT("/education", m.Handler.AddEducation)
		authed.DELETE("/education/:id", m.Handler.RemoveEducation)
	}
}
