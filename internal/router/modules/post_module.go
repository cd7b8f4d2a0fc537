package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/devlinkhq/devlink-backend/internal/container"
	handlers "github.com/devlinkhq/devlink-backend/internal/interface/http"
	"github.com/devlinkhq/devlink-backend/internal/interface/middleware"
)

// PostModule wires the post routes; every one of them requires auth.
type PostModule struct {
	Handler *handlers.PostHandler
}

func NewPostModule(h *handlers.PostHandler) *PostModule {
	return &PostModule{Handler: h}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	posts.Use(middleware.Auth(container.GetJWT()))
	{
		posts.POST("", m.Handler.Create)
		posts.GET("", m.Handler.List)
		posts.GET("/:id", m.Handler.Get)
		posts.DELETE("/:id", m.Handler.Delete)
		posts.PUT("/like/:id", m.Handler.Like)
		posts.PUT("/unlike/:id", m.Handler.Unlike)
		posts.POST("/comment/:id", m.Handler.Comment)
		posts.DELETE("/comment/:id/:commentId", m.Handler.Uncomment)
	}
}
