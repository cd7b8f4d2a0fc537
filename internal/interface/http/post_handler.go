package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devlinkhq/devlink-backend/internal/application"
	"github.com/devlinkhq/devlink-backend/internal/interface/middleware"
	"github.com/devlinkhq/devlink-backend/pkg/response"
)

type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

type createPostRequest struct {
	Text string `json:"text" binding:"required"`
}

type commentRequest struct {
	Text string `json:"text" binding:"required"`
}

// Create handles POST /api/posts.
func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), middleware.PrincipalID(c), req.Text)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "post created")
}

// List handles GET /api/posts, newest first.
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.Svc.List(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, posts, "posts")
}

// Get handles GET /api/posts/:id.
func (h *PostHandler) Get(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "post")
}

// Delete handles DELETE /api/posts/:id; only the author may delete.
func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), middleware.PrincipalID(c), c.Param("id")); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, "post removed")
}

// Like handles PUT /api/posts/like/:id and returns the updated likes.
func (h *PostHandler) Like(c *gin.Context) {
	likes, err := h.Svc.Like(c.Request.Context(), middleware.PrincipalID(c), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, likes, "post liked")
}

// Unlike handles PUT /api/posts/unlike/:id and returns the updated likes.
func (h *PostHandler) Unlike(c *gin.Context) {
	likes, err := h.Svc.Unlike(c.Request.Context(), middleware.PrincipalID(c), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, likes, "post unliked")
}

// Comment handles POST /api/posts/comment/:id and returns the updated
// comments list.
func (h *PostHandler) Comment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	comments, err := h.Svc.Comment(c.Request.Context(), middleware.PrincipalID(c), c.Param("id"), req.Text)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, comments, "comment added")
}

// Uncomment handles DELETE /api/posts/comment/:id/:commentId.
func (h *PostHandler) Uncomment(c *gin.Context) {
	comments, err := h.Svc.Uncomment(c.Request.Context(), middleware.PrincipalID(c), c.Param("id"), c.Param("commentId"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, comments, "comment removed")
}
