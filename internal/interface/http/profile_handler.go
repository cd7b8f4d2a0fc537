package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devlinkhq/devlink-backend/internal/application"
	"github.com/devlinkhq/devlink-backend/internal/domain/entity"
	"github.com/devlinkhq/devlink-backend/internal/interface/middleware"
	"github.com/devlinkhq/devlink-backend/pkg/response"
)

type ProfileHandler struct {
	Svc    *application.ProfileService
	Logger *logrus.Logger
}

func NewProfileHandler(svc *application.ProfileService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Logger: logger}
}

type upsertProfileRequest struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	Status         string `json:"status" binding:"required"`
	GithubUsername string `json:"githubusername"`
	Skills         string `json:"skills" binding:"required"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

type experienceRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location"`
	From        string `json:"from" binding:"required"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type educationRequest struct {
	School       string `json:"school" binding:"required"`
	Degree       string `json:"degree" binding:"required"`
	FieldOfStudy string `json:"fieldofstudy" binding:"required"`
	From         string `json:"from" binding:"required"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// Me handles GET /api/profile/me.
func (h *ProfileHandler) Me(c *gin.Context) {
	p, err := h.Svc.Mine(c.Request.Context(), middleware.PrincipalID(c))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "profile")
}

// Upsert handles POST /api/profile: create or merge-update the
// principal's profile.
func (h *ProfileHandler) Upsert(c *gin.Context) {
	var req upsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	p, err := h.Svc.Upsert(c.Request.Context(), middleware.PrincipalID(c), application.UpsertInput{
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		Status:         req.Status,
		GithubUsername: req.GithubUsername,
		Skills:         req.Skills,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		Linkedin:       req.Linkedin,
		Instagram:      req.Instagram,
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "profile saved")
}

// All handles GET /api/profile.
func (h *ProfileHandler) All(c *gin.Context) {
	profiles, err := h.Svc.All(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, profiles, "profiles")
}

// ByUser handles GET /api/profile/user/:userId.
func (h *ProfileHandler) ByUser(c *gin.Context) {
	p, err := h.Svc.ByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "profile")
}

// DeleteAccount handles DELETE /api/profile: cascades the principal's
// posts, profile, and user record.
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	if err := h.Svc.DeleteAccount(c.Request.Context(), middleware.PrincipalID(c)); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, "user removed")
}

// AddExperience handles PUT /api/profile/experience.
func (h *ProfileHandler) AddExperience(c *gin.Context) {
	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	p, err := h.Svc.AddExperience(c.Request.Context(), middleware.PrincipalID(c), entity.Experience{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "experience added")
}

// RemoveExperience handles DELETE /api/profile/experience/:id; removing
// an unknown id succeeds and returns the unchanged profile.
func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	p, err := h.Svc.RemoveExperience(c.Request.Context(), middleware.PrincipalID(c), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "experience removed")
}

// AddEducation handles PUT /api/profile/education.
func (h *ProfileHandler) AddEducation(c *gin.Context) {
	var req educationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	p, err := h.Svc.AddEducation(c.Request.Context(), middleware.PrincipalID(c), entity.Education{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "education added")
}

// RemoveEducation handles DELETE /api/profile/education/:id.
func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	p, err := h.Svc.RemoveEducation(c.Request.Context(), middleware.PrincipalID(c), c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "education removed")
}

// GithubRepos handles GET /api/profile/github/:username.
func (h *ProfileHandler) GithubRepos(c *gin.Context) {
	repos, err := h.Svc.GithubRepos(c.Request.Context(), c.Param("username"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, repos, "github repos")
}
