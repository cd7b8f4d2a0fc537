// Package handlers holds the HTTP boundary: request binding, error
// mapping, response shaping. No business rules live here.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devlinkhq/devlink-backend/pkg/apperrors"
	"github.com/devlinkhq/devlink-backend/pkg/response"
	"github.com/devlinkhq/devlink-backend/pkg/validation"
)

// fail converts a service error into the response the taxonomy dictates.
// Internal failures are logged with detail and surfaced generically.
func fail(c *gin.Context, logger *logrus.Logger, err error) {
	ae := apperrors.From(err)
	if ae.Kind == apperrors.KindInternal && logger != nil {
		logger.WithError(ae).WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"path":       c.FullPath(),
		}).Error("request failed")
	}
	var details interface{}
	if len(ae.Fields) > 0 {
		details = ae.Fields
	}
	response.Error(c, ae.Status(), ae.Message, details)
}

// badRequest writes the exhaustive field/message list for a binding
// failure.
func badRequest(c *gin.Context, err error) {
	response.Error(c, http.StatusBadRequest, "validation failed", validation.ToFieldErrors(err))
}
