package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devlinkhq/devlink-backend/pkg/helpers"
	"github.com/devlinkhq/devlink-backend/pkg/response"
)

// TokenHeader is the fixed header the bearer token travels in.
const TokenHeader = "x-auth-token"

// CtxUserIDKey is the gin context key the principal id is stored under.
const CtxUserIDKey = "userID"

// Auth verifies the bearer token from the x-auth-token header and
// attaches the principal id to the request context. It never touches
// persistence; a bad or missing token ends the request with 401.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			response.Abort(c, http.StatusUnauthorized, "no token, authorization denied", nil)
			return
		}
		userID, err := jwt.Verify(token)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "token is not valid", nil)
			return
		}
		c.Set(CtxUserIDKey, userID)
		c.Next()
	}
}

// PrincipalID returns the authenticated principal's id set by Auth.
func PrincipalID(c *gin.Context) string {
	return c.GetString(CtxUserIDKey)
}
