package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"quotidepense-be/pkg/helpers"
	"quotidepense-be/pkg/response"
)

// CtxUserIDKey is the gin context key carrying the authenticated user id.
const CtxUserIDKey = "userID"

// Auth extracts the bearer token from the Authorization header and verifies
// it. A missing header is reported distinctly from a bad token. On success
// the resolved user id is bound to the request context; downstream handlers
// read it from there and never re-derive it.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.AbortError(c, http.StatusUnauthorized, "authentication required")
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
		claims, err := jwt.Parse(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid token")
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}
