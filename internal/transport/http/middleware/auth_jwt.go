package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-charity-backend/internal/core/auth"
	"go-charity-backend/internal/transport/http/response"
)

// Context keys set by AuthJWT for downstream handlers.
const (
	KeyAdminID    = "adminId"
	KeyAdminEmail = "adminEmail"
	KeyAdminRole  = "adminRole"
)

// AuthJWT gates admin routes. A missing, malformed, expired or badly
// signed token is a plain 401; no distinction is leaked to the caller.
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			response.AbortErr(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			response.AbortErr(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		c.Set(KeyAdminID, claims.ID)
		c.Set(KeyAdminEmail, claims.Email)
		c.Set(KeyAdminRole, claims.Role)
		c.Next()
	}
}
