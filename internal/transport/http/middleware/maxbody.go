package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-charity-backend/internal/transport/http/response"
)

// MaxBodyBytes limits request body size. Bodies here are small JSON
// documents; images are URLs, never uploads.
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
		if c.Err() != nil && !c.Writer.Written() {
			response.AbortErr(c, http.StatusRequestEntityTooLarge, "Request body too large")
		}
	}
}
