package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-charity-backend/internal/transport/http/response"
	"go-charity-backend/pkg/utils"
)

// pathID rejects malformed identifiers before any repository call.
func pathID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if !utils.ValidID(id) {
		response.Err(c, http.StatusBadRequest, "Invalid ID")
		return "", false
	}
	return id, true
}
