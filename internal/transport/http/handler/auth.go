package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-charity-backend/internal/core/auth"
	"go-charity-backend/internal/domain"
	"go-charity-backend/internal/transport/http/response"
	"go-charity-backend/pkg/utils"
)

type AuthHandler struct {
	admins domain.AdminRepository
	jwter  *auth.JWTer
	log    *zap.Logger
}

func NewAuthHandler(admins domain.AdminRepository, jwter *auth.JWTer, log *zap.Logger) *AuthHandler {
	return &AuthHandler{admins: admins, jwter: jwter, log: log}
}

func (h *AuthHandler) Mount(g *gin.RouterGroup) {
	g.POST("/login", h.Login)
}

type loginIn struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login answers unknown email and wrong password with the same error so
// admin emails cannot be enumerated.
func (h *AuthHandler) Login(c *gin.Context) {
	var in loginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Err(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	admin, err := h.admins.FindByEmail(c.Request.Context(), in.Email)
	if err != nil {
		h.log.Error("login lookup", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Login failed")
		return
	}
	if admin == nil || !utils.CheckPassword(in.Password, admin.PasswordHash) {
		response.Err(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token, err := h.jwter.Issue(admin.ID, admin.Email, admin.Role)
	if err != nil {
		h.log.Error("issue token", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Login failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "role": admin.Role})
}
