package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-charity-backend/internal/domain"
	"go-charity-backend/internal/transport/http/middleware"
	"go-charity-backend/internal/transport/http/response"
	"go-charity-backend/pkg/utils"
)

// AdminUserHandler serves the token-gated /admin/users family. The
// password hash is never serialized; the literal id "me" resolves to
// the caller's own record.
type AdminUserHandler struct {
	repo domain.AdminRepository
	log  *zap.Logger
}

func NewAdminUserHandler(repo domain.AdminRepository, log *zap.Logger) *AdminUserHandler {
	return &AdminUserHandler{repo: repo, log: log}
}

// Mount expects a group already protected by middleware.AuthJWT.
func (h *AdminUserHandler) Mount(g *gin.RouterGroup) {
	g.GET("/users", h.List)
	g.POST("/users", h.Create)
	g.GET("/users/:id", h.Get)
	g.PUT("/users/:id", h.Update)
	g.DELETE("/users/:id", h.Delete)
}

func (h *AdminUserHandler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.log.Error("list admins", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	if items == nil {
		items = []domain.Admin{}
	}
	c.JSON(http.StatusOK, items)
}

type adminCreate struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *AdminUserHandler) Create(c *gin.Context) {
	var in adminCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Err(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if in.Password == "" {
		response.Err(c, http.StatusBadRequest, "missing required field: password")
		return
	}
	a := domain.Admin{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: utils.HashPassword(in.Password),
		Role:         in.Role,
	}
	if a.Role == "" {
		a.Role = domain.RoleEditor
	}
	if err := a.Validate(); err != nil {
		response.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.repo.Create(c.Request.Context(), &a); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			response.Err(c, http.StatusBadRequest, "Email already in use")
			return
		}
		h.log.Error("create admin", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to create user")
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *AdminUserHandler) Get(c *gin.Context) {
	id, ok := h.resolveID(c)
	if !ok {
		return
	}
	a, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("get admin", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	if a == nil {
		response.Err(c, http.StatusNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, a)
}

type adminUpdate struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// Update writes name/email/role from the request; the password hash is
// only replaced when a non-empty password is supplied.
func (h *AdminUserHandler) Update(c *gin.Context) {
	id, ok := h.resolveID(c)
	if !ok {
		return
	}
	a, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("get admin", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to update user")
		return
	}
	if a == nil {
		response.Err(c, http.StatusNotFound, "User not found")
		return
	}
	var in adminUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Err(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	a.Name = in.Name
	a.Email = in.Email
	a.Role = in.Role
	if in.Password != "" {
		a.PasswordHash = utils.HashPassword(in.Password)
	}
	if err := a.Validate(); err != nil {
		response.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.repo.Update(c.Request.Context(), a); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			response.Err(c, http.StatusBadRequest, "Email already in use")
			return
		}
		h.log.Error("update admin", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to update user")
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AdminUserHandler) Delete(c *gin.Context) {
	id, ok := h.resolveID(c)
	if !ok {
		return
	}
	found, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		h.log.Error("delete admin", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	if !found {
		response.Err(c, http.StatusNotFound, "User not found")
		return
	}
	response.Message(c, http.StatusOK, "User deleted successfully")
}

func (h *AdminUserHandler) resolveID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if id == "me" {
		id = c.GetString(middleware.KeyAdminID)
		if id == "" {
			response.Err(c, http.StatusUnauthorized, "Unauthorized")
			return "", false
		}
		return id, true
	}
	if !utils.ValidID(id) {
		response.Err(c, http.StatusBadRequest, "Invalid ID")
		return "", false
	}
	return id, true
}
