package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-charity-backend/internal/domain"
	"go-charity-backend/internal/transport/http/response"
)

type VolunteerHandler struct {
	repo domain.VolunteerRepository
	log  *zap.Logger
}

func NewVolunteerHandler(repo domain.VolunteerRepository, log *zap.Logger) *VolunteerHandler {
	return &VolunteerHandler{repo: repo, log: log}
}

func (h *VolunteerHandler) Mount(g *gin.RouterGroup) {
	g.GET("/volunteers", h.List)
	g.POST("/volunteers", h.Create)
	g.GET("/volunteers/:id", h.Get)
	g.PATCH("/volunteers/:id", h.Patch)
	g.DELETE("/volunteers/:id", h.Delete)
}

func (h *VolunteerHandler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.log.Error("list volunteers", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to fetch volunteers")
		return
	}
	if items == nil {
		items = []domain.Volunteer{}
	}
	c.JSON(http.StatusOK, items)
}

type volunteerCreate struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (h *VolunteerHandler) Create(c *gin.Context) {
	var in volunteerCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Err(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	v := domain.Volunteer{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Type:    in.Type,
		Message: in.Message,
	}
	if err := v.Validate(); err != nil {
		response.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.repo.Create(c.Request.Context(), &v); err != nil {
		h.log.Error("create volunteer", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to save volunteer")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Volunteer saved successfully", "volunteer": v})
}

func (h *VolunteerHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	v, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("get volunteer", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to fetch volunteer")
		return
	}
	if v == nil {
		response.Err(c, http.StatusNotFound, "Volunteer not found")
		return
	}
	c.JSON(http.StatusOK, v)
}

type volunteerPatch struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Type    *string `json:"type"`
	Message *string `json:"message"`
}

func (h *VolunteerHandler) Patch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	v, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("get volunteer", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to update volunteer")
		return
	}
	if v == nil {
		response.Err(c, http.StatusNotFound, "Volunteer not found")
		return
	}
	var in volunteerPatch
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Err(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if in.Name != nil {
		v.Name = *in.Name
	}
	if in.Email != nil {
		v.Email = *in.Email
	}
	if in.Phone != nil {
		v.Phone = *in.Phone
	}
	if in.Type != nil {
		v.Type = *in.Type
	}
	if in.Message != nil {
		v.Message = *in.Message
	}
	if err := v.Validate(); err != nil {
		response.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.repo.Update(c.Request.Context(), v); err != nil {
		h.log.Error("update volunteer", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to update volunteer")
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *VolunteerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	found, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		h.log.Error("delete volunteer", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to delete volunteer")
		return
	}
	if !found {
		response.Err(c, http.StatusNotFound, "Volunteer not found")
		return
	}
	response.Message(c, http.StatusOK, "Volunteer deleted successfully")
}
