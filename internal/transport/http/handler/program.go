package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-charity-backend/internal/core/cache"
	"go-charity-backend/internal/domain"
	"go-charity-backend/internal/transport/http/response"
)

const (
	programListKey = "programs:list"
	listCacheTTL   = 60 * time.Second
)

type ProgramHandler struct {
	repo  domain.ProgramRepository
	cache *cache.Cache // nil when Redis is not configured
	log   *zap.Logger
}

func NewProgramHandler(repo domain.ProgramRepository, ca *cache.Cache, log *zap.Logger) *ProgramHandler {
	return &ProgramHandler{repo: repo, cache: ca, log: log}
}

func (h *ProgramHandler) Mount(g *gin.RouterGroup) {
	g.GET("/programs", h.List)
	g.POST("/programs", h.Create)
	g.GET("/programs/:id", h.Get)
	g.PATCH("/programs/:id", h.Patch)
	g.DELETE("/programs/:id", h.Delete)
}

func (h *ProgramHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	var items []domain.Program
	var err error
	if h.cache != nil {
		var cached *[]domain.Program
		cached, err = cache.GetOrLoadJSON[[]domain.Program](h.cache, ctx, programListKey, listCacheTTL,
			func(ctx context.Context) (*[]domain.Program, error) {
				v, e := h.repo.List(ctx)
				if e != nil {
					return nil, e
				}
				return &v, nil
			})
		if cached != nil {
			items = *cached
		}
	} else {
		items, err = h.repo.List(ctx)
	}
	if err != nil {
		h.log.Error("list programs", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to fetch programs")
		return
	}
	if items == nil {
		items = []domain.Program{}
	}
	c.JSON(http.StatusOK, items)
}

type programCreate struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Status      string    `json:"status"`
	Link        string    `json:"link"`
	Date        time.Time `json:"date"`
	Content     string    `json:"content"`
}

func (h *ProgramHandler) Create(c *gin.Context) {
	var in programCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Err(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	p := domain.Program{
		Title:       in.Title,
		Description: in.Description,
		Image:       in.Image,
		Status:      in.Status,
		Link:        in.Link,
		Date:        in.Date,
		Content:     in.Content,
	}
	if p.Status == "" {
		p.Status = domain.ProgramActive
	}
	// Content is mandatory at creation only; the schema itself defaults
	// it to empty so partial updates may leave it untouched.
	if p.Content == "" {
		response.Err(c, http.StatusBadRequest, "missing required field: content")
		return
	}
	if err := p.Validate(); err != nil {
		response.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.repo.Create(c.Request.Context(), &p); err != nil {
		h.log.Error("create program", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to create program")
		return
	}
	h.invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, p)
}

func (h *ProgramHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("get program", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to fetch program")
		return
	}
	if p == nil {
		response.Err(c, http.StatusNotFound, "Program not found")
		return
	}
	c.JSON(http.StatusOK, p)
}

type programPatch struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Image       *string    `json:"image"`
	Status      *string    `json:"status"`
	Link        *string    `json:"link"`
	Date        *time.Time `json:"date"`
	Content     *string    `json:"content"`
}

func (h *ProgramHandler) Patch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("get program", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to update program")
		return
	}
	if p == nil {
		response.Err(c, http.StatusNotFound, "Program not found")
		return
	}
	var in programPatch
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Err(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.Link != nil {
		p.Link = *in.Link
	}
	if in.Date != nil {
		p.Date = *in.Date
	}
	if in.Content != nil {
		p.Content = *in.Content
	}
	if err := p.Validate(); err != nil {
		response.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.repo.Update(c.Request.Context(), p); err != nil {
		h.log.Error("update program", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to update program")
		return
	}
	h.invalidate(c.Request.Context())
	c.JSON(http.StatusOK, p)
}

func (h *ProgramHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	found, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		h.log.Error("delete program", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to delete program")
		return
	}
	if !found {
		response.Err(c, http.StatusNotFound, "Program not found")
		return
	}
	h.invalidate(c.Request.Context())
	response.Message(c, http.StatusOK, "Program deleted successfully")
}

func (h *ProgramHandler) invalidate(ctx context.Context) {
	if h.cache != nil {
		h.cache.Invalidate(ctx, programListKey)
	}
}
