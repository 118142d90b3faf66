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

const newsListKey = "news:list"

type NewsHandler struct {
	repo  domain.NewsRepository
	cache *cache.Cache // nil when Redis is not configured
	log   *zap.Logger
}

func NewNewsHandler(repo domain.NewsRepository, ca *cache.Cache, log *zap.Logger) *NewsHandler {
	return &NewsHandler{repo: repo, cache: ca, log: log}
}

func (h *NewsHandler) Mount(g *gin.RouterGroup) {
	g.GET("/news", h.List)
	g.POST("/news", h.Create)
	g.GET("/news/:id", h.Get)
	g.PATCH("/news/:id", h.Patch)
	g.DELETE("/news/:id", h.Delete)
}

func (h *NewsHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	var items []domain.NewsArticle
	var err error
	if h.cache != nil {
		var cached *[]domain.NewsArticle
		cached, err = cache.GetOrLoadJSON[[]domain.NewsArticle](h.cache, ctx, newsListKey, listCacheTTL,
			func(ctx context.Context) (*[]domain.NewsArticle, error) {
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
		h.log.Error("list articles", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to fetch articles")
		return
	}
	if items == nil {
		items = []domain.NewsArticle{}
	}
	c.JSON(http.StatusOK, items)
}

type newsCreate struct {
	Title    string    `json:"title"`
	Excerpt  string    `json:"excerpt"`
	Content  string    `json:"content"`
	Image    string    `json:"image"`
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
}

func (h *NewsHandler) Create(c *gin.Context) {
	var in newsCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Err(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	n := domain.NewsArticle{
		Title:    in.Title,
		Excerpt:  in.Excerpt,
		Content:  in.Content,
		Image:    in.Image,
		Category: in.Category,
		Date:     in.Date,
	}
	if n.Date.IsZero() {
		n.Date = time.Now()
	}
	if err := n.Validate(); err != nil {
		response.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.repo.Create(c.Request.Context(), &n); err != nil {
		h.log.Error("create article", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to create article")
		return
	}
	h.invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, n)
}

func (h *NewsHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	n, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("get article", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to fetch article")
		return
	}
	if n == nil {
		response.Err(c, http.StatusNotFound, "Article not found")
		return
	}
	c.JSON(http.StatusOK, n)
}

type newsPatch struct {
	Title    *string    `json:"title"`
	Excerpt  *string    `json:"excerpt"`
	Content  *string    `json:"content"`
	Image    *string    `json:"image"`
	Category *string    `json:"category"`
	Date     *time.Time `json:"date"`
}

func (h *NewsHandler) Patch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	n, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("get article", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to update article")
		return
	}
	if n == nil {
		response.Err(c, http.StatusNotFound, "Article not found")
		return
	}
	var in newsPatch
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Err(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if in.Title != nil {
		n.Title = *in.Title
	}
	if in.Excerpt != nil {
		n.Excerpt = *in.Excerpt
	}
	if in.Content != nil {
		n.Content = *in.Content
	}
	if in.Image != nil {
		n.Image = *in.Image
	}
	if in.Category != nil {
		n.Category = *in.Category
	}
	if in.Date != nil {
		n.Date = *in.Date
	}
	if err := n.Validate(); err != nil {
		response.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.repo.Update(c.Request.Context(), n); err != nil {
		h.log.Error("update article", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to update article")
		return
	}
	h.invalidate(c.Request.Context())
	c.JSON(http.StatusOK, n)
}

func (h *NewsHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	found, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		h.log.Error("delete article", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to delete article")
		return
	}
	if !found {
		response.Err(c, http.StatusNotFound, "Article not found")
		return
	}
	h.invalidate(c.Request.Context())
	response.Message(c, http.StatusOK, "Article deleted successfully")
}

func (h *NewsHandler) invalidate(ctx context.Context) {
	if h.cache != nil {
		h.cache.Invalidate(ctx, newsListKey)
	}
}
