package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-charity-backend/internal/domain"
	"go-charity-backend/internal/transport/http/response"
)

type DonationHandler struct {
	repo domain.DonationRepository
	log  *zap.Logger
}

func NewDonationHandler(repo domain.DonationRepository, log *zap.Logger) *DonationHandler {
	return &DonationHandler{repo: repo, log: log}
}

func (h *DonationHandler) Mount(g *gin.RouterGroup) {
	g.GET("/donations", h.List)
	g.POST("/donations", h.Create)
	g.GET("/donations/:id", h.Get)
	g.PATCH("/donations/:id", h.Patch)
	g.DELETE("/donations/:id", h.Delete)
}

func (h *DonationHandler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.log.Error("list donations", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to fetch donations")
		return
	}
	if items == nil {
		items = []domain.Donation{}
	}
	c.JSON(http.StatusOK, items)
}

type donationCreate struct {
	Type    string  `json:"type"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Amount  float64 `json:"amount"`
	Items   string  `json:"items"`
	Details string  `json:"details"`
}

func (h *DonationHandler) Create(c *gin.Context) {
	var in donationCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Err(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	// Amount and items are stored as supplied regardless of type; the
	// schema never enforced exclusivity.
	d := domain.Donation{
		Type:    in.Type,
		Name:    in.Name,
		Email:   in.Email,
		Amount:  in.Amount,
		Items:   in.Items,
		Details: in.Details,
	}
	if err := d.Validate(); err != nil {
		response.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.repo.Create(c.Request.Context(), &d); err != nil {
		h.log.Error("create donation", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to save donation")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Donation saved successfully", "donation": d})
}

func (h *DonationHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	d, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("get donation", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to fetch donation")
		return
	}
	if d == nil {
		response.Err(c, http.StatusNotFound, "Donation not found")
		return
	}
	c.JSON(http.StatusOK, d)
}

type donationPatch struct {
	Type    *string  `json:"type"`
	Name    *string  `json:"name"`
	Email   *string  `json:"email"`
	Amount  *float64 `json:"amount"`
	Items   *string  `json:"items"`
	Details *string  `json:"details"`
}

func (h *DonationHandler) Patch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	d, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("get donation", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to update donation")
		return
	}
	if d == nil {
		response.Err(c, http.StatusNotFound, "Donation not found")
		return
	}
	var in donationPatch
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Err(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if in.Type != nil {
		d.Type = *in.Type
	}
	if in.Name != nil {
		d.Name = *in.Name
	}
	if in.Email != nil {
		d.Email = *in.Email
	}
	if in.Amount != nil {
		d.Amount = *in.Amount
	}
	if in.Items != nil {
		d.Items = *in.Items
	}
	if in.Details != nil {
		d.Details = *in.Details
	}
	if err := d.Validate(); err != nil {
		response.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.repo.Update(c.Request.Context(), d); err != nil {
		h.log.Error("update donation", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to update donation")
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *DonationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	found, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		h.log.Error("delete donation", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to delete donation")
		return
	}
	if !found {
		response.Err(c, http.StatusNotFound, "Donation not found")
		return
	}
	response.Message(c, http.StatusOK, "Donation deleted successfully")
}
