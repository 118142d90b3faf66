package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-charity-backend/internal/domain"
	"go-charity-backend/internal/transport/http/response"
)

// StatsHandler serves the dashboard-home aggregates in one round trip:
// the numbers the admin frontend previously derived by fetching every
// collection and summing client-side.
type StatsHandler struct {
	donations  domain.DonationRepository
	volunteers domain.VolunteerRepository
	programs   domain.ProgramRepository
	news       domain.NewsRepository
	log        *zap.Logger
}

func NewStatsHandler(
	donations domain.DonationRepository,
	volunteers domain.VolunteerRepository,
	programs domain.ProgramRepository,
	news domain.NewsRepository,
	log *zap.Logger,
) *StatsHandler {
	return &StatsHandler{
		donations:  donations,
		volunteers: volunteers,
		programs:   programs,
		news:       news,
		log:        log,
	}
}

// Mount expects a group already protected by middleware.AuthJWT.
func (h *StatsHandler) Mount(g *gin.RouterGroup) {
	g.GET("/stats", h.Get)
}

func (h *StatsHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	donationCount, cashTotal, err := h.donations.Totals(ctx)
	if err != nil {
		h.log.Error("donation totals", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}
	volunteerCount, err := h.volunteers.Count(ctx)
	if err != nil {
		h.log.Error("volunteer count", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}
	activePrograms, err := h.programs.CountActive(ctx)
	if err != nil {
		h.log.Error("program count", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}
	articleCount, err := h.news.Count(ctx)
	if err != nil {
		h.log.Error("article count", zap.Error(err))
		response.Err(c, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"donations": gin.H{
			"count":     donationCount,
			"cashTotal": cashTotal,
		},
		"volunteers":     volunteerCount,
		"activePrograms": activePrograms,
		"articles":       articleCount,
	})
}
