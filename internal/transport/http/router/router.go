package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-charity-backend/internal/core/auth"
	"go-charity-backend/internal/core/cache"
	"go-charity-backend/internal/domain"
	"go-charity-backend/internal/transport/http/handler"
	mdw "go-charity-backend/internal/transport/http/middleware"
)

type Deps struct {
	JWT         *auth.JWTer
	Donations   domain.DonationRepository
	Volunteers  domain.VolunteerRepository
	Programs    domain.ProgramRepository
	News        domain.NewsRepository
	Admins      domain.AdminRepository
	Cache       *cache.Cache // optional
	CORSOrigins []string
}

// New assembles the engine: middleware stack, health/metrics, the four
// public resource families, login, and the token-gated admin-user and
// stats routes.
func New(l *zap.Logger, d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		ginzap.Ginzap(l, time.RFC3339, true),
	)
	if len(d.CORSOrigins) > 0 {
		cfg := cors.DefaultConfig()
		cfg.AllowOrigins = d.CORSOrigins
		cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
		r.Use(cors.New(cfg))
	} else {
		r.Use(cors.Default())
	}

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	root := r.Group("")
	handler.NewDonationHandler(d.Donations, l).Mount(root)
	handler.NewVolunteerHandler(d.Volunteers, l).Mount(root)

	// The admin prefix is the dashboard's API surface; only the user
	// and stats routes require a token, matching the original site.
	admin := r.Group("/admin")
	handler.NewProgramHandler(d.Programs, d.Cache, l).Mount(admin)
	handler.NewNewsHandler(d.News, d.Cache, l).Mount(admin)
	handler.NewAuthHandler(d.Admins, d.JWT, l).Mount(admin)

	gated := admin.Group("")
	gated.Use(mdw.AuthJWT(d.JWT))
	handler.NewAdminUserHandler(d.Admins, l).Mount(gated)
	handler.NewStatsHandler(d.Donations, d.Volunteers, d.Programs, d.News, l).Mount(gated)

	return r
}
