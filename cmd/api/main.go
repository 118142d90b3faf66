package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-charity-backend/internal/core/auth"
	"go-charity-backend/internal/core/cache"
	"go-charity-backend/internal/core/config"
	"go-charity-backend/internal/core/database"
	"go-charity-backend/internal/core/logger"
	"go-charity-backend/internal/core/server"
	"go-charity-backend/internal/domain"
	"go-charity-backend/internal/repo"
	"go-charity-backend/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := newLogger(cfg)
	defer cleanup()

	deps := router.Deps{
		JWT: &auth.JWTer{
			Secret: []byte(cfg.JWT.Secret),
			Issuer: cfg.JWT.Issuer,
			TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
		},
		CORSOrigins: cfg.CORS.AllowOrigins,
	}

	if cfg.DB.Driver == "memory" {
		log.Info("using in-memory stores, data will not survive a restart")
		deps.Donations = repo.NewMemDonationRepo()
		deps.Volunteers = repo.NewMemVolunteerRepo()
		deps.Programs = repo.NewMemProgramRepo()
		deps.News = repo.NewMemNewsRepo()
		deps.Admins = repo.NewMemAdminRepo()
	} else {
		db := mustOpenDB(cfg, log)
		log.Info("database connected", zap.String("driver", cfg.DB.Driver))
		if cfg.DB.AutoMigrate {
			if err := db.AutoMigrate(
				&domain.Admin{},
				&domain.Donation{},
				&domain.Volunteer{},
				&domain.Program{},
				&domain.NewsArticle{},
			); err != nil {
				log.Fatal("automigrate failed", zap.Error(err))
			}
			log.Info("automigrate done")
		}
		deps.Donations = repo.NewDonationRepo(db)
		deps.Volunteers = repo.NewVolunteerRepo(db)
		deps.Programs = repo.NewProgramRepo(db)
		deps.News = repo.NewNewsRepo(db)
		deps.Admins = repo.NewAdminRepo(db)
	}

	if cfg.Redis.Addr != "" {
		deps.Cache = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info("list cache enabled", zap.String("redis", cfg.Redis.Addr))
	}

	r := router.New(log, deps)

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.Build(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start FAILED", zap.Error(err))
		}
	}()
	log.Info("api started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("api stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, func()) {
	if cfg.Log.File != "" {
		return logger.NewWithRotate(
			cfg.Log.Level, cfg.Log.JSON, cfg.Log.File,
			cfg.Log.MaxSizeMB, cfg.Log.MaxBackups, cfg.Log.MaxAgeDays, cfg.Log.Compress,
		)
	}
	return logger.New(cfg.Log.Level, cfg.Log.JSON)
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
