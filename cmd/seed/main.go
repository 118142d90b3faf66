// Command seed creates the initial admin account so the dashboard has
// a login before any users exist.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"go-charity-backend/internal/core/config"
	"go-charity-backend/internal/core/database"
	"go-charity-backend/internal/core/logger"
	"go-charity-backend/internal/domain"
	"go-charity-backend/internal/repo"
	"go-charity-backend/pkg/utils"
)

func main() {
	name := flag.String("name", "", "admin display name")
	email := flag.String("email", "", "admin login email")
	password := flag.String("password", "", "admin password (stored hashed)")
	role := flag.String("role", domain.RoleSuperAdmin, "Editor, Admin, or Super Admin")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	if *name == "" || *email == "" || *password == "" {
		log.Fatal("usage: seed -name NAME -email EMAIL -password PASSWORD [-role ROLE]")
	}
	if cfg.DB.Driver == "memory" {
		log.Fatal("seed needs a persistent database, not the memory driver")
	}

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}
	if err := db.AutoMigrate(&domain.Admin{}); err != nil {
		log.Fatal("automigrate failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	admins := repo.NewAdminRepo(db)
	if existing, err := admins.FindByEmail(ctx, *email); err != nil {
		log.Fatal("lookup failed", zap.Error(err))
	} else if existing != nil {
		log.Fatal("admin already exists", zap.String("email", *email))
	}

	a := domain.Admin{
		Name:         *name,
		Email:        *email,
		PasswordHash: utils.HashPassword(*password),
		Role:         *role,
	}
	if err := a.Validate(); err != nil {
		log.Fatal("invalid admin", zap.Error(err))
	}
	if err := admins.Create(ctx, &a); err != nil {
		log.Fatal("create failed", zap.Error(err))
	}
	log.Info("admin created", zap.String("id", a.ID), zap.String("email", a.Email), zap.String("role", a.Role))
}
