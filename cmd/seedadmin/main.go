package main

import (
	"context"
	"database/sql"
	"flag"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/loan-service/internal/config"
	"github.com/Dan9191/loan-service/internal/repository"
	"github.com/Dan9191/loan-service/internal/service"
)

// seedadmin creates the admin account in the configured database
func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	username := flag.String("username", cfg.AdminUsername, "admin username")
	password := flag.String("password", cfg.AdminPassword, "admin password")
	flag.Parse()

	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	repo := repository.NewRepository(db)
	if err := repo.Migrate(ctx); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	svc := service.NewService(repo, logger, cfg)
	if err := svc.EnsureAdmin(ctx, *username, *password); err != nil {
		logger.Fatalf("Failed to create admin: %v", err)
	}
	logger.Infof("Admin %s is ready", *username)
}
