package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/IsPeeves/lumenixorg/config"
	"github.com/IsPeeves/lumenixorg/internal/repository"
	"github.com/IsPeeves/lumenixorg/internal/routes"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	config.LoadAuth()
	config.ConnectDB()
	config.ConnectRedis()

	if err := repository.AutoMigrate(config.DB); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// Seed the admin account from the environment so a fresh deployment can
	// log in without manual SQL.
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail != "" && adminPassword != "" {
		users := repository.NewUsers(config.DB)
		if err := users.EnsureAdmin(context.Background(), adminEmail, "Admin", adminPassword); err != nil {
			slog.Error("failed to seed admin account", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Warn("ADMIN_EMAIL/ADMIN_PASSWORD not set, no admin account seeded")
	}

	r := gin.Default()
	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	slog.Info("server starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
