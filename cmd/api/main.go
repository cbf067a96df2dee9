package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"portfolio/internal/api"
	"portfolio/internal/auth"
	"portfolio/internal/config"
	"portfolio/internal/database"
)

func main() {
	// Local development convenience; missing .env is not an error.
	_ = godotenv.Load()

	cfg := config.MustLoad()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	logger.Info("api bootstrapped",
		slog.String("db_host", cfg.Database.Host),
		slog.Int("db_port", cfg.Database.Port),
		slog.String("db_name", cfg.Database.Name),
	)

	db, err := database.InitDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	logger.Info("database connection ready")

	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}
	logger.Info("database migrated")

	authService, err := auth.NewService(
		cfg.Auth.JWTSecret,
		cfg.Auth.TokenTTL,
		cfg.Auth.AdminEmail,
		cfg.Auth.AdminPassword,
	)
	if err != nil {
		log.Fatalf("init auth service: %v", err)
	}

	router := api.NewRouter(cfg, logger)
	api.RegisterRoutes(router, db, authService)

	address := fmt.Sprintf(":%d", cfg.API.Port)
	logger.Info("api listening", slog.String("address", address))

	if err := router.Run(address); err != nil {
		log.Fatalf("failed to start api server: %v", err)
	}
}
