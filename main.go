package main

import (
	"fmt"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"hospital-portal-gateway/internal/config"
	"hospital-portal-gateway/internal/routes"
	"hospital-portal-gateway/internal/upstream"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load environment variables; a missing .env is fine in production.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Fatal().Err(err).Msg("Error loading .env file")
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("Error loading config")
	}

	// The single configured client for the hospital REST API.
	api := upstream.NewClient(cfg.Upstream, logger)

	// Initialize Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Configure CORS; the browser sends the session cookie on every request.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Confirm-Delete"}
	router.Use(cors.New(corsConfig))

	// Set up routes
	routes.SetupRoutes(router, api, cfg, logger)

	// Start server
	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info().Str("port", cfg.Port).Msg("Portal gateway running")
	if err := router.Run(serverAddr); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start server")
	}
}
