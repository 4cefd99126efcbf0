package main

import (
	"strconv"
	"time"

	"concept-explainer/config"
	"concept-explainer/handlers"
	"concept-explainer/middleware"
	"concept-explainer/ollama"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	EndPointHealth  = "/health"
	EndPointVersion = "/version"
	EndPointExplain = "/explain"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn(".env file not found, using system environment variables")
	}

	cfg := config.Load()

	log.Info("Starting the concept explainer service...")

	client := ollama.NewClient(cfg)
	explainHandler := handlers.NewExplainHandler(cfg, client)

	// Setup router
	router := gin.Default()

	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	// Health and version endpoints (not rate limited)
	router.GET(EndPointHealth, explainHandler.Health)
	router.GET(EndPointVersion, explainHandler.Version)

	// Rate-limited endpoints
	rateLimited := router.Group("/")
	rateLimited.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
	{
		rateLimited.POST(EndPointExplain, explainHandler.Explain)
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		log.Fatalf("Invalid PORT configuration: %v", err)
	}

	log.Infof("Concept explainer service starting on %s:%s", cfg.Host, cfg.Port)
	log.Infof("Generator: %s (model %s, timeout %s)", cfg.OllamaURL, cfg.OllamaModel, cfg.OllamaTimeout)
	log.Infof("Rate limit: %d requests per minute", cfg.RateLimitPerMinute)

	if err := router.Run(cfg.Host + ":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
