package handlers

import (
	"context"
	"net/http"

	"concept-explainer/config"
	"concept-explainer/models"
	"concept-explainer/version"

	"github.com/gin-gonic/gin"
)

// ServiceName identifies this service in health and version payloads.
const ServiceName = "concept-explainer"

// Generator produces an explanation for a prompt. Satisfied by
// *ollama.Client; tests substitute their own.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ExplainHandler handles HTTP requests for the explain endpoints
type ExplainHandler struct {
	config    *config.Config
	generator Generator
}

// NewExplainHandler creates a new explain handler
func NewExplainHandler(cfg *config.Config, generator Generator) *ExplainHandler {
	return &ExplainHandler{
		config:    cfg,
		generator: generator,
	}
}

// Health returns service health status
func (h *ExplainHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "healthy",
		Service: ServiceName,
		Version: version.BuildVersion,
	})
}

// Version returns build metadata
func (h *ExplainHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, version.Get(ServiceName))
}
