package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"concept-explainer/middleware"
	"concept-explainer/models"
	"concept-explainer/ollama"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

// Explain handles the main explanation endpoint
func (h *ExplainHandler) Explain(c *gin.Context) {
	var req models.ExplanationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("Invalid request body: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Detail: "Invalid request format"})
		return
	}

	// Validate before anything touches the network. Topic is deliberately
	// forwarded as-is, empty or not.
	difficulty, err := models.ParseDifficulty(req.Difficulty)
	if err != nil {
		log.Warnf("Rejected explain request: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Detail: fmt.Sprintf("Invalid difficulty. Must be one of: %s", models.DifficultyValues()),
		})
		return
	}

	logger := log.WithFields(log.Fields{
		"request_id": middleware.GetRequestID(c),
		"topic":      req.Topic,
		"difficulty": string(difficulty),
	})
	logger.Info("explain.request")

	prompt := ollama.BuildPrompt(req.Topic, difficulty)

	explanation, err := h.generator.Generate(c.Request.Context(), prompt)
	if err != nil {
		status, detail := translateGenerateError(err)
		logger.WithField("status", status).Errorf("explain.failed: %v", err)
		c.JSON(status, models.ErrorResponse{Detail: detail})
		return
	}

	logger.Info("explain.success")
	c.JSON(http.StatusOK, models.ExplanationResponse{Explanation: explanation})
}

// translateGenerateError maps a generator failure onto the client-facing
// status and message. Anything that is not a typed generator error counts as
// an internal fault.
func translateGenerateError(err error) (int, string) {
	var genErr *ollama.Error
	if !errors.As(err, &genErr) {
		return http.StatusInternalServerError, "Internal server error"
	}

	switch genErr.Kind {
	case ollama.KindUnavailable:
		return http.StatusServiceUnavailable, genErr.Message
	case ollama.KindTimeout:
		return http.StatusGatewayTimeout, genErr.Message
	case ollama.KindUpstream:
		return http.StatusBadGateway, genErr.Message
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
