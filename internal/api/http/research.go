package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/ResearchAssistant/internal/infrastructure/logging"
	"github.com/GriffinCanCode/ResearchAssistant/internal/infrastructure/resilience"
	"github.com/GriffinCanCode/ResearchAssistant/internal/research"
)

// Processor answers research requests.
type Processor interface {
	Process(ctx context.Context, req research.Request) (string, error)
}

// ResearchHandlers serves the research API.
type ResearchHandlers struct {
	processor Processor
	logger    *logging.Logger
}

// NewResearchHandlers creates the research handler set.
func NewResearchHandlers(processor Processor, logger *logging.Logger) *ResearchHandlers {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &ResearchHandlers{processor: processor, logger: logger.Named("research-http")}
}

// Register mounts the research routes.
func (h *ResearchHandlers) Register(r gin.IRoutes) {
	r.POST("/api/research/process", h.Process)
}

// Process handles POST /api/research/process. The reply body is plain text.
func (h *ResearchHandlers) Process(c *gin.Context) {
	var req research.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	text, err := h.processor.Process(c.Request.Context(), req)
	if err != nil {
		status := statusOf(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("Research request failed",
				zap.String("operation", req.Operations),
				zap.Int("status", status),
				zap.Error(err),
			)
		}
		_ = c.Error(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, research.ErrEmptyContent), errors.Is(err, research.ErrUnknownOperation):
		return http.StatusBadRequest
	case errors.Is(err, resilience.ErrCircuitOpen), errors.Is(err, resilience.ErrTooManyRequests):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
