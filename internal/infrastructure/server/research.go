package server

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpapi "github.com/GriffinCanCode/ResearchAssistant/internal/api/http"
	"github.com/GriffinCanCode/ResearchAssistant/internal/api/middleware"
	"github.com/GriffinCanCode/ResearchAssistant/internal/infrastructure/config"
	"github.com/GriffinCanCode/ResearchAssistant/internal/infrastructure/logging"
	"github.com/GriffinCanCode/ResearchAssistant/internal/infrastructure/resilience"
	"github.com/GriffinCanCode/ResearchAssistant/internal/research"
)

// NewResearchServer creates the Gemini generator and builds the research
// server over it.
func NewResearchServer(ctx context.Context, cfg *config.Config, logger *logging.Logger) (*Server, error) {
	gen, err := research.NewGemini(ctx, research.GeminiConfig{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}
	if logger != nil {
		logger.Info("Gemini generator ready", zap.String("model", gen.Model()))
	}
	return NewResearchServerWith(cfg, logger, gen)
}

// NewResearchServerWith builds the research server over gen.
func NewResearchServerWith(cfg *config.Config, logger *logging.Logger, gen research.Generator) (*Server, error) {
	prompts, err := research.LoadPrompts(cfg.Research.PromptsFile)
	if err != nil {
		return nil, err
	}

	s := newServer("research", cfg.Research.Host, cfg.Research.Port, cfg.Logging.Development, logger)

	breaker := resilience.New("generator", resilience.Settings{
		OnStateChange: func(name string, from, to resilience.State) {
			s.logger.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	svc := research.NewService(gen, research.Options{
		Prompts: prompts,
		Breaker: breaker,
		Logger:  logger,
		Metrics: s.metrics,
	})

	s.router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		s.logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		rl := middleware.DefaultRateLimitConfig()
		rl.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		rl.Burst = cfg.RateLimit.Burst
		s.router.Use(middleware.RateLimit(rl))
	}

	s.router.GET("/health", httpapi.Health("research", func() gin.H {
		return gin.H{
			"breaker":    breaker.State().String(),
			"operations": svc.Operations(),
		}
	}))
	httpapi.NewResearchHandlers(svc, logger).Register(s.router)

	s.logger.Info("Research server initialized", zap.Strings("operations", svc.Operations()))
	return s, nil
}
