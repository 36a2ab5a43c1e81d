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
	"github.com/GriffinCanCode/ResearchAssistant/internal/panel"
	"github.com/GriffinCanCode/ResearchAssistant/internal/providers/notes"
	"github.com/GriffinCanCode/ResearchAssistant/internal/providers/selection"
	"github.com/GriffinCanCode/ResearchAssistant/internal/providers/summarizer"
)

// PanelDeps are the panel's external collaborators.
type PanelDeps struct {
	Selection  selection.Provider
	Summarizer panel.Summarizer
	Store      notes.Store
}

// NewPanelServer opens the configured note store, the DevTools selection
// provider and the research client, and builds the panel server over them.
func NewPanelServer(ctx context.Context, cfg *config.Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger.Info("Initializing panel server",
		zap.String("endpoint", cfg.Research.Endpoint),
		zap.String("storage", cfg.Storage.Driver),
		zap.String("browser", cfg.Browser.DebugURL),
	)

	store, err := notes.Open(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open note store: %w", err)
	}

	rod := selection.NewRod(cfg.Browser.DebugURL, cfg.Panel.Origins(), logger)
	s := NewPanelServerWith(cfg, logger, PanelDeps{
		Selection:  rod,
		Summarizer: summarizer.New(cfg.Research.Endpoint),
		Store:      store,
	})
	s.onClose("browser", rod.Close)
	return s, nil
}

// NewPanelServerWith builds the panel server over deps. The server takes
// ownership of deps.Store.
func NewPanelServerWith(cfg *config.Config, logger *logging.Logger, deps PanelDeps) *Server {
	s := newServer("panel", cfg.Panel.Host, cfg.Panel.Port, cfg.Logging.Development, logger)
	s.onClose("notes", deps.Store.Close)

	doc := panel.NewDocument()
	controller := panel.NewController(panel.Deps{
		Selection:  deps.Selection,
		Summarizer: deps.Summarizer,
		Notes:      notes.New(deps.Store),
		View:       doc,
		Logger:     logger,
		Metrics:    s.metrics,
	})

	// The panel acts on the user's browser and note; only its own page may drive it.
	s.router.Use(middleware.SameOrigin(cfg.Panel.Origins()))

	s.router.GET("/health", httpapi.Health("panel", func() gin.H {
		return gin.H{
			"storage":  cfg.Storage.Driver,
			"endpoint": cfg.Research.Endpoint,
		}
	}))
	httpapi.NewPanelHandlers(controller, doc, logger).Register(s.router)

	s.logger.Info("Panel server initialized")
	return s
}
