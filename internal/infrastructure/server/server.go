package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/ResearchAssistant/internal/api/middleware"
	"github.com/GriffinCanCode/ResearchAssistant/internal/infrastructure/config"
	"github.com/GriffinCanCode/ResearchAssistant/internal/infrastructure/logging"
	"github.com/GriffinCanCode/ResearchAssistant/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/ResearchAssistant/internal/infrastructure/tracing"
)

// Server wraps an HTTP server and the resources it owns.
type Server struct {
	name    string
	addr    string
	router  *gin.Engine
	srv     *http.Server
	logger  *logging.Logger
	metrics *monitoring.Metrics
	closers []closer
}

type closer struct {
	name string
	fn   func() error
}

// NewLogger builds the process logger from configuration.
func NewLogger(cfg config.LogConfig) (*logging.Logger, error) {
	return logging.New(logging.Config{
		Level:       cfg.Level,
		Development: cfg.Development,
		File:        cfg.File,
	})
}

func newServer(name, host, port string, development bool, logger *logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	if !development {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := monitoring.NewMetrics(name)
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(logger))
	router.Use(tracing.HTTPMiddleware(tracing.New(name, logger.Named("trace").Logger)))
	router.Use(middleware.AccessLog(logger.Named("http")))
	router.Use(monitoring.Middleware(metrics))

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	addr := net.JoinHostPort(host, port)
	return &Server{
		name:    name,
		addr:    addr,
		router:  router,
		logger:  logger.Named(name),
		metrics: metrics,
		srv: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// onClose registers fn to run on Shutdown, in reverse registration order.
func (s *Server) onClose(name string, fn func() error) {
	s.closers = append(s.closers, closer{name: name, fn: fn})
}

// Handler returns the router for in-process use.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until Shutdown is called.
func (s *Server) Run() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.addr))
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server: %w", s.name, err)
	}
	return nil
}

// Shutdown stops accepting requests, waits for in-flight ones and then
// releases owned resources.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	var errs []error
	if err := s.srv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	for i := len(s.closers) - 1; i >= 0; i-- {
		c := s.closers[i]
		if err := c.fn(); err != nil {
			s.logger.Error("Failed to close", zap.String("resource", c.name), zap.Error(err))
			errs = append(errs, fmt.Errorf("close %s: %w", c.name, err))
			continue
		}
		s.logger.Debug("Closed", zap.String("resource", c.name))
	}

	_ = s.logger.Sync()
	return errors.Join(errs...)
}
