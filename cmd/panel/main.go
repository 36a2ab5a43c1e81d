package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GriffinCanCode/ResearchAssistant/internal/infrastructure/config"
	"github.com/GriffinCanCode/ResearchAssistant/internal/infrastructure/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flags override environment
	flag.StringVar(&cfg.Panel.Host, "host", cfg.Panel.Host, "Panel listen host")
	flag.StringVar(&cfg.Panel.Port, "port", cfg.Panel.Port, "Panel listen port")
	flag.StringVar(&cfg.Research.Endpoint, "endpoint", cfg.Research.Endpoint, "Research service endpoint")
	flag.StringVar(&cfg.Browser.DebugURL, "browser", cfg.Browser.DebugURL, "Chrome DevTools URL")
	flag.StringVar(&cfg.Storage.Driver, "storage", cfg.Storage.Driver, "Note store driver (file, sqlite, redis, memory)")
	flag.BoolVar(&cfg.Logging.Development, "dev", cfg.Logging.Development, "Development logging")
	flag.Parse()

	logger, err := server.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.NewPanelServer(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Run()
	}()

	select {
	case <-ctx.Done():
		log.Println("🛑 Shutting down gracefully...")
	case err := <-errChan:
		if err != nil {
			log.Printf("Server error: %v", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
}
