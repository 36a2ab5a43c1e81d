package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSConfig defines CORS configuration options.
type CORSConfig struct {
	AllowOrigins []string
	AllowMethods []string
	AllowHeaders []string
	// AllowBrowserExtensions admits chrome-extension:// and moz-extension://
	// origins so a side panel hosted by the browser can call the API.
	AllowBrowserExtensions bool
	AllowCredentials       bool
	MaxAge                 time.Duration
}

// DefaultCORSConfig returns the configuration used by the research API:
// local pages and browser extensions may POST JSON.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowOrigins: []string{
			"http://localhost",
			"http://127.0.0.1",
		},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{
			"Content-Type",
			"Content-Length",
			"Accept",
			"Origin",
			"X-Request-ID",
			"X-Trace-ID",
			"X-Span-ID",
		},
		AllowBrowserExtensions: true,
		MaxAge:                 12 * time.Hour,
	}
}

// CORS creates a CORS middleware with the provided configuration. Entries in
// AllowOrigins match any port on the same scheme and host.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	if len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*" {
		return cors.New(cors.Config{
			AllowAllOrigins: true,
			AllowMethods:    cfg.AllowMethods,
			AllowHeaders:    cfg.AllowHeaders,
			MaxAge:          cfg.MaxAge,
		})
	}

	allowed := append([]string(nil), cfg.AllowOrigins...)
	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if cfg.AllowBrowserExtensions && isExtensionOrigin(origin) {
				return true
			}
			for _, o := range allowed {
				if origin == o || strings.HasPrefix(origin, o+":") {
					return true
				}
			}
			return false
		},
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}

func isExtensionOrigin(origin string) bool {
	for _, scheme := range []string{"chrome-extension://", "moz-extension://", "safari-web-extension://"} {
		if strings.HasPrefix(origin, scheme) {
			return true
		}
	}
	return false
}
