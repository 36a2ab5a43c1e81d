// Package middleware provides the gin middleware shared by the panel and
// research servers.
//
// Middleware stack:
//   - RequestID: correlation ID per request (X-Request-ID)
//   - AccessLog: one zap line per request
//   - Recovery: panic recovery with a JSON 500
//   - CORS: local origins plus browser extension origins
//   - RateLimit: per-IP token bucket
//   - SameOrigin: JSON-only, same-origin writes for the panel page
//
// Example Usage:
//
//	router.Use(middleware.RequestID(), middleware.AccessLog(log))
//	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
//	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
package middleware
