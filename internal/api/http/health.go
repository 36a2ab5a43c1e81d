package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports extra fields for GET /health.
type HealthCheck func() gin.H

// Health returns a handler reporting the service name, uptime and any fields
// from checks.
func Health(service string, checks ...HealthCheck) gin.HandlerFunc {
	started := time.Now()
	return func(c *gin.Context) {
		body := gin.H{
			"status":  "healthy",
			"service": service,
			"uptime":  time.Since(started).Round(time.Second).String(),
		}
		for _, check := range checks {
			for k, v := range check() {
				body[k] = v
			}
		}
		c.JSON(http.StatusOK, body)
	}
}
