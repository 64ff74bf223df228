package gateway

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// RequestIDMiddleware generates a unique ID for each request
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// e.g. "req_a1b2c3d4"
		requestID := "req_" + uuid.New().String()[:8]

		c.Set("request_id", requestID)

		// Returned in the response header for client debugging
		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}

// LoggingMiddleware logs request start/end with timing
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetString("request_id")

		log.WithFields(log.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"event":      "started",
		}).Info("Request started")

		c.Next()

		log.WithFields(log.Fields{
			"request_id": requestID,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"event":      "completed",
		}).Info("Request completed")
	}
}

// CORSMiddleware allows the configured frontend origins. An empty list
// means allow all, matching the deployed default.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"*"},
	}
	if len(allowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	return cors.New(cfg)
}
