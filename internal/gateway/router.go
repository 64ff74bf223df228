package gateway

import "github.com/gin-gonic/gin"

// NewRouter wires middleware and routes around a Handler.
func NewRouter(h *Handler, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggingMiddleware())
	r.Use(CORSMiddleware(allowedOrigins))

	r.GET("/health", h.Health)
	r.POST("/api/affirmation", h.Affirmation)

	return r
}
