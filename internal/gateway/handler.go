package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/MuziSitsha/live-mood/internal/inference"
	"github.com/MuziSitsha/live-mood/internal/models"
	"github.com/MuziSitsha/live-mood/internal/prompt"
	"github.com/MuziSitsha/live-mood/internal/validator"
)

// Generator is the inference core as the gateway sees it.
type Generator interface {
	Generate(ctx context.Context, req inference.GenerationRequest) (string, error)
}

// Handler handles HTTP requests for the affirmation service
type Handler struct {
	generator Generator
	debug     bool
	now       func() time.Time // injectable for time-of-day tests
}

// NewHandler creates a new Handler. With debug set, upstream failure detail
// is included in error responses instead of the generic message.
func NewHandler(generator Generator, debug bool) *Handler {
	return &Handler{
		generator: generator,
		debug:     debug,
		now:       time.Now,
	}
}

// Affirmation handles POST /api/affirmation
func (h *Handler) Affirmation(c *gin.Context) {
	requestID := c.GetString("request_id")
	start := time.Now()

	var req models.AffirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"event":      "parse_error",
		}).Warn("Failed to parse request body")

		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"type":    "invalid_request",
				"message": "Failed to parse request body: " + err.Error(),
			},
		})
		return
	}

	req.Normalize()
	if err := validator.ValidateRequest(&req); err != nil {
		log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"event":      "validation_failed",
		}).Warn("Request validation failed")

		if validErrs, ok := err.(*validator.ValidationErrors); ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": gin.H{
					"type":    "validation_error",
					"message": validationMessage(validErrs),
					"details": validErrs.Errors,
				},
			})
			return
		}

		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{
				"type":    "validation_error",
				"message": err.Error(),
			},
		})
		return
	}

	genReq := prompt.Build(req.Name, req.Feeling, req.Details, h.now())

	text, err := h.generator.Generate(c.Request.Context(), genReq)
	if err != nil {
		h.writeGenerationError(c, requestID, err)
		return
	}

	log.WithFields(log.Fields{
		"request_id": requestID,
		"latency_ms": time.Since(start).Milliseconds(),
		"event":      "success",
	}).Info("Affirmation generated")

	c.JSON(http.StatusOK, models.AffirmationResponse{Affirmation: text})
}

// validationMessage picks the user-facing summary for a failed validation.
// Missing name or feeling gets the frontend's canonical wording; anything
// else (length violations) names the first offending field.
func validationMessage(errs *validator.ValidationErrors) string {
	for _, fe := range errs.Errors {
		if fe.Tag == "required" {
			return "Name and feeling are required."
		}
	}
	if len(errs.Errors) > 0 {
		fe := errs.Errors[0]
		return fmt.Sprintf("Field %s %s.", fe.Field, fe.Message)
	}
	return "Request validation failed."
}

// writeGenerationError maps core failures to user-facing status codes.
// Timeout-shaped failures become 504 with try-again messaging; everything
// else becomes 502. Auth failures are an operator problem and are logged at
// error level, never shown verbatim to end users.
func (h *Handler) writeGenerationError(c *gin.Context, requestID string, err error) {
	var authErr *inference.AuthError
	if errors.As(err, &authErr) {
		log.WithFields(log.Fields{
			"request_id": requestID,
			"model":      authErr.Model,
			"error":      authErr.Error(),
			"event":      "auth_failed",
		}).Error("Upstream rejected credentials; check HUGGING_FACE_API_KEY")
	} else {
		log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"event":      "generation_failed",
		}).Error("Affirmation generation failed")
	}

	if inference.IsTimeout(err) {
		c.JSON(http.StatusGatewayTimeout, gin.H{
			"error": gin.H{
				"type":    "upstream_timeout",
				"message": "The affirmation took too long to generate. Please try again.",
			},
		})
		return
	}

	message := "Could not generate affirmation. Please try again later."
	if h.debug {
		message = "AI error: " + err.Error()
	}
	c.JSON(http.StatusBadGateway, gin.H{
		"error": gin.H{
			"type":    "upstream_error",
			"message": message,
		},
	})
}

// Health handles GET /health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
