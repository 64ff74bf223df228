// Package validator checks incoming affirmation requests against the
// field limits the service promises to the frontend.
package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/MuziSitsha/live-mood/internal/models"
)

var validate = validator.New()

// FieldError describes one failed constraint on one field.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ValidationErrors collects every failed constraint for a request.
type ValidationErrors struct {
	Errors []FieldError `json:"errors"`
}

func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s %s", v.Errors[0].Field, v.Errors[0].Message)
}

// ValidateRequest checks a normalized affirmation request. Name and feeling
// must be present; all fields respect their length limits.
func ValidateRequest(req *models.AffirmationRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	out := &ValidationErrors{}
	for _, fe := range fieldErrs {
		out.Errors = append(out.Errors, FieldError{
			Field:   jsonName(fe.Field()),
			Tag:     fe.Tag(),
			Message: message(fe),
		})
	}
	return out
}

func jsonName(field string) string {
	switch field {
	case "Name":
		return "name"
	case "Feeling":
		return "feeling"
	case "Details":
		return "details"
	default:
		return field
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
