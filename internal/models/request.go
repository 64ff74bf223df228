package models

import "strings"

// AffirmationRequest represents an incoming affirmation request
type AffirmationRequest struct {
	Name    string `json:"name" validate:"required,max=60"`
	Feeling string `json:"feeling" validate:"required,max=160"`
	Details string `json:"details" validate:"omitempty,max=320"`
}

// Normalize trims surrounding whitespace from every field. Validation runs
// on the normalized form, so an all-whitespace name counts as missing.
func (r *AffirmationRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Feeling = strings.TrimSpace(r.Feeling)
	r.Details = strings.TrimSpace(r.Details)
}

// AffirmationResponse represents the final response to the client
type AffirmationResponse struct {
	Affirmation string `json:"affirmation"`
}
