// Package prompt assembles the fixed prompts and the per-request user
// payload handed to the inference core.
package prompt

import (
	"fmt"
	"time"

	"github.com/MuziSitsha/live-mood/internal/inference"
)

const systemPrompt = "You are a supportive companion. Always respond with 2-4 warm sentences. " +
	"Always include the user's name in the affirmation. " +
	"Use the user's name and feeling naturally. " +
	"Add a metaphor or time-of-day context when possible. " +
	"Never give medical or legal advice, and never diagnose."

const safetyNotice = "If the user expresses intent to self-harm, respond with a gentle, supportive message, " +
	"encourage them to seek help from trusted people or professionals, and avoid giving advice."

// TimeOfDay buckets a wall-clock hour into morning, afternoon, or evening.
func TimeOfDay(now time.Time) string {
	switch hour := now.Hour(); {
	case hour < 12:
		return "morning"
	case hour < 18:
		return "afternoon"
	default:
		return "evening"
	}
}

// Build assembles the generation request for one affirmation. The fields
// are expected to be trimmed already; now supplies the time-of-day context.
func Build(name, feeling, details string, now time.Time) inference.GenerationRequest {
	return inference.GenerationRequest{
		SystemPrompt: systemPrompt,
		SafetyNotice: safetyNotice,
		UserPayload: fmt.Sprintf("Name: %s\nFeeling: %s\nDetails: %s\nTime of day: %s",
			name, feeling, details, TimeOfDay(now)),
	}
}
