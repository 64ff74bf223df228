package prompt

import (
	"strings"
	"testing"
	"time"
)

func at(hour int) time.Time {
	return time.Date(2026, time.March, 14, hour, 30, 0, 0, time.UTC)
}

func TestTimeOfDay(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "morning"},
		{11, "morning"},
		{12, "afternoon"},
		{17, "afternoon"},
		{18, "evening"},
		{23, "evening"},
	}

	for _, tt := range tests {
		if got := TimeOfDay(at(tt.hour)); got != tt.want {
			t.Errorf("TimeOfDay(hour=%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestBuildUserPayload(t *testing.T) {
	req := Build("Amina", "anxious", "big exam tomorrow", at(9))

	want := "Name: Amina\nFeeling: anxious\nDetails: big exam tomorrow\nTime of day: morning"
	if req.UserPayload != want {
		t.Errorf("UserPayload = %q, want %q", req.UserPayload, want)
	}
}

func TestBuildEmptyDetails(t *testing.T) {
	req := Build("Joao", "tired", "", at(20))

	want := "Name: Joao\nFeeling: tired\nDetails: \nTime of day: evening"
	if req.UserPayload != want {
		t.Errorf("UserPayload = %q, want %q", req.UserPayload, want)
	}
}

func TestBuildFixedPrompts(t *testing.T) {
	req := Build("Amina", "anxious", "", at(9))

	if !strings.Contains(req.SystemPrompt, "supportive companion") {
		t.Errorf("SystemPrompt = %q", req.SystemPrompt)
	}
	if !strings.Contains(req.SafetyNotice, "self-harm") {
		t.Errorf("SafetyNotice = %q", req.SafetyNotice)
	}
}
