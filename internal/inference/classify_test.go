package inference

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifyHTTPStatuses(t *testing.T) {
	tests := []struct {
		status int
		want   Disposition
	}{
		{401, Abort},
		{403, Abort},
		{404, NextModel},
		{410, NextModel},
		{400, RetryBackoff}, // undocumented 4xx stays on the generic path
		{408, RetryBackoff},
		{429, RetryBackoff},
		{500, RetryBackoff},
		{502, RetryBackoff},
		{503, RetryBackoff},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status_%d", tt.status), func(t *testing.T) {
			err := &HTTPError{Status: tt.status, Body: "x"}
			if got := Classify(err); got != tt.want {
				t.Errorf("Classify(HTTP %d) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestClassifyNonHTTPFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"transport failure", &transportError{cause: errors.New("connection reset")}},
		{"transport timeout", &transportError{cause: errors.New("deadline exceeded"), timeout: true}},
		{"empty response", ErrEmptyResponse},
		{"upstream error field", fmt.Errorf("upstream reported error: overloaded")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != RetryBackoff {
				t.Errorf("Classify(%v) = %v, want RetryBackoff", tt.err, got)
			}
		})
	}
}

func TestClassifyWrappedHTTPError(t *testing.T) {
	err := fmt.Errorf("call failed: %w", &HTTPError{Status: 401, Body: "denied"})
	if got := Classify(err); got != Abort {
		t.Errorf("Classify(wrapped 401) = %v, want Abort", got)
	}
}
