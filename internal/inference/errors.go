package inference

import (
	"context"
	"errors"
	"fmt"
)

// HTTPError is a non-2xx reply from the upstream endpoint. Body holds a
// bounded snippet of the response for logging.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("upstream returned HTTP %d: %s", e.Status, e.Body)
}

// ErrEmptyResponse marks a 2xx reply whose generated text was missing or
// whitespace only. The HTTP layer succeeded but the call did not.
var ErrEmptyResponse = errors.New("empty response from upstream")

// transportError wraps a network-level failure (timeout, connection reset,
// DNS) so IsTimeout can see whether the cause was time-based.
type transportError struct {
	cause   error
	timeout bool
}

func (e *transportError) Error() string {
	return "transport failure: " + e.cause.Error()
}

func (e *transportError) Unwrap() error { return e.cause }

func (e *transportError) Timeout() bool { return e.timeout }

// AuthError is terminal: the credential was rejected (401/403), so no
// retry and no other model can succeed with it.
type AuthError struct {
	Model string
	Cause error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication rejected for model %q: %v", e.Model, e.Cause)
}

func (e *AuthError) Unwrap() error { return e.Cause }

// ModelUnavailableError means the model is not hosted (404/410). Other
// candidate models may still work.
type ModelUnavailableError struct {
	Model string
	Cause error
}

func (e *ModelUnavailableError) Error() string {
	return fmt.Sprintf("model %q unavailable: %v", e.Model, e.Cause)
}

func (e *ModelUnavailableError) Unwrap() error { return e.Cause }

// TransientError is a retryable failure: a transport error, a non-auth HTTP
// error, an upstream-reported error field, or an empty completion.
type TransientError struct {
	Model   string
	Attempt int // zero-based attempt index on Model
	Cause   error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("attempt %d on model %q failed: %v", e.Attempt+1, e.Model, e.Cause)
}

func (e *TransientError) Unwrap() error { return e.Cause }

// ExhaustedError means every candidate model was tried without success.
// Cause is the last failure observed.
type ExhaustedError struct {
	Cause error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("all candidate models failed: %v", e.Cause)
}

func (e *ExhaustedError) Unwrap() error { return e.Cause }

// IsTimeout reports whether err was ultimately caused by a deadline or
// network timeout. The serving layer uses this to pick a 504 over a 502.
func IsTimeout(err error) bool {
	var t interface{ Timeout() bool }
	if errors.As(err, &t) && t.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
