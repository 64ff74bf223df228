package inference

import (
	"errors"
	"net/http"
)

// Disposition is the orchestrator's decision after a failed attempt.
type Disposition int

const (
	// RetryBackoff retries the same model after a backoff wait, while the
	// attempt budget lasts.
	RetryBackoff Disposition = iota
	// NextModel skips the remaining attempts on the current model and moves
	// to the next candidate with no wait.
	NextModel
	// Abort ends the whole run: no further attempts, no further models.
	Abort
)

func (d Disposition) String() string {
	switch d {
	case RetryBackoff:
		return "retry_backoff"
	case NextModel:
		return "next_model"
	case Abort:
		return "abort"
	default:
		return "unknown"
	}
}

// Classify maps a failed attempt to a disposition. It depends only on the
// shape of the failure; the attempt budget is the orchestrator's concern.
//
// 401/403 mean the credential is bad for every model, so Abort. 404/410
// mean this model is not hosted, so NextModel. Every other failure --
// remaining HTTP statuses (including unexpected 4xx, kept deliberately on
// the generic path), transport errors, upstream error fields, and empty
// completions -- is treated as transient.
func Classify(err error) Disposition {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.Status {
		case http.StatusUnauthorized, http.StatusForbidden:
			return Abort
		case http.StatusNotFound, http.StatusGone:
			return NextModel
		}
	}
	return RetryBackoff
}
