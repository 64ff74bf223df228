package inference

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

const maxAttempts = 3

// backoffSchedule holds the wait after a failed attempt 0, 1, 2. The wait
// after the final attempt is never taken: the run moves to the next model.
var backoffSchedule = [maxAttempts]time.Duration{2 * time.Second, 4 * time.Second, 8 * time.Second}

// Generate runs the full orchestration: each candidate model in order, up
// to three attempts per model, consulting Classify after every failure.
// It returns the first successful completion, or one of AuthError,
// ModelUnavailableError, TransientError (context cancellation mid-run), or
// ExhaustedError.
func (c *Client) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	var lastErr error

	for _, model := range c.candidates {
		log.WithFields(log.Fields{
			"model": model,
			"event": "model_selected",
		}).Info("Trying model")

		for attempt := 0; attempt < maxAttempts; attempt++ {
			text, err := c.Call(ctx, model, req)
			if err == nil {
				log.WithFields(log.Fields{
					"model":   model,
					"attempt": attempt + 1,
					"event":   "success",
				}).Info("Generation succeeded")
				return text, nil
			}

			log.WithFields(log.Fields{
				"model":   model,
				"attempt": attempt + 1,
				"error":   err.Error(),
				"event":   "attempt_failed",
			}).Warn("Generation attempt failed")

			switch Classify(err) {
			case Abort:
				return "", &AuthError{Model: model, Cause: err}

			case NextModel:
				lastErr = &ModelUnavailableError{Model: model, Cause: err}

			case RetryBackoff:
				lastErr = &TransientError{Model: model, Attempt: attempt, Cause: err}
				if ctx.Err() != nil {
					// The failure was the caller giving up, not the
					// upstream; stop instead of burning the budget.
					return "", lastErr
				}
				if attempt < maxAttempts-1 {
					wait := backoffSchedule[attempt]
					log.WithFields(log.Fields{
						"model":   model,
						"attempt": attempt + 1,
						"wait":    wait.String(),
						"event":   "backoff",
					}).Info("Waiting before retry")
					if serr := c.sleep(ctx, wait); serr != nil {
						return "", &TransientError{Model: model, Attempt: attempt, Cause: serr}
					}
					continue
				}
			}
			// NextModel, or the attempt budget for this model is spent.
			break
		}
	}

	err := &ExhaustedError{Cause: lastErr}
	log.WithFields(log.Fields{
		"error": err.Error(),
		"event": "exhausted",
	}).Error("All candidate models failed")
	return "", err
}
