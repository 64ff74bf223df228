package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/MuziSitsha/live-mood/internal/models"
)

const (
	// Sampling parameters fixed by the upstream wire contract.
	temperature = 0.7
	maxTokens   = 256

	defaultCallTimeout = 60 * time.Second

	// Error bodies are kept as bounded snippets for logs.
	maxErrorBodyBytes    = 4 << 10
	maxResponseBodyBytes = 1 << 20
)

// Config carries everything an invocation needs, captured once at
// construction. There is no other shared state between invocations.
type Config struct {
	// Endpoint is the full chat completions URL.
	Endpoint string
	// APIKey is sent as a bearer credential on every call.
	APIKey string
	// PrimaryModel is always the first candidate.
	PrimaryModel string
	// FallbackModels is an optional comma-separated list tried after the
	// primary, in order.
	FallbackModels string
	// Timeout bounds each individual upstream call. Zero means 60s.
	Timeout time.Duration
}

// GenerationRequest is one fully assembled generation job. Immutable once
// built; the caller owns prompt assembly.
type GenerationRequest struct {
	SystemPrompt string
	SafetyNotice string
	UserPayload  string
}

// Client calls a chat-completions-style endpoint with model failover and
// per-model retry. Safe for concurrent use; every field is read-only after
// NewClient.
type Client struct {
	endpoint   string
	apiKey     string
	candidates []string
	httpClient *http.Client

	// sleep is the backoff wait, context-aware so cancellation skips any
	// pending delay. Replaced in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewClient builds a Client from cfg. The candidate list is fixed here:
// primary first, then deduplicated fallbacks.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}
	return &Client{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		candidates: BuildCandidates(cfg.PrimaryModel, cfg.FallbackModels),
		httpClient: &http.Client{Timeout: timeout},
		sleep:      sleepContext,
	}
}

// Candidates returns the model identifiers in the order they will be tried.
func (c *Client) Candidates() []string {
	out := make([]string, len(c.candidates))
	copy(out, c.candidates)
	return out
}

// Call performs one synchronous upstream call for a single model and parses
// the reply into generated text. It never retries; that is Generate's job.
func (c *Client) Call(ctx context.Context, model string, req GenerationRequest) (string, error) {
	body := models.ChatRequest{
		Model: model,
		Messages: []models.ChatMessage{
			{Role: "system", Content: req.SystemPrompt + "\n" + req.SafetyNotice},
			{Role: "user", Content: req.UserPayload},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Stream:      false,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &transportError{cause: err, timeout: isTimeoutCause(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return "", &HTTPError{Status: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodyBytes))
	if err != nil {
		return "", &transportError{cause: err, timeout: isTimeoutCause(err)}
	}

	var parsed models.ChatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if !parsed.Error.Empty() {
		return "", fmt.Errorf("upstream reported error: %s", upstreamErrorText(parsed.Error))
	}

	var text string
	if len(parsed.Choices) > 0 {
		text = strings.TrimSpace(parsed.Choices[0].Message.Content)
	}
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func upstreamErrorText(e models.UpstreamError) string {
	if e.Message != "" {
		return e.Message
	}
	if e.Type != "" {
		return e.Type
	}
	return e.Code
}

func isTimeoutCause(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// sleepContext waits for d or until ctx is done, whichever comes first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
