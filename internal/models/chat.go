package models

import "encoding/json"

// ChatMessage represents a single chat message
type ChatMessage struct {
	Role    string `json:"role"` // "system" or "user"
	Content string `json:"content"`
}

// ChatRequest is the body sent to the chat completions endpoint.
// Temperature and Stream are serialized unconditionally: the upstream
// contract expects them on every request, including "stream": false.
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	Stream      bool          `json:"stream"`
}

// ChatChoice is one candidate completion in an upstream response.
type ChatChoice struct {
	Index   int         `json:"index"`
	Message ChatMessage `json:"message"`
}

// ChatResponse is the body returned by the chat completions endpoint.
// Some providers report failures inside a 200 body; Error captures that
// field whether it arrives as a string or an object.
type ChatResponse struct {
	Model   string        `json:"model,omitempty"`
	Choices []ChatChoice  `json:"choices"`
	Error   UpstreamError `json:"error,omitempty"`
}

// UpstreamError is the error field of a chat completions body. Providers
// disagree on its shape, so it accepts either a bare string or an object
// with a message.
type UpstreamError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}

// UnmarshalJSON accepts both `"error": "boom"` and
// `"error": {"message": "boom", ...}`.
func (e *UpstreamError) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		e.Message = s
		return nil
	}
	type plain UpstreamError
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = UpstreamError(p)
	return nil
}

// Empty reports whether the upstream body carried no error field.
func (e UpstreamError) Empty() bool {
	return e == UpstreamError{}
}
