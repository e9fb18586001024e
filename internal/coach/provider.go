// Package coach produces worked explanations of limit problems using an
// LLM provider. The explanation is requested as structured JSON and
// validated against a schema before it reaches the UI.
package coach

import (
	"context"
	"encoding/json"
)

// Provider is a single-turn structured completion backend.
type Provider interface {
	// Complete sends one prompt and returns the model's reply. When the
	// request carries a Schema the reply is JSON conforming to it.
	Complete(ctx context.Context, req Request) (*Reply, error)

	// Name identifies the backend ("anthropic", "openai", "gemini", "mock").
	Name() string

	// Model returns the model identifier in use.
	Model() string
}

// Request describes one completion call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Prompt is the single user message.
	Prompt string

	// Schema, when set, switches the provider to its native structured
	// output mechanism and the reply is validated against it.
	Schema *Schema

	// MaxTokens bounds the reply length.
	MaxTokens int

	// CoefficientA identifies the problem this request is about, carried
	// through to event logging.
	CoefficientA int
}

// Schema defines the JSON structure expected from the model.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Reply holds the model's output.
type Reply struct {
	// JSON is the reply content. With a Schema it is the validated
	// object; without one it is the raw text.
	JSON json.RawMessage

	InputTokens  int
	OutputTokens int

	// Model is the model that actually served the request.
	Model string

	// Truncated is true when the reply hit MaxTokens.
	Truncated bool
}
