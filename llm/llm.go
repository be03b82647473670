// Package llm defines the minimal language model contract used by the
// structuring and report pipelines. Provider implementations live in the
// gemini and anthropic subpackages.
package llm

import (
	"context"
	"errors"
)

// Provider errors.
var (
	// ErrNoAPIKey indicates the provider was constructed without credentials.
	ErrNoAPIKey = errors.New("API key is required")

	// ErrEmptyResponse indicates the provider returned no usable text.
	ErrEmptyResponse = errors.New("model returned no text")
)

// Model generates text from a system instruction and a user prompt. The
// returned text is the model's full response with no streaming.
type Model interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}
