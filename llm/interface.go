package llm

import (
	"context"
)

// Provider sends a single prompt to one hosted model
type Provider interface {
	// Name returns the provider name used in logs and health output
	Name() string

	// Generate runs the prompt against the named model and returns its text
	Generate(ctx context.Context, model, prompt string) (string, error)

	// Close releases the underlying client
	Close() error
}
