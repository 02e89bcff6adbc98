package llm

import (
	"context"
)

// Provider defines the interface for interacting with generative text services.
type Provider interface {
	// GenerateText sends a prompt and returns the text response.
	// name identifies the intent (classify, select, validate) for model
	// routing and logging.
	GenerateText(ctx context.Context, name, prompt string) (string, error)

	// GenerateJSON sends a prompt and unmarshals the response into the target struct.
	GenerateJSON(ctx context.Context, name, prompt string, target any) error

	// HealthCheck verifies that the provider is configured and reachable.
	HealthCheck(ctx context.Context) error
}
