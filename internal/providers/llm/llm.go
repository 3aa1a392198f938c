package llm

import "context"

// Provider answers one prompt with one block of text.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Close() error
}
