package llm

import (
	"context"
)

// Generator is the generative text oracle. Implementations may fail
// transiently, ignore formatting instructions, or return off-topic text;
// every property of the output is untrusted.
type Generator interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float64) (string, error)
}
