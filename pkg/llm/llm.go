package llm

import "context"

// LLM is a single-turn chat completion client.
type LLM interface {
	Chat(ctx context.Context, prompt string) (string, error)
	Model() string
}
