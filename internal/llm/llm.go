// Package llm holds the provider-neutral request shape shared by the
// model clients.
package llm

import "context"

// Request is a single-shot chat completion: one system instruction and one
// user message.
type Request struct {
	System      string
	User        string
	Temperature float32
	// JSON asks the provider for a structured JSON response.
	JSON bool
}

// Completer sends a Request to a language model and returns the raw text
// of its first choice.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// CompleterFunc adapts a function to Completer.
type CompleterFunc func(ctx context.Context, req Request) (string, error)

func (f CompleterFunc) Complete(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

const (
	ProviderOpenAI = "openai"
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)
