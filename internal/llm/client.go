// Package llm provides clients for LLM providers used by the analysis
// services.
package llm

import (
	"context"
	"time"
)

// Client defines the interface for LLM providers. Implementations are
// safe for reuse across calls; a single client is constructed at
// process start and threaded through the components that need it.
type Client interface {
	// Complete sends a prompt and returns the model's text response.
	Complete(ctx context.Context, req Request) (string, error)
}

// Request describes one completion call.
type Request struct {
	System    string
	Prompt    string
	MaxTokens int
}

// Config holds configuration for LLM clients.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	RateLimit   int
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}
