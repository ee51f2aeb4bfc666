package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/psychograph/psychograph/internal/common"
	"github.com/psychograph/psychograph/internal/llm"
)

// createLLMClient creates an LLM client based on configuration.
// Shared by every command that talks to a model.
func createLLMClient() (llm.Client, error) {
	provider := viper.GetString("llm.provider")
	if provider == "" {
		provider = "anthropic" // default provider
	}

	config := llm.Config{
		Provider:    provider,
		Model:       viper.GetString("llm.model"),
		Temperature: viper.GetFloat64("llm.temperature"),
		MaxTokens:   viper.GetInt("llm.max_tokens"),
		RateLimit:   viper.GetInt("llm.rate_limit"),
		Timeout:     viper.GetDuration("llm.timeout"),
	}

	if config.RateLimit == 0 {
		config.RateLimit = 60 // requests per minute
	}
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}

	// Get API key based on provider
	switch provider {
	case "anthropic":
		apiKey := viper.GetString("llm.anthropic_api_key")
		if apiKey == "" {
			apiKey = os.Getenv("ANTHROPIC_API_KEY")
		}
		if apiKey == "" {
			return nil, fmt.Errorf("%w: anthropic API key not found in config or ANTHROPIC_API_KEY environment variable", common.ErrMissingConfig)
		}
		config.APIKey = apiKey

	case "openai":
		apiKey := viper.GetString("llm.openai_api_key")
		if apiKey == "" {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
		if apiKey == "" {
			return nil, fmt.Errorf("%w: OpenAI API key not found in config or OPENAI_API_KEY environment variable", common.ErrMissingConfig)
		}
		config.APIKey = apiKey

	default:
		return nil, fmt.Errorf("%w: unsupported LLM provider: %s", common.ErrInvalidConfig, provider)
	}

	client, err := llm.NewClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return client, nil
}
