package utils

import (
	"context"
	"fmt"
	"strings"
)

// Decoding parameters shared by every provider.
const (
	GenerationTemperature     = 0.7
	GenerationMaxOutputTokens = 4096
)

// GenerationClientInterface sends one prompt and returns one completion.
// Implementations make a single attempt; retrying is the caller's decision.
type GenerationClientInterface interface {
	Generate(ctx context.Context, systemInstruction, prompt string) (string, error)
	Provider() string
	Model() string
}

// NewGenerationClient Factory function to create a client for the configured provider
func NewGenerationClient(cfg GenerationConfig) (GenerationClientInterface, error) {
	switch strings.ToLower(cfg.Provider) {
	case "groq", "openai":
		return NewOpenAICompatibleClient(cfg), nil
	case "gemini":
		client, err := NewGeminiGenerationClient(cfg)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported generation provider: %s. Use 'groq', 'openai' or 'gemini'", cfg.Provider)
	}
}
