package utils

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	GroqBaseURL        = "https://api.groq.com/openai/v1"
	DefaultGroqModel   = "llama-3.3-70b-versatile"
	DefaultOpenAIModel = openai.GPT4oMini
)

// GenerationConfig holds configuration for generation clients
type GenerationConfig struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	HTTPTimeout time.Duration
}

// OpenAICompatibleClient talks to any OpenAI-style chat completion API (Groq, OpenAI).
type OpenAICompatibleClient struct {
	client   *openai.Client
	provider string
	model    string
}

func NewOpenAICompatibleClient(cfg GenerationConfig) *OpenAICompatibleClient {
	conf := openai.DefaultConfig(cfg.APIKey)

	provider := strings.ToLower(cfg.Provider)
	model := cfg.Model
	switch {
	case cfg.BaseURL != "":
		conf.BaseURL = cfg.BaseURL
	case provider == "groq":
		conf.BaseURL = GroqBaseURL
	}
	if model == "" {
		if provider == "openai" {
			model = DefaultOpenAIModel
		} else {
			model = DefaultGroqModel
		}
	}
	if cfg.HTTPTimeout > 0 {
		conf.HTTPClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &OpenAICompatibleClient{
		client:   openai.NewClientWithConfig(conf),
		provider: provider,
		model:    model,
	}
}

func (c *OpenAICompatibleClient) Provider() string { return c.provider }

func (c *OpenAICompatibleClient) Model() string { return c.model }

func (c *OpenAICompatibleClient) Generate(ctx context.Context, systemInstruction, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: GenerationTemperature,
		MaxTokens:   GenerationMaxOutputTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", &GenerationError{Provider: c.provider, Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &GenerationError{Provider: c.provider, Err: errors.New("no choices returned")}
	}
	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", &GenerationError{Provider: c.provider, Err: errors.New("empty response content")}
	}

	return content, nil
}
