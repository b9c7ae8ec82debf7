package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultGeminiModel = "gemini-1.5-flash"

// geminiModel is the part of *genai.GenerativeModel the client calls.
type geminiModel interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// GeminiGenerationClient implements GenerationClientInterface using Google's Gemini models
type GeminiGenerationClient struct {
	client   *genai.Client
	model    string
	timeout  time.Duration
	newModel func(systemInstruction string) geminiModel
}

// NewGeminiGenerationClient creates a new Gemini client
func NewGeminiGenerationClient(cfg GenerationConfig) (*GeminiGenerationClient, error) {
	model := cfg.Model
	if model == "" {
		model = DefaultGeminiModel // Free tier model
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c := &GeminiGenerationClient{
		client:  client,
		model:   model,
		timeout: cfg.HTTPTimeout,
	}
	c.newModel = c.configuredModel
	return c, nil
}

func (c *GeminiGenerationClient) Provider() string { return "gemini" }

func (c *GeminiGenerationClient) Model() string { return c.model }

func (c *GeminiGenerationClient) configuredModel(systemInstruction string) geminiModel {
	m := c.client.GenerativeModel(c.model)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemInstruction)}}
	// Force JSON-only output
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(GenerationTemperature)
	m.SetMaxOutputTokens(GenerationMaxOutputTokens)
	return m
}

// Generate makes one call. The genai REST transport carries the API key, so
// the request deadline comes from the context rather than an http.Client.
func (c *GeminiGenerationClient) Generate(ctx context.Context, systemInstruction, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.newModel(systemInstruction).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &GenerationError{Provider: "gemini", Err: err}
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &GenerationError{Provider: "gemini", Err: errors.New("no content generated by Gemini")}
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	content := sb.String()
	if strings.TrimSpace(content) == "" {
		return "", &GenerationError{Provider: "gemini", Err: errors.New("empty response content")}
	}

	return content, nil
}

// Close closes the Gemini client
func (c *GeminiGenerationClient) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
