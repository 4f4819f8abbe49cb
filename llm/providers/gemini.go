package providers

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"
)

// Sampling settings shared by every Gemini model in the failover list
const (
	geminiTemperature     = 0.1
	geminiTopP            = 0.95
	geminiTopK            = 40
	geminiMaxOutputTokens = 2000
)

// GeminiProvider calls Gemini models on Vertex AI
type GeminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider creates a Vertex AI client for the project and location
func NewGeminiProvider(ctx context.Context, projectID, location string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{client: client}, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// Generate runs prompt on the named model
func (p *GeminiProvider) Generate(ctx context.Context, modelName, prompt string) (string, error) {
	model := p.client.GenerativeModel(modelName)
	model.SetTemperature(geminiTemperature)
	model.SetTopP(geminiTopP)
	model.SetTopK(geminiTopK)
	model.SetMaxOutputTokens(geminiMaxOutputTokens)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return "", fmt.Errorf("no response from Gemini")
	}
	return text, nil
}

// Close closes the Vertex AI client
func (p *GeminiProvider) Close() error {
	return p.client.Close()
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}
