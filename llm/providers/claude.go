package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	claudeMaxTokens   = 2000
	claudeTemperature = 0.1
)

// ClaudeProvider calls Anthropic Claude models
type ClaudeProvider struct {
	client anthropic.Client
}

// NewClaudeProvider creates a Claude provider. Extra options are passed to
// the SDK client, which lets tests point it at a local server.
func NewClaudeProvider(apiKey string, opts ...option.RequestOption) *ClaudeProvider {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)

	return &ClaudeProvider{
		client: anthropic.NewClient(opts...),
	}
}

// Name returns the provider name
func (p *ClaudeProvider) Name() string {
	return "claude"
}

// Generate sends prompt as a single user message to the named model
func (p *ClaudeProvider) Generate(ctx context.Context, model, prompt string) (string, error) {
	response, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(model),
		MaxTokens:   claudeMaxTokens,
		Temperature: anthropic.Float(claudeTemperature),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to call Claude API: %w", err)
	}

	var sb strings.Builder
	for _, block := range response.Content {
		if block.Type == "text" {
			sb.WriteString(block.AsText().Text)
		}
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("no text content in Claude response")
	}
	return sb.String(), nil
}

// Close is a no-op; the SDK client holds no resources
func (p *ClaudeProvider) Close() error {
	return nil
}
