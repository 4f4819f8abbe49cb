package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jobhunter/backend/config"
	"github.com/jobhunter/backend/llm/providers"
)

// NewFromConfig builds a failover client for the configured provider. It
// returns (nil, nil) when the provider has no credentials, so callers fall
// back to templates.
func NewFromConfig(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Client, error) {
	if !cfg.LLMConfigured() {
		return nil, nil
	}

	switch cfg.LLMProvider {
	case config.ProviderGemini:
		provider, err := providers.NewGeminiProvider(ctx, cfg.ProjectID, cfg.Location)
		if err != nil {
			return nil, err
		}
		return NewClient(provider, cfg.GeminiModels, log)

	case config.ProviderClaude:
		return NewClient(providers.NewClaudeProvider(cfg.AnthropicAPIKey), cfg.ClaudeModels, log)

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.LLMProvider)
	}
}

// SupportedProviders lists the provider names accepted by NewFromConfig
func SupportedProviders() []string {
	return []string{config.ProviderGemini, config.ProviderClaude}
}
