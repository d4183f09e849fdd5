package llmprovider

import (
	"context"
	"fmt"
	"sort"

	"task-intake/config"
	"task-intake/pkg/gemini"
	"task-intake/pkg/log"
	"task-intake/pkg/openai"
)

const (
	ProviderOpenAI   = "openai"
	ProviderDeepSeek = "deepseek"
	ProviderQwen     = "qwen"
	ProviderGemini   = "gemini"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Providers are sorted by priority (ascending); disabled ones are filtered
// out and ones that fail to initialize are logged and skipped.
func InitializeProviders(ctx context.Context, l log.Logger, cfg config.LLMConfig) ([]Provider, error) {
	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}

	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			l.Warnf(ctx, "llmprovider.InitializeProviders: skipping provider %s (priority %d): %v", p.Name, p.Priority, err)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}

	switch cfg.Name {
	case ProviderOpenAI, ProviderDeepSeek, ProviderQwen:
		client, err := openai.New(openai.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: baseURLFor(cfg),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", cfg.Name, err)
		}
		return NewOpenAIAdapter(cfg.Name, client), nil

	case ProviderGemini:
		client, err := gemini.New(gemini.Config{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
			APIURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

func baseURLFor(cfg config.ProviderConfig) string {
	if cfg.BaseURL != "" {
		return cfg.BaseURL
	}
	switch cfg.Name {
	case ProviderDeepSeek:
		return openai.DeepSeekBaseURL
	case ProviderQwen:
		return openai.QwenBaseURL
	}
	return openai.DefaultBaseURL
}
