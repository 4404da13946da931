package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/studium/internal/store"
)

// Providers bundles the two model tiers the application uses: a heavy
// model for document extraction and a fast model for interactive calls.
type Providers struct {
	Extraction Provider
	Fast       Provider
}

// NewProviders creates both provider tiers from configuration, each
// wrapped with retry and logging middleware.
func NewProviders(ctx context.Context, cfg Config, logRepo store.AIRequestRepo) (*Providers, error) {
	var extraction, fast Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		extraction, fast, err = anthropicPair(cfg.Anthropic)
	case "openai":
		extraction, fast, err = openaiPair(cfg.OpenAI)
	case "gemini":
		extraction, fast, err = geminiPair(ctx, cfg.Gemini)
	case "openrouter":
		extraction, fast, err = openrouterPair(cfg.OpenRouter)
	case "mock":
		m := NewMockProvider()
		return &Providers{Extraction: m, Fast: m}, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → timeout → retry → logging → base
	return &Providers{
		Extraction: wrap(extraction, cfg, logRepo),
		Fast:       wrap(fast, cfg, logRepo),
	}, nil
}

func wrap(p Provider, cfg Config, logRepo store.AIRequestRepo) Provider {
	if logRepo != nil {
		p = WithLogging(p, logRepo, cfg.Provider)
	}
	p = WithRetry(p, cfg.Retry)
	return WithTimeout(p, cfg.Timeout)
}

func anthropicPair(cfg AnthropicConfig) (Provider, Provider, error) {
	extraction, err := NewAnthropicProvider(cfg)
	if err != nil {
		return nil, nil, err
	}
	fastCfg := cfg
	fastCfg.Model = cfg.FastModel
	fast, err := NewAnthropicProvider(fastCfg)
	if err != nil {
		return nil, nil, err
	}
	return extraction, fast, nil
}

func openaiPair(cfg OpenAIConfig) (Provider, Provider, error) {
	extraction, err := NewOpenAIProvider(cfg)
	if err != nil {
		return nil, nil, err
	}
	fastCfg := cfg
	fastCfg.Model = cfg.FastModel
	fast, err := NewOpenAIProvider(fastCfg)
	if err != nil {
		return nil, nil, err
	}
	return extraction, fast, nil
}

func geminiPair(ctx context.Context, cfg GeminiConfig) (Provider, Provider, error) {
	extraction, err := NewGeminiProvider(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	fastCfg := cfg
	fastCfg.Model = cfg.FastModel
	fast, err := NewGeminiProvider(ctx, fastCfg)
	if err != nil {
		return nil, nil, err
	}
	return extraction, fast, nil
}

func openrouterPair(cfg OpenRouterConfig) (Provider, Provider, error) {
	extraction, err := NewOpenRouterProvider(cfg)
	if err != nil {
		return nil, nil, err
	}
	fastCfg := cfg
	fastCfg.Model = cfg.FastModel
	fast, err := NewOpenRouterProvider(fastCfg)
	if err != nil {
		return nil, nil, err
	}
	return extraction, fast, nil
}
