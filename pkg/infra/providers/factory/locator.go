package factory

import (
	"net/http"
	"time"

	"github.com/digitalshield/shield/pkg/domain"
	"github.com/digitalshield/shield/pkg/infra/providers"
	"github.com/digitalshield/shield/pkg/infra/providers/anthropic"
	"github.com/digitalshield/shield/pkg/infra/providers/gemini"
	"github.com/digitalshield/shield/pkg/infra/providers/openai"
	"github.com/digitalshield/shield/pkg/infra/providers/openaicompat"
)

const (
	ProviderOpenAI       = "openai"
	ProviderGemini       = "gemini"
	ProviderAnthropic    = "anthropic"
	ProviderOpenAICompat = "openai_compat"
)

//go:generate mockery --name=ProviderLocator --dir=. --output=./mocks --filename=provider_locator_mock.go --case=underscore

type ProviderLocator interface {
	Get(provider string) (providers.Client, error)
}

type providerLocator struct {
	httpClient *http.Client
}

func NewProviderLocator() ProviderLocator {
	return &providerLocator{
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

func (f *providerLocator) Get(provider string) (providers.Client, error) {
	switch provider {
	case ProviderOpenAI:
		return openai.NewOpenaiClient(), nil
	case ProviderGemini:
		return gemini.NewGeminiClient(), nil
	case ProviderAnthropic:
		return anthropic.NewAnthropicClient(), nil
	case ProviderOpenAICompat:
		return openaicompat.NewClient(f.httpClient), nil
	default:
		return nil, domain.NewConfigurationError("providers", "unsupported provider: "+provider)
	}
}
