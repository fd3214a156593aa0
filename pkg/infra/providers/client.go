package providers

import (
	"context"
)

type Config struct {
	Credentials  Credentials `json:"credentials"`
	Model        string      `json:"model"`
	MaxTokens    int         `json:"max_tokens,omitempty"`
	Temperature  float64     `json:"temperature,omitempty"`
	SystemPrompt string      `json:"system_prompt,omitempty"`

	// Options holds provider-specific settings; clients decode what they
	// understand and ignore the rest.
	Options map[string]interface{} `json:"options,omitempty"`
}

type Credentials struct {
	ApiKey  string `json:"api_key"`
	BaseURL string `json:"base_url,omitempty"`
}

//go:generate mockery --name=Client --dir=. --output=./mocks --filename=client_mock.go --case=underscore

// Client issues a single completion request against one model backend. One
// outbound call per invocation, no retries, no state kept between calls.
// Backend failures surface as the domain taxonomy: 429 as RateLimited, 402 as
// QuotaExhausted, any other non-success as UpstreamError, and a successful
// response without content as EmptyCompletion.
type Client interface {
	Ask(ctx context.Context, config *Config, prompt string) (*CompletionResponse, error)
}
