package anthropic

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/digitalshield/shield/pkg/domain"
	"github.com/digitalshield/shield/pkg/infra/providers"
)

const defaultMaxTokens = 1024

type client struct {
	clientPool *sync.Map
}

func NewAnthropicClient() providers.Client {
	return &client{
		clientPool: &sync.Map{},
	}
}

func (c *client) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	if config.Credentials.ApiKey == "" {
		return nil, domain.NewConfigurationError("anthropic.api_key", "API key is required")
	}
	if config.Model == "" {
		return nil, domain.NewConfigurationError("anthropic.model", "model is required")
	}

	anthropicClient := c.getOrCreateClient(config.Credentials.ApiKey)

	maxTokens := config.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	params := anthropic.MessageNewParams{
		Model: anthropic.Model(config.Model),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
		MaxTokens: int64(maxTokens),
	}
	if config.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: config.SystemPrompt, Type: "text"},
		}
	}
	if config.Temperature > 0 {
		params.Temperature = anthropic.Float(config.Temperature)
	}

	message, err := anthropicClient.Messages.New(ctx, params)
	if err != nil {
		var apierr *anthropic.Error
		if errors.As(err, &apierr) {
			return nil, providers.MapStatus(apierr.StatusCode, apierr.Error())
		}
		return nil, domain.NewUpstreamError(0, fmt.Sprintf("anthropic request failed: %v", err))
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return nil, domain.ErrEmptyCompletion
	}

	return &providers.CompletionResponse{
		ID:       message.ID,
		Model:    string(message.Model),
		Response: sb.String(),
		Usage: providers.Usage{
			PromptTokens:     int(message.Usage.InputTokens),
			CompletionTokens: int(message.Usage.OutputTokens),
			TotalTokens:      int(message.Usage.InputTokens + message.Usage.OutputTokens),
		},
	}, nil
}

func (c *client) getOrCreateClient(apiKey string) *anthropic.Client {
	if v, ok := c.clientPool.Load(apiKey); ok {
		if cached, ok := v.(*anthropic.Client); ok {
			return cached
		}
	}
	cli := anthropic.NewClient(option.WithAPIKey(apiKey))
	c.clientPool.Store(apiKey, &cli)
	return &cli
}
