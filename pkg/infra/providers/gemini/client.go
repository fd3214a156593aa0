package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/digitalshield/shield/pkg/domain"
	"github.com/digitalshield/shield/pkg/infra/providers"
	"google.golang.org/genai"
)

type client struct{}

func NewGeminiClient() providers.Client {
	return &client{}
}

func (c *client) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	if config.Credentials.ApiKey == "" {
		return nil, domain.NewConfigurationError("gemini.api_key", "API key is required")
	}
	if config.Model == "" {
		return nil, domain.NewConfigurationError("gemini.model", "model is required")
	}

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.Credentials.ApiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, domain.NewUpstreamError(0, fmt.Sprintf("failed to create gemini client: %v", err))
	}

	var generateCfg *genai.GenerateContentConfig
	if config.SystemPrompt != "" {
		generateCfg = &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: config.SystemPrompt}},
				Role:  "system",
			},
		}
	}

	result, err := genaiClient.Models.GenerateContent(ctx, config.Model, genai.Text(prompt), generateCfg)
	if err != nil {
		var apierr genai.APIError
		if errors.As(err, &apierr) {
			return nil, providers.MapStatus(apierr.Code, apierr.Message)
		}
		return nil, domain.NewUpstreamError(0, fmt.Sprintf("gemini request failed: %v", err))
	}

	responseText := result.Text()
	if responseText == "" {
		return nil, domain.ErrEmptyCompletion
	}

	resp := &providers.CompletionResponse{
		ID:       fmt.Sprintf("gemini-%d", time.Now().UnixNano()),
		Model:    config.Model,
		Response: responseText,
	}
	if result.UsageMetadata != nil {
		resp.Usage = providers.Usage{
			PromptTokens:     int(result.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(result.UsageMetadata.TotalTokenCount),
		}
	}

	return resp, nil
}
