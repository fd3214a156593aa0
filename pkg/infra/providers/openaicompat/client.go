package openaicompat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/digitalshield/shield/pkg/domain"
	"github.com/digitalshield/shield/pkg/infra/httpx"
	"github.com/digitalshield/shield/pkg/infra/providers"
	"github.com/mitchellh/mapstructure"
)

// Client speaks the OpenAI chat-completions wire format against any
// compatible gateway (self-hosted routers, proxy gateways). The base URL
// comes from the per-model credentials.
type client struct {
	httpClient httpx.Client
}

func NewClient(httpClient httpx.Client) providers.Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}
	return &client{httpClient: httpClient}
}

// compatOptions are the gateway-specific knobs some compatible backends
// need; unknown option keys are ignored.
type compatOptions struct {
	CompletionsPath string            `mapstructure:"completions_path"`
	ExtraHeaders    map[string]string `mapstructure:"extra_headers"`
}

func decodeOptions(raw map[string]interface{}) compatOptions {
	options := compatOptions{CompletionsPath: "/chat/completions"}
	if len(raw) == 0 {
		return options
	}
	if err := mapstructure.Decode(raw, &options); err != nil {
		return compatOptions{CompletionsPath: "/chat/completions"}
	}
	if options.CompletionsPath == "" {
		options.CompletionsPath = "/chat/completions"
	}
	return options
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

func (c *client) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
) (*providers.CompletionResponse, error) {
	if config.Credentials.ApiKey == "" {
		return nil, domain.NewConfigurationError("openai_compat.api_key", "API key is required")
	}
	if config.Credentials.BaseURL == "" {
		return nil, domain.NewConfigurationError("openai_compat.base_url", "base URL is required")
	}
	if config.Model == "" {
		return nil, domain.NewConfigurationError("openai_compat.model", "model is required")
	}

	var messages []chatMessage
	if config.SystemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: config.SystemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: prompt})

	body, err := json.Marshal(chatCompletionRequest{Model: config.Model, Messages: messages})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal completion request: %w", err)
	}

	options := decodeOptions(config.Options)
	url := strings.TrimSuffix(config.Credentials.BaseURL, "/") + options.CompletionsPath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+config.Credentials.ApiKey)
	for key, value := range options.ExtraHeaders {
		httpReq.Header.Set(key, value)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, domain.NewUpstreamError(0, fmt.Sprintf("gateway request failed: %v", err))
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, domain.NewUpstreamError(httpResp.StatusCode, fmt.Sprintf("failed to read response body: %v", err))
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, providers.MapStatus(httpResp.StatusCode, string(respBody))
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return nil, domain.NewUpstreamError(httpResp.StatusCode, fmt.Sprintf("failed to decode completion: %v", err))
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return nil, domain.ErrEmptyCompletion
	}

	return &providers.CompletionResponse{
		ID:       completion.ID,
		Model:    completion.Model,
		Response: completion.Choices[0].Message.Content,
		Usage: providers.Usage{
			PromptTokens:     completion.Usage.PromptTokens,
			CompletionTokens: completion.Usage.CompletionTokens,
			TotalTokens:      completion.Usage.TotalTokens,
		},
	}, nil
}
