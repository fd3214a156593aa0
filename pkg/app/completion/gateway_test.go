package completion

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/digitalshield/shield/pkg/config"
	"github.com/digitalshield/shield/pkg/domain"
	"github.com/digitalshield/shield/pkg/infra/providers"
	factoryMocks "github.com/digitalshield/shield/pkg/infra/providers/factory/mocks"
	providerMocks "github.com/digitalshield/shield/pkg/infra/providers/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testModels() map[string]config.ModelConfig {
	return map[string]config.ModelConfig{
		"gemini": {
			Provider:    "gemini",
			Model:       "gemini-2.0-flash",
			ApiKey:      "test-key",
			Temperature: 0.2,
		},
	}
}

func setupGateway(locator *factoryMocks.ProviderLocator) Gateway {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return NewGateway(logger, locator, testModels(), 5*time.Second)
}

func TestGateway_Complete_Success(t *testing.T) {
	locator := new(factoryMocks.ProviderLocator)
	client := new(providerMocks.Client)
	gateway := setupGateway(locator)

	locator.On("Get", "gemini").Return(client, nil)
	client.On("Ask", mock.Anything, mock.MatchedBy(func(cfg *providers.Config) bool {
		return cfg.Model == "gemini-2.0-flash" &&
			cfg.Credentials.ApiKey == "test-key" &&
			cfg.SystemPrompt == "you are a content safety analyst"
	}), "rate this text").Return(&providers.CompletionResponse{
		ID:       "cmpl-1",
		Model:    "gemini-2.0-flash",
		Response: `{"toxicityScore": 10}`,
	}, nil)

	resp, err := gateway.Complete(context.Background(), "gemini", "you are a content safety analyst", "rate this text")

	require.NoError(t, err)
	assert.Equal(t, `{"toxicityScore": 10}`, resp.Response)
	locator.AssertExpectations(t)
	client.AssertExpectations(t)
}

func TestGateway_Complete_UnknownModelFailsClosed(t *testing.T) {
	locator := new(factoryMocks.ProviderLocator)
	gateway := setupGateway(locator)

	_, err := gateway.Complete(context.Background(), "mistral", "system", "user")

	require.Error(t, err)
	assert.True(t, domain.IsConfigurationError(err))
	locator.AssertNotCalled(t, "Get", mock.Anything)
}

func TestGateway_Complete_RateLimitPassesThrough(t *testing.T) {
	locator := new(factoryMocks.ProviderLocator)
	client := new(providerMocks.Client)
	gateway := setupGateway(locator)

	locator.On("Get", "gemini").Return(client, nil)
	client.On("Ask", mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrRateLimited)

	_, err := gateway.Complete(context.Background(), "gemini", "system", "user")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRateLimited))
}

func TestGateway_Complete_QuotaExhaustedPassesThrough(t *testing.T) {
	locator := new(factoryMocks.ProviderLocator)
	client := new(providerMocks.Client)
	gateway := setupGateway(locator)

	locator.On("Get", "gemini").Return(client, nil)
	client.On("Ask", mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrQuotaExhausted)

	_, err := gateway.Complete(context.Background(), "gemini", "system", "user")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrQuotaExhausted))
}

func TestGateway_Complete_EmptyCompletionPassesThrough(t *testing.T) {
	locator := new(factoryMocks.ProviderLocator)
	client := new(providerMocks.Client)
	gateway := setupGateway(locator)

	locator.On("Get", "gemini").Return(client, nil)
	client.On("Ask", mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrEmptyCompletion)

	_, err := gateway.Complete(context.Background(), "gemini", "system", "user")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrEmptyCompletion))
}

func TestGateway_Complete_TimeoutBecomesUpstreamError(t *testing.T) {
	locator := new(factoryMocks.ProviderLocator)
	client := new(providerMocks.Client)
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	gateway := NewGateway(logger, locator, testModels(), 10*time.Millisecond)

	locator.On("Get", "gemini").Return(client, nil)
	client.On("Ask", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, context.DeadlineExceeded).
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			<-ctx.Done()
		})

	_, err := gateway.Complete(context.Background(), "gemini", "system", "user")

	require.Error(t, err)
	assert.True(t, domain.IsUpstreamError(err))
}

func TestGateway_Complete_LocatorErrorPassesThrough(t *testing.T) {
	locator := new(factoryMocks.ProviderLocator)
	gateway := setupGateway(locator)

	locator.On("Get", "gemini").Return(nil, domain.NewConfigurationError("providers", "unsupported provider: gemini"))

	_, err := gateway.Complete(context.Background(), "gemini", "system", "user")

	require.Error(t, err)
	assert.True(t, domain.IsConfigurationError(err))
}
