package completion

import (
	"context"
	"errors"
	"time"

	"github.com/digitalshield/shield/pkg/config"
	"github.com/digitalshield/shield/pkg/domain"
	"github.com/digitalshield/shield/pkg/infra/httpx"
	"github.com/digitalshield/shield/pkg/infra/metrics"
	"github.com/digitalshield/shield/pkg/infra/providers"
	"github.com/digitalshield/shield/pkg/infra/providers/factory"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Gateway --dir=. --output=./mocks --filename=gateway_mock.go --case=underscore

// Gateway issues one completion call against the backend selected by the
// caller-facing model identifier. Retry policy lives with the caller; the
// gateway only bounds the call and classifies its failure.
type Gateway interface {
	Complete(ctx context.Context, modelID, systemPrompt, userPrompt string) (*providers.CompletionResponse, error)
}

type gateway struct {
	logger  *logrus.Logger
	locator factory.ProviderLocator
	models  map[string]config.ModelConfig
	timeout time.Duration
	breaker httpx.CircuitBreaker
}

func NewGateway(
	logger *logrus.Logger,
	locator factory.ProviderLocator,
	models map[string]config.ModelConfig,
	timeout time.Duration,
) Gateway {
	return &gateway{
		logger:  logger,
		locator: locator,
		models:  models,
		timeout: timeout,
		breaker: httpx.NewCircuitBreaker("model-gateway", 30*time.Second, 5),
	}
}

func (g *gateway) Complete(
	ctx context.Context,
	modelID, systemPrompt, userPrompt string,
) (*providers.CompletionResponse, error) {
	modelCfg, ok := g.models[modelID]
	if !ok {
		// Fail closed; defaulting would leave the caller unsure which model
		// produced the verdict.
		return nil, domain.NewConfigurationError("models."+modelID, "unknown model identifier")
	}

	client, err := g.locator.Get(modelCfg.Provider)
	if err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	providerCfg := &providers.Config{
		Credentials: providers.Credentials{
			ApiKey:  modelCfg.ApiKey,
			BaseURL: modelCfg.BaseURL,
		},
		Model:        modelCfg.Model,
		MaxTokens:    modelCfg.MaxTokens,
		Temperature:  modelCfg.Temperature,
		SystemPrompt: systemPrompt,
		Options:      modelCfg.Options,
	}

	var resp *providers.CompletionResponse
	err = g.breaker.Execute(func() error {
		var askErr error
		resp, askErr = client.Ask(callCtx, providerCfg, userPrompt)
		return askErr
	})
	if err != nil {
		return nil, g.classify(err, modelID)
	}

	return resp, nil
}

func (g *gateway) classify(err error, modelID string) error {
	switch {
	case httpx.IsOpen(err):
		metrics.CompletionErrorsTotal.WithLabelValues("circuit_open").Inc()
		g.logger.WithField("model", modelID).Warn("model gateway circuit open")
		return domain.NewUpstreamError(0, "model backend temporarily unavailable")
	case errors.Is(err, context.DeadlineExceeded):
		metrics.CompletionErrorsTotal.WithLabelValues("timeout").Inc()
		g.logger.WithField("model", modelID).Warn("model gateway call timed out")
		return domain.NewUpstreamError(0, "model backend timed out")
	case errors.Is(err, domain.ErrRateLimited):
		metrics.CompletionErrorsTotal.WithLabelValues("rate_limited").Inc()
		return domain.ErrRateLimited
	case errors.Is(err, domain.ErrQuotaExhausted):
		metrics.CompletionErrorsTotal.WithLabelValues("quota_exhausted").Inc()
		return domain.ErrQuotaExhausted
	case errors.Is(err, domain.ErrEmptyCompletion):
		metrics.CompletionErrorsTotal.WithLabelValues("empty_completion").Inc()
		return domain.ErrEmptyCompletion
	default:
		metrics.CompletionErrorsTotal.WithLabelValues("upstream").Inc()
		g.logger.WithError(err).WithField("model", modelID).Error("model gateway call failed")
		return err
	}
}
