package openaicompat

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/digitalshield/shield/pkg/domain"
	httpxMocks "github.com/digitalshield/shield/pkg/infra/httpx/mocks"
	"github.com/digitalshield/shield/pkg/infra/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *providers.Config {
	return &providers.Config{
		Credentials: providers.Credentials{
			ApiKey:  "test-key",
			BaseURL: "https://gateway.example.com/v1",
		},
		Model:        "router-model",
		SystemPrompt: "analyze the message",
	}
}

func httpResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestAsk_Success(t *testing.T) {
	httpClient := new(httpxMocks.Client)
	c := NewClient(httpClient)

	httpClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "https://gateway.example.com/v1/chat/completions" &&
			req.Header.Get("Authorization") == "Bearer test-key" &&
			req.Header.Get("Content-Type") == "application/json"
	})).Return(httpResponse(http.StatusOK, `{
		"id": "cmpl-42",
		"model": "router-model",
		"choices": [{"message": {"content": "{\"toxicityScore\": 12}"}}],
		"usage": {"prompt_tokens": 20, "completion_tokens": 10, "total_tokens": 30}
	}`), nil)

	resp, err := c.Ask(context.Background(), testConfig(), "rate this")

	require.NoError(t, err)
	assert.Equal(t, "cmpl-42", resp.ID)
	assert.Equal(t, `{"toxicityScore": 12}`, resp.Response)
	assert.Equal(t, 30, resp.Usage.TotalTokens)
	httpClient.AssertExpectations(t)
}

func TestAsk_OptionsOverridePathAndHeaders(t *testing.T) {
	httpClient := new(httpxMocks.Client)
	c := NewClient(httpClient)

	cfg := testConfig()
	cfg.Options = map[string]interface{}{
		"completions_path": "/openai/deployments/chat/completions",
		"extra_headers":    map[string]string{"X-Proxy-Tenant": "shield"},
	}

	httpClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.Path == "/v1/openai/deployments/chat/completions" &&
			req.Header.Get("X-Proxy-Tenant") == "shield"
	})).Return(httpResponse(http.StatusOK, `{
		"id": "cmpl-7",
		"model": "router-model",
		"choices": [{"message": {"content": "ok"}}]
	}`), nil)

	_, err := c.Ask(context.Background(), cfg, "rate this")

	require.NoError(t, err)
	httpClient.AssertExpectations(t)
}

func TestAsk_MissingCredentials(t *testing.T) {
	httpClient := new(httpxMocks.Client)
	c := NewClient(httpClient)

	cfg := testConfig()
	cfg.Credentials.ApiKey = ""

	_, err := c.Ask(context.Background(), cfg, "rate this")

	require.Error(t, err)
	assert.True(t, domain.IsConfigurationError(err))
	httpClient.AssertNotCalled(t, "Do", mock.Anything)
}

func TestAsk_RateLimitMapsToSentinel(t *testing.T) {
	httpClient := new(httpxMocks.Client)
	c := NewClient(httpClient)

	httpClient.On("Do", mock.Anything).
		Return(httpResponse(http.StatusTooManyRequests, `{"error": "slow down"}`), nil)

	_, err := c.Ask(context.Background(), testConfig(), "rate this")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRateLimited))
}

func TestAsk_PaymentRequiredMapsToQuotaExhausted(t *testing.T) {
	httpClient := new(httpxMocks.Client)
	c := NewClient(httpClient)

	httpClient.On("Do", mock.Anything).
		Return(httpResponse(http.StatusPaymentRequired, `{"error": "no credits"}`), nil)

	_, err := c.Ask(context.Background(), testConfig(), "rate this")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrQuotaExhausted))
}

func TestAsk_ServerErrorMapsToUpstreamError(t *testing.T) {
	httpClient := new(httpxMocks.Client)
	c := NewClient(httpClient)

	httpClient.On("Do", mock.Anything).
		Return(httpResponse(http.StatusInternalServerError, "backend exploded"), nil)

	_, err := c.Ask(context.Background(), testConfig(), "rate this")

	require.Error(t, err)
	assert.True(t, domain.IsUpstreamError(err))
	var upstream *domain.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusInternalServerError, upstream.Status)
}

func TestAsk_EmptyChoices(t *testing.T) {
	httpClient := new(httpxMocks.Client)
	c := NewClient(httpClient)

	httpClient.On("Do", mock.Anything).
		Return(httpResponse(http.StatusOK, `{"id": "cmpl-1", "model": "router-model", "choices": []}`), nil)

	_, err := c.Ask(context.Background(), testConfig(), "rate this")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrEmptyCompletion))
}

func TestAsk_TransportFailure(t *testing.T) {
	httpClient := new(httpxMocks.Client)
	c := NewClient(httpClient)

	httpClient.On("Do", mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := c.Ask(context.Background(), testConfig(), "rate this")

	require.Error(t, err)
	assert.True(t, domain.IsUpstreamError(err))
}
