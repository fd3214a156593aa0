package http

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/digitalshield/shield/pkg/analyzer"
	appAnalysis "github.com/digitalshield/shield/pkg/app/analysis"
	completionMocks "github.com/digitalshield/shield/pkg/app/completion/mocks"
	domainAnalysis "github.com/digitalshield/shield/pkg/domain/analysis"
	analysisMocks "github.com/digitalshield/shield/pkg/domain/analysis/mocks"
	cacheMocks "github.com/digitalshield/shield/pkg/infra/cache/mocks"
	"github.com/digitalshield/shield/pkg/infra/providers"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionTestEnv struct {
	app       *fiber.App
	pipeline  *appAnalysis.Pipeline
	gateway   *completionMocks.Gateway
	repo      *analysisMocks.Repository
	publisher *cacheMocks.EventPublisher
}

func newSessionTestEnv() *sessionTestEnv {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	gateway := new(completionMocks.Gateway)
	repo := new(analysisMocks.Repository)
	publisher := new(cacheMocks.EventPublisher)
	pipeline := appAnalysis.NewPipeline(logger, gateway, analyzer.NewParser(), repo, publisher, 10000)

	app := fiber.New()
	app.Post("/api/v1/analyze", NewAnalyzeHandler(logger, pipeline).Handle)
	app.Post("/api/v1/analyses/:session_id/save", NewSaveAnalysisHandler(logger, pipeline).Handle)
	app.Delete("/api/v1/analyses/:session_id", NewDisposeSessionHandler(logger, pipeline).Handle)

	return &sessionTestEnv{
		app:       app,
		pipeline:  pipeline,
		gateway:   gateway,
		repo:      repo,
		publisher: publisher,
	}
}

func (e *sessionTestEnv) analyze(t *testing.T, text string) uuid.UUID {
	t.Helper()
	e.gateway.On("Complete", mock.Anything, "gemini", mock.Anything, mock.Anything).
		Return(&providers.CompletionResponse{Response: verdictJSON}, nil)

	body, err := json.Marshal(map[string]string{"text": text})
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/api/v1/analyze", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result struct {
		SessionID uuid.UUID `json:"session_id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result.SessionID
}

func TestSaveAnalysisHandler_Success(t *testing.T) {
	env := newSessionTestEnv()
	sessionID := env.analyze(t, "you absolute idiot")
	owner := uuid.New()

	env.repo.On("Save", mock.Anything, mock.AnythingOfType("*analysis.AnalysisRecord")).
		Return(nil).
		Run(func(args mock.Arguments) {
			record := args.Get(1).(*domainAnalysis.AnalysisRecord)
			record.ID = uuid.New()
		})
	env.publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	req := httptest.NewRequest("POST", "/api/v1/analyses/"+sessionID.String()+"/save", nil)
	req.Header.Set(IdentityHeader, owner.String())
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var record domainAnalysis.AnalysisRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&record))
	assert.Equal(t, owner, record.OwnerID)
	assert.Equal(t, 74, record.ToxicityScore)
	env.repo.AssertExpectations(t)
	env.publisher.AssertExpectations(t)
}

func TestSaveAnalysisHandler_RequiresIdentity(t *testing.T) {
	env := newSessionTestEnv()
	sessionID := env.analyze(t, "you absolute idiot")

	req := httptest.NewRequest("POST", "/api/v1/analyses/"+sessionID.String()+"/save", nil)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	env.repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSaveAnalysisHandler_UnknownSessionConflicts(t *testing.T) {
	env := newSessionTestEnv()

	req := httptest.NewRequest("POST", "/api/v1/analyses/"+uuid.NewString()+"/save", nil)
	req.Header.Set(IdentityHeader, uuid.NewString())
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestSaveAnalysisHandler_InvalidSessionID(t *testing.T) {
	env := newSessionTestEnv()

	req := httptest.NewRequest("POST", "/api/v1/analyses/not-a-uuid/save", nil)
	req.Header.Set(IdentityHeader, uuid.NewString())
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDisposeSessionHandler_ThenSaveConflicts(t *testing.T) {
	env := newSessionTestEnv()
	sessionID := env.analyze(t, "you absolute idiot")

	req := httptest.NewRequest("DELETE", "/api/v1/analyses/"+sessionID.String(), nil)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	req = httptest.NewRequest("POST", "/api/v1/analyses/"+sessionID.String()+"/save", nil)
	req.Header.Set(IdentityHeader, uuid.NewString())
	resp, err = env.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	env.repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
