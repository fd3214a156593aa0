package http

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/digitalshield/shield/pkg/domain/tip"
	tipMocks "github.com/digitalshield/shield/pkg/domain/tip/mocks"
	"github.com/digitalshield/shield/pkg/infra/cache/channel"
	"github.com/digitalshield/shield/pkg/infra/cache/event"
	cacheMocks "github.com/digitalshield/shield/pkg/infra/cache/mocks"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func tipApp(repo *tipMocks.Repository, publisher *cacheMocks.EventPublisher) *fiber.App {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	app := fiber.New()
	app.Post("/api/v1/safety-tips", NewCreateSafetyTipHandler(logger, repo, publisher).Handle)
	app.Get("/api/v1/safety-tips", NewListSafetyTipsHandler(logger, repo).Handle)
	return app
}

func TestCreateSafetyTipHandler_Success(t *testing.T) {
	repo := new(tipMocks.Repository)
	publisher := new(cacheMocks.EventPublisher)
	app := tipApp(repo, publisher)

	tipID := uuid.New()
	repo.On("Create", mock.Anything, mock.AnythingOfType("*tip.SafetyTip")).
		Return(nil).
		Run(func(args mock.Arguments) {
			created := args.Get(1).(*tip.SafetyTip)
			created.ID = tipID
		})
	publisher.On("Publish", mock.Anything, channel.TipEventsChannel, mock.MatchedBy(func(ev event.SafetyTipCreatedEvent) bool {
		return ev.TipID == tipID && ev.Title == "Think before you post"
	})).Return(nil)

	body, err := json.Marshal(map[string]string{
		"title":    "Think before you post",
		"content":  "Reread your message as if you were the recipient.",
		"category": "communication",
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/v1/safety-tips", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCreateSafetyTipHandler_MissingTitle(t *testing.T) {
	repo := new(tipMocks.Repository)
	publisher := new(cacheMocks.EventPublisher)
	app := tipApp(repo, publisher)

	body, err := json.Marshal(map[string]string{"content": "some advice"})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/v1/safety-tips", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateSafetyTipHandler_PublishFailureStillCreated(t *testing.T) {
	repo := new(tipMocks.Repository)
	publisher := new(cacheMocks.EventPublisher)
	app := tipApp(repo, publisher)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	body, err := json.Marshal(map[string]string{
		"title":   "Think before you post",
		"content": "Reread your message as if you were the recipient.",
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/v1/safety-tips", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestListSafetyTipsHandler_ReturnsTips(t *testing.T) {
	repo := new(tipMocks.Repository)
	publisher := new(cacheMocks.EventPublisher)
	app := tipApp(repo, publisher)

	repo.On("List", mock.Anything).Return([]tip.SafetyTip{
		{ID: uuid.New(), Title: "Think before you post", Content: "..."},
		{ID: uuid.New(), Title: "Block and report", Content: "..."},
	}, nil)

	req := httptest.NewRequest("GET", "/api/v1/safety-tips", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var tips []tip.SafetyTip
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tips))
	assert.Len(t, tips, 2)
}
