package http

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/digitalshield/shield/pkg/domain"
	"github.com/digitalshield/shield/pkg/domain/analysis"
	analysisMocks "github.com/digitalshield/shield/pkg/domain/analysis/mocks"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func historyApp(repo *analysisMocks.Repository) *fiber.App {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	app := fiber.New()
	app.Get("/api/v1/analyses", NewListAnalysesHandler(logger, repo).Handle)
	app.Delete("/api/v1/analyses/records/:record_id", NewDeleteAnalysisHandler(logger, repo).Handle)
	app.Get("/api/v1/review-queue", NewReviewQueueHandler(logger, repo, 50).Handle)
	return app
}

func TestListAnalysesHandler_ScopedToOwner(t *testing.T) {
	repo := new(analysisMocks.Repository)
	app := historyApp(repo)

	owner := uuid.New()
	repo.On("ListByOwner", mock.Anything, owner).Return([]analysis.AnalysisRecord{
		{ID: uuid.New(), OwnerID: owner, OriginalText: "old message", ToxicityScore: 64},
	}, nil)

	req := httptest.NewRequest("GET", "/api/v1/analyses", nil)
	req.Header.Set(IdentityHeader, owner.String())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var records []analysis.AnalysisRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	require.Len(t, records, 1)
	assert.Equal(t, owner, records[0].OwnerID)
	repo.AssertExpectations(t)
}

func TestListAnalysesHandler_RequiresIdentity(t *testing.T) {
	repo := new(analysisMocks.Repository)
	app := historyApp(repo)

	req := httptest.NewRequest("GET", "/api/v1/analyses", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	repo.AssertNotCalled(t, "ListByOwner", mock.Anything, mock.Anything)
}

func TestDeleteAnalysisHandler_Success(t *testing.T) {
	repo := new(analysisMocks.Repository)
	app := historyApp(repo)

	owner := uuid.New()
	recordID := uuid.New()
	repo.On("Delete", mock.Anything, recordID, owner).Return(nil)

	req := httptest.NewRequest("DELETE", "/api/v1/analyses/records/"+recordID.String(), nil)
	req.Header.Set(IdentityHeader, owner.String())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	repo.AssertExpectations(t)
}

func TestDeleteAnalysisHandler_NotOwnerReturns403(t *testing.T) {
	repo := new(analysisMocks.Repository)
	app := historyApp(repo)

	owner := uuid.New()
	recordID := uuid.New()
	repo.On("Delete", mock.Anything, recordID, owner).Return(domain.NewNotOwnerError(recordID))

	req := httptest.NewRequest("DELETE", "/api/v1/analyses/records/"+recordID.String(), nil)
	req.Header.Set(IdentityHeader, owner.String())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestDeleteAnalysisHandler_UnknownRecordReturns404(t *testing.T) {
	repo := new(analysisMocks.Repository)
	app := historyApp(repo)

	owner := uuid.New()
	recordID := uuid.New()
	repo.On("Delete", mock.Anything, recordID, owner).Return(domain.NewNotFoundError("analysis record", recordID))

	req := httptest.NewRequest("DELETE", "/api/v1/analyses/records/"+recordID.String(), nil)
	req.Header.Set(IdentityHeader, owner.String())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestReviewQueueHandler_ReturnsFlaggedRecords(t *testing.T) {
	repo := new(analysisMocks.Repository)
	app := historyApp(repo)

	repo.On("ListFlagged", mock.Anything, 50).Return([]analysis.AnalysisRecord{
		{ID: uuid.New(), OwnerID: uuid.New(), OriginalText: "nasty message", ToxicityScore: 91},
		{ID: uuid.New(), OwnerID: uuid.New(), OriginalText: "rude message", ToxicityScore: 55},
	}, nil)

	req := httptest.NewRequest("GET", "/api/v1/review-queue", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result struct {
		Threshold int                       `json:"threshold"`
		Records   []analysis.AnalysisRecord `json:"records"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, 50, result.Threshold)
	assert.Len(t, result.Records, 2)
}
