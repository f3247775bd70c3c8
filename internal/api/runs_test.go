package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"ftpbot/internal/models"
	"ftpbot/internal/repository"
	"ftpbot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerRun_Accepted(t *testing.T) {
	h, mockAgent, _ := setupTestHandlers(t)

	mockAgent.EXPECT().Trigger(models.TriggerAPI).Return(true).Once()

	rec := serve(h, http.MethodPost, "/api/v1/runs")

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	response := decodeResponse(t, rec)
	assert.True(t, response.Success)
	assert.Equal(t, "Run queued", response.Message)
}

func TestTriggerRun_AlreadyPending(t *testing.T) {
	h, mockAgent, _ := setupTestHandlers(t)

	mockAgent.EXPECT().Trigger(models.TriggerAPI).Return(false).Once()

	rec := serve(h, http.MethodPost, "/api/v1/runs")

	assert.Equal(t, http.StatusConflict, rec.Code)

	response := decodeResponse(t, rec)
	assert.False(t, response.Success)
	assert.Equal(t, "A run is already pending", response.Error)
}

func TestGetRuns_Success(t *testing.T) {
	h, _, mockRepo := setupTestHandlers(t)

	runs := []*models.Run{
		testutil.CreateTestRun(func(r *models.Run) { r.ID = 2 }),
		testutil.CreateTestRun(func(r *models.Run) { r.ID = 1 }),
	}

	mockRepo.EXPECT().
		GetRuns(models.RunFilter{Limit: 50}).
		Return(runs, nil).
		Once()

	rec := serve(h, http.MethodGet, "/api/v1/runs")

	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeResponse(t, rec)
	assert.True(t, response.Success)

	data, ok := response.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 2)
}

func TestGetRuns_WithFilters(t *testing.T) {
	h, _, mockRepo := setupTestHandlers(t)

	expected := models.RunFilter{
		Status:    []models.RunStatus{models.RunStatusFailed},
		Trigger:   models.TriggerWatch,
		Limit:     10,
		Offset:    20,
		SortOrder: "asc",
	}

	mockRepo.EXPECT().
		GetRuns(expected).
		Return([]*models.Run{}, nil).
		Once()

	rec := serve(h, http.MethodGet, "/api/v1/runs?status=failed&trigger=watch&limit=10&offset=20&sort_order=asc")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetRuns_InvalidPagination(t *testing.T) {
	h, _, mockRepo := setupTestHandlers(t)

	mockRepo.EXPECT().
		GetRuns(models.RunFilter{Limit: 50}).
		Return(nil, nil).
		Once()

	rec := serve(h, http.MethodGet, "/api/v1/runs?limit=5000&offset=-1")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetRuns_Error(t *testing.T) {
	h, _, mockRepo := setupTestHandlers(t)

	mockRepo.EXPECT().
		GetRuns(models.RunFilter{Limit: 50}).
		Return(nil, errors.New("database error")).
		Once()

	rec := serve(h, http.MethodGet, "/api/v1/runs")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	response := decodeResponse(t, rec)
	assert.False(t, response.Success)
	assert.Equal(t, "Failed to get runs", response.Error)
}

func TestGetRun_Success(t *testing.T) {
	h, _, mockRepo := setupTestHandlers(t)

	run := testutil.CreateTestRun(func(r *models.Run) {
		r.ID = 7
		r.Transfers = []models.TransferRecord{
			{ID: 1, RunID: 7, Direction: models.DirectionUpload, Name: "b.txt", Outcome: models.OutcomeSucceeded, Bytes: 11},
		}
	})

	mockRepo.EXPECT().GetRun(int64(7)).Return(run, nil).Once()

	rec := serve(h, http.MethodGet, "/api/v1/runs/7")

	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeResponse(t, rec)
	assert.True(t, response.Success)

	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(7), data["id"])
	assert.Equal(t, "completed", data["status"])

	transfers, ok := data["transfers"].([]interface{})
	require.True(t, ok)
	require.Len(t, transfers, 1)
	assert.Equal(t, "b.txt", transfers[0].(map[string]interface{})["name"])
}

func TestGetRun_NotFound(t *testing.T) {
	h, _, mockRepo := setupTestHandlers(t)

	mockRepo.EXPECT().
		GetRun(int64(404)).
		Return(nil, fmt.Errorf("run 404 %w", repository.ErrNotFound)).
		Once()

	rec := serve(h, http.MethodGet, "/api/v1/runs/404")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	response := decodeResponse(t, rec)
	assert.Equal(t, "Run not found", response.Error)
}

func TestGetRun_RepositoryError(t *testing.T) {
	h, _, mockRepo := setupTestHandlers(t)

	mockRepo.EXPECT().GetRun(int64(1)).Return(nil, errors.New("disk I/O error")).Once()

	rec := serve(h, http.MethodGet, "/api/v1/runs/1")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetRun_NonNumericID(t *testing.T) {
	h, _, _ := setupTestHandlers(t)

	rec := serve(h, http.MethodGet, "/api/v1/runs/abc")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetRunSummary_Success(t *testing.T) {
	h, _, mockRepo := setupTestHandlers(t)

	summary := &models.RunSummary{
		TotalRuns:       5,
		CompletedRuns:   4,
		FailedRuns:      1,
		FilesUploaded:   12,
		FilesDownloaded: 3,
	}

	mockRepo.EXPECT().GetRunSummary().Return(summary, nil).Once()

	rec := serve(h, http.MethodGet, "/api/v1/runs/summary")

	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeResponse(t, rec)
	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(5), data["total_runs"])
	assert.Equal(t, float64(12), data["files_uploaded"])
}

func TestGetRunSummary_Error(t *testing.T) {
	h, _, mockRepo := setupTestHandlers(t)

	mockRepo.EXPECT().GetRunSummary().Return(nil, errors.New("database error")).Once()

	rec := serve(h, http.MethodGet, "/api/v1/runs/summary")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
