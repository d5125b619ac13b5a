package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-fit-tracker/internal/store"
	"github.com/MKhiriev/go-fit-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLog_Success(t *testing.T) {
	logs := &mockLogSvc{
		getLogFn: func(ctx context.Context, req models.LogRequest) (models.ExerciseLog, error) {
			assert.Equal(t, "user-1", req.UserID)
			assert.Equal(t, "2023-10-01", req.From)
			assert.Equal(t, "2023-10-31", req.To)
			assert.Equal(t, "5", req.Limit)

			return models.ExerciseLog{
				Username: "fred",
				ID:       "user-1",
				Count:    9,
				Log: []models.LogEntry{
					{Description: "run", Duration: 30, Date: "Thu Oct 05 2023"},
				},
			}, nil
		},
	}

	router := newTestRouter(nil, nil, logs)

	req := httptest.NewRequest(http.MethodGet, "/api/users/user-1/logs?from=2023-10-01&to=2023-10-31&limit=5", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.ExerciseLog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "fred", got.Username)
	assert.Equal(t, 9, got.Count)
	require.Len(t, got.Log, 1)
	assert.Equal(t, "Thu Oct 05 2023", got.Log[0].Date)
	assert.Contains(t, rec.Body.String(), `"_id"`)
}

func TestGetLog_NoQueryParameters(t *testing.T) {
	logs := &mockLogSvc{
		getLogFn: func(ctx context.Context, req models.LogRequest) (models.ExerciseLog, error) {
			assert.Empty(t, req.From)
			assert.Empty(t, req.To)
			assert.Empty(t, req.Limit)
			return models.ExerciseLog{Username: "fred", ID: req.UserID, Log: []models.LogEntry{}}, nil
		},
	}

	router := newTestRouter(nil, nil, logs)

	req := httptest.NewRequest(http.MethodGet, "/api/users/user-1/logs", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"log":[]`)
}

func TestGetLog_UnknownUser(t *testing.T) {
	logs := &mockLogSvc{
		getLogFn: func(ctx context.Context, req models.LogRequest) (models.ExerciseLog, error) {
			return models.ExerciseLog{}, store.ErrNoUserWasFound
		},
	}

	router := newTestRouter(nil, nil, logs)

	req := httptest.NewRequest(http.MethodGet, "/api/users/missing/logs", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not found.")
}

func TestGetLog_ServiceError(t *testing.T) {
	logs := &mockLogSvc{
		getLogFn: func(ctx context.Context, req models.LogRequest) (models.ExerciseLog, error) {
			return models.ExerciseLog{}, errors.New("storage failure")
		},
	}

	router := newTestRouter(nil, nil, logs)

	req := httptest.NewRequest(http.MethodGet, "/api/users/user-1/logs", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
}
