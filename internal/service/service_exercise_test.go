package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.ExerciseRepository
// ─────────────────────────────────────────────

type mockExerciseRepository struct {
	saveExerciseFn  func(ctx context.Context, exercise models.Exercise) (models.Exercise, error)
	findExercisesFn func(ctx context.Context, filter models.LogFilter, limit int) ([]models.Exercise, error)
	countByUserFn   func(ctx context.Context, userID string) (int, error)
}

func (m *mockExerciseRepository) SaveExercise(ctx context.Context, exercise models.Exercise) (models.Exercise, error) {
	if m.saveExerciseFn != nil {
		return m.saveExerciseFn(ctx, exercise)
	}
	return exercise, nil
}

func (m *mockExerciseRepository) FindExercises(ctx context.Context, filter models.LogFilter, limit int) ([]models.Exercise, error) {
	if m.findExercisesFn != nil {
		return m.findExercisesFn(ctx, filter, limit)
	}
	return nil, nil
}

func (m *mockExerciseRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	if m.countByUserFn != nil {
		return m.countByUserFn(ctx, userID)
	}
	return 0, nil
}

func newTestExerciseService(exercises *mockExerciseRepository, users *mockUserRepository) ExerciseService {
	l := logger.Nop()
	return NewExerciseService(exercises, users, newTestValidator(users), &fixedIDs{id: "generated-id"}, l)
}

func validExerciseRequest() models.CreateExerciseRequest {
	return models.CreateExerciseRequest{
		UserID:      "user-1",
		Description: "morning run",
		Duration:    "30",
		Date:        "2023-10-05",
	}
}

func TestExerciseService_CreateExercise_Success(t *testing.T) {
	var savedExercise models.Exercise
	exercises := &mockExerciseRepository{
		saveExerciseFn: func(ctx context.Context, exercise models.Exercise) (models.Exercise, error) {
			savedExercise = exercise
			return exercise, nil
		},
	}
	users := &mockUserRepository{
		findUserByIDFn: func(ctx context.Context, userID string) (models.User, error) {
			return models.User{ID: userID, Username: "fred"}, nil
		},
	}

	svc := newTestExerciseService(exercises, users)

	created, failures, err := svc.CreateExercise(context.Background(), validExerciseRequest())
	require.NoError(t, err)
	require.Empty(t, failures)

	assert.Equal(t, "fred", created.Username)
	assert.Equal(t, "morning run", created.Description)
	assert.Equal(t, 30.0, created.Duration)
	assert.Equal(t, "Thu Oct 05 2023", created.Date)
	assert.Equal(t, "user-1", created.ID, "_id must carry the owning user's id")

	assert.Equal(t, "generated-id", savedExercise.ID)
	assert.Equal(t, "user-1", savedExercise.UserID)
}

func TestExerciseService_CreateExercise_AbsentDateDefaultsToToday(t *testing.T) {
	var savedExercise models.Exercise
	exercises := &mockExerciseRepository{
		saveExerciseFn: func(ctx context.Context, exercise models.Exercise) (models.Exercise, error) {
			savedExercise = exercise
			return exercise, nil
		},
	}
	users := &mockUserRepository{}

	svc := newTestExerciseService(exercises, users)

	req := validExerciseRequest()
	req.Date = ""

	_, failures, err := svc.CreateExercise(context.Background(), req)
	require.NoError(t, err)
	require.Empty(t, failures)

	assert.WithinDuration(t, time.Now().UTC(), savedExercise.Date, 25*time.Hour)
}

func TestExerciseService_CreateExercise_ValidationFailures(t *testing.T) {
	repoCalled := false
	exercises := &mockExerciseRepository{
		saveExerciseFn: func(ctx context.Context, exercise models.Exercise) (models.Exercise, error) {
			repoCalled = true
			return exercise, nil
		},
	}
	users := &mockUserRepository{
		userExistsFn: func(ctx context.Context, userID string) (bool, error) {
			return false, nil
		},
	}

	svc := newTestExerciseService(exercises, users)

	req := models.CreateExerciseRequest{
		UserID:      "missing",
		Description: "",
		Duration:    "not-a-number",
		Date:        "2023-13-45",
	}

	_, failures, err := svc.CreateExercise(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, failures, 4)

	assert.Equal(t, models.FieldUserID, failures[0].Field)
	assert.Equal(t, models.FieldDescription, failures[1].Field)
	assert.Equal(t, models.FieldDuration, failures[2].Field)
	assert.Equal(t, models.FieldDate, failures[3].Field)
	assert.False(t, repoCalled, "repository must not be called for invalid input")
}

func TestExerciseService_CreateExercise_UserCheckError(t *testing.T) {
	exercises := &mockExerciseRepository{}
	users := &mockUserRepository{
		userExistsFn: func(ctx context.Context, userID string) (bool, error) {
			return false, errors.New("db failure")
		},
	}

	svc := newTestExerciseService(exercises, users)

	_, failures, err := svc.CreateExercise(context.Background(), validExerciseRequest())
	require.Empty(t, failures)
	require.ErrorIs(t, err, ErrCreatingExercise)
}

func TestExerciseService_CreateExercise_SaveError(t *testing.T) {
	exercises := &mockExerciseRepository{
		saveExerciseFn: func(ctx context.Context, exercise models.Exercise) (models.Exercise, error) {
			return models.Exercise{}, errors.New("db failure")
		},
	}
	users := &mockUserRepository{}

	svc := newTestExerciseService(exercises, users)

	_, _, err := svc.CreateExercise(context.Background(), validExerciseRequest())
	require.ErrorIs(t, err, ErrCreatingExercise)
}

func TestExerciseService_CreateExercise_OwnerLookupError(t *testing.T) {
	exercises := &mockExerciseRepository{}
	users := &mockUserRepository{
		findUserByIDFn: func(ctx context.Context, userID string) (models.User, error) {
			return models.User{}, errors.New("db failure")
		},
	}

	svc := newTestExerciseService(exercises, users)

	_, _, err := svc.CreateExercise(context.Background(), validExerciseRequest())
	require.ErrorIs(t, err, ErrCreatingExercise)
}

func TestExerciseService_CreateExercise_SlashDateLayout(t *testing.T) {
	exercises := &mockExerciseRepository{}
	users := &mockUserRepository{
		findUserByIDFn: func(ctx context.Context, userID string) (models.User, error) {
			return models.User{ID: userID, Username: "fred"}, nil
		},
	}

	svc := newTestExerciseService(exercises, users)

	req := validExerciseRequest()
	req.Date = "2023/10/05"

	created, failures, err := svc.CreateExercise(context.Background(), req)
	require.NoError(t, err)
	require.Empty(t, failures)
	assert.Equal(t, "Thu Oct 05 2023", created.Date)
}
