package store

import (
	"context"

	"github.com/MKhiriev/go-fit-tracker/models"
)

// UserRepository persists and resolves user accounts.
type UserRepository interface {
	// CreateUser inserts a new user and returns the stored record with
	// server-assigned fields populated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID resolves a user by id. Returns [ErrNoUserWasFound]
	// when the id does not exist.
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// ListUsers returns all users in insertion order.
	ListUsers(ctx context.Context) ([]models.User, error)

	// UserExists reports whether a user id resolves to a stored user.
	UserExists(ctx context.Context, userID string) (bool, error)
}

// ExerciseRepository persists exercise entries and answers log queries.
type ExerciseRepository interface {
	// SaveExercise inserts a new entry and returns the stored record.
	SaveExercise(ctx context.Context, exercise models.Exercise) (models.Exercise, error)

	// FindExercises returns the entries matching filter in insertion
	// order, truncated to limit when limit > 0.
	FindExercises(ctx context.Context, filter models.LogFilter, limit int) ([]models.Exercise, error)

	// CountByUser returns the all-time number of entries for a user.
	// It deliberately ignores any date filter or limit.
	CountByUser(ctx context.Context, userID string) (int, error)
}

// ErrorClassificator classifies low-level database errors so callers can
// decide whether a failed operation is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
