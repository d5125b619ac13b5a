package service

import (
	"context"

	"github.com/MKhiriev/go-fit-tracker/models"
)

// UserService handles user registration and listing.
type UserService interface {
	// CreateUser registers a new user. A non-empty failure list means
	// the request was rejected by validation; the error reports server
	// faults, including [store.ErrUsernameAlreadyExists] wrapped for
	// callers to match with errors.Is.
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, []models.ValidationFailure, error)

	// ListUsers returns all registered users in insertion order.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// ExerciseService handles attaching exercise entries to users.
type ExerciseService interface {
	// CreateExercise validates and persists an exercise entry, then
	// returns the creation view rendered against the owning user.
	CreateExercise(ctx context.Context, req models.CreateExerciseRequest) (models.ExerciseCreated, []models.ValidationFailure, error)
}

// LogService answers exercise-log queries.
type LogService interface {
	// GetLog resolves the user, applies the optional date filter and
	// limit, and renders the log view. Returns
	// [store.ErrNoUserWasFound] when the user id is unknown.
	GetLog(ctx context.Context, req models.LogRequest) (models.ExerciseLog, error)
}

// IDGenerator produces identifiers for newly created records.
type IDGenerator interface {
	Generate() string
}
