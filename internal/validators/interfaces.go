// Package validators implements field-level input validation for create
// operations. Rules are evaluated independently and together: a request is
// checked against every applicable rule and ALL failures are collected, so
// callers always receive the complete ordered failure list instead of the
// first violation.
package validators

import (
	"context"

	"github.com/MKhiriev/go-fit-tracker/models"
)

// Validator validates create-operation inputs and reports rule violations as
// ordered [models.ValidationFailure] lists. An empty list means the input is
// acceptable.
type Validator interface {
	// ValidateCreateUser checks a user-registration request.
	ValidateCreateUser(ctx context.Context, req models.CreateUserRequest) []models.ValidationFailure

	// ValidateCreateExercise checks an exercise-creation request. The
	// user-id rule performs an existence lookup against the user store;
	// a lookup failure is returned as the error (a server fault, not a
	// validation failure).
	ValidateCreateExercise(ctx context.Context, req models.CreateExerciseRequest) ([]models.ValidationFailure, error)
}

// UserChecker answers whether a user id resolves to an existing user. It is
// implemented by the user repository.
type UserChecker interface {
	UserExists(ctx context.Context, userID string) (bool, error)
}
