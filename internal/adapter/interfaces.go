// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the fit-tracker REST API.
//
// The primary abstraction is [TrackerClient], which decouples callers from
// the underlying HTTP transport. The package ships a resty-based
// implementation ([NewHTTPTrackerClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrNotFound] for 404).
// Validation rejections additionally carry the server's failure list via
// [ValidationError].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-fit-tracker/models"
)

// LogQuery holds the optional query parameters of a log request. Zero values
// are omitted from the request.
type LogQuery struct {
	From  string
	To    string
	Limit string
}

// TrackerClient defines transport-agnostic communication with the
// fit-tracker server. Implementations are responsible for serialisation and
// for mapping transport-level errors to the sentinel values defined in this
// package.
type TrackerClient interface {
	// CreateUser registers a new user with the given username. Returns
	// [ErrConflict] (wrapped) when the username is already taken, or a
	// [ValidationError] when the server rejects the input.
	CreateUser(ctx context.Context, username string) (models.User, error)

	// ListUsers fetches all registered users.
	ListUsers(ctx context.Context) ([]models.User, error)

	// CreateExercise attaches an exercise entry to the given user.
	// Duration and date are sent as strings, matching the API's form
	// semantics.
	CreateExercise(ctx context.Context, userID string, req models.CreateExerciseRequest) (models.ExerciseCreated, error)

	// GetLog fetches a user's exercise log, optionally narrowed by query.
	// Returns [ErrNotFound] (wrapped) for an unknown user.
	GetLog(ctx context.Context, userID string, query LogQuery) (models.ExerciseLog, error)
}
