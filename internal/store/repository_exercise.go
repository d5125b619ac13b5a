// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev
package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/models"
)

// exerciseRepository is the SQL-backed implementation of [ExerciseRepository].
type exerciseRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewExerciseRepository constructs an [ExerciseRepository] backed by the
// provided database connection and logger.
func NewExerciseRepository(db *DB, logger *logger.Logger) ExerciseRepository {
	logger.Debug().Msg("creating exercise repository")
	return &exerciseRepository{
		db:     db,
		logger: logger,
	}
}

// SaveExercise persists an exercise entry and returns the stored record as
// reported by the database RETURNING clause.
func (r *exerciseRepository) SaveExercise(ctx context.Context, exercise models.Exercise) (models.Exercise, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, saveExercise,
		exercise.ID, exercise.UserID, exercise.Description, exercise.Duration, exercise.Date, exercise.CreatedAt)

	var saved models.Exercise
	err := row.Scan(&saved.ID, &saved.UserID, &saved.Description, &saved.Duration, &saved.Date, &saved.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*exerciseRepository.SaveExercise").Str("user_id", exercise.UserID).Msg("error saving exercise")

		if classification := r.db.errorClassificator.Classify(err); classification == Retryable {
			log.Warn().Str("func", "*exerciseRepository.SaveExercise").Msg("transient DB error while saving exercise")
		}

		return models.Exercise{}, fmt.Errorf("%w: %w", ErrExerciseNotSaved, err)
	}

	return saved, nil
}

// FindExercises returns the exercise entries matching the given filter,
// newest-insertion-last, truncated to limit when limit is positive.
//
// The SELECT is assembled dynamically by [buildFindExercisesQuery]: date
// bounds and the LIMIT clause appear only when requested, while the
// user-id predicate is always present.
func (r *exerciseRepository) FindExercises(ctx context.Context, filter models.LogFilter, limit int) ([]models.Exercise, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindExercisesQuery(ctx, filter, limit)
	if err != nil {
		log.Err(err).Str("func", "*exerciseRepository.FindExercises").Msg("error building exercise search query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*exerciseRepository.FindExercises").Str("user_id", filter.UserID).Msg("error executing exercise search query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	exercises := make([]models.Exercise, 0, 50)
	for rows.Next() {
		var exercise models.Exercise
		scanErr := rows.Scan(&exercise.ID, &exercise.UserID, &exercise.Description, &exercise.Duration, &exercise.Date, &exercise.CreatedAt)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*exerciseRepository.FindExercises").Msg("error scanning exercise row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		exercises = append(exercises, exercise)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*exerciseRepository.FindExercises").Msg("error iterating exercise rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return exercises, nil
}

// CountByUser returns the total number of exercise entries stored for the
// given user. The count deliberately ignores any date filter or limit: it
// reflects the full size of the user's history, not the slice returned by
// [FindExercises].
func (r *exerciseRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	row := r.db.QueryRowContext(ctx, countExercisesByUser, userID)
	if err := row.Scan(&count); err != nil {
		log.Err(err).Str("func", "*exerciseRepository.CountByUser").Str("user_id", userID).Msg("error counting exercises")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
