// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/store"
	"github.com/MKhiriev/go-fit-tracker/models"
)

// logService is the concrete implementation of LogService. It composes the
// user repository (existence check, username for the rendered view) with the
// exercise repository (filtered retrieval plus the all-time count).
type logService struct {
	exerciseRepository store.ExerciseRepository
	userRepository     store.UserRepository

	logger *logger.Logger
}

func NewLogService(exerciseRepository store.ExerciseRepository, userRepository store.UserRepository, logger *logger.Logger) LogService {
	return &logService{
		exerciseRepository: exerciseRepository,
		userRepository:     userRepository,
		logger:             logger,
	}
}

// GetLog retrieves a user's exercise log.
//
// The user is resolved first; an unknown id short-circuits with
// store.ErrNoUserWasFound before any exercise query runs. The optional
// from/to/limit parameters narrow the returned entries only — Count always
// reports the user's all-time entry total.
//
// Malformed query parameters never fail the request: an unparsable date
// bound or limit is dropped (with a debug-level diagnostic) and retrieval
// proceeds as if it was never supplied.
func (s *logService) GetLog(ctx context.Context, req models.LogRequest) (models.ExerciseLog, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByID(ctx, req.UserID)
	if err != nil {
		log.Err(err).Str("user_id", req.UserID).Msg("resolving log owner ended with error")
		return models.ExerciseLog{}, fmt.Errorf("%w: %w", ErrGettingLog, err)
	}

	filter := s.buildLogFilter(ctx, req)
	limit := s.parseLimit(ctx, req.Limit)

	exercises, err := s.exerciseRepository.FindExercises(ctx, filter, limit)
	if err != nil {
		log.Err(err).Str("user_id", req.UserID).Msg("retrieving exercises ended with error")
		return models.ExerciseLog{}, fmt.Errorf("%w: %w", ErrGettingLog, err)
	}

	count, err := s.exerciseRepository.CountByUser(ctx, req.UserID)
	if err != nil {
		log.Err(err).Str("user_id", req.UserID).Msg("counting exercises ended with error")
		return models.ExerciseLog{}, fmt.Errorf("%w: %w", ErrGettingLog, err)
	}

	entries := make([]models.LogEntry, 0, len(exercises))
	for _, exercise := range exercises {
		entries = append(entries, models.LogEntry{
			Description: exercise.Description,
			Duration:    exercise.Duration,
			Date:        exercise.Date.Format(models.DateDisplayFormat),
		})
	}

	return models.ExerciseLog{
		Username: user.Username,
		ID:       user.ID,
		Count:    count,
		Log:      entries,
	}, nil
}

// buildLogFilter converts the raw from/to query parameters into a
// models.LogFilter. Absent and invalid values alike contribute no bound;
// invalid ones additionally leave a debug-level diagnostic.
func (s *logService) buildLogFilter(ctx context.Context, req models.LogRequest) models.LogFilter {
	log := logger.FromContext(ctx)

	filter := models.LogFilter{UserID: req.UserID}

	if parsed := models.ParseDate(strings.TrimSpace(req.From)); parsed.Status == models.DateValid {
		filter.From = &parsed.Time
	} else if parsed.Status == models.DateInvalid {
		log.Debug().Str("from", req.From).Msg("dropping unparsable 'from' date bound")
	}

	if parsed := models.ParseDate(strings.TrimSpace(req.To)); parsed.Status == models.DateValid {
		filter.To = &parsed.Time
	} else if parsed.Status == models.DateInvalid {
		log.Debug().Str("to", req.To).Msg("dropping unparsable 'to' date bound")
	}

	return filter
}

// parseLimit converts the raw limit query parameter into a result cap.
// Absent, unparsable and non-positive values all mean "no cap" (returned as
// zero); the latter two leave a debug-level diagnostic.
func (s *logService) parseLimit(ctx context.Context, raw string) int {
	log := logger.FromContext(ctx)

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0
	}

	limit, err := strconv.Atoi(trimmed)
	if err != nil {
		log.Debug().Str("limit", raw).Msg("dropping unparsable limit")
		return 0
	}
	if limit <= 0 {
		log.Debug().Int("limit", limit).Msg("dropping non-positive limit")
		return 0
	}

	return limit
}
