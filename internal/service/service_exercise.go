package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/store"
	"github.com/MKhiriev/go-fit-tracker/internal/validators"
	"github.com/MKhiriev/go-fit-tracker/models"
)

// exerciseService is the concrete implementation of ExerciseService.
// It validates exercise input, resolves the owning user, and persists the
// entry through an ExerciseRepository.
type exerciseService struct {
	exerciseRepository store.ExerciseRepository
	userRepository     store.UserRepository
	validator          validators.Validator
	ids                IDGenerator

	logger *logger.Logger
}

func NewExerciseService(
	exerciseRepository store.ExerciseRepository,
	userRepository store.UserRepository,
	validator validators.Validator,
	ids IDGenerator,
	logger *logger.Logger,
) ExerciseService {
	return &exerciseService{
		exerciseRepository: exerciseRepository,
		userRepository:     userRepository,
		validator:          validator,
		ids:                ids,
		logger:             logger,
	}
}

// CreateExercise validates and persists a new exercise entry.
//
// An absent date defaults to the current day at write time. The returned
// view is rendered against the owning user: its "_id" field carries the
// USER's id, and the date is formatted with models.DateDisplayFormat.
func (s *exerciseService) CreateExercise(ctx context.Context, req models.CreateExerciseRequest) (models.ExerciseCreated, []models.ValidationFailure, error) {
	log := logger.FromContext(ctx)

	failures, err := s.validator.ValidateCreateExercise(ctx, req)
	if err != nil {
		return models.ExerciseCreated{}, nil, fmt.Errorf("%w: %w", ErrCreatingExercise, err)
	}
	if len(failures) > 0 {
		log.Debug().Any("failures", failures).Str("user_id", req.UserID).Msg("exercise creation rejected by validation")
		return models.ExerciseCreated{}, failures, nil
	}

	// Validation guarantees the duration parses and the date, when
	// supplied, is well-formed.
	duration, err := strconv.ParseFloat(strings.TrimSpace(req.Duration), 64)
	if err != nil {
		return models.ExerciseCreated{}, nil, fmt.Errorf("%w: parsing duration: %w", ErrCreatingExercise, err)
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if parsed := models.ParseDate(strings.TrimSpace(req.Date)); parsed.Status == models.DateValid {
		date = parsed.Time
	}

	exercise := models.Exercise{
		ID:          s.ids.Generate(),
		UserID:      req.UserID,
		Description: strings.TrimSpace(req.Description),
		Duration:    duration,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}

	saved, err := s.exerciseRepository.SaveExercise(ctx, exercise)
	if err != nil {
		log.Err(err).Str("user_id", req.UserID).Msg("exercise creation ended with error")
		return models.ExerciseCreated{}, nil, fmt.Errorf("%w: %w", ErrCreatingExercise, err)
	}

	owner, err := s.userRepository.FindUserByID(ctx, saved.UserID)
	if err != nil {
		log.Err(err).Str("user_id", saved.UserID).Msg("resolving exercise owner ended with error")
		return models.ExerciseCreated{}, nil, fmt.Errorf("%w: %w", ErrCreatingExercise, err)
	}

	return models.ExerciseCreated{
		Username:    owner.Username,
		Description: saved.Description,
		Duration:    saved.Duration,
		Date:        saved.Date.Format(models.DateDisplayFormat),
		ID:          owner.ID,
	}, nil, nil
}
