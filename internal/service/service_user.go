package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/store"
	"github.com/MKhiriev/go-fit-tracker/internal/validators"
	"github.com/MKhiriev/go-fit-tracker/models"
)

// userService is the concrete implementation of UserService.
// It validates registration input, assigns identifiers, and delegates
// persistence to a UserRepository.
type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	ids            IDGenerator

	logger *logger.Logger
}

// NewUserService constructs a UserService wired to the given repository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, validator validators.Validator, ids IDGenerator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		ids:            ids,
		logger:         logger,
	}
}

// CreateUser registers a new user account.
//
// The username is trimmed, validated, and persisted with a freshly generated
// id. Uniqueness is enforced by the database: a duplicate username surfaces
// as store.ErrUsernameAlreadyExists inside the returned error chain.
func (s *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, []models.ValidationFailure, error) {
	log := logger.FromContext(ctx)

	if failures := s.validator.ValidateCreateUser(ctx, req); len(failures) > 0 {
		log.Debug().Any("failures", failures).Msg("user creation rejected by validation")
		return models.User{}, failures, nil
	}

	user := models.User{
		ID:        s.ids.Generate(),
		Username:  strings.TrimSpace(req.Username),
		CreatedAt: time.Now().UTC(),
	}

	createdUser, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, nil, fmt.Errorf("%w: %w", ErrCreatingUser, err)
	}

	return createdUser, nil, nil
}

// ListUsers returns every registered user in insertion order.
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("listing users ended with error")
		return nil, fmt.Errorf("listing users ended with error: %w", err)
	}

	return users, nil
}
