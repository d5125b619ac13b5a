package service

import (
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/store"
	"github.com/MKhiriev/go-fit-tracker/internal/utils"
	"github.com/MKhiriev/go-fit-tracker/internal/validators"
)

type Services struct {
	UserService     UserService
	ExerciseService ExerciseService
	LogService      LogService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	validator := validators.NewTrackerValidator(storages.UserRepository)
	ids := utils.NewUUIDGenerator()

	return &Services{
		UserService:     NewUserService(storages.UserRepository, validator, ids, logger),
		ExerciseService: NewExerciseService(storages.ExerciseRepository, storages.UserRepository, validator, ids, logger),
		LogService:      NewLogService(storages.ExerciseRepository, storages.UserRepository, logger),
	}
}
