package store

import "github.com/MKhiriev/go-fit-tracker/internal/logger"

type Storages struct {
	UserRepository     UserRepository
	ExerciseRepository ExerciseRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		ExerciseRepository: NewExerciseRepository(db, logger),
	}
}
