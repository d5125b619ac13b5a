package service

import "errors"

var (
	ErrCreatingUser     = errors.New("user creation ended with error")
	ErrCreatingExercise = errors.New("exercise creation ended with error")
	ErrGettingLog       = errors.New("getting exercise log ended with error")
)
