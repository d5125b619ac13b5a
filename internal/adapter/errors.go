package adapter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fit-tracker/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)

// ValidationError carries the ordered failure list the server returns with
// an HTTP 400 response. It wraps [ErrBadRequest] so generic errors.Is checks
// keep working.
type ValidationError struct {
	Failures []models.ValidationFailure
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation rejected: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrBadRequest }
