package validators

import (
	"context"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/models"
)

// TrackerValidator is the production [Validator]. The users dependency backs
// the exercise user-id existence rule.
type TrackerValidator struct {
	users UserChecker
}

func NewTrackerValidator(users UserChecker) *TrackerValidator {
	return &TrackerValidator{users: users}
}

// ValidateCreateUser applies the username rule: non-empty after trimming.
func (v *TrackerValidator) ValidateCreateUser(ctx context.Context, req models.CreateUserRequest) []models.ValidationFailure {
	var failures []models.ValidationFailure

	if strings.TrimSpace(req.Username) == "" {
		failures = append(failures, models.ValidationFailure{
			Field:   models.FieldUsername,
			Message: models.MsgUsernameRequired,
		})
	}

	return failures
}

// ValidateCreateExercise applies the exercise rules in stable order:
// user id existence, description, duration, date. Failures accumulate; the
// rules never short-circuit each other.
//
// The date rule rejects a supplied-but-invalid date while treating an absent
// date as acceptable (it defaults at write time). This is deliberately
// asymmetric with the log-filter path, which silently drops invalid dates.
func (v *TrackerValidator) ValidateCreateExercise(ctx context.Context, req models.CreateExerciseRequest) ([]models.ValidationFailure, error) {
	log := logger.FromContext(ctx)

	var failures []models.ValidationFailure

	exists := false
	if req.UserID != "" {
		var err error
		exists, err = v.users.UserExists(ctx, req.UserID)
		if err != nil {
			log.Err(err).Str("func", "*TrackerValidator.ValidateCreateExercise").Str("user_id", req.UserID).Msg("error checking user existence")
			return nil, err
		}
	}
	if !exists {
		failures = append(failures, models.ValidationFailure{
			Field:   models.FieldUserID,
			Message: models.MsgUserIDInvalid,
		})
	}

	if strings.TrimSpace(req.Description) == "" {
		failures = append(failures, models.ValidationFailure{
			Field:   models.FieldDescription,
			Message: models.MsgDescriptionRequired,
		})
	}

	if _, err := strconv.ParseFloat(strings.TrimSpace(req.Duration), 64); err != nil {
		failures = append(failures, models.ValidationFailure{
			Field:   models.FieldDuration,
			Message: models.MsgDurationNotNumeric,
		})
	}

	if models.ParseDate(req.Date).Status == models.DateInvalid {
		failures = append(failures, models.ValidationFailure{
			Field:   models.FieldDate,
			Message: models.MsgDateInvalid,
		})
	}

	return failures, nil
}
