package models

import "time"

// Exercise represents a single exercise entry owned by exactly one user.
// Entries are created once and never updated or deleted.
type Exercise struct {
	// ID is the unique identifier of the entry (UUIDv7 string).
	ID string `json:"_id"`

	// UserID references the owning user. The reference is validated
	// against the users table at creation time and not re-validated
	// afterwards.
	UserID string `json:"user_id"`

	// Description is a non-empty free-text label for the exercise.
	Description string `json:"description"`

	// Duration is the exercise duration. Any value that parses as a
	// number is accepted; no range constraint is applied.
	Duration float64 `json:"duration"`

	// Date is the calendar date of the exercise. Defaults to the
	// write-time clock when the client omits it.
	Date time.Time `json:"date"`

	// CreatedAt is the insertion timestamp, used for stable ordering.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Exercise model.
func (e Exercise) TableName() string {
	return "exercises"
}
