package models

import "time"

// User represents a tracked account that owns exercise entries.
// Users are created on registration and are immutable afterwards; the
// application never updates or deletes them.
type User struct {
	// ID is the unique identifier of the user, generated by the
	// application as a UUIDv7 string. Rendered as "_id" on the wire to
	// stay compatible with existing tracker clients.
	ID string `json:"_id"`

	// Username is the display name of the user. Non-empty after
	// trimming; uniqueness is enforced by the storage layer.
	Username string `json:"username"`

	// CreatedAt is the timestamp when the account was created.
	// Used for stable list ordering and auditing.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
