package models

// CreateUserRequest carries the raw input of POST /api/users.
type CreateUserRequest struct {
	Username string `json:"username"`
}

// CreateExerciseRequest carries the raw input of
// POST /api/users/{id}/exercises. Duration and Date arrive as strings
// (the endpoint accepts form-encoded bodies) and are parsed during
// validation.
type CreateExerciseRequest struct {
	UserID      string `json:"-"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Date        string `json:"date"`
}

// LogRequest carries the raw query input of GET /api/users/{id}/logs.
// From, To and Limit are optional; see the service layer for how invalid
// values are treated.
type LogRequest struct {
	UserID string
	From   string
	To     string
	Limit  string
}
