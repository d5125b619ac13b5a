package models

// ExerciseCreated is the response body of a successful exercise creation.
// The "_id" field carries the OWNING USER's id, matching the wire format of
// the original tracker API.
type ExerciseCreated struct {
	Username    string  `json:"username"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Date        string  `json:"date"`
	ID          string  `json:"_id"`
}

// LogEntry is a single rendered exercise inside an exercise log. Date is a
// human-readable calendar-date string (see [DateDisplayFormat]).
type LogEntry struct {
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Date        string  `json:"date"`
}

// ExerciseLog is the response body of GET /api/users/{id}/logs.
//
// Count deliberately reports the all-time number of entries for the user,
// independent of any date filter or limit applied to Log.
type ExerciseLog struct {
	Username string     `json:"username"`
	ID       string     `json:"_id"`
	Count    int        `json:"count"`
	Log      []LogEntry `json:"log"`
}

// ErrorResponse is the structured body used for not-found and unrecovered
// server failures.
type ErrorResponse struct {
	Error string `json:"error"`
}
