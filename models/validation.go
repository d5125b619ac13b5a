package models

// ValidationFailure describes a single failed input rule. Create operations
// return the full ordered list of failures instead of aborting on the first
// one; an empty list means the input passed.
type ValidationFailure struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validation failure messages, kept byte-for-byte compatible with the
// messages existing tracker clients already display.
const (
	MsgUsernameRequired    = "Please specify a username"
	MsgUserIDInvalid       = "Please enter a valid User ID"
	MsgDescriptionRequired = "Please enter a description"
	MsgDurationNotNumeric  = "Please enter a number"
	MsgDateInvalid         = "Must enter valid date"
)

// Field names used in validation failure descriptors.
const (
	FieldUsername    = "username"
	FieldUserID      = "user_id"
	FieldDescription = "description"
	FieldDuration    = "duration"
	FieldDate        = "date"
)
