package models

import "time"

// LogFilter is the immutable predicate used to select a user's exercise
// entries. The user bound is mandatory; either date bound may be nil, in
// which case no constraint is applied on that side. Both bounds are
// inclusive.
type LogFilter struct {
	UserID string
	From   *time.Time
	To     *time.Time
}
