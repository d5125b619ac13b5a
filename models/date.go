// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DateDisplayFormat renders calendar dates the way tracker clients expect
// them: a human-readable string such as "Mon Jan 02 2006", not a machine
// timestamp.
const DateDisplayFormat = "Mon Jan 02 2006"

// dateLayouts are the calendar-date layouts accepted from clients, both in
// request bodies and in log filters.
var dateLayouts = []string{"2006-01-02", "2006/01/02"}

// DateStatus tags the outcome of parsing a raw client-supplied date string.
type DateStatus int

const (
	// DateAbsent means no value was supplied at all (empty string).
	DateAbsent DateStatus = iota

	// DateInvalid means a value was supplied but it is not a valid
	// calendar date in any accepted layout.
	DateInvalid

	// DateValid means the value parsed successfully; Time holds the result.
	DateValid
)

// DateValue is the tagged result of [ParseDate]. Distinguishing Absent from
// Invalid matters: exercise-creation validation rejects Invalid (but not
// Absent), while log filters treat both as "no bound".
type DateValue struct {
	Status DateStatus
	Time   time.Time
}

// ParseDate parses a raw date string from a request into a [DateValue].
// An empty string yields DateAbsent; a non-empty string that matches none of
// the accepted layouts yields DateInvalid.
func ParseDate(raw string) DateValue {
	if raw == "" {
		return DateValue{Status: DateAbsent}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return DateValue{Status: DateValid, Time: t}
		}
	}

	return DateValue{Status: DateInvalid}
}
