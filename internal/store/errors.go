package store

import "errors"

var (
	// ErrScheduleNotFound is returned when a schedule is not in the local
	// cache.
	ErrScheduleNotFound = errors.New("schedule is not found in local cache")
)
