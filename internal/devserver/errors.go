package devserver

import "errors"

var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrInvalidFixtures  = errors.New("invalid fixtures file")
)
