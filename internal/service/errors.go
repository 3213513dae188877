package service

import "errors"

var (
	ErrScheduleNotFound  = errors.New("schedule not found")
	ErrSessionExpired    = errors.New("session is missing or expired")
	ErrAccessDenied      = errors.New("access denied")
	ErrInvalidSchedule   = errors.New("schedule rejected by backend")
	ErrUnexpectedPayload = errors.New("unexpected payload from backend")
	ErrEmptyScheduleID   = errors.New("schedule id is empty")
)
