package bootstrap

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyStarted = errors.New("bootstrap sequence already started")
	ErrNilMounter     = errors.New("mounter is required")
)

// StageError reports the stage at which the startup sequence failed. Stage is
// the state the sequencer was trying to reach, so a failed mount reports
// [StateMounted] even though the sequencer never entered it; the last
// transition before [StateFailed] is the previous stage.
type StageError struct {
	Stage State
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("bootstrap failed while %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
