package tui

import (
	"github.com/MKhiriev/go-eightball/internal/state"
	"github.com/MKhiriev/go-eightball/models"
)

type snapshotMsg struct {
	snapshot state.Snapshot
}

type refreshDoneMsg struct {
	err error
}

type savedMsg struct {
	schedule models.Schedule
	err      error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
