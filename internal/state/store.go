// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-eightball/models"
)

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Loading             bool
	Ready               bool
	Schedules           []models.Schedule
	FromCache           bool // schedules came from the local cache, not the backend
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline returns true when the backend has been unreachable for multiple
// refreshes in a row.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	apiBaseURL string

	mu       sync.RWMutex
	snapshot Snapshot
}

// NewStore returns an empty store for the backend rooted at apiBaseURL.
func NewStore(apiBaseURL string) *Store {
	return &Store{apiBaseURL: apiBaseURL}
}

// APIBaseURL is the root all schedule requests are resolved against.
func (s *Store) APIBaseURL() string {
	return s.apiBaseURL
}

// LoadingStart marks the beginning of a load.
func (s *Store) LoadingStart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Loading = true
}

// LoadingComplete marks the end of a load. The store counts as ready from
// then on, whether or not the load succeeded.
func (s *Store) LoadingComplete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Loading = false
	s.snapshot.Ready = true
}

// SetSchedules replaces the schedule list and clears the last error.
func (s *Store) SetSchedules(schedules []models.Schedule, fromCache bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Schedules = cloneSchedules(schedules)
	s.snapshot.FromCache = fromCache
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	if fromCache {
		s.snapshot.ConsecutiveFailures++
	} else {
		s.snapshot.ConsecutiveFailures = 0
	}
}

// SetError records a failed load. Previously loaded schedules are kept.
func (s *Store) SetError(err error) {
	if err == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastError = err
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures++
}

// UpsertSchedule replaces the schedule with the given id, or appends it. The
// store keeps its own copy of schedule.
func (s *Store) UpsertSchedule(scheduleID string, schedule models.Schedule) {
	schedule = models.Schedule(models.Document(schedule).Clone())

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.snapshot.Schedules {
		if existing.ID() == scheduleID {
			s.snapshot.Schedules[i] = schedule
			return
		}
	}
	s.snapshot.Schedules = append(s.snapshot.Schedules, schedule)
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Schedules = cloneSchedules(s.snapshot.Schedules)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneSchedules(items []models.Schedule) []models.Schedule {
	if len(items) == 0 {
		return nil
	}
	dup := make([]models.Schedule, len(items))
	for i, item := range items {
		dup[i] = models.Schedule(models.Document(item).Clone())
	}
	return dup
}
