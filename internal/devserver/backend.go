// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package devserver

import (
	"maps"
	"sync"

	"github.com/MKhiriev/go-eightball/models"
	"github.com/google/uuid"
)

// Backend is a concurrency-safe in-memory eightball backend.
type Backend struct {
	version string

	mu        sync.RWMutex
	config    models.RemoteConfig
	profile   models.UserProfile
	schedules []models.Schedule
	sessions  map[string]struct{}
}

func NewBackend(f Fixtures, version string) *Backend {
	schedules := make([]models.Schedule, len(f.Schedules))
	for i, s := range f.Schedules {
		schedules[i] = models.Schedule(models.Document(s).Clone())
	}

	return &Backend{
		version:   version,
		config:    models.RemoteConfig(models.Document(f.Config).Clone()),
		profile:   models.UserProfile(models.Document(f.Profile).Clone()),
		schedules: schedules,
		sessions:  make(map[string]struct{}),
	}
}

func (b *Backend) Config() models.RemoteConfig {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return models.RemoteConfig(models.Document(b.config).Clone())
}

func (b *Backend) Profile() models.UserProfile {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return models.UserProfile(models.Document(b.profile).Clone())
}

func (b *Backend) Version() string {
	return b.version
}

// Schedules returns a copy of the schedule list.
func (b *Backend) Schedules() []models.Schedule {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]models.Schedule, len(b.schedules))
	for i, s := range b.schedules {
		out[i] = models.Schedule(models.Document(s).Clone())
	}
	return out
}

// UpdateSchedule merges patch into the schedule with the given id and
// returns the result. The id field itself cannot be changed.
func (b *Backend) UpdateSchedule(scheduleID string, patch models.Schedule) (models.Schedule, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.schedules {
		if s.ID() != scheduleID {
			continue
		}

		merged := models.Schedule(models.Document(s).Clone())
		maps.Copy(merged, patch)
		merged["id"] = s["id"]

		b.schedules[i] = merged
		return models.Schedule(models.Document(merged).Clone()), nil
	}

	return nil, ErrScheduleNotFound
}

// NewSession issues a session id.
func (b *Backend) NewSession() string {
	id := uuid.NewString()

	b.mu.Lock()
	defer b.mu.Unlock()
	b.sessions[id] = struct{}{}
	return id
}

// ValidSession reports whether id was issued by this backend.
func (b *Backend) ValidSession(id string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.sessions[id]
	return ok
}
