// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the client's local schedule cache on SQLite.
//
// The cache keeps the last schedule list received from the backend so the
// terminal UI still has something to show when the backend cannot be
// reached. Schedules are stored as opaque JSON documents keyed by their id.
package store

import (
	"context"

	"github.com/MKhiriev/go-eightball/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ScheduleRepository is the local schedule cache.
type ScheduleRepository interface {
	// ReplaceAll atomically swaps the cached list for schedules, keeping
	// their order.
	ReplaceAll(ctx context.Context, schedules []models.Schedule) error

	// Upsert stores schedule under scheduleID, appending it when new.
	Upsert(ctx context.Context, scheduleID string, schedule models.Schedule) error

	// GetAll returns the cached schedules in list order.
	GetAll(ctx context.Context) ([]models.Schedule, error)

	// Get returns one cached schedule or [ErrScheduleNotFound].
	Get(ctx context.Context, scheduleID string) (models.Schedule, error)
}
