// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client's business logic on top of the
// backend adapter, the local schedule cache and the UI state store.
package service

import (
	"context"

	"github.com/MKhiriev/go-eightball/models"
)

// ScheduleList is a schedule list together with where it came from.
type ScheduleList struct {
	Items []models.Schedule
	// FromCache is set when the backend was unreachable and Items were read
	// from the local cache instead.
	FromCache bool
}

// ScheduleService reads and writes schedules through the backend, keeping
// the local cache in step.
type ScheduleService interface {
	// List fetches all schedules. A successful response replaces the local
	// cache. An HTTP error is returned mapped to this package's errors. A
	// transport failure falls back to the cache when it holds any rows.
	List(ctx context.Context) (ScheduleList, error)

	// Update posts schedule under scheduleID and caches the schedule the
	// backend returned (or the submitted one when the response carries no
	// object).
	Update(ctx context.Context, scheduleID string, schedule models.Schedule) (models.Schedule, error)
}

// ContextService keeps the UI state store populated.
type ContextService interface {
	// Init is the store-initialization action run once after mount. It
	// flags the store as loading for its duration.
	Init(ctx context.Context) error

	// Refresh reloads schedules into the store without touching the
	// loading flag.
	Refresh(ctx context.Context) error

	// Save updates one schedule and reflects the result in the store.
	Save(ctx context.Context, scheduleID string, schedule models.Schedule) (models.Schedule, error)
}

// StatusService queries the backend's health endpoints.
type StatusService interface {
	Ping(ctx context.Context) (models.PingStatus, error)
	Version(ctx context.Context) (models.ServerVersion, error)
}
