// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the HTTP client used to talk to the eightball
// backend API.
//
// Every call that receives a response, whatever its status, yields a
// [Result]: callers branch on [Result.OK] or inspect [Result.Err] instead of
// handling two control-flow shapes. Only transport failures (no response at
// all: DNS, connection refused, cancelled context) come back as a non-nil
// error, always wrapping [ErrTransport].
//
// Requests carry cookies (the client owns a cookie jar), an X-Trace-ID
// header, and are attempted exactly once.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-eightball/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter defines communication with the eightball backend.
type BackendAdapter interface {
	// BaseURL returns the normalised API root every path is resolved against.
	BaseURL() string

	// FetchConfig issues GET /api/config.
	FetchConfig(ctx context.Context) (Result, error)

	// FetchProfile issues GET /api/user/profile.
	FetchProfile(ctx context.Context) (Result, error)

	// ListSchedules issues GET /api/8ball/schedules.
	ListSchedules(ctx context.Context) (Result, error)

	// UpdateSchedule issues POST /api/8ball/schedules/{scheduleID} with
	// schedule as the JSON body. Neither argument is validated.
	UpdateSchedule(ctx context.Context, scheduleID string, schedule models.Schedule) (Result, error)

	// Ping issues GET /api/ping.
	Ping(ctx context.Context) (Result, error)

	// Version issues GET /api/version.
	Version(ctx context.Context) (Result, error)
}
