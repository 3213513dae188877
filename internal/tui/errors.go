// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-eightball/internal/adapter"
	"github.com/MKhiriev/go-eightball/internal/service"
)

var (
	ErrAlreadyMounted = errors.New("ui is already mounted")
	ErrNotMounted     = errors.New("ui is not mounted")

	errNoScheduleID = errors.New("schedule has no id")
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrSessionExpired):
		return "Session expired, restart the client to sign in again"
	case errors.Is(err, service.ErrScheduleNotFound):
		return "Schedule no longer exists on the server"
	case errors.Is(err, adapter.ErrTransport):
		return "Network is down or the server is unreachable"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") {
		return "Network is down or the server is unreachable"
	}

	return err.Error()
}
