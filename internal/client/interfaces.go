// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-eightball/internal/bootstrap"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error

	// Close releases resources held by the client.
	Close() error
}

// UI is the mounted application. It is started by the bootstrap sequencer
// and then waited on until the user quits.
type UI interface {
	bootstrap.Mounter

	Wait() error
	Quit()
}
