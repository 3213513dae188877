package server

import "context"

// Server defines the lifecycle contract of the development backend.
//
// Implementations block in [Server.Run] until ctx is cancelled or the
// listener fails, and release resources in [Server.Shutdown].
type Server interface {
	// Run starts serving requests and blocks until the server stops.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown(ctx context.Context) error
}
