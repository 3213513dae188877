// Package server runs the development backend's HTTP listener.
//
// It owns the listener lifecycle: startup, cancellation through the caller's
// context and graceful shutdown with a bounded drain period.
package server
