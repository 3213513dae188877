// Package http implements the HTTP transport of the development backend.
//
// It exposes the same endpoints the eightball client consumes, backed by an
// in-memory [devserver.Backend]. Request tracing, access logging and the
// optional session check are handled by middleware in this package.
package http
