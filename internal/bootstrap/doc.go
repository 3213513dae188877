// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bootstrap implements the client's startup sequence.
//
// The [Sequencer] fetches the remote configuration, then the current user's
// profile, then mounts the application and finally runs the state-store
// initialization:
//
//	uninitialized → configuring → authenticating → mounted → store-initializing → ready
//
// Every stage either succeeds or moves the sequencer to [StateFailed] and
// returns a [*StageError]; the sequence never stalls silently. Stages are
// strictly ordered and never retried. No stage has a timeout: a request that
// never answers blocks Run until the caller cancels its context.
//
// The fetched configuration and profile are not stored globally. They are
// returned in an immutable [AppContext] which the mounted application
// receives by injection.
package bootstrap
