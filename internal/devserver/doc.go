// Package devserver holds the in-memory data behind the development
// backend: the remote configuration, the current user's profile, the
// schedule list and the issued session ids.
package devserver
