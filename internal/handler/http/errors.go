// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNoSession is reported when a protected route is called without a
	// valid session cookie.
	ErrNoSession = errors.New("missing or unknown session cookie")

	// ErrBodyNotObject is reported when an update body is not a JSON object.
	ErrBodyNotObject = errors.New("request body must be a JSON object")

	// ErrBodyTooLarge is reported when an update body exceeds the size limit.
	ErrBodyTooLarge = errors.New("request body is too large")
)
