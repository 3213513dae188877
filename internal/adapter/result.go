// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Result is the outcome of a request that received a response. A 2xx status
// is the success variant; anything else is the HTTP-error variant, still
// carrying the status and raw payload.
type Result struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports whether the response status is 2xx.
func (r Result) OK() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Err returns nil for a 2xx result, otherwise an [*HTTPError] that matches
// the sentinel errors of this package via errors.Is.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return mapHTTPError(r.StatusCode, r.Body)
}

// Decode unmarshals the payload into v regardless of status.
func (r Result) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode response (status %d): %w", r.StatusCode, err)
	}
	return nil
}
