// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrNotScheduleList is returned by [DecodeSchedules] when the body is not a
// schedule array or a {"schedules": [...]} envelope.
var ErrNotScheduleList = errors.New("body is not a schedule list")

// Document is an opaque JSON object owned by the backend. The client never
// validates its structure; typed readers only peek at well-known keys.
type Document map[string]any

// DecodeDocument parses body as a JSON object. A JSON null decodes to an
// empty document.
func DecodeDocument(body []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode json object: %w", err)
	}
	if doc == nil {
		doc = Document{}
	}
	return doc, nil
}

// Clone returns a deep copy of d. Nested objects and arrays are copied too,
// so the clone shares no mutable state with d.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		return map[string]any(Document(v).Clone())
	case Document:
		return v.Clone()
	case RemoteConfig:
		return RemoteConfig(Document(v).Clone())
	case UserProfile:
		return UserProfile(Document(v).Clone())
	case Schedule:
		return Schedule(Document(v).Clone())
	case []any:
		if v == nil {
			return v
		}
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

// String returns the value stored under key when it is a string or a number.
func (d Document) String(key string) string {
	switch v := d[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}

// RemoteConfig is the configuration object fetched once at startup from
// GET /api/config.
type RemoteConfig Document

// Theme returns the UI theme name advertised by the backend, if any.
func (c RemoteConfig) Theme() string {
	return Document(c).String("theme")
}

// UserProfile is the current-user payload fetched from GET /api/user/profile.
type UserProfile Document

// DisplayName picks the most human-friendly identifier present in the
// profile, falling back to the uid / id fields.
func (p UserProfile) DisplayName() string {
	doc := Document(p)
	for _, k := range []string{"name", "firstName", "uid", "id"} {
		if v := doc.String(k); v != "" {
			return v
		}
	}
	return "anonymous"
}

// Schedule is a single magic eight ball schedule as returned by the backend.
type Schedule Document

// ID returns the schedule identifier ("id" field).
func (s Schedule) ID() string {
	return Document(s).String("id")
}

// Name returns a label for the schedule, falling back to its id.
func (s Schedule) Name() string {
	doc := Document(s)
	for _, k := range []string{"name", "title"} {
		if v := doc.String(k); v != "" {
			return v
		}
	}
	return s.ID()
}

// DecodeSchedules parses a schedule list response. The backend returns a
// JSON array; a {"schedules": [...]} envelope is tolerated as well. Anything
// else, including null and objects without a schedules array, is
// [ErrNotScheduleList].
func DecodeSchedules(body []byte) ([]Schedule, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, ErrNotScheduleList
	}

	switch trimmed[0] {
	case '[':
		list := []Schedule{}
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotScheduleList, err)
		}
		return list, nil

	case '{':
		var envelope struct {
			Schedules json.RawMessage `json:"schedules"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotScheduleList, err)
		}
		inner := bytes.TrimSpace(envelope.Schedules)
		if len(inner) == 0 || inner[0] != '[' {
			return nil, ErrNotScheduleList
		}
		return DecodeSchedules(inner)
	}

	return nil, ErrNotScheduleList
}
