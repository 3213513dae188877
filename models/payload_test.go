// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDocument(t *testing.T) {
	doc, err := DecodeDocument([]byte(`{"theme":"dark","n":7}`))
	require.NoError(t, err)
	assert.Equal(t, Document{"theme": "dark", "n": float64(7)}, doc)

	doc, err = DecodeDocument([]byte(`null`))
	require.NoError(t, err)
	assert.Empty(t, doc)
	assert.NotNil(t, doc)

	_, err = DecodeDocument([]byte(`[1,2]`))
	assert.Error(t, err)
}

func TestDocument_String(t *testing.T) {
	doc := Document{"s": "x", "f": float64(7), "b": true}
	assert.Equal(t, "x", doc.String("s"))
	assert.Equal(t, "7", doc.String("f"))
	assert.Empty(t, doc.String("b"))
	assert.Empty(t, doc.String("missing"))
}

func TestDocument_CloneIsIndependent(t *testing.T) {
	doc := Document{"a": "1"}
	cp := doc.Clone()
	cp["a"] = "2"
	assert.Equal(t, "1", doc["a"])
	assert.Nil(t, Document(nil).Clone())
}

func TestDocument_CloneCopiesNestedValues(t *testing.T) {
	doc := Document{
		"features": map[string]any{"x": true},
		"tags":     []any{"a", map[string]any{"k": "v"}},
		"schedule": Schedule{"id": "s"},
	}

	cp := doc.Clone()
	cp["features"].(map[string]any)["x"] = false
	cp["tags"].([]any)[0] = "changed"
	cp["tags"].([]any)[1].(map[string]any)["k"] = "changed"
	cp["schedule"].(Schedule)["id"] = "changed"

	assert.Equal(t, true, doc["features"].(map[string]any)["x"])
	assert.Equal(t, "a", doc["tags"].([]any)[0])
	assert.Equal(t, "v", doc["tags"].([]any)[1].(map[string]any)["k"])
	assert.Equal(t, "s", doc["schedule"].(Schedule).ID())
}

func TestUserProfile_DisplayName(t *testing.T) {
	assert.Equal(t, "Ada", UserProfile{"name": "Ada", "id": float64(7)}.DisplayName())
	assert.Equal(t, "7", UserProfile{"id": float64(7)}.DisplayName())
	assert.Equal(t, "anonymous", UserProfile{}.DisplayName())
}

func TestSchedule_IDAndName(t *testing.T) {
	s := Schedule{"id": "abc"}
	assert.Equal(t, "abc", s.ID())
	assert.Equal(t, "abc", s.Name())

	s["name"] = "nightly"
	assert.Equal(t, "nightly", s.Name())
}

func TestDecodeSchedules(t *testing.T) {
	list, err := DecodeSchedules([]byte(`[{"id":"a"},{"id":"b"}]`))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[1].ID())

	list, err = DecodeSchedules([]byte(`{"schedules":[{"id":"c"}]}`))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "c", list[0].ID())

	list, err = DecodeSchedules([]byte(` [] `))
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestDecodeSchedules_RejectsNonLists(t *testing.T) {
	bodies := []string{
		`"nope"`,
		`null`,
		``,
		`{"error":"maintenance"}`,
		`{"schedules":null}`,
		`{"schedules":{"id":"a"}}`,
		`[1,2]`,
		`{`,
	}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			list, err := DecodeSchedules([]byte(body))
			assert.ErrorIs(t, err, ErrNotScheduleList)
			assert.Nil(t, list)
		})
	}
}

func TestAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")
	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "version N/A (N/A, 2026-01-01)", info.String())
	assert.Equal(t, "N/A", AppBuildInfo{}.BuildCommit())
}
