// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-eightball/internal/adapter"
	"github.com/MKhiriev/go-eightball/internal/logger"
	"github.com/MKhiriev/go-eightball/internal/mock"
	"github.com/MKhiriev/go-eightball/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestScheduleSvc(t *testing.T) (*scheduleService, *mock.MockBackendAdapter, *mock.MockScheduleRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendAdapter(ctrl)
	repo := mock.NewMockScheduleRepository(ctrl)

	svc := NewScheduleService(backend, repo, logger.Nop()).(*scheduleService)
	return svc, backend, repo
}

func result(status int, body string) adapter.Result {
	return adapter.Result{StatusCode: status, Body: []byte(body)}
}

var transportErr = fmt.Errorf("%w: list schedules request: connection refused", adapter.ErrTransport)

// ── List ─────────────────────────────────────────────────────────────────────

func TestScheduleService_List_Success(t *testing.T) {
	svc, backend, repo := newTestScheduleSvc(t)
	ctx := context.Background()

	want := []models.Schedule{{"id": "a"}, {"id": "b"}}
	backend.EXPECT().ListSchedules(ctx).Return(result(http.StatusOK, `[{"id":"a"},{"id":"b"}]`), nil)
	repo.EXPECT().ReplaceAll(ctx, want).Return(nil)

	got, err := svc.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, got.Items)
	assert.False(t, got.FromCache)
}

func TestScheduleService_List_CacheWriteFailureIsNotFatal(t *testing.T) {
	svc, backend, repo := newTestScheduleSvc(t)
	ctx := context.Background()

	backend.EXPECT().ListSchedules(ctx).Return(result(http.StatusOK, `{"schedules":[{"id":"a"}]}`), nil)
	repo.EXPECT().ReplaceAll(ctx, gomock.Any()).Return(errors.New("disk full"))

	got, err := svc.List(ctx)

	require.NoError(t, err)
	assert.Len(t, got.Items, 1)
}

func TestScheduleService_List_HTTPErrors(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{http.StatusNotFound, ErrScheduleNotFound},
		{http.StatusUnauthorized, ErrSessionExpired},
		{http.StatusForbidden, ErrAccessDenied},
		{http.StatusBadRequest, ErrInvalidSchedule},
		{http.StatusInternalServerError, adapter.ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			svc, backend, _ := newTestScheduleSvc(t)
			backend.EXPECT().ListSchedules(gomock.Any()).Return(result(tt.status, `nope`), nil)

			_, err := svc.List(context.Background())

			assert.ErrorIs(t, err, tt.wantErr)
			var httpErr *adapter.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, tt.status, httpErr.StatusCode)
		})
	}
}

func TestScheduleService_List_UnexpectedPayload(t *testing.T) {
	svc, backend, _ := newTestScheduleSvc(t)
	backend.EXPECT().ListSchedules(gomock.Any()).Return(result(http.StatusOK, `"nope"`), nil)

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, ErrUnexpectedPayload)
}

func TestScheduleService_List_NonListBodyKeepsCache(t *testing.T) {
	bodies := []string{`{"error":"maintenance"}`, `null`, `{"schedules":null}`}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			svc, backend, repo := newTestScheduleSvc(t)

			backend.EXPECT().ListSchedules(gomock.Any()).Return(result(http.StatusOK, body), nil)
			repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Times(0)

			got, err := svc.List(context.Background())

			assert.ErrorIs(t, err, ErrUnexpectedPayload)
			assert.ErrorIs(t, err, models.ErrNotScheduleList)
			assert.Empty(t, got.Items)
		})
	}
}

func TestScheduleService_List_EmptyArrayClearsCache(t *testing.T) {
	svc, backend, repo := newTestScheduleSvc(t)
	ctx := context.Background()

	backend.EXPECT().ListSchedules(ctx).Return(result(http.StatusOK, `[]`), nil)
	repo.EXPECT().ReplaceAll(ctx, []models.Schedule{}).Return(nil)

	got, err := svc.List(ctx)

	require.NoError(t, err)
	assert.Empty(t, got.Items)
}

func TestScheduleService_List_TransportFailureServesCache(t *testing.T) {
	svc, backend, repo := newTestScheduleSvc(t)
	ctx := context.Background()

	cached := []models.Schedule{{"id": "a"}}
	backend.EXPECT().ListSchedules(ctx).Return(adapter.Result{}, transportErr)
	repo.EXPECT().GetAll(ctx).Return(cached, nil)

	got, err := svc.List(ctx)

	require.NoError(t, err)
	assert.True(t, got.FromCache)
	assert.Equal(t, cached, got.Items)
}

func TestScheduleService_List_TransportFailureEmptyCache(t *testing.T) {
	svc, backend, repo := newTestScheduleSvc(t)
	ctx := context.Background()

	backend.EXPECT().ListSchedules(ctx).Return(adapter.Result{}, transportErr)
	repo.EXPECT().GetAll(ctx).Return(nil, nil)

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, adapter.ErrTransport)
}

func TestScheduleService_List_TransportFailureCacheError(t *testing.T) {
	svc, backend, repo := newTestScheduleSvc(t)
	ctx := context.Background()

	backend.EXPECT().ListSchedules(ctx).Return(adapter.Result{}, transportErr)
	repo.EXPECT().GetAll(ctx).Return(nil, errors.New("locked"))

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, adapter.ErrTransport)
}

func TestScheduleService_List_CancelledSkipsCache(t *testing.T) {
	svc, backend, _ := newTestScheduleSvc(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	backend.EXPECT().ListSchedules(ctx).Return(adapter.Result{}, transportErr)

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, adapter.ErrTransport)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestScheduleService_Update_CachesBackendResponse(t *testing.T) {
	svc, backend, repo := newTestScheduleSvc(t)
	ctx := context.Background()

	sent := models.Schedule{"foo": 1}
	returned := models.Schedule{"id": "abc", "foo": float64(1)}

	backend.EXPECT().UpdateSchedule(ctx, "abc", sent).Return(result(http.StatusOK, `{"id":"abc","foo":1}`), nil)
	repo.EXPECT().Upsert(ctx, "abc", returned).Return(nil)

	got, err := svc.Update(ctx, "abc", sent)

	require.NoError(t, err)
	assert.Equal(t, returned, got)
}

func TestScheduleService_Update_EmptyBodyCachesSubmitted(t *testing.T) {
	svc, backend, repo := newTestScheduleSvc(t)
	ctx := context.Background()

	sent := models.Schedule{"foo": 1}
	backend.EXPECT().UpdateSchedule(ctx, "abc", sent).Return(result(http.StatusNoContent, ``), nil)
	repo.EXPECT().Upsert(ctx, "abc", sent).Return(nil)

	got, err := svc.Update(ctx, "abc", sent)

	require.NoError(t, err)
	assert.Equal(t, sent, got)
}

func TestScheduleService_Update_NotFound(t *testing.T) {
	svc, backend, _ := newTestScheduleSvc(t)
	backend.EXPECT().UpdateSchedule(gomock.Any(), "zzz", gomock.Any()).Return(result(http.StatusNotFound, ``), nil)

	_, err := svc.Update(context.Background(), "zzz", models.Schedule{})
	assert.ErrorIs(t, err, ErrScheduleNotFound)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
}

func TestScheduleService_Update_TransportFailure(t *testing.T) {
	svc, backend, _ := newTestScheduleSvc(t)
	backend.EXPECT().UpdateSchedule(gomock.Any(), "abc", gomock.Any()).Return(adapter.Result{}, transportErr)

	_, err := svc.Update(context.Background(), "abc", models.Schedule{})
	assert.ErrorIs(t, err, adapter.ErrTransport)
}

func TestScheduleService_Update_EmptyID(t *testing.T) {
	svc, _, _ := newTestScheduleSvc(t)

	_, err := svc.Update(context.Background(), "  ", models.Schedule{})
	assert.ErrorIs(t, err, ErrEmptyScheduleID)
}

func TestScheduleService_Update_CacheFailureIsNotFatal(t *testing.T) {
	svc, backend, repo := newTestScheduleSvc(t)
	backend.EXPECT().UpdateSchedule(gomock.Any(), "abc", gomock.Any()).Return(result(http.StatusOK, `{"id":"abc"}`), nil)
	repo.EXPECT().Upsert(gomock.Any(), "abc", gomock.Any()).Return(errors.New("readonly"))

	got, err := svc.Update(context.Background(), "abc", models.Schedule{})
	require.NoError(t, err)
	assert.Equal(t, "abc", got.ID())
}

// ── mapAdapterError ──────────────────────────────────────────────────────────

func TestMapAdapterError(t *testing.T) {
	assert.NoError(t, mapAdapterError(nil))

	other := errors.New("other")
	assert.Same(t, other, mapAdapterError(other))

	assert.ErrorIs(t, mapAdapterError(adapter.ErrConflict), ErrInvalidSchedule)
}
