// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-eightball/internal/adapter"
	"github.com/MKhiriev/go-eightball/internal/logger"
	"github.com/MKhiriev/go-eightball/internal/store"
	"github.com/MKhiriev/go-eightball/models"
)

type scheduleService struct {
	backend adapter.BackendAdapter
	cache   store.ScheduleRepository

	logger *logger.Logger
}

func NewScheduleService(backend adapter.BackendAdapter, cache store.ScheduleRepository, log *logger.Logger) ScheduleService {
	return &scheduleService{
		backend: backend,
		cache:   cache,
		logger:  log,
	}
}

func (s *scheduleService) List(ctx context.Context) (ScheduleList, error) {
	res, err := s.backend.ListSchedules(ctx)
	if err != nil {
		return s.listFromCache(ctx, err)
	}
	if !res.OK() {
		return ScheduleList{}, mapAdapterError(res.Err())
	}

	items, err := models.DecodeSchedules(res.Body)
	if err != nil {
		return ScheduleList{}, fmt.Errorf("%w: %w", ErrUnexpectedPayload, err)
	}

	if err = s.cache.ReplaceAll(ctx, items); err != nil {
		s.logger.Warn().Err(err).
			Str("func", "scheduleService.List").
			Msg("failed to refresh local schedule cache")
	}

	return ScheduleList{Items: items}, nil
}

// listFromCache serves the cached list after a transport failure. The
// original error is returned when the caller gave up or the cache is empty.
func (s *scheduleService) listFromCache(ctx context.Context, transportErr error) (ScheduleList, error) {
	if !errors.Is(transportErr, adapter.ErrTransport) || ctx.Err() != nil {
		return ScheduleList{}, transportErr
	}

	cached, err := s.cache.GetAll(ctx)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("func", "scheduleService.listFromCache").
			Msg("failed to read local schedule cache")
		return ScheduleList{}, transportErr
	}
	if len(cached) == 0 {
		return ScheduleList{}, transportErr
	}

	s.logger.Info().
		Str("func", "scheduleService.listFromCache").
		Int("count", len(cached)).
		Msg("backend unreachable, serving cached schedules")

	return ScheduleList{Items: cached, FromCache: true}, nil
}

func (s *scheduleService) Update(ctx context.Context, scheduleID string, schedule models.Schedule) (models.Schedule, error) {
	if strings.TrimSpace(scheduleID) == "" {
		return nil, ErrEmptyScheduleID
	}

	res, err := s.backend.UpdateSchedule(ctx, scheduleID, schedule)
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return nil, mapAdapterError(res.Err())
	}

	saved := schedule
	if doc, decodeErr := models.DecodeDocument(res.Body); decodeErr == nil && len(doc) > 0 {
		saved = models.Schedule(doc)
	}

	if err = s.cache.Upsert(ctx, scheduleID, saved); err != nil {
		s.logger.Warn().Err(err).
			Str("func", "scheduleService.Update").
			Str("schedule_id", scheduleID).
			Msg("failed to cache updated schedule")
	}

	return saved, nil
}
