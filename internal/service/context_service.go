package service

import (
	"context"

	"github.com/MKhiriev/go-eightball/internal/logger"
	"github.com/MKhiriev/go-eightball/internal/state"
	"github.com/MKhiriev/go-eightball/models"
)

type contextService struct {
	schedules ScheduleService
	store     *state.Store

	logger *logger.Logger
}

func NewContextService(schedules ScheduleService, st *state.Store, log *logger.Logger) ContextService {
	return &contextService{
		schedules: schedules,
		store:     st,
		logger:    log,
	}
}

func (s *contextService) Init(ctx context.Context) error {
	s.store.LoadingStart()
	defer s.store.LoadingComplete()

	return s.Refresh(ctx)
}

func (s *contextService) Refresh(ctx context.Context) error {
	list, err := s.schedules.List(ctx)
	if err != nil {
		s.store.SetError(err)
		return err
	}

	s.store.SetSchedules(list.Items, list.FromCache)
	s.logger.Debug().
		Str("func", "contextService.Refresh").
		Int("count", len(list.Items)).
		Bool("from_cache", list.FromCache).
		Msg("schedules loaded")
	return nil
}

func (s *contextService) Save(ctx context.Context, scheduleID string, schedule models.Schedule) (models.Schedule, error) {
	saved, err := s.schedules.Update(ctx, scheduleID, schedule)
	if err != nil {
		return nil, err
	}

	s.store.UpsertSchedule(scheduleID, saved)
	return saved, nil
}
