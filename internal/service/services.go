package service

import (
	"github.com/MKhiriev/go-eightball/internal/adapter"
	"github.com/MKhiriev/go-eightball/internal/config"
	"github.com/MKhiriev/go-eightball/internal/logger"
	"github.com/MKhiriev/go-eightball/internal/state"
	"github.com/MKhiriev/go-eightball/internal/store"
)

// ClientServices groups the services the client runtime wires together.
type ClientServices struct {
	ScheduleService ScheduleService
	ContextService  ContextService
	StatusService   StatusService
	RefreshJob      *RefreshJob
}

func NewClientServices(
	storages *store.ClientStorages,
	backend adapter.BackendAdapter,
	st *state.Store,
	cfg config.ClientWorkers,
	log *logger.Logger,
) *ClientServices {
	scheduleSvc := NewScheduleService(backend, storages.ScheduleRepository, log)
	contextSvc := NewContextService(scheduleSvc, st, log)

	return &ClientServices{
		ScheduleService: scheduleSvc,
		ContextService:  contextSvc,
		StatusService:   NewStatusService(backend),
		RefreshJob:      NewRefreshJob(contextSvc, cfg.RefreshInterval, log),
	}
}
