package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-eightball/internal/adapter"
	"github.com/MKhiriev/go-eightball/models"
)

type statusService struct {
	backend adapter.BackendAdapter
}

func NewStatusService(backend adapter.BackendAdapter) StatusService {
	return &statusService{backend: backend}
}

func (s *statusService) Ping(ctx context.Context) (models.PingStatus, error) {
	var status models.PingStatus
	if err := s.call(ctx, s.backend.Ping, &status); err != nil {
		return nil, err
	}
	return status, nil
}

func (s *statusService) Version(ctx context.Context) (models.ServerVersion, error) {
	var version models.ServerVersion
	if err := s.call(ctx, s.backend.Version, &version); err != nil {
		return models.ServerVersion{}, err
	}
	return version, nil
}

func (s *statusService) call(ctx context.Context, fn func(context.Context) (adapter.Result, error), v any) error {
	res, err := fn(ctx)
	if err != nil {
		return err
	}
	if !res.OK() {
		return mapAdapterError(res.Err())
	}
	if err = res.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrUnexpectedPayload, err)
	}
	return nil
}
