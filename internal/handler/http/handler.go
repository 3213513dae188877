package http

import (
	"github.com/MKhiriev/go-eightball/internal/devserver"
	"github.com/MKhiriev/go-eightball/internal/logger"
)

// SessionCookieName is the cookie set by GET /api/config.
const SessionCookieName = "eightball_session"

type Handler struct {
	backend        *devserver.Backend
	requireSession bool

	logger *logger.Logger
}

func NewHandler(backend *devserver.Backend, requireSession bool, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		backend:        backend,
		requireSession: requireSession,
		logger:         logger,
	}
}
