package http

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-eightball/internal/devserver"
	"github.com/MKhiriev/go-eightball/internal/logger"
	"github.com/MKhiriev/go-eightball/models"
	"github.com/go-chi/chi/v5"
)

const maxUpdateBodyBytes = 1 << 20

// getConfig serves the remote configuration and starts a session.
func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    h.backend.NewSession(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, h.backend.Config())
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.backend.Profile())
}

func (h *Handler) listSchedules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.backend.Schedules())
}

func (h *Handler) updateSchedule(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	scheduleID := chi.URLParam(r, "scheduleID")

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUpdateBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, ErrBodyTooLarge)
			return
		}
		writeError(w, http.StatusBadRequest, err)
		return
	}

	// DecodeDocument turns null into an empty document; updates need an object.
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		writeError(w, http.StatusBadRequest, ErrBodyNotObject)
		return
	}

	patch, err := models.DecodeDocument(trimmed)
	if err != nil {
		log.Debug().Err(err).Str("schedule_id", scheduleID).Msg("rejected update body")
		writeError(w, http.StatusBadRequest, ErrBodyNotObject)
		return
	}

	updated, err := h.backend.UpdateSchedule(scheduleID, models.Schedule(patch))
	if errors.Is(err, devserver.ErrScheduleNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		log.Err(err).Str("func", "Handler.updateSchedule").Msg("update failed")
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.PingStatus{"backend": true})
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.ServerVersion{Version: h.backend.Version()})
}
