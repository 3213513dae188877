package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Get("/config", h.getConfig)
		r.Get("/ping", h.ping)
		r.Get("/version", h.getServerVersion)

		r.Group(func(r chi.Router) {
			r.Use(h.withSession)

			r.Get("/user/profile", h.getProfile)
			r.Get("/8ball/schedules", h.listSchedules)
			r.Post("/8ball/schedules/{scheduleID}", h.updateSchedule)
		})
	})

	return router
}
