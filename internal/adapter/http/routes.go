package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// MountRoutes registers all API routes on the given chi router.
func MountRoutes(r chi.Router, h *Handlers) {
	r.Route("/api/v1", func(r chi.Router) {
		// Version
		r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"version":"0.1.0"}`))
		})

		// Tasks
		r.Get("/tasks", h.ListTasks)
		r.Post("/tasks", h.AddTask)
		r.Get("/tasks/{id}", h.GetTask)
		r.Post("/tasks/{id}/complete", h.CompleteTask)

		// Session
		r.Get("/session", h.GetSession)
		r.Post("/session/reset", h.ResetSession)

		// Journal
		r.Get("/logs", h.ListLogs)
	})
}
