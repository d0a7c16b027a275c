package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"standup-lab/auth"
	"standup-lab/contract"
	"standup-lab/observability"
	"standup-lab/services"

	"github.com/go-chi/chi/v5"
)

// NewRouter mounts the websocket endpoint, the command API and the
// debug endpoints. inspect may be nil.
func NewRouter(
	log *slog.Logger,
	service services.IStandupService,
	verifier contract.TokenVerifier,
	ws http.Handler,
	monitoring *observability.MonitoringManager,
	inspect http.Handler,
) *chi.Mux {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger(log))
	r.Use(Recovery(log))

	h := NewHandler(log, service)

	r.Get("/up", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	if ws != nil {
		r.Handle("/ws", ws)
	}
	r.Get("/debug/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, monitoring.GetLatest())
	})
	if inspect != nil {
		r.Handle("/debug/inspect", inspect)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(auth.BearerAuth(verifier))

		r.Post("/notifications", h.Notify)
		r.Route("/teams/{teamID}", func(r chi.Router) {
			r.Get("/status", h.Status)
			r.Post("/session/start", h.StartSession)
			r.Post("/session/stop", h.StopSession)
			r.Post("/proposal/accept", h.AcceptProposal)
			r.Post("/proposal/decline", h.DeclineProposal)
			r.Post("/focus/start", h.StartFocus)
			r.Post("/focus/stop", h.StopFocus)
			r.Post("/roster/refresh", h.RefreshRoster)
		})
	})
	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
