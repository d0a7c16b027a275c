package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"standup-lab/auth"
	"standup-lab/domain"
	"standup-lab/domain/event"
	"standup-lab/errors"
	"standup-lab/services"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 64 << 10

// CommandResponse reports whether the command changed anything. A command
// that did not apply has already resynced every client of the team.
type CommandResponse struct {
	Applied bool             `json:"applied"`
	Status  event.TeamStatus `json:"status"`
}

type RosterResponse struct {
	TeamID   domain.TeamID `json:"team_id"`
	Required int           `json:"required"`
	Stale    bool          `json:"stale,omitempty"`
}

type NotifyResponse struct {
	TeamID domain.TeamID `json:"team_id"`
}

type Handler struct {
	log     *slog.Logger
	service services.IStandupService
}

func NewHandler(log *slog.Logger, service services.IStandupService) *Handler {
	return &Handler{log: log, service: service}
}

type command func(teamID domain.TeamID, actor domain.Identity) (event.TeamStatus, bool)

// run resolves the team and the caller, then applies the command.
func (h *Handler) run(w http.ResponseWriter, r *http.Request, cmd command) {
	teamID, actor, ok := h.target(w, r)
	if !ok {
		return
	}
	status, applied := cmd(teamID, actor)
	writeJSON(w, http.StatusOK, CommandResponse{Applied: applied, Status: status})
}

// StartSession handles POST /api/teams/{teamID}/session/start
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, h.service.StartSession)
}

// StopSession handles POST /api/teams/{teamID}/session/stop
func (h *Handler) StopSession(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, h.service.StopSession)
}

func (h *Handler) AcceptProposal(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, h.service.AcceptProposal)
}

func (h *Handler) DeclineProposal(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, h.service.DeclineProposal)
}

func (h *Handler) StopFocus(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, h.service.StopFocus)
}

// StartFocus handles POST /api/teams/{teamID}/focus/start
// An empty body gives the floor to the caller.
func (h *Handler) StartFocus(w http.ResponseWriter, r *http.Request) {
	teamID, actor, ok := h.target(w, r)
	if !ok {
		return
	}
	var req services.FocusRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
	}
	status, applied, err := h.service.StartFocus(r.Context(), teamID, actor, req)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CommandResponse{Applied: applied, Status: status})
}

// Status handles GET /api/teams/{teamID}/status
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	teamID, _, ok := h.target(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.service.Status(teamID))
}

// RefreshRoster handles POST /api/teams/{teamID}/roster/refresh
func (h *Handler) RefreshRoster(w http.ResponseWriter, r *http.Request) {
	teamID, _, ok := h.target(w, r)
	if !ok {
		return
	}
	required, err := h.service.RefreshRoster(r.Context(), teamID)
	if err != nil {
		h.log.Warn("Roster refresh failed", "team_id", teamID, "error", err)
		writeJSON(w, http.StatusServiceUnavailable, RosterResponse{TeamID: teamID, Required: required, Stale: true})
		return
	}
	writeJSON(w, http.StatusOK, RosterResponse{TeamID: teamID, Required: required})
}

// Notify handles POST /api/notifications
func (h *Handler) Notify(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req services.NotificationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	teamID, err := h.service.Notify(r.Context(), actor, req)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, NotifyResponse{TeamID: teamID})
}

func (h *Handler) target(w http.ResponseWriter, r *http.Request) (domain.TeamID, domain.Identity, bool) {
	actor, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return 0, domain.Identity{}, false
	}
	teamID, err := domain.ParseTeamID(chi.URLParam(r, "teamID"))
	if err != nil || teamID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid team id")
		return 0, domain.Identity{}, false
	}
	return teamID, actor, true
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errors.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, errors.ErrNotMember):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, errors.ErrItemNotFound), errors.Is(err, errors.ErrCheckinNotFound), errors.Is(err, errors.ErrTeamNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, errors.ErrMembershipUnavailable):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		h.log.Error("Command failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}
