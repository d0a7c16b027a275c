package event

import (
	"standup-lab/domain"
	"time"
)

type Action string

const (
	Status             Action = "status"
	ParticipantJoined  Action = "participant_joined"
	ParticipantLeft    Action = "participant_left"
	AutoStartPrompt    Action = "auto_start_prompt"
	AutoStartCancelled Action = "auto_start_cancelled"
	SessionStarted     Action = "session_started"
	SessionEnded       Action = "session_ended"
	SessionOverrun     Action = "session_overrun"
	FocusStarted       Action = "focus_started"
	FocusStopped       Action = "focus_stopped"

	ItemCreated    Action = "item_created"
	ItemUpdated    Action = "item_updated"
	ItemDeleted    Action = "item_deleted"
	ItemReassigned Action = "item_reassigned"
	CheckinCreated Action = "checkin_created"
	CheckinUpdated Action = "checkin_updated"
	CheckinDeleted Action = "checkin_deleted"
)

// Participant is one distinct present user, as listed in envelopes.
type Participant struct {
	UserID domain.UserID `json:"user_id"`
	Name   string        `json:"name"`
}

// Envelope is the single message shape pushed to connected clients.
// A nil Participants slice is filled with the team snapshot at fan-out time.
type Envelope struct {
	Action       Action         `json:"action"`
	TeamID       domain.TeamID  `json:"team_id"`
	ActorID      domain.UserID  `json:"actor_id,omitempty"`
	ItemID       *int64         `json:"item_id,omitempty"`
	CheckinID    *int64         `json:"checkin_id,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	Participants []Participant  `json:"participants"`
	Timestamp    time.Time      `json:"timestamp"`
}

func New(action Action, teamID domain.TeamID, actorID domain.UserID, at time.Time) Envelope {
	return Envelope{
		Action:    action,
		TeamID:    teamID,
		ActorID:   actorID,
		Metadata:  map[string]any{},
		Timestamp: at.UTC(),
	}
}

func (e Envelope) With(key string, value any) Envelope {
	if e.Metadata == nil {
		e.Metadata = map[string]any{}
	}
	e.Metadata[key] = value
	return e
}

// IsNotification reports whether the action is relayed on behalf of the
// check-in/work item CRUD layer rather than produced by the coordinator.
func IsNotification(action Action) bool {
	switch action {
	case ItemCreated, ItemUpdated, ItemDeleted, ItemReassigned,
		CheckinCreated, CheckinUpdated, CheckinDeleted:
		return true
	}
	return false
}
