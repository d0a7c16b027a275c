package event

import (
	"standup-lab/domain"
	"time"
)

// TeamStatus is the authoritative view of a team, sent at connect time
// and on every resync.
type TeamStatus struct {
	TeamID       domain.TeamID `json:"team_id"`
	Session      *SessionView  `json:"session"`
	Focus        *FocusView    `json:"focus"`
	Proposal     *ProposalView `json:"proposal"`
	Current      int           `json:"current"`
	Required     int           `json:"required"`
	Participants []Participant `json:"participants"`
}

type SessionView struct {
	StartedAt            time.Time     `json:"started_at"`
	DurationMs           int64         `json:"duration_ms"`
	ElapsedMs            int64         `json:"elapsed_ms"`
	InitiatorID          domain.UserID `json:"initiator_id"`
	Initiator            string        `json:"initiator"`
	RequiredParticipants int           `json:"required_participants"`
	OverMinutes          int           `json:"over_minutes"`
}

type FocusView struct {
	PresenterID   domain.UserID `json:"presenter_id"`
	PresenterName string        `json:"presenter_name"`
	ItemID        *int64        `json:"item_id,omitempty"`
	StartedAt     time.Time     `json:"started_at"`
}

type ProposalView struct {
	ProposedBy     domain.UserID `json:"proposed_by"`
	ProposedByName string        `json:"proposed_by_name"`
	Current        int           `json:"current"`
	Required       int           `json:"required"`
}

func NewSessionView(s *domain.Session, now time.Time) *SessionView {
	if s == nil {
		return nil
	}
	return &SessionView{
		StartedAt:            s.StartedAt.UTC(),
		DurationMs:           s.Budget.Milliseconds(),
		ElapsedMs:            s.Elapsed(now).Milliseconds(),
		InitiatorID:          s.InitiatorID,
		Initiator:            s.Initiator,
		RequiredParticipants: s.RequiredParticipants,
		OverMinutes:          s.OverMinutes(),
	}
}

func NewFocusView(f *domain.Focus) *FocusView {
	if f == nil {
		return nil
	}
	return &FocusView{
		PresenterID:   f.PresenterID,
		PresenterName: f.PresenterLabel,
		ItemID:        f.ItemID,
		StartedAt:     f.StartedAt.UTC(),
	}
}

func NewProposalView(p *domain.AutoStartProposal) *ProposalView {
	if p == nil {
		return nil
	}
	return &ProposalView{
		ProposedBy:     p.ProposedBy,
		ProposedByName: p.ProposedByLabel,
		Current:        p.Current,
		Required:       p.Required,
	}
}

// Envelope wraps the status as a resync message.
func (s TeamStatus) Envelope(actorID domain.UserID, at time.Time) Envelope {
	env := New(Status, s.TeamID, actorID, at).
		With("session", s.Session).
		With("focus", s.Focus).
		With("proposal", s.Proposal).
		With("current", s.Current).
		With("required", s.Required)
	env.Participants = s.Participants
	return env
}
