package runtime

import (
	"standup-lab/domain"
	"standup-lab/domain/event"
	"standup-lab/runtime/workers"
	"time"
)

// ForceStart starts a session right away, whether or not a proposal is
// pending. It is a resync when a session already runs.
func (c *Coordinator) ForceStart(teamID domain.TeamID, actor domain.Identity) (event.TeamStatus, bool) {
	t, err := c.team(teamID)
	if err != nil {
		return event.TeamStatus{TeamID: teamID}, false
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	now := c.now()
	if t.session != nil {
		return c.resyncLocked(t, actor.UserID, now), false
	}
	c.startSessionLocked(t, actor, now)
	return c.statusLocked(t, now), true
}

// AcceptProposal turns the pending proposal into a session.
func (c *Coordinator) AcceptProposal(teamID domain.TeamID, actor domain.Identity) (event.TeamStatus, bool) {
	t, err := c.team(teamID)
	if err != nil {
		return event.TeamStatus{TeamID: teamID}, false
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	now := c.now()
	if t.proposal == nil || t.session != nil {
		return c.resyncLocked(t, actor.UserID, now), false
	}
	c.startSessionLocked(t, actor, now)
	return c.statusLocked(t, now), true
}

func (c *Coordinator) DeclineProposal(teamID domain.TeamID, actor domain.Identity) (event.TeamStatus, bool) {
	t, err := c.team(teamID)
	if err != nil {
		return event.TeamStatus{TeamID: teamID}, false
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	now := c.now()
	if t.proposal == nil {
		return c.resyncLocked(t, actor.UserID, now), false
	}
	t.proposal = nil
	c.broadcastLocked(t, event.New(event.AutoStartCancelled, t.id, actor.UserID, now).
		With("declined_by", actor.Label()).
		With("current", t.registry.Count()).
		With("required", t.roster.required))
	return c.statusLocked(t, now), true
}

// ForceStop ends the running session. The focus, if any, is cleared first
// so clients see focus_stopped before session_ended.
func (c *Coordinator) ForceStop(teamID domain.TeamID, actor domain.Identity) (event.TeamStatus, bool) {
	t, err := c.team(teamID)
	if err != nil {
		return event.TeamStatus{TeamID: teamID}, false
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	now := c.now()
	session := t.session
	if session == nil {
		return c.resyncLocked(t, actor.UserID, now), false
	}
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	if t.focus != nil {
		c.clearFocusLocked(t, actor, now)
	}
	t.session = nil

	c.log.Info("Session ended", "team_id", t.id, "user_id", actor.UserID, "elapsed", session.Elapsed(now))
	c.broadcastLocked(t, event.New(event.SessionEnded, t.id, actor.UserID, now).
		With("start_time", session.StartedAt.UTC()).
		With("ended_at", now.UTC()).
		With("ended_by", actor.Label()).
		With("initiator", session.Initiator).
		With("duration_ms", session.Budget.Milliseconds()).
		With("elapsed_ms", session.Elapsed(now).Milliseconds()).
		With("over_minutes", session.OverMinutes()).
		With("current", t.registry.Count()).
		With("required", session.RequiredParticipants))
	return c.statusLocked(t, now), true
}

func (c *Coordinator) startSessionLocked(t *team, actor domain.Identity, now time.Time) {
	session := domain.NewSession(now, actor, c.settings.SessionBudget, t.roster.required)
	t.session = session
	t.proposal = nil
	t.timer = workers.NewSessionTimer(c.settings.SessionTick, func() {
		c.checkOverrun(t, session)
	})
	t.timer.Start(c.ctx)
	c.monitoring.SessionStarted()

	c.log.Info("Session started", "team_id", t.id, "user_id", actor.UserID)
	c.broadcastLocked(t, event.New(event.SessionStarted, t.id, actor.UserID, now).
		With("start_time", session.StartedAt.UTC()).
		With("duration_ms", session.Budget.Milliseconds()).
		With("initiator", session.Initiator).
		With("initiator_id", session.InitiatorID).
		With("current", t.registry.Count()).
		With("required", session.RequiredParticipants))
}

// checkOverrun runs on every session tick. A tick of a session that has
// since been stopped finds another (or no) session and does nothing.
func (c *Coordinator) checkOverrun(t *team, session *domain.Session) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.session != session {
		return
	}
	now := c.now()
	overMinutes, due := session.NextWarning(now)
	if !due {
		return
	}
	c.monitoring.OverrunWarning()
	c.log.Debug("Session overrun", "team_id", t.id, "over_minutes", overMinutes)
	c.broadcastLocked(t, event.New(event.SessionOverrun, t.id, "", now).
		With("over_minutes", overMinutes).
		With("elapsed_ms", session.Elapsed(now).Milliseconds()).
		With("duration_ms", session.Budget.Milliseconds()))
}
