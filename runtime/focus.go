package runtime

import (
	"standup-lab/domain"
	"standup-lab/domain/event"
	"time"
)

// StartFocus gives the floor to presenter, or to the actor when presenter
// is nil. The last call wins.
func (c *Coordinator) StartFocus(
	teamID domain.TeamID,
	actor domain.Identity,
	presenter *domain.Identity,
	itemID *int64,
) (event.TeamStatus, bool) {
	t, err := c.team(teamID)
	if err != nil {
		return event.TeamStatus{TeamID: teamID}, false
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if presenter == nil {
		presenter = &actor
	} else if label, ok := t.registry.Label(presenter.UserID); ok {
		// An online presenter is named as in the participant list.
		named := *presenter
		named.DisplayName = label
		presenter = &named
	}
	now := c.now()
	focus := domain.NewFocus(*presenter, itemID, now)
	t.focus = focus

	e := event.New(event.FocusStarted, t.id, actor.UserID, now).
		With("presenter_id", focus.PresenterID).
		With("presenter_name", focus.PresenterLabel).
		With("started_at", focus.StartedAt.UTC())
	e.ItemID = focus.ItemID
	c.broadcastLocked(t, e)
	return c.statusLocked(t, now), true
}

func (c *Coordinator) StopFocus(teamID domain.TeamID, actor domain.Identity) (event.TeamStatus, bool) {
	t, err := c.team(teamID)
	if err != nil {
		return event.TeamStatus{TeamID: teamID}, false
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	now := c.now()
	if t.focus == nil {
		return c.resyncLocked(t, actor.UserID, now), false
	}
	c.clearFocusLocked(t, actor, now)
	return c.statusLocked(t, now), true
}

func (c *Coordinator) clearFocusLocked(t *team, actor domain.Identity, now time.Time) {
	focus := t.focus
	t.focus = nil
	e := event.New(event.FocusStopped, t.id, actor.UserID, now).
		With("presenter_id", focus.PresenterID).
		With("presenter_name", focus.PresenterLabel).
		With("stopped_by", actor.Label()).
		With("duration_ms", now.Sub(focus.StartedAt).Milliseconds())
	e.ItemID = focus.ItemID
	c.broadcastLocked(t, e)
}
