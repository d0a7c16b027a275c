package runtime

import (
	"context"
	"standup-lab/domain"
)

// Headcount returns the cached required headcount of the team, loading it
// from the membership store the first time. 0 means unknown.
func (c *Coordinator) Headcount(ctx context.Context, teamID domain.TeamID) int {
	t, err := c.team(teamID)
	if err != nil {
		return 0
	}
	t.mu.Lock()
	known, required := t.roster.known, t.roster.required
	t.mu.Unlock()
	if known {
		return required
	}
	required, _ = c.loadRoster(ctx, t)
	return required
}

// RefreshRoster reloads the required headcount and re-evaluates quorum.
// On failure the last known value is kept and returned with the error.
func (c *Coordinator) RefreshRoster(ctx context.Context, teamID domain.TeamID) (int, error) {
	t, err := c.team(teamID)
	if err != nil {
		return 0, err
	}
	return c.loadRoster(ctx, t)
}

// loadRoster queries the membership store without holding the team lock.
// Answers are numbered: one that comes back after a newer answer was
// applied is discarded.
func (c *Coordinator) loadRoster(ctx context.Context, t *team) (int, error) {
	t.mu.Lock()
	t.roster.requested++
	seq := t.roster.requested
	t.mu.Unlock()

	lookupCtx, cancel := context.WithTimeout(ctx, c.settings.LookupTimeout)
	count, err := c.membership.CountMembers(lookupCtx, t.id)
	cancel()

	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		c.log.Warn("Membership count lookup failed, keeping last known value",
			"team_id", t.id, "required", t.roster.required, "error", err)
		return t.roster.required, err
	}
	if seq < t.roster.applied || t.closed {
		c.log.Debug("Discarding stale membership count", "team_id", t.id, "seq", seq)
		return t.roster.required, nil
	}
	t.roster.applied = seq
	t.roster.known = true
	if t.roster.required == count {
		return count, nil
	}
	t.roster.required = count
	c.log.Debug("Roster updated", "team_id", t.id, "required", count)
	c.evaluateQuorumLocked(t, nil)
	return count, nil
}
