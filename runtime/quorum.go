package runtime

import (
	"standup-lab/domain"
	"standup-lab/domain/event"
)

// evaluateQuorumLocked raises a proposal when the team reaches its
// required headcount while idle, and retracts it silently when the
// headcount drops below. trigger may be nil after a roster refresh.
func (c *Coordinator) evaluateQuorumLocked(t *team, trigger *domain.Identity) {
	current, required := t.registry.Count(), t.roster.required
	if !domain.QuorumReached(current, required) {
		if t.proposal != nil {
			c.log.Debug("Proposal retracted", "team_id", t.id, "current", current, "required", required)
			t.proposal = nil
		}
		return
	}
	if t.proposal != nil {
		t.proposal.Current = current
		return
	}
	if t.session != nil {
		return
	}

	proposal := &domain.AutoStartProposal{Current: current, Required: required}
	if trigger != nil {
		proposal.ProposedBy = trigger.UserID
		proposal.ProposedByLabel = trigger.Label()
	}
	t.proposal = proposal

	c.broadcastLocked(t, event.New(event.AutoStartPrompt, t.id, proposal.ProposedBy, c.now()).
		With("triggered_by", proposal.ProposedByLabel).
		With("current", current).
		With("required", required))
}
