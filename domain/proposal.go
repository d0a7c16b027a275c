package domain

// AutoStartProposal is raised when quorum is reached while no session runs.
// It never becomes a session by itself.
type AutoStartProposal struct {
	ProposedBy      UserID
	ProposedByLabel string
	Current         int
	Required        int
}

// QuorumReached is false while the roster is unknown (required <= 0).
func QuorumReached(current, required int) bool {
	return required > 0 && current >= required
}
