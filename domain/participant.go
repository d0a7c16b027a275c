// Package domain contains core concepts of the standup coordinator.
// This file defines the presence counter and its invariants.
// No runtime, network, or transport logic should be added here.
package domain

// TeamPresence counts open connections per user for a single team.
// A user is present iff its counter is strictly positive. Counters
// never go negative: zeroed entries are deleted.
type TeamPresence struct {
	counts map[UserID]int
}

func NewTeamPresence() *TeamPresence {
	return &TeamPresence{counts: make(map[UserID]int)}
}

// Increment records one more connection for the user and reports
// whether it was the 0→1 transition.
func (p *TeamPresence) Increment(userID UserID) bool {
	p.counts[userID]++
	return p.counts[userID] == 1
}

// Decrement records one connection less for the user and reports
// whether it was the 1→0 transition. Decrementing an absent user is a no-op.
func (p *TeamPresence) Decrement(userID UserID) bool {
	count, ok := p.counts[userID]
	if !ok {
		return false
	}
	if count <= 1 {
		delete(p.counts, userID)
		return true
	}
	p.counts[userID] = count - 1
	return false
}

func (p *TeamPresence) IsPresent(userID UserID) bool {
	return p.counts[userID] > 0
}

func (p *TeamPresence) Connections(userID UserID) int {
	return p.counts[userID]
}

// Count returns the number of distinct present users.
func (p *TeamPresence) Count() int {
	return len(p.counts)
}

func (p *TeamPresence) Users() []UserID {
	users := make([]UserID, 0, len(p.counts))
	for userID := range p.counts {
		users = append(users, userID)
	}
	return users
}
