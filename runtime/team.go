package runtime

import (
	"standup-lab/domain"
	"standup-lab/runtime/workers"
	"sync"

	"golang.org/x/text/language"
)

// team holds every piece of live state of one team behind a single lock:
// registry, roster, proposal, session and focus always change together.
type team struct {
	mu       sync.Mutex
	id       domain.TeamID
	closed   bool
	registry *Registry
	roster   roster
	proposal *domain.AutoStartProposal
	session  *domain.Session
	timer    *workers.SessionTimer
	focus    *domain.Focus
}

// roster caches the required headcount of the team.
// Lookups are numbered so that a slow answer never overwrites a newer one.
type roster struct {
	required  int
	known     bool
	requested uint64
	applied   uint64
}

func newTeam(id domain.TeamID, locale language.Tag) *team {
	return &team{
		id:       id,
		registry: NewRegistry(locale),
	}
}
