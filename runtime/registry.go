package runtime

import (
	"cmp"
	"slices"
	"standup-lab/contract"
	"standup-lab/domain"
	"standup-lab/domain/event"

	"github.com/samber/lo"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Registry tracks the live connections of one team and derives presence
// from them. It is not safe for concurrent use: the owning team lock
// serializes every call.
type Registry struct {
	conns    map[string]contract.Conn // map connection id -> Conn
	presence *domain.TeamPresence
	labels   map[domain.UserID]string
	collator *collate.Collator
}

func NewRegistry(locale language.Tag) *Registry {
	return &Registry{
		conns:    make(map[string]contract.Conn),
		presence: domain.NewTeamPresence(),
		labels:   make(map[domain.UserID]string),
		collator: collate.New(locale),
	}
}

// Register adds the connection and reports whether it is the user's
// first concurrent connection. Registering the same connection twice
// is a no-op.
func (r *Registry) Register(conn contract.Conn) bool {
	if _, ok := r.conns[conn.ID()]; ok {
		return false
	}
	r.conns[conn.ID()] = conn
	identity := conn.Identity()
	r.labels[identity.UserID] = identity.Label()
	return r.presence.Increment(identity.UserID)
}

// Unregister removes the connection and reports whether it was the user's
// last one. ok is false when the connection was not registered, which makes
// a second unregister a no-op.
func (r *Registry) Unregister(connID string) (conn contract.Conn, last bool, ok bool) {
	conn, ok = r.conns[connID]
	if !ok {
		return nil, false, false
	}
	delete(r.conns, connID)

	userID := conn.Identity().UserID
	last = r.presence.Decrement(userID)
	if last {
		delete(r.labels, userID)
	}
	return conn, last, true
}

// Participants lists distinct present users sorted by label with the
// registry locale collation, user id breaking ties.
func (r *Registry) Participants() []event.Participant {
	participants := lo.Map(r.presence.Users(), func(userID domain.UserID, _ int) event.Participant {
		return event.Participant{UserID: userID, Name: r.labels[userID]}
	})
	slices.SortFunc(participants, func(a, b event.Participant) int {
		if c := r.collator.CompareString(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.UserID, b.UserID)
	})
	return participants
}

// Conns returns the live connections in establishment order.
func (r *Registry) Conns() []contract.Conn {
	conns := lo.Values(r.conns)
	slices.SortFunc(conns, func(a, b contract.Conn) int {
		if c := a.EstablishedAt().Compare(b.EstablishedAt()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID(), b.ID())
	})
	return conns
}

func (r *Registry) Has(connID string) bool {
	_, ok := r.conns[connID]
	return ok
}

// Label returns how a present user is shown in the participant list.
func (r *Registry) Label(userID domain.UserID) (string, bool) {
	label, ok := r.labels[userID]
	return label, ok
}

// Count returns the number of distinct present users.
func (r *Registry) Count() int {
	return r.presence.Count()
}

func (r *Registry) IsPresent(userID domain.UserID) bool {
	return r.presence.IsPresent(userID)
}

func (r *Registry) Connections(userID domain.UserID) int {
	return r.presence.Connections(userID)
}
