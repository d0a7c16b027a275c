//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"standup-lab/domain"
	"standup-lab/domain/event"
	"time"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Conn is one live duplex link of a team member.
// Send must not block: a connection that cannot accept an envelope
// right away reports an error and is considered dead by the caller.
type Conn interface {
	ID() string
	Identity() domain.Identity
	TeamID() domain.TeamID
	EstablishedAt() time.Time
	Send(e event.Envelope) error
	// Ping fails when the peer has not answered since the previous probe.
	Ping(now time.Time) error
	Close() error
}

type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}

// MembershipStore answers team membership questions.
// Both calls may fail transiently.
type MembershipStore interface {
	IsMember(ctx context.Context, teamID domain.TeamID, userID domain.UserID) (bool, error)
	CountMembers(ctx context.Context, teamID domain.TeamID) (int, error)
}

// ItemResolver finds the owning team of check-in scoped records.
type ItemResolver interface {
	TeamForCheckin(ctx context.Context, checkinID int64) (domain.TeamID, error)
	TeamForItem(ctx context.Context, itemID int64) (domain.TeamID, error)
}

// ICoordinator is the entry point used by the transport and REST layers.
// Commands never fail on invalid state: they resync clients instead and
// report whether the transition was applied.
type ICoordinator interface {
	Join(conn Conn) error
	Leave(conn Conn)
	Resync(conn Conn)
	Headcount(ctx context.Context, teamID domain.TeamID) int
	RefreshRoster(ctx context.Context, teamID domain.TeamID) (int, error)
	ForceStart(teamID domain.TeamID, actor domain.Identity) (event.TeamStatus, bool)
	AcceptProposal(teamID domain.TeamID, actor domain.Identity) (event.TeamStatus, bool)
	DeclineProposal(teamID domain.TeamID, actor domain.Identity) (event.TeamStatus, bool)
	ForceStop(teamID domain.TeamID, actor domain.Identity) (event.TeamStatus, bool)
	StartFocus(teamID domain.TeamID, actor domain.Identity, presenter *domain.Identity, itemID *int64) (event.TeamStatus, bool)
	StopFocus(teamID domain.TeamID, actor domain.Identity) (event.TeamStatus, bool)
	Broadcast(teamID domain.TeamID, e event.Envelope)
	Status(teamID domain.TeamID) event.TeamStatus
	Probe(now time.Time) int
	Shutdown()
}
