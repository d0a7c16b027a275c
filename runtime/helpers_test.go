package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"standup-lab/contract"
	"standup-lab/domain"
	"standup-lab/domain/event"
	"standup-lab/mocks"
	"standup-lab/observability"
	"standup-lab/runtime/workers"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"go.uber.org/mock/gomock"
	"golang.org/x/text/language"
)

var t0 = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Set(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t0.Add(d)
}

// recordingConn keeps every envelope it receives.
type recordingConn struct {
	mu        sync.Mutex
	id        string
	identity  domain.Identity
	teamID    domain.TeamID
	at        time.Time
	envelopes []event.Envelope
	failSend  atomic.Bool
	failPing  atomic.Bool
	closed    atomic.Bool
	pings     atomic.Int32
}

var connSeq atomic.Int64

func newConn(teamID domain.TeamID, userID, name string) *recordingConn {
	return &recordingConn{
		id:       uuid.NewString(),
		identity: domain.Identity{UserID: domain.UserID(userID), Username: userID, DisplayName: name},
		teamID:   teamID,
		at:       t0.Add(time.Duration(connSeq.Add(1)) * time.Millisecond),
	}
}

func (r *recordingConn) ID() string { return r.id }

func (r *recordingConn) Identity() domain.Identity { return r.identity }

func (r *recordingConn) TeamID() domain.TeamID { return r.teamID }

func (r *recordingConn) EstablishedAt() time.Time { return r.at }

func (r *recordingConn) Close() error {
	r.closed.Store(true)
	return nil
}

func (r *recordingConn) Ping(_ time.Time) error {
	r.pings.Add(1)
	if r.failPing.Load() {
		return fmt.Errorf("no pong")
	}
	return nil
}

func (r *recordingConn) Send(e event.Envelope) error {
	if r.failSend.Load() {
		return fmt.Errorf("broken pipe")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.envelopes = append(r.envelopes, e)
	return nil
}

func (r *recordingConn) received() []event.Envelope {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]event.Envelope(nil), r.envelopes...)
}

func (r *recordingConn) actions() []event.Action {
	var actions []event.Action
	for _, e := range r.received() {
		actions = append(actions, e.Action)
	}
	return actions
}

func (r *recordingConn) of(action event.Action) []event.Envelope {
	var found []event.Envelope
	for _, e := range r.received() {
		if e.Action == action {
			found = append(found, e)
		}
	}
	return found
}

func (r *recordingConn) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.envelopes = nil
}

// newTestCoordinator builds a coordinator whose membership store reports
// required members for every team. Session ticks are driven by hand.
func newTestCoordinator(t *testing.T, required int) (*Coordinator, *clock) {
	ctrl := gomock.NewController(t)
	membership := mocks.NewMockMembershipStore(ctrl)
	membership.EXPECT().CountMembers(gomock.Any(), gomock.Any()).Return(required, nil).AnyTimes()
	return newCoordinatorWith(t, membership)
}

func newCoordinatorWith(t *testing.T, membership contract.MembershipStore) (*Coordinator, *clock) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	clk := &clock{now: t0}
	c := NewCoordinator(log, membership, workers.NewEventFanout(log), observability.NewMonitoringManager(log, time.Second), Settings{
		SessionBudget: 15 * time.Minute,
		SessionTick:   time.Hour,
		LookupTimeout: time.Second,
		Locale:        language.English,
	})
	c.now = clk.Now
	t.Cleanup(c.Shutdown)
	return c, clk
}

// connect runs the admission sequence of the transport: roster load then join.
func connect(t *testing.T, c *Coordinator, conn *recordingConn) {
	c.Headcount(context.Background(), conn.teamID)
	if err := c.Join(conn); err != nil {
		t.Fatalf("join %s: %v", conn.identity.UserID, err)
	}
}

// tick fires the overrun check of the running session at the given offset.
func tick(c *Coordinator, clk *clock, teamID domain.TeamID, at time.Duration) {
	clk.Set(at)
	t, ok := c.existingTeam(teamID)
	if !ok {
		return
	}
	t.mu.Lock()
	session := t.session
	t.mu.Unlock()
	if session != nil {
		c.checkOverrun(t, session)
	}
}
