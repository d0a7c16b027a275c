package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"standup-lab/contract"
	"standup-lab/domain"
	"standup-lab/domain/event"
	"standup-lab/errors"
	"standup-lab/observability"
	"standup-lab/runtime/workers"
	"sync"
	"time"

	"github.com/samber/lo"
	"golang.org/x/text/language"
)

type Settings struct {
	SessionBudget time.Duration
	SessionTick   time.Duration
	LookupTimeout time.Duration
	Locale        language.Tag
}

func DefaultSettings() Settings {
	return Settings{
		SessionBudget: 15 * time.Minute,
		SessionTick:   15 * time.Second,
		LookupTimeout: 5 * time.Second,
		Locale:        language.English,
	}
}

// Coordinator owns the live state of every team: presence, quorum,
// session and focus. Each team is guarded by its own lock; the
// coordinator lock only protects the team index.
type Coordinator struct {
	mu     sync.Mutex
	teams  map[domain.TeamID]*team
	closed bool

	log        *slog.Logger
	membership contract.MembershipStore
	fanout     *workers.EventFanout
	monitoring *observability.MonitoringManager
	settings   Settings
	now        func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
}

func NewCoordinator(
	log *slog.Logger,
	membership contract.MembershipStore,
	fanout *workers.EventFanout,
	monitoring *observability.MonitoringManager,
	settings Settings,
) *Coordinator {
	defaults := DefaultSettings()
	if settings.SessionBudget <= 0 {
		settings.SessionBudget = defaults.SessionBudget
	}
	if settings.SessionTick <= 0 {
		settings.SessionTick = defaults.SessionTick
	}
	if settings.LookupTimeout <= 0 {
		settings.LookupTimeout = defaults.LookupTimeout
	}
	if settings.Locale == language.Und {
		settings.Locale = defaults.Locale
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		teams:      make(map[domain.TeamID]*team),
		log:        log,
		membership: membership,
		fanout:     fanout,
		monitoring: monitoring,
		settings:   settings,
		now:        time.Now,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// team returns the state of the team, creating it on first use.
func (c *Coordinator) team(teamID domain.TeamID) (*team, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, errors.ErrCoordinatorClosed
	}
	t, ok := c.teams[teamID]
	if !ok {
		t = newTeam(teamID, c.settings.Locale)
		c.teams[teamID] = t
		c.log.Debug("Team state created", "team_id", teamID)
	}
	return t, nil
}

func (c *Coordinator) existingTeam(teamID domain.TeamID) (*team, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.teams[teamID]
	return t, ok
}

func (c *Coordinator) snapshotTeams() []*team {
	c.mu.Lock()
	defer c.mu.Unlock()
	return lo.Values(c.teams)
}

// Join registers an admitted connection, sends it the team status and
// broadcasts the presence edge when it is the user's first connection.
func (c *Coordinator) Join(conn contract.Conn) error {
	t, err := c.team(conn.TeamID())
	if err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return errors.ErrCoordinatorClosed
	}

	identity := conn.Identity()
	first := t.registry.Register(conn)
	c.monitoring.ConnectionOpened()

	now := c.now()
	if err := conn.Send(c.statusLocked(t, now).Envelope(identity.UserID, now)); workers.IsDead(err) {
		// Nothing was announced yet: undo quietly.
		t.registry.Unregister(conn.ID())
		c.monitoring.ConnectionClosed(true)
		return fmt.Errorf("%w: %w", errors.ErrConnClosed, err)
	}

	c.log.Debug("Connection joined",
		"team_id", t.id, "user_id", identity.UserID, "conn_id", conn.ID(), "first", first)
	if !first {
		return nil
	}
	c.broadcastLocked(t, event.New(event.ParticipantJoined, t.id, identity.UserID, now).
		With("name", identity.Label()))
	c.evaluateQuorumLocked(t, &identity)
	return nil
}

// Leave unregisters a closed connection. Leaving twice is a no-op.
func (c *Coordinator) Leave(conn contract.Conn) {
	t, ok := c.existingTeam(conn.TeamID())
	if !ok {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	c.dropLocked(t, conn.ID(), false)
}

// Resync sends the current status to a single connection.
func (c *Coordinator) Resync(conn contract.Conn) {
	t, ok := c.existingTeam(conn.TeamID())
	if !ok {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	now := c.now()
	if err := conn.Send(c.statusLocked(t, now).Envelope(conn.Identity().UserID, now)); workers.IsDead(err) {
		c.dropLocked(t, conn.ID(), true)
	}
}

// Broadcast relays an envelope produced outside the coordinator to every
// connection of the team. Teams without live state have nobody to notify.
func (c *Coordinator) Broadcast(teamID domain.TeamID, e event.Envelope) {
	t, ok := c.existingTeam(teamID)
	if !ok {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	e.TeamID = teamID
	if e.Timestamp.IsZero() {
		e.Timestamp = c.now().UTC()
	}
	c.broadcastLocked(t, e)
}

func (c *Coordinator) Status(teamID domain.TeamID) event.TeamStatus {
	t, ok := c.existingTeam(teamID)
	if !ok {
		return event.TeamStatus{TeamID: teamID, Participants: []event.Participant{}}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return c.statusLocked(t, c.now())
}

// Probe pings every connection and prunes the unresponsive ones.
// It returns the number of pruned connections.
func (c *Coordinator) Probe(now time.Time) int {
	pruned := 0
	for _, t := range c.snapshotTeams() {
		t.mu.Lock()
		for _, conn := range t.registry.Conns() {
			// An earlier prune of this round may have cascaded into this one.
			if !t.registry.Has(conn.ID()) {
				continue
			}
			if err := conn.Ping(now); workers.IsDead(err) {
				c.log.Debug("Pruning unresponsive connection",
					"team_id", t.id, "conn_id", conn.ID(), "error", err)
				if c.dropLocked(t, conn.ID(), true) {
					pruned++
				}
			}
		}
		t.mu.Unlock()
	}
	return pruned
}

// Shutdown cancels every session timer, closes every connection and
// forgets all team state. Later joins are refused.
func (c *Coordinator) Shutdown() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	teams := lo.Values(c.teams)
	c.teams = make(map[domain.TeamID]*team)
	c.mu.Unlock()
	c.cancel()

	for _, t := range teams {
		t.mu.Lock()
		t.closed = true
		if t.timer != nil {
			t.timer.Stop()
			t.timer = nil
		}
		t.session, t.focus, t.proposal = nil, nil, nil
		for _, conn := range t.registry.Conns() {
			t.registry.Unregister(conn.ID())
			c.monitoring.ConnectionClosed(false)
			if err := conn.Close(); err != nil {
				c.log.Debug("Close failed during shutdown", "conn_id", conn.ID(), "error", err)
			}
		}
		t.mu.Unlock()
	}
	c.log.Info("Coordinator shut down", "teams", len(teams))
}

// broadcastLocked delivers the envelope to every connection of the team,
// then prunes the ones whose write failed. Pruning may cascade into more
// broadcasts (participant_left, focus_stopped) to the survivors.
func (c *Coordinator) broadcastLocked(t *team, e event.Envelope) {
	if e.Participants == nil {
		e.Participants = t.registry.Participants()
	}
	conns := t.registry.Conns()
	dead := c.fanout.Fanout(conns, e)
	c.monitoring.Broadcast(len(conns) - len(dead))
	c.log.Debug("Broadcast", "team_id", t.id, "action", e.Action, "deliveries", len(conns)-len(dead))

	for _, conn := range dead {
		c.dropLocked(t, conn.ID(), true)
	}
}

// dropLocked unregisters a connection and applies the side effects of a
// 1→0 presence edge: participant_left, focus auto-clear, quorum.
// It reports false when the connection was already gone.
func (c *Coordinator) dropLocked(t *team, connID string, pruned bool) bool {
	conn, last, ok := t.registry.Unregister(connID)
	if !ok {
		return false
	}
	c.monitoring.ConnectionClosed(pruned)
	if pruned {
		if err := conn.Close(); err != nil {
			c.log.Debug("Close of pruned connection failed", "conn_id", connID, "error", err)
		}
	}
	identity := conn.Identity()
	c.log.Debug("Connection left",
		"team_id", t.id, "user_id", identity.UserID, "conn_id", connID, "last", last, "pruned", pruned)
	if !last {
		return true
	}

	now := c.now()
	c.broadcastLocked(t, event.New(event.ParticipantLeft, t.id, identity.UserID, now).
		With("name", identity.Label()))
	if t.focus != nil && t.focus.PresenterID == identity.UserID {
		c.clearFocusLocked(t, identity, now)
	}
	c.evaluateQuorumLocked(t, &identity)
	return true
}

func (c *Coordinator) statusLocked(t *team, now time.Time) event.TeamStatus {
	return event.TeamStatus{
		TeamID:       t.id,
		Session:      event.NewSessionView(t.session, now),
		Focus:        event.NewFocusView(t.focus),
		Proposal:     event.NewProposalView(t.proposal),
		Current:      t.registry.Count(),
		Required:     t.roster.required,
		Participants: t.registry.Participants(),
	}
}

// resyncLocked answers an invalid transition: nothing changes, every client
// receives the authoritative status again.
func (c *Coordinator) resyncLocked(t *team, actorID domain.UserID, now time.Time) event.TeamStatus {
	status := c.statusLocked(t, now)
	c.broadcastLocked(t, status.Envelope(actorID, now))
	return c.statusLocked(t, now)
}
