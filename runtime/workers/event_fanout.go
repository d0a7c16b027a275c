package workers

import (
	"log/slog"
	"standup-lab/contract"
	"standup-lab/domain/event"
)

// EventFanout delivers team envelopes to every live connection.
//
// It provides best-effort, fire-and-forget delivery with no retries. A
// connection that fails to accept an envelope is reported back to the caller
// for pruning; it never aborts delivery to the remaining connections.
//
// EventFanout holds no state of its own: ordering is the caller's, which
// serializes broadcasts per team.
type EventFanout struct {
	log *slog.Logger
}

func NewEventFanout(log *slog.Logger) *EventFanout {
	return &EventFanout{log: log}
}

// Fanout returns the connections that must be pruned.
func (f *EventFanout) Fanout(conns []contract.Conn, e event.Envelope) []contract.Conn {
	var dead []contract.Conn
	for _, conn := range conns {
		err := conn.Send(e)
		if !IsDead(err) {
			continue
		}
		f.log.Debug("Delivery failed, pruning connection",
			"team_id", e.TeamID,
			"conn_id", conn.ID(),
			"action", e.Action,
			"error", err)
		dead = append(dead, conn)
	}
	return dead
}

// IsDead decides from a delivery result whether the connection must be
// removed from the registry. Every failed write condemns the connection:
// outboxes never block, so a refusal means closed or hopelessly behind.
func IsDead(err error) bool {
	return err != nil
}
