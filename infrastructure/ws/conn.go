package ws

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"standup-lab/domain"
	"standup-lab/domain/event"
	"standup-lab/errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/websocket"
)

const writeTimeout = 10 * time.Second

// Conn adapts one websocket to the coordinator. Writes go through a bounded
// outbox drained by a single writer goroutine, so Send never blocks the
// team lock held by the caller.
type Conn struct {
	id            string
	identity      domain.Identity
	teamID        domain.TeamID
	establishedAt time.Time
	log           *slog.Logger

	ws        *websocket.Conn
	outbox    chan Frame
	done      chan struct{}
	closeOnce sync.Once

	lastSeen atomic.Int64
	lastPing atomic.Int64
}

func NewConn(ws *websocket.Conn, admission Admission, bufferSize int, log *slog.Logger, now time.Time) *Conn {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	c := &Conn{
		id:            uuid.NewString(),
		identity:      admission.Identity,
		teamID:        admission.TeamID,
		establishedAt: now,
		log:           log,
		ws:            ws,
		outbox:        make(chan Frame, bufferSize),
		done:          make(chan struct{}),
	}
	c.lastSeen.Store(now.UnixNano())
	return c
}

func (c *Conn) ID() string {
	return c.id
}

func (c *Conn) Identity() domain.Identity {
	return c.identity
}

func (c *Conn) TeamID() domain.TeamID {
	return c.teamID
}

func (c *Conn) EstablishedAt() time.Time {
	return c.establishedAt
}

func (c *Conn) Send(e event.Envelope) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode %s envelope: %w", e.Action, err)
	}
	return c.enqueue(Frame{Type: FrameEvent, Payload: payload})
}

// Ping fails when the client did not answer the previous ping.
func (c *Conn) Ping(now time.Time) error {
	previous := c.lastPing.Load()
	if previous != 0 && c.lastSeen.Load() < previous {
		return errors.ErrUnresponsive
	}
	c.lastPing.Store(now.UnixNano())
	return c.enqueue(Frame{Type: FramePing, Payload: mustJSON(PingPayload{At: now.UTC()})})
}

// MarkSeen records inbound traffic from the client.
func (c *Conn) MarkSeen(now time.Time) {
	c.lastSeen.Store(now.UnixNano())
}

// Close stops the writer and closes the socket. Only the first call
// reaches the socket.
func (c *Conn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)
		err = c.ws.Close()
	})
	return err
}

func (c *Conn) Done() <-chan struct{} {
	return c.done
}

func (c *Conn) enqueue(frame Frame) error {
	select {
	case <-c.done:
		return errors.ErrConnClosed
	default:
	}
	select {
	case c.outbox <- frame:
		return nil
	case <-c.done:
		return errors.ErrConnClosed
	default:
		return errors.ErrBackpressure
	}
}

// writeLoop is the only writer of the socket once the connection is admitted.
func (c *Conn) writeLoop() {
	for {
		select {
		case <-c.done:
			return
		case frame := <-c.outbox:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := websocket.JSON.Send(c.ws, frame); err != nil {
				c.log.Debug("Websocket write failed", "conn_id", c.id, "error", err)
				_ = c.Close()
				return
			}
		}
	}
}
