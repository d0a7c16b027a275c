package ws

import (
	"io"
	"log/slog"
	"net/http"
	"standup-lab/contract"
	"standup-lab/errors"
	"standup-lab/observability"
	"time"

	"golang.org/x/net/websocket"
)

const maxDecodeErrors = 3

type Handler struct {
	log         *slog.Logger
	gate        *Gate
	coordinator contract.ICoordinator
	monitoring  *observability.MonitoringManager
	bufferSize  int
	now         func() time.Time
}

func NewHandler(
	log *slog.Logger,
	gate *Gate,
	coordinator contract.ICoordinator,
	monitoring *observability.MonitoringManager,
	bufferSize int,
) *Handler {
	return &Handler{
		log:         log,
		gate:        gate,
		coordinator: coordinator,
		monitoring:  monitoring,
		bufferSize:  bufferSize,
		now:         time.Now,
	}
}

// ServeHTTP upgrades GET requests carrying ?token=...&team_id=...
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	websocket.Handler(h.serve).ServeHTTP(w, r)
}

func (h *Handler) serve(socket *websocket.Conn) {
	request := socket.Request()
	query := request.URL.Query()

	admission, err := h.gate.Admit(request.Context(), query.Get("token"), query.Get("team_id"))
	if err != nil {
		h.reject(socket, err)
		return
	}

	conn := NewConn(socket, admission, h.bufferSize, h.log, h.now())
	go conn.writeLoop()
	// The writer must run before Join: Join already pushes frames.
	if err := h.coordinator.Join(conn); err != nil {
		h.log.Debug("Join refused", "team_id", admission.TeamID, "conn_id", conn.ID(), "error", err)
		_ = conn.Close()
		return
	}
	defer func() {
		h.coordinator.Leave(conn)
		_ = conn.Close()
	}()

	h.log.Info("Connection admitted",
		"team_id", admission.TeamID,
		"user_id", admission.Identity.UserID,
		"conn_id", conn.ID(),
		"headcount", admission.Headcount)
	h.readLoop(conn)
}

// readLoop consumes client frames until the socket fails or closes.
func (h *Handler) readLoop(conn *Conn) {
	decodeErrors := 0
	for {
		var frame Frame
		if err := websocket.JSON.Receive(conn.ws, &frame); err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			select {
			case <-conn.Done():
				return
			default:
			}
			decodeErrors++
			h.log.Debug("Invalid client frame", "conn_id", conn.ID(), "error", err)
			if decodeErrors >= maxDecodeErrors {
				return
			}
			continue
		}
		decodeErrors = 0
		conn.MarkSeen(h.now())

		switch frame.Type {
		case FramePong:
		case FrameSync:
			h.coordinator.Resync(conn)
		default:
			h.log.Debug("Unsupported client frame", "conn_id", conn.ID(), "type", frame.Type)
		}
	}
}

// reject writes one error frame and closes the socket.
func (h *Handler) reject(socket *websocket.Conn, err error) {
	code, retryable := errors.CloseCode(err)
	h.monitoring.HandshakeRefused()
	h.log.Info("Connection refused", "code", code, "error", err)

	_ = socket.SetWriteDeadline(time.Now().Add(writeTimeout))
	_ = websocket.JSON.Send(socket, Frame{
		Type: FrameError,
		Payload: mustJSON(ErrorPayload{
			Code:      code,
			Reason:    reason(code),
			Retryable: retryable,
		}),
	})
	_ = socket.Close()
}

func reason(code int) string {
	switch code {
	case errors.CloseMissingParams:
		return "missing token or team id"
	case errors.CloseInvalidToken:
		return "invalid or expired token"
	case errors.CloseNotMember:
		return "not a member of this team"
	case errors.CloseUnavailable:
		return "membership service unavailable, retry later"
	default:
		return "server misconfigured"
	}
}
