package ws

import (
	"encoding/json"
	"time"
)

type FrameType string

const (
	// Server to client.
	FrameEvent FrameType = "event"
	FramePing  FrameType = "ping"
	FrameError FrameType = "error"

	// Client to server.
	FramePong FrameType = "pong"
	FrameSync FrameType = "sync"
)

// Frame is the JSON unit exchanged on the socket.
type Frame struct {
	Type    FrameType       `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ErrorPayload is sent once before the server drops a rejected connection.
type ErrorPayload struct {
	Code      int    `json:"code"`
	Reason    string `json:"reason"`
	Retryable bool   `json:"retryable"`
}

type PingPayload struct {
	At time.Time `json:"at"`
}

func mustJSON(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}
