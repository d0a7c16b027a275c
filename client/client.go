package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"standup-lab/domain/event"
	"standup-lab/infrastructure/ws"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"golang.org/x/net/websocket"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	ServerAddress string `env:"STANDUP_SERVER_ADDR,default=localhost:8080"`
	TeamID        int64  `env:"STANDUP_TEAM_ID,default=7"`
	Token         string `env:"STANDUP_TOKEN,required=true"`
	LogLevel      string `env:"LOG_LEVEL,default=INFO"`
	Colours       bool   `env:"STANDUP_COLOURS,default=true"`
}

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

// run dials the team feed, prints every event and answers pings until
// the user quits or the server drops the connection.
func run() (int, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	color.Enable = config.Colours

	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	target := url.URL{Scheme: "ws", Host: config.ServerAddress, Path: "/ws"}
	query := target.Query()
	query.Set("token", config.Token)
	query.Set("team_id", strconv.FormatInt(config.TeamID, 10))
	target.RawQuery = query.Encode()

	conn, err := websocket.Dial(target.String(), "", "http://"+config.ServerAddress+"/")
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to %s: %w", config.ServerAddress, err)
	}
	defer func() {
		log.Info("Closing connection...")
		_ = conn.Close()
	}()

	// Unblocks Receive when the user quits.
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	log.Info(fmt.Sprintf(">>> Connected to %s, watching team %d (Ctrl+C to quit)...",
		config.ServerAddress, config.TeamID))

	for {
		var frame ws.Frame
		if err := websocket.JSON.Receive(conn, &frame); err != nil {
			if ctx.Err() != nil {
				return exitOK, nil
			}
			return exitRuntime, fmt.Errorf("stream error: %w", err)
		}

		switch frame.Type {
		case ws.FramePing:
			if err := websocket.JSON.Send(conn, ws.Frame{Type: ws.FramePong}); err != nil {
				return exitRuntime, fmt.Errorf("pong: %w", err)
			}
		case ws.FrameError:
			var payload ws.ErrorPayload
			_ = json.Unmarshal(frame.Payload, &payload)
			color.Red.Printf("rejected (%d): %s\n", payload.Code, payload.Reason)
			return exitRuntime, fmt.Errorf("server refused connection: %s", payload.Reason)
		case ws.FrameEvent:
			var envelope event.Envelope
			if err := json.Unmarshal(frame.Payload, &envelope); err != nil {
				log.Debug("Undecodable event", "error", err)
				continue
			}
			fmt.Println(render(envelope))
		}
	}
}

func render(e event.Envelope) string {
	stamp := color.Gray.Sprint(e.Timestamp.Local().Format(time.TimeOnly))
	names := make([]string, 0, len(e.Participants))
	for _, p := range e.Participants {
		names = append(names, p.Name)
	}
	line := fmt.Sprintf("[%s] %s", stamp, paint(e.Action))
	if e.ActorID != "" {
		line += " by " + string(e.ActorID)
	}
	if e.ItemID != nil {
		line += fmt.Sprintf(" item=%d", *e.ItemID)
	}
	if len(e.Metadata) > 0 {
		if meta, err := json.Marshal(e.Metadata); err == nil {
			line += " " + string(meta)
		}
	}
	return line + color.Gray.Sprintf(" (%s)", strings.Join(names, ", "))
}

func paint(action event.Action) string {
	switch action {
	case event.SessionStarted, event.FocusStarted, event.ParticipantJoined:
		return color.Green.Sprint(action)
	case event.SessionEnded, event.FocusStopped, event.ParticipantLeft:
		return color.Yellow.Sprint(action)
	case event.SessionOverrun, event.AutoStartCancelled:
		return color.Red.Sprint(action)
	case event.AutoStartPrompt:
		return color.Cyan.Sprint(action)
	default:
		return color.White.Sprint(action)
	}
}
