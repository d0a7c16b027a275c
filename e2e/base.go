package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"standup-lab/auth"
	"standup-lab/domain"
	"standup-lab/domain/event"
	"standup-lab/infrastructure/ws"
	"strconv"
	"time"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
	"golang.org/x/net/websocket"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
)

type BaseSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration and skips the suite
// when no server address is provided.
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.ServerAddr == "" {
		s.T().Skip("E2E_SERVER_ADDR not set")
	}
}

func (s *BaseSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

func (s *BaseSuite) Token(identity domain.Identity) string {
	token, err := auth.GenerateToken(s.Config.JWTSecret, identity, time.Hour)
	s.Require().NoError(err)
	return token
}

// Dial opens a team feed for identity.
func (s *BaseSuite) Dial(identity domain.Identity) *websocket.Conn {
	target := url.URL{Scheme: "ws", Host: s.Config.ServerAddr, Path: "/ws"}
	query := target.Query()
	query.Set("token", s.Token(identity))
	query.Set("team_id", strconv.FormatInt(s.Config.TeamID, 10))
	target.RawQuery = query.Encode()

	conn, err := websocket.Dial(target.String(), "", "http://"+s.Config.ServerAddr+"/")
	s.Require().NoError(err, "Failed to dial "+target.Host)
	return conn
}

// Expect reads frames until an event with the given action arrives.
// Pings are answered on the way.
func (s *BaseSuite) Expect(conn *websocket.Conn, action event.Action) event.Envelope {
	deadline := time.Now().Add(5 * time.Second)
	s.Require().NoError(conn.SetReadDeadline(deadline))
	for {
		var frame ws.Frame
		s.Require().NoError(websocket.JSON.Receive(conn, &frame), "waiting for "+string(action))
		if s.Config.DebugJSON {
			s.T().Logf("FRAME %s %s", frame.Type, frame.Payload)
		}
		switch frame.Type {
		case ws.FramePing:
			s.Require().NoError(websocket.JSON.Send(conn, ws.Frame{Type: ws.FramePong}))
		case ws.FrameEvent:
			var envelope event.Envelope
			s.Require().NoError(json.Unmarshal(frame.Payload, &envelope))
			if envelope.Action == action {
				return envelope
			}
		}
	}
}

// Command posts to the team API as identity.
func (s *BaseSuite) Command(identity domain.Identity, path string, body any) *http.Response {
	var payload bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&payload).Encode(body))
	}
	endpoint := fmt.Sprintf("http://%s/api/teams/%d/%s", s.Config.ServerAddr, s.Config.TeamID, path)
	request, err := http.NewRequest(http.MethodPost, endpoint, &payload)
	s.Require().NoError(err)
	request.Header.Set("Authorization", "Bearer "+s.Token(identity))
	request.Header.Set("Content-Type", "application/json")

	response, err := http.DefaultClient.Do(request)
	s.Require().NoError(err)
	return response
}

// WithHealth provides a gRPC health client within a contextual test step.
func (s *BaseSuite) WithHealth(name string, fn func(ctx context.Context, client grpc_health_v1.HealthClient)) {
	s.Step(name)
	conn, err := grpc.NewClient(s.Config.HealthAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	s.Require().NoError(err, "Failed to connect to health server at "+s.Config.HealthAddr)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	fn(ctx, grpc_health_v1.NewHealthClient(conn))
}
