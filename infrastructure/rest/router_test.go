package rest

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"standup-lab/auth"
	"standup-lab/domain"
	"standup-lab/domain/event"
	"standup-lab/errors"
	"standup-lab/mocks"
	"standup-lab/observability"
	"standup-lab/services"
	"strings"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const secret = "rest-secret"

var alice = domain.Identity{UserID: "alice", Username: "alice", DisplayName: "Alice"}

func newRouter(t *testing.T) (http.Handler, *mocks.MockIStandupService) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	service := mocks.NewMockIStandupService(gomock.NewController(t))
	monitoring := observability.NewMonitoringManager(log, time.Second)
	monitoring.ConnectionOpened()
	return NewRouter(log, service, auth.NewTokenVerifier(secret), nil, monitoring, nil), service
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	token, err := auth.GenerateToken(secret, alice, time.Hour)
	require.NoError(t, err)
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestRouter_Session_Commands(t *testing.T) {
	tests := []struct {
		path   string
		expect func(service *mocks.MockIStandupService, status event.TeamStatus)
	}{
		{"/api/teams/3/session/start", func(s *mocks.MockIStandupService, status event.TeamStatus) {
			s.EXPECT().StartSession(domain.TeamID(3), alice).Return(status, true)
		}},
		{"/api/teams/3/session/stop", func(s *mocks.MockIStandupService, status event.TeamStatus) {
			s.EXPECT().StopSession(domain.TeamID(3), alice).Return(status, true)
		}},
		{"/api/teams/3/proposal/accept", func(s *mocks.MockIStandupService, status event.TeamStatus) {
			s.EXPECT().AcceptProposal(domain.TeamID(3), alice).Return(status, true)
		}},
		{"/api/teams/3/proposal/decline", func(s *mocks.MockIStandupService, status event.TeamStatus) {
			s.EXPECT().DeclineProposal(domain.TeamID(3), alice).Return(status, true)
		}},
		{"/api/teams/3/focus/stop", func(s *mocks.MockIStandupService, status event.TeamStatus) {
			s.EXPECT().StopFocus(domain.TeamID(3), alice).Return(status, true)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := require.New(t)
			router, service := newRouter(t)
			status := event.TeamStatus{TeamID: 3, Current: 2, Required: 4, Participants: []event.Participant{}}
			tt.expect(service, status)

			recorder := do(t, router, http.MethodPost, tt.path, "")

			req.Equal(http.StatusOK, recorder.Code)
			var response CommandResponse
			req.NoError(json.Unmarshal(recorder.Body.Bytes(), &response))
			req.True(response.Applied)
			req.Equal(domain.TeamID(3), response.Status.TeamID)
			req.Equal(4, response.Status.Required)
		})
	}
}

func TestRouter_Invalid_Transition_Is_Not_An_Error(t *testing.T) {
	req := require.New(t)
	router, service := newRouter(t)
	service.EXPECT().StopSession(domain.TeamID(3), alice).Return(event.TeamStatus{TeamID: 3}, false)

	recorder := do(t, router, http.MethodPost, "/api/teams/3/session/stop", "")

	req.Equal(http.StatusOK, recorder.Code)
	req.Contains(recorder.Body.String(), `"applied":false`)
}

func TestRouter_StartFocus(t *testing.T) {
	req := require.New(t)
	router, service := newRouter(t)
	item := int64(42)
	service.EXPECT().
		StartFocus(gomock.Any(), domain.TeamID(3), alice, services.FocusRequest{PresenterID: "bob", ItemID: &item}).
		Return(event.TeamStatus{TeamID: 3}, true, nil)
	service.EXPECT().
		StartFocus(gomock.Any(), domain.TeamID(3), alice, services.FocusRequest{PresenterID: "mallory"}).
		Return(event.TeamStatus{}, false, fmt.Errorf("%w: mallory", errors.ErrNotMember))

	recorder := do(t, router, http.MethodPost, "/api/teams/3/focus/start", `{"presenter_id":"bob","item_id":42}`)
	req.Equal(http.StatusOK, recorder.Code)

	recorder = do(t, router, http.MethodPost, "/api/teams/3/focus/start", `{"presenter_id":"mallory"}`)
	req.Equal(http.StatusForbidden, recorder.Code)

	recorder = do(t, router, http.MethodPost, "/api/teams/3/focus/start", `{"unknown":true}`)
	req.Equal(http.StatusBadRequest, recorder.Code)
}

func TestRouter_Status_And_Roster(t *testing.T) {
	req := require.New(t)
	router, service := newRouter(t)
	service.EXPECT().Status(domain.TeamID(5)).Return(event.TeamStatus{TeamID: 5, Current: 1})
	service.EXPECT().RefreshRoster(gomock.Any(), domain.TeamID(5)).Return(6, nil)
	service.EXPECT().RefreshRoster(gomock.Any(), domain.TeamID(5)).Return(6, fmt.Errorf("db down"))

	recorder := do(t, router, http.MethodGet, "/api/teams/5/status", "")
	req.Equal(http.StatusOK, recorder.Code)
	var status event.TeamStatus
	req.NoError(json.Unmarshal(recorder.Body.Bytes(), &status))
	req.Equal(1, status.Current)

	recorder = do(t, router, http.MethodPost, "/api/teams/5/roster/refresh", "")
	req.Equal(http.StatusOK, recorder.Code)
	var roster RosterResponse
	req.NoError(json.Unmarshal(recorder.Body.Bytes(), &roster))
	req.Equal(RosterResponse{TeamID: 5, Required: 6}, roster)

	// A failed refresh still reports the cached value
	recorder = do(t, router, http.MethodPost, "/api/teams/5/roster/refresh", "")
	req.Equal(http.StatusServiceUnavailable, recorder.Code)
	req.NoError(json.Unmarshal(recorder.Body.Bytes(), &roster))
	req.True(roster.Stale)
	req.Equal(6, roster.Required)
}

func TestRouter_Notify(t *testing.T) {
	req := require.New(t)
	router, service := newRouter(t)
	item := int64(42)
	service.EXPECT().
		Notify(gomock.Any(), alice, services.NotificationRequest{Action: event.ItemUpdated, ItemID: &item}).
		Return(domain.TeamID(3), nil)
	service.EXPECT().
		Notify(gomock.Any(), alice, gomock.Any()).
		Return(domain.TeamID(0), fmt.Errorf("%w: 9", errors.ErrItemNotFound))

	recorder := do(t, router, http.MethodPost, "/api/notifications", `{"action":"item_updated","item_id":42}`)
	req.Equal(http.StatusAccepted, recorder.Code)
	req.JSONEq(`{"team_id":3}`, recorder.Body.String())

	recorder = do(t, router, http.MethodPost, "/api/notifications", `{"action":"item_updated","item_id":9}`)
	req.Equal(http.StatusNotFound, recorder.Code)
}

func TestRouter_Rejects_Bad_Requests(t *testing.T) {
	req := require.New(t)
	router, _ := newRouter(t)

	// Invalid team id
	recorder := do(t, router, http.MethodPost, "/api/teams/abc/session/start", "")
	req.Equal(http.StatusBadRequest, recorder.Code)

	// Missing bearer token
	request := httptest.NewRequest(http.MethodPost, "/api/teams/3/session/start", nil)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	req.Equal(http.StatusUnauthorized, recorder.Code)
}

func TestRouter_Debug_Endpoints(t *testing.T) {
	req := require.New(t)
	router, _ := newRouter(t)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/up", nil))
	req.Equal(http.StatusOK, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/debug/stats", nil))
	req.Equal(http.StatusOK, recorder.Code)
	var stats observability.MonitoringStats
	req.NoError(json.Unmarshal(recorder.Body.Bytes(), &stats))
	req.Equal(int64(1), stats.OpenConnections)
}
