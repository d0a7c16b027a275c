package services_test

import (
	"context"
	"fmt"
	"log/slog"
	"standup-lab/domain"
	"standup-lab/domain/event"
	"standup-lab/errors"
	"standup-lab/mocks"
	"standup-lab/services"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var actor = domain.Identity{UserID: "alice", DisplayName: "Alice"}

type fixture struct {
	coordinator *mocks.MockICoordinator
	membership  *mocks.MockMembershipStore
	resolver    *mocks.MockItemResolver
	service     services.IStandupService
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	f := fixture{
		coordinator: mocks.NewMockICoordinator(ctrl),
		membership:  mocks.NewMockMembershipStore(ctrl),
		resolver:    mocks.NewMockItemResolver(ctrl),
	}
	f.service = services.NewStandupService(logs.GetLoggerFromLevel(slog.LevelDebug), f.coordinator, f.membership, f.resolver)
	return f
}

func TestStandupService_Session_Commands_Delegate(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	status := event.TeamStatus{TeamID: 3, Current: 2, Required: 2}

	f.coordinator.EXPECT().ForceStart(domain.TeamID(3), actor).Return(status, true)
	f.coordinator.EXPECT().ForceStop(domain.TeamID(3), actor).Return(status, false)
	f.coordinator.EXPECT().AcceptProposal(domain.TeamID(3), actor).Return(status, true)
	f.coordinator.EXPECT().DeclineProposal(domain.TeamID(3), actor).Return(status, false)

	got, applied := f.service.StartSession(3, actor)
	req.True(applied)
	req.Equal(status, got)
	_, applied = f.service.StopSession(3, actor)
	req.False(applied)
	_, applied = f.service.AcceptProposal(3, actor)
	req.True(applied)
	_, applied = f.service.DeclineProposal(3, actor)
	req.False(applied)
}

func TestStandupService_StartFocus_Defaults_To_Caller(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	item := int64(42)

	f.coordinator.EXPECT().StartFocus(domain.TeamID(3), actor, nil, &item).Return(event.TeamStatus{TeamID: 3}, true)

	_, applied, err := f.service.StartFocus(context.Background(), 3, actor, services.FocusRequest{ItemID: &item})

	req.NoError(err)
	req.True(applied)
}

func TestStandupService_StartFocus_Checks_Presenter_Membership(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	presenter := domain.Identity{UserID: "bob", DisplayName: "Bob"}

	// Given bob is a member and mallory is not
	f.membership.EXPECT().IsMember(gomock.Any(), domain.TeamID(3), domain.UserID("bob")).Return(true, nil)
	f.membership.EXPECT().IsMember(gomock.Any(), domain.TeamID(3), domain.UserID("mallory")).Return(false, nil)
	f.coordinator.EXPECT().StartFocus(domain.TeamID(3), actor, &presenter, nil).Return(event.TeamStatus{TeamID: 3}, true)

	_, applied, err := f.service.StartFocus(context.Background(), 3, actor, services.FocusRequest{PresenterID: "bob", PresenterName: "Bob"})
	req.NoError(err)
	req.True(applied)

	_, applied, err = f.service.StartFocus(context.Background(), 3, actor, services.FocusRequest{PresenterID: "mallory"})
	req.ErrorIs(err, errors.ErrNotMember)
	req.False(applied)
}

func TestStandupService_StartFocus_Rejects_Invalid_Item(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	item := int64(-1)

	_, _, err := f.service.StartFocus(context.Background(), 3, actor, services.FocusRequest{ItemID: &item})

	req.ErrorIs(err, errors.ErrInvalidRequest)
}

func TestStandupService_Notify_Resolves_Team(t *testing.T) {
	item := int64(42)
	checkin := int64(7)

	tests := []struct {
		name    string
		request services.NotificationRequest
		setup   func(f fixture)
		want    domain.TeamID
		wantErr error
	}{
		{
			name:    "item via resolver",
			request: services.NotificationRequest{Action: event.ItemUpdated, ItemID: &item},
			setup: func(f fixture) {
				f.resolver.EXPECT().TeamForItem(gomock.Any(), item).Return(domain.TeamID(5), nil)
			},
			want: 5,
		},
		{
			name:    "checkin via resolver",
			request: services.NotificationRequest{Action: event.CheckinCreated, CheckinID: &checkin},
			setup: func(f fixture) {
				f.resolver.EXPECT().TeamForCheckin(gomock.Any(), checkin).Return(domain.TeamID(6), nil)
			},
			want: 6,
		},
		{
			name:    "explicit team for deleted item",
			request: services.NotificationRequest{Action: event.ItemDeleted, ItemID: &item, TeamID: 9},
			setup:   func(fixture) {},
			want:    9,
		},
		{
			name:    "unknown item",
			request: services.NotificationRequest{Action: event.ItemReassigned, ItemID: &item},
			setup: func(f fixture) {
				f.resolver.EXPECT().TeamForItem(gomock.Any(), item).Return(domain.TeamID(0), fmt.Errorf("%w: 42", errors.ErrItemNotFound))
			},
			wantErr: errors.ErrItemNotFound,
		},
		{
			name:    "unknown action",
			request: services.NotificationRequest{Action: "session_started", TeamID: 1},
			setup:   func(fixture) {},
			wantErr: errors.ErrInvalidRequest,
		},
		{
			name:    "item action without item",
			request: services.NotificationRequest{Action: event.ItemCreated},
			setup:   func(fixture) {},
			wantErr: errors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			f := newFixture(t)
			tt.setup(f)
			var relayed event.Envelope
			if tt.wantErr == nil {
				f.coordinator.EXPECT().Broadcast(tt.want, gomock.Any()).Do(func(_ domain.TeamID, e event.Envelope) {
					relayed = e
				})
			}

			teamID, err := f.service.Notify(context.Background(), actor, tt.request)

			if tt.wantErr != nil {
				req.ErrorIs(err, tt.wantErr)
				return
			}
			req.NoError(err)
			req.Equal(tt.want, teamID)
			req.Equal(tt.request.Action, relayed.Action)
			req.Equal(actor.UserID, relayed.ActorID)
			req.Equal(tt.request.ItemID, relayed.ItemID)
			req.Equal(tt.request.CheckinID, relayed.CheckinID)
		})
	}
}

func TestStandupService_Notify_Copies_Metadata(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	var relayed event.Envelope
	f.coordinator.EXPECT().Broadcast(domain.TeamID(2), gomock.Any()).Do(func(_ domain.TeamID, e event.Envelope) {
		relayed = e
	})

	_, err := f.service.Notify(context.Background(), actor, services.NotificationRequest{
		Action:   event.ItemReassigned,
		TeamID:   2,
		Metadata: map[string]any{"assignee": "bob"},
	})

	req.NoError(err)
	req.Equal("bob", relayed.Metadata["assignee"])
}
