//go:generate go run go.uber.org/mock/mockgen -source=standup_service.go -destination=../mocks/mock_standup_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"standup-lab/contract"
	"standup-lab/domain"
	"standup-lab/domain/event"
	"standup-lab/errors"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FocusRequest designates who takes the floor. An empty presenter means
// the caller.
type FocusRequest struct {
	PresenterID   domain.UserID `json:"presenter_id"`
	PresenterName string        `json:"presenter_name" validate:"max=120"`
	ItemID        *int64        `json:"item_id" validate:"omitempty,gt=0"`
}

// NotificationRequest is posted by the check-in/work item layer after
// each change. TeamID skips the lookup, which deleted records need.
type NotificationRequest struct {
	Action    event.Action   `json:"action" validate:"required,oneof=item_created item_updated item_deleted item_reassigned checkin_created checkin_updated checkin_deleted"`
	TeamID    domain.TeamID  `json:"team_id" validate:"omitempty,gt=0"`
	CheckinID *int64         `json:"checkin_id" validate:"omitempty,gt=0"`
	ItemID    *int64         `json:"item_id" validate:"omitempty,gt=0"`
	Metadata  map[string]any `json:"metadata"`
}

type IStandupService interface {
	StartSession(teamID domain.TeamID, actor domain.Identity) (event.TeamStatus, bool)
	StopSession(teamID domain.TeamID, actor domain.Identity) (event.TeamStatus, bool)
	AcceptProposal(teamID domain.TeamID, actor domain.Identity) (event.TeamStatus, bool)
	DeclineProposal(teamID domain.TeamID, actor domain.Identity) (event.TeamStatus, bool)
	StartFocus(ctx context.Context, teamID domain.TeamID, actor domain.Identity, req FocusRequest) (event.TeamStatus, bool, error)
	StopFocus(teamID domain.TeamID, actor domain.Identity) (event.TeamStatus, bool)
	Status(teamID domain.TeamID) event.TeamStatus
	RefreshRoster(ctx context.Context, teamID domain.TeamID) (int, error)
	Notify(ctx context.Context, actor domain.Identity, req NotificationRequest) (domain.TeamID, error)
}

// StandupService is the command facade of the REST layer. Callers are
// already authenticated; team permissions are enforced upstream.
type StandupService struct {
	log         *slog.Logger
	coordinator contract.ICoordinator
	membership  contract.MembershipStore
	resolver    contract.ItemResolver
}

func NewStandupService(
	log *slog.Logger,
	coordinator contract.ICoordinator,
	membership contract.MembershipStore,
	resolver contract.ItemResolver,
) IStandupService {
	return &StandupService{
		log:         log,
		coordinator: coordinator,
		membership:  membership,
		resolver:    resolver,
	}
}

func (s *StandupService) StartSession(teamID domain.TeamID, actor domain.Identity) (event.TeamStatus, bool) {
	return s.coordinator.ForceStart(teamID, actor)
}

func (s *StandupService) StopSession(teamID domain.TeamID, actor domain.Identity) (event.TeamStatus, bool) {
	return s.coordinator.ForceStop(teamID, actor)
}

func (s *StandupService) AcceptProposal(teamID domain.TeamID, actor domain.Identity) (event.TeamStatus, bool) {
	return s.coordinator.AcceptProposal(teamID, actor)
}

func (s *StandupService) DeclineProposal(teamID domain.TeamID, actor domain.Identity) (event.TeamStatus, bool) {
	return s.coordinator.DeclineProposal(teamID, actor)
}

// StartFocus checks that a designated presenter belongs to the team.
func (s *StandupService) StartFocus(ctx context.Context, teamID domain.TeamID, actor domain.Identity, req FocusRequest) (event.TeamStatus, bool, error) {
	if err := validate.Struct(req); err != nil {
		return event.TeamStatus{}, false, fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}
	if req.PresenterID == "" || req.PresenterID == actor.UserID {
		status, applied := s.coordinator.StartFocus(teamID, actor, nil, req.ItemID)
		return status, applied, nil
	}

	member, err := s.membership.IsMember(ctx, teamID, req.PresenterID)
	if err != nil {
		return event.TeamStatus{}, false, fmt.Errorf("%w: %w", errors.ErrMembershipUnavailable, err)
	}
	if !member {
		return event.TeamStatus{}, false, fmt.Errorf("%w: presenter %s", errors.ErrNotMember, req.PresenterID)
	}
	presenter := domain.Identity{UserID: req.PresenterID, DisplayName: req.PresenterName}
	status, applied := s.coordinator.StartFocus(teamID, actor, &presenter, req.ItemID)
	return status, applied, nil
}

func (s *StandupService) StopFocus(teamID domain.TeamID, actor domain.Identity) (event.TeamStatus, bool) {
	return s.coordinator.StopFocus(teamID, actor)
}

func (s *StandupService) Status(teamID domain.TeamID) event.TeamStatus {
	return s.coordinator.Status(teamID)
}

func (s *StandupService) RefreshRoster(ctx context.Context, teamID domain.TeamID) (int, error) {
	return s.coordinator.RefreshRoster(ctx, teamID)
}

// Notify relays a check-in/work item change to the owning team and returns it.
func (s *StandupService) Notify(ctx context.Context, actor domain.Identity, req NotificationRequest) (domain.TeamID, error) {
	if err := validate.Struct(req); err != nil {
		return 0, fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}
	teamID, err := s.resolveTeam(ctx, req)
	if err != nil {
		return 0, err
	}

	e := event.New(req.Action, teamID, actor.UserID, time.Time{})
	e.ItemID = req.ItemID
	e.CheckinID = req.CheckinID
	for key, value := range req.Metadata {
		e = e.With(key, value)
	}
	s.coordinator.Broadcast(teamID, e)
	s.log.Debug("Notification relayed", "team_id", teamID, "action", req.Action, "user_id", actor.UserID)
	return teamID, nil
}

func (s *StandupService) resolveTeam(ctx context.Context, req NotificationRequest) (domain.TeamID, error) {
	if req.TeamID > 0 {
		return req.TeamID, nil
	}
	switch req.Action {
	case event.ItemCreated, event.ItemUpdated, event.ItemDeleted, event.ItemReassigned:
		if req.ItemID == nil {
			return 0, fmt.Errorf("%w: %s needs item_id or team_id", errors.ErrInvalidRequest, req.Action)
		}
		return s.resolver.TeamForItem(ctx, *req.ItemID)
	default:
		if req.CheckinID == nil {
			return 0, fmt.Errorf("%w: %s needs checkin_id or team_id", errors.ErrInvalidRequest, req.Action)
		}
		return s.resolver.TeamForCheckin(ctx, *req.CheckinID)
	}
}
