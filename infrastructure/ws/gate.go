package ws

import (
	"context"
	"fmt"
	"log/slog"
	"standup-lab/auth"
	"standup-lab/contract"
	"standup-lab/domain"
	"standup-lab/errors"
	"time"
)

// Admission is what a successful handshake attaches to a connection.
type Admission struct {
	Identity  domain.Identity
	TeamID    domain.TeamID
	Headcount int
}

// Gate decides whether a connection attempt may join a team.
// Nothing is registered until Admit succeeds.
type Gate struct {
	log         *slog.Logger
	verifier    contract.TokenVerifier
	membership  contract.MembershipStore
	coordinator contract.ICoordinator
	timeout     time.Duration
}

func NewGate(
	log *slog.Logger,
	verifier contract.TokenVerifier,
	membership contract.MembershipStore,
	coordinator contract.ICoordinator,
	timeout time.Duration,
) *Gate {
	return &Gate{
		log:         log,
		verifier:    verifier,
		membership:  membership,
		coordinator: coordinator,
		timeout:     timeout,
	}
}

// Admit checks, in order: parameters, token, membership. The returned error
// maps to a close code with errors.CloseCode.
func (g *Gate) Admit(ctx context.Context, token, rawTeamID string) (Admission, error) {
	teamID, err := auth.ValidateHandshake(auth.HandshakeRequest{Token: token, TeamID: rawTeamID})
	if err != nil {
		return Admission{}, err
	}
	if g.verifier == nil || g.membership == nil {
		return Admission{}, errors.ErrMissingSecret
	}

	identity, err := g.verifier.Verify(token)
	if err != nil {
		return Admission{}, err
	}

	lookupCtx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		lookupCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	member, err := g.membership.IsMember(lookupCtx, teamID, identity.UserID)
	if err != nil {
		g.log.Warn("Membership lookup failed", "team_id", teamID, "user_id", identity.UserID, "error", err)
		return Admission{}, fmt.Errorf("%w: %w", errors.ErrMembershipUnavailable, err)
	}
	if !member {
		return Admission{}, fmt.Errorf("%w: user %s, team %s", errors.ErrNotMember, identity.UserID, teamID)
	}

	return Admission{
		Identity:  identity,
		TeamID:    teamID,
		Headcount: g.coordinator.Headcount(ctx, teamID),
	}, nil
}
