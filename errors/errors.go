package errors

import (
	"errors"
	"fmt"
)

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	// Handshake failures, each with its own close code.
	ErrMissingParams         = fmt.Errorf("token and team id are required")
	ErrInvalidToken          = fmt.Errorf("invalid or expired token")
	ErrNotMember             = fmt.Errorf("user is not a member of the team")
	ErrMissingSecret         = fmt.Errorf("token signing secret is not configured")
	ErrMembershipUnavailable = fmt.Errorf("membership lookup unavailable")

	ErrCoordinatorClosed = fmt.Errorf("coordinator is shut down")
	ErrConnClosed        = fmt.Errorf("connection closed")
	ErrBackpressure      = fmt.Errorf("connection outbox is full")
	ErrUnresponsive      = fmt.Errorf("connection missed liveness deadline")

	ErrTeamNotFound    = fmt.Errorf("team not found")
	ErrCheckinNotFound = fmt.Errorf("checkin not found")
	ErrItemNotFound    = fmt.Errorf("work item not found")
	ErrInvalidRequest  = fmt.Errorf("invalid request")
)

// Close codes sent to a rejected connection before the link is dropped.
const (
	CloseMissingParams = 4400
	CloseInvalidToken  = 4401
	CloseNotMember     = 4403
	CloseMisconfigured = 4500
	CloseUnavailable   = 4503
)

// CloseCode maps a handshake error to its close code and tells whether
// the client may retry the same request later.
func CloseCode(err error) (int, bool) {
	switch {
	case errors.Is(err, ErrMissingParams):
		return CloseMissingParams, false
	case errors.Is(err, ErrInvalidToken):
		return CloseInvalidToken, false
	case errors.Is(err, ErrNotMember):
		return CloseNotMember, false
	case errors.Is(err, ErrMembershipUnavailable), errors.Is(err, ErrCoordinatorClosed):
		return CloseUnavailable, true
	default:
		return CloseMisconfigured, false
	}
}

// Is lets callers that import this package avoid shadowing the standard one.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
