package domain

import "time"

// OverrunGranularity is the width of one overrun warning window.
const OverrunGranularity = time.Minute

// Session is the in-progress standup window of a team.
type Session struct {
	StartedAt            time.Time
	InitiatorID          UserID
	Initiator            string
	Budget               time.Duration
	LastWarning          int
	RequiredParticipants int
}

func NewSession(startedAt time.Time, initiator Identity, budget time.Duration, required int) *Session {
	return &Session{
		StartedAt:            startedAt,
		InitiatorID:          initiator.UserID,
		Initiator:            initiator.Label(),
		Budget:               budget,
		LastWarning:          -1,
		RequiredParticipants: required,
	}
}

func (s *Session) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.StartedAt)
}

// NextWarning reports whether an overrun warning is due at now and, if so,
// records it. The returned value is the number of whole minutes past the
// budget: the first warning fires at budget+1m with 1.
// A given minute boundary is reported at most once, whatever the tick cadence.
func (s *Session) NextWarning(now time.Time) (int, bool) {
	elapsed := s.Elapsed(now)
	if elapsed <= s.Budget {
		return 0, false
	}
	index := int((elapsed - s.Budget) / OverrunGranularity)
	if index < 1 || index <= s.LastWarning {
		return 0, false
	}
	s.LastWarning = index
	return index, true
}

// OverMinutes is the last reported overrun minute, 0 before any warning.
func (s *Session) OverMinutes() int {
	return max(s.LastWarning, 0)
}
