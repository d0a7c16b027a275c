package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSession_NextWarning_Minute_Boundaries(t *testing.T) {
	req := require.New(t)
	start := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	session := NewSession(start, Identity{UserID: "u-1", Username: "ana"}, 15*time.Minute, 3)

	cases := []struct {
		at      time.Duration
		minutes int
		due     bool
	}{
		{at: 14 * time.Minute},
		{at: 15*time.Minute + 15*time.Second},
		{at: 15*time.Minute + 59*time.Second},
		{at: 16 * time.Minute, minutes: 1, due: true},
		{at: 16*time.Minute + 45*time.Second},
		{at: 17*time.Minute + 1*time.Second, minutes: 2, due: true},
		{at: 19*time.Minute + 30*time.Second, minutes: 4, due: true},
		{at: 19*time.Minute + 45*time.Second},
	}
	for _, tc := range cases {
		minutes, due := session.NextWarning(start.Add(tc.at))
		req.Equal(tc.due, due, tc.at.String())
		req.Equal(tc.minutes, minutes, tc.at.String())
	}
	req.Equal(4, session.OverMinutes())
}

func TestSession_OverMinutes_Before_Any_Warning(t *testing.T) {
	session := NewSession(time.Now(), Identity{UserID: "u-1"}, time.Minute, 1)

	require.Equal(t, 0, session.OverMinutes())
}
