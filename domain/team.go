package domain

import (
	"strconv"
	"strings"
)

type TeamID int64

func (t TeamID) String() string {
	return strconv.FormatInt(int64(t), 10)
}

// ParseTeamID accepts the decimal form used in query strings and URL paths.
func ParseTeamID(raw string) (TeamID, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, err
	}
	return TeamID(id), nil
}

type UserID string

// Identity is who a token resolved to.
type Identity struct {
	UserID      UserID
	Username    string
	DisplayName string
}

// Label is what other participants see: the display name when set,
// the username otherwise.
func (i Identity) Label() string {
	if name := strings.TrimSpace(i.DisplayName); name != "" {
		return name
	}
	if name := strings.TrimSpace(i.Username); name != "" {
		return name
	}
	return string(i.UserID)
}
