package auth

import (
	"fmt"
	"standup-lab/domain"
	"standup-lab/errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// HandshakeRequest carries the raw connection parameters.
type HandshakeRequest struct {
	Token  string `validate:"required"`
	TeamID string `validate:"required,number"`
}

// ValidateHandshake rejects missing or malformed parameters and returns
// the parsed team id.
func ValidateHandshake(req HandshakeRequest) (domain.TeamID, error) {
	req.Token = strings.TrimSpace(req.Token)
	req.TeamID = strings.TrimSpace(req.TeamID)
	if err := validate.Struct(req); err != nil {
		return 0, fmt.Errorf("%w: %v", errors.ErrMissingParams, err)
	}
	teamID, err := domain.ParseTeamID(req.TeamID)
	if err != nil || teamID <= 0 {
		return 0, fmt.Errorf("%w: team id %q", errors.ErrMissingParams, req.TeamID)
	}
	return teamID, nil
}
