package auth

import (
	"fmt"
	"standup-lab/domain"
	"standup-lab/errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "standup-lab"

// CustomClaims defines the structure of the data stored inside the JWT.
type CustomClaims struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	jwt.RegisteredClaims
}

// TokenVerifier checks HS256 identity tokens against a shared secret.
// An empty secret is a server misconfiguration, reported on every call
// rather than at construction so the process can still boot and refuse
// connections with a distinct code.
type TokenVerifier struct {
	secret []byte
}

func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{secret: []byte(strings.TrimSpace(secret))}
}

// Verify parses and validates the signature and expiration of a JWT string.
func (v *TokenVerifier) Verify(tokenString string) (domain.Identity, error) {
	if v == nil || len(v.secret) == 0 {
		return domain.Identity{}, errors.ErrMissingSecret
	}

	claims := &CustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", errors.ErrInvalidToken, err)
	}
	if !token.Valid {
		return domain.Identity{}, errors.ErrInvalidToken
	}

	userID := strings.TrimSpace(claims.UserID)
	if userID == "" {
		userID = strings.TrimSpace(claims.Subject)
	}
	if userID == "" {
		return domain.Identity{}, fmt.Errorf("%w: missing user id", errors.ErrInvalidToken)
	}

	return domain.Identity{
		UserID:      domain.UserID(userID),
		Username:    claims.Username,
		DisplayName: claims.DisplayName,
	}, nil
}

// GenerateToken creates a signed JWT for a specific user.
// Used by the seed tool and tests; production tokens come from the login service.
func GenerateToken(secret string, identity domain.Identity, duration time.Duration) (string, error) {
	if strings.TrimSpace(secret) == "" {
		return "", errors.ErrMissingSecret
	}
	now := time.Now()
	claims := &CustomClaims{
		UserID:      string(identity.UserID),
		Username:    identity.Username,
		DisplayName: identity.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   string(identity.UserID),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	// Create the token using the HS256 algorithm (HMAC with SHA256).
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(strings.TrimSpace(secret)))
}
