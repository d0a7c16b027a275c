package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"standup-lab/contract"
	"standup-lab/domain"
	"standup-lab/errors"
	"strings"
)

type contextKey string

const IdentityKey contextKey = "identity"

// BearerAuth resolves the caller identity from the Authorization header.
// Team membership is not checked here: command callers are already
// authorised upstream.
func BearerAuth(verifier contract.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				unauthorized(w, "authorization token is missing")
				return
			}

			// Expecting the standard "Bearer <token>" format
			tokenStr := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			identity, err := verifier.Verify(tokenStr)
			if err != nil {
				if errors.Is(err, errors.ErrMissingSecret) {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusServiceUnavailable)
					_ = json.NewEncoder(w).Encode(map[string]string{"error": "authentication is not configured"})
					return
				}
				unauthorized(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(domain.Identity)
	return identity, ok
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
