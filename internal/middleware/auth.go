package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/passgen/passgen-go/internal/crypto"
)

type contextKey string

const subjectKey contextKey = "subject"

// PresetAuth guards preset writes. The bearer token must be one minted by
// IssuePresetToken: HS256 with secret, issuer "passgen", audience
// "passgen-presets" and an expiry. Tokens for any other audience are refused
// even when signed with the same secret.
//
// When maxLifetime is positive, tokens whose exp-iat span exceeds it are
// refused too, so JWT_EXPIRY caps tokens minted elsewhere with a longer --ttl.
func PresetAuth(secret string, maxLifetime time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONError(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			claims, err := crypto.ParsePresetToken(token, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, err.Error())
				return
			}
			if maxLifetime > 0 && !withinLifetime(claims, maxLifetime) {
				writeJSONError(w, http.StatusUnauthorized, "token lifetime exceeds server limit")
				return
			}

			slog.Info("preset write authorized",
				"subject", claims.Subject,
				"method", r.Method,
				"path", r.URL.Path,
			)

			ctx := context.WithValue(r.Context(), subjectKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func withinLifetime(claims *crypto.PresetClaims, maxLifetime time.Duration) bool {
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Sub(claims.IssuedAt.Time) <= maxLifetime
}

// SubjectFromContext returns the token subject set by PresetAuth.
func SubjectFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(subjectKey).(string)
	return sub, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
