package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/kojiauth/kojiauth-go/internal/config"
	"github.com/kojiauth/kojiauth-go/internal/crypto"
	"github.com/kojiauth/kojiauth-go/internal/model"
)

type contextKey string

const userIDKey contextKey = "userID"

// JWTAuth returns middleware that validates a Bearer token from the
// Authorization header. Every rejection is a uniform 401; the reason
// (missing header, bad signature, expired) is not surfaced.
func JWTAuth(cfg config.TokenConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeUnauthorized(w, cfg.Realm, "missing authorization header")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeUnauthorized(w, cfg.Realm, "invalid authorization format")
				return
			}

			claims, err := crypto.ValidateToken(token, cfg)
			if err != nil {
				writeUnauthorized(w, cfg.Realm, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated user id from the request
// context.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

func writeUnauthorized(w http.ResponseWriter, realm, msg string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="`+realm+`"`)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(model.ErrorResponse{
		Message: msg,
		Code:    http.StatusUnauthorized,
	})
}
