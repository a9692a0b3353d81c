package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/rachitsingh/baatein/backend/pkg/utils"
)

type contextKey struct{}

var emailKey contextKey

// RequireSession rejects requests without a valid bearer session token
// and stores the authenticated email in the request context.
func RequireSession(tokens *SessionTokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := strings.TrimSpace(r.Header.Get("Authorization"))
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			email, err := tokens.Verify(strings.TrimSpace(token))
			if err != nil {
				utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), emailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// EmailFromContext returns the authenticated email set by RequireSession.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailKey).(string)
	return email, ok && email != ""
}
