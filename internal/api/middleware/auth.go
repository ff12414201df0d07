package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/zenbase/gateway/internal/domain"
	"go.uber.org/zap"
)

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func withIdentity(ctx context.Context, principal *domain.Principal, token string) context.Context {
	ctx = context.WithValue(ctx, principalContextKey, principal)
	return context.WithValue(ctx, accessTokenContextKey, token)
}

// RequireAuth is the auth stage for protected routes: a well-formed
// bearer token must verify against the identity provider or the request
// fails with 401.
func RequireAuth(verifier domain.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				writeError(w, http.StatusUnauthorized, "Missing or invalid authorization header")
				return
			}

			principal, err := verifier.Verify(r.Context(), token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), principal, token)))
		})
	}
}

// OptionalAuth attaches identity when a valid bearer token is present and
// proceeds silently on any failure. Swallowing verifier errors here is
// deliberate: routes using it personalize output but never require
// identity, so a provider outage degrades to an anonymous response.
func OptionalAuth(verifier domain.TokenVerifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token, ok := bearerToken(r); ok {
				principal, err := verifier.Verify(r.Context(), token)
				if err != nil {
					logger.Debug("optional auth: token rejected", zap.Error(err))
				} else {
					r = r.WithContext(withIdentity(r.Context(), principal, token))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
