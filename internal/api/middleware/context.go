package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/zenbase/gateway/internal/domain"
)

type contextKey string

const (
	tenantContextKey      contextKey = "tenant"
	principalContextKey   contextKey = "principal"
	accessTokenContextKey contextKey = "access_token"
)

// TenantFromContext returns the tenant attached by the tenant stage, or
// nil on routes that never passed through it.
func TenantFromContext(ctx context.Context) *domain.Tenant {
	t, _ := ctx.Value(tenantContextKey).(*domain.Tenant)
	return t
}

// PrincipalFromContext returns the authenticated caller, or nil for
// anonymous requests.
func PrincipalFromContext(ctx context.Context) *domain.Principal {
	p, _ := ctx.Value(principalContextKey).(*domain.Principal)
	return p
}

// AccessTokenFromContext returns the raw bearer token attached by the
// auth stage, or "" when the request is anonymous.
func AccessTokenFromContext(ctx context.Context) string {
	t, _ := ctx.Value(accessTokenContextKey).(string)
	return t
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
