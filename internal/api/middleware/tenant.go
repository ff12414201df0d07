package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/zenbase/gateway/internal/domain"
	"github.com/zenbase/gateway/internal/store"
	"github.com/zenbase/gateway/internal/tenancy"
	"go.uber.org/zap"
)

// ResolveTenant is the tenant stage of the pipeline: derive a slug from
// the host header (or the ?tenant= fallback), fetch the tenant record,
// and attach it to the request context. No slug is a 400; an unknown
// slug is a 404. Each request re-resolves; there is no cache here.
func ResolveTenant(tenants domain.TenantStore, baseDomain, localSuffix string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slug := tenancy.ResolveSlug(r.Host, r.URL.Query().Get("tenant"), baseDomain, localSuffix)
			if slug == "" {
				writeJSON(w, http.StatusBadRequest, map[string]string{
					"error":   "No tenant specified",
					"message": "Access via subdomain (e.g., seattle." + baseDomain + ") or ?tenant=slug",
				})
				return
			}

			tenant, err := tenants.GetBySlug(r.Context(), slug)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					writeJSON(w, http.StatusNotFound, map[string]string{
						"error":  "Tenant not found",
						"tenant": slug,
					})
					return
				}
				logger.Error("tenant lookup failed", zap.String("slug", slug), zap.Error(err))
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			ctx := context.WithValue(r.Context(), tenantContextKey, tenant)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
