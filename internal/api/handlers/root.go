package handlers

import (
	"net/http"
	"time"

	"github.com/zenbase/gateway/internal/api/middleware"
	"github.com/zenbase/gateway/internal/buildconfig"
)

const apiVersion = "1.0.0"

// RootHandler serves the unauthenticated index and health endpoints.
type RootHandler struct{}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

func (h *RootHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   buildconfig.Version(),
		"commit":    buildconfig.Commit(),
	})
}

// Index describes the API surface for anyone hitting the bare host.
func (h *RootHandler) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":    "Zenbase API",
		"version": apiVersion,
		"message": "Multi-tenant enterprise platform",
		"endpoints": map[string]string{
			"health":     "/health",
			"api":        "/api/v1?tenant=TENANT_SLUG",
			"tenantInfo": "/api/v1/tenant/info?tenant=TENANT_SLUG",
			"dashboard":  "/api/v1/tenant/dashboard?tenant=TENANT_SLUG (requires auth)",
			"admins":     "/api/v1/tenant/admins?tenant=TENANT_SLUG (requires auth)",
		},
		"examples": map[string]string{
			"seattle":   "/api/v1/tenant/info?tenant=seattle",
			"portland":  "/api/v1/tenant/info?tenant=portland",
			"vancouver": "/api/v1/tenant/info?tenant=vancouver",
		},
	})
}

// APIRoot answers the versioned group root with the resolved tenant.
func (h *RootHandler) APIRoot(w http.ResponseWriter, r *http.Request) {
	tenant := middleware.TenantFromContext(r.Context())
	if tenant == nil {
		writeError(w, http.StatusInternalServerError, "tenant not resolved")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Zenbase API",
		"tenant":  tenant.Slug,
		"version": apiVersion,
	})
}

// NotFound is the JSON 404 for unmatched routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Not found")
}
