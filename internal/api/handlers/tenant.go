package handlers

import (
	"net/http"

	"github.com/zenbase/gateway/internal/api/middleware"
	"github.com/zenbase/gateway/internal/domain"
	"github.com/zenbase/gateway/internal/service"
)

type TenantHandler struct {
	dashboards  *service.DashboardService
	admins      *service.AdminService
	development bool
}

func NewTenantHandler(dashboards *service.DashboardService, admins *service.AdminService, development bool) *TenantHandler {
	return &TenantHandler{dashboards: dashboards, admins: admins, development: development}
}

type infoResponse struct {
	Tenant *domain.Tenant    `json:"tenant"`
	User   *domain.Principal `json:"user"`
}

type dashboardResponse struct {
	Tenant *domain.Tenant           `json:"tenant"`
	Data   []domain.DashboardMetric `json:"data"`
}

type adminsResponse struct {
	Admins []domain.TenantAdmin `json:"admins"`
}

// Info returns the resolved tenant and the caller when one authenticated.
// The route uses optional auth, so user is null for anonymous requests.
func (h *TenantHandler) Info(w http.ResponseWriter, r *http.Request) {
	tenant := middleware.TenantFromContext(r.Context())
	if tenant == nil {
		writeError(w, http.StatusInternalServerError, "tenant not resolved")
		return
	}

	writeJSON(w, http.StatusOK, infoResponse{
		Tenant: tenant,
		User:   middleware.PrincipalFromContext(r.Context()),
	})
}

func (h *TenantHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	tenant := middleware.TenantFromContext(r.Context())
	if tenant == nil {
		writeError(w, http.StatusInternalServerError, "tenant not resolved")
		return
	}

	data, err := h.dashboards.Metrics(r.Context(), tenant.ID, middleware.AccessTokenFromContext(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, h.upstreamMessage("Failed to fetch dashboard data", err))
		return
	}

	writeJSON(w, http.StatusOK, dashboardResponse{Tenant: tenant, Data: data})
}

func (h *TenantHandler) Admins(w http.ResponseWriter, r *http.Request) {
	tenant := middleware.TenantFromContext(r.Context())
	if tenant == nil {
		writeError(w, http.StatusInternalServerError, "tenant not resolved")
		return
	}

	admins, err := h.admins.Admins(r.Context(), tenant.ID, middleware.AccessTokenFromContext(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, h.upstreamMessage("Failed to fetch admins", err))
		return
	}

	writeJSON(w, http.StatusOK, adminsResponse{Admins: admins})
}

// upstreamMessage attaches upstream error detail outside production only.
func (h *TenantHandler) upstreamMessage(msg string, err error) string {
	if h.development {
		return msg + ": " + err.Error()
	}
	return msg
}
