package store

import (
	"context"
	"strings"
	"time"

	"github.com/zenbase/gateway/internal/domain"
)

// Placeholder serves the full data surface with static demo data so the
// gateway stays operable when no backing store is configured. It is
// selected once at startup, never per call.
type Placeholder struct{}

func NewPlaceholder() *Placeholder {
	return &Placeholder{}
}

// GetBySlug synthesizes a tenant for any slug. Provisioning state always
// reads as pending because no provisioning pipeline exists in this mode.
func (p *Placeholder) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	return &domain.Tenant{
		ID:               "mock-" + slug,
		Slug:             slug,
		Name:             titleCase(slug) + " Zenbase",
		Region:           titleCase(slug) + " Region",
		OnboardingStatus: domain.OnboardingPending,
		CreatedAt:        time.Now().UTC(),
	}, nil
}

func (p *Placeholder) Scoped(ctx context.Context, tenantID, accessToken string) (domain.ScopedClient, error) {
	return &placeholderClient{tenantID: tenantID}, nil
}

type placeholderClient struct {
	tenantID string
}

func (c *placeholderClient) TenantID() string {
	return c.tenantID
}

func (c *placeholderClient) DashboardMetrics(ctx context.Context) ([]domain.DashboardMetric, error) {
	now := time.Now().UTC()
	return []domain.DashboardMetric{
		{ID: "mock-metric-1", TenantID: c.tenantID, Metric: "active_users", Value: 128, Timestamp: now},
		{ID: "mock-metric-2", TenantID: c.tenantID, Metric: "api_requests", Value: 4523, Timestamp: now},
		{ID: "mock-metric-3", TenantID: c.tenantID, Metric: "storage_gb", Value: 12.4, Timestamp: now},
	}, nil
}

func (c *placeholderClient) TenantAdmins(ctx context.Context) ([]domain.TenantAdmin, error) {
	now := time.Now().UTC()
	return []domain.TenantAdmin{
		{
			ID:        "mock-admin-1",
			TenantID:  c.tenantID,
			Role:      "owner",
			ElectedAt: now,
			User:      domain.AdminUser{ID: "mock-user-1", Email: "owner@zenbase.online"},
		},
		{
			ID:        "mock-admin-2",
			TenantID:  c.tenantID,
			Role:      "admin",
			ElectedAt: now,
			User:      domain.AdminUser{ID: "mock-user-2", Email: "admin@zenbase.online"},
		},
	}, nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
