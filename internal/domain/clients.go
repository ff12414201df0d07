package domain

import "context"

// TokenVerifier validates an opaque bearer token against the identity
// provider. Implementations must be safe for concurrent use.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Principal, error)
}

type TenantStore interface {
	GetBySlug(ctx context.Context, slug string) (*Tenant, error)
}

// ScopedClient is a data-access handle bound to exactly one tenant.
// Every query it issues is confined to that tenant's rows. A handle is
// owned by the request that created it and is never reused.
type ScopedClient interface {
	TenantID() string
	DashboardMetrics(ctx context.Context) ([]DashboardMetric, error)
	TenantAdmins(ctx context.Context) ([]TenantAdmin, error)
}

// ScopedClientFactory builds a per-request ScopedClient carrying the
// caller's credential when one is present.
type ScopedClientFactory interface {
	Scoped(ctx context.Context, tenantID, accessToken string) (ScopedClient, error)
}
