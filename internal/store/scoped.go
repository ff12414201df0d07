package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zenbase/gateway/internal/domain"
	"go.uber.org/zap"
)

// ScopedFactory builds per-request data-access handles confined to one
// tenant's partition. Handles are never cached or shared across requests.
type ScopedFactory struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewScopedFactory(db *pgxpool.Pool, logger *zap.Logger) *ScopedFactory {
	return &ScopedFactory{db: db, logger: logger}
}

// Scoped returns a handle bound to tenantID, carrying the caller's
// credential when present. The row-level-security context directive is
// issued best-effort at construction: its failure is logged, never
// propagated, and every subsequent query still carries an explicit
// tenant_id filter.
func (f *ScopedFactory) Scoped(ctx context.Context, tenantID, accessToken string) (domain.ScopedClient, error) {
	if _, err := f.db.Exec(ctx, `SELECT set_tenant_context($1)`, tenantID); err != nil {
		f.logger.Warn("set_tenant_context failed",
			zap.String("tenant_id", tenantID),
			zap.Error(err),
		)
	}
	return &ScopedClient{db: f.db, tenantID: tenantID, accessToken: accessToken}, nil
}

// ScopedClient issues queries filtered to a single tenant.
type ScopedClient struct {
	db          *pgxpool.Pool
	tenantID    string
	accessToken string
}

func (c *ScopedClient) TenantID() string {
	return c.tenantID
}

// AccessToken exposes the caller credential the handle was built with.
func (c *ScopedClient) AccessToken() string {
	return c.accessToken
}

func (c *ScopedClient) DashboardMetrics(ctx context.Context) ([]domain.DashboardMetric, error) {
	rows, err := c.db.Query(ctx,
		`SELECT id, tenant_id, metric, value, timestamp
		 FROM dashboard_data WHERE tenant_id = $1
		 ORDER BY timestamp DESC`,
		c.tenantID,
	)
	if err != nil {
		return nil, fmt.Errorf("query dashboard_data: %w", err)
	}
	defer rows.Close()

	var metrics []domain.DashboardMetric
	for rows.Next() {
		var m domain.DashboardMetric
		if err := rows.Scan(&m.ID, &m.TenantID, &m.Metric, &m.Value, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scan dashboard row: %w", err)
		}
		metrics = append(metrics, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dashboard rows: %w", err)
	}
	return metrics, nil
}

func (c *ScopedClient) TenantAdmins(ctx context.Context) ([]domain.TenantAdmin, error) {
	rows, err := c.db.Query(ctx,
		`SELECT ta.id, ta.tenant_id, ta.role, ta.elected_at, u.id, u.email
		 FROM tenant_admins ta
		 JOIN users u ON u.id = ta.user_id
		 WHERE ta.tenant_id = $1`,
		c.tenantID,
	)
	if err != nil {
		return nil, fmt.Errorf("query tenant_admins: %w", err)
	}
	defer rows.Close()

	var admins []domain.TenantAdmin
	for rows.Next() {
		var a domain.TenantAdmin
		if err := rows.Scan(&a.ID, &a.TenantID, &a.Role, &a.ElectedAt, &a.User.ID, &a.User.Email); err != nil {
			return nil, fmt.Errorf("scan admin row: %w", err)
		}
		admins = append(admins, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate admin rows: %w", err)
	}
	return admins, nil
}
