package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/zenbase/gateway/internal/domain"
)

// TenantStore reads tenant records from the external tenant store.
// Records are provisioned elsewhere; the gateway only looks them up.
type TenantStore struct {
	db *pgxpool.Pool
}

func NewTenantStore(db *pgxpool.Pool) *TenantStore {
	return &TenantStore{db: db}
}

func (s *TenantStore) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	t := &domain.Tenant{}
	err := s.db.QueryRow(ctx,
		`SELECT id, slug, name, region, onboarding_status, onboarding_error, created_at
		 FROM tenants WHERE slug = $1`,
		slug,
	).Scan(&t.ID, &t.Slug, &t.Name, &t.Region, &t.OnboardingStatus, &t.OnboardingError, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}
