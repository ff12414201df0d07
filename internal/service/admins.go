package service

import (
	"context"
	"fmt"

	"github.com/zenbase/gateway/internal/domain"
	"go.uber.org/zap"
)

type AdminService struct {
	factory domain.ScopedClientFactory
	logger  *zap.Logger
}

func NewAdminService(factory domain.ScopedClientFactory, logger *zap.Logger) *AdminService {
	return &AdminService{factory: factory, logger: logger}
}

func (s *AdminService) Admins(ctx context.Context, tenantID, accessToken string) ([]domain.TenantAdmin, error) {
	client, err := s.factory.Scoped(ctx, tenantID, accessToken)
	if err != nil {
		return nil, fmt.Errorf("create scoped client: %w", err)
	}

	admins, err := client.TenantAdmins(ctx)
	if err != nil {
		s.logger.Error("admin query failed",
			zap.String("tenant_id", tenantID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %s", ErrUpstreamQuery, err)
	}

	if admins == nil {
		admins = []domain.TenantAdmin{}
	}
	return admins, nil
}
