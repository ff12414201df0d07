package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/zenbase/gateway/internal/domain"
	"go.uber.org/zap"
)

// ErrUpstreamQuery marks a failure in the scoped store, distinguishable
// from tenant and auth failures which never reach the service layer.
var ErrUpstreamQuery = errors.New("upstream query failed")

type DashboardService struct {
	factory domain.ScopedClientFactory
	logger  *zap.Logger
}

func NewDashboardService(factory domain.ScopedClientFactory, logger *zap.Logger) *DashboardService {
	return &DashboardService{factory: factory, logger: logger}
}

// Metrics returns the tenant's dashboard rows through a scoped handle
// built for this request only.
func (s *DashboardService) Metrics(ctx context.Context, tenantID, accessToken string) ([]domain.DashboardMetric, error) {
	client, err := s.factory.Scoped(ctx, tenantID, accessToken)
	if err != nil {
		return nil, fmt.Errorf("create scoped client: %w", err)
	}

	metrics, err := client.DashboardMetrics(ctx)
	if err != nil {
		s.logger.Error("dashboard query failed",
			zap.String("tenant_id", tenantID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %s", ErrUpstreamQuery, err)
	}

	if metrics == nil {
		metrics = []domain.DashboardMetric{}
	}
	return metrics, nil
}
