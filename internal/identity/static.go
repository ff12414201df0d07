package identity

import (
	"context"

	"github.com/zenbase/gateway/internal/domain"
)

// Static is the degraded-mode verifier used when no identity provider is
// configured. Any non-empty token resolves to a demo principal so the
// authenticated surface stays demoable.
type Static struct{}

func NewStatic() *Static {
	return &Static{}
}

func (s *Static) Verify(ctx context.Context, token string) (*domain.Principal, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	return &domain.Principal{
		ID:    "demo-user",
		Email: "demo@zenbase.online",
	}, nil
}
