package admin

import (
	"context"

	"sonata/internal/domain"
	jwtsvc "sonata/internal/pkg/jwt"
)

// The terminal transitions are conditional updates that only fire while
// the record is still pending.
type ArtistRepositoryInterface interface {
	GetByEmail(ctx context.Context, email string) (*domain.Artist, error)
	Approve(ctx context.Context, email, passwordHash string) (bool, error)
	Reject(ctx context.Context, email, reason string) (bool, error)
}

type tokenValidator interface {
	ValidateActionToken(tokenStr string, purpose jwtsvc.ActionPurpose) (*jwtsvc.ActionClaims, error)
}
