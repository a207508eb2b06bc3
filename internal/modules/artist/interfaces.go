package artist

import (
	"context"

	"sonata/internal/domain"
	jwtsvc "sonata/internal/pkg/jwt"
)

// Application submission only needs Create; reads and the terminal
// transitions belong to other modules.
type ArtistRepositoryInterface interface {
	Create(ctx context.Context, a *domain.Artist) error
}

type tokenIssuer interface {
	GenerateActionToken(email string, purpose jwtsvc.ActionPurpose) (string, error)
}
