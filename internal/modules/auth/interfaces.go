package auth

import (
	"context"
	"time"

	"sonata/internal/domain"
)

// UserRepositoryInterface lists only the methods the auth service uses.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	MarkVerified(ctx context.Context, email string) error
}

// Artist access is read-only here; artist mutation belongs to the
// application and admin modules.
type ArtistRepositoryInterface interface {
	GetByEmail(ctx context.Context, email string) (*domain.Artist, error)
	GetByID(ctx context.Context, id string) (*domain.Artist, error)
}

// CodeRepositoryInterface is the storage surface for verification codes.
type CodeRepositoryInterface interface {
	Create(ctx context.Context, c *domain.VerificationCode) error
	InvalidatePending(ctx context.Context, email string, purpose domain.CodePurpose) error
	FindConsumable(ctx context.Context, email, code string, purpose domain.CodePurpose, now time.Time) (*domain.VerificationCode, error)
	MarkUsed(ctx context.Context, id string) (bool, error)
}
