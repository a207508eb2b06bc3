package repository

import (
	"context"
	"sync"
	"time"

	"sonata/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArtistRepository struct {
	db *gorm.DB
	mu sync.Mutex
}

func NewArtistRepository(db *gorm.DB) *ArtistRepository {
	return &ArtistRepository{db: db}
}

type artistModel struct {
	ID              string    `gorm:"column:id;primaryKey"`
	ArtistName      string    `gorm:"column:artist_name"`
	Email           string    `gorm:"column:email;uniqueIndex"`
	BirthDate       string    `gorm:"column:birth_date"`
	Phone           *string   `gorm:"column:phone"`
	SocialMediaLink *string   `gorm:"column:social_media_link"`
	Bio             *string   `gorm:"column:bio"`
	IsApproved      bool      `gorm:"column:is_approved"`
	IsRejected      bool      `gorm:"column:is_rejected"`
	RejectionReason *string   `gorm:"column:rejection_reason"`
	PasswordHash    *string   `gorm:"column:password_hash"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (artistModel) TableName() string { return "artists" }

func toDomainArtist(m artistModel) *domain.Artist {
	var phone, social, bio, reason, hash string
	if m.Phone != nil {
		phone = *m.Phone
	}
	if m.SocialMediaLink != nil {
		social = *m.SocialMediaLink
	}
	if m.Bio != nil {
		bio = *m.Bio
	}
	if m.RejectionReason != nil {
		reason = *m.RejectionReason
	}
	if m.PasswordHash != nil {
		hash = *m.PasswordHash
	}

	return &domain.Artist{
		ID:              m.ID,
		ArtistName:      m.ArtistName,
		Email:           m.Email,
		BirthDate:       m.BirthDate,
		Phone:           phone,
		SocialMediaLink: social,
		Bio:             bio,
		IsApproved:      m.IsApproved,
		IsRejected:      m.IsRejected,
		RejectionReason: reason,
		PasswordHash:    hash,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toArtistModel(a *domain.Artist) artistModel {
	var phone, social, bio, reason, hash *string
	if a.Phone != "" {
		v := a.Phone
		phone = &v
	}
	if a.SocialMediaLink != "" {
		v := a.SocialMediaLink
		social = &v
	}
	if a.Bio != "" {
		v := a.Bio
		bio = &v
	}
	if a.RejectionReason != "" {
		v := a.RejectionReason
		reason = &v
	}
	if a.PasswordHash != "" {
		v := a.PasswordHash
		hash = &v
	}

	return artistModel{
		ID:              a.ID,
		ArtistName:      a.ArtistName,
		Email:           normalizeEmail(a.Email),
		BirthDate:       a.BirthDate,
		Phone:           phone,
		SocialMediaLink: social,
		Bio:             bio,
		IsApproved:      a.IsApproved,
		IsRejected:      a.IsRejected,
		RejectionReason: reason,
		PasswordHash:    hash,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// Create inserts a pending application. Uniqueness is checked under the
// repository lock, same contract as UserRepository.Create.
func (r *ArtistRepository) Create(ctx context.Context, a *domain.Artist) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := normalizeEmail(a.Email)

	var count int64
	if err := r.db.WithContext(ctx).Model(&artistModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateEmail
	}

	a.ID = uuid.NewString()
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	m := toArtistModel(a)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*a = *toDomainArtist(m)
	return nil
}

func (r *ArtistRepository) GetByEmail(ctx context.Context, email string) (*domain.Artist, error) {
	var m artistModel
	tx := r.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainArtist(m), nil
}

func (r *ArtistRepository) GetByID(ctx context.Context, id string) (*domain.Artist, error) {
	var m artistModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainArtist(m), nil
}

// Approve sets the terminal approved state and the issued credential in one
// conditional update. It only fires while the record is still pending, so a
// racing second approval affects zero rows and the caller re-reads state.
func (r *ArtistRepository) Approve(ctx context.Context, email, passwordHash string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx := r.db.WithContext(ctx).Model(&artistModel{}).
		Where("email = ? AND is_approved = ? AND is_rejected = ?", normalizeEmail(email), false, false).
		Updates(map[string]any{
			"is_approved":   true,
			"password_hash": passwordHash,
			"updated_at":    time.Now().UTC(),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// Reject sets the terminal rejected state with the recorded reason, guarded
// the same way as Approve.
func (r *ArtistRepository) Reject(ctx context.Context, email, reason string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx := r.db.WithContext(ctx).Model(&artistModel{}).
		Where("email = ? AND is_approved = ? AND is_rejected = ?", normalizeEmail(email), false, false).
		Updates(map[string]any{
			"is_rejected":      true,
			"rejection_reason": reason,
			"updated_at":       time.Now().UTC(),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
