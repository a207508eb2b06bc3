package repository

import (
	"context"
	"sync"
	"time"

	"sonata/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VerificationCodeRepository struct {
	db *gorm.DB
	mu sync.Mutex
}

func NewVerificationCodeRepository(db *gorm.DB) *VerificationCodeRepository {
	return &VerificationCodeRepository{db: db}
}

type verificationCodeModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Email     string    `gorm:"column:email;index:idx_codes_email_purpose"`
	Code      string    `gorm:"column:code"`
	Purpose   string    `gorm:"column:purpose;index:idx_codes_email_purpose"`
	Used      bool      `gorm:"column:used"`
	ExpiresAt time.Time `gorm:"column:expires_at"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (verificationCodeModel) TableName() string { return "verification_codes" }

func toDomainCode(m verificationCodeModel) *domain.VerificationCode {
	return &domain.VerificationCode{
		ID:        m.ID,
		Email:     m.Email,
		Code:      m.Code,
		Purpose:   domain.CodePurpose(m.Purpose),
		Used:      m.Used,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}

func (r *VerificationCodeRepository) Create(ctx context.Context, c *domain.VerificationCode) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()

	m := verificationCodeModel{
		ID:        c.ID,
		Email:     normalizeEmail(c.Email),
		Code:      c.Code,
		Purpose:   string(c.Purpose),
		Used:      c.Used,
		ExpiresAt: c.ExpiresAt,
		CreatedAt: c.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*c = *toDomainCode(m)
	return nil
}

// InvalidatePending marks every unused code for (email, purpose) as used,
// so at most one consumable code exists per pair once a new one is issued.
// Superseded codes stay on record, they are not deleted.
func (r *VerificationCodeRepository) InvalidatePending(ctx context.Context, email string, purpose domain.CodePurpose) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.db.WithContext(ctx).Model(&verificationCodeModel{}).
		Where("email = ? AND purpose = ? AND used = ?", normalizeEmail(email), string(purpose), false).
		Update("used", true).Error
}

// FindConsumable returns the code record that exactly matches and is still
// redeemable at now, or gorm.ErrRecordNotFound.
func (r *VerificationCodeRepository) FindConsumable(ctx context.Context, email, code string, purpose domain.CodePurpose, now time.Time) (*domain.VerificationCode, error) {
	var m verificationCodeModel
	tx := r.db.WithContext(ctx).
		Where("email = ? AND code = ? AND purpose = ? AND used = ? AND expires_at > ?",
			normalizeEmail(email), code, string(purpose), false, now).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCode(m), nil
}

// MarkUsed consumes a code. The conditional update makes consumption
// exactly-once: a second caller sees zero affected rows.
func (r *VerificationCodeRepository) MarkUsed(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx := r.db.WithContext(ctx).Model(&verificationCodeModel{}).
		Where("id = ? AND used = ?", id, false).
		Update("used", true)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// DeleteOlderThan drops codes whose audit value has lapsed: anything that
// expired before the cutoff, used or not.
func (r *VerificationCodeRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx := r.db.WithContext(ctx).
		Where("expires_at < ?", cutoff).
		Delete(&verificationCodeModel{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
