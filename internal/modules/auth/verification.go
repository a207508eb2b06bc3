package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"sonata/internal/domain"
)

// issueCode supersedes every pending code for (email, purpose) and stores a
// fresh one. Only the newest code is ever consumable.
func (s *Service) issueCode(ctx context.Context, email string, purpose domain.CodePurpose) (string, error) {
	if err := s.codes.InvalidatePending(ctx, email, purpose); err != nil {
		return "", err
	}

	code, err := generateVerificationCode()
	if err != nil {
		return "", err
	}

	record := &domain.VerificationCode{
		Email:     email,
		Code:      code,
		Purpose:   purpose,
		Used:      false,
		ExpiresAt: time.Now().Add(s.codeTTL),
	}
	if err := s.codes.Create(ctx, record); err != nil {
		return "", err
	}

	return code, nil
}

// generateVerificationCode returns a uniformly random 5-digit numeric
// string, leading zeros allowed.
func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(100000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%05d", n.Int64()), nil
}
