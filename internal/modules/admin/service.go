package admin

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"

	"sonata/internal/domain"
	"sonata/internal/mailer"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const passwordHashCost = 12

// Service implements the human-in-the-loop artist approval state machine:
// pending -> approved (credential issued) | rejected (reason recorded),
// both terminal, reachable from pending only.
type Service struct {
	artists ArtistRepositoryInterface
	mailer  mailer.Mailer
}

func NewService(artists ArtistRepositoryInterface, m mailer.Mailer) *Service {
	return &Service{artists: artists, mailer: m}
}

type ApprovalResult struct {
	Artist          *domain.Artist
	AlreadyApproved bool
	EmailSent       bool
	// TempPassword is surfaced to the admin only when the email to the
	// artist failed, so the credential is not lost.
	TempPassword string
}

type RejectionResult struct {
	Artist    *domain.Artist
	Reason    string
	EmailSent bool
}

// ApproveArtist approves a pending application: generates a one-time
// password, stores its hash together with the approved flag in one write,
// and emails the plaintext to the artist. Re-approving is idempotent.
func (s *Service) ApproveArtist(ctx context.Context, email string) (*ApprovalResult, error) {
	artist, err := s.getArtist(ctx, email)
	if err != nil {
		return nil, err
	}

	if artist.IsApproved {
		return &ApprovalResult{Artist: artist, AlreadyApproved: true}, nil
	}
	if artist.IsRejected {
		return nil, ErrAlreadyRejectedCannotApprove
	}

	tempPassword, err := generateTempPassword()
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), passwordHashCost)
	if err != nil {
		return nil, err
	}

	applied, err := s.artists.Approve(ctx, email, string(hash))
	if err != nil {
		return nil, err
	}
	if !applied {
		// lost a race against another admin click; report current state
		return s.resolveApproveConflict(ctx, email)
	}

	artist, err = s.getArtist(ctx, email)
	if err != nil {
		return nil, err
	}

	result := &ApprovalResult{Artist: artist, EmailSent: true}
	if mailErr := s.mailer.SendArtistApproved(ctx, email, tempPassword); mailErr != nil {
		log.Printf("approve: credentials email failed email=%s err=%v", email, mailErr)
		result.EmailSent = false
		result.TempPassword = tempPassword
	}
	return result, nil
}

// PrepareRejection checks that the application can still be rejected before
// the admin is shown the reason form. No state is touched here.
func (s *Service) PrepareRejection(ctx context.Context, email string) (*domain.Artist, error) {
	artist, err := s.getArtist(ctx, email)
	if err != nil {
		return nil, err
	}

	if artist.IsRejected {
		return nil, ErrAlreadyRejected
	}
	if artist.IsApproved {
		return nil, ErrAlreadyApprovedCannotReject
	}
	return artist, nil
}

// ConfirmRejection performs the terminal rejection with the recorded reason
// and notifies the artist. The transition is retained even when the
// notification fails.
func (s *Service) ConfirmRejection(ctx context.Context, email, reason string) (*RejectionResult, error) {
	if _, err := s.PrepareRejection(ctx, email); err != nil {
		return nil, err
	}

	applied, err := s.artists.Reject(ctx, email, reason)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, s.resolveRejectConflict(ctx, email)
	}

	artist, err := s.getArtist(ctx, email)
	if err != nil {
		return nil, err
	}

	result := &RejectionResult{Artist: artist, Reason: reason, EmailSent: true}
	if mailErr := s.mailer.SendArtistRejected(ctx, email, reason); mailErr != nil {
		log.Printf("reject: notification email failed email=%s err=%v", email, mailErr)
		result.EmailSent = false
	}
	return result, nil
}

func (s *Service) getArtist(ctx context.Context, email string) (*domain.Artist, error) {
	artist, err := s.artists.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return artist, nil
}

func (s *Service) resolveApproveConflict(ctx context.Context, email string) (*ApprovalResult, error) {
	artist, err := s.getArtist(ctx, email)
	if err != nil {
		return nil, err
	}
	if artist.IsApproved {
		return &ApprovalResult{Artist: artist, AlreadyApproved: true}, nil
	}
	return nil, ErrAlreadyRejectedCannotApprove
}

func (s *Service) resolveRejectConflict(ctx context.Context, email string) error {
	artist, err := s.getArtist(ctx, email)
	if err != nil {
		return err
	}
	if artist.IsApproved {
		return ErrAlreadyApprovedCannotReject
	}
	return ErrAlreadyRejected
}

// generateTempPassword returns a 5-digit numeric one-time password, the
// same shape as verification codes. The artist is told to change it after
// first login.
func generateTempPassword() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(100000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%05d", n.Int64()), nil
}
