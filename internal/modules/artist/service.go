package artist

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"

	"sonata/internal/domain"
	"sonata/internal/mailer"
	jwtsvc "sonata/internal/pkg/jwt"
	"sonata/internal/repository"
)

// Service handles artist application submission. The approval and rejection
// transitions live in the admin module; this side only creates the pending
// record and notifies the administrator with signed action links.
type Service struct {
	artists    ArtistRepositoryInterface
	tokens     tokenIssuer
	mailer     mailer.Mailer
	adminEmail string
	baseURL    string
}

func NewService(
	artists ArtistRepositoryInterface,
	tokens tokenIssuer,
	m mailer.Mailer,
	adminEmail string,
	baseURL string,
) *Service {
	return &Service{
		artists:    artists,
		tokens:     tokens,
		mailer:     m,
		adminEmail: adminEmail,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Apply stores a pending application and dispatches the admin notification.
// The record is committed before the email goes out; a failed dispatch is
// reported as degraded success, never rolled back.
func (s *Service) Apply(ctx context.Context, req ApplicationRequest) (*domain.Artist, bool, error) {
	artist := &domain.Artist{
		ArtistName:      req.ArtistName,
		Email:           strings.ToLower(strings.TrimSpace(req.Email)),
		BirthDate:       req.BirthDate,
		Phone:           req.Phone,
		SocialMediaLink: req.SocialMediaLink,
		Bio:             req.Bio,
	}

	if err := s.artists.Create(ctx, artist); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, false, ErrEmailAlreadyApplied
		}
		return nil, false, err
	}

	approveURL, rejectURL, err := s.actionLinks(artist.Email)
	if err != nil {
		// the application is committed; the admin can be notified manually
		log.Printf("artist apply: action token generation failed email=%s err=%v", artist.Email, err)
		return artist, false, nil
	}

	sent := true
	if mailErr := s.mailer.SendArtistApplication(ctx, s.adminEmail, artist, approveURL, rejectURL); mailErr != nil {
		log.Printf("artist apply: admin notification failed email=%s err=%v", artist.Email, mailErr)
		sent = false
	}

	return artist, sent, nil
}

func (s *Service) actionLinks(email string) (string, string, error) {
	approveToken, err := s.tokens.GenerateActionToken(email, jwtsvc.PurposeApproval)
	if err != nil {
		return "", "", err
	}
	rejectToken, err := s.tokens.GenerateActionToken(email, jwtsvc.PurposeRejection)
	if err != nil {
		return "", "", err
	}

	approveURL := fmt.Sprintf("%s/admin/approve-artist?token=%s", s.baseURL, url.QueryEscape(approveToken))
	rejectURL := fmt.Sprintf("%s/admin/reject-artist?token=%s", s.baseURL, url.QueryEscape(rejectToken))
	return approveURL, rejectURL, nil
}
