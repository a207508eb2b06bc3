package mailer

import (
	"context"
	"log"

	"sonata/internal/domain"
)

// Mailer dispatches the workflow notifications. Implementations must be
// bounded by a timeout; callers treat a failed send as degraded success,
// never as a reason to roll back committed state.
type Mailer interface {
	SendVerificationCode(ctx context.Context, to, code string) error
	SendArtistApplication(ctx context.Context, to string, a *domain.Artist, approveURL, rejectURL string) error
	SendArtistApproved(ctx context.Context, to, tempPassword string) error
	SendArtistRejected(ctx context.Context, to, reason string) error
}

// ConsoleMailer logs instead of sending. Used in dev when SMTP is not
// configured so verification codes stay reachable.
type ConsoleMailer struct{}

func NewConsoleMailer() *ConsoleMailer { return &ConsoleMailer{} }

func (m *ConsoleMailer) SendVerificationCode(_ context.Context, to, code string) error {
	log.Printf("[DEV-EMAIL] verification code to=%s code=%s", to, code)
	return nil
}

func (m *ConsoleMailer) SendArtistApplication(_ context.Context, to string, a *domain.Artist, approveURL, rejectURL string) error {
	log.Printf("[DEV-EMAIL] artist application to=%s artist=%s approve=%s reject=%s", to, a.ArtistName, approveURL, rejectURL)
	return nil
}

func (m *ConsoleMailer) SendArtistApproved(_ context.Context, to, tempPassword string) error {
	log.Printf("[DEV-EMAIL] artist approved to=%s temp_password=%s", to, tempPassword)
	return nil
}

func (m *ConsoleMailer) SendArtistRejected(_ context.Context, to, reason string) error {
	log.Printf("[DEV-EMAIL] artist rejected to=%s reason=%q", to, reason)
	return nil
}
