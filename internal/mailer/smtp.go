package mailer

import (
	"context"
	"fmt"
	"html"
	"time"

	"sonata/internal/domain"

	gomail "github.com/wneessen/go-mail"
)

type SMTPConfig struct {
	Host    string
	Port    int
	User    string
	Pass    string
	From    string
	Timeout time.Duration
}

// SMTPMailer sends the workflow emails over SMTP. Dial and send share one
// timeout so a dead relay cannot stall request handling.
type SMTPMailer struct {
	client *gomail.Client
	from   string
}

func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTimeout(cfg.Timeout),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.User != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.User),
			gomail.WithPassword(cfg.Pass),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	from := cfg.From
	if from == "" {
		from = cfg.User
	}

	return &SMTPMailer{client: client, from: from}, nil
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, htmlBody string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)

	return m.client.DialAndSendWithContext(ctx, msg)
}

func (m *SMTPMailer) SendVerificationCode(ctx context.Context, to, code string) error {
	body := fmt.Sprintf(verificationCodeHTML, html.EscapeString(code))
	return m.send(ctx, to, "Sonata - Email Verification Code", body)
}

func (m *SMTPMailer) SendArtistApplication(ctx context.Context, to string, a *domain.Artist, approveURL, rejectURL string) error {
	bio := ""
	if a.Bio != "" {
		bio = fmt.Sprintf(applicationBioHTML, html.EscapeString(a.Bio))
	}
	body := fmt.Sprintf(artistApplicationHTML,
		html.EscapeString(a.ArtistName),
		html.EscapeString(a.Email),
		html.EscapeString(a.BirthDate),
		html.EscapeString(a.Phone),
		html.EscapeString(a.SocialMediaLink),
		html.EscapeString(a.SocialMediaLink),
		bio,
		a.CreatedAt.Format("2006-01-02"),
		approveURL,
		rejectURL,
	)
	return m.send(ctx, to, "Sonata - New Artist Application", body)
}

func (m *SMTPMailer) SendArtistApproved(ctx context.Context, to, tempPassword string) error {
	body := fmt.Sprintf(artistApprovedHTML, html.EscapeString(to), html.EscapeString(tempPassword))
	return m.send(ctx, to, "Sonata - Your Artist Application Was Approved", body)
}

func (m *SMTPMailer) SendArtistRejected(ctx context.Context, to, reason string) error {
	if reason == "" {
		reason = "Application criteria were not met"
	}
	body := fmt.Sprintf(artistRejectedHTML, html.EscapeString(reason))
	return m.send(ctx, to, "Sonata - About Your Artist Application", body)
}
