package auth

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"sonata/internal/domain"
	"sonata/internal/mailer"
	"sonata/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// cost 12, slow enough to resist offline brute force on leaked hashes
const passwordHashCost = 12

type jwtService interface {
	GenerateSessionToken(userID, email, accountType string) (string, error)
}

// Service contains the registration, verification and login logic for both
// account kinds.
type Service struct {
	users   UserRepositoryInterface
	artists ArtistRepositoryInterface
	codes   CodeRepositoryInterface
	jwt     jwtService
	mailer  mailer.Mailer
	codeTTL time.Duration
}

func NewService(
	users UserRepositoryInterface,
	artists ArtistRepositoryInterface,
	codes CodeRepositoryInterface,
	jwt jwtService,
	m mailer.Mailer,
	codeTTL time.Duration,
) *Service {
	return &Service{
		users:   users,
		artists: artists,
		codes:   codes,
		jwt:     jwt,
		mailer:  m,
		codeTTL: codeTTL,
	}
}

type LoginResult struct {
	User   *domain.User
	Artist *domain.Artist
	Token  string
}

// Register creates an unverified user and dispatches a verification code.
// The returned bool reports whether the email went out: a failed dispatch is
// degraded success, the user record is already committed and stays.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, bool, error) {
	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, false, err
	}

	user := &domain.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Phone:        req.Phone,
		IsVerified:   false,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, false, ErrEmailTaken
		}
		return nil, false, err
	}

	code, err := s.issueCode(ctx, user.Email, domain.PurposeRegister)
	if err != nil {
		return nil, false, err
	}

	sent := true
	if mailErr := s.mailer.SendVerificationCode(ctx, user.Email, code); mailErr != nil {
		log.Printf("register: verification email failed email=%s err=%v", user.Email, mailErr)
		sent = false
	}

	user.PasswordHash = ""
	return user, sent, nil
}

// VerifyEmail consumes a pending code and flips the user to verified.
// Consumption happens first and is exactly-once; the error stays
// deliberately ambiguous about wrong vs. expired vs. never issued.
func (s *Service) VerifyEmail(ctx context.Context, email, code string) error {
	record, err := s.codes.FindConsumable(ctx, email, code, domain.PurposeRegister, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidOrExpiredCode
		}
		return err
	}

	consumed, err := s.codes.MarkUsed(ctx, record.ID)
	if err != nil {
		return err
	}
	if !consumed {
		return ErrInvalidOrExpiredCode
	}

	if err := s.users.MarkVerified(ctx, email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return nil
}

// ResendVerification supersedes any pending code and dispatches a fresh one.
func (s *Service) ResendVerification(ctx context.Context, email string) (bool, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFoundOrVerified
		}
		return false, err
	}
	if user.IsVerified {
		return false, ErrNotFoundOrVerified
	}

	code, err := s.issueCode(ctx, user.Email, domain.PurposeRegister)
	if err != nil {
		return false, err
	}

	if mailErr := s.mailer.SendVerificationCode(ctx, user.Email, code); mailErr != nil {
		log.Printf("resend: verification email failed email=%s err=%v", user.Email, mailErr)
		return false, nil
	}
	return true, nil
}

// Login checks credentials for the requested account kind and issues a
// session token. Failure categories stay coarse on purpose.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if req.AccountType == string(domain.AccountArtist) {
		return s.loginArtist(ctx, req)
	}
	return s.loginUser(ctx, req)
}

func (s *Service) loginUser(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !user.IsVerified {
		return nil, ErrEmailNotVerified
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateSessionToken(user.ID, user.Email, string(domain.AccountUser))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, Token: token}, nil
}

func (s *Service) loginArtist(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	artist, err := s.artists.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !artist.IsApproved {
		return nil, ErrArtistNotApproved
	}
	// approved but no credential issued yet
	if artist.PasswordHash == "" {
		return nil, ErrArtistNotActivated
	}

	if err := bcrypt.CompareHashAndPassword([]byte(artist.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateSessionToken(artist.ID, artist.Email, string(domain.AccountArtist))
	if err != nil {
		return nil, err
	}

	artist.PasswordHash = ""
	return &LoginResult{Artist: artist, Token: token}, nil
}

// CurrentUser resolves the profile behind a session token's claims.
func (s *Service) CurrentUser(ctx context.Context, accountType, id string) (*domain.User, *domain.Artist, error) {
	if accountType == string(domain.AccountArtist) {
		artist, err := s.artists.GetByID(ctx, id)
		if err != nil {
			return nil, nil, err
		}
		artist.PasswordHash = ""
		return nil, artist, nil
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	user.PasswordHash = ""
	return user, nil, nil
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
