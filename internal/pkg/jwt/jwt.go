package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// ActionPurpose scopes one-time admin links. A token minted for one purpose
// is rejected when presented for another.
type ActionPurpose string

const (
	PurposeApproval  ActionPurpose = "approval"
	PurposeRejection ActionPurpose = "rejection"
)

type Service struct {
	secret     []byte
	sessionTTL time.Duration
	actionTTL  time.Duration
}

// SessionClaims authenticate an interactive client session.
type SessionClaims struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	AccountType string `json:"account_type"`
	jwtlib.RegisteredClaims
}

// ActionClaims authenticate a signed admin link emailed out-of-band.
// They get a much shorter TTL than sessions since the link travels in
// plaintext email.
type ActionClaims struct {
	Email   string        `json:"email"`
	Purpose ActionPurpose `json:"purpose"`
	jwtlib.RegisteredClaims
}

func New(secret string, sessionTTL, actionTTL time.Duration) *Service {
	return &Service{
		secret:     []byte(secret),
		sessionTTL: sessionTTL,
		actionTTL:  actionTTL,
	}
}

func (s *Service) GenerateSessionToken(userID, email, accountType string) (string, error) {
	claims := SessionClaims{
		UserID:      userID,
		Email:       email,
		AccountType: accountType,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(s.sessionTTL)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) ValidateSessionToken(tokenStr string) (*SessionClaims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *Service) GenerateActionToken(email string, purpose ActionPurpose) (string, error) {
	claims := ActionClaims{
		Email:   email,
		Purpose: purpose,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(s.actionTTL)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateActionToken checks signature, expiry and purpose before any state
// is touched by the workflow behind the link.
func (s *Service) ValidateActionToken(tokenStr string, purpose ActionPurpose) (*ActionClaims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &ActionClaims{}, func(t *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*ActionClaims)
	if !ok || claims.Purpose != purpose {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
