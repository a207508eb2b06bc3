package auth

import "errors"

var (
	ErrEmailTaken           = errors.New("email already taken")
	ErrInvalidOrExpiredCode = errors.New("invalid or expired verification code")
	ErrNotFoundOrVerified   = errors.New("account not found or already verified")
	ErrNotFound             = errors.New("account not found")
	ErrEmailNotVerified     = errors.New("email not verified")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrArtistNotApproved    = errors.New("artist not approved")
	ErrArtistNotActivated   = errors.New("artist not activated")
)
