package domain

import "time"

type AccountType string

const (
	AccountUser   AccountType = "user"
	AccountArtist AccountType = "artist"
)

type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone,omitempty"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
