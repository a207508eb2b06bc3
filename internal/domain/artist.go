package domain

import "time"

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

type Artist struct {
	ID              string    `json:"id"`
	ArtistName      string    `json:"artist_name"`
	Email           string    `json:"email" validate:"required,email"`
	BirthDate       string    `json:"birth_date"`
	Phone           string    `json:"phone,omitempty"`
	SocialMediaLink string    `json:"social_media_link,omitempty"`
	Bio             string    `json:"bio,omitempty"`
	IsApproved      bool      `json:"is_approved"`
	IsRejected      bool      `json:"is_rejected"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
	PasswordHash    string    `json:"-"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Status derives the application state from the two terminal flags.
// Approved and rejected are mutually exclusive; both false means pending.
func (a *Artist) Status() ApplicationStatus {
	switch {
	case a.IsApproved:
		return ApplicationApproved
	case a.IsRejected:
		return ApplicationRejected
	default:
		return ApplicationPending
	}
}
