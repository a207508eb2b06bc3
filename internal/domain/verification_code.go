package domain

import "time"

type CodePurpose string

const (
	PurposeRegister CodePurpose = "register"
)

// VerificationCode is a single-use, time-boxed proof of email control.
// At most one unused, unexpired code exists per (email, purpose): issuing
// a new one marks every older pending code as used.
type VerificationCode struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	Code      string      `json:"code"`
	Purpose   CodePurpose `json:"purpose"`
	Used      bool        `json:"used"`
	ExpiresAt time.Time   `json:"expires_at"`
	CreatedAt time.Time   `json:"created_at"`
}

// Consumable reports whether the code can still be redeemed at now.
func (c *VerificationCode) Consumable(now time.Time) bool {
	return !c.Used && now.Before(c.ExpiresAt)
}
