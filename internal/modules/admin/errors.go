package admin

import "errors"

var (
	ErrArtistNotFound = errors.New("artist not found")
	// cross-terminal conflicts are hard errors, unlike idempotent repeats
	ErrAlreadyRejectedCannotApprove = errors.New("artist already rejected, cannot approve")
	ErrAlreadyApprovedCannotReject  = errors.New("artist already approved, cannot reject")
	ErrAlreadyRejected              = errors.New("artist already rejected")
)
