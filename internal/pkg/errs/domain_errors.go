package errs

import "errors"

// Failure taxonomy shared by the usecase layers.
//
// Validation failures block an action before any network call and are
// user-correctable. Authorization failures are handled globally by the
// session guard. Remote failures carry the collaborator's message when
// one is available.
var (
	// Validation failures
	ErrPastVisitDate      = errors.New("visit date must be today or later")
	ErrInvalidQuantity    = errors.New("quantity must be a positive integer")
	ErrCheckoutKeyMissing = errors.New("checkout public key is not configured")

	// Authorization failures
	ErrSessionExpired = errors.New("session expired or invalid")
	ErrRoleForbidden  = errors.New("role is not allowed to perform this action")

	// Remote failures
	ErrBackendUnavailable   = errors.New("backend request failed")
	ErrCheckoutUnavailable  = errors.New("checkout provider unavailable")
	ErrVerificationRejected = errors.New("payment verification rejected")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrPlaceNotFound   = errors.New("place not found")

	// Review errors
	ErrReviewNotEligible = errors.New("no completed paid visit for this place")
)
