package review

import (
	"time"

	"easebooking/internal/domain/booking"
)

// Eligibility is the derived permission to review a place.
type Eligibility string

const (
	// Eligible: at least one paid booking whose visit date is past.
	Eligible Eligibility = "eligible"
	// PendingVisit: not eligible yet, but a booking for today or later
	// exists; the UI shows a "come back after your visit" hint.
	PendingVisit Eligibility = "pending_visit"
	// NotEligible: no bookings, or only unpaid non-past ones.
	NotEligible Eligibility = "not_eligible"
)

func (e Eligibility) String() string {
	return string(e)
}

// Evaluate derives review eligibility for one place from the visitor's
// full booking set. A visitor must have completed and paid for a visit
// before rating it; an unpaid or future booking surfaces a hint
// instead of unlocking the review form.
func Evaluate(placeID int64, bookings []*booking.Booking, today time.Time) Eligibility {
	var hasUpcoming bool
	for _, b := range bookings {
		if b.PlaceID() != placeID {
			continue
		}
		if b.ReviewEligibleAt(today) {
			return Eligible
		}
		if booking.InUpcomingList(b.VisitDate().Time(), today) {
			hasUpcoming = true
		}
	}
	if hasUpcoming {
		return PendingVisit
	}
	return NotEligible
}
