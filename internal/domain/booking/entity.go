package booking

import "time"

// PlaceSnapshot is the denormalized slice of place data a booking
// carries for display: enough to render a booking card without another
// fetch.
type PlaceSnapshot struct {
	PlaceID      int64
	Name         string
	Price        Money
	ThumbnailURL string
	MapsURL      string
}

// Booking is a visitor's reservation of a place for a calendar date.
// It is created unconfirmed and flips to confirmed only after a
// successful payment-verification round trip; it never flips back.
type Booking struct {
	id               int64
	placeID          int64
	userID           int64
	visitorName      string
	visitDate        VisitDate
	quantity         Quantity
	paymentConfirmed bool
	place            PlaceSnapshot
}

func Reconstruct(
	id, placeID, userID int64,
	visitorName string,
	visitDate VisitDate,
	quantity Quantity,
	paymentConfirmed bool,
	place PlaceSnapshot,
) *Booking {
	return &Booking{
		id:               id,
		placeID:          placeID,
		userID:           userID,
		visitorName:      visitorName,
		visitDate:        visitDate,
		quantity:         quantity,
		paymentConfirmed: paymentConfirmed,
		place:            place,
	}
}

func (b *Booking) ID() int64              { return b.id }
func (b *Booking) PlaceID() int64         { return b.placeID }
func (b *Booking) UserID() int64          { return b.userID }
func (b *Booking) VisitorName() string    { return b.visitorName }
func (b *Booking) VisitDate() VisitDate   { return b.visitDate }
func (b *Booking) Quantity() Quantity     { return b.quantity }
func (b *Booking) PaymentConfirmed() bool { return b.paymentConfirmed }
func (b *Booking) Place() PlaceSnapshot   { return b.place }

// TotalCost is always derived at read time from the place price and
// the quantity; it is never stored.
func (b *Booking) TotalCost() Money {
	return b.place.Price.Mul(b.quantity)
}

func (b *Booking) BucketAt(today time.Time) Bucket {
	return Classify(b.visitDate.Time(), today)
}

// ReviewEligibleAt holds when the visit is both paid for and over: a
// confirmed booking whose date is strictly before today.
func (b *Booking) ReviewEligibleAt(today time.Time) bool {
	return b.paymentConfirmed && b.BucketAt(today) == BucketPast
}
