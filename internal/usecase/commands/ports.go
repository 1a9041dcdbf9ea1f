package commands

import (
	"context"

	"easebooking/internal/domain/booking"
	"easebooking/internal/domain/place"
	"easebooking/internal/domain/review"
)

type CreateBookingOrderParams struct {
	PlaceID   int64
	VisitDate booking.VisitDate
	Quantity  booking.Quantity
}

// BookingOrder is the backend's answer to a booking+order creation:
// the new unconfirmed booking row plus the provider order to pay.
type BookingOrder struct {
	BookingID int64
	OrderID   string
	Amount    booking.Money
	Currency  string
}

type VerifyPaymentParams struct {
	BookingID int64
	OrderID   string
	PaymentID string
	Signature string
}

type CreateReviewParams struct {
	PlaceID int64
	Rating  review.Rating
	Comment review.Comment
}

type BookingGateway interface {
	CreateBookingOrder(ctx context.Context, token string, params CreateBookingOrderParams) (*BookingOrder, error)
	VerifyPayment(ctx context.Context, token string, params VerifyPaymentParams) error
}

type ReviewGateway interface {
	CreateReview(ctx context.Context, token string, params CreateReviewParams) error
}

type PlaceGateway interface {
	CreatePlace(ctx context.Context, token string, listing place.Listing) (int64, error)
	UpdatePlace(ctx context.Context, token string, placeID int64, listing place.Listing) error
}

type BookingReader interface {
	ListMyBookings(ctx context.Context, token string) ([]*booking.Booking, error)
}
