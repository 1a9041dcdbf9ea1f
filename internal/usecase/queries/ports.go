package queries

import (
	"context"

	"easebooking/internal/domain/booking"
	"easebooking/internal/domain/place"
)

// Read-side ports onto the external backend.

type BookingReader interface {
	ListMyBookings(ctx context.Context, token string) ([]*booking.Booking, error)
	ListPlaceBookings(ctx context.Context, token string, placeID int64) ([]*booking.Booking, error)
}

type PlaceReader interface {
	ListPlaces(ctx context.Context, token string) ([]*place.Place, error)
	GetPlace(ctx context.Context, token string, placeID int64) (*place.Place, error)
	ListMyPlaces(ctx context.Context, token string) ([]*place.Place, error)
}
