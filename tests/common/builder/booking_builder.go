//go:build unit

package builder

import (
	"time"

	"easebooking/internal/domain/booking"
)

// BookingBuilder assembles booking entities for tests. Defaults: one
// ticket for tomorrow at 500.00 (minor units 50000), unpaid.
type BookingBuilder struct {
	id         int64
	placeID    int64
	userID     int64
	visitDate  time.Time
	quantity   int
	paid       bool
	priceMinor int64
	placeName  string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		id:         1,
		placeID:    10,
		userID:     7,
		visitDate:  time.Now().AddDate(0, 0, 1),
		quantity:   1,
		paid:       false,
		priceMinor: 50000,
		placeName:  "City Museum",
	}
}

func (b *BookingBuilder) WithID(id int64) *BookingBuilder             { b.id = id; return b }
func (b *BookingBuilder) WithPlaceID(id int64) *BookingBuilder        { b.placeID = id; return b }
func (b *BookingBuilder) WithUserID(id int64) *BookingBuilder         { b.userID = id; return b }
func (b *BookingBuilder) WithVisitDate(t time.Time) *BookingBuilder   { b.visitDate = t; return b }
func (b *BookingBuilder) WithQuantity(q int) *BookingBuilder          { b.quantity = q; return b }
func (b *BookingBuilder) WithPaid(paid bool) *BookingBuilder          { b.paid = paid; return b }
func (b *BookingBuilder) WithPriceMinor(minor int64) *BookingBuilder  { b.priceMinor = minor; return b }
func (b *BookingBuilder) WithPlaceName(name string) *BookingBuilder   { b.placeName = name; return b }

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}

func (b *BookingBuilder) Build() *booking.Booking {
	qty, err := booking.NewQuantity(b.quantity)
	if err != nil {
		panic(err)
	}
	return booking.Reconstruct(
		b.id,
		b.placeID,
		b.userID,
		"Test Visitor",
		booking.NewVisitDate(b.visitDate),
		qty,
		b.paid,
		booking.PlaceSnapshot{
			PlaceID: b.placeID,
			Name:    b.placeName,
			Price:   booking.NewMoney(b.priceMinor),
		},
	)
}
